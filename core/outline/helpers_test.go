package outline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/tohtml5/core/parse"
	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

// parseBody parses src as an HTML document and returns its tree and <body>.
func parseBody(t *testing.T, src string) (*tree.Tree, tree.ID) {
	t.Helper()
	doc, err := parse.NewHTMLParser().Parse(strings.NewReader(src))
	require.NoError(t, err)
	bodies := doc.Tree.FindByTag(doc.Tree.Root(), "body")
	require.Len(t, bodies, 1)
	return doc.Tree, bodies[0]
}

// shape renders the element structure below id compactly, e.g.
// "section(h1,p,section(h2,p))". Comments show as "!".
func shape(tr *tree.Tree, id tree.ID) string {
	var parts []string
	for _, c := range tr.Children(id) {
		if tr.IsComment(c) {
			parts = append(parts, "!")
			continue
		}
		s := tr.Tag(c)
		if tr.ChildCount(c) > 0 {
			s += "(" + shape(tr, c) + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ",")
}
