package outline

import (
	"strings"

	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

// HasContent reports whether an element carries non-whitespace text, either
// directly or anywhere in its subtree. A comment's own data never counts, but
// text following a comment (its tail) does. The element's own tail is not
// considered.
func HasContent(t *tree.Tree, id tree.ID) bool {
	if t.IsComment(id) {
		return false
	}
	if strings.TrimSpace(t.Text(id)) != "" {
		return true
	}
	for _, c := range t.Children(id) {
		if strings.TrimSpace(t.Tail(c)) != "" {
			return true
		}
		if !t.IsComment(c) && HasContent(t, c) {
			return true
		}
	}
	return false
}
