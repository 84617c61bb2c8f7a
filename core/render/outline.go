package render

import (
	"strings"

	"github.com/gaurav-prasanna/tohtml5/core/outline"
	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

// OutlineNode is one heading (or heading group) in the document outline.
type OutlineNode struct {
	Heading  string         `json:"heading"`
	Tag      string         `json:"tag"`
	Level    int            `json:"level"` // 1 for h1 through 6 for h6
	Grouped  bool           `json:"grouped,omitempty"`
	Children []*OutlineNode `json:"children,omitempty"`
}

// BuildOutline nests the document's headings. Section depth decides nesting
// first, so a sectioned document keeps its structure after normalization;
// within the same depth, heading level decides.
func BuildOutline(t *tree.Tree) ([]*OutlineNode, error) {
	type entry struct {
		node *OutlineNode
		key  int
	}
	root := &OutlineNode{}
	stack := []entry{{node: root, key: -1}}

	for _, id := range outline.Headings(t, t.Root()) {
		rank, err := outline.EffectiveRank(t, id)
		if err != nil {
			return nil, err
		}
		level := outline.MaxRank + 1 - rank
		n := &OutlineNode{
			Heading: headingText(t, id),
			Tag:     t.Tag(id),
			Level:   level,
			Grouped: t.Tag(id) == outline.GroupTag,
		}
		key := sectionDepth(t, id)*10 + level

		for len(stack) > 1 && stack[len(stack)-1].key >= key {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, n)
		stack = append(stack, entry{node: n, key: key})
	}
	return root.Children, nil
}

func sectionDepth(t *tree.Tree, id tree.ID) int {
	depth := 0
	for p := t.Parent(id); p != tree.Invalid; p = t.Parent(p) {
		if t.Tag(p) == outline.SectionTag {
			depth++
		}
	}
	return depth
}

// headingText joins the texts of an hgroup's headings with ": ".
func headingText(t *tree.Tree, id tree.ID) string {
	if t.Tag(id) != outline.GroupTag {
		return collapse(t.TextContent(id))
	}
	var parts []string
	for _, c := range t.Children(id) {
		if outline.IsHeading(t.Tag(c)) {
			if s := collapse(t.TextContent(c)); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, ": ")
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
