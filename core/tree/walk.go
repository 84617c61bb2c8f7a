package tree

import (
	"slices"
	"strings"
)

// IsAncestor reports whether a is a proper ancestor of id.
func (t *Tree) IsAncestor(a, id ID) bool {
	for p := t.nodes[id].parent; p != Invalid; p = t.nodes[p].parent {
		if p == a {
			return true
		}
	}
	return false
}

// ClosestAncestor returns the nearest ancestor element tagged tag.
func (t *Tree) ClosestAncestor(id ID, tag string) ID {
	for p := t.nodes[id].parent; p != Invalid; p = t.nodes[p].parent {
		if t.Tag(p) == tag {
			return p
		}
	}
	return Invalid
}

// OutermostAncestor returns the ancestor element tagged tag that is closest
// to the document root.
func (t *Tree) OutermostAncestor(id ID, tag string) ID {
	found := Invalid
	for p := t.nodes[id].parent; p != Invalid; p = t.nodes[p].parent {
		if t.Tag(p) == tag {
			found = p
		}
	}
	return found
}

// NextSiblings returns a snapshot of the nodes following id under its parent.
func (t *Tree) NextSiblings(id ID) []ID {
	i := t.Index(id)
	if i < 0 {
		return nil
	}
	return slices.Clone(t.nodes[t.nodes[id].parent].children[i+1:])
}

// Descendants returns every node below id in document order.
func (t *Tree) Descendants(id ID) []ID {
	var out []ID
	var walk func(ID)
	walk = func(n ID) {
		for _, c := range t.nodes[n].children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(id)
	return out
}

// FindByTag returns the elements below root whose tag is any of tags, in
// document order.
func (t *Tree) FindByTag(root ID, tags ...string) []ID {
	var out []ID
	for _, id := range t.Descendants(root) {
		if t.IsElement(id) && slices.Contains(tags, t.nodes[id].tag) {
			out = append(out, id)
		}
	}
	return out
}

// TextContent concatenates the character data inside id, skipping comment
// data but keeping the tails that follow comments.
func (t *Tree) TextContent(id ID) string {
	var b strings.Builder
	var walk func(ID)
	walk = func(n ID) {
		if t.nodes[n].kind != CommentNode {
			b.WriteString(t.nodes[n].text)
			for _, c := range t.nodes[n].children {
				walk(c)
				b.WriteString(t.nodes[c].tail)
			}
		}
	}
	walk(id)
	return b.String()
}
