// Package tree holds the mutable document tree rewritten by the outline passes.
// Nodes live in an arena and are addressed by ID. A node's parent link is a
// navigation aid only: the parent's child list is the single owner, and every
// move detaches the node from its previous parent first.
//
// Text follows the text/tail model: an element's text is the character data
// before its first child, and its tail is the character data after its end
// tag, before the next sibling.
package tree

import (
	"errors"
	"slices"
)

// ID addresses a node in a Tree. IDs are stable for the life of the tree.
type ID int

// Invalid is returned where no node applies (no parent, no match).
const Invalid ID = -1

// Kind distinguishes the node variants.
type Kind uint8

const (
	DocumentNode Kind = iota
	ElementNode
	CommentNode
)

// Attr is an element attribute.
type Attr struct {
	Namespace string
	Key       string
	Val       string
}

var (
	// ErrCycle is returned when a node would be moved under itself.
	ErrCycle = errors.New("tree: node cannot be moved into its own subtree")

	// ErrDocumentRoot is returned when the document root would be moved.
	ErrDocumentRoot = errors.New("tree: document root cannot be moved")
)

type node struct {
	kind     Kind
	tag      string
	attrs    []Attr
	text     string // comment data for CommentNode
	tail     string
	parent   ID
	children []ID
}

// Tree is an arena of nodes rooted at a synthetic document node.
type Tree struct {
	nodes []node
}

// New creates a tree holding only the document root.
func New() *Tree {
	return &Tree{nodes: []node{{kind: DocumentNode, parent: Invalid}}}
}

// Root returns the document root.
func (t *Tree) Root() ID { return 0 }

// NewElement allocates a detached element.
func (t *Tree) NewElement(tag string, attrs ...Attr) ID {
	t.nodes = append(t.nodes, node{kind: ElementNode, tag: tag, attrs: attrs, parent: Invalid})
	return ID(len(t.nodes) - 1)
}

// NewComment allocates a detached comment.
func (t *Tree) NewComment(data string) ID {
	t.nodes = append(t.nodes, node{kind: CommentNode, text: data, parent: Invalid})
	return ID(len(t.nodes) - 1)
}

func (t *Tree) Kind(id ID) Kind { return t.nodes[id].kind }

func (t *Tree) IsElement(id ID) bool { return t.nodes[id].kind == ElementNode }

func (t *Tree) IsComment(id ID) bool { return t.nodes[id].kind == CommentNode }

// Tag returns the element's tag name, or "" for comments and the root.
func (t *Tree) Tag(id ID) string {
	if t.nodes[id].kind != ElementNode {
		return ""
	}
	return t.nodes[id].tag
}

// SetTag re-tags an element. It is a no-op for other node kinds.
func (t *Tree) SetTag(id ID, tag string) {
	if t.nodes[id].kind == ElementNode {
		t.nodes[id].tag = tag
	}
}

func (t *Tree) Attrs(id ID) []Attr { return slices.Clone(t.nodes[id].attrs) }

// Attr returns the value of the attribute named key.
func (t *Tree) Attr(id ID, key string) (string, bool) {
	for _, a := range t.nodes[id].attrs {
		if a.Key == key && a.Namespace == "" {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the leading character data of an element, or a comment's data.
func (t *Tree) Text(id ID) string { return t.nodes[id].text }

func (t *Tree) SetText(id ID, s string) { t.nodes[id].text = s }

func (t *Tree) Tail(id ID) string { return t.nodes[id].tail }

func (t *Tree) SetTail(id ID, s string) { t.nodes[id].tail = s }

// Parent returns the node's parent, or Invalid when detached.
func (t *Tree) Parent(id ID) ID { return t.nodes[id].parent }

// Children returns a copy of the node's ordered child list.
func (t *Tree) Children(id ID) []ID { return slices.Clone(t.nodes[id].children) }

func (t *Tree) ChildCount(id ID) int { return len(t.nodes[id].children) }

// Index returns the node's position under its parent, or -1 when detached.
func (t *Tree) Index(id ID) int {
	p := t.nodes[id].parent
	if p == Invalid {
		return -1
	}
	return slices.Index(t.nodes[p].children, id)
}

// Detach removes the node from its parent. Its subtree and tail move with it.
func (t *Tree) Detach(id ID) {
	p := t.nodes[id].parent
	if p == Invalid {
		return
	}
	if i := slices.Index(t.nodes[p].children, id); i >= 0 {
		t.nodes[p].children = slices.Delete(t.nodes[p].children, i, i+1)
	}
	t.nodes[id].parent = Invalid
}

// InsertAt moves child under parent at position i. The child is detached
// first, so i indexes the parent's children after that removal. i is clamped
// to the valid range.
func (t *Tree) InsertAt(parent ID, i int, child ID) error {
	if err := t.checkMove(parent, child); err != nil {
		return err
	}
	t.Detach(child)
	kids := t.nodes[parent].children
	i = max(0, min(i, len(kids)))
	t.nodes[parent].children = slices.Insert(kids, i, child)
	t.nodes[child].parent = parent
	return nil
}

// Append moves child to the end of parent's children.
func (t *Tree) Append(parent, child ID) error {
	if err := t.checkMove(parent, child); err != nil {
		return err
	}
	t.Detach(child)
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	t.nodes[child].parent = parent
	return nil
}

func (t *Tree) checkMove(parent, child ID) error {
	if child == t.Root() {
		return ErrDocumentRoot
	}
	if child == parent || t.IsAncestor(child, parent) {
		return ErrCycle
	}
	return nil
}
