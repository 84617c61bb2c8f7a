// Package render provides output renderers for the tohtml5 pipeline.
// This file implements the HTML renderer, the default output.
package render

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gaurav-prasanna/tohtml5/core"
	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

// Doctype is written ahead of every HTML document.
const Doctype = "<!DOCTYPE html>\n"

var _ core.Renderer = (*HTMLRenderer)(nil)

// HTMLRenderer serializes the tree as UTF-8 HTML5.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render writes the tree, preceded by exactly one doctype declaration.
func (r *HTMLRenderer) Render(t *tree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, ToNode(t)); err != nil {
		return nil, fmt.Errorf("serializing HTML: %w", err)
	}

	out := buf.Bytes()
	if hasDoctype(out) {
		return out, nil
	}
	return append([]byte(Doctype), out...), nil
}

func (r *HTMLRenderer) Extension() string {
	return ".html"
}

func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func hasDoctype(b []byte) bool {
	b = bytes.TrimLeft(b, " \t\r\n")
	const prefix = "<!doctype"
	return len(b) >= len(prefix) && bytes.EqualFold(b[:len(prefix)], []byte(prefix))
}

// ToNode converts the tree into an x/net/html document node.
func ToNode(t *tree.Tree) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	appendChildren(t, t.Root(), doc)
	return doc
}

func appendChildren(t *tree.Tree, id tree.ID, n *html.Node) {
	if text := t.Text(id); text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	for _, c := range t.Children(id) {
		var cn *html.Node
		if t.IsComment(c) {
			cn = &html.Node{Type: html.CommentNode, Data: t.Text(c)}
		} else {
			tag := t.Tag(c)
			cn = &html.Node{
				Type:     html.ElementNode,
				Data:     tag,
				DataAtom: atom.Lookup([]byte(tag)),
				Attr:     htmlAttrs(t.Attrs(c)),
			}
			appendChildren(t, c, cn)
		}
		n.AppendChild(cn)
		if tail := t.Tail(c); tail != "" {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: tail})
		}
	}
}

func htmlAttrs(in []tree.Attr) []html.Attribute {
	if len(in) == 0 {
		return nil
	}
	out := make([]html.Attribute, len(in))
	for i, a := range in {
		out[i] = html.Attribute{Namespace: a.Namespace, Key: a.Key, Val: a.Val}
	}
	return out
}
