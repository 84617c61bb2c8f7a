// Package parse turns raw markup into a tree.Tree.
// HTML goes through goquery's error-correcting HTML5 parser; Markdown is
// rendered to HTML with goldmark first.
package parse

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/tohtml5/core"
	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

// Parser converts raw markup into a Document.
type Parser interface {
	Parse(r io.Reader) (*Document, error)
}

// Document is a parsed tree plus the DOM it was built from, kept for
// selector queries.
type Document struct {
	Tree *tree.Tree

	dom *goquery.Document
	ids map[*html.Node]tree.ID
}

// HTMLParser parses HTML documents and fragments.
type HTMLParser struct{}

// NewHTMLParser creates an HTMLParser.
func NewHTMLParser() *HTMLParser {
	return &HTMLParser{}
}

// Parse reads HTML from r. Malformed markup is repaired the way browsers do;
// doctype nodes are dropped.
func (p *HTMLParser) Parse(r io.Reader) (*Document, error) {
	dom, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return FromDOM(dom)
}

// FromDOM builds a Document from an already parsed goquery document.
func FromDOM(dom *goquery.Document) (*Document, error) {
	d := &Document{
		Tree: tree.New(),
		dom:  dom,
		ids:  make(map[*html.Node]tree.ID),
	}
	if len(dom.Nodes) == 0 {
		return d, nil
	}
	d.ids[dom.Nodes[0]] = d.Tree.Root()
	if err := d.convert(dom.Nodes[0], d.Tree.Root()); err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	return d, nil
}

// convert copies n's children under parent. Character data before the first
// element or comment becomes parent's text; character data after one becomes
// that node's tail.
func (d *Document) convert(n *html.Node, parent tree.ID) error {
	t := d.Tree
	last := tree.Invalid
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if last == tree.Invalid {
				t.SetText(parent, t.Text(parent)+c.Data)
			} else {
				t.SetTail(last, t.Tail(last)+c.Data)
			}
		case html.ElementNode:
			id := t.NewElement(c.Data, attrs(c.Attr)...)
			if err := t.Append(parent, id); err != nil {
				return err
			}
			d.ids[c] = id
			if err := d.convert(c, id); err != nil {
				return err
			}
			last = id
		case html.CommentNode:
			id := t.NewComment(c.Data)
			if err := t.Append(parent, id); err != nil {
				return err
			}
			last = id
		}
	}
	return nil
}

func attrs(in []html.Attribute) []tree.Attr {
	if len(in) == 0 {
		return nil
	}
	out := make([]tree.Attr, len(in))
	for i, a := range in {
		out[i] = tree.Attr{Namespace: a.Namespace, Key: a.Key, Val: a.Val}
	}
	return out
}

// ForFile returns the parser for an input, honouring an explicit format and
// otherwise deciding by file extension.
func ForFile(name, format string) (Parser, error) {
	switch format {
	case core.InputHTML:
		return NewHTMLParser(), nil
	case core.InputMarkdown:
		return NewMarkdownParser(), nil
	case core.InputAuto, "":
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return NewMarkdownParser(), nil
	default:
		return NewHTMLParser(), nil
	}
}
