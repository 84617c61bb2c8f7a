package parse

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// MarkdownParser renders Markdown to HTML with goldmark and parses the result.
type MarkdownParser struct {
	md   goldmark.Markdown
	html *HTMLParser
}

// NewMarkdownParser creates a MarkdownParser. Raw HTML embedded in the
// Markdown is passed through.
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
		html: NewHTMLParser(),
	}
}

func (p *MarkdownParser) Parse(r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading markdown: %w", err)
	}

	var buf bytes.Buffer
	if err := p.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return p.html.Parse(&buf)
}
