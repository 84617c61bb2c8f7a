// Markdown renderer.
// Converts the rewritten tree to Markdown with html-to-markdown. Section and
// hgroup wrappers have no Markdown form, so only the heading levels the
// passes chose survive.

package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/tohtml5/core"
	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

var _ core.Renderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer converts the tree to Markdown using html-to-markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

func (r *MarkdownRenderer) Render(t *tree.Tree) ([]byte, error) {
	md, err := htmltomarkdown.ConvertNode(ToNode(t))
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return md, nil
}

func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func (r *MarkdownRenderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}
