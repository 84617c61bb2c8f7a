package render

import (
	"fmt"

	"github.com/gaurav-prasanna/tohtml5/core"
)

// New returns the renderer for an output format.
func New(format string) (core.Renderer, error) {
	switch format {
	case core.FormatHTML, "":
		return NewHTMLRenderer(), nil
	case core.FormatMarkdown:
		return NewMarkdownRenderer(), nil
	case core.FormatJSON:
		return NewJSONRenderer(), nil
	case core.FormatPDF:
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
