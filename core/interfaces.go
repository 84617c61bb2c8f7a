// Package core defines the pipeline contracts for tohtml5.
// Input is fetched or read, parsed into a tree, rewritten by the outline
// passes, and rendered to an output format.
package core

import (
	"context"

	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

// Output formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
)

// Formats lists the supported output formats.
var Formats = []string{FormatHTML, FormatMarkdown, FormatJSON, FormatPDF}

// Input formats. InputAuto picks by file extension.
const (
	InputAuto     = "auto"
	InputHTML     = "html"
	InputMarkdown = "markdown"
)

// InputFormats lists the supported input formats.
var InputFormats = []string{InputAuto, InputHTML, InputMarkdown}

// FetchResult holds the raw body and response metadata from a fetch.
type FetchResult struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// Fetcher retrieves a remote document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Renderer serializes a rewritten tree into a final output format.
type Renderer interface {
	Render(t *tree.Tree) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html").
	Extension() string
	// ContentType returns the MIME type of the rendered output.
	ContentType() string
}
