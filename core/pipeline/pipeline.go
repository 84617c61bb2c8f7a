// Package pipeline runs one document through parse → scope → outline
// passes → render. The CLI and the HTTP server both drive it.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gaurav-prasanna/tohtml5/core"
	"github.com/gaurav-prasanna/tohtml5/core/outline"
	"github.com/gaurav-prasanna/tohtml5/core/parse"
)

// ErrNothingToDo is returned when no outline pass is selected.
var ErrNothingToDo = errors.New("no transformation requested (use --hgroup to attempt heading grouping)")

// Pipeline holds the per-run choices.
type Pipeline struct {
	Passes   outline.Passes
	Scope    string
	Renderer core.Renderer
	Log      *slog.Logger
}

// Result is a processed document.
type Result struct {
	Data  []byte
	Stats outline.Stats
}

// New creates a Pipeline. A nil logger discards.
func New(passes outline.Passes, scope string, renderer core.Renderer, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{
		Passes:   passes,
		Scope:    scope,
		Renderer: renderer,
		Log:      log,
	}
}

// Process parses r with parser, applies the passes and renders the result.
func (p *Pipeline) Process(r io.Reader, parser parse.Parser) (*Result, error) {
	if !p.Passes.Any() {
		return nil, ErrNothingToDo
	}

	// 1. Parse
	doc, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	// 2. Resolve the subtrees to rewrite
	roots, err := doc.Scope(p.Scope)
	if err != nil {
		return nil, fmt.Errorf("scope: %w", err)
	}

	// 3. Outline passes
	stats, err := outline.Run(doc.Tree, roots, p.Passes, p.Log)
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}
	p.Log.Debug("outline complete",
		"passes", p.Passes.String(),
		"hgroups", stats.Groups,
		"sections", stats.Sections,
		"headings", stats.Headings,
	)

	// 4. Render
	data, err := p.Renderer.Render(doc.Tree)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return &Result{Data: data, Stats: stats}, nil
}
