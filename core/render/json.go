// JSON renderer.
// Emits the document outline: nested headings with their levels, plus
// counts of the structural wrappers the passes produced.

package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/tohtml5/core"
	"github.com/gaurav-prasanna/tohtml5/core/outline"
	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

var _ core.Renderer = (*JSONRenderer)(nil)

// OutlineJSON is the complete JSON output for a document.
type OutlineJSON struct {
	Title     string         `json:"title,omitempty"`
	Structure outline.Stats  `json:"structure"`
	Outline   []*OutlineNode `json:"outline"`
}

// JSONRenderer produces the document outline as JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(t *tree.Tree) ([]byte, error) {
	nodes, err := BuildOutline(t)
	if err != nil {
		return nil, fmt.Errorf("building outline: %w", err)
	}
	if nodes == nil {
		nodes = []*OutlineNode{}
	}

	doc := OutlineJSON{
		Title:     documentTitle(t),
		Structure: outline.Count(t, t.Root()),
		Outline:   nodes,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

func (r *JSONRenderer) Extension() string {
	return ".json"
}

func (r *JSONRenderer) ContentType() string {
	return "application/json"
}

// documentTitle returns the text of the first <title>, if any.
func documentTitle(t *tree.Tree) string {
	titles := t.FindByTag(t.Root(), "title")
	if len(titles) == 0 {
		return ""
	}
	return collapse(t.TextContent(titles[0]))
}
