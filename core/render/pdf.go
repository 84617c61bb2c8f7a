// PDF renderer.
// Renders the document outline as a contents listing using gofpdf, with
// font size following heading level and indentation following nesting.

package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/tohtml5/core"
	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

var _ core.Renderer = (*PDFRenderer)(nil)

const pdfIndent = 6.0 // mm per nesting level

// PDFRenderer renders the document outline as a PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(t *tree.Tree) ([]byte, error) {
	nodes, err := BuildOutline(t)
	if err != nil {
		return nil, fmt.Errorf("building outline: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetCreator("tohtml5", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title from <title>, when present.
	if title := documentTitle(t); title != "" {
		pdf.SetTitle(title, true)
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(title), "", "L", false)
		pdf.Ln(4)
	}

	if len(nodes) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, "No headings found.", "", "L", false)
	}

	left, _, _, _ := pdf.GetMargins()
	var write func(ns []*OutlineNode, depth int)
	write = func(ns []*OutlineNode, depth int) {
		for _, n := range ns {
			renderHeading(pdf, tr(n.Heading), n.Level, left+float64(depth)*pdfIndent)
			write(n.Children, depth+1)
		}
	}
	write(nodes, 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int, x float64) {
	sizes := map[int]float64{1: 15, 2: 13, 3: 12, 4: 11, 5: 10, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	style := ""
	if level <= 2 {
		style = "B"
	}
	left, _, _, _ := pdf.GetMargins()
	pdf.SetLeftMargin(x)
	pdf.SetX(x)
	pdf.SetFont("Helvetica", style, size)
	pdf.MultiCell(0, size*0.55, text, "", "L", false)
	pdf.Ln(1)
	pdf.SetLeftMargin(left)
}
