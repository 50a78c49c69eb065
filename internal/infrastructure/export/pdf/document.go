// Package pdf renders quotes, directories and reports as A4 PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	margin     = 20.0
	lineHeight = 6.0
	footerGap  = 15.0

	// Body rows start a new page once the cursor passes these positions.
	rowBreakY  = 270.0
	cardBreakY = 260.0

	fontFamily  = "Helvetica"
	brandName   = "CableQuote Pro"
	dateLayout  = "01/02/2006"
	stampLayout = "01/02/2006 15:04 MST"
)

type rgb struct{ r, g, b int }

var (
	brandBlue = rgb{37, 99, 235}
	headerRow = rgb{245, 245, 245}
	cardEdge  = rgb{200, 200, 200}
	footerInk = rgb{128, 128, 128}
	white     = rgb{255, 255, 255}
	black     = rgb{0, 0, 0}
)

// document wraps a gofpdf page stream with a text cursor. All positions are
// millimetres from the top-left corner.
type document struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	width float64
	high  float64
	y     float64
}

// newDocument starts page one. footer is called for every page.
func newDocument(title string, footer func(d *document)) *document {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle(title, true)
	p.SetCreator(brandName, true)
	p.SetMargins(margin, margin, margin)
	p.SetAutoPageBreak(false, 0)

	w, h := p.GetPageSize()
	d := &document{
		pdf:   p,
		tr:    p.UnicodeTranslatorFromDescriptor(""),
		width: w,
		high:  h,
		y:     margin,
	}
	if footer != nil {
		p.SetFooterFunc(func() { footer(d) })
	}
	p.AddPage()
	return d
}

func (d *document) color(c rgb) {
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

func (d *document) fill(c rgb) {
	d.pdf.SetFillColor(c.r, c.g, c.b)
}

func (d *document) font(style string, size float64) {
	d.pdf.SetFont(fontFamily, style, size)
}

func (d *document) text(x, y float64, s string) {
	d.pdf.Text(x, y, d.tr(s))
}

// banner paints the full-width brand band at the top of the page.
func (d *document) banner(height float64) {
	d.fill(brandBlue)
	d.pdf.Rect(0, 0, d.width, height, "F")
}

// tableHeader draws a shaded label row at the cursor and moves below it.
func (d *document) tableHeader(bg, ink rgb, cols []float64, labels []string) {
	d.fill(bg)
	d.pdf.Rect(margin, d.y-3, d.width-2*margin, 8, "F")
	d.color(ink)
	d.font("B", 10)
	for i, label := range labels {
		d.text(margin+cols[i], d.y+2, label)
	}
	d.color(black)
	d.font("", 10)
	d.y += 10
}

// breakAt starts a new page when the cursor is past limit.
func (d *document) breakAt(limit float64) {
	if d.y > limit {
		d.pdf.AddPage()
		d.y = margin
	}
}

// wrap splits s into lines no wider than w at the current font.
func (d *document) wrap(s string, w float64) []string {
	raw := d.pdf.SplitLines([]byte(d.tr(s)), w)
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		out = append(out, string(l))
	}
	return out
}

// lines writes pre-translated lines starting at (x, y) and returns the
// height used.
func (d *document) lines(x, y, step float64, ls []string) float64 {
	for i, l := range ls {
		d.pdf.Text(x, y+float64(i)*step, l)
	}
	return float64(len(ls)) * step
}

func (d *document) footerText(left, right string) {
	d.color(footerInk)
	d.font("", 8)
	y := d.high - footerGap
	d.text(margin, y, left)
	d.text(d.width-margin-60, y, right)
	d.color(black)
}

func (d *document) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max-1])) + "…"
}
