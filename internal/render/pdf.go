// Package render draws a layout.Document into PDF bytes with gofpdf.
// It is the only package that knows about the PDF library; everything
// above it works on draw operations.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/gstbill/invoice-service/internal/invoice"
	"github.com/gstbill/invoice-service/internal/layout"
)

// Renderer turns document descriptions into PDF bytes.
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer creates a Renderer.
func NewRenderer(logger *zap.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render walks the document's operations in order and produces the
// finished PDF. Failures (typically corrupt image bytes) come back as
// *invoice.RenderingError.
func (r *Renderer) Render(doc *layout.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	// The layout works in fixed coordinates; overflowing content is a
	// known limitation, so the page must not break on its own.
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 10)

	for i, op := range doc.Ops {
		switch op.Kind {
		case layout.OpText:
			r.drawText(pdf, op)
		case layout.OpRule:
			pdf.SetDrawColor(170, 170, 170)
			pdf.SetLineWidth(1)
			pdf.Line(op.X, op.Y, op.X2, op.Y)
		case layout.OpImage:
			r.drawImage(pdf, op, i)
		}
	}

	if pdf.Err() {
		r.logger.Error("PDF generation failed", zap.Error(pdf.Error()))
		return nil, &invoice.RenderingError{Err: pdf.Error()}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.logger.Error("PDF output failed", zap.Error(err))
		return nil, &invoice.RenderingError{Err: err}
	}

	r.logger.Debug("PDF rendered",
		zap.Int("ops", len(doc.Ops)),
		zap.Int("bytes", buf.Len()))

	return buf.Bytes(), nil
}

func (r *Renderer) drawText(pdf *gofpdf.Fpdf, op layout.Op) {
	style := ""
	if op.Bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, op.Size)

	x := op.X
	if op.Width > 0 {
		w := pdf.GetStringWidth(op.Text)
		switch op.Align {
		case layout.AlignRight:
			x = op.X + op.Width - w
		case layout.AlignCenter:
			x = op.X + (op.Width-w)/2
		}
	}

	// The layout's y is the top of the text; gofpdf positions the
	// baseline.
	pdf.Text(x, op.Y+op.Size*0.85, op.Text)
}

func (r *Renderer) drawImage(pdf *gofpdf.Fpdf, op layout.Op, seq int) {
	opts := gofpdf.ImageOptions{ImageType: imageType(op.Image.Format)}
	name := fmt.Sprintf("embedded-%d", seq)

	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(op.Image.Data))
	pdf.ImageOptions(name, op.X, op.Y, op.Width, 0, false, opts, 0, "")
}

func imageType(format string) string {
	switch format {
	case "jpg", "jpeg":
		return "JPG"
	case "gif":
		return "GIF"
	default:
		return "PNG"
	}
}
