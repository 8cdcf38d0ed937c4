// Package layout turns a validated invoice and its computed lines
// into an ordered sequence of positioned draw operations. A rendering
// backend walks the operations in order to produce the final
// document; nothing here touches a PDF library.
package layout

import "github.com/gstbill/invoice-service/internal/invoice"

// Page geometry in points (US Letter), matching the coordinate system
// every operation is expressed in.
const (
	PageWidth  = 612.0
	PageHeight = 792.0

	// RightEdge is the x coordinate aligned-right text ends at and
	// horizontal rules extend to.
	RightEdge = 550.0
)

// OpKind discriminates the operation variants.
type OpKind string

const (
	OpText  OpKind = "text"
	OpRule  OpKind = "rule"
	OpImage OpKind = "image"
)

// Align is the horizontal alignment of a text operation within
// [X, X+Width].
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Op is a single draw operation. Kind decides which fields apply:
// text uses Text/Size/Bold/Align/Width, rule uses X2, image uses
// Image/Width.
type Op struct {
	Kind OpKind
	X    float64
	Y    float64

	Text  string
	Size  float64
	Bold  bool
	Align Align
	// Width bounds alignment and wrapping for text, or is the drawn
	// width for images. Zero means natural width.
	Width float64

	X2 float64 // rule end

	Image invoice.DecodedImage
}

// Document is the ordered, backend-independent description of one
// invoice. Operations may run past PageHeight when an invoice has
// enough items; overflow is a known limitation, not handled here.
type Document struct {
	Ops []Op
}

func (d *Document) text(x, y, size float64, bold bool, align Align, width float64, text string) {
	d.Ops = append(d.Ops, Op{
		Kind: OpText, X: x, Y: y, Size: size, Bold: bold, Align: align, Width: width, Text: text,
	})
}

func (d *Document) rule(x1, y, x2 float64) {
	d.Ops = append(d.Ops, Op{Kind: OpRule, X: x1, Y: y, X2: x2})
}

func (d *Document) image(img invoice.DecodedImage, x, y, width float64) {
	d.Ops = append(d.Ops, Op{Kind: OpImage, X: x, Y: y, Width: width, Image: img})
}
