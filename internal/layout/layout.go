package layout

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gstbill/invoice-service/internal/invoice"
)

// Table column x offsets. The table keeps the historical column grid:
// Sno, Description, Quantity, UnitPrice, Discount%, Tax Rate,
// Tax Type, Tax, Amount (right edge), Nett.
const (
	colSno      = 20.0
	colDesc     = 50.0
	colQty      = 120.0
	colUnit     = 180.0
	colDiscount = 150.0
	colTaxRate  = 375.0
	colTaxType  = 425.0
	colTax      = 475.0
	colNett     = 285.0

	descWidth = 200.0
	numWidth  = 90.0

	tableTop = 450.0
	rowStep  = 30.0
	subRow   = 15.0
)

// Build lays out the complete invoice document, top to bottom. Input
// is assumed validated and fully computed; no field is re-checked
// here. Optional fields (middle name, second address line) are
// omitted from their rows rather than rendered blank.
func Build(req *invoice.ValidatedRequest, lines []invoice.ComputedLine, totals invoice.InvoiceTotals) *Document {
	doc := &Document{}

	buildHeader(doc, req)
	buildAddresses(doc, req)
	buildMetadata(doc, req)
	y := buildTable(doc, lines, totals)
	buildClosing(doc, req, y)

	return doc
}

func buildHeader(doc *Document, req *invoice.ValidatedRequest) {
	if len(req.Logo.Data) > 0 {
		doc.image(req.Logo, 40, 20, 80)
	}
	doc.text(300, 50, 12, false, AlignRight, RightEdge-300, "Tax Invoice/ Bill of Supply/ Cash Memo")
	doc.text(350, 65, 10, false, AlignCenter, RightEdge-350, "(Original for Recipient)")
}

func buildAddresses(doc *Document, req *invoice.ValidatedRequest) {
	left := func(y float64, text string) {
		doc.text(45, y, 10, false, AlignLeft, 0, text)
	}
	right := func(y float64, text string) {
		doc.text(45, y, 10, false, AlignRight, RightEdge-45, text)
	}

	// Sold-By block.
	left(105, "Sold By")
	left(120, req.Seller.CompanyName)
	left(135, req.Seller.AddressLine1)
	if req.Seller.AddressLine2 != "" {
		left(150, req.Seller.AddressLine2)
	}
	left(165, localityLine(req.Seller.City, req.Seller.State, req.Seller.Pincode))
	left(180, "IN")
	left(210, "PAN No: "+req.Seller.PanNumber)
	left(225, "GST No: "+req.Seller.GstNumber)

	// Billing block.
	right(105, "Billing Address")
	right(120, personName(req.Billing.FirstName, req.Billing.MiddleName, req.Billing.LastName))
	right(135, req.Billing.AddressLine1)
	if req.Billing.AddressLine2 != "" {
		right(150, req.Billing.AddressLine2)
	}
	// TODO: this row prints the seller's locality, matching the form
	// output this replaces; confirm with product whether it should be
	// the billing party's own city/state/pincode.
	right(165, localityLine(req.Seller.City, req.Seller.State, req.Seller.Pincode))
	right(180, "IN")
	right(195, "State/UT Code: "+req.Billing.StateUtCode)

	// Shipping block.
	right(240, "Shipping Address")
	right(255, personName(req.Shipping.FirstName, req.Shipping.MiddleName, req.Shipping.LastName))
	right(270, req.Shipping.AddressLine1)
	if req.Shipping.AddressLine2 != "" {
		right(285, req.Shipping.AddressLine2)
	}
	right(300, localityLine(req.Shipping.City, req.Shipping.State, req.Shipping.Pincode))
	right(315, "IN")
	right(330, "State/UT Code: "+req.Shipping.StateUtCode)
}

func buildMetadata(doc *Document, req *invoice.ValidatedRequest) {
	right := func(y float64, text string) {
		doc.text(45, y, 10, false, AlignRight, RightEdge-45, text)
	}

	right(345, "Place of Supply: "+req.Seller.SupplyPlace)
	right(360, "Place of Delivery: "+req.Shipping.DeliveryPlace)
	right(375, "Invoice No: "+req.Invoice.Number)
	right(390, "Invoice Details: "+req.Invoice.Details)
	right(405, "Invoice Date: "+displayDate(req.Invoice.Date))

	doc.text(45, 375, 10, false, AlignLeft, 0, "Order No: "+req.Order.Number)
	doc.text(45, 390, 10, false, AlignLeft, 0, "Order Date: "+displayDate(req.Order.Date))
}

// tableRow places the shared columns of one data or header/footer
// row. Tax rate/type/tax cells are handled by the caller because data
// rows expand them per tax component.
func tableRow(doc *Document, y float64, bold bool, sno, desc, qty, unit, discount, amount, nett string) {
	cell := func(x float64, align Align, width float64, text string) {
		if text == "" {
			return
		}
		doc.text(x, y, 10, bold, align, width, text)
	}

	cell(colSno, AlignLeft, 0, sno)
	cell(colDesc, AlignLeft, descWidth, desc)
	cell(colQty, AlignRight, numWidth, qty)
	cell(colUnit, AlignRight, numWidth, unit)
	cell(colDiscount, AlignCenter, RightEdge-colDiscount, discount)
	cell(0, AlignRight, RightEdge, amount)
	cell(colNett, AlignLeft, 0, nett)
}

// taxCells writes one sub-row per tax component at fixed vertical
// steps below y.
func taxCells(doc *Document, y float64, split invoice.TaxSplit) {
	for i, comp := range split.Components {
		cy := y + float64(i)*subRow
		doc.text(colTaxRate, cy, 10, false, AlignLeft, 0, trimNumber(comp.RatePercent)+" %")
		doc.text(colTaxType, cy, 10, false, AlignLeft, 0, comp.Label)
		doc.text(colTax, cy, 10, false, AlignLeft, 0, money2(comp.Amount))
	}
}

func buildTable(doc *Document, lines []invoice.ComputedLine, totals invoice.InvoiceTotals) float64 {
	// Header row.
	tableRow(doc, tableTop, true, "Sno", "Description", "Quantity", "UnitPrice", "Discount%", "Amount", "Nett")
	doc.text(colTaxRate, tableTop, 10, true, AlignLeft, 0, "Tax Rate")
	doc.text(colTaxType, tableTop, 10, true, AlignLeft, 0, "Tax Type")
	doc.text(colTax, tableTop, 10, true, AlignLeft, 0, "Tax")
	doc.rule(20, tableTop+25, RightEdge)

	y := tableTop + 30
	for i, line := range lines {
		item := line.Item

		tableRow(doc, y, false,
			strconv.Itoa(i+1),
			item.Description,
			strconv.Itoa(item.Quantity),
			trimNumber(item.UnitPrice),
			trimNumber(item.DiscountPercent),
			money2(line.NettAmount),
			trimNumber(line.NetPrice),
		)
		taxCells(doc, y, line.TaxSplit)
		y += rowStep

		tableRow(doc, y, false,
			"",
			"Shipping Charges (5% of Nett)",
			"",
			money2(line.ShippingCharge),
			"",
			money2(line.ShippingNett),
			"",
		)
		taxCells(doc, y, line.ShippingTaxSplit)
		y += rowStep

		doc.rule(20, y, RightEdge)
		y += 10
	}

	// Totals row: total tax lands at the right-edge column and the
	// total amount at the Nett offset, keeping the historical grid.
	y += 2
	tableRow(doc, y, true, "", "Total", "", "", "", money1(totals.TotalTax), money1(totals.TotalAmount))
	doc.rule(20, y+15, RightEdge)

	wordsY := y + 20
	doc.text(45, wordsY, 10, false, AlignLeft, 0, "Amount in words -  "+totals.AmountInWords)
	return wordsY
}

func buildClosing(doc *Document, req *invoice.ValidatedRequest, wordsY float64) {
	reverse := "No"
	if req.ReverseCharge {
		reverse = "Yes"
	}

	reverseY := wordsY + 45
	doc.text(45, reverseY, 10, false, AlignLeft, 0,
		"Whether Tax is payable under reverse charge - "+reverse)

	forY := reverseY + 20
	doc.text(0, forY, 10, false, AlignRight, RightEdge, "For "+req.Seller.CompanyName)
	if len(req.Signature.Data) > 0 {
		doc.image(req.Signature, 450, forY+5, 115)
	}
	doc.text(0, forY+25, 10, false, AlignRight, RightEdge, "Authorised Signatory")
}

func personName(first, middle, last string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{first, middle, last} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func localityLine(city, state, pincode string) string {
	return fmt.Sprintf("%s, %s - %s", city, state, pincode)
}

// displayDate renders submitted dates as e.g. "Mon Jan 02 2006".
// Unparseable values pass through verbatim rather than failing a
// render that validation already accepted.
func displayDate(value string) string {
	for _, format := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(format, value); err == nil {
			return t.Format("Mon Jan 02 2006")
		}
	}
	return value
}

func money2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func money1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// trimNumber prints a float without trailing zeros, the way the
// submitted values appear in the form.
func trimNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
