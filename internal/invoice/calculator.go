package invoice

import "math"

// ShippingRate is the flat surcharge applied to every line's net
// price before discount.
const ShippingRate = 0.05

// SplitKind tags how a line's tax is broken into components.
type SplitKind int

const (
	// SplitIntrastate applies when supply and delivery places match:
	// the tax is halved into CGST and SGST components.
	SplitIntrastate SplitKind = iota
	// SplitInterstate applies otherwise: a single full-rate IGST
	// component.
	SplitInterstate
)

// TaxComponent is one labeled slice of a line's tax.
type TaxComponent struct {
	Label       string
	RatePercent float64
	Amount      float64
}

// TaxSplit is the tagged breakdown of a tax amount. The layout draws
// one sub-row per component, so it never branches on the kind itself.
type TaxSplit struct {
	Kind       SplitKind
	Components []TaxComponent
}

// SplitTax breaks amount at ratePercent into GST components.
func SplitTax(ratePercent, amount float64, intrastate bool) TaxSplit {
	if intrastate {
		half := round2(amount / 2)
		return TaxSplit{
			Kind: SplitIntrastate,
			Components: []TaxComponent{
				{Label: "CGST", RatePercent: ratePercent / 2, Amount: half},
				{Label: "SGST", RatePercent: ratePercent / 2, Amount: half},
			},
		}
	}
	return TaxSplit{
		Kind:       SplitInterstate,
		Components: []TaxComponent{{Label: "IGST", RatePercent: ratePercent, Amount: amount}},
	}
}

// ComputedLine holds every derived monetary field for one line item.
// NetPrice, DiscountedPrice and ShippingCharge stay unrounded; the
// four displayed amounts are rounded to 2 decimals at the point they
// are stored here, and totals accumulate those rounded values.
type ComputedLine struct {
	Item Item

	NetPrice        float64
	DiscountedPrice float64
	TaxAmount       float64
	NettAmount      float64

	ShippingCharge    float64
	ShippingTaxAmount float64
	ShippingNett      float64

	TaxSplit         TaxSplit
	ShippingTaxSplit TaxSplit
}

// InvoiceTotals accumulates across all computed lines.
type InvoiceTotals struct {
	TotalAmount   float64
	TotalTax      float64
	AmountInWords string
}

// ComputeLine derives all monetary fields for one item. Inputs are
// assumed validated; the jurisdiction match is decided once per
// invoice and passed in, never recomputed per line.
func ComputeLine(item Item, intrastate bool) ComputedLine {
	rate := item.TaxPercent / 100
	discount := item.DiscountPercent / 100

	netPrice := item.UnitPrice * float64(item.Quantity)
	discounted := netPrice - netPrice*discount
	taxAmount := round2(discounted * rate)
	nettAmount := round2(discounted + discounted*rate)

	shipping := netPrice * ShippingRate
	shippingTax := round2(shipping * rate)
	shippingNett := round2(shipping + shipping*rate)

	return ComputedLine{
		Item:              item,
		NetPrice:          netPrice,
		DiscountedPrice:   discounted,
		TaxAmount:         taxAmount,
		NettAmount:        nettAmount,
		ShippingCharge:    shipping,
		ShippingTaxAmount: shippingTax,
		ShippingNett:      shippingNett,
		TaxSplit:          SplitTax(item.TaxPercent, taxAmount, intrastate),
		ShippingTaxSplit:  SplitTax(item.TaxPercent, shippingTax, intrastate),
	}
}

// ComputeLines maps every item in input order.
func ComputeLines(items []Item, intrastate bool) []ComputedLine {
	lines := make([]ComputedLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, ComputeLine(item, intrastate))
	}
	return lines
}

// Accumulate sums the rounded per-line values in input order. The
// displayed totals round to 1 decimal and the words line spells the
// total rounded to the nearest whole unit; both happen at display
// time, not here.
func Accumulate(lines []ComputedLine) InvoiceTotals {
	var totals InvoiceTotals
	for _, l := range lines {
		totals.TotalAmount += l.NettAmount + l.ShippingNett
		totals.TotalTax += l.TaxAmount + l.ShippingTaxAmount
	}
	totals.AmountInWords = AmountInWords(int64(math.Round(totals.TotalAmount)))
	return totals
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
