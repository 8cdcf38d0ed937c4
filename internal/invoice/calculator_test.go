package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLine_IntrastateScenario(t *testing.T) {
	// Supply and delivery both "Delhi": tax splits into CGST+SGST at
	// half rate each.
	item := Item{Description: "Widget", UnitPrice: 1000, Quantity: 2, DiscountPercent: 10, TaxPercent: 18}

	line := ComputeLine(item, true)

	assert.InDelta(t, 2000.00, line.NetPrice, 1e-9)
	assert.InDelta(t, 1800.00, line.DiscountedPrice, 1e-9)
	assert.InDelta(t, 324.00, line.TaxAmount, 1e-9)
	assert.InDelta(t, 2124.00, line.NettAmount, 1e-9)
	assert.InDelta(t, 100.00, line.ShippingCharge, 1e-9)
	assert.InDelta(t, 18.00, line.ShippingTaxAmount, 1e-9)
	assert.InDelta(t, 118.00, line.ShippingNett, 1e-9)

	require.Equal(t, SplitIntrastate, line.TaxSplit.Kind)
	require.Len(t, line.TaxSplit.Components, 2)

	cgst := line.TaxSplit.Components[0]
	sgst := line.TaxSplit.Components[1]
	assert.Equal(t, "CGST", cgst.Label)
	assert.Equal(t, "SGST", sgst.Label)
	assert.InDelta(t, 9.0, cgst.RatePercent, 1e-9)
	assert.InDelta(t, 9.0, sgst.RatePercent, 1e-9)
	assert.InDelta(t, 162.00, cgst.Amount, 1e-9)
	assert.InDelta(t, 162.00, sgst.Amount, 1e-9)
}

func TestComputeLine_InterstateScenario(t *testing.T) {
	// Same item, supply "Delhi" vs delivery "Mumbai": single IGST
	// component at the full rate, same amounts otherwise.
	item := Item{Description: "Widget", UnitPrice: 1000, Quantity: 2, DiscountPercent: 10, TaxPercent: 18}

	line := ComputeLine(item, false)

	assert.InDelta(t, 324.00, line.TaxAmount, 1e-9)
	assert.InDelta(t, 2124.00, line.NettAmount, 1e-9)

	require.Equal(t, SplitInterstate, line.TaxSplit.Kind)
	require.Len(t, line.TaxSplit.Components, 1)
	igst := line.TaxSplit.Components[0]
	assert.Equal(t, "IGST", igst.Label)
	assert.InDelta(t, 18.0, igst.RatePercent, 1e-9)
	assert.InDelta(t, 324.00, igst.Amount, 1e-9)
}

func TestComputeLine_NoDiscountNoTax(t *testing.T) {
	item := Item{Description: "Plain", UnitPrice: 250, Quantity: 3, DiscountPercent: 0, TaxPercent: 0}

	line := ComputeLine(item, true)

	assert.InDelta(t, line.NetPrice, line.NettAmount, 1e-9)
	assert.Zero(t, line.TaxAmount)
	assert.Zero(t, line.ShippingTaxAmount)
}

func TestComputeLine_ShippingChargeIsFivePercentOfNetPrice(t *testing.T) {
	items := []Item{
		{Description: "a", UnitPrice: 1000, Quantity: 2, TaxPercent: 18},
		{Description: "b", UnitPrice: 33.33, Quantity: 7, TaxPercent: 5},
		{Description: "c", UnitPrice: 0.01, Quantity: 1, TaxPercent: 12},
	}

	for _, item := range items {
		line := ComputeLine(item, false)
		// Unrounded, exactly the same float expression.
		assert.Equal(t, item.UnitPrice*float64(item.Quantity)*ShippingRate, line.ShippingCharge)
	}
}

func TestSplitTax_HalfRateComponentsSumToFullTax(t *testing.T) {
	for _, amount := range []float64{324.00, 100.01, 0.03, 57.55} {
		split := SplitTax(18, amount, true)
		require.Len(t, split.Components, 2)
		sum := split.Components[0].Amount + split.Components[1].Amount
		assert.InDelta(t, amount, sum, 0.011, "amount %v", amount)
	}
}

func TestAccumulate_TotalsSumRoundedLineValues(t *testing.T) {
	items := []Item{
		{Description: "a", UnitPrice: 1000, Quantity: 2, DiscountPercent: 10, TaxPercent: 18},
		{Description: "b", UnitPrice: 499.99, Quantity: 3, DiscountPercent: 5, TaxPercent: 12},
	}
	lines := ComputeLines(items, true)

	totals := Accumulate(lines)

	var wantAmount, wantTax float64
	for _, l := range lines {
		wantAmount += l.NettAmount + l.ShippingNett
		wantTax += l.TaxAmount + l.ShippingTaxAmount
	}
	assert.InDelta(t, wantAmount, totals.TotalAmount, 1e-9)
	assert.InDelta(t, wantTax, totals.TotalTax, 1e-9)
}

func TestAccumulate_OrderIndependent(t *testing.T) {
	items := []Item{
		{Description: "a", UnitPrice: 19.99, Quantity: 3, DiscountPercent: 2.5, TaxPercent: 18},
		{Description: "b", UnitPrice: 1234.56, Quantity: 1, DiscountPercent: 0, TaxPercent: 5},
		{Description: "c", UnitPrice: 7, Quantity: 11, DiscountPercent: 100, TaxPercent: 28},
	}

	forward := Accumulate(ComputeLines(items, false))

	reversed := []Item{items[2], items[1], items[0]}
	backward := Accumulate(ComputeLines(reversed, false))

	assert.InDelta(t, forward.TotalAmount, backward.TotalAmount, 1e-6)
	assert.InDelta(t, forward.TotalTax, backward.TotalTax, 1e-6)
}

func TestAccumulate_RoundThenSum(t *testing.T) {
	// Totals accumulate the per-line rounded values, not the raw
	// ones. Two lines whose raw tax is 0.005 each contribute 0.01
	// after rounding, so the total tax is 0.02 even though the raw
	// sum would round to 0.01. A deliberate switch to sum-then-round
	// must fail here, not slip in silently.
	items := []Item{
		{Description: "a", UnitPrice: 0.50, Quantity: 1, DiscountPercent: 0, TaxPercent: 1},
		{Description: "b", UnitPrice: 0.50, Quantity: 1, DiscountPercent: 0, TaxPercent: 1},
	}
	lines := ComputeLines(items, false)

	totals := Accumulate(lines)

	assert.InDelta(t, 0.02, totals.TotalTax, 1e-9)
}

func TestAccumulate_AmountInWords(t *testing.T) {
	items := []Item{{Description: "a", UnitPrice: 1000, Quantity: 2, DiscountPercent: 10, TaxPercent: 18}}

	totals := Accumulate(ComputeLines(items, true))

	// 2124.00 + 118.00 rounds to 2242.
	assert.Equal(t, "two thousand two hundred and forty-two", totals.AmountInWords)
}
