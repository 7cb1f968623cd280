package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLine(t *testing.T) {
	line := NewLine("BR-1001", "Gold Chain 22K", 8.5, 7200, 3500)
	assert.Equal(t, 8.5*7200+3500, line.Total)
}

func TestSubtotalSumsLineTotalsOnly(t *testing.T) {
	lines := []Line{
		NewLine("", "Ring", 4, 7000, 1200),
		NewLine("", "Bangle", 12, 7000, 4000),
	}
	assert.Equal(t, lines[0].Total+lines[1].Total, Subtotal(lines))
	assert.Empty(t, Subtotal(nil))
}

func TestComputeGSTScenario(t *testing.T) {
	lines := []Line{NewLine("", "Chain", 1, 10000, 0)}

	totals := Compute(Input{Lines: lines, SaleType: SaleTypeGST})

	assert.Equal(t, 10000.0, totals.Subtotal)
	assert.Equal(t, 10000.0, totals.PreGSTTotal)
	assert.InDelta(t, 10300.0, totals.GrandTotal, 1e-9)
	assert.InDelta(t, 10300.0, totals.AmountPayable, 1e-9)
	assert.Equal(t, 300.0, totals.GSTAmount)
	assert.Equal(t, 150.0, totals.CGST)
	assert.Equal(t, 150.0, totals.SGST)
	assert.Equal(t, 0.0, totals.IGST)
}

func TestComputeNonGSTScenario(t *testing.T) {
	lines := []Line{NewLine("", "Chain", 1, 10000, 0)}

	totals := Compute(Input{Lines: lines, SaleType: SaleTypeNonGST})

	assert.Equal(t, 10000.0, totals.GrandTotal)
	assert.Equal(t, 10000.0, totals.AmountPayable)
	assert.Equal(t, 0.0, totals.GSTAmount)
	assert.Equal(t, 0.0, totals.CGST)
	assert.Equal(t, 0.0, totals.SGST)
}

func TestComputeOldGoldCredit(t *testing.T) {
	lines := []Line{NewLine("", "Chain", 1, 10000, 0)}

	totals := Compute(Input{
		Lines:        lines,
		OldGoldTotal: 2000,
		SaleType:     SaleTypeGST,
	})

	assert.Equal(t, 8000.0, totals.BaseTaxable)
	assert.InDelta(t, 8240.0, totals.GrandTotal, 1e-9)
}

func TestComputeTargetPayableOverrideKeepsBothTotals(t *testing.T) {
	lines := []Line{NewLine("", "Chain", 1, 10000, 0)}
	target := 10500.0

	totals := Compute(Input{
		Lines:         lines,
		SaleType:      SaleTypeGST,
		TargetPayable: &target,
	})

	// Computed grand total and overridden payable are both kept.
	assert.InDelta(t, 10300.0, totals.GrandTotal, 1e-9)
	assert.Equal(t, 10500.0, totals.AmountPayable)

	// GST is backed out of what the customer actually pays.
	gstRaw := target - target/(1+GSTRate)
	assert.Equal(t, RoundGSTWhole(gstRaw), totals.GSTAmount)
	assert.Equal(t, RoundGSTWhole(totals.GSTAmount/2), totals.CGST)
	assert.Equal(t, totals.CGST, totals.SGST)
}

func TestComputeDiscountIsInformationalOnly(t *testing.T) {
	lines := []Line{NewLine("", "Chain", 1, 10000, 0)}

	totals := Compute(Input{Lines: lines, Discount: 500, SaleType: SaleTypeNonGST})

	assert.Equal(t, 500.0, totals.Discount)
	assert.Equal(t, 10000.0, totals.GrandTotal)
}

func TestSolveSurchargeNoWeightNoRate(t *testing.T) {
	got := SolveSurcharge(8000, 10300, SaleTypeGST, 0, 0)

	assert.Equal(t, 0.0, got.Weight)
	assert.Equal(t, 0.0, got.Rate)
	assert.Equal(t, 2000.0, got.Total)
}

func TestSolveSurchargeHoldsWeightSolvesRate(t *testing.T) {
	got := SolveSurcharge(8000, 10300, SaleTypeGST, 4, 0)

	assert.Equal(t, 4.0, got.Weight)
	assert.InDelta(t, 500.0, got.Rate, 1e-6)
	assert.Equal(t, 2000.0, got.Total)
}

func TestSolveSurchargeHoldsRateSolvesWeight(t *testing.T) {
	got := SolveSurcharge(8000, 10300, SaleTypeGST, 0, 500)

	assert.InDelta(t, 4.0, got.Weight, 1e-6)
	assert.Equal(t, 500.0, got.Rate)
	assert.Equal(t, 2000.0, got.Total)
}

func TestSolveSurchargeNonGSTUsesTargetDirectly(t *testing.T) {
	got := SolveSurcharge(8000, 9500, SaleTypeNonGST, 0, 0)
	assert.Equal(t, 1500.0, got.Total)
}

func TestSolveSurchargeClampsNegativeRequirement(t *testing.T) {
	got := SolveSurcharge(8000, 5000, SaleTypeGST, 3, 0)
	assert.Equal(t, Surcharge{}, got)
}

func TestNewSurcharge(t *testing.T) {
	got := NewSurcharge(2.5, 842.6)
	assert.Equal(t, RoundWhole(2.5*842.6), got.Total)
	assert.Equal(t, 2107.0, got.Total)
}

func TestNewOldGoldDayRateFallback(t *testing.T) {
	got := NewOldGold(3.2, 0, 6800)
	assert.Equal(t, 6800.0, got.Rate)
	assert.Equal(t, RoundCurrency(3.2*6800), got.Total)
}

func TestNewOldGoldExplicitRate(t *testing.T) {
	got := NewOldGold(0.327, 6441.27, 7000)
	assert.Equal(t, 6441.27, got.Rate)
	assert.Equal(t, 2106.30, got.Total)
}

func TestNewOldGoldZeroWeight(t *testing.T) {
	got := NewOldGold(0, 0, 7000)
	assert.Equal(t, 0.0, got.Total)
	assert.Equal(t, 0.0, got.Rate)
}
