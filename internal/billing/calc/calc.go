// Package calc is the pure billing computation engine: line totals, the
// old-gold credit sub-ledger, the value-added surcharge solver, and the
// bill aggregate with its GST split. No I/O, no clocks, no timers; the
// UI-side debouncing that drives these functions lives with the callers.
package calc

// GSTRate is the flat GST applied to gold sales, split evenly between
// CGST and SGST (1.5% each).
const GSTRate = 0.03

// SaleType selects whether GST applies to a bill.
type SaleType string

const (
	SaleTypeGST    SaleType = "gst"
	SaleTypeNonGST SaleType = "non_gst"
)

// Line is one priced article on a bill. Total is fixed at construction;
// correcting a line means removing it and adding a fresh one.
type Line struct {
	Barcode       string  `json:"barcode,omitempty"`
	Name          string  `json:"name"`
	Weight        float64 `json:"weight"` // grams
	Rate          float64 `json:"rate"`   // currency per gram
	MakingCharges float64 `json:"making_charges"`
	Total         float64 `json:"total"`
}

// NewLine prices an article: weight x rate plus making charges. Items carry
// no item-level tax.
func NewLine(barcode, name string, weight, rate, makingCharges float64) Line {
	return Line{
		Barcode:       barcode,
		Name:          name,
		Weight:        weight,
		Rate:          rate,
		MakingCharges: makingCharges,
		Total:         weight*rate + makingCharges,
	}
}

// Subtotal sums line totals. Old-gold credit and the surcharge are not part
// of this sum.
func Subtotal(lines []Line) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.Total
	}
	return sum
}

// Surcharge is the "MC / Value Added" charge: an extra weight x rate amount
// on the taxable base, independent of any single line.
type Surcharge struct {
	Weight float64 `json:"weight"`
	Rate   float64 `json:"rate"`
	Total  float64 `json:"total"`
}

// NewSurcharge computes the surcharge from its weight and rate inputs.
func NewSurcharge(weight, rate float64) Surcharge {
	return Surcharge{
		Weight: weight,
		Rate:   rate,
		Total:  RoundWhole(weight * rate),
	}
}

// SolveSurcharge works the surcharge backward from a payable amount the
// operator typed. The required surcharge is whatever lifts the taxable base
// to the target's tax-exclusive value; a negative requirement clamps to
// zero (the target is below what the bill already carries). Whichever of
// the current weight or rate is nonzero is held fixed and the other leg
// solved; with neither set, only the total is stored.
func SolveSurcharge(baseTaxable, targetPayable float64, saleType SaleType, currentWeight, currentRate float64) Surcharge {
	targetTaxable := targetPayable
	if saleType == SaleTypeGST {
		targetTaxable = targetPayable / (1 + GSTRate)
	}

	required := targetTaxable - baseTaxable
	if required < 0 {
		return Surcharge{}
	}

	switch {
	case currentWeight > 0:
		return Surcharge{
			Weight: currentWeight,
			Rate:   required / currentWeight,
			Total:  RoundWhole(required),
		}
	case currentRate > 0:
		return Surcharge{
			Weight: required / currentRate,
			Rate:   currentRate,
			Total:  RoundWhole(required),
		}
	default:
		return Surcharge{Total: RoundWhole(required)}
	}
}

// OldGold is the customer-supplied gold credited against the bill.
type OldGold struct {
	Weight float64 `json:"weight"`
	Rate   float64 `json:"rate"` // effective rate after day-rate fallback
	Total  float64 `json:"total"`
}

// NewOldGold values exchanged gold. A blank rate falls back to the day's
// gold rate before the weight is priced.
func NewOldGold(weight, rate, dayRate float64) OldGold {
	if weight > 0 && rate == 0 {
		rate = dayRate
	}
	return OldGold{
		Weight: weight,
		Rate:   rate,
		Total:  RoundCurrency(weight * rate),
	}
}

// Input feeds one bill computation.
type Input struct {
	Lines        []Line
	OldGoldTotal float64
	Surcharge    Surcharge
	Discount     float64
	SaleType     SaleType
	// TargetPayable overrides the final amount when the operator typed one.
	TargetPayable *float64
}

// Totals is the fully derived money state of a bill.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	BaseTaxable float64 `json:"base_taxable"` // subtotal minus old-gold credit, before surcharge
	PreGSTTotal float64 `json:"pre_gst_total"`
	// GrandTotal is the computed total; AmountPayable is what the customer
	// actually pays. They differ only under a typed override, and both are
	// persisted.
	GrandTotal    float64 `json:"grand_total"`
	AmountPayable float64 `json:"amount_payable"`
	GSTAmount     float64 `json:"gst_amount"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	// Discount rides along for display; it is not subtracted here.
	Discount float64 `json:"discount"`
}

// Compute derives every bill-level amount from the input state. GST is
// backed out of the final payable so a typed override stays internally
// consistent with its printed tax split.
func Compute(in Input) Totals {
	subtotal := Subtotal(in.Lines)
	baseTaxable := subtotal - in.OldGoldTotal
	preGST := baseTaxable + in.Surcharge.Total

	grandTotal := preGST
	if in.SaleType == SaleTypeGST {
		grandTotal = preGST * (1 + GSTRate)
	}

	amountPayable := grandTotal
	if in.TargetPayable != nil {
		amountPayable = *in.TargetPayable
	}

	var gstAmount, cgst, sgst float64
	if in.SaleType == SaleTypeGST {
		gstRaw := amountPayable - amountPayable/(1+GSTRate)
		gstAmount = RoundGSTWhole(gstRaw)
		cgst = RoundGSTWhole(gstAmount / 2)
		sgst = cgst
	}

	return Totals{
		Subtotal:      subtotal,
		BaseTaxable:   baseTaxable,
		PreGSTTotal:   preGST,
		GrandTotal:    grandTotal,
		AmountPayable: amountPayable,
		GSTAmount:     gstAmount,
		CGST:          cgst,
		SGST:          sgst,
		IGST:          0, // reserved for interstate sales
		Discount:      in.Discount,
	}
}
