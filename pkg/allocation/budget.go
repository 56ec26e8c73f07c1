package allocation

import "github.com/shopspring/decimal"

// DefaultReservedFraction is the share of the airtime ceiling an employee may
// commit to contract payments. Overridable through configuration.
const DefaultReservedFraction = 0.70

// Calculator computes the remaining airtime budget for an allocation tier.
type Calculator struct {
	reservedFraction decimal.Decimal
}

func NewCalculator(reservedFraction float64) Calculator {
	if reservedFraction <= 0 || reservedFraction > 1 {
		reservedFraction = DefaultReservedFraction
	}
	return Calculator{reservedFraction: decimal.NewFromFloat(reservedFraction)}
}

// Available computes reservedFraction*ceiling minus the sum of the given
// monthly payments, rounded to 2 decimal places. Negative results are
// returned as-is: an over-committed employee has no budget and the caller
// may want to show by how much.
func (c Calculator) Available(airtimeCeiling float64, monthlyPayments []float64) float64 {
	total := decimal.Zero
	for _, p := range monthlyPayments {
		total = total.Add(decimal.NewFromFloat(p))
	}

	available := c.reservedFraction.
		Mul(decimal.NewFromFloat(airtimeCeiling)).
		Sub(total).
		Round(2)

	f, _ := available.Float64()
	return f
}
