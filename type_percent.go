package shortpos

import "github.com/shopspring/decimal"

// Percent is a percentage as disclosed by the authority, e.g. 0.55 for 0.55%.
type Percent float64

// percentPlaces is the number of fractional digits kept for display.
const percentPlaces = 2

// Decimal returns the exact decimal value of p.
func (p Percent) Decimal() decimal.Decimal { return decimal.NewFromFloat(float64(p)) }

// Compact formats p with at most two fractional digits and no trailing zeros,
// e.g. "1.5", "3.25" or "3".
func (p Percent) Compact() string { return CompactDecimal(p.Decimal()) }

func (p Percent) String() string { return p.Compact() + "%" }

// CompactDecimal formats d the same way as [Percent.Compact].
func CompactDecimal(d decimal.Decimal) string {
	// Round is half away from zero, String trims trailing zeros.
	return d.Round(percentPlaces).String()
}
