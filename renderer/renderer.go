// Package renderer formats short positions for the console, CSV files and
// markdown reports.
package renderer

import (
	"fmt"

	"github.com/etnz/shortpos"
	"github.com/etnz/shortpos/date"
)

// Line formats a record as "<date> | <issuer> | <holder> | <percent>%".
func Line(r shortpos.Record) string {
	return fmt.Sprintf("%s | %s | %s | %s",
		date.Format(r.PositionDate()),
		r.IssuerName(),
		r.PositionHolder(),
		r.NetShortPosition(),
	)
}

// LargestLine formats the largest position summary.
func LargestLine(r shortpos.Record) string {
	return fmt.Sprintf("Suurin positio: %s (%s / %s)", r.NetShortPosition(), r.PositionHolder(), r.IssuerName())
}

// IssuerLine formats an issuer total as "<issuer> | <total>%".
func IssuerLine(t shortpos.IssuerTotal) string {
	return fmt.Sprintf("%s | %s%%", t.Issuer, shortpos.CompactDecimal(t.Total))
}
