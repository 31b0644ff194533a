package shortpos

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// this file contains the stateless queries over a list of records.
// None of them modify their input.

// Largest returns the record with the largest net short position.
//
// Ties resolve to the first such record in the list order.
// It returns false if records is empty.
func Largest(records []Record) (largest Record, ok bool) {
	for i, r := range records {
		if i == 0 || r.percent > largest.percent {
			largest = r
		}
	}
	return largest, len(records) > 0
}

// IssuerTotal is the sum of all net short positions on a single issuer.
type IssuerTotal struct {
	Issuer string
	Total  decimal.Decimal
}

// SumByIssuer sums net short positions per issuer name.
//
// Issuer names are compared exactly (case-sensitive). Totals are listed in the
// order of the first appearance of each issuer in records.
func SumByIssuer(records []Record) []IssuerTotal {
	index := make(map[string]int)
	var totals []IssuerTotal
	for _, r := range records {
		i, exists := index[r.issuer]
		if !exists {
			i = len(totals)
			index[r.issuer] = i
			totals = append(totals, IssuerTotal{Issuer: r.issuer, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(r.percent.Decimal())
	}
	return totals
}

// IssuerOrder is an ordering of issuer totals.
type IssuerOrder int

const (
	ByAppearance IssuerOrder = iota // order of first appearance, as returned by SumByIssuer
	ByName                          // issuer name, ascending
	ByTotal                         // total, descending
)

// ParseIssuerOrder parses "appearance", "name" or "total".
func ParseIssuerOrder(s string) (IssuerOrder, bool) {
	switch s {
	case "", "appearance":
		return ByAppearance, true
	case "name":
		return ByName, true
	case "total":
		return ByTotal, true
	}
	return ByAppearance, false
}

// SortIssuerTotals sorts totals in place according to order.
//
// The sort is stable, equal elements keep their order of appearance.
func SortIssuerTotals(totals []IssuerTotal, order IssuerOrder) {
	switch order {
	case ByName:
		slices.SortStableFunc(totals, func(a, b IssuerTotal) int { return strings.Compare(a.Issuer, b.Issuer) })
	case ByTotal:
		slices.SortStableFunc(totals, func(a, b IssuerTotal) int { return b.Total.Cmp(a.Total) })
	case ByAppearance:
	}
}

// FilterByIssuer returns the records whose issuer name contains needle,
// ignoring case.
//
// A blank needle is not a query: it returns nil rather than all records.
// Records without an issuer name never match.
func FilterByIssuer(records []Record, needle string) []Record {
	if IsBlank(needle) {
		return nil
	}
	fold := cases.Fold()
	needle = fold.String(needle)

	var matches []Record
	for _, r := range records {
		if r.issuer == "" {
			continue
		}
		if strings.Contains(fold.String(r.issuer), needle) {
			matches = append(matches, r)
		}
	}
	return matches
}

// IsBlank reports whether s is empty or only white space.
func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }
