package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/shortpos"
	"github.com/etnz/shortpos/date"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a full report of records as markdown: the largest
// position, the total per issuer (in the given order) and every position.
func ReportMarkdown(records []shortpos.Record, order shortpos.IssuerOrder) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Voimassa olevat nettoshorttipositiot")
	doc.PlainText(fmt.Sprintf("Positioita yhteensä: %d", len(records)))

	if largest, ok := shortpos.Largest(records); ok {
		doc.PlainText(md.Bold(LargestLine(largest)))
	}

	totals := shortpos.SumByIssuer(records)
	shortpos.SortIssuerTotals(totals, order)
	doc.H2("Liikkeeseenlaskijat")
	issuers := md.TableSet{
		Header: []string{"Liikkeeseenlaskija", "Yhteensä"},
	}
	for _, t := range totals {
		issuers.Rows = append(issuers.Rows, []string{t.Issuer, shortpos.CompactDecimal(t.Total) + "%"})
	}
	doc.Table(issuers)

	doc.H2("Positiot")
	positions := md.TableSet{
		Header: []string{"Päivä", "Liikkeeseenlaskija", "Positionhaltija", "Positio", "ISIN"},
	}
	for _, r := range records {
		positions.Rows = append(positions.Rows, []string{
			date.Format(r.PositionDate()),
			r.IssuerName(),
			r.PositionHolder(),
			r.NetShortPosition().String(),
			r.ISIN(),
		})
	}
	doc.Table(positions)

	return doc.String()
}
