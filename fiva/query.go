package fiva

import (
	"net/url"
	"strconv"
)

// Query is a server-side data-table query.
//
// The endpoint follows the DataTables protocol: the client sends paging,
// search, column and ordering parameters as a form and receives one page of
// rows in a JSON envelope.
type Query struct {
	Start       int      // first row
	Length      int      // page size
	Search      string   // global search value, empty for no filtering
	Columns     []string // JSON field of each column
	OrderColumn int      // index in Columns of the sort column
	OrderDir    string   // "asc" or "desc"
	Lang        string   // language of the response
}

// Columns of the short position table, in the order used by the web site.
var Columns = []string{
	"positionHolder",
	"issuerName",
	"isinCode",
	"netShortPositionInPercent",
	"positionDate",
}

// DefaultQuery returns the query for all current positions, most recent first.
//
// 1000 rows is enough to fetch all the active positions in a single page.
func DefaultQuery() Query {
	return Query{
		Start:       0,
		Length:      1000,
		Search:      "",
		Columns:     Columns,
		OrderColumn: 4, // positionDate
		OrderDir:    "desc",
		Lang:        "fi",
	}
}

// Values encodes the query as form values.
func (q Query) Values() url.Values {
	form := url.Values{}
	form.Set("start", strconv.Itoa(q.Start))
	form.Set("length", strconv.Itoa(q.Length))
	form.Set("search[value]", q.Search)
	form.Set("search[regex]", "false")
	for i, column := range q.Columns {
		form.Set("columns["+strconv.Itoa(i)+"][data]", column)
	}
	form.Set("order[0][column]", strconv.Itoa(q.OrderColumn))
	form.Set("order[0][dir]", q.OrderDir)
	form.Set("lang", q.Lang)
	return form
}
