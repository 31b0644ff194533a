package fiva

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const twoRows = `{"data":[{"positionHolder":"Fund A","issuerName":"Acme Oy","isinCode":"FI001","netShortPositionInPercent":1.5,"positionDate":"2025-01-02T00:00:00"},{"positionHolder":"Fund B","issuerName":"Acme Oy","isinCode":"FI001","netShortPositionInPercent":3.25,"positionDate":"2025-01-03T00:00:00"}]}`

// serve starts a test server answering every request with status and body.
// It records the last request form in got.
func serve(t *testing.T, status int, body string, got *http.Request) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got != nil {
			if err := r.ParseForm(); err != nil {
				t.Errorf("ParseForm() unexpected error = %v", err)
			}
			*got = *r
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c := NewClient()
	c.HTTP = srv.Client()
	c.Endpoint = srv.URL
	return c
}

func TestFetch(t *testing.T) {
	var req http.Request
	c := serve(t, http.StatusOK, twoRows, &req)

	records, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() unexpected error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Fetch() returned %d records, want 2", len(records))
	}
	if got := records[1].PositionHolder(); got != "Fund B" {
		t.Errorf("Fetch() records[1].PositionHolder() = %q, want %q", got, "Fund B")
	}
	if got := records[1].NetShortPosition(); got != 3.25 {
		t.Errorf("Fetch() records[1].NetShortPosition() = %v, want 3.25", got)
	}

	if req.Method != http.MethodPost {
		t.Errorf("request method = %q, want POST", req.Method)
	}
	if got := req.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
		t.Errorf("request Content-Type = %q, want form urlencoded", got)
	}
	want := map[string]string{
		"start":            "0",
		"length":           "1000",
		"search[value]":    "",
		"search[regex]":    "false",
		"columns[0][data]": "positionHolder",
		"columns[1][data]": "issuerName",
		"columns[2][data]": "isinCode",
		"columns[3][data]": "netShortPositionInPercent",
		"columns[4][data]": "positionDate",
		"order[0][column]": "4",
		"order[0][dir]":    "desc",
		"lang":             "fi",
	}
	got := make(map[string]string)
	for k := range req.PostForm {
		got[k] = req.PostForm.Get(k)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("request form mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr func(error) bool
	}{
		{"not found", http.StatusNotFound, "missing", isNetworkError(http.StatusNotFound)},
		{"server error", http.StatusInternalServerError, twoRows, isNetworkError(http.StatusInternalServerError)},
		{"not json", http.StatusOK, "<html>maintenance</html>", isParseError},
		{"wrong shape", http.StatusOK, `{"data":{"positionHolder":"Fund A"}}`, isParseError},
		{"top level array", http.StatusOK, `[]`, isParseError},
		{"malformed row", http.StatusOK, `{"data":[{"netShortPositionInPercent":1.5},{"netShortPositionInPercent":"big"}]}`, isParseError},
		{"null position", http.StatusOK, `{"data":[{"positionHolder":"A","issuerName":"X","netShortPositionInPercent":null}]}`, isParseError},
		{"empty data", http.StatusOK, `{"data":[]}`, isNoData},
		{"data key casing", http.StatusOK, `{"DATA":[{"positionHolder":"Fund A","netShortPositionInPercent":1.5}]}`, isNoData},
		{"null data", http.StatusOK, `{"data":null}`, isNoData},
		{"missing data", http.StatusOK, `{"recordsTotal":0}`, isNoData},
		{"null envelope", http.StatusOK, `null`, isNoData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := serve(t, tt.status, tt.body, nil)
			records, err := c.Fetch(context.Background())
			if !tt.wantErr(err) {
				t.Errorf("Fetch() error = %v (%T), unexpected", err, err)
			}
			if records != nil {
				t.Errorf("Fetch() records = %v, want nil", records)
			}
		})
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore

	c := NewClient()
	c.Endpoint = srv.URL
	_, err := c.Fetch(context.Background())
	var nerr *NetworkError
	if !errors.As(err, &nerr) {
		t.Fatalf("Fetch() error = %v, want a *NetworkError", err)
	}
	if nerr.StatusCode != 0 || nerr.Err == nil {
		t.Errorf("Fetch() NetworkError = %+v, want a transport error", nerr)
	}
}

func TestFetchTruncationWarning(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	body := strings.Replace(twoRows, `{"data"`, `{"recordsTotal":"1500","data"`, 1)
	c := serve(t, http.StatusOK, body, nil)
	if _, err := c.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() unexpected error = %v", err)
	}
	if !strings.Contains(buf.String(), "1500 positions available") {
		t.Errorf("Fetch() log = %q, want a truncation warning", buf.String())
	}
}

func TestRecordsTotal(t *testing.T) {
	tests := []struct {
		body   string
		want   int
		wantOk bool
	}{
		{`{"recordsTotal":42,"data":[]}`, 42, true},
		{`{"recordsTotal":"42","data":[]}`, 42, true},
		{`{"recordsTotal":"many"}`, 0, false},
		{`{"data":[]}`, 0, false},
		{`not json`, 0, false},
	}
	for _, tt := range tests {
		got, ok := recordsTotal([]byte(tt.body))
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("recordsTotal(%s) = %d, %v, want %d, %v", tt.body, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestDefaultQueryColumnsOrder(t *testing.T) {
	q := DefaultQuery()
	if got := q.Columns[q.OrderColumn]; got != "positionDate" {
		t.Errorf("DefaultQuery() orders by %q, want %q", got, "positionDate")
	}
}

func isNetworkError(status int) func(error) bool {
	return func(err error) bool {
		var nerr *NetworkError
		return errors.As(err, &nerr) && nerr.StatusCode == status
	}
}

func isParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}

func isNoData(err error) bool { return errors.Is(err, ErrNoData) }
