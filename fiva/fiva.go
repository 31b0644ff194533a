// Package fiva fetches the current net short positions published by the
// Finnish Financial Supervisory Authority (Finanssivalvonta).
package fiva

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/shortpos"
)

// DefaultEndpoint is the data-table endpoint of the current short positions.
const DefaultEndpoint = "https://www.finanssivalvonta.fi/api/shortselling/datatable/current"

// ErrNoData is returned when the response is well formed but holds no rows.
var ErrNoData = errors.New("no data")

// NetworkError reports a transport failure or a non-2xx HTTP status.
type NetworkError struct {
	URL        string
	StatusCode int // zero if no response was received
	Status     string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot http POST %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("cannot http POST %s: %s", e.URL, e.Status)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not a data-table envelope.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("cannot decode data-table response: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// Client fetches short positions from a data-table endpoint.
type Client struct {
	HTTP     *http.Client
	Endpoint string
	Query    Query
	Verbose  bool // log requests and responses
}

// NewClient returns a Client for the authority's endpoint with the default query.
func NewClient() *Client {
	return &Client{
		HTTP:     http.DefaultClient,
		Endpoint: DefaultEndpoint,
		Query:    DefaultQuery(),
	}
}

// Fetch sends the query once and returns all the records of the response.
//
// There is no retry. Errors are a *NetworkError, a *ParseError or ErrNoData.
func (c *Client) Fetch(ctx context.Context) ([]shortpos.Record, error) {
	body, err := c.post(ctx)
	if err != nil {
		return nil, err
	}
	records, err := Decode(body)
	if err != nil {
		return nil, err
	}
	if total, ok := recordsTotal(body); ok && total > len(records) {
		log.Printf("warning: %d positions available, only the first %d were fetched", total, len(records))
	}
	return records, nil
}

// post sends the form encoded query and returns the response body.
func (c *Client) post(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(c.Query.Values().Encode()))
	if err != nil {
		return nil, fmt.Errorf("cannot create http request %q: %w", c.Endpoint, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: c.Endpoint, Err: err}
	}
	defer resp.Body.Close()
	if c.Verbose {
		log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: c.Endpoint, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: c.Endpoint, StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}
	return body, nil
}

// Decode decodes a data-table response body.
//
// Decoding is all or nothing: a single malformed row fails the whole body.
// The "data" key is matched case-sensitively, like the row keys.
func Decode(body []byte) ([]shortpos.Record, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ParseError{Err: err}
	}
	var data []shortpos.Record
	if raw, ok := env["data"]; ok {
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, &ParseError{Err: err}
		}
	}
	if len(data) == 0 {
		return nil, ErrNoData
	}
	return data, nil
}

// recordsTotal returns the total number of rows available on the server.
//
// It is informative only, so it is read leniently: servers send it either as
// a number or as a string, and it is often missing.
func recordsTotal(body []byte) (int, bool) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return 0, false
	}
	jval, err := jsonpath.Get("$.recordsTotal", v)
	if err != nil {
		return 0, false
	}
	switch total := jval.(type) {
	case float64:
		return int(total), true
	case string:
		n, err := strconv.Atoi(total)
		return n, err == nil
	}
	return 0, false
}
