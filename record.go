package shortpos

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Record is one net short position disclosure.
//
// A Record is immutable once created, use [NewRecord] or decode it from JSON.
type Record struct {
	holder  string
	issuer  string
	isin    string
	percent Percent
	date    string
}

// NewRecord creates a new Record.
//
// positionDate is kept as received, it is not required to be a valid date.
func NewRecord(holder, issuer, isin string, percent Percent, positionDate string) Record {
	return Record{
		holder:  holder,
		issuer:  issuer,
		isin:    isin,
		percent: percent,
		date:    positionDate,
	}
}

// PositionHolder returns the entity holding the short position.
func (r Record) PositionHolder() string { return r.holder }

// IssuerName returns the company targeted by the short position.
func (r Record) IssuerName() string { return r.issuer }

// ISIN returns the security identifier.
func (r Record) ISIN() string { return r.isin }

// NetShortPosition returns the disclosed percentage.
func (r Record) NetShortPosition() Percent { return r.percent }

// PositionDate returns the raw position date as received from the source.
func (r Record) PositionDate() string { return r.date }

// wirePercent is the wire format of the net short position.
//
// The position is the whole point of a row, a null value fails the document.
type wirePercent float64

func (p *wirePercent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return errors.New("netShortPositionInPercent cannot be null")
	}
	return json.Unmarshal(data, (*float64)(p))
}

// UnmarshalJSON implements the json specific way to unmarshall a Record.
//
// Keys are matched case-sensitively. Missing fields and null strings decode
// to their zero value, a null position or any type mismatch is an error.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var (
		holder, issuer, isin, date string
		percent                    wirePercent
	)
	for key, dst := range map[string]any{
		"positionHolder":            &holder,
		"issuerName":                &issuer,
		"isinCode":                  &isin,
		"netShortPositionInPercent": &percent,
		"positionDate":              &date,
	} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
	}
	*r = NewRecord(holder, issuer, isin, Percent(percent), date)
	return nil
}

// check that a Record pointer is a valid json unmarshaller type.
var _ json.Unmarshaler = (*Record)(nil)
