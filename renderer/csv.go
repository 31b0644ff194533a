package renderer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/shortpos"
	"github.com/etnz/shortpos/date"
)

// CSVHeader is the first line of a CSV export.
const CSVHeader = "date;issuer;holder;percent;isin"

// CSVSeparator separates the fields of a CSV export.
const CSVSeparator = ";"

// CSVRow formats a record as a CSV export row, without the line terminator.
//
// Fields are not quoted: a field containing the separator shifts the columns
// of its row.
func CSVRow(r shortpos.Record) string {
	return strings.Join([]string{
		date.Format(r.PositionDate()),
		r.IssuerName(),
		r.PositionHolder(),
		r.NetShortPosition().Compact(),
		r.ISIN(),
	}, CSVSeparator)
}

// WriteCSV writes the header and one row per record to w.
//
// Every line, including the last one, is terminated by "\n".
func WriteCSV(w io.Writer, records []shortpos.Record) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, CSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		if _, err := fmt.Fprintln(bw, CSVRow(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCSVFile creates or truncates the file at path, writes records into it
// and returns the absolute path of the file.
func WriteCSVFile(path string, records []shortpos.Record) (abs string, err error) {
	abs, err = filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %q: %w", path, err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("cannot create csv file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close csv file %q: %w", abs, cerr)
		}
	}()

	if err := WriteCSV(f, records); err != nil {
		return "", fmt.Errorf("cannot write csv file %q: %w", abs, err)
	}
	return abs, nil
}
