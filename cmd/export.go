package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/shortpos/renderer"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the current short positions to a CSV file" }
func (*exportCmd) Usage() string {
	return `sps export [-o <file>]

  Writes the current short positions to a semicolon separated CSV file,
  overwriting it. See 'sps topic csv' for the format.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "CSV file to write. Defaults to the global -csv-file flag.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := c.output
	if path == "" {
		path = *csvFile
	}

	records, status := fetchRecords(ctx)
	if records == nil {
		return status
	}
	abs, err := renderer.WriteCSVFile(path, records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting positions: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Tallennettu: %s\n", abs)
	return subcommands.ExitSuccess
}
