package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/shortpos"
	"github.com/etnz/shortpos/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	sort string
	raw  bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a report of the current short positions" }
func (*reportCmd) Usage() string {
	return `sps report [-sort appearance|name|total] [-raw]

  Displays the largest position, the total per issuer and all the current
  short positions as a formatted document.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "total", "order of the issuers: appearance, name or total")
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, ok := shortpos.ParseIssuerOrder(c.sort)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: invalid sort order %q\n", c.sort)
		return subcommands.ExitUsageError
	}

	records, status := fetchRecords(ctx)
	if records == nil {
		return status
	}
	doc := renderer.ReportMarkdown(records, order)
	if c.raw {
		fmt.Fprint(stdout, doc)
		return subcommands.ExitSuccess
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
