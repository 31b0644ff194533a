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

// issuersCmd holds the flags for the 'issuers' subcommand.
type issuersCmd struct {
	sort string
}

func (*issuersCmd) Name() string     { return "issuers" }
func (*issuersCmd) Synopsis() string { return "print the total short position per issuer" }
func (*issuersCmd) Usage() string {
	return `sps issuers [-sort appearance|name|total]

  Prints the sum of all the current short positions on each issuer.
`
}

func (c *issuersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "appearance", "order of the issuers: appearance, name or total")
}

func (c *issuersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, ok := shortpos.ParseIssuerOrder(c.sort)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: invalid sort order %q\n", c.sort)
		return subcommands.ExitUsageError
	}

	records, status := fetchRecords(ctx)
	totals := shortpos.SumByIssuer(records)
	shortpos.SortIssuerTotals(totals, order)
	for _, t := range totals {
		fmt.Fprintln(stdout, renderer.IssuerLine(t))
	}
	return status
}
