package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/shortpos"
	"github.com/etnz/shortpos/renderer"
	"github.com/google/subcommands"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "print the short positions on matching issuers" }
func (*searchCmd) Usage() string {
	return `sps search <issuer name>

  Prints the current short positions whose issuer name contains the given
  text, ignoring case.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	needle := strings.Join(f.Args(), " ")
	if shortpos.IsBlank(needle) {
		fmt.Fprintln(os.Stderr, "Error: an issuer name is required.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	records, status := fetchRecords(ctx)
	if records == nil {
		return status
	}
	matches := shortpos.FilterByIssuer(records, needle)
	if len(matches) == 0 {
		fmt.Fprintln(stdout, "Ei osumia.")
	}
	for _, r := range matches {
		fmt.Fprintln(stdout, renderer.Line(r))
	}
	return status
}
