package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/shortpos"
	"github.com/etnz/shortpos/renderer"
	"github.com/google/subcommands"
)

// largestCmd holds the flags for the 'largest' subcommand.
type largestCmd struct{}

func (*largestCmd) Name() string     { return "largest" }
func (*largestCmd) Synopsis() string { return "print the largest current short position" }
func (*largestCmd) Usage() string {
	return `sps largest

  Prints the largest current short position. When several positions are
  equally large, the first one received (the most recent) is printed.
`
}

func (c *largestCmd) SetFlags(f *flag.FlagSet) {}

func (c *largestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, status := fetchRecords(ctx)
	if largest, ok := shortpos.Largest(records); ok {
		fmt.Fprintln(stdout, renderer.LargestLine(largest))
	}
	return status
}
