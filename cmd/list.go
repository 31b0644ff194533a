package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/shortpos/renderer"
	"github.com/google/subcommands"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "print all the current short positions" }
func (*listCmd) Usage() string {
	return `sps list

  Prints one line per current short position, most recent first:

    <date> | <issuer> | <holder> | <percent>%
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, status := fetchRecords(ctx)
	for _, r := range records {
		fmt.Fprintln(stdout, renderer.Line(r))
	}
	return status
}
