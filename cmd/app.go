// Package cmd implements the CLI application to inspect net short positions.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/shortpos"
	"github.com/etnz/shortpos/fiva"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands returns all the subcommands of the application.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&shellCmd{},
		&listCmd{},
		&largestCmd{},
		&issuersCmd{},
		&searchCmd{},
		&exportCmd{},
		&reportCmd{},
		&topicCmd{},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		group := "positions"
		if cmd.Name() == "topic" {
			group = "help"
		}
		c.Register(cmd, group)
	}
}

// DefaultCommand is the subcommand run when none is given.
const DefaultCommand = "shell"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var endpoint = flag.String("endpoint", fiva.DefaultEndpoint, "URL of the short positions data-table endpoint")
var csvFile = flag.String("csv-file", "report.csv", "Path of the CSV export file")
var verbose = flag.Bool("v", false, "log HTTP requests")

// stdin and stdout are the console, replaced in tests.
var stdin io.Reader = os.Stdin
var stdout io.Writer = os.Stdout

// Environment variables overriding the global flags defaults.
const (
	EnvEndpoint = "SPS_ENDPOINT"
	EnvCSVFile  = "SPS_CSV_FILE"
	EnvVerbose  = "SPS_VERBOSE"
)

// envFlags maps environment variables to global flag names.
var envFlags = map[string]string{
	EnvEndpoint: "endpoint",
	EnvCSVFile:  "csv-file",
	EnvVerbose:  "v",
}

// LoadEnv sets flags from the environment, loading the given .env files
// first (".env" if none). A missing .env file is not an error, unset or
// empty variables leave the flag default.
//
// It must be called before flags.Parse() so that the command line wins.
func LoadEnv(flags *flag.FlagSet, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load environment file: %w", err)
	}
	for env, name := range envFlags {
		value := os.Getenv(env)
		if value == "" || flags.Lookup(name) == nil {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, value, err)
		}
	}
	return nil
}

// newClient returns a fiva client configured from the global flags.
func newClient() *fiva.Client {
	c := fiva.NewClient()
	c.Endpoint = *endpoint
	c.Verbose = *verbose
	return c
}

// startupMessage converts a fetch error into the message shown to the user.
func startupMessage(err error) string {
	var perr *fiva.ParseError
	var nerr *fiva.NetworkError
	switch {
	case errors.Is(err, fiva.ErrNoData):
		return "Ei dataa."
	case errors.As(err, &perr):
		return "JSON-virhe: " + perr.Err.Error()
	case errors.As(err, &nerr):
		return "Haku epäonnistui: " + nerr.Error()
	default:
		return "Virhe: " + err.Error()
	}
}

// fetchRecords fetches the positions for a non interactive subcommand.
//
// On failure it prints the reason and returns nil records with the exit
// status to return. No data is not a failure.
func fetchRecords(ctx context.Context) ([]shortpos.Record, subcommands.ExitStatus) {
	records, err := newClient().Fetch(ctx)
	switch {
	case errors.Is(err, fiva.ErrNoData):
		fmt.Fprintln(stdout, startupMessage(err))
		return nil, subcommands.ExitSuccess
	case err != nil:
		fmt.Fprintln(os.Stderr, startupMessage(err))
		return nil, subcommands.ExitFailure
	}
	return records, subcommands.ExitSuccess
}

// printMarkdown renders a markdown document on the console.
//
// The raw markdown is printed if it cannot be rendered.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(doc); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, doc)
}
