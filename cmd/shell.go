package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/shortpos"
	"github.com/etnz/shortpos/renderer"
	"github.com/google/subcommands"
)

// State is the state of the interactive shell.
type State int

const (
	Running State = iota
	Terminated
)

// Shell is the interactive menu over a fixed list of positions.
//
// The records are fetched once before the shell starts and never modified.
type Shell struct {
	records []shortpos.Record
	in      *bufio.Scanner
	out     io.Writer
	csvFile string
	state   State
}

// NewShell creates a Shell reading choices from in and printing to out.
//
// records must not be empty.
func NewShell(records []shortpos.Record, in io.Reader, out io.Writer, csvFile string) *Shell {
	return &Shell{
		records: records,
		in:      bufio.NewScanner(in),
		out:     out,
		csvFile: csvFile,
		state:   Running,
	}
}

// State returns the current state of the shell.
func (s *Shell) State() State { return s.state }

// Run prints all the positions and the largest one, then runs the menu loop
// until the user quits or the input ends.
func (s *Shell) Run() error {
	fmt.Fprintf(s.out, "Haettu rivejä yhteensä: %d\n\n", len(s.records))
	s.listAll()
	fmt.Fprintln(s.out)
	s.showLargest()

	for s.state == Running {
		s.printMenu()
		line, ok := s.readLine()
		if !ok {
			// end of input, quit without saying goodbye
			s.state = Terminated
			break
		}
		s.Do(ParseCommand(line))
	}
	return s.in.Err()
}

// Do executes a single command.
func (s *Shell) Do(cmd Command) {
	switch cmd {
	case ListAll:
		s.listAll()
	case ShowLargest:
		s.showLargest()
	case SumByIssuer:
		for _, t := range shortpos.SumByIssuer(s.records) {
			fmt.Fprintln(s.out, renderer.IssuerLine(t))
		}
	case SearchIssuer:
		s.search()
	case ExportCSV:
		abs, err := renderer.WriteCSVFile(s.csvFile, s.records)
		if err != nil {
			fmt.Fprintf(s.out, "Virhe: %v\n", err)
			return
		}
		fmt.Fprintf(s.out, "Tallennettu: %s\n", abs)
	case Quit:
		s.state = Terminated
		fmt.Fprintln(s.out, "Näkemiin!")
	case Unknown:
		fmt.Fprintln(s.out, "Tuntematon valinta.")
	}
}

func (s *Shell) listAll() {
	for _, r := range s.records {
		fmt.Fprintln(s.out, renderer.Line(r))
	}
}

func (s *Shell) showLargest() {
	if largest, ok := shortpos.Largest(s.records); ok {
		fmt.Fprintln(s.out, renderer.LargestLine(largest))
	}
}

// search prompts for an issuer name and prints the matching positions.
//
// A blank input does nothing.
func (s *Shell) search() {
	fmt.Fprint(s.out, "Hakusana: ")
	needle, ok := s.readLine()
	if !ok {
		s.state = Terminated
		return
	}
	if shortpos.IsBlank(needle) {
		return
	}
	matches := shortpos.FilterByIssuer(s.records, needle)
	if len(matches) == 0 {
		fmt.Fprintln(s.out, "Ei osumia.")
		return
	}
	for _, r := range matches {
		fmt.Fprintln(s.out, renderer.Line(r))
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Valitse toiminto:")
	for _, m := range menu {
		fmt.Fprintf(s.out, "%s) %s\n", m.key, m.label)
	}
	fmt.Fprint(s.out, "Valinta: ")
}

// readLine reads the next input line, false at the end of input.
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// shellCmd holds the flags for the 'shell' subcommand.
type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "inspect the current short positions interactively" }
func (*shellCmd) Usage() string {
	return `sps shell

  Fetches the current short positions once, prints them and the largest
  position, then shows a menu to list, aggregate, search and export them.
  This is the default subcommand.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprintln(stdout, "Haetaan Fivan shorttipositiot...")
	fmt.Fprintln(stdout)

	records, err := newClient().Fetch(ctx)
	if err != nil {
		// the shell never starts without data, this is not a process failure.
		fmt.Fprintln(stdout, startupMessage(err))
		return subcommands.ExitSuccess
	}

	if err := NewShell(records, stdin, stdout, *csvFile).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
