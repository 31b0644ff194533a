package cmd

import "strings"

// Command is a menu choice of the interactive shell.
type Command int

const (
	Unknown Command = iota
	ListAll
	ShowLargest
	SumByIssuer
	SearchIssuer
	ExportCSV
	Quit
)

// menu lists the commands in display order with their input key and label.
var menu = []struct {
	key   string
	cmd   Command
	label string
}{
	{"1", ListAll, "Näytä kaikki positiot"},
	{"2", ShowLargest, "Näytä suurin positio"},
	{"3", SumByIssuer, "Positiot yhteensä liikkeeseenlaskijoittain"},
	{"4", SearchIssuer, "Hae liikkeeseenlaskijan nimellä"},
	{"5", ExportCSV, "Tallenna CSV-tiedostoon"},
	{"0", Quit, "Lopeta"},
}

// ParseCommand returns the command for an input line.
//
// Surrounding spaces are ignored, anything but a menu key is Unknown.
func ParseCommand(line string) Command {
	line = strings.TrimSpace(line)
	for _, m := range menu {
		if m.key == line {
			return m.cmd
		}
	}
	return Unknown
}

func (c Command) String() string {
	switch c {
	case ListAll:
		return "list-all"
	case ShowLargest:
		return "show-largest"
	case SumByIssuer:
		return "sum-by-issuer"
	case SearchIssuer:
		return "search-issuer"
	case ExportCSV:
		return "export-csv"
	case Quit:
		return "quit"
	case Unknown:
	}
	return "unknown"
}
