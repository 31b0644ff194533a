package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/etnz/shortpos/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when invoked by the shell for completion
	cmd.Completion("help", "flags", "commands").Complete(name)

	if err := cmd.LoadEnv(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	flag.Parse()
	if flag.NArg() == 0 {
		// no subcommand
		flag.CommandLine.Parse(append(os.Args[1:], cmd.DefaultCommand))
	}
	os.Exit(int(commander.Execute(context.Background())))
}
