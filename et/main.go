// Command et tracks personal expenses from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/expense/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.LoadConfig()

	// exits when invoked by the shell for completion.
	cmd.Completion().Complete("et")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) && !isBuiltin(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// isBuiltin reports whether name is one of the commander's help commands.
func isBuiltin(c *subcommands.Commander, name string) bool {
	for _, b := range []subcommands.Command{c.HelpCommand(), c.FlagsCommand(), c.CommandsCommand()} {
		if b.Name() == name {
			return true
		}
	}
	return false
}
