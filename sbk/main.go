// Command sbk keeps the books of a small contracting business: inventory
// with weighted-average costing, a GST purchase ledger, project material
// consumption and snapshot backups.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sitebook-io/sitebook/cmd"
)

func main() {
	// Shell completion runs before anything else: when COMP_LINE is set the
	// call below prints completions and exits.
	completer().Complete("sbk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completer() *complete.Command {
	leaf := func() *complete.Command { return &complete.Command{} }
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"book-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"add-product":    leaf(),
			"inventory":      leaf(),
			"buy":            leaf(),
			"purchases":      leaf(),
			"report":         leaf(),
			"new-project":    leaf(),
			"project-status": leaf(),
			"use":            leaf(),
			"projects":       leaf(),
			"export":         {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"import":         {Flags: map[string]complete.Predictor{"i": predict.Files("*.json")}},
			"seed":           leaf(),
			"query":          leaf(),
			"insights":       leaf(),
			"profile":        leaf(),
			"topic":          leaf(),
		},
	}
}
