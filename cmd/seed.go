package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "load the demonstration catalog and projects" }
func (*seedCmd) Usage() string {
	return `sbk seed

  Replaces products and projects with a small demonstration set and clears
  the purchase ledger. The business profile is kept.
`
}

func (*seedCmd) SetFlags(f *flag.FlagSet) {}

func (p *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := book.SeedSampleData(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Demonstration data loaded.")
	return subcommands.ExitSuccess
}
