package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the whole book from a snapshot document" }
func (*importCmd) Usage() string {
	return `sbk import -i <file>

  Validates a JSON snapshot document and replaces the entire book with it.
  A malformed document changes nothing.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "i", "", "Snapshot file to import (required).")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <file> is required")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(p.input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening snapshot file:", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := book.ImportSnapshot(file); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Snapshot imported.")
	return subcommands.ExitSuccess
}
