package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sitebook-io/sitebook/renderer"
)

type inventoryCmd struct {
	low bool
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list catalog products with stock and average rate" }
func (*inventoryCmd) Usage() string {
	return `sbk inventory [-low]

  Lists the catalog with current stock, reorder threshold and
  weighted-average rate. -low restricts to products needing a reorder.
`
}

func (p *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.low, "low", false, "Show only products at or under their reorder threshold.")
}

func (p *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if book.IsEmpty() {
		fmt.Fprintln(os.Stderr, "The book is empty. Try 'sbk seed' to load the demonstration data.")
	}

	if p.low {
		printMarkdown(renderer.LowStockMarkdown(book))
	} else {
		printMarkdown(renderer.InventoryMarkdown(book))
	}
	return subcommands.ExitSuccess
}
