package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sitebook-io/sitebook/renderer"
)

type purchasesCmd struct {
	doc string
}

func (*purchasesCmd) Name() string     { return "purchases" }
func (*purchasesCmd) Synopsis() string { return "list the purchase ledger or print one record" }
func (*purchasesCmd) Usage() string {
	return `sbk purchases [-doc <purchase_id>]

  Lists the append-only purchase ledger in chronological order. With -doc,
  renders a single purchase as a printable record with the company
  letterhead.
`
}

func (p *purchasesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.doc, "doc", "", "Render this purchase id as a printable document.")
}

func (p *purchasesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.doc == "" {
		printMarkdown(renderer.PurchasesMarkdown(book))
		return subcommands.ExitSuccess
	}

	for purchase := range book.Purchases() {
		if purchase.ID == p.doc {
			printMarkdown(renderer.PurchaseDocumentMarkdown(book.Profile(), purchase))
			return subcommands.ExitSuccess
		}
	}
	fmt.Fprintf(os.Stderr, "purchase %q not found\n", p.doc)
	return subcommands.ExitFailure
}
