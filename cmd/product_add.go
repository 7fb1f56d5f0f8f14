package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/sitebook-io/sitebook"
)

type productAddCmd struct {
	name     string
	category string
	unit     string
	minStock string
}

func (*productAddCmd) Name() string     { return "add-product" }
func (*productAddCmd) Synopsis() string { return "register a catalog item with zero stock" }
func (*productAddCmd) Usage() string {
	return `sbk add-product -name <name> [-category <category>] [-unit <unit>] [-min <quantity>]

  Registers an inventory item before its first purchase. Stock and average
  rate start at zero; the first receipt sets the rate.
`
}

func (p *productAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Item name (required).")
	f.StringVar(&p.category, "category", sitebook.Electrical, "Item category.")
	f.StringVar(&p.unit, "unit", "No.s", "Unit of measure label.")
	f.StringVar(&p.minStock, "min", "10", "Reorder threshold.")
}

func (p *productAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	min, err := decimal.NewFromString(p.minStock)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -min %q: %v\n", p.minStock, err)
		return subcommands.ExitUsageError
	}

	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	product, err := book.RegisterProduct(p.name, p.category, p.unit, sitebook.Q(min))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Registered %s as %s.\n", product.Name, product.ID)
	return subcommands.ExitSuccess
}
