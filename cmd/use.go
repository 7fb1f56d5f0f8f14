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

type useCmd struct {
	project string
	product string
	qty     string
}

func (*useCmd) Name() string     { return "use" }
func (*useCmd) Synopsis() string { return "consume stock into a project at the frozen average cost" }
func (*useCmd) Usage() string {
	return `sbk use -project <id> -product <id> -qty <quantity>

  Debits the catalog and charges the project's material log with the cost
  frozen at this instant. Rejected when the project is Completed or the
  stock cannot cover the quantity.
`
}

func (p *useCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.project, "project", "", "Project id (required).")
	f.StringVar(&p.product, "product", "", "Product id (required).")
	f.StringVar(&p.qty, "qty", "", "Quantity to consume (required).")
}

func (p *useCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	qty, err := decimal.NewFromString(p.qty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", p.qty, err)
		return subcommands.ExitUsageError
	}

	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cost, err := book.ConsumeMaterial(p.project, p.product, sitebook.Q(qty))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Consumed %s of %s into %s for %s.\n", qty, p.product, p.project, cost.InCurrency(book.Currency()))
	return subcommands.ExitSuccess
}
