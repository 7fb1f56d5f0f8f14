package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/sitebook-io/sitebook"
	"github.com/sitebook-io/sitebook/renderer"
)

type reportCmd struct {
	month string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "monthly purchase report with aggregate totals" }
func (*reportCmd) Usage() string {
	return `sbk report [-month <YYYY-MM>]

  Reports the purchases of one calendar month (default: the current one)
  with their aggregate sub total, GST and grand total.
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "month", "", "Calendar month to report on, e.g. 2024-07. Defaults to the current month.")
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year, month := sitebook.Today().Year(), sitebook.Today().Month()
	if p.month != "" {
		t, err := time.Parse("2006-01", p.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -month %q: %v\n", p.month, err)
			return subcommands.ExitUsageError
		}
		year, month = t.Year(), t.Month()
	}

	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := book.MonthlyPurchases(year, month)
	printMarkdown(renderer.MonthlyReportMarkdown(book.Profile(), report))
	return subcommands.ExitSuccess
}
