package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/sitebook-io/sitebook"
	"github.com/sitebook-io/sitebook/renderer"
)

type buyCmd struct {
	vendor string
	items  itemList
	print  bool
}

// itemList collects repeated -item flags.
type itemList []string

func (l *itemList) String() string { return strings.Join(*l, ", ") }
func (l *itemList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a vendor purchase and receive it into the catalog" }
func (*buyCmd) Usage() string {
	return `sbk buy -vendor <name> -item "<id>|<name>|<qty>|<rate>[|<gst%>]" [-item ...] [-print]

  Records a purchase as one atomic unit. Every line is received into the
  catalog: existing products reblend their weighted-average rate, unseen
  product ids are created with policy defaults. GST defaults to 18%.

Usage Examples:
$ sbk buy -vendor "Gupta Traders" -item "PROD-1|Copper Wire 2.5mm|50|45"
$ sbk buy -vendor "Highway Supplies" -item "PROD-2|Bitumen Grade 60/70|5|12600|18" -print
`
}

func (p *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.vendor, "vendor", "", "Vendor name (required).")
	f.Var(&p.items, "item", "Purchase line as id|name|qty|rate[|gst%]. Repeatable.")
	f.BoolVar(&p.print, "print", false, "Render the recorded purchase document.")
}

func (p *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cart := &sitebook.Cart{}
	currency := book.Currency()
	for _, spec := range p.items {
		id, name, qty, rate, gst, err := parseItem(spec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -item %q: %v\n", spec, err)
			return subcommands.ExitUsageError
		}
		cart.AddLine(id, name, sitebook.Q(qty), sitebook.M(rate, currency), gst)
	}

	purchase, err := book.RecordPurchase(p.vendor, cart)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded purchase %s from %s, %d line(s).\n", purchase.ID, purchase.VendorName, len(purchase.Items))
	if p.print {
		printMarkdown(renderer.PurchaseDocumentMarkdown(book.Profile(), purchase))
	}
	return subcommands.ExitSuccess
}

// parseItem splits a purchase line spec id|name|qty|rate[|gst%].
func parseItem(spec string) (id, name string, qty, rate, gst decimal.Decimal, err error) {
	parts := strings.Split(spec, "|")
	if len(parts) != 4 && len(parts) != 5 {
		return "", "", qty, rate, gst, fmt.Errorf("want id|name|qty|rate[|gst%%], got %d field(s)", len(parts))
	}
	id = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if qty, err = decimal.NewFromString(strings.TrimSpace(parts[2])); err != nil {
		return "", "", qty, rate, gst, fmt.Errorf("invalid quantity: %w", err)
	}
	if rate, err = decimal.NewFromString(strings.TrimSpace(parts[3])); err != nil {
		return "", "", qty, rate, gst, fmt.Errorf("invalid rate: %w", err)
	}
	gst = sitebook.DefaultGSTPercent
	if len(parts) == 5 {
		if gst, err = decimal.NewFromString(strings.TrimSpace(parts[4])); err != nil {
			return "", "", qty, rate, gst, fmt.Errorf("invalid gst percent: %w", err)
		}
	}
	return id, name, qty, rate, gst, nil
}
