package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type profileCmd struct {
	company  string
	owner    string
	gstin    string
	address  string
	color    string
	currency string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or edit the business profile" }
func (*profileCmd) Usage() string {
	return `sbk profile [-company <name>] [-owner <name>] [-gstin <id>] [-address <addr>] [-color <hex>] [-currency <symbol>]

  Without flags, prints the business profile used on purchase documents and
  reports. With flags, updates the given fields and keeps the rest.
`
}

func (p *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.company, "company", "", "Company name.")
	f.StringVar(&p.owner, "owner", "", "Owner name.")
	f.StringVar(&p.gstin, "gstin", "", "GST identification number.")
	f.StringVar(&p.address, "address", "", "Business address.")
	f.StringVar(&p.color, "color", "", "Letterhead accent color, e.g. #2563eb.")
	f.StringVar(&p.currency, "currency", "", "Currency symbol, e.g. ₹ or $.")
}

func (p *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	profile := book.Profile()

	edited := false
	f.Visit(func(fl *flag.Flag) {
		edited = true
		switch fl.Name {
		case "company":
			profile.CompanyName = p.company
		case "owner":
			profile.OwnerName = p.owner
		case "gstin":
			profile.GSTIN = p.gstin
		case "address":
			profile.Address = p.address
		case "color":
			profile.LogoColor = p.color
		case "currency":
			profile.Currency = p.currency
		}
	})

	if edited {
		if err := book.SetProfile(profile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println("Profile updated.")
		return subcommands.ExitSuccess
	}

	fmt.Printf("Company:  %s\n", profile.CompanyName)
	fmt.Printf("Owner:    %s\n", profile.OwnerName)
	fmt.Printf("GSTIN:    %s\n", profile.GSTIN)
	fmt.Printf("Address:  %s\n", profile.Address)
	fmt.Printf("Color:    %s\n", profile.LogoColor)
	fmt.Printf("Currency: %s (%s)\n", profile.Currency, profile.CurrencyCode())
	return subcommands.ExitSuccess
}
