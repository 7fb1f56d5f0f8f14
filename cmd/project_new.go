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

type projectNewCmd struct {
	name        string
	client      string
	projectType string
	budget      string
}

func (*projectNewCmd) Name() string     { return "new-project" }
func (*projectNewCmd) Synopsis() string { return "open a new project in the Planning state" }
func (*projectNewCmd) Usage() string {
	return `sbk new-project -name <name> -client <client> [-type Electrical|Road] -budget <amount>

Usage Examples:
$ sbk new-project -name "Smart City Lighting" -client "Govt. Dept" -type Electrical -budget 500000
`
}

func (p *projectNewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Project name (required).")
	f.StringVar(&p.client, "client", "", "Client name.")
	f.StringVar(&p.projectType, "type", sitebook.Electrical, "Project type (Electrical or Road).")
	f.StringVar(&p.budget, "budget", "", "Project budget (required, positive).")
}

func (p *projectNewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	budget, err := decimal.NewFromString(p.budget)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -budget %q: %v\n", p.budget, err)
		return subcommands.ExitUsageError
	}

	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	project, err := book.CreateProject(p.name, p.client, p.projectType, sitebook.M(budget, book.Currency()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created project %s (%s) in %s.\n", project.Name, project.ID, project.Status)
	return subcommands.ExitSuccess
}
