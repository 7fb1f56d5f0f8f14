package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sitebook-io/sitebook/renderer"
)

type projectsCmd struct{}

func (*projectsCmd) Name() string     { return "projects" }
func (*projectsCmd) Synopsis() string { return "list projects with costing and budget utilization" }
func (*projectsCmd) Usage() string {
	return `sbk projects

  Lists every project with its status, material usage log and budget
  utilization. Utilization above 90% is flagged near/over budget.
`
}

func (*projectsCmd) SetFlags(f *flag.FlagSet) {}

func (p *projectsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProjectsMarkdown(book))
	return subcommands.ExitSuccess
}
