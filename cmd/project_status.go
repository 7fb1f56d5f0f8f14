package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sitebook-io/sitebook"
)

type projectStatusCmd struct {
	project string
	status  string
}

func (*projectStatusCmd) Name() string     { return "project-status" }
func (*projectStatusCmd) Synopsis() string { return "move a project to a new lifecycle status" }
func (*projectStatusCmd) Usage() string {
	return `sbk project-status -project <id> -status <Planning|"In Progress"|Completed|"On Hold">

  Only transitions in the allowed lifecycle are accepted; a Completed
  project cannot change status anymore.
`
}

func (p *projectStatusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.project, "project", "", "Project id (required).")
	f.StringVar(&p.status, "status", "", "Target status (required).")
}

func (p *projectStatusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := sitebook.ParseProjectStatus(p.status)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := book.TransitionProject(p.project, status); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Project %s is now %s.\n", p.project, status)
	return subcommands.ExitSuccess
}
