package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sitebook-io/sitebook/advisor"
	"google.golang.org/genai"
)

type insightsCmd struct{}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "ask the advisor for a business summary" }
func (*insightsCmd) Usage() string {
	return `sbk insights

  Shares a read-only snapshot of the book (inventory, projects, recent
  purchases) with a generative model and prints its business summary.
  Requires the GEMINI_API_KEY environment variable. The book is never
  modified; when the model is unreachable a fallback message is printed.
`
}

func (*insightsCmd) SetFlags(f *flag.FlagSet) {}

func (p *insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		fmt.Println(advisor.Unavailable)
		return subcommands.ExitSuccess
	}

	printMarkdown(advisor.Insights(ctx, client, book))
	return subcommands.ExitSuccess
}
