package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a jsonpath query over the book snapshot" }
func (*queryCmd) Usage() string {
	return `sbk query <jsonpath>

  Evaluates a jsonpath expression against the snapshot document of the
  current book and prints the result as JSON. Examples:

    sbk query '$.products[?(@.currentStock < @.minStock)].name'
    sbk query '$.purchases[-1:].grandTotal'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (p *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one jsonpath expression is required")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Round-trip through the snapshot document so queries see the same shape
	// as an exported file.
	var buf bytes.Buffer
	if err := book.ExportSnapshot(&buf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var doc interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		fmt.Fprintln(os.Stderr, "Error decoding snapshot:", err)
		return subcommands.ExitFailure
	}

	result, err := jsonpath.Get(path, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error encoding result:", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
