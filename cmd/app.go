// Package cmd implements the CLI application to keep the books of a small
// contracting business.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/sitebook-io/sitebook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&productAddCmd{}, "catalog")
	c.Register(&inventoryCmd{}, "catalog")

	c.Register(&buyCmd{}, "purchases")
	c.Register(&purchasesCmd{}, "purchases")
	c.Register(&reportCmd{}, "purchases")

	c.Register(&projectNewCmd{}, "projects")
	c.Register(&projectStatusCmd{}, "projects")
	c.Register(&useCmd{}, "projects")
	c.Register(&projectsCmd{}, "projects")

	c.Register(&exportCmd{}, "snapshot")
	c.Register(&importCmd{}, "snapshot")
	c.Register(&seedCmd{}, "snapshot")
	c.Register(&queryCmd{}, "snapshot")

	c.Register(&insightsCmd{}, "advisory")
	c.Register(&profileCmd{}, "settings")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", defaultBookFile(), "Path to the book file (JSON snapshot document)")

func defaultBookFile() string {
	if path := os.Getenv("SITEBOOK_FILE"); path != "" {
		return path
	}
	return "sitebook.json"
}

// OpenBook loads the book from the configured file. A missing file is not an
// error: the book starts empty and the file appears on the first write.
func OpenBook() (*sitebook.Book, error) {
	store := sitebook.NewFileStore(*bookFile)
	book, err := sitebook.Open(store)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, book file does not exist, starting an empty book instead")
		return sitebook.NewBook(store), nil
	}
	return book, err
}
