// Package renderer renders the book's records as markdown documents: the
// inventory table, project costing summaries, the purchase ledger and
// printable purchase records.
package renderer

import (
	"github.com/sitebook-io/sitebook"
)

// amount formats a money value in the book's display currency.
func amount(m sitebook.Money, code string) string {
	return m.InCurrency(code).String()
}
