package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sitebook-io/sitebook"
)

// InventoryMarkdown renders the catalog as a markdown table, flagging
// products at or under their reorder threshold.
func InventoryMarkdown(book *sitebook.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	profile := book.Profile()
	code := profile.CurrencyCode()

	doc.H1(fmt.Sprintf("%s Inventory", profile.CompanyName))
	doc.PlainText(fmt.Sprintf("Stock value at weighted-average cost: %s", amount(book.TotalStockValue(), code)))

	table := md.TableSet{
		Header: []string{"ID", "Item", "Category", "Unit", "Stock", "Min", "Avg Rate", ""},
	}
	for p := range book.Products() {
		alert := ""
		if p.IsLowStock() {
			alert = "LOW"
		}
		table.Rows = append(table.Rows, []string{
			p.ID, p.Name, p.Category, p.Unit,
			p.CurrentStock.String(), p.MinStock.String(),
			amount(p.AvgRate, code), alert,
		})
	}
	doc.Table(table)

	return doc.String()
}

// LowStockMarkdown renders only the products needing a reorder.
func LowStockMarkdown(book *sitebook.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Low Stock Alerts")
	table := md.TableSet{Header: []string{"ID", "Item", "Stock", "Min", "Unit"}}
	for p := range book.LowStock() {
		table.Rows = append(table.Rows, []string{
			p.ID, p.Name, p.CurrentStock.String(), p.MinStock.String(), p.Unit,
		})
	}
	if len(table.Rows) == 0 {
		doc.PlainText("All products are above their reorder threshold.")
		return doc.String()
	}
	doc.Table(table)

	return doc.String()
}
