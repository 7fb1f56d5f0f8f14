package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sitebook-io/sitebook"
)

// PurchasesMarkdown renders the purchase ledger in chronological order.
func PurchasesMarkdown(book *sitebook.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	code := book.Profile().CurrencyCode()
	doc.H1("Purchase Ledger")

	table := md.TableSet{Header: []string{"ID", "Date", "Vendor", "Lines", "Sub Total", "GST", "Grand Total"}}
	for p := range book.Purchases() {
		table.Rows = append(table.Rows, []string{
			p.ID, p.Date.String(), p.VendorName, fmt.Sprintf("%d", len(p.Items)),
			amount(p.SubTotal, code), amount(p.TotalGST, code), amount(p.GrandTotal, code),
		})
	}
	doc.Table(table)

	return doc.String()
}

// PurchaseDocumentMarkdown renders one purchase as a printable record with
// the company letterhead from the business profile.
func PurchaseDocumentMarkdown(profile sitebook.BusinessProfile, p sitebook.Purchase) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	code := profile.CurrencyCode()

	doc.H1(profile.CompanyName)
	doc.PlainText(profile.Address)
	doc.PlainText(fmt.Sprintf("GSTIN: %s", profile.GSTIN))

	doc.H2("Purchase Record")
	doc.PlainText(fmt.Sprintf("ID: %s · Date: %s", p.ID, p.Date))
	doc.PlainText(fmt.Sprintf("Vendor: %s", p.VendorName))

	table := md.TableSet{Header: []string{"Item", "Qty", "Rate", "GST %", "GST", "Total"}}
	for _, it := range p.Items {
		table.Rows = append(table.Rows, []string{
			it.ProductName,
			it.Quantity.String(),
			amount(it.Rate, code),
			it.GSTPercent.String(),
			amount(it.GSTAmount, code),
			amount(it.Total, code),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Sub Total: %s", amount(p.SubTotal, code)))
	doc.PlainText(fmt.Sprintf("Total GST: %s", amount(p.TotalGST, code)))
	doc.PlainText(fmt.Sprintf("Grand Total: %s", amount(p.GrandTotal, code)))

	return doc.String()
}

// MonthlyReportMarkdown renders one calendar month of purchases with the
// aggregate totals.
func MonthlyReportMarkdown(profile sitebook.BusinessProfile, r sitebook.MonthlyPurchaseReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	code := profile.CurrencyCode()
	doc.H1(fmt.Sprintf("Purchases for %s %d", r.Month, r.Year))

	if len(r.Purchases) == 0 {
		doc.PlainText("No purchases recorded this month.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"ID", "Date", "Vendor", "Sub Total", "GST", "Grand Total"}}
	for _, p := range r.Purchases {
		table.Rows = append(table.Rows, []string{
			p.ID, p.Date.String(), p.VendorName,
			amount(p.SubTotal, code), amount(p.TotalGST, code), amount(p.GrandTotal, code),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Month totals: sub %s · GST %s · grand %s",
		amount(r.SubTotal, code), amount(r.TotalGST, code), amount(r.GrandTotal, code)))

	return doc.String()
}
