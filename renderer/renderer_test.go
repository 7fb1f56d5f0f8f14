package renderer

import (
	"strings"
	"testing"

	"github.com/sitebook-io/sitebook"
)

func newRenderBook(t *testing.T) *sitebook.Book {
	t.Helper()
	b := sitebook.NewBook(sitebook.NewMemoryStore())

	var cart sitebook.Cart
	cart.AddLine("PROD-1", "Copper Wire 2.5mm", sitebook.Q(50), sitebook.M(45, b.Currency()), sitebook.DefaultGSTPercent)
	if _, err := b.RecordPurchase("Gupta Traders", &cart); err != nil {
		t.Fatalf("RecordPurchase() failed: %v", err)
	}

	project, err := b.CreateProject("Smart City Lighting", "Govt. Dept", sitebook.Electrical, sitebook.M(10000, b.Currency()))
	if err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}
	if err := b.TransitionProject(project.ID, sitebook.InProgress); err != nil {
		t.Fatalf("TransitionProject() failed: %v", err)
	}
	if _, err := b.ConsumeMaterial(project.ID, "PROD-1", sitebook.Q(10)); err != nil {
		t.Fatalf("ConsumeMaterial() failed: %v", err)
	}
	return b
}

func assertContains(t *testing.T, doc string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(doc, want) {
			t.Errorf("rendered document misses %q:\n%s", want, doc)
		}
	}
}

func TestInventoryMarkdown(t *testing.T) {
	b := newRenderBook(t)
	doc := InventoryMarkdown(b)
	assertContains(t, doc,
		"Inventory",
		"Copper Wire 2.5mm",
		"₹45.00",    // weighted-average rate in the profile currency
		"₹1,800.00", // 40 remaining at 45
	)
}

func TestLowStockMarkdown(t *testing.T) {
	b := newRenderBook(t)
	doc := LowStockMarkdown(b)
	// stock 40 against the default threshold 10: nothing to reorder.
	assertContains(t, doc, "above their reorder threshold")

	if _, err := b.ConsumeMaterial(firstProjectID(t, b), "PROD-1", sitebook.Q(35)); err != nil {
		t.Fatalf("ConsumeMaterial() failed: %v", err)
	}
	doc = LowStockMarkdown(b)
	assertContains(t, doc, "Low Stock Alerts", "Copper Wire 2.5mm")
}

func TestProjectsMarkdown(t *testing.T) {
	doc := ProjectsMarkdown(newRenderBook(t))
	assertContains(t, doc,
		"Smart City Lighting",
		"Govt. Dept",
		"In Progress",
		"₹450.00", // 10 consumed at the frozen rate 45
	)
}

func TestPurchaseDocumentMarkdown(t *testing.T) {
	b := newRenderBook(t)
	var purchase sitebook.Purchase
	for p := range b.Purchases() {
		purchase = p
	}

	doc := PurchaseDocumentMarkdown(b.Profile(), purchase)
	assertContains(t, doc,
		b.Profile().CompanyName,
		b.Profile().GSTIN,
		"Gupta Traders",
		"₹2,250.00", // sub total
		"₹405.00",   // GST at 18%
		"₹2,655.00", // grand total
	)
}

func TestMonthlyReportMarkdown(t *testing.T) {
	b := newRenderBook(t)
	var purchase sitebook.Purchase
	for p := range b.Purchases() {
		purchase = p
	}

	report := b.MonthlyPurchases(purchase.Date.Year(), purchase.Date.Month())
	doc := MonthlyReportMarkdown(b.Profile(), report)
	assertContains(t, doc, "Gupta Traders", "₹2,655.00")

	empty := b.MonthlyPurchases(1999, 1)
	assertContains(t, MonthlyReportMarkdown(b.Profile(), empty), "No purchases recorded this month.")
}

func firstProjectID(t *testing.T, b *sitebook.Book) string {
	t.Helper()
	for p := range b.Projects() {
		return p.ID
	}
	t.Fatal("book has no project")
	return ""
}
