package sitebook

import "time"

// MonthlyPurchaseReport aggregates the purchases recorded in one calendar
// month. The ledger's insertion order is chronological, so the report
// preserves it.
type MonthlyPurchaseReport struct {
	Year      int
	Month     time.Month
	Purchases []Purchase

	SubTotal   Money
	TotalGST   Money
	GrandTotal Money
}

// MonthlyPurchases reports the purchases of a calendar month with their
// aggregate totals.
func (b *Book) MonthlyPurchases(year int, month time.Month) MonthlyPurchaseReport {
	report := MonthlyPurchaseReport{Year: year, Month: month}
	for p := range b.Purchases() {
		if p.Date.Year() != year || p.Date.Month() != month {
			continue
		}
		report.Purchases = append(report.Purchases, p)
		report.SubTotal = report.SubTotal.Add(p.SubTotal)
		report.TotalGST = report.TotalGST.Add(p.TotalGST)
		report.GrandTotal = report.GrandTotal.Add(p.GrandTotal)
	}
	return report
}

// ProjectSummary is the derived costing view of one project.
type ProjectSummary struct {
	Project      Project
	MaterialCost Money
	Utilization  Percent
	NearBudget   bool
}

// Summarize derives the costing view of a project.
func Summarize(p Project) ProjectSummary {
	utilization := p.BudgetUtilization()
	return ProjectSummary{
		Project:      p,
		MaterialCost: p.MaterialCost(),
		Utilization:  utilization,
		NearBudget:   utilization.IsNearBudget(),
	}
}

// ProjectSummaries derives the costing view of every project, in creation order.
func (b *Book) ProjectSummaries() []ProjectSummary {
	var summaries []ProjectSummary
	for p := range b.Projects() {
		summaries = append(summaries, Summarize(p))
	}
	return summaries
}

// TotalStockValue returns the catalog valued at weighted-average cost.
func (b *Book) TotalStockValue() Money {
	var total Money
	for p := range b.Products() {
		total = total.Add(p.AvgRate.Mul(p.CurrentStock))
	}
	return total
}
