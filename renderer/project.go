package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sitebook-io/sitebook"
)

// ProjectsMarkdown renders every project with its costing summary and
// material usage log.
func ProjectsMarkdown(book *sitebook.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	code := book.Profile().CurrencyCode()
	doc.H1("Projects")

	for _, s := range book.ProjectSummaries() {
		p := s.Project
		doc.H2(fmt.Sprintf("%s (%s)", p.Name, p.ID))
		doc.PlainText(fmt.Sprintf("%s · %s · started %s · status: %s", p.Client, p.Type, p.StartDate, p.Status))

		utilization := s.Utilization.String()
		if s.NearBudget {
			utilization += " ⚠ near/over budget"
		}
		doc.PlainText(fmt.Sprintf("Budget %s · materials %s · utilization %s",
			amount(p.Budget, code), amount(s.MaterialCost, code), utilization))

		if len(p.MaterialsUsed) == 0 {
			continue
		}
		table := md.TableSet{Header: []string{"Product", "Quantity", "Cost"}}
		for _, u := range p.MaterialsUsed {
			table.Rows = append(table.Rows, []string{
				fmt.Sprintf("%s (%s)", u.ProductName, u.ProductID),
				u.Quantity.String(),
				amount(u.Cost, code),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
