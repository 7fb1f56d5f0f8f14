// Package advisor consults a generative model with a read-only view of the
// book and returns free-form business insights. The collaborator is
// informational only: any failure degrades to a static message, never an
// error.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sitebook-io/sitebook"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Unavailable is the message substituted whenever the model cannot be reached.
const Unavailable = "Insights are currently unavailable. Please check your network connection."

// recentWindow is how many purchases from the end of the ledger are shared
// with the model.
const recentWindow = 5

func ptr[T any](v T) *T { return &v }

// Insights asks the model for a business summary of the current book:
// critical stock alerts, financial health, and suggestions for scaling.
// The book is read, never mutated.
func Insights(ctx context.Context, client *genai.Client, book *sitebook.Book) string {
	if client == nil {
		return Unavailable
	}

	chat, err := client.Chats.Create(ctx, model, &genai.GenerateContentConfig{
		Temperature: ptr[float32](0.7),
		TopP:        ptr[float32](0.95),
	}, nil)
	if err != nil {
		return Unavailable
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: Prompt(book)})
	if err != nil {
		return Unavailable
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Unavailable
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return Unavailable
	}
	return text
}

// Prompt builds the read-only data snapshot sent to the model.
func Prompt(book *sitebook.Book) string {
	type stockLine struct {
		Name  string            `json:"name"`
		Stock sitebook.Quantity `json:"stock"`
		Min   sitebook.Quantity `json:"min"`
	}
	type projectLine struct {
		Name   string                 `json:"name"`
		Budget sitebook.Money         `json:"budget"`
		Status sitebook.ProjectStatus `json:"status"`
	}

	var stock []stockLine
	for p := range book.Products() {
		stock = append(stock, stockLine{Name: p.Name, Stock: p.CurrentStock, Min: p.MinStock})
	}
	var projects []projectLine
	for p := range book.Projects() {
		projects = append(projects, projectLine{Name: p.Name, Budget: p.Budget, Status: p.Status})
	}

	inventoryJSON, _ := json.Marshal(stock)
	projectsJSON, _ := json.Marshal(projects)
	purchasesJSON, _ := json.Marshal(book.RecentPurchases(recentWindow))

	return fmt.Sprintf(`Analyze the following business data for %s (Electrical & Road Contractor).
Inventory: %s
Projects: %s
Purchases: %s

Provide a professional summary including:
1. Critical stock alerts.
2. Financial health overview (GST liabilities and project spending).
3. Operational suggestions for scaling.
Keep it concise and business-focused.`,
		book.Profile().CompanyName, inventoryJSON, projectsJSON, purchasesJSON)
}
