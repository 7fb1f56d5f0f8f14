package sitebook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultGSTPercent is the rate the entry form proposes. The engine accepts
// any non-negative per-line percent; validating against an allowed rate set
// is the calling layer's concern.
var DefaultGSTPercent = decimal.NewFromInt(18)

var oneHundred = Q(100)

// PurchaseItem is one line of a purchase. The product name is a denormalized
// snapshot: the record stays historically accurate even if the product is
// later renamed. Immutable once written.
type PurchaseItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    Quantity        `json:"quantity"`
	Rate        Money           `json:"rate"`
	GSTPercent  decimal.Decimal `json:"gstPercent"`
	GSTAmount   Money           `json:"gstAmount"`
	Total       Money           `json:"total"`
}

// Subtotal returns the line's pre-tax amount.
func (it PurchaseItem) Subtotal() Money { return it.Rate.Mul(it.Quantity) }

// Purchase is a vendor purchase recorded as a whole. Purchases form an
// append-only ledger: insertion order is chronological order.
type Purchase struct {
	ID         string         `json:"id"`
	Date       Date           `json:"date"`
	VendorName string         `json:"vendorName"`
	Items      []PurchaseItem `json:"items"`
	SubTotal   Money          `json:"subTotal"`
	TotalGST   Money          `json:"totalGst"`
	GrandTotal Money          `json:"grandTotal"`
}

// Cart accumulates purchase lines before commit. Adding lines has no effect
// on the catalog; only Book.RecordPurchase applies a cart.
type Cart struct {
	items []PurchaseItem
}

// AddLine computes the line's tax and total and appends it to the cart.
func (c *Cart) AddLine(productID, productName string, quantity Quantity, rate Money, gstPercent decimal.Decimal) {
	subtotal := rate.Mul(quantity)
	gst := subtotal.Mul(Q(gstPercent)).Div(oneHundred)
	c.items = append(c.items, PurchaseItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Rate:        rate,
		GSTPercent:  gstPercent,
		GSTAmount:   gst,
		Total:       subtotal.Add(gst),
	})
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int { return len(c.items) }

// Items returns the cart lines in the order they were added.
func (c *Cart) Items() []PurchaseItem { return c.items }

// validate checks every line's inputs. Any invalid line fails the whole cart.
func (c *Cart) validate() error {
	for i, it := range c.items {
		switch {
		case it.ProductID == "":
			return fmt.Errorf("line %d: missing product id: %w", i+1, ErrInvalidPurchase)
		case !it.Quantity.IsPositive():
			return fmt.Errorf("line %d (%s): quantity must be positive: %w", i+1, it.ProductID, ErrInvalidPurchase)
		case it.Rate.IsNegative():
			return fmt.Errorf("line %d (%s): rate must not be negative: %w", i+1, it.ProductID, ErrInvalidPurchase)
		case it.GSTPercent.IsNegative():
			return fmt.Errorf("line %d (%s): gst percent must not be negative: %w", i+1, it.ProductID, ErrInvalidPurchase)
		}
	}
	return nil
}

// newPurchase derives the aggregate sums from the lines. No intermediate
// rounding is applied, so the sums hold exactly: grandTotal = subTotal + totalGst.
func newPurchase(id string, date Date, vendorName string, items []PurchaseItem) Purchase {
	var sub, gst Money
	for _, it := range items {
		sub = sub.Add(it.Subtotal())
		gst = gst.Add(it.GSTAmount)
	}
	return Purchase{
		ID:         id,
		Date:       date,
		VendorName: vendorName,
		Items:      items,
		SubTotal:   sub,
		TotalGST:   gst,
		GrandTotal: sub.Add(gst),
	}
}
