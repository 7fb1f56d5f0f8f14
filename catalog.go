package sitebook

import (
	"fmt"
	"iter"
)

// Defaults applied to products auto-created by a purchase line that
// references an unseen id. They are a policy assumption inherited from
// observed behavior, overridable later through catalog editing.
const (
	DefaultCategory = "General"
	DefaultUnit     = "Unit"
)

// DefaultMinStock is the reorder threshold for auto-created products.
var DefaultMinStock = Q(10)

// Product is a tracked stock item with its current quantity and
// weighted-average unit cost.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Unit         string   `json:"unit"`
	CurrentStock Quantity `json:"currentStock"`
	MinStock     Quantity `json:"minStock"`
	AvgRate      Money    `json:"avgRate"`
}

// IsLowStock reports whether the product is at or under its reorder threshold.
func (p Product) IsLowStock() bool {
	return p.CurrentStock.LessThanOrEqual(p.MinStock)
}

// Catalog is the single source of truth for stock level and weighted-average
// cost per product.
//
// Products are kept in insertion order; that order is observable through
// snapshots and must survive a round-trip.
type Catalog struct {
	products []Product
	index    map[string]int // product id -> position in products
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Len returns the number of tracked products.
func (c *Catalog) Len() int { return len(c.products) }

// Get returns the product with this id.
func (c *Catalog) Get(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Products iterates over products in insertion order.
func (c *Catalog) Products() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range c.products {
			if !yield(p) {
				return
			}
		}
	}
}

// LowStock iterates over products at or under their reorder threshold.
func (c *Catalog) LowStock() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range c.products {
			if p.IsLowStock() && !yield(p) {
				return
			}
		}
	}
}

// Add registers a product. An existing product with the same id is replaced
// in place, keeping its position.
func (c *Catalog) Add(p Product) {
	if i, ok := c.index[p.ID]; ok {
		c.products[i] = p
		return
	}
	c.index[p.ID] = len(c.products)
	c.products = append(c.products, p)
}

// Receive applies a purchase receipt to the catalog: the stock increases and
// the average rate is reblended proportionally to the received quantity.
// An unseen id creates a new product with policy defaults.
//
// A non-positive quantity or a negative rate makes the call a no-op; the
// purchase ledger validates lines before committing.
func (c *Catalog) Receive(id, name string, quantity Quantity, rate Money) {
	if !quantity.IsPositive() || rate.IsNegative() {
		return
	}
	i, ok := c.index[id]
	if !ok {
		c.Add(Product{
			ID:           id,
			Name:         name,
			Category:     DefaultCategory,
			Unit:         DefaultUnit,
			CurrentStock: quantity,
			MinStock:     DefaultMinStock,
			AvgRate:      rate,
		})
		return
	}
	p := c.products[i]
	oldValue := p.AvgRate.Mul(p.CurrentStock)
	newValue := rate.Mul(quantity)
	p.CurrentStock = p.CurrentStock.Add(quantity)
	p.AvgRate = oldValue.Add(newValue).Div(p.CurrentStock)
	c.products[i] = p
}

// Debit removes quantity from stock and returns the unit cost frozen at the
// instant of the debit. The caller records that cost; the catalog keeps no
// history of debits.
//
// Debit fails with ErrNotFound for an unknown id and ErrInsufficientStock
// when the stock cannot cover the quantity; stock never goes negative.
func (c *Catalog) Debit(id string, quantity Quantity) (Money, error) {
	if !quantity.IsPositive() {
		return Money{}, fmt.Errorf("debit %q: quantity must be positive", id)
	}
	i, ok := c.index[id]
	if !ok {
		return Money{}, fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	p := c.products[i]
	if p.CurrentStock.LessThan(quantity) {
		return Money{}, fmt.Errorf("product %q has %s in stock, requested %s: %w",
			id, p.CurrentStock, quantity, ErrInsufficientStock)
	}
	frozen := p.AvgRate
	p.CurrentStock = p.CurrentStock.Sub(quantity)
	c.products[i] = p
	return frozen, nil
}

// Clone returns a deep copy. Multi-entity operations stage their changes on a
// clone and swap it in only when every step succeeded.
func (c *Catalog) Clone() *Catalog {
	clone := &Catalog{
		products: make([]Product, len(c.products)),
		index:    make(map[string]int, len(c.index)),
	}
	copy(clone.products, c.products)
	for id, i := range c.index {
		clone.index[id] = i
	}
	return clone
}
