package sitebook

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// Book is the ledger and costing engine. It owns the four collections
// (profile, catalog, projects, purchases) and is the only writer of the
// injected store.
//
// All operations are invoked sequentially from user-triggered actions;
// there is no background work inside the book. A mutating operation stages
// its complete next state, performs one store write, and only then swaps
// the in-memory state: a failure at any step leaves everything exactly as
// it was before the call.
type Book struct {
	profile      BusinessProfile
	catalog      *Catalog
	projects     []Project
	projectIndex map[string]int
	purchases    []Purchase

	store    Store
	now      func() time.Time // injectable for deterministic ids and dates
	replaced []func()         // notified after a whole-state replacement
}

// NewBook creates an empty book on top of the given store.
func NewBook(store Store) *Book {
	return &Book{
		profile:      DefaultProfile(),
		catalog:      NewCatalog(),
		projectIndex: make(map[string]int),
		store:        store,
		now:          time.Now,
	}
}

// Open loads the whole state from the store.
func Open(store Store) (*Book, error) {
	b := NewBook(store)
	profile, ok, err := store.ReadProfile()
	if err != nil {
		return nil, err
	}
	if ok {
		b.profile = profile
	}
	products, err := store.ReadProducts()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		b.catalog.Add(p)
	}
	projects, err := store.ReadProjects()
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		b.addProject(p)
	}
	b.purchases, err = store.ReadPurchases()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Profile returns the business profile.
func (b *Book) Profile() BusinessProfile { return b.profile }

// Currency returns the ISO 4217 code resolved from the profile.
func (b *Book) Currency() string { return b.profile.CurrencyCode() }

// SetProfile replaces the display profile. It has no effect on costing.
func (b *Book) SetProfile(p BusinessProfile) error {
	old := b.profile
	b.profile = p
	if err := b.store.WriteState(b.state()); err != nil {
		b.profile = old
		return err
	}
	return nil
}

// IsEmpty reports whether the book tracks no products and no projects,
// which is how a first run is detected.
func (b *Book) IsEmpty() bool {
	return b.catalog.Len() == 0 && len(b.projects) == 0
}

// Product returns the product with this id.
func (b *Book) Product(id string) (Product, bool) { return b.catalog.Get(id) }

// Products iterates over catalog products in insertion order.
func (b *Book) Products() iter.Seq[Product] { return b.catalog.Products() }

// LowStock iterates over products at or under their reorder threshold.
func (b *Book) LowStock() iter.Seq[Product] { return b.catalog.LowStock() }

// Project returns the project with this id.
func (b *Book) Project(id string) (Project, bool) {
	i, ok := b.projectIndex[id]
	if !ok {
		return Project{}, false
	}
	return b.projects[i], true
}

// Projects iterates over projects in creation order.
func (b *Book) Projects() iter.Seq[Project] {
	return func(yield func(Project) bool) {
		for _, p := range b.projects {
			if !yield(p) {
				return
			}
		}
	}
}

// Purchases iterates over the purchase ledger in chronological (insertion) order.
func (b *Book) Purchases() iter.Seq[Purchase] {
	return func(yield func(Purchase) bool) {
		for _, p := range b.purchases {
			if !yield(p) {
				return
			}
		}
	}
}

// RecentPurchases returns up to n purchases from the end of the ledger,
// most recent last.
func (b *Book) RecentPurchases(n int) []Purchase {
	if n < 0 {
		n = 0
	}
	if n > len(b.purchases) {
		n = len(b.purchases)
	}
	recent := make([]Purchase, n)
	copy(recent, b.purchases[len(b.purchases)-n:])
	return recent
}

// RegisterProduct creates a catalog entry with zero stock and zero rate,
// the way the owner registers an item before its first purchase. Blank
// category and unit fall back to the catalog defaults.
func (b *Book) RegisterProduct(name, category, unit string, minStock Quantity) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, fmt.Errorf("product name is required")
	}
	if category == "" {
		category = DefaultCategory
	}
	if unit == "" {
		unit = DefaultUnit
	}
	if minStock.IsNegative() {
		return Product{}, fmt.Errorf("minimum stock must not be negative")
	}
	product := Product{
		ID:       b.nextID("PROD", func(id string) bool { _, ok := b.catalog.Get(id); return ok }),
		Name:     name,
		Category: category,
		Unit:     unit,
		MinStock: minStock,
		AvgRate:  M(0, b.Currency()),
	}
	staged := b.catalog.Clone()
	staged.Add(product)
	if err := b.writeStaged(staged, b.projects, b.purchases); err != nil {
		return Product{}, err
	}
	b.catalog = staged
	return product, nil
}

// RecordPurchase commits a cart as one purchase: the record is appended to
// the ledger and every line is received into the catalog, as a single
// logical transaction. An empty cart, a blank vendor or any invalid line
// fails the whole commit with no observable state change.
func (b *Book) RecordPurchase(vendorName string, cart *Cart) (Purchase, error) {
	if strings.TrimSpace(vendorName) == "" {
		return Purchase{}, ErrMissingVendor
	}
	if cart == nil || cart.Len() == 0 {
		return Purchase{}, ErrEmptyCart
	}
	if err := cart.validate(); err != nil {
		return Purchase{}, err
	}

	id := b.nextID("PUR", func(id string) bool {
		for _, p := range b.purchases {
			if p.ID == id {
				return true
			}
		}
		return false
	})
	purchase := newPurchase(id, NewDate(b.now().Date()), vendorName, cart.Items())

	staged := b.catalog.Clone()
	for _, it := range purchase.Items {
		staged.Receive(it.ProductID, it.ProductName, it.Quantity, it.Rate)
	}
	purchases := append(append([]Purchase{}, b.purchases...), purchase)

	if err := b.writeStaged(staged, b.projects, purchases); err != nil {
		return Purchase{}, err
	}
	b.catalog = staged
	b.purchases = purchases
	return purchase, nil
}

// CreateProject opens a new project in the Planning state with an empty
// usage log.
func (b *Book) CreateProject(name, client, projectType string, budget Money) (Project, error) {
	if strings.TrimSpace(name) == "" {
		return Project{}, fmt.Errorf("project name is required")
	}
	if !budget.IsPositive() {
		return Project{}, fmt.Errorf("project budget must be positive")
	}
	project := Project{
		ID:            b.nextID("PROJ", func(id string) bool { _, ok := b.projectIndex[id]; return ok }),
		Name:          name,
		Client:        client,
		Type:          projectType,
		Status:        Planning,
		StartDate:     NewDate(b.now().Date()),
		Budget:        budget,
		MaterialsUsed: []MaterialUsage{},
	}
	projects := append(append([]Project{}, b.projects...), project)
	if err := b.writeStaged(b.catalog, projects, b.purchases); err != nil {
		return Project{}, err
	}
	b.addProject(project)
	return project, nil
}

// TransitionProject moves a project to a new lifecycle status. Transitions
// outside the allowed set are rejected, in particular anything out of the
// terminal Completed state.
func (b *Book) TransitionProject(projectID string, next ProjectStatus) error {
	i, ok := b.projectIndex[projectID]
	if !ok {
		return fmt.Errorf("project %q: %w", projectID, ErrNotFound)
	}
	current := b.projects[i].Status
	if !current.CanTransitionTo(next) {
		return fmt.Errorf("project %q: %s -> %s: %w", projectID, current, next, ErrInvalidTransition)
	}
	staged := b.projects[i].Clone()
	staged.Status = next
	projects := append([]Project{}, b.projects...)
	projects[i] = staged
	if err := b.writeStaged(b.catalog, projects, b.purchases); err != nil {
		return err
	}
	b.projects = projects
	return nil
}

// ConsumeMaterial debits the catalog and charges the project's usage log
// with the cost frozen at the instant of the debit, atomically: either both
// the stock decrement and the log append happen, or neither. It returns
// the cost charged.
func (b *Book) ConsumeMaterial(projectID, productID string, quantity Quantity) (Money, error) {
	if !quantity.IsPositive() {
		return Money{}, fmt.Errorf("consumed quantity must be positive")
	}
	i, ok := b.projectIndex[projectID]
	if !ok {
		return Money{}, fmt.Errorf("project %q: %w", projectID, ErrNotFound)
	}
	if b.projects[i].Status == Completed {
		return Money{}, fmt.Errorf("project %q: %w", projectID, ErrProjectClosed)
	}
	product, ok := b.catalog.Get(productID)
	if !ok {
		return Money{}, fmt.Errorf("product %q: %w", productID, ErrNotFound)
	}

	stagedCatalog := b.catalog.Clone()
	frozenRate, err := stagedCatalog.Debit(productID, quantity)
	if err != nil {
		return Money{}, err
	}
	cost := frozenRate.Mul(quantity)

	staged := b.projects[i].Clone()
	staged.consume(productID, product.Name, quantity, cost)
	projects := append([]Project{}, b.projects...)
	projects[i] = staged

	if err := b.writeStaged(stagedCatalog, projects, b.purchases); err != nil {
		return Money{}, err
	}
	b.catalog = stagedCatalog
	b.projects = projects
	return cost, nil
}

// OnStateReplaced registers a hook called after a whole-state replacement
// (snapshot import or sample seeding), e.g. to refresh a view.
func (b *Book) OnStateReplaced(fn func()) {
	b.replaced = append(b.replaced, fn)
}

func (b *Book) notifyReplaced() {
	for _, fn := range b.replaced {
		fn()
	}
}

// addProject indexes and appends a project to the in-memory collection.
func (b *Book) addProject(p Project) {
	b.projectIndex[p.ID] = len(b.projects)
	b.projects = append(b.projects, p)
}

// state assembles the full current state with fresh slices, so a store can
// keep it without sharing memory with the live book.
func (b *Book) state() State {
	products := make([]Product, 0, b.catalog.Len())
	for p := range b.catalog.Products() {
		products = append(products, p)
	}
	projects := make([]Project, len(b.projects))
	for i, p := range b.projects {
		projects[i] = p.Clone()
	}
	purchases := make([]Purchase, len(b.purchases))
	copy(purchases, b.purchases)
	return State{
		Profile:   b.profile,
		Products:  products,
		Projects:  projects,
		Purchases: purchases,
	}
}

// writeStaged performs the single combined write for a staged next state.
func (b *Book) writeStaged(catalog *Catalog, projects []Project, purchases []Purchase) error {
	products := make([]Product, 0, catalog.Len())
	for p := range catalog.Products() {
		products = append(products, p)
	}
	return b.store.WriteState(State{
		Profile:   b.profile,
		Products:  products,
		Projects:  projects,
		Purchases: purchases,
	})
}

// replaceState swaps in a whole new state (import or seed) after a single
// successful store write.
func (b *Book) replaceState(state State) error {
	if err := b.store.WriteState(state); err != nil {
		return err
	}
	b.profile = state.Profile
	b.catalog = NewCatalog()
	for _, p := range state.Products {
		b.catalog.Add(p)
	}
	b.projects = nil
	b.projectIndex = make(map[string]int)
	for _, p := range state.Projects {
		b.addProject(p)
	}
	b.purchases = state.Purchases
	b.notifyReplaced()
	return nil
}

// nextID generates an id in the original book's style (prefix plus epoch
// millis), bumping the suffix until it is unique.
func (b *Book) nextID(prefix string, exists func(string) bool) string {
	millis := b.now().UnixMilli()
	id := fmt.Sprintf("%s-%d", prefix, millis)
	for exists(id) {
		millis++
		id = fmt.Sprintf("%s-%d", prefix, millis)
	}
	return id
}
