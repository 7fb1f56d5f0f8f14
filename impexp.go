package sitebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// this file handles the snapshot interchange format: a single JSON document
// holding the whole business state, used for backup, restore and the book
// file itself. It should remain human readable.

// SnapshotVersion tags every exported document.
const SnapshotVersion = "2.0.0"

// snapshotDocument is the interchange shape. Products, projects and
// purchases are required on import; profile is optional.
type snapshotDocument struct {
	Profile    *BusinessProfile `json:"profile,omitempty"`
	Products   []Product        `json:"products"`
	Projects   []Project        `json:"projects"`
	Purchases  []Purchase       `json:"purchases"`
	ExportedAt string           `json:"exportedAt"`
	Version    string           `json:"version"`
}

func newSnapshotDocument(state State, exportedAt time.Time) snapshotDocument {
	profile := state.Profile
	return snapshotDocument{
		Profile:    &profile,
		Products:   notNilProducts(state.Products),
		Projects:   notNilProjects(state.Projects),
		Purchases:  notNilPurchases(state.Purchases),
		ExportedAt: exportedAt.Format(DatetimeFormat),
		Version:    SnapshotVersion,
	}
}

// The interchange format represents empty collections as [], never null.

func notNilProducts(s []Product) []Product {
	if s == nil {
		return []Product{}
	}
	return s
}

func notNilProjects(s []Project) []Project {
	if s == nil {
		s = []Project{}
	}
	for i := range s {
		if s[i].MaterialsUsed == nil {
			s[i].MaterialsUsed = []MaterialUsage{}
		}
	}
	return s
}

func notNilPurchases(s []Purchase) []Purchase {
	if s == nil {
		s = []Purchase{}
	}
	for i := range s {
		if s[i].Items == nil {
			s[i].Items = []PurchaseItem{}
		}
	}
	return s
}

// ExportSnapshot writes the complete state to w as an indented snapshot
// document. Pure read; the book is not mutated.
func (b *Book) ExportSnapshot(w io.Writer) error {
	doc := newSnapshotDocument(b.state(), b.now())
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// ImportSnapshot validates a snapshot document and atomically replaces the
// book's whole state with it. The products, projects and purchases
// sequences are required (empty is fine); profile is optional and kept
// as-is when absent. Any structural failure reports ErrImport and leaves
// the existing state untouched.
func (b *Book) ImportSnapshot(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("cannot read snapshot: %w", err)
	}

	// Raw messages make a missing collection distinguishable from an empty one.
	var doc struct {
		Profile   *BusinessProfile `json:"profile"`
		Products  json.RawMessage  `json:"products"`
		Projects  json.RawMessage  `json:"projects"`
		Purchases json.RawMessage  `json:"purchases"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrImport, err)
	}
	state := State{Profile: b.profile}
	if doc.Profile != nil {
		state.Profile = *doc.Profile
	}
	if err := decodeCollection(doc.Products, "products", &state.Products); err != nil {
		return err
	}
	if err := decodeCollection(doc.Projects, "projects", &state.Projects); err != nil {
		return err
	}
	if err := decodeCollection(doc.Purchases, "purchases", &state.Purchases); err != nil {
		return err
	}
	state.Products = notNilProducts(state.Products)
	state.Projects = notNilProjects(state.Projects)
	state.Purchases = notNilPurchases(state.Purchases)

	return b.replaceState(state)
}

// decodeCollection rejects a missing or null collection and decodes it into
// the corresponding entity slice, enforcing the entity shape.
func decodeCollection[T any](raw json.RawMessage, name string, into *[]T) error {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("%w: missing %q collection", ErrImport, name)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("%w: malformed %q collection: %v", ErrImport, name, err)
	}
	return nil
}

// SeedSampleData unconditionally replaces products and projects with a fixed
// demonstration set and clears the purchase ledger. Intended for first runs
// and demos, never merged with existing data.
func (b *Book) SeedSampleData() error {
	cur := b.Currency()
	state := State{
		Profile: b.profile,
		Products: []Product{
			{ID: "PROD-1", Name: "Copper Wire 2.5mm", Category: Electrical, Unit: "Mtr",
				CurrentStock: Q(500), MinStock: Q(100), AvgRate: M(45, cur)},
			{ID: "PROD-2", Name: "Bitumen Grade 60/70", Category: Road, Unit: "Drum",
				CurrentStock: Q(25), MinStock: Q(5), AvgRate: M(12500, cur)},
			{ID: "PROD-3", Name: "Circuit Breaker 32A", Category: Electrical, Unit: "Pcs",
				CurrentStock: Q(150), MinStock: Q(20), AvgRate: M(850, cur)},
		},
		Projects: []Project{
			{ID: "PROJ-1", Name: "Smart City Lighting", Client: "Govt. Dept", Type: Electrical,
				Status: InProgress, StartDate: NewDate(2024, 1, 15), Budget: M(500000, cur),
				MaterialsUsed: []MaterialUsage{}},
			{ID: "PROJ-2", Name: "NH-44 Patch Work", Client: "PWD India", Type: Road,
				Status: Planning, StartDate: NewDate(2024, 3, 1), Budget: M(1200000, cur),
				MaterialsUsed: []MaterialUsage{}},
		},
		Purchases: []Purchase{},
	}
	return b.replaceState(state)
}
