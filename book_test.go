package sitebook

import (
	"errors"
	"testing"
	"time"
)

func TestBook_IsEmpty(t *testing.T) {
	b := newTestBook(t)
	if !b.IsEmpty() {
		t.Error("new book is not empty")
	}
	if _, err := b.RegisterProduct("Widget", "", "", Q(10)); err != nil {
		t.Fatalf("RegisterProduct() failed: %v", err)
	}
	if b.IsEmpty() {
		t.Error("book with a product reports empty")
	}
}

func TestBook_RegisterProduct(t *testing.T) {
	b := newTestBook(t)

	p, err := b.RegisterProduct("Widget", "", "", Q(10))
	if err != nil {
		t.Fatalf("RegisterProduct() failed: %v", err)
	}
	if p.Category != DefaultCategory || p.Unit != DefaultUnit {
		t.Errorf("defaults = (%q, %q), want (%q, %q)", p.Category, p.Unit, DefaultCategory, DefaultUnit)
	}
	if !p.CurrentStock.IsZero() {
		t.Errorf("CurrentStock = %s, want 0 before the first purchase", p.CurrentStock)
	}
	if !p.AvgRate.IsZero() {
		t.Errorf("AvgRate = %s, want 0 before the first purchase", p.AvgRate)
	}

	if _, err := b.RegisterProduct("  ", "", "", Q(10)); err == nil {
		t.Error("RegisterProduct(blank name) succeeded, want error")
	}
	if _, err := b.RegisterProduct("Widget", "", "", Q(-1)); err == nil {
		t.Error("RegisterProduct(negative min stock) succeeded, want error")
	}
}

func TestBook_GeneratedIDsAreUnique(t *testing.T) {
	b := newTestBook(t)
	// a frozen clock forces the generator to bump the suffix.
	frozen := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return frozen }

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		p, err := b.RegisterProduct("Widget", "", "", Q(10))
		if err != nil {
			t.Fatalf("RegisterProduct() failed: %v", err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %q generated under a frozen clock", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestBook_RecentPurchases(t *testing.T) {
	b := newTestBook(t)
	for i := 0; i < 3; i++ {
		var cart Cart
		cart.AddLine("P1", "Widget", Q(1), M(10, b.Currency()), DefaultGSTPercent)
		if _, err := b.RecordPurchase("ACME", &cart); err != nil {
			t.Fatalf("RecordPurchase() failed: %v", err)
		}
	}

	testCases := []struct {
		n    int
		want int
	}{
		{-1, 0}, {0, 0}, {2, 2}, {3, 3}, {10, 3},
	}
	for _, tc := range testCases {
		if got := len(b.RecentPurchases(tc.n)); got != tc.want {
			t.Errorf("RecentPurchases(%d) holds %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestBook_SetProfile(t *testing.T) {
	store := &failStore{MemoryStore: NewMemoryStore()}
	b := NewBook(store)

	profile := b.Profile()
	profile.CompanyName = "New Name"
	if err := b.SetProfile(profile); err != nil {
		t.Fatalf("SetProfile() failed: %v", err)
	}
	if b.Profile().CompanyName != "New Name" {
		t.Errorf("CompanyName = %q, want %q", b.Profile().CompanyName, "New Name")
	}

	store.armed = true
	profile.CompanyName = "Unsaved"
	if err := b.SetProfile(profile); !errors.Is(err, errDiskFull) {
		t.Fatalf("SetProfile() = %v, want the store failure", err)
	}
	if b.Profile().CompanyName != "New Name" {
		t.Errorf("CompanyName = %q after failed write, want rollback to %q", b.Profile().CompanyName, "New Name")
	}
}

// Every mutating operation stages its whole next state and performs one
// store write: a failing write must leave no observable change behind.
func TestBook_FailedWriteChangesNothing(t *testing.T) {
	setup := func(t *testing.T) (*Book, *failStore, Project) {
		t.Helper()
		store := &failStore{MemoryStore: NewMemoryStore()}
		b := NewBook(store)
		clock := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
		b.now = func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}

		var cart Cart
		cart.AddLine("P1", "Widget", Q(10), M(100, b.Currency()), DefaultGSTPercent)
		if _, err := b.RecordPurchase("ACME", &cart); err != nil {
			t.Fatalf("RecordPurchase() failed: %v", err)
		}
		project, err := b.CreateProject("Site A", "ACME Corp", Electrical, M(10000, b.Currency()))
		if err != nil {
			t.Fatalf("CreateProject() failed: %v", err)
		}
		store.armed = true
		return b, store, project
	}

	t.Run("RecordPurchase", func(t *testing.T) {
		b, _, _ := setup(t)
		var cart Cart
		cart.AddLine("P1", "Widget", Q(5), M(200, b.Currency()), DefaultGSTPercent)
		if _, err := b.RecordPurchase("ACME", &cart); !errors.Is(err, errDiskFull) {
			t.Fatalf("RecordPurchase() = %v, want the store failure", err)
		}
		p := mustProduct(t, b, "P1")
		if !p.CurrentStock.Equal(Q(10)) || !p.AvgRate.Equal(M(100, b.Currency())) {
			t.Errorf("stock/rate = %s/%s after failed commit, want unchanged 10/100.00", p.CurrentStock, p.AvgRate)
		}
		if got := len(b.RecentPurchases(10)); got != 1 {
			t.Errorf("ledger holds %d purchases after failed commit, want 1", got)
		}
	})

	t.Run("ConsumeMaterial", func(t *testing.T) {
		b, _, project := setup(t)
		if _, err := b.ConsumeMaterial(project.ID, "P1", Q(4)); !errors.Is(err, errDiskFull) {
			t.Fatalf("ConsumeMaterial() = %v, want the store failure", err)
		}
		p := mustProduct(t, b, "P1")
		if !p.CurrentStock.Equal(Q(10)) {
			t.Errorf("CurrentStock = %s after failed consume, want unchanged 10", p.CurrentStock)
		}
		got := mustProject(t, b, project.ID)
		if len(got.MaterialsUsed) != 0 {
			t.Errorf("MaterialsUsed holds %d entries after failed consume, want 0", len(got.MaterialsUsed))
		}
	})

	t.Run("TransitionProject", func(t *testing.T) {
		b, _, project := setup(t)
		if err := b.TransitionProject(project.ID, InProgress); !errors.Is(err, errDiskFull) {
			t.Fatalf("TransitionProject() = %v, want the store failure", err)
		}
		if got := mustProject(t, b, project.ID); got.Status != Planning {
			t.Errorf("Status = %s after failed transition, want Planning", got.Status)
		}
	})

	t.Run("CreateProject", func(t *testing.T) {
		b, _, _ := setup(t)
		if _, err := b.CreateProject("Site B", "ACME Corp", Road, M(1, b.Currency())); !errors.Is(err, errDiskFull) {
			t.Fatalf("CreateProject() = %v, want the store failure", err)
		}
		var count int
		for range b.Projects() {
			count++
		}
		if count != 1 {
			t.Errorf("book holds %d projects after failed create, want 1", count)
		}
	})
}

func TestOpen_RoundTripsThroughStore(t *testing.T) {
	store := NewMemoryStore()
	b := NewBook(store)
	clock := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	b.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	var cart Cart
	cart.AddLine("P1", "Widget", Q(10), M(100, b.Currency()), DefaultGSTPercent)
	if _, err := b.RecordPurchase("ACME", &cart); err != nil {
		t.Fatalf("RecordPurchase() failed: %v", err)
	}
	project, err := b.CreateProject("Site A", "ACME Corp", Electrical, M(10000, b.Currency()))
	if err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}

	reopened, err := Open(store)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if reopened.Profile().CompanyName != b.Profile().CompanyName {
		t.Errorf("reopened profile = %q, want %q", reopened.Profile().CompanyName, b.Profile().CompanyName)
	}
	p := mustProduct(t, reopened, "P1")
	if !p.CurrentStock.Equal(Q(10)) {
		t.Errorf("reopened stock = %s, want 10", p.CurrentStock)
	}
	if _, ok := reopened.Project(project.ID); !ok {
		t.Errorf("reopened book misses project %q", project.ID)
	}
	if got := len(reopened.RecentPurchases(10)); got != 1 {
		t.Errorf("reopened ledger holds %d purchases, want 1", got)
	}
}
