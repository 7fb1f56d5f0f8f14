package sitebook

import (
	"errors"
	"testing"
)

func TestCatalog_Receive_WeightedAverage(t *testing.T) {
	c := NewCatalog()
	c.Add(Product{ID: "P1", Name: "Copper Wire", Unit: "Mtr",
		CurrentStock: Q(500), MinStock: Q(100), AvgRate: M(45, "INR")})

	// 500 units at 45 blended with 100 units at 60: (500*45 + 100*60) / 600.
	c.Receive("P1", "Copper Wire", Q(100), M(60, "INR"))

	p, ok := c.Get("P1")
	if !ok {
		t.Fatal("Get(P1) not found after Receive")
	}
	if !p.CurrentStock.Equal(Q(600)) {
		t.Errorf("CurrentStock = %s, want 600", p.CurrentStock)
	}
	if !p.AvgRate.Equal(M(47.5, "INR")) {
		t.Errorf("AvgRate = %s, want 47.50", p.AvgRate)
	}
}

func TestCatalog_Receive_AverageIsExact(t *testing.T) {
	// A blend that is periodic in binary must still come out exact:
	// 3 at 10 plus 3 at 10.10 averages to 10.05.
	c := NewCatalog()
	c.Receive("P1", "Widget", Q(3), M(10, "INR"))
	c.Receive("P1", "Widget", Q(3), M(10.10, "INR"))

	p, _ := c.Get("P1")
	if !p.AvgRate.Equal(M(10.05, "INR")) {
		t.Errorf("AvgRate = %s, want 10.05 exactly", p.AvgRate)
	}
}

func TestCatalog_Receive_CreatesUnseenProduct(t *testing.T) {
	c := NewCatalog()
	c.Receive("P9", "Bitumen", Q(25), M(12500, "INR"))

	p, ok := c.Get("P9")
	if !ok {
		t.Fatal("Receive did not create the unseen product")
	}
	if p.Category != DefaultCategory || p.Unit != DefaultUnit {
		t.Errorf("defaults = (%q, %q), want (%q, %q)", p.Category, p.Unit, DefaultCategory, DefaultUnit)
	}
	if !p.MinStock.Equal(DefaultMinStock) {
		t.Errorf("MinStock = %s, want %s", p.MinStock, DefaultMinStock)
	}
	if !p.AvgRate.Equal(M(12500, "INR")) {
		t.Errorf("AvgRate = %s, want the first receipt's rate", p.AvgRate)
	}
}

func TestCatalog_Receive_IgnoresInvalidInput(t *testing.T) {
	c := NewCatalog()
	c.Receive("P1", "Widget", Q(10), M(5, "INR"))

	c.Receive("P1", "Widget", Q(0), M(99, "INR"))
	c.Receive("P1", "Widget", Q(-3), M(99, "INR"))
	c.Receive("P1", "Widget", Q(10), M(-1, "INR"))

	p, _ := c.Get("P1")
	if !p.CurrentStock.Equal(Q(10)) || !p.AvgRate.Equal(M(5, "INR")) {
		t.Errorf("stock/rate = %s/%s, want unchanged 10/5.00", p.CurrentStock, p.AvgRate)
	}
}

func TestCatalog_Debit(t *testing.T) {
	newCatalog := func() *Catalog {
		c := NewCatalog()
		c.Receive("P1", "Widget", Q(10), M(5, "INR"))
		return c
	}

	t.Run("freezes the rate and decrements stock", func(t *testing.T) {
		c := newCatalog()
		frozen, err := c.Debit("P1", Q(4))
		if err != nil {
			t.Fatalf("Debit() failed: %v", err)
		}
		if !frozen.Equal(M(5, "INR")) {
			t.Errorf("frozen rate = %s, want 5.00", frozen)
		}
		p, _ := c.Get("P1")
		if !p.CurrentStock.Equal(Q(6)) {
			t.Errorf("CurrentStock = %s, want 6", p.CurrentStock)
		}
	})

	t.Run("can empty the stock completely", func(t *testing.T) {
		c := newCatalog()
		if _, err := c.Debit("P1", Q(10)); err != nil {
			t.Fatalf("Debit(full stock) failed: %v", err)
		}
		p, _ := c.Get("P1")
		if !p.CurrentStock.IsZero() {
			t.Errorf("CurrentStock = %s, want 0", p.CurrentStock)
		}
	})

	t.Run("never lets stock go negative", func(t *testing.T) {
		c := newCatalog()
		_, err := c.Debit("P1", Q(11))
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("Debit(11 of 10) = %v, want ErrInsufficientStock", err)
		}
		p, _ := c.Get("P1")
		if !p.CurrentStock.Equal(Q(10)) {
			t.Errorf("CurrentStock = %s, want unchanged 10", p.CurrentStock)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		c := newCatalog()
		_, err := c.Debit("nope", Q(1))
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Debit(unknown) = %v, want ErrNotFound", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		c := newCatalog()
		if _, err := c.Debit("P1", Q(0)); err == nil {
			t.Fatal("Debit(0) succeeded, want error")
		}
	})
}

func TestCatalog_LowStock(t *testing.T) {
	c := NewCatalog()
	c.Add(Product{ID: "low", Name: "A", CurrentStock: Q(5), MinStock: Q(10)})
	c.Add(Product{ID: "edge", Name: "B", CurrentStock: Q(10), MinStock: Q(10)})
	c.Add(Product{ID: "ok", Name: "C", CurrentStock: Q(11), MinStock: Q(10)})

	var got []string
	for p := range c.LowStock() {
		got = append(got, p.ID)
	}
	// at or under the threshold counts as low.
	want := []string{"low", "edge"}
	if len(got) != len(want) {
		t.Fatalf("LowStock() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LowStock()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCatalog_Clone_IsIndependent(t *testing.T) {
	c := NewCatalog()
	c.Receive("P1", "Widget", Q(10), M(5, "INR"))

	clone := c.Clone()
	if _, err := clone.Debit("P1", Q(10)); err != nil {
		t.Fatalf("Debit() on clone failed: %v", err)
	}

	p, _ := c.Get("P1")
	if !p.CurrentStock.Equal(Q(10)) {
		t.Errorf("original stock = %s after mutating the clone, want 10", p.CurrentStock)
	}
}
