package sitebook

import (
	"errors"
	"testing"
	"time"
)

// newTestBook creates an empty book on a memory store with a deterministic
// clock: every call to now() advances one second, so generated ids are
// unique and reproducible.
func newTestBook(t *testing.T) *Book {
	t.Helper()
	b := NewBook(NewMemoryStore())
	clock := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	b.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return b
}

// failStore wraps a memory store and fails every write once armed. It
// exercises the all-or-nothing contract of mutating operations.
type failStore struct {
	*MemoryStore
	armed bool
}

var errDiskFull = errors.New("disk full")

func (s *failStore) WriteState(state State) error {
	if s.armed {
		return errDiskFull
	}
	return s.MemoryStore.WriteState(state)
}

// mustProduct fetches a product or fails the test.
func mustProduct(t *testing.T, b *Book, id string) Product {
	t.Helper()
	p, ok := b.Product(id)
	if !ok {
		t.Fatalf("Product(%q) not found", id)
	}
	return p
}

// mustProject fetches a project or fails the test.
func mustProject(t *testing.T, b *Book, id string) Project {
	t.Helper()
	p, ok := b.Project(id)
	if !ok {
		t.Fatalf("Project(%q) not found", id)
	}
	return p
}
