package sitebook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// State is the whole persisted state of the business: the four collections
// the book owns.
type State struct {
	Profile   BusinessProfile
	Products  []Product
	Projects  []Project
	Purchases []Purchase
}

// Store is the persistence port behind the book. The core depends only on
// whole-collection reads and a single combined write, so a book cannot tell
// an in-memory store from a durable one.
//
// WriteState is the transaction boundary: every multi-entity operation
// stages its full next state and performs exactly one write. A store must
// apply that write entirely or not at all.
type Store interface {
	ReadProfile() (profile BusinessProfile, ok bool, err error)
	ReadProducts() ([]Product, error)
	ReadProjects() ([]Project, error)
	ReadPurchases() ([]Purchase, error)
	WriteState(State) error
}

// MemoryStore keeps state in memory. It backs tests and throwaway books.
type MemoryStore struct {
	state      State
	hasProfile bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) ReadProfile() (BusinessProfile, bool, error) {
	return s.state.Profile, s.hasProfile, nil
}
func (s *MemoryStore) ReadProducts() ([]Product, error)   { return s.state.Products, nil }
func (s *MemoryStore) ReadProjects() ([]Project, error)   { return s.state.Projects, nil }
func (s *MemoryStore) ReadPurchases() ([]Purchase, error) { return s.state.Purchases, nil }

func (s *MemoryStore) WriteState(state State) error {
	s.state = state
	s.hasProfile = true
	return nil
}

// FileStore persists the state as a single snapshot document in a JSON file.
// The write goes to a temporary file first and is renamed into place, so a
// crash mid-write cannot leave a half-written book behind.
type FileStore struct {
	path string
}

// NewFileStore creates a store persisting to the given file path.
func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// Path returns the file the store persists to.
func (s *FileStore) Path() string { return s.path }

// load reads and decodes the whole file. A missing file surfaces as
// fs.ErrNotExist for the caller to decide (the CLI starts an empty book).
func (s *FileStore) load() (snapshotDocument, error) {
	var doc snapshotDocument
	data, err := os.ReadFile(s.path)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("cannot parse book file %q: %w", s.path, err)
	}
	return doc, nil
}

func (s *FileStore) ReadProfile() (BusinessProfile, bool, error) {
	doc, err := s.load()
	if err != nil {
		return BusinessProfile{}, false, err
	}
	if doc.Profile == nil {
		return BusinessProfile{}, false, nil
	}
	return *doc.Profile, true, nil
}

func (s *FileStore) ReadProducts() ([]Product, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Products, nil
}

func (s *FileStore) ReadProjects() ([]Project, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Projects, nil
}

func (s *FileStore) ReadPurchases() ([]Purchase, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Purchases, nil
}

func (s *FileStore) WriteState(state State) error {
	doc := newSnapshotDocument(state, time.Now())
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal book state: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("cannot create temporary book file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write book file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close book file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("cannot replace book file %q: %w", s.path, err)
	}
	return nil
}
