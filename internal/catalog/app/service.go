package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/fernandojoseee/garageonline/internal/catalog/domain"
)

var (
	// ErrFetch marks a source that was unreachable or answered with a
	// non-success status.
	ErrFetch = errors.New("catalog fetch failed")
	// ErrParse marks a payload that did not decode into product records.
	ErrParse = errors.New("catalog payload malformed")
	// ErrNotFound is returned when no product carries the requested code.
	ErrNotFound = errors.New("product not found")
)

// Store holds the catalog for one session. Contents are replaced
// wholesale by Load and read-only otherwise. Reads may run while a
// Load is fetching; the lock guards only the swap, so a slow source
// never stalls searches. Callers still serialize concurrent Loads.
type Store struct {
	source Source

	mu       sync.RWMutex
	products []domain.Product
	loaded   bool
}

func NewStore(source Source) *Store {
	return &Store{
		source: source,
	}
}

// Load fetches the catalog and replaces the store's contents. On any
// failure the store is emptied first, so no partial or stale data
// survives, and the error is returned for display.
func (s *Store) Load(ctx context.Context) error {
	products, err := s.source.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.products = nil
		s.loaded = false
		return err
	}

	s.products = products
	s.loaded = true
	return nil
}

// Loaded reports whether the last Load succeeded. It lets callers tell
// "no results" apart from "nothing loaded yet".
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// All returns a copy of the full catalog.
func (s *Store) All() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Search returns the products whose brand, model or category contains
// the query, case-insensitively. An empty query returns the full
// catalog. The stored catalog is never modified.
func (s *Store) Search(query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.All()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Brand), query) ||
			strings.Contains(strings.ToLower(p.Model), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			out = append(out, p)
		}
	}
	return out
}

// Get resolves a product by code.
func (s *Store) Get(code int) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Code == code {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}
