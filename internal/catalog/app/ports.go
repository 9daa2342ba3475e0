package app

import (
	"context"

	"github.com/fernandojoseee/garageonline/internal/catalog/domain"
)

// Source is the catalog feed: anything that yields the full product
// list in one shot. Implementations report failures with ErrFetch or
// ErrParse in their chain.
type Source interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}
