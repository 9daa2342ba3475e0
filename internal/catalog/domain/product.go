package domain

import "github.com/shopspring/decimal"

// Product is one vehicle record from the catalog feed. Records are
// immutable once loaded; Code is the identity within a catalog.
type Product struct {
	Code      int
	Brand     string
	Model     string
	Category  string
	Type      string
	ImageRef  string
	SalePrice decimal.Decimal
}

// Description is the display label used on cart lines and invoices.
func (p Product) Description() string {
	return p.Brand + " " + p.Model
}
