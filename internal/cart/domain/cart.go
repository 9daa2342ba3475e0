package domain

import (
	"github.com/shopspring/decimal"

	catalogdomain "github.com/fernandojoseee/garageonline/internal/catalog/domain"
)

// Entry is one cart line: a product snapshot plus how many of it.
// Quantity is always positive; the ledger never stores a zero line.
type Entry struct {
	Product  catalogdomain.Product
	Quantity int
}

// Subtotal is sale price times quantity, exact (no rounding).
func (e Entry) Subtotal() decimal.Decimal {
	return e.Product.SalePrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Totals are derived from the entry list on demand, never stored.
type Totals struct {
	TotalItems  int
	TotalAmount decimal.Decimal
}
