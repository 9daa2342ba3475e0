package adapter

import (
	cartapp "github.com/fernandojoseee/garageonline/internal/cart/app"
	checkoutapp "github.com/fernandojoseee/garageonline/internal/checkout/app"
	invoiceapp "github.com/fernandojoseee/garageonline/internal/invoice/app"
)

// LedgerReader adapts the cart ledger to checkout's CartReader port.
// Items works off a snapshot, so checkout never holds the live slice.
type LedgerReader struct {
	ledger *cartapp.Ledger
}

func NewLedgerReader(ledger *cartapp.Ledger) *LedgerReader {
	return &LedgerReader{ledger: ledger}
}

var _ checkoutapp.CartReader = (*LedgerReader)(nil)

func (r *LedgerReader) Items() []invoiceapp.Item {
	snap := r.ledger.Snapshot()

	items := make([]invoiceapp.Item, 0, len(snap))
	for _, e := range snap {
		items = append(items, invoiceapp.Item{
			Description: e.Product.Description(),
			Quantity:    e.Quantity,
			UnitPrice:   e.Product.SalePrice,
		})
	}
	return items
}

func (r *LedgerReader) TotalItems() int {
	return r.ledger.Totals().TotalItems
}

func (r *LedgerReader) Clear() {
	r.ledger.Clear()
}
