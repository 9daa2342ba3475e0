package app

import (
	"github.com/shopspring/decimal"

	catalogdomain "github.com/fernandojoseee/garageonline/internal/catalog/domain"
	"github.com/fernandojoseee/garageonline/internal/cart/domain"
)

// Ledger holds the cart for one shopping session. Entries keep their
// first-add order and there is at most one entry per product code.
// All access happens from a single control flow; no locking.
type Ledger struct {
	entries []domain.Entry
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// AddItem merges qty into the entry for p, or appends a new entry.
// A non-positive quantity is a deliberate no-op, not an error: it is
// treated as ignorable user input rather than a system fault.
func (l *Ledger) AddItem(p catalogdomain.Product, qty int) {
	if qty <= 0 {
		return
	}

	for i := range l.entries {
		if l.entries[i].Product.Code == p.Code {
			l.entries[i].Quantity += qty
			return
		}
	}

	l.entries = append(l.entries, domain.Entry{
		Product:  p,
		Quantity: qty,
	})
}

// Totals recomputes item count and amount from the entry list. Nothing
// is cached, so the result can never drift from the entries.
func (l *Ledger) Totals() domain.Totals {
	t := domain.Totals{TotalAmount: decimal.Zero}
	for _, e := range l.entries {
		t.TotalItems += e.Quantity
		t.TotalAmount = t.TotalAmount.Add(e.Subtotal())
	}
	return t
}

// Clear empties the cart unconditionally.
func (l *Ledger) Clear() {
	l.entries = nil
}

// Empty reports the checkout-disabled state.
func (l *Ledger) Empty() bool {
	return len(l.entries) == 0
}

// Snapshot returns a copy of the entries. Holders of a snapshot never
// observe later cart mutations.
func (l *Ledger) Snapshot() []domain.Entry {
	out := make([]domain.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
