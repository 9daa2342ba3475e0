package adapter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/fernandojoseee/garageonline/internal/cart/app"
	catalogdomain "github.com/fernandojoseee/garageonline/internal/catalog/domain"
)

func TestLedgerReader(t *testing.T) {
	ledger := cartapp.NewLedger()
	ledger.AddItem(catalogdomain.Product{
		Code:      7,
		Brand:     "Ford",
		Model:     "Focus",
		SalePrice: decimal.NewFromInt(15000),
	}, 3)

	r := NewLedgerReader(ledger)

	items := r.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Ford Focus", items[0].Description)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(15000)))
	assert.Equal(t, 3, r.TotalItems())

	// Items is snapshot-backed: mutating the ledger afterwards does
	// not change what the reader already handed out.
	ledger.Clear()
	assert.Equal(t, 3, items[0].Quantity)

	assert.Empty(t, r.Items())
	assert.Zero(t, r.TotalItems())
}
