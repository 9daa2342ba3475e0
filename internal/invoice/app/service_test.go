package app

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernandojoseee/garageonline/internal/pricing"
)

var issuedAt = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func newGenerator() *Generator {
	return NewGenerator(pricing.NewUSD())
}

func fordFocus(qty int) Item {
	return Item{
		Description: "Ford Focus",
		Quantity:    qty,
		UnitPrice:   decimal.NewFromInt(15000),
	}
}

func TestGenerateLayout(t *testing.T) {
	doc := newGenerator().Generate([]Item{fordFocus(3)}, "Ana", issuedAt)

	body := string(doc.Body)
	lines := strings.Split(body, "\n")

	assert.Equal(t, "GarageOnline Purchase Invoice", lines[0])
	assert.Contains(t, body, "Customer: Ana")
	assert.Contains(t, body, "Date: March 15, 2024")

	require.Len(t, doc.Lines, 1)
	assert.Equal(t, 3, doc.Lines[0].Quantity)
	assert.Equal(t, "$45,000.00", doc.Lines[0].Subtotal)
	assert.Equal(t, "$45,000.00", doc.Total)

	// Headers come before rows, rows before the total, total before
	// the closing message.
	idxHeader := strings.Index(body, "Item")
	idxRow := strings.Index(body, "Ford Focus")
	idxTotal := strings.Index(body, "Total")
	idxClosing := strings.Index(body, "Thank you for your purchase!")
	assert.True(t, idxHeader < idxRow && idxRow < idxTotal && idxTotal < idxClosing,
		"layout out of order:\n%s", body)
}

func TestGenerateKeepsInsertionOrder(t *testing.T) {
	items := []Item{
		{Description: "Toyota Corolla", Quantity: 1, UnitPrice: decimal.NewFromInt(22000)},
		{Description: "Mazda CX-5", Quantity: 2, UnitPrice: decimal.NewFromInt(28000)},
	}

	doc := newGenerator().Generate(items, "Ana", issuedAt)

	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "Toyota Corolla", doc.Lines[0].Description)
	assert.Equal(t, "Mazda CX-5", doc.Lines[1].Description)
	assert.Equal(t, "$78,000.00", doc.Total)
}

func TestGenerateDefaultCustomer(t *testing.T) {
	g := newGenerator()

	for _, name := range []string{"", "   "} {
		doc := g.Generate([]Item{fordFocus(1)}, name, issuedAt)
		assert.Equal(t, "Customer", doc.CustomerName)
		assert.Equal(t, "Invoice-GarageOnline-Customer.txt", doc.Filename)
		assert.Contains(t, string(doc.Body), "Customer: Customer")
	}
}

func TestGenerateFilenameNormalizesWhitespace(t *testing.T) {
	doc := newGenerator().Generate([]Item{fordFocus(1)}, "Ana Maria  Perez", issuedAt)
	assert.Equal(t, "Invoice-GarageOnline-Ana_Maria_Perez.txt", doc.Filename)
}

func TestGenerateFilenameDropsUnsafeRunes(t *testing.T) {
	g := newGenerator()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"path traversal", "x/../../evil", "Invoice-GarageOnline-xevil.txt"},
		{"backslashes", `x\..\evil`, "Invoice-GarageOnline-xevil.txt"},
		{"dots and separators only", "../..", "Invoice-GarageOnline-Customer.txt"},
		{"accented letters survive", "Ana María", "Invoice-GarageOnline-Ana_María.txt"},
		{"hyphen survives", "Jean-Luc", "Invoice-GarageOnline-Jean-Luc.txt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := g.Generate([]Item{fordFocus(1)}, tc.in, issuedAt)
			assert.Equal(t, tc.want, doc.Filename)
			assert.NotContains(t, doc.Filename, "/")
			assert.NotContains(t, doc.Filename, `\`)
			assert.NotContains(t, doc.Filename, "..")
		})
	}
}

func TestInvoiceNamespaceIsProjectSpecific(t *testing.T) {
	assert.NotEqual(t, uuid.NameSpaceDNS, invoiceNamespace)
	assert.NotEqual(t, uuid.NameSpaceURL, invoiceNamespace)
	assert.NotEqual(t, uuid.NameSpaceOID, invoiceNamespace)
	assert.NotEqual(t, uuid.NameSpaceX500, invoiceNamespace)
}

func TestGenerateIdempotent(t *testing.T) {
	g := newGenerator()
	items := []Item{fordFocus(3)}

	a := g.Generate(items, "Ana", issuedAt)
	b := g.Generate(items, "Ana", issuedAt)

	assert.Equal(t, a.Body, b.Body)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.Filename, b.Filename)
}

func TestGenerateEmptySnapshot(t *testing.T) {
	doc := newGenerator().Generate(nil, "Ana", issuedAt)

	assert.Empty(t, doc.Lines)
	assert.Equal(t, "$0.00", doc.Total)
}
