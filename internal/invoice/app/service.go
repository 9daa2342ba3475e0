package app

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fernandojoseee/garageonline/internal/invoice/domain"
	"github.com/fernandojoseee/garageonline/internal/pricing"
)

const (
	title          = "GarageOnline Purchase Invoice"
	closingMessage = "Thank you for your purchase!"

	// Shown when the customer left the name blank; generation never
	// fails over a missing name.
	defaultCustomer = "Customer"
)

// invoiceNamespace seeds the deterministic document IDs. It is this
// project's own namespace, not one of the RFC 4122 well-known ones, so
// our v5 IDs cannot collide with anyone hashing DNS names or URLs.
var invoiceNamespace = uuid.MustParse("b57ae2a6-9e14-4dd8-8c2f-3a70c1e45b9d")

// Item is one purchased position as the generator wants it; callers
// adapt their cart entries into this shape.
type Item struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal is unit price times quantity, exact.
func (it Item) Subtotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Generator turns a cart snapshot into an immutable invoice document.
// It is a pure read: same items, name and timestamp always yield a
// byte-identical document.
type Generator struct {
	prices pricing.Formatter
}

func NewGenerator(prices pricing.Formatter) *Generator {
	return &Generator{prices: prices}
}

func (g *Generator) Generate(items []Item, customerName string, issuedAt time.Time) domain.Document {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		customerName = defaultCustomer
	}

	lines := make([]domain.Line, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		sub := it.Subtotal()
		total = total.Add(sub)
		lines = append(lines, domain.Line{
			Description: it.Description,
			Quantity:    it.Quantity,
			Subtotal:    g.prices.Format(sub),
		})
	}

	doc := domain.Document{
		CustomerName: customerName,
		IssuedAt:     issuedAt,
		Lines:        lines,
		Total:        g.prices.Format(total),
		Filename:     filename(customerName),
	}
	doc.Body = render(doc)
	doc.ID = uuid.NewSHA1(invoiceNamespace, append([]byte(issuedAt.UTC().Format(time.RFC3339Nano)), doc.Body...)).String()
	return doc
}

// filename is stable per customer: whitespace runs collapse to one
// underscore so repeated generations reuse the same name. The customer
// name feeds a filesystem path, so everything except letters, digits,
// underscore and hyphen is dropped; a name with nothing left falls
// back to the default label.
func filename(customerName string) string {
	var b strings.Builder
	for _, r := range strings.Join(strings.Fields(customerName), "_") {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" {
		name = defaultCustomer
	}
	return "Invoice-GarageOnline-" + name + ".txt"
}

const (
	descWidth   = 40
	qtyWidth    = 5
	amountWidth = 14
)

var separator = strings.Repeat("-", descWidth+1+qtyWidth+1+amountWidth)

// render lays the document out in a fixed order: title, customer and
// date, column headers, one row per line in cart insertion order,
// separator, grand total, closing message.
func render(doc domain.Document) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "%s\n\n", title)
	fmt.Fprintf(&b, "Customer: %s\n", doc.CustomerName)
	fmt.Fprintf(&b, "Date: %s\n\n", doc.IssuedAt.Format("January 2, 2006"))

	fmt.Fprintf(&b, "%-*s %*s %*s\n", descWidth, "Item", qtyWidth, "Qty", amountWidth, "Subtotal")
	fmt.Fprintf(&b, "%s\n", separator)
	for _, line := range doc.Lines {
		fmt.Fprintf(&b, "%-*s %*d %*s\n", descWidth, line.Description, qtyWidth, line.Quantity, amountWidth, line.Subtotal)
	}
	fmt.Fprintf(&b, "%s\n", separator)
	fmt.Fprintf(&b, "%-*s %*s %*s\n\n", descWidth, "Total", qtyWidth, "", amountWidth, doc.Total)

	fmt.Fprintf(&b, "%s\n", closingMessage)

	return b.Bytes()
}
