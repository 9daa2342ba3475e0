package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	invoiceapp "github.com/fernandojoseee/garageonline/internal/invoice/app"
	invoicedomain "github.com/fernandojoseee/garageonline/internal/invoice/domain"

	"github.com/fernandojoseee/garageonline/internal/checkout/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports a missing required payment-form field. It is
// surfaced to the user synchronously; checkout halts until corrected.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

// CartReader is how checkout sees the session cart: items to invoice,
// plus the clear that follows a successful generation.
type CartReader interface {
	Items() []invoiceapp.Item
	TotalItems() int
	Clear()
}

// Service runs the checkout confirmation: validate the payment form,
// generate the invoice from a cart snapshot, hand it to the sink, then
// clear the cart. The payment step is a no-op gate, not a transaction.
type Service struct {
	cart      CartReader
	generator *invoiceapp.Generator
	sink      invoiceapp.Sink

	now func() time.Time
}

func NewService(cart CartReader, generator *invoiceapp.Generator, sink invoiceapp.Sink) *Service {
	return &Service{
		cart:      cart,
		generator: generator,
		sink:      sink,
		now:       time.Now,
	}
}

func (s *Service) Confirm(ctx context.Context, customerName string, form domain.PaymentForm) (domain.Receipt, error) {
	if err := validate(form); err != nil {
		return domain.Receipt{}, err
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return domain.Receipt{}, ErrEmptyCart
	}
	totalItems := s.cart.TotalItems()

	doc := s.generator.Generate(items, customerName, s.now())

	path, err := s.sink.Save(ctx, doc)
	if err != nil {
		// The cart survives a sink failure; the user can retry.
		return domain.Receipt{}, fmt.Errorf("save invoice: %w", err)
	}

	s.cart.Clear()

	return receipt(doc, path, totalItems), nil
}

func validate(form domain.PaymentForm) error {
	required := []struct {
		field string
		value string
	}{
		{"cardholderName", form.CardholderName},
		{"cardNumber", form.CardNumber},
		{"expiry", form.Expiry},
		{"cvc", form.CVC},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return ValidationError{Field: r.field}
		}
	}
	return nil
}

func receipt(doc invoicedomain.Document, path string, totalItems int) domain.Receipt {
	return domain.Receipt{
		InvoiceID:   doc.ID,
		Filename:    doc.Filename,
		Path:        path,
		TotalItems:  totalItems,
		TotalAmount: doc.Total,
	}
}
