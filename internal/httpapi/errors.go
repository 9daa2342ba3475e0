package httpapi

import (
	"errors"
	"net/http"

	catalogapp "github.com/fernandojoseee/garageonline/internal/catalog/app"
	checkoutapp "github.com/fernandojoseee/garageonline/internal/checkout/app"
)

// statusFromErr maps engine errors onto HTTP status and a stable error
// code for clients.
func statusFromErr(err error) (int, string) {
	var verr checkoutapp.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	}

	switch {
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return http.StatusConflict, "EMPTY_CART"
	case errors.Is(err, catalogapp.ErrFetch), errors.Is(err, catalogapp.ErrParse):
		return http.StatusBadGateway, "UPSTREAM"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
