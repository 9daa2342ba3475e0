// Package httpapi is the presentation-layer edge: a small JSON API
// over the catalog store, cart ledger and checkout service. The cart
// and checkout are single-session and lock-free, so the edge
// serializes those through one mutex. The catalog store synchronizes
// itself, which keeps a slow reload from stalling cart traffic.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	cartapp "github.com/fernandojoseee/garageonline/internal/cart/app"
	catalogapp "github.com/fernandojoseee/garageonline/internal/catalog/app"
	checkoutapp "github.com/fernandojoseee/garageonline/internal/checkout/app"
	checkoutdomain "github.com/fernandojoseee/garageonline/internal/checkout/domain"
	"github.com/fernandojoseee/garageonline/internal/pricing"
)

type Server struct {
	mu sync.Mutex

	catalog  *catalogapp.Store
	cart     *cartapp.Ledger
	checkout *checkoutapp.Service
	prices   pricing.Formatter
	log      *slog.Logger
}

func New(catalog *catalogapp.Store, cart *cartapp.Ledger, checkout *checkoutapp.Service, prices pricing.Formatter, log *slog.Logger) *Server {
	return &Server{
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		prices:   prices,
		log:      log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", s.handleSearch)
		r.Post("/catalog/reload", s.handleReload)
		r.Get("/cart", s.handleCart)
		r.Post("/cart/items", s.handleAddItem)
		r.Post("/checkout", s.handleCheckout)
	})

	return r
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("http request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
		)
	})
}

type productJSON struct {
	Code               int    `json:"code"`
	Brand              string `json:"brand"`
	Model              string `json:"model"`
	Category           string `json:"category"`
	Type               string `json:"type"`
	ImageRef           string `json:"imageRef"`
	SalePrice          string `json:"salePrice"`
	SalePriceFormatted string `json:"salePriceFormatted"`
}

type searchResponse struct {
	Loaded   bool          `json:"loaded"`
	Products []productJSON `json:"products"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	loaded := s.catalog.Loaded()
	found := s.catalog.Search(r.URL.Query().Get("q"))

	resp := searchResponse{
		Loaded: loaded,
		// Always a JSON array, so "no results" renders explicitly.
		Products: make([]productJSON, 0, len(found)),
	}
	for _, p := range found {
		resp.Products = append(resp.Products, productJSON{
			Code:               p.Code,
			Brand:              p.Brand,
			Model:              p.Model,
			Category:           p.Category,
			Type:               p.Type,
			ImageRef:           p.ImageRef,
			SalePrice:          p.SalePrice.String(),
			SalePriceFormatted: s.prices.Format(p.SalePrice),
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	// The store swaps contents under its own lock; holding the edge
	// mutex across the upstream fetch would freeze cart traffic for
	// the whole round trip.
	err := s.catalog.Load(r.Context())
	count := len(s.catalog.All())

	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

type cartLineJSON struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

type cartResponse struct {
	Items       []cartLineJSON `json:"items"`
	TotalItems  int            `json:"totalItems"`
	TotalAmount string         `json:"totalAmount"`
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.cart.Snapshot()
	totals := s.cart.Totals()
	s.mu.Unlock()

	resp := cartResponse{
		Items:       make([]cartLineJSON, 0, len(snap)),
		TotalItems:  totals.TotalItems,
		TotalAmount: s.prices.Format(totals.TotalAmount),
	}
	for _, e := range snap {
		resp.Items = append(resp.Items, cartLineJSON{
			Code:        e.Product.Code,
			Description: e.Product.Description(),
			Quantity:    e.Quantity,
			Subtotal:    s.prices.Format(e.Subtotal()),
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

type addItemRequest struct {
	Code     *int `json:"code"`
	Quantity int  `json:"quantity"`
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == nil {
		s.writeBadRequest(w, "body must be {\"code\": int, \"quantity\": int}")
		return
	}

	p, err := s.catalog.Get(*req.Code)
	if err == nil {
		// Non-positive quantities are a silent no-op in the ledger.
		s.mu.Lock()
		s.cart.AddItem(p, req.Quantity)
		s.mu.Unlock()
	}

	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type checkoutRequest struct {
	CustomerName string `json:"customerName"`
	Payment      struct {
		CardholderName string `json:"cardholderName"`
		CardNumber     string `json:"cardNumber"`
		Expiry         string `json:"expiry"`
		CVC            string `json:"cvc"`
	} `json:"payment"`
}

type checkoutResponse struct {
	InvoiceID   string `json:"invoiceId"`
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	TotalItems  int    `json:"totalItems"`
	TotalAmount string `json:"totalAmount"`
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w, "malformed checkout body")
		return
	}

	s.mu.Lock()
	rcpt, err := s.checkout.Confirm(r.Context(), req.CustomerName, checkoutdomain.PaymentForm{
		CardholderName: req.Payment.CardholderName,
		CardNumber:     req.Payment.CardNumber,
		Expiry:         req.Payment.Expiry,
		CVC:            req.Payment.CVC,
	})
	s.mu.Unlock()

	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, checkoutResponse{
		InvoiceID:   rcpt.InvoiceID,
		Filename:    rcpt.Filename,
		Path:        rcpt.Path,
		TotalItems:  rcpt.TotalItems,
		TotalAmount: rcpt.TotalAmount,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", slog.Any("err", err))
	}
}

func (s *Server) writeBadRequest(w http.ResponseWriter, msg string) {
	s.writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_ARGUMENT", Message: msg})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFromErr(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("err", err),
		)
	}
	msg := err.Error()
	if code == "INTERNAL" {
		msg = "internal error"
	}
	s.writeJSON(w, status, errorBody{Code: code, Message: msg})
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
