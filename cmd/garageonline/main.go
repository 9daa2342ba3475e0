package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	cartapp "github.com/fernandojoseee/garageonline/internal/cart/app"
	catalogapp "github.com/fernandojoseee/garageonline/internal/catalog/app"
	"github.com/fernandojoseee/garageonline/internal/catalog/infra/httpsource"
	checkoutapp "github.com/fernandojoseee/garageonline/internal/checkout/app"
	"github.com/fernandojoseee/garageonline/internal/checkout/infra/adapter"
	"github.com/fernandojoseee/garageonline/internal/httpapi"
	invoiceapp "github.com/fernandojoseee/garageonline/internal/invoice/app"
	"github.com/fernandojoseee/garageonline/internal/invoice/infra/filesink"
	"github.com/fernandojoseee/garageonline/internal/pricing"

	"github.com/fernandojoseee/garageonline/pkg/config"
	"github.com/fernandojoseee/garageonline/pkg/logger"
	"github.com/fernandojoseee/garageonline/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "garageonline", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	source := httpsource.New(cfg.CatalogURL, &http.Client{Timeout: 15 * time.Second})
	store := catalogapp.NewStore(source)

	// A failed initial load is not fatal: the catalog stays empty and
	// the error is surfaced; /api/catalog/reload reuses Load as-is.
	loadCtx, loadCancel := context.WithTimeout(ctx, 20*time.Second)
	if err := store.Load(loadCtx); err != nil {
		log.Error("catalog load failed", slog.Any("err", err), slog.String("url", cfg.CatalogURL))
	} else {
		log.Info("catalog loaded", slog.Int("products", len(store.All())))
	}
	loadCancel()

	// Cart
	ledger := cartapp.NewLedger()

	// Checkout + invoices
	prices := pricing.NewUSD()
	checkoutSvc := checkoutapp.NewService(
		adapter.NewLedgerReader(ledger),
		invoiceapp.NewGenerator(prices),
		filesink.New(cfg.InvoiceDir),
	)

	api := httpapi.New(store, ledger, checkoutSvc, prices, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", slog.Any("err", err))
	}
	log.Info("bye")
}
