package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"medsupply/internal/config"
	httpapi "medsupply/internal/http"
	"medsupply/internal/journal"
	"medsupply/internal/observability"
	"medsupply/internal/repository"
	"medsupply/internal/seed"
	"medsupply/internal/service"

	_ "medsupply/docs"
)

// @title Medsupply API
// @version 1.0
// @description Pharmacy supply chain: registries, inventory, vendor orders, checkout and sales ledger.
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	for _, w := range cfg.Warnings {
		logger.Warn("config value ignored", zap.String("detail", w))
	}

	ctx := context.Background()
	shutdownTracing, err := observability.SetupTracing(ctx, config.ServiceName, cfg.OtelEndpoint)
	if err != nil {
		logger.Fatal("failed to set up tracing", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown error", zap.Error(err))
		}
	}()

	store := repository.NewMemoryStore()
	batchesRepo := repository.NewMemoryBatches(store)
	vendorsRepo := repository.NewMemoryVendors(store)
	ordersRepo := repository.NewMemoryOrders(store)
	stockRepo := repository.NewMemoryStock(store)
	salesRepo := repository.NewMemorySales(store)
	tx := repository.NewMemoryTx(store)

	catalogSvc := service.NewCatalogService(batchesRepo, vendorsRepo, store, stockRepo, tx, logger)
	vendorsSvc := service.NewVendorService(vendorsRepo, ordersRepo, store, stockRepo, tx, logger)
	inventorySvc := service.NewInventoryService(store, stockRepo, vendorsSvc, tx, logger)
	salesSvc := service.NewSalesService(salesRepo, store, logger)
	cartsSvc := service.NewCartService(store, stockRepo, salesSvc, tx, logger)

	var journalReader httpapi.JournalReader
	if cfg.JournalDSN != "" {
		j, err := journal.Open(cfg.JournalDSN)
		if err != nil {
			logger.Fatal("failed to open sales journal", zap.Error(err))
		}
		defer j.Close()
		cartsSvc.WithRecorder(j)
		journalReader = j
		logger.Info("sales journal enabled")
	}

	if cfg.SeedSampleData {
		if err := seed.Load(ctx, catalogSvc, inventorySvc); err != nil {
			logger.Fatal("failed to seed sample data", zap.Error(err))
		}
		logger.Info("sample data loaded")
	}

	srv := httpapi.NewServer(httpapi.Services{
		Catalog:   catalogSvc,
		Vendors:   vendorsSvc,
		Inventory: inventorySvc,
		Carts:     cartsSvc,
		Sales:     salesSvc,
		Journal:   journalReader,
	}, httpapi.Options{
		CheckoutTimeout: cfg.CheckoutTimeout,
		RateLimitRPS:    cfg.RateLimitRPS,
		RateLimitBurst:  cfg.RateLimitBurst,
	}, logger)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
