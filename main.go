package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"skin-scout/internal/backend"
	"skin-scout/internal/broadcast"
	"skin-scout/internal/config"
	"skin-scout/internal/pricecache"
	"skin-scout/internal/repository"
	"skin-scout/internal/scheduler"
	scout "skin-scout/internal/scoutService"
	"skin-scout/internal/server"
	"skin-scout/internal/storage"
	"skin-scout/utils"
)

// priceRefreshInterval matches the alarm cadence the extension used to
// keep the marketplace catalog warm in the background.
const priceRefreshInterval = 15 * time.Minute

func main() {
	utils.SetLevel(config.LogLevel)

	store, closeStore := openStore()
	defer closeStore()

	cache := pricecache.New()
	pricing := backend.NewPricingClient(config.PricingAPIURL)
	currency := backend.NewCurrencyClient(config.CurrencyAPIURL)

	repo := repository.NewDataRepo(store, cache, pricing, currency, "eur")
	guards := scheduler.NewGuardRegistry()
	caster := broadcast.NewPendingBuffer()

	scoutSvc := scout.NewScoutService(repo, guards, caster)
	dispatcher := scheduler.NewDispatcher()

	bootstrap(repo)
	startPriceRefreshLoop(scoutSvc, dispatcher)

	router := server.SetupRouter(scoutSvc, dispatcher)

	utils.Info("starting skin-scout server", map[string]any{"address": config.ServerRunAddress})
	if err := router.Run(config.ServerRunAddress); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the SQLite-backed store, falling back to the
// in-memory store when the database cannot be opened. Settings are
// then lost on restart but the service stays usable.
func openStore() (storage.Store, func()) {
	sqlStore, err := storage.NewSQLiteStore(config.DatabasePath)
	if err != nil {
		utils.Warn("failed to open sqlite store, falling back to memory", map[string]any{
			"path":  config.DatabasePath,
			"error": err.Error(),
		})
		return storage.NewMemoryStore(), func() {}
	}
	return sqlStore, func() { _ = sqlStore.Close() }
}

// bootstrap restores the persisted state a fresh process needs: the
// installation ID and the last fetched price catalog.
func bootstrap(repo repository.Repository) {
	ctx := context.Background()

	if _, err := repo.InitializeInstanceID(ctx); err != nil {
		utils.Warn("failed to initialize instance ID", map[string]any{"error": err.Error()})
	}
	if err := repo.LoadPricesCache(ctx); err != nil {
		utils.Warn("failed to load persisted prices", map[string]any{"error": err.Error()})
	}
}

// startPriceRefreshLoop dispatches a price refresh into the heavy lane
// immediately and then on a fixed interval. The single-flight guard in
// the service makes overlapping triggers harmless.
func startPriceRefreshLoop(scoutSvc *scout.ScoutService, dispatcher *scheduler.Dispatcher) {
	refresh := func() {
		if err := scoutSvc.RefreshPricesIfExpired(context.Background()); err != nil {
			utils.Warn("price refresh failed", map[string]any{"error": err.Error()})
		}
	}

	dispatcher.Dispatch(scheduler.ActionUpdatePrices, refresh)

	go func() {
		ticker := time.NewTicker(priceRefreshInterval)
		defer ticker.Stop()
		for range ticker.C {
			dispatcher.Dispatch(scheduler.ActionUpdatePrices, refresh)
		}
	}()
}
