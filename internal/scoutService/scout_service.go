// Package scout implements the business operations behind the message
// dispatch surface: the price-merge pipeline, the guarded mutating
// operations, and the settings/auth accessors.
package scout

import (
	"context"
	"errors"
	"fmt"
	"math"

	"skin-scout/internal/backend"
	"skin-scout/internal/broadcast"
	"skin-scout/internal/currency"
	"skin-scout/internal/models"
	"skin-scout/internal/repository"
	"skin-scout/internal/scheduler"
	"skin-scout/internal/scouterrors"
	"skin-scout/internal/sites"
	"skin-scout/utils"
)

// Catalog prices arrive in USD; frontends display EUR.
const (
	sourceCurrency  = "usd"
	displayCurrency = "eur"
)

// ItemPriceResult is the reply to an item-price request: the merged
// item plus the visibility thresholds the frontend should apply.
// Filters stay zeroed for Free-plan users.
type ItemPriceResult struct {
	Item    models.ItemPayload
	Filters models.FilterSettings
}

// ScoutService wires the repository, the single-flight guards, and the
// broadcast sink into the operations the dispatcher exposes.
type ScoutService struct {
	repo   repository.Repository
	guards *scheduler.GuardRegistry
	caster broadcast.Broadcaster
}

func NewScoutService(repo repository.Repository, guards *scheduler.GuardRegistry, caster broadcast.Broadcaster) *ScoutService {
	return &ScoutService{
		repo:   repo,
		guards: guards,
		caster: caster,
	}
}

// AuthCheck answers from the cached auth status only; it never talks to
// the backend.
func (s *ScoutService) AuthCheck(ctx context.Context) (models.AuthStatus, error) {
	return s.repo.CachedAuthStatus(ctx), nil
}

// RefreshAuthCheck re-validates with the backend and returns the new
// cached status.
func (s *ScoutService) RefreshAuthCheck(ctx context.Context) (models.AuthStatus, error) {
	return s.repo.RefreshAuthStatus(ctx), nil
}

// UpdateItemPrice runs the merge pipeline for one scraped item: resolve
// the canonical key, look up the catalog entry, convert the price into
// the display currency, and recompute the difference. A miss on the
// catalog key is the expected outcome for new or rare items; a missing
// rate table or an in-flight refresh are transient states that trigger
// or await a refresh.
func (s *ScoutService) UpdateItemPrice(ctx context.Context, payload models.ItemPayload) (ItemPriceResult, error) {
	if s.guards.InFlight(scheduler.OpUpdatePrices) {
		return ItemPriceResult{}, scouterrors.ErrPricesExpired
	}

	item := models.ItemFromPayload(payload)
	if item.IsCompletelyNull() {
		return ItemPriceResult{}, fmt.Errorf("%w: all attributes missing", scouterrors.ErrMalformedItem)
	}

	if err := s.resolvePrice(ctx, item); err != nil {
		if s.isRefreshTrigger(err) {
			s.triggerPriceRefresh()
		}
		return ItemPriceResult{}, err
	}

	result := ItemPriceResult{Item: item.Payload()}
	if s.repo.CachedAuthStatus(ctx).Plan == models.PlanPro {
		filters, err := s.FilterSettings(ctx)
		if err != nil {
			return ItemPriceResult{}, err
		}
		result.Filters = filters
	}
	return result, nil
}

// resolvePrice is the merge step proper; it mutates the item in place.
func (s *ScoutService) resolvePrice(ctx context.Context, item *models.Item) error {
	name, err := sites.FormatName(item)
	if err != nil {
		return err
	}

	if !s.repo.PricesLoaded() {
		return scouterrors.ErrPricesExpired
	}
	quote, ok := s.repo.LookupItemQuote(name)
	if !ok {
		return fmt.Errorf("%w: %s", scouterrors.ErrItemNotFound, name)
	}

	table := s.repo.CurrencyRateTable(ctx)
	if table == nil {
		return scouterrors.ErrNoCurrencyRate
	}
	converted, err := currency.Convert(table, sourceCurrency, displayCurrency, quote.Price)
	if err != nil {
		return err
	}

	item.SetMarketplaceValue(math.Round(converted*100) / 100)
	item.SetCount(quote.Count)
	item.CalculatePriceDifference()
	return nil
}

func (s *ScoutService) isRefreshTrigger(err error) bool {
	return errors.Is(err, scouterrors.ErrPricesExpired) ||
		errors.Is(err, scouterrors.ErrNoCurrencyRate)
}

// triggerPriceRefresh kicks off an asynchronous refresh attempt so a
// later request can succeed. The single-flight guard keeps it from
// stacking.
func (s *ScoutService) triggerPriceRefresh() {
	go func() {
		if err := s.RefreshPricesIfExpired(context.Background()); err != nil {
			utils.Warn("triggered price refresh failed", map[string]any{"error": err.Error()})
		}
	}()
}

// RefreshPricesIfExpired is the price-refresh entry point shared by the
// periodic timer and the cache-miss trigger. If a refresh is already
// underway the call is a silent no-op. The guard is released in a final
// step regardless of the outcome.
func (s *ScoutService) RefreshPricesIfExpired(ctx context.Context) error {
	if !s.guards.TryAcquire(scheduler.OpUpdatePrices) {
		return nil
	}
	defer s.guards.Release(scheduler.OpUpdatePrices)

	expired, err := s.repo.ArePricesExpired(ctx)
	if err != nil {
		return fmt.Errorf("scout: failed to check catalog freshness: %w", err)
	}
	if !expired {
		utils.Info("marketplace prices are still valid", nil)
		return nil
	}

	status := s.repo.RefreshAuthStatus(ctx)
	if !status.Authorized {
		utils.Info("user is not authorized, skipping price update", nil)
		return nil
	}

	if err := s.repo.UpdateMarketplacePrices(ctx); err != nil {
		return fmt.Errorf("scout: price update failed: %w", err)
	}
	if err := s.repo.LoadPricesCache(ctx); err != nil {
		return fmt.Errorf("scout: failed to reload price cache: %w", err)
	}
	if err := s.repo.UpdateCurrencyRate(ctx); err != nil {
		return fmt.Errorf("scout: currency rate update failed: %w", err)
	}

	success := true
	if err := s.caster.Broadcast(models.BroadcastMessage{
		Action:  "pricesUpdated",
		Success: &success,
	}); err != nil {
		utils.Warn("failed to notify frontends of price update", map[string]any{"error": err.Error()})
	}
	utils.Info("marketplace prices updated", nil)
	return nil
}

// IsUpdatingPrices reports whether a refresh is in flight.
func (s *ScoutService) IsUpdatingPrices() bool {
	return s.guards.InFlight(scheduler.OpUpdatePrices)
}

// LastPricesUpdate returns the formatted catalog fetch time, or "" if
// no catalog was ever loaded.
func (s *ScoutService) LastPricesUpdate() string {
	return s.repo.LastPricesUpdate()
}

// UpdateVisibilityByFilters rebroadcasts the filter thresholds to all
// frontends. Concurrent duplicates are rejected, not queued.
func (s *ScoutService) UpdateVisibilityByFilters(ctx context.Context, filters models.FilterSettings) error {
	if !s.guards.TryAcquire(scheduler.OpUpdateVisibility) {
		return fmt.Errorf("%w: visibility update", scouterrors.ErrAlreadyInProgress)
	}
	defer s.guards.Release(scheduler.OpUpdateVisibility)

	return s.caster.Broadcast(models.BroadcastMessage{
		Action:  scheduler.ActionUpdateVisibility,
		Filters: &filters,
	})
}

// EnableExtension broadcasts the enable signal and persists the flag.
func (s *ScoutService) EnableExtension(ctx context.Context) error {
	if !s.guards.TryAcquire(scheduler.OpEnableExtension) {
		return fmt.Errorf("%w: enable", scouterrors.ErrAlreadyInProgress)
	}
	defer s.guards.Release(scheduler.OpEnableExtension)

	if err := s.caster.Broadcast(models.BroadcastMessage{Action: scheduler.ActionEnableExtension}); err != nil {
		return err
	}
	return s.repo.SaveEnableExtension(ctx, true)
}

// DisableExtension broadcasts the disable signal and persists the flag.
func (s *ScoutService) DisableExtension(ctx context.Context) error {
	if !s.guards.TryAcquire(scheduler.OpDisableExtension) {
		return fmt.Errorf("%w: disable", scouterrors.ErrAlreadyInProgress)
	}
	defer s.guards.Release(scheduler.OpDisableExtension)

	if err := s.caster.Broadcast(models.BroadcastMessage{Action: scheduler.ActionDisableExtension}); err != nil {
		return err
	}
	return s.repo.SaveEnableExtension(ctx, false)
}

// FilterSettings bundles the four threshold settings for replies and
// broadcasts.
func (s *ScoutService) FilterSettings(ctx context.Context) (models.FilterSettings, error) {
	ratioEnabled, err := s.repo.HideBelowCoinRatio(ctx)
	if err != nil {
		return models.FilterSettings{}, err
	}
	ratio, err := s.repo.CoinRatio(ctx)
	if err != nil {
		return models.FilterSettings{}, err
	}
	supplyEnabled, err := s.repo.HideBelowSupply(ctx)
	if err != nil {
		return models.FilterSettings{}, err
	}
	supply, err := s.repo.Supply(ctx)
	if err != nil {
		return models.FilterSettings{}, err
	}
	return models.FilterSettings{
		CoinRatioEnabled:   ratioEnabled,
		CoinRatioThreshold: ratio,
		SupplyEnabled:      supplyEnabled,
		SupplyThreshold:    supply,
	}, nil
}

func (s *ScoutService) SaveCoinRatio(ctx context.Context, ratio float64) error {
	return s.repo.SaveCoinRatio(ctx, ratio)
}

func (s *ScoutService) CoinRatio(ctx context.Context) (float64, error) {
	return s.repo.CoinRatio(ctx)
}

func (s *ScoutService) SaveHideBelowCoinRatio(ctx context.Context, state bool) error {
	return s.repo.SaveHideBelowCoinRatio(ctx, state)
}

func (s *ScoutService) HideBelowCoinRatio(ctx context.Context) (bool, error) {
	return s.repo.HideBelowCoinRatio(ctx)
}

func (s *ScoutService) SaveSupply(ctx context.Context, supply float64) error {
	return s.repo.SaveSupply(ctx, supply)
}

func (s *ScoutService) Supply(ctx context.Context) (float64, error) {
	return s.repo.Supply(ctx)
}

func (s *ScoutService) SaveHideBelowSupply(ctx context.Context, state bool) error {
	return s.repo.SaveHideBelowSupply(ctx, state)
}

func (s *ScoutService) HideBelowSupply(ctx context.Context) (bool, error) {
	return s.repo.HideBelowSupply(ctx)
}

func (s *ScoutService) SaveEnableExtension(ctx context.Context, state bool) error {
	return s.repo.SaveEnableExtension(ctx, state)
}

func (s *ScoutService) EnableExtensionState(ctx context.Context) (bool, error) {
	return s.repo.EnableExtension(ctx)
}

// PendingBroadcast drains the parked broadcast message, if any.
func (s *ScoutService) PendingBroadcast() *models.BroadcastMessage {
	return s.caster.TakePending()
}

// ActivateLicense activates a key bound to the signed-in Steam profile
// and refreshes the cached auth status on success.
func (s *ScoutService) ActivateLicense(ctx context.Context, licenseKey string) (backend.OpResult, error) {
	profile, err := s.repo.SteamProfile(ctx)
	if err != nil {
		return backend.OpResult{}, err
	}
	if profile == nil {
		return backend.OpResult{}, scouterrors.ErrNoSteamProfile
	}

	result, err := s.repo.ActivateLicense(ctx, licenseKey)
	if err != nil {
		return backend.OpResult{}, err
	}
	if result.Success {
		s.repo.RefreshAuthStatus(ctx)
	}
	return result, nil
}

func (s *ScoutService) SteamProfile(ctx context.Context) (*models.SteamProfile, error) {
	return s.repo.SteamProfile(ctx)
}

func (s *ScoutService) ClearSteamProfile(ctx context.Context) error {
	return s.repo.ClearSteamProfile(ctx)
}

func (s *ScoutService) SetSteamLogoutIntent(ctx context.Context, value bool) error {
	return s.repo.SetSteamLogoutIntent(ctx, value)
}

func (s *ScoutService) SteamLogoutIntent(ctx context.Context) (bool, error) {
	return s.repo.SteamLogoutIntent(ctx)
}

func (s *ScoutService) ClearSteamLogoutIntent(ctx context.Context) error {
	return s.repo.ClearSteamLogoutIntent(ctx)
}

// SteamSignIn registers the Steam identity and refreshes auth on
// success.
func (s *ScoutService) SteamSignIn(ctx context.Context, profile models.SteamProfile) (backend.OpResult, error) {
	result, err := s.repo.SteamSignIn(ctx, profile)
	if err != nil {
		return backend.OpResult{}, err
	}
	if result.Success {
		s.repo.RefreshAuthStatus(ctx)
	}
	return result, nil
}

// SteamSignOut signs out with the backend and drops the cached auth
// status.
func (s *ScoutService) SteamSignOut(ctx context.Context) (backend.OpResult, error) {
	result, err := s.repo.SteamSignOut(ctx)
	if err != nil {
		return backend.OpResult{}, err
	}
	if clearErr := s.repo.ClearAuthStatus(ctx); clearErr != nil {
		utils.Warn("failed to clear cached auth status", map[string]any{"error": clearErr.Error()})
	}
	return result, nil
}
