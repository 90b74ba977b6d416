// Package repository owns the cached state of the service: the price
// catalog, the daily currency-rate table, persisted settings, and the
// cached auth status. All mutations happen inside the heavy scheduler
// lane; readers only ever see wholesale-replaced snapshots.
package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"skin-scout/internal/backend"
	"skin-scout/internal/models"
	"skin-scout/internal/pricecache"
	"skin-scout/internal/scouterrors"
	"skin-scout/internal/storage"
	"skin-scout/utils"
)

// Storage keys. These match what earlier releases wrote, so upgrades
// keep their persisted state.
const (
	keyMarketplacePrices = "marketplacePrices"
	keyCurrencyRateData  = "currencyRateData"
	keyCoinRatio         = "coinRatio"
	keyHideBelowRatio    = "hideItemsBelowCoinRatio"
	keySupply            = "supply"
	keyHideBelowSupply   = "hideItemsBelowSupply"
	keyEnableExtension   = "enableExtension"
	keyInstanceID        = "instanceId"
	keySteamProfile      = "steamProfile"
	keySteamLogoutIntent = "steamLogoutIntent"
	keyAuthStatus        = "authStatus"
)

// Catalog freshness TTL by plan. The backend enforces the same windows
// on its side, so a shorter local TTL would only produce no-op fetches.
const (
	freePlanTTL = 24 * time.Hour
	proPlanTTL  = 1 * time.Hour
)

// Repository is the storage/cache contract the service layer consumes.
type Repository interface {
	UpdateMarketplacePrices(ctx context.Context) error
	LoadPricesCache(ctx context.Context) error
	LookupItemQuote(key string) (pricecache.Quote, bool)
	PricesLoaded() bool
	LastPricesUpdate() string
	ArePricesExpired(ctx context.Context) (bool, error)

	UpdateCurrencyRate(ctx context.Context) error
	CurrencyRateTable(ctx context.Context) *models.RateTable

	SaveCoinRatio(ctx context.Context, ratio float64) error
	CoinRatio(ctx context.Context) (float64, error)
	SaveHideBelowCoinRatio(ctx context.Context, state bool) error
	HideBelowCoinRatio(ctx context.Context) (bool, error)
	SaveSupply(ctx context.Context, supply float64) error
	Supply(ctx context.Context) (float64, error)
	SaveHideBelowSupply(ctx context.Context, state bool) error
	HideBelowSupply(ctx context.Context) (bool, error)
	SaveEnableExtension(ctx context.Context, state bool) error
	EnableExtension(ctx context.Context) (bool, error)

	InitializeInstanceID(ctx context.Context) (string, error)
	InstanceID(ctx context.Context) (string, error)

	CachedAuthStatus(ctx context.Context) models.AuthStatus
	RefreshAuthStatus(ctx context.Context) models.AuthStatus
	ClearAuthStatus(ctx context.Context) error

	SaveSteamProfile(ctx context.Context, profile models.SteamProfile) error
	SteamProfile(ctx context.Context) (*models.SteamProfile, error)
	ClearSteamProfile(ctx context.Context) error
	SetSteamLogoutIntent(ctx context.Context, value bool) error
	SteamLogoutIntent(ctx context.Context) (bool, error)
	ClearSteamLogoutIntent(ctx context.Context) error

	ActivateLicense(ctx context.Context, licenseKey string) (backend.OpResult, error)
	SteamSignIn(ctx context.Context, profile models.SteamProfile) (backend.OpResult, error)
	SteamSignOut(ctx context.Context) (backend.OpResult, error)
}

// DataRepo is the production Repository over a key-value store, the
// in-memory price cache, and the two backend clients.
type DataRepo struct {
	store        storage.Store
	cache        *pricecache.Cache
	pricing      backend.PricingBackend
	currency     backend.CurrencyBackend
	baseCurrency string

	rateMu sync.RWMutex
	rates  *models.RateTable

	now func() time.Time
}

func NewDataRepo(store storage.Store, cache *pricecache.Cache, pricing backend.PricingBackend, currency backend.CurrencyBackend, baseCurrency string) *DataRepo {
	return &DataRepo{
		store:        store,
		cache:        cache,
		pricing:      pricing,
		currency:     currency,
		baseCurrency: baseCurrency,
		now:          time.Now,
	}
}

// UpdateMarketplacePrices fetches the full catalog wholesale, stamps it
// with the local fetch time, and persists it. Call LoadPricesCache
// afterwards to make it visible to lookups.
func (r *DataRepo) UpdateMarketplacePrices(ctx context.Context) error {
	instanceID, err := r.InstanceID(ctx)
	if err != nil {
		return err
	}
	steamID := r.steamProfileID(ctx)

	catalog, err := r.pricing.GetCatalog(instanceID, steamID)
	if err != nil {
		return fmt.Errorf("repository: failed to fetch catalog: %w", err)
	}
	catalog.TimestampLocal = r.now().UnixMilli()

	if err := r.store.Set(ctx, keyMarketplacePrices, catalog); err != nil {
		return fmt.Errorf("repository: failed to persist catalog: %w", err)
	}
	return nil
}

// LoadPricesCache loads the persisted catalog into the in-memory cache,
// replacing any prior one. Missing persisted data is not an error; the
// cache simply stays unloaded.
func (r *DataRepo) LoadPricesCache(ctx context.Context) error {
	var catalog models.Catalog
	found, err := r.store.Get(ctx, keyMarketplacePrices, &catalog)
	if err != nil {
		return fmt.Errorf("repository: failed to load catalog: %w", err)
	}
	if !found {
		return nil
	}
	r.cache.Load(&catalog)
	return nil
}

func (r *DataRepo) LookupItemQuote(key string) (pricecache.Quote, bool) {
	return r.cache.Lookup(key)
}

func (r *DataRepo) PricesLoaded() bool {
	return r.cache.Loaded()
}

func (r *DataRepo) LastPricesUpdate() string {
	return r.cache.LastLoadTimestamp()
}

// ArePricesExpired applies the plan-dependent freshness policy: a
// catalog that was never loaded is always expired; otherwise Free users
// get a 24-hour window and Pro users a 1-hour window.
func (r *DataRepo) ArePricesExpired(ctx context.Context) (bool, error) {
	lastLoad, ok := r.cache.LastLoadTime()
	if !ok {
		utils.Info("no last catalog load time, prices considered expired", nil)
		return true, nil
	}

	ttl := freePlanTTL
	if r.CachedAuthStatus(ctx).Plan == models.PlanPro {
		ttl = proPlanTTL
	}
	return r.now().Sub(lastLoad) > ttl, nil
}

// UpdateCurrencyRate refreshes the daily rate table. The table is
// cached per UTC calendar day; a table fetched today is reused as-is.
func (r *DataRepo) UpdateCurrencyRate(ctx context.Context) error {
	today := r.now().UTC().Format("2006-01-02")
	if cached := r.CurrencyRateTable(ctx); cached != nil && cached.Date == today {
		utils.Info("using cached currency rate data", map[string]any{"date": cached.Date})
		return nil
	}

	table, err := r.currency.GetRates(r.baseCurrency)
	if err != nil {
		return fmt.Errorf("repository: failed to fetch currency rates: %w", err)
	}
	if err := r.store.Set(ctx, keyCurrencyRateData, table); err != nil {
		return fmt.Errorf("repository: failed to persist currency rates: %w", err)
	}

	r.rateMu.Lock()
	r.rates = table
	r.rateMu.Unlock()
	return nil
}

// CurrencyRateTable returns the cached table or nil when none exists
// yet. Callers map nil to the no-currency-rate condition.
func (r *DataRepo) CurrencyRateTable(ctx context.Context) *models.RateTable {
	r.rateMu.RLock()
	cached := r.rates
	r.rateMu.RUnlock()
	if cached != nil {
		return cached
	}

	var table models.RateTable
	found, err := r.store.Get(ctx, keyCurrencyRateData, &table)
	if err != nil || !found {
		return nil
	}

	r.rateMu.Lock()
	r.rates = &table
	r.rateMu.Unlock()
	return &table
}

func (r *DataRepo) SaveCoinRatio(ctx context.Context, ratio float64) error {
	return r.store.Set(ctx, keyCoinRatio, ratio)
}

func (r *DataRepo) CoinRatio(ctx context.Context) (float64, error) {
	var ratio float64
	_, err := r.store.Get(ctx, keyCoinRatio, &ratio)
	return ratio, err
}

func (r *DataRepo) SaveHideBelowCoinRatio(ctx context.Context, state bool) error {
	return r.store.Set(ctx, keyHideBelowRatio, state)
}

func (r *DataRepo) HideBelowCoinRatio(ctx context.Context) (bool, error) {
	var state bool
	_, err := r.store.Get(ctx, keyHideBelowRatio, &state)
	return state, err
}

func (r *DataRepo) SaveSupply(ctx context.Context, supply float64) error {
	return r.store.Set(ctx, keySupply, supply)
}

func (r *DataRepo) Supply(ctx context.Context) (float64, error) {
	var supply float64
	_, err := r.store.Get(ctx, keySupply, &supply)
	return supply, err
}

func (r *DataRepo) SaveHideBelowSupply(ctx context.Context, state bool) error {
	return r.store.Set(ctx, keyHideBelowSupply, state)
}

func (r *DataRepo) HideBelowSupply(ctx context.Context) (bool, error) {
	var state bool
	_, err := r.store.Get(ctx, keyHideBelowSupply, &state)
	return state, err
}

func (r *DataRepo) SaveEnableExtension(ctx context.Context, state bool) error {
	return r.store.Set(ctx, keyEnableExtension, state)
}

func (r *DataRepo) EnableExtension(ctx context.Context) (bool, error) {
	var state bool
	_, err := r.store.Get(ctx, keyEnableExtension, &state)
	return state, err
}

// InitializeInstanceID mints and persists an installation ID on first
// run and keeps the existing one afterwards.
func (r *DataRepo) InitializeInstanceID(ctx context.Context) (string, error) {
	id, err := r.InstanceID(ctx)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = utils.GenerateInstanceID()
	if err := r.store.Set(ctx, keyInstanceID, id); err != nil {
		return "", fmt.Errorf("repository: failed to persist instance id: %w", err)
	}
	utils.Info("generated new instance id", map[string]any{"instance_id": id})
	return id, nil
}

func (r *DataRepo) InstanceID(ctx context.Context) (string, error) {
	var id string
	_, err := r.store.Get(ctx, keyInstanceID, &id)
	return id, err
}

// CachedAuthStatus is a read-through with an unauthorized Free default
// when nothing is cached or the store misbehaves.
func (r *DataRepo) CachedAuthStatus(ctx context.Context) models.AuthStatus {
	var status models.AuthStatus
	found, err := r.store.Get(ctx, keyAuthStatus, &status)
	if err != nil || !found {
		return models.AuthStatus{Authorized: false, Plan: models.PlanFree}
	}
	if status.Plan == "" {
		status.Plan = models.PlanFree
	}
	return status
}

// RefreshAuthStatus asks the backend and caches the answer. A backend
// failure degrades to the unauthorized Free default, which is cached
// too so the rest of the service sees one consistent state.
func (r *DataRepo) RefreshAuthStatus(ctx context.Context) models.AuthStatus {
	instanceID, _ := r.InstanceID(ctx)
	steamID := r.steamProfileID(ctx)

	status, err := r.pricing.CheckAuth(instanceID, steamID)
	if err != nil {
		utils.Warn("auth status refresh failed", map[string]any{"error": err.Error()})
		status = models.AuthStatus{Authorized: false, Plan: models.PlanFree}
	}
	if saveErr := r.store.Set(ctx, keyAuthStatus, status); saveErr != nil {
		utils.Warn("failed to cache auth status", map[string]any{"error": saveErr.Error()})
	}
	return status
}

func (r *DataRepo) ClearAuthStatus(ctx context.Context) error {
	return r.store.Remove(ctx, keyAuthStatus)
}

func (r *DataRepo) SaveSteamProfile(ctx context.Context, profile models.SteamProfile) error {
	return r.store.Set(ctx, keySteamProfile, profile)
}

// SteamProfile returns the cached profile or nil; a record without a
// steam id counts as absent.
func (r *DataRepo) SteamProfile(ctx context.Context) (*models.SteamProfile, error) {
	var profile models.SteamProfile
	found, err := r.store.Get(ctx, keySteamProfile, &profile)
	if err != nil {
		return nil, err
	}
	if !found || profile.SteamID == "" {
		return nil, nil
	}
	return &profile, nil
}

func (r *DataRepo) ClearSteamProfile(ctx context.Context) error {
	return r.store.Remove(ctx, keySteamProfile)
}

func (r *DataRepo) SetSteamLogoutIntent(ctx context.Context, value bool) error {
	return r.store.Set(ctx, keySteamLogoutIntent, value)
}

func (r *DataRepo) SteamLogoutIntent(ctx context.Context) (bool, error) {
	var intent bool
	_, err := r.store.Get(ctx, keySteamLogoutIntent, &intent)
	return intent, err
}

func (r *DataRepo) ClearSteamLogoutIntent(ctx context.Context) error {
	return r.store.Set(ctx, keySteamLogoutIntent, false)
}

// ActivateLicense requires a Steam identity; the backend binds licenses
// to Steam profiles, not installations.
func (r *DataRepo) ActivateLicense(ctx context.Context, licenseKey string) (backend.OpResult, error) {
	if licenseKey == "" {
		return backend.OpResult{}, scouterrors.ErrLicenseKeyMissing
	}
	steamID := r.steamProfileID(ctx)
	if steamID == "" {
		return backend.OpResult{}, scouterrors.ErrNoSteamProfile
	}
	return r.pricing.ActivateLicense(licenseKey, steamID)
}

// SteamSignIn registers the profile with the backend and caches it
// locally on success.
func (r *DataRepo) SteamSignIn(ctx context.Context, profile models.SteamProfile) (backend.OpResult, error) {
	if profile.SteamID == "" {
		return backend.OpResult{}, scouterrors.ErrNoSteamProfile
	}
	instanceID, err := r.InstanceID(ctx)
	if err != nil {
		return backend.OpResult{}, err
	}

	result, err := r.pricing.SteamSignIn(profile, instanceID)
	if err != nil {
		return backend.OpResult{}, err
	}
	if result.Success {
		if saveErr := r.SaveSteamProfile(ctx, profile); saveErr != nil {
			utils.Warn("failed to cache steam profile", map[string]any{"error": saveErr.Error()})
		}
	}
	return result, nil
}

// SteamSignOut notifies the backend and clears the local profile even
// when the backend call fails, so a broken session can always be reset.
func (r *DataRepo) SteamSignOut(ctx context.Context) (backend.OpResult, error) {
	steamID := r.steamProfileID(ctx)
	if steamID == "" {
		return backend.OpResult{Success: true, Message: "already signed out"}, nil
	}
	instanceID, _ := r.InstanceID(ctx)

	result, err := r.pricing.SteamSignOut(steamID, instanceID)
	if clearErr := r.ClearSteamProfile(ctx); clearErr != nil {
		utils.Warn("failed to clear steam profile", map[string]any{"error": clearErr.Error()})
	}
	if err != nil {
		return backend.OpResult{}, err
	}
	return result, nil
}

func (r *DataRepo) steamProfileID(ctx context.Context) string {
	profile, err := r.SteamProfile(ctx)
	if err != nil || profile == nil {
		return ""
	}
	return profile.SteamID
}
