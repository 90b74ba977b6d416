package scout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"skin-scout/internal/backend"
	"skin-scout/internal/broadcast"
	"skin-scout/internal/models"
	"skin-scout/internal/pricecache"
	"skin-scout/internal/repository"
	"skin-scout/internal/scheduler"
	"skin-scout/internal/scouterrors"
	"skin-scout/internal/storage"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// stubPricing is a canned, concurrency-safe PricingBackend. The service
// spawns background refreshes, so all state sits behind a mutex.
type stubPricing struct {
	mu         sync.Mutex
	catalog    *models.Catalog
	catalogErr error
	auth       models.AuthStatus
	opResult   backend.OpResult
	opErr      error
}

func (s *stubPricing) GetCatalog(instanceID, steamProfileID string) (*models.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog, s.catalogErr
}

func (s *stubPricing) CheckAuth(instanceID, steamProfileID string) (models.AuthStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth, nil
}

func (s *stubPricing) ActivateLicense(licenseKey, steamProfileID string) (backend.OpResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opResult, s.opErr
}

func (s *stubPricing) SteamSignIn(profile models.SteamProfile, instanceID string) (backend.OpResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opResult, s.opErr
}

func (s *stubPricing) SteamSignOut(steamProfileID, instanceID string) (backend.OpResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opResult, s.opErr
}

type stubCurrency struct {
	mu    sync.Mutex
	table *models.RateTable
	err   error
}

func (s *stubCurrency) GetRates(base string) (*models.RateTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table, s.err
}

func testCatalog() *models.Catalog {
	return &models.Catalog{
		Items: map[string]models.PriceEntry{
			"AK-47 | Redline (Field-Tested)": {Price: 4250, Count: 12},
		},
	}
}

func testRates() *models.RateTable {
	return &models.RateTable{
		Date:  time.Now().UTC().Format("2006-01-02"),
		Base:  "eur",
		Rates: map[string]float64{"eur": 1, "usd": 1.08},
	}
}

type testFixture struct {
	service *ScoutService
	repo    *repository.DataRepo
	guards  *scheduler.GuardRegistry
	caster  *broadcast.PendingBuffer
	pricing *stubPricing
	rates   *stubCurrency
}

func newFixture(pricing *stubPricing, rates *stubCurrency) *testFixture {
	repo := repository.NewDataRepo(storage.NewMemoryStore(), pricecache.New(), pricing, rates, "eur")
	guards := scheduler.NewGuardRegistry()
	caster := broadcast.NewPendingBuffer()
	return &testFixture{
		service: NewScoutService(repo, guards, caster),
		repo:    repo,
		guards:  guards,
		caster:  caster,
		pricing: pricing,
		rates:   rates,
	}
}

// loadPrices pushes the stubbed catalog and rate table through the real
// repository so lookups behave as they would after a refresh.
func (f *testFixture) loadPrices(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.repo.UpdateMarketplacePrices(ctx))
	require.NoError(t, f.repo.LoadPricesCache(ctx))
	require.NoError(t, f.repo.UpdateCurrencyRate(ctx))
}

func redlinePayload() models.ItemPayload {
	return models.ItemPayload{
		Quality:       strPtr("Field-Tested"),
		Float:         strPtr("0.23"),
		ItemType:      strPtr("AK-47"),
		ItemName:      strPtr("Redline"),
		CurrencyValue: floatPtr(30),
		Site:          string(models.SiteCSGORoll),
	}
}

// Tests the full price-merge pipeline
func TestScoutService_UpdateItemPrice(t *testing.T) {
	t.Parallel()

	fix := newFixture(&stubPricing{catalog: testCatalog()}, &stubCurrency{table: testRates()})
	fix.loadPrices(t)

	result, err := fix.service.UpdateItemPrice(context.Background(), redlinePayload())
	require.NoError(t, err)

	// 4250 cents -> 42.50 USD -> EUR at 1.08, rounded to 2 decimals.
	require.NotNil(t, result.Item.CurrencyValueMarketplace)
	require.Equal(t, 39.35, *result.Item.CurrencyValueMarketplace)
	require.Equal(t, 12, result.Item.Count)
	require.Equal(t, "31.17", result.Item.PriceDifference)

	// Free plan: no filter thresholds attached.
	require.Equal(t, models.FilterSettings{}, result.Filters)
}

// Pro users get their filter thresholds alongside the merged item.
func TestScoutService_UpdateItemPrice_ProFilters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fix := newFixture(&stubPricing{
		catalog: testCatalog(),
		auth:    models.AuthStatus{Authorized: true, Plan: models.PlanPro},
	}, &stubCurrency{table: testRates()})
	fix.loadPrices(t)

	fix.repo.RefreshAuthStatus(ctx)
	require.NoError(t, fix.repo.SaveHideBelowCoinRatio(ctx, true))
	require.NoError(t, fix.repo.SaveCoinRatio(ctx, 0.8))
	require.NoError(t, fix.repo.SaveSupply(ctx, 5))

	result, err := fix.service.UpdateItemPrice(ctx, redlinePayload())
	require.NoError(t, err)
	require.Equal(t, models.FilterSettings{
		CoinRatioEnabled:   true,
		CoinRatioThreshold: 0.8,
		SupplyThreshold:    5,
	}, result.Filters)
}

// Tests the error paths of UpdateItemPrice
func TestScoutService_UpdateItemPrice_Errors(t *testing.T) {
	// Table-driven test cases
	tests := []struct {
		name          string
		payload       models.ItemPayload
		setup         func(t *testing.T, fix *testFixture)
		expectedError error
	}{
		{
			name:          "completely_null_item",
			payload:       models.ItemPayload{Site: string(models.SiteCSGORoll)},
			setup:         func(t *testing.T, fix *testFixture) { fix.loadPrices(t) },
			expectedError: scouterrors.ErrMalformedItem,
		},
		{
			name:          "prices_never_loaded",
			payload:       redlinePayload(),
			setup:         func(t *testing.T, fix *testFixture) {},
			expectedError: scouterrors.ErrPricesExpired,
		},
		{
			name:    "refresh_in_flight",
			payload: redlinePayload(),
			setup: func(t *testing.T, fix *testFixture) {
				fix.loadPrices(t)
				require.True(t, fix.guards.TryAcquire(scheduler.OpUpdatePrices))
			},
			expectedError: scouterrors.ErrPricesExpired,
		},
		{
			name: "unknown_catalog_key",
			payload: models.ItemPayload{
				Quality:       strPtr("Factory New"),
				ItemType:      strPtr("AWP"),
				ItemName:      strPtr("Dragon Lore"),
				CurrencyValue: floatPtr(5000),
				Site:          string(models.SiteCSGORoll),
			},
			setup:         func(t *testing.T, fix *testFixture) { fix.loadPrices(t) },
			expectedError: scouterrors.ErrItemNotFound,
		},
		{
			name:          "unresolvable_site",
			payload:       models.ItemPayload{ItemName: strPtr("Redline"), Site: string(models.SiteCSFloat)},
			setup:         func(t *testing.T, fix *testFixture) { fix.loadPrices(t) },
			expectedError: scouterrors.ErrUnresolvedSite,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // Run tests concurrently

			fix := newFixture(&stubPricing{catalog: testCatalog()}, &stubCurrency{table: testRates()})
			tc.setup(t, fix)

			_, err := fix.service.UpdateItemPrice(context.Background(), tc.payload)

			require.Error(t, err)
			require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
		})
	}
}

// Tests RefreshPricesIfExpired end to end
func TestScoutService_RefreshPricesIfExpired(t *testing.T) {
	t.Parallel()

	fix := newFixture(&stubPricing{
		catalog: testCatalog(),
		auth:    models.AuthStatus{Authorized: true, Plan: models.PlanFree},
	}, &stubCurrency{table: testRates()})

	require.NoError(t, fix.service.RefreshPricesIfExpired(context.Background()))

	// Catalog is loaded and a pricesUpdated broadcast is parked.
	quote, ok := fix.repo.LookupItemQuote("AK-47 | Redline (Field-Tested)")
	require.True(t, ok)
	require.Equal(t, 42.5, quote.Price)

	msg := fix.service.PendingBroadcast()
	require.NotNil(t, msg)
	require.Equal(t, "pricesUpdated", msg.Action)
	require.NotNil(t, msg.Success)
	require.True(t, *msg.Success)

	// The buffer is drained after one poll.
	require.Nil(t, fix.service.PendingBroadcast())
}

// An unauthorized user never triggers a catalog fetch.
func TestScoutService_RefreshPricesIfExpired_Unauthorized(t *testing.T) {
	t.Parallel()

	fix := newFixture(&stubPricing{catalog: testCatalog()}, &stubCurrency{table: testRates()})

	require.NoError(t, fix.service.RefreshPricesIfExpired(context.Background()))
	require.False(t, fix.repo.PricesLoaded())
	require.Nil(t, fix.service.PendingBroadcast())
}

// A refresh already in flight makes the call a silent no-op.
func TestScoutService_RefreshPricesIfExpired_AlreadyRunning(t *testing.T) {
	t.Parallel()

	fix := newFixture(&stubPricing{
		catalog: testCatalog(),
		auth:    models.AuthStatus{Authorized: true},
	}, &stubCurrency{table: testRates()})

	require.True(t, fix.guards.TryAcquire(scheduler.OpUpdatePrices))
	require.True(t, fix.service.IsUpdatingPrices())

	require.NoError(t, fix.service.RefreshPricesIfExpired(context.Background()))
	require.False(t, fix.repo.PricesLoaded())

	fix.guards.Release(scheduler.OpUpdatePrices)
	require.False(t, fix.service.IsUpdatingPrices())
}

// The guard is released even when the refresh fails partway.
func TestScoutService_RefreshPricesIfExpired_ReleasesGuardOnFailure(t *testing.T) {
	t.Parallel()

	fix := newFixture(&stubPricing{
		catalogErr: errors.New("backend down"),
		auth:       models.AuthStatus{Authorized: true},
	}, &stubCurrency{table: testRates()})

	require.Error(t, fix.service.RefreshPricesIfExpired(context.Background()))
	require.False(t, fix.service.IsUpdatingPrices())
}

// Tests UpdateVisibilityByFilters
func TestScoutService_UpdateVisibilityByFilters(t *testing.T) {
	t.Parallel()

	fix := newFixture(&stubPricing{}, &stubCurrency{})
	filters := models.FilterSettings{CoinRatioEnabled: true, CoinRatioThreshold: 0.8}

	require.NoError(t, fix.service.UpdateVisibilityByFilters(context.Background(), filters))

	msg := fix.service.PendingBroadcast()
	require.NotNil(t, msg)
	require.Equal(t, scheduler.ActionUpdateVisibility, msg.Action)
	require.NotNil(t, msg.Filters)
	require.Equal(t, filters, *msg.Filters)

	// A concurrent duplicate is rejected, not queued.
	require.True(t, fix.guards.TryAcquire(scheduler.OpUpdateVisibility))
	err := fix.service.UpdateVisibilityByFilters(context.Background(), filters)
	require.True(t, errors.Is(err, scouterrors.ErrAlreadyInProgress))
	fix.guards.Release(scheduler.OpUpdateVisibility)
}

// Tests EnableExtension and DisableExtension
func TestScoutService_EnableDisableExtension(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fix := newFixture(&stubPricing{}, &stubCurrency{})

	require.NoError(t, fix.service.EnableExtension(ctx))
	msg := fix.service.PendingBroadcast()
	require.NotNil(t, msg)
	require.Equal(t, scheduler.ActionEnableExtension, msg.Action)

	enabled, err := fix.service.EnableExtensionState(ctx)
	require.NoError(t, err)
	require.True(t, enabled)

	require.NoError(t, fix.service.DisableExtension(ctx))
	msg = fix.service.PendingBroadcast()
	require.NotNil(t, msg)
	require.Equal(t, scheduler.ActionDisableExtension, msg.Action)

	enabled, err = fix.service.EnableExtensionState(ctx)
	require.NoError(t, err)
	require.False(t, enabled)
}

// Tests ActivateLicense
func TestScoutService_ActivateLicense(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pricing := &stubPricing{
		opResult: backend.OpResult{Success: true, Message: "activated"},
		auth:     models.AuthStatus{Authorized: true, Plan: models.PlanPro},
	}
	fix := newFixture(pricing, &stubCurrency{})

	// Without a Steam profile the activation is refused locally.
	_, err := fix.service.ActivateLicense(ctx, "KEY-123")
	require.True(t, errors.Is(err, scouterrors.ErrNoSteamProfile))

	require.NoError(t, fix.repo.SaveSteamProfile(ctx, models.SteamProfile{SteamID: "765611"}))

	result, err := fix.service.ActivateLicense(ctx, "KEY-123")
	require.NoError(t, err)
	require.True(t, result.Success)

	// Successful activation refreshed the cached auth status.
	status, err := fix.service.AuthCheck(ctx)
	require.NoError(t, err)
	require.True(t, status.Authorized)
	require.Equal(t, models.PlanPro, status.Plan)
}

// Tests SteamSignIn and SteamSignOut through the service
func TestScoutService_SteamSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pricing := &stubPricing{
		opResult: backend.OpResult{Success: true},
		auth:     models.AuthStatus{Authorized: true, Plan: models.PlanFree},
	}
	fix := newFixture(pricing, &stubCurrency{})

	profile := models.SteamProfile{SteamID: "765611", Username: "tester"}
	result, err := fix.service.SteamSignIn(ctx, profile)
	require.NoError(t, err)
	require.True(t, result.Success)

	cached, err := fix.service.SteamProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	require.Equal(t, profile, *cached)

	status, err := fix.service.AuthCheck(ctx)
	require.NoError(t, err)
	require.True(t, status.Authorized)

	// Sign-out clears both the profile and the cached auth status.
	_, err = fix.service.SteamSignOut(ctx)
	require.NoError(t, err)

	cached, err = fix.service.SteamProfile(ctx)
	require.NoError(t, err)
	require.Nil(t, cached)

	status, err = fix.service.AuthCheck(ctx)
	require.NoError(t, err)
	require.False(t, status.Authorized)
}

// Tests LastPricesUpdate formatting passthrough
func TestScoutService_LastPricesUpdate(t *testing.T) {
	t.Parallel()

	fix := newFixture(&stubPricing{catalog: testCatalog()}, &stubCurrency{table: testRates()})
	require.Equal(t, "", fix.service.LastPricesUpdate())

	fix.loadPrices(t)
	require.NotEmpty(t, fix.service.LastPricesUpdate())
}
