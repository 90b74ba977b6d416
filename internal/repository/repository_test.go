package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"skin-scout/internal/backend"
	"skin-scout/internal/models"
	"skin-scout/internal/pricecache"
	"skin-scout/internal/scouterrors"
	"skin-scout/internal/storage"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// stubPricing is a canned PricingBackend for repository tests.
type stubPricing struct {
	catalog       *models.Catalog
	catalogErr    error
	auth          models.AuthStatus
	authErr       error
	authCalls     int
	opResult      backend.OpResult
	opErr         error
	signInProfile models.SteamProfile
}

func (s *stubPricing) GetCatalog(instanceID, steamProfileID string) (*models.Catalog, error) {
	if s.catalogErr != nil {
		return nil, s.catalogErr
	}
	return s.catalog, nil
}

func (s *stubPricing) CheckAuth(instanceID, steamProfileID string) (models.AuthStatus, error) {
	s.authCalls++
	return s.auth, s.authErr
}

func (s *stubPricing) ActivateLicense(licenseKey, steamProfileID string) (backend.OpResult, error) {
	return s.opResult, s.opErr
}

func (s *stubPricing) SteamSignIn(profile models.SteamProfile, instanceID string) (backend.OpResult, error) {
	s.signInProfile = profile
	return s.opResult, s.opErr
}

func (s *stubPricing) SteamSignOut(steamProfileID, instanceID string) (backend.OpResult, error) {
	return s.opResult, s.opErr
}

// stubCurrency is a canned CurrencyBackend for repository tests.
type stubCurrency struct {
	table *models.RateTable
	err   error
	calls int
}

func (s *stubCurrency) GetRates(base string) (*models.RateTable, error) {
	s.calls++
	return s.table, s.err
}

func newTestRepo(pricing *stubPricing, rates *stubCurrency) *DataRepo {
	return NewDataRepo(storage.NewMemoryStore(), pricecache.New(), pricing, rates, "eur")
}

// Tests InitializeInstanceID
func TestDataRepo_InitializeInstanceID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepo(&stubPricing{}, &stubCurrency{})

	id, err := repo.InitializeInstanceID(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	_, parseErr := uuid.Parse(id)
	require.NoError(t, parseErr, "instance id should be a valid UUID")

	// A second initialization keeps the existing id.
	again, err := repo.InitializeInstanceID(ctx)
	require.NoError(t, err)
	require.Equal(t, id, again)
}

// Tests UpdateMarketplacePrices and LoadPricesCache together
func TestDataRepo_UpdateAndLoadPrices(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pricing := &stubPricing{
		catalog: &models.Catalog{
			Items: map[string]models.PriceEntry{
				"AK-47 | Redline (Field-Tested)": {Price: 4250, Count: 12},
			},
		},
	}
	repo := newTestRepo(pricing, &stubCurrency{})
	fetchedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fetchedAt }

	require.NoError(t, repo.UpdateMarketplacePrices(ctx))

	// Not visible to lookups until the cache is reloaded.
	require.False(t, repo.PricesLoaded())

	require.NoError(t, repo.LoadPricesCache(ctx))
	require.True(t, repo.PricesLoaded())

	quote, ok := repo.LookupItemQuote("AK-47 | Redline (Field-Tested)")
	require.True(t, ok)
	require.Equal(t, 42.5, quote.Price)
	require.Equal(t, 12, quote.Count)

	loadTime, ok := repo.cache.LastLoadTime()
	require.True(t, ok)
	require.Equal(t, fetchedAt.UnixMilli(), loadTime.UnixMilli())
}

func TestDataRepo_UpdateMarketplacePrices_BackendError(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(&stubPricing{catalogErr: errors.New("backend down")}, &stubCurrency{})

	err := repo.UpdateMarketplacePrices(context.Background())
	require.Error(t, err)
	require.False(t, repo.PricesLoaded())
}

// Tests ArePricesExpired across plans
func TestDataRepo_ArePricesExpired(t *testing.T) {
	loadedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Table-driven test cases
	tests := []struct {
		name     string
		loaded   bool
		plan     string
		elapsed  time.Duration
		expected bool
	}{
		{
			name:     "never_loaded",
			loaded:   false,
			expected: true,
		},
		{
			name:     "free_plan_within_window",
			loaded:   true,
			plan:     models.PlanFree,
			elapsed:  23 * time.Hour,
			expected: false,
		},
		{
			name:     "free_plan_past_window",
			loaded:   true,
			plan:     models.PlanFree,
			elapsed:  25 * time.Hour,
			expected: true,
		},
		{
			name:     "pro_plan_within_window",
			loaded:   true,
			plan:     models.PlanPro,
			elapsed:  30 * time.Minute,
			expected: false,
		},
		{
			name:     "pro_plan_past_window",
			loaded:   true,
			plan:     models.PlanPro,
			elapsed:  2 * time.Hour,
			expected: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // Run tests concurrently

			ctx := context.Background()
			repo := newTestRepo(&stubPricing{}, &stubCurrency{})
			repo.now = func() time.Time { return loadedAt.Add(tc.elapsed) }

			if tc.loaded {
				repo.cache.Load(&models.Catalog{TimestampLocal: loadedAt.UnixMilli()})
				require.NoError(t, repo.store.Set(ctx, keyAuthStatus, models.AuthStatus{
					Authorized: true,
					Plan:       tc.plan,
				}))
			}

			expired, err := repo.ArePricesExpired(ctx)
			require.NoError(t, err)
			require.Equal(t, tc.expected, expired)
		})
	}
}

// Tests UpdateCurrencyRate's per-day caching
func TestDataRepo_UpdateCurrencyRate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rates := &stubCurrency{
		table: &models.RateTable{
			Date:  "2025-06-01",
			Base:  "eur",
			Rates: map[string]float64{"eur": 1, "usd": 1.08},
		},
	}
	repo := newTestRepo(&stubPricing{}, rates)
	repo.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }

	require.NoError(t, repo.UpdateCurrencyRate(ctx))
	require.Equal(t, 1, rates.calls)

	table := repo.CurrencyRateTable(ctx)
	require.NotNil(t, table)
	require.Equal(t, "2025-06-01", table.Date)

	// Same UTC day: the cached table is reused without a fetch.
	require.NoError(t, repo.UpdateCurrencyRate(ctx))
	require.Equal(t, 1, rates.calls)

	// Next day: a fresh table is fetched.
	repo.now = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }
	require.NoError(t, repo.UpdateCurrencyRate(ctx))
	require.Equal(t, 2, rates.calls)
}

func TestDataRepo_CurrencyRateTable_Absent(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(&stubPricing{}, &stubCurrency{})
	require.Nil(t, repo.CurrencyRateTable(context.Background()))
}

// Tests the auth status cache
func TestDataRepo_AuthStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pricing := &stubPricing{auth: models.AuthStatus{Authorized: true, Plan: models.PlanPro}}
	repo := newTestRepo(pricing, &stubCurrency{})

	// Nothing cached yet: unauthorized Free default.
	require.Equal(t, models.AuthStatus{Authorized: false, Plan: models.PlanFree}, repo.CachedAuthStatus(ctx))

	// Refresh asks the backend and caches the answer.
	status := repo.RefreshAuthStatus(ctx)
	require.Equal(t, models.AuthStatus{Authorized: true, Plan: models.PlanPro}, status)
	require.Equal(t, status, repo.CachedAuthStatus(ctx))

	// A backend failure degrades to the default, which is cached too.
	pricing.authErr = errors.New("backend down")
	status = repo.RefreshAuthStatus(ctx)
	require.Equal(t, models.AuthStatus{Authorized: false, Plan: models.PlanFree}, status)
	require.Equal(t, status, repo.CachedAuthStatus(ctx))
}

// A store failure on the auth status read degrades to the default.
func TestDataRepo_CachedAuthStatus_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storage.NewMockStore(ctrl)
	mockStore.EXPECT().Get(gomock.Any(), keyAuthStatus, gomock.Any()).Return(false, errors.New("disk error"))

	repo := NewDataRepo(mockStore, pricecache.New(), &stubPricing{}, &stubCurrency{}, "eur")

	status := repo.CachedAuthStatus(context.Background())
	require.Equal(t, models.AuthStatus{Authorized: false, Plan: models.PlanFree}, status)
}

// Tests ActivateLicense preconditions
func TestDataRepo_ActivateLicense(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pricing := &stubPricing{opResult: backend.OpResult{Success: true, Message: "activated"}}
	repo := newTestRepo(pricing, &stubCurrency{})

	_, err := repo.ActivateLicense(ctx, "")
	require.True(t, errors.Is(err, scouterrors.ErrLicenseKeyMissing))

	_, err = repo.ActivateLicense(ctx, "KEY-123")
	require.True(t, errors.Is(err, scouterrors.ErrNoSteamProfile))

	require.NoError(t, repo.SaveSteamProfile(ctx, models.SteamProfile{SteamID: "765611"}))
	result, err := repo.ActivateLicense(ctx, "KEY-123")
	require.NoError(t, err)
	require.True(t, result.Success)
}

// Tests SteamSignIn
func TestDataRepo_SteamSignIn(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pricing := &stubPricing{opResult: backend.OpResult{Success: true}}
	repo := newTestRepo(pricing, &stubCurrency{})

	_, err := repo.SteamSignIn(ctx, models.SteamProfile{})
	require.True(t, errors.Is(err, scouterrors.ErrNoSteamProfile))

	profile := models.SteamProfile{SteamID: "765611", Username: "tester"}
	result, err := repo.SteamSignIn(ctx, profile)
	require.NoError(t, err)
	require.True(t, result.Success)

	// Profile is cached locally after a successful sign-in.
	cached, err := repo.SteamProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	require.Equal(t, profile, *cached)
}

// Tests SteamSignOut
func TestDataRepo_SteamSignOut(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pricing := &stubPricing{opResult: backend.OpResult{Success: true}}
	repo := newTestRepo(pricing, &stubCurrency{})

	// Signing out without a profile is a successful no-op.
	result, err := repo.SteamSignOut(ctx)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, "already signed out", result.Message)

	// The local profile is cleared even when the backend call fails.
	require.NoError(t, repo.SaveSteamProfile(ctx, models.SteamProfile{SteamID: "765611"}))
	pricing.opErr = errors.New("backend down")

	_, err = repo.SteamSignOut(ctx)
	require.Error(t, err)

	cached, err := repo.SteamProfile(ctx)
	require.NoError(t, err)
	require.Nil(t, cached)
}

// Tests the settings save/get pairs
func TestDataRepo_Settings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepo(&stubPricing{}, &stubCurrency{})

	// Defaults before anything was saved.
	ratio, err := repo.CoinRatio(ctx)
	require.NoError(t, err)
	require.Equal(t, 0.0, ratio)

	enabled, err := repo.EnableExtension(ctx)
	require.NoError(t, err)
	require.False(t, enabled)

	require.NoError(t, repo.SaveCoinRatio(ctx, 0.8))
	require.NoError(t, repo.SaveHideBelowCoinRatio(ctx, true))
	require.NoError(t, repo.SaveSupply(ctx, 5))
	require.NoError(t, repo.SaveHideBelowSupply(ctx, true))
	require.NoError(t, repo.SaveEnableExtension(ctx, true))

	ratio, err = repo.CoinRatio(ctx)
	require.NoError(t, err)
	require.Equal(t, 0.8, ratio)

	hideRatio, err := repo.HideBelowCoinRatio(ctx)
	require.NoError(t, err)
	require.True(t, hideRatio)

	supply, err := repo.Supply(ctx)
	require.NoError(t, err)
	require.Equal(t, 5.0, supply)

	hideSupply, err := repo.HideBelowSupply(ctx)
	require.NoError(t, err)
	require.True(t, hideSupply)

	enabled, err = repo.EnableExtension(ctx)
	require.NoError(t, err)
	require.True(t, enabled)
}

// Tests the Steam logout intent flag
func TestDataRepo_SteamLogoutIntent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepo(&stubPricing{}, &stubCurrency{})

	intent, err := repo.SteamLogoutIntent(ctx)
	require.NoError(t, err)
	require.False(t, intent)

	require.NoError(t, repo.SetSteamLogoutIntent(ctx, true))
	intent, err = repo.SteamLogoutIntent(ctx)
	require.NoError(t, err)
	require.True(t, intent)

	require.NoError(t, repo.ClearSteamLogoutIntent(ctx))
	intent, err = repo.SteamLogoutIntent(ctx)
	require.NoError(t, err)
	require.False(t, intent)
}
