package scouterrors

import "errors"

// Lookup/cache errors
var (
	ErrItemNotFound   = errors.New("item not found")
	ErrPricesExpired  = errors.New("prices are expired")
	ErrNoCurrencyRate = errors.New("no currency rate data found in local storage")
)

// Auth/license errors
var (
	ErrAccessDenied      = errors.New("license key or session may be invalid")
	ErrLicenseKeyMissing = errors.New("license key is missing")
	ErrNoSteamProfile    = errors.New("steam profile is required, sign in with Steam first")
)

// Scheduling errors
var (
	ErrAlreadyInProgress = errors.New("operation is already in progress")
	ErrUnresolvedSite    = errors.New("unresolved site")
	ErrMalformedItem     = errors.New("malformed item attributes")
)

// Converter errors
var (
	ErrInvalidRateData     = errors.New("invalid currency rate data")
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
)
