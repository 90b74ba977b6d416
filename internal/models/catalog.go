package models

// PriceEntry is one catalog row: the marketplace price in integer cents
// and the current supply count.
type PriceEntry struct {
	Price int `json:"price"`
	Count int `json:"count"`
}

// Catalog is the full price/supply dataset fetched wholesale from the
// pricing backend. TimestampLocal is set by the fetching side (epoch
// millis) and drives the freshness policy.
type Catalog struct {
	Items          map[string]PriceEntry `json:"items"`
	TimestampLocal int64                 `json:"timestamp_local"`
}

// RateTable is a daily exchange-rate table. All rates are expressed
// relative to the Base pivot currency; conversions between two codes
// always cross through the pivot.
type RateTable struct {
	Date  string             `json:"date"`
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// AuthStatus is the backend's answer to an authorization check.
type AuthStatus struct {
	Authorized bool   `json:"authorized"`
	Plan       string `json:"plan"`
}

// SteamProfile is the locally cached Steam identity.
type SteamProfile struct {
	SteamID   string `json:"steam_id"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// FilterSettings are the Pro-plan visibility thresholds.
type FilterSettings struct {
	CoinRatioEnabled   bool    `json:"isCoinRatioEnabled"`
	CoinRatioThreshold float64 `json:"coinRatioThreshold"`
	SupplyEnabled      bool    `json:"isSupplyEnabled"`
	SupplyThreshold    float64 `json:"supplyThreshold"`
}

// BroadcastMessage is pushed to frontends when shared state changed
// behind their back (filter updates, enable/disable, price refreshes).
type BroadcastMessage struct {
	Action  string          `json:"action"`
	Success *bool           `json:"success,omitempty"`
	Filters *FilterSettings `json:"filters,omitempty"`
}
