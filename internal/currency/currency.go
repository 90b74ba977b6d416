// Package currency converts amounts between currency codes using a
// daily exchange-rate table. Every conversion crosses through the
// table's base pivot currency; rates are never expressed between two
// codes directly.
package currency

import (
	"fmt"
	"strings"
	"time"

	"skin-scout/internal/models"
	"skin-scout/internal/scouterrors"
)

// Convert computes (amount / fromRate) * toRate over the table's pivot
// bucket. Codes are case-insensitive. No rounding happens here; callers
// round for display.
func Convert(table *models.RateTable, from, to string, amount float64) (float64, error) {
	if table == nil || len(table.Rates) == 0 {
		return 0, scouterrors.ErrInvalidRateData
	}

	fromRate, okFrom := table.Rates[strings.ToLower(from)]
	toRate, okTo := table.Rates[strings.ToLower(to)]
	if !okFrom || !okTo {
		return 0, fmt.Errorf("%w: %s -> %s", scouterrors.ErrInvalidCurrencyCode, from, to)
	}

	return (amount / fromRate) * toRate, nil
}

// IsFresh reports whether a cached rate table was fetched today. Rate
// freshness is UTC calendar-date equality, not elapsed time.
func IsFresh(table *models.RateTable, now time.Time) bool {
	if table == nil {
		return false
	}
	return table.Date == now.UTC().Format("2006-01-02")
}
