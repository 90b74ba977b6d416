package backend

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"skin-scout/internal/models"
)

// CurrencyBackend serves the daily exchange-rate table for one base
// currency.
type CurrencyBackend interface {
	GetRates(base string) (*models.RateTable, error)
}

// CurrencyClient fetches the public daily rate table. The response
// shape is {"date": "YYYY-MM-DD", "<base>": {"<code>": rate, ...}}.
type CurrencyClient struct {
	baseURL string
}

func NewCurrencyClient(baseURL string) *CurrencyClient {
	return &CurrencyClient{baseURL: baseURL}
}

func (c *CurrencyClient) GetRates(base string) (*models.RateTable, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	url := fmt.Sprintf("%s/v1/currencies/%s.json", c.baseURL, base)
	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := fasthttp.Do(req, resp); err != nil {
		return nil, fmt.Errorf("backend: currency rate request failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("backend: currency rate API returned status %d", resp.StatusCode())
	}

	return parseRateTable(resp.Body(), base)
}

// parseRateTable decodes the API's {"date": ..., "<base>": {...}} shape.
// A missing date falls back to today in UTC so freshness checks still
// work against a lenient mirror.
func parseRateTable(body []byte, base string) (*models.RateTable, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("backend: failed to parse currency rate response: %w", err)
	}

	table := &models.RateTable{Base: base}
	if dateRaw, ok := raw["date"]; ok {
		if err := json.Unmarshal(dateRaw, &table.Date); err != nil {
			return nil, fmt.Errorf("backend: failed to parse rate table date: %w", err)
		}
	}
	if table.Date == "" {
		table.Date = time.Now().UTC().Format("2006-01-02")
	}

	bucket, ok := raw[base]
	if !ok {
		return nil, fmt.Errorf("backend: rate table has no %q bucket", base)
	}
	if err := json.Unmarshal(bucket, &table.Rates); err != nil {
		return nil, fmt.Errorf("backend: failed to parse %q rate bucket: %w", base, err)
	}

	return table, nil
}
