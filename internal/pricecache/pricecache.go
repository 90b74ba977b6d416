// Package pricecache holds the most recently loaded price catalog in
// memory and answers point lookups by canonical key. The catalog is
// replaced wholesale on every load; readers only ever observe a
// complete snapshot.
package pricecache

import (
	"sync"
	"time"

	"skin-scout/internal/models"
)

// Quote is the result of a catalog lookup: the marketplace price in
// currency units (cents / 100) and the supply count.
type Quote struct {
	Price float64
	Count int
}

// Cache is the process-wide price catalog accessor.
type Cache struct {
	mu      sync.RWMutex
	catalog *models.Catalog
}

func New() *Cache {
	return &Cache{}
}

// Load replaces any prior catalog. Concurrent loads are not deduplicated
// here; the caller side holds the single-flight guard.
func (c *Cache) Load(catalog *models.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalog = catalog
}

// Lookup answers a point query by canonical key. A missing key or an
// unloaded catalog is a normal miss (new/rare items), never an error.
// A present entry without a price quotes 0.
func (c *Cache) Lookup(key string) (Quote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.catalog == nil || c.catalog.Items == nil {
		return Quote{}, false
	}
	entry, ok := c.catalog.Items[key]
	if !ok {
		return Quote{}, false
	}
	return Quote{
		Price: float64(entry.Price) / 100,
		Count: entry.Count,
	}, true
}

// Loaded reports whether any catalog has been loaded yet.
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog != nil
}

// LastLoadTime returns the catalog's fetch time, or false if never loaded.
func (c *Cache) LastLoadTime() (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.catalog == nil || c.catalog.TimestampLocal == 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(c.catalog.TimestampLocal), true
}

// LastLoadTimestamp formats the fetch time as "YYYY-MM-DD HH:mm" in
// local time, or returns "" if never loaded.
func (c *Cache) LastLoadTimestamp() string {
	t, ok := c.LastLoadTime()
	if !ok {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
