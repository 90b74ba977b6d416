package models

import "fmt"

// Site identifies the marketplace a card was scraped from
type Site string

const (
	SiteCSGOEmpire Site = "csgoempire"
	SiteCSGORoll   Site = "csgoroll"
	SiteCSFloat    Site = "csfloat"
)

// Plan is the subscription tier reported by the pricing backend
const (
	PlanFree = "Free"
	PlanPro  = "Pro"
)

// DefaultPriceDifference is the annotation shown before any price merge ran.
const DefaultPriceDifference = "+0%"

// Item holds the scraped attributes of one tradable skin/cosmetic.
// Nullable attributes are pointers because the sites null different
// fields for the same kind of item and classification depends on
// exactly which ones are missing. PriceDifference holds a formatted
// percentage string after a successful merge and the numeric value 0
// otherwise; frontends rely on that shape and must not assume one type.
type Item struct {
	Quality                  *string
	Float                    *string
	ItemType                 *string
	ItemName                 *string
	CurrencyValue            *float64
	CurrencyValueMarketplace *float64
	PriceDifference          any
	Phase                    *string
	Site                     Site
	Count                    int
}

// NewItem constructs an Item from the ten scraped attributes, in the
// order the scrapers deliver them.
func NewItem(
	quality *string,
	cardFloat *string,
	itemType *string,
	itemName *string,
	currencyValue *float64,
	currencyValueMarketplace *float64,
	priceDifference any,
	phase *string,
	site Site,
	count int,
) *Item {
	return &Item{
		Quality:                  quality,
		Float:                    cardFloat,
		ItemType:                 itemType,
		ItemName:                 itemName,
		CurrencyValue:            currencyValue,
		CurrencyValueMarketplace: currencyValueMarketplace,
		PriceDifference:          priceDifference,
		Phase:                    phase,
		Site:                     site,
		Count:                    count,
	}
}

// SetMarketplaceValue is used only by the price merge step.
func (i *Item) SetMarketplaceValue(v float64) {
	i.CurrencyValueMarketplace = &v
}

// SetCount is used only by the price merge step.
func (i *Item) SetCount(c int) {
	i.Count = c
}

// CalculatePriceDifference recomputes the signed percentage between the
// marketplace price and the site price. Both prices must be strictly
// positive; otherwise the difference is the numeric value 0.
func (i *Item) CalculatePriceDifference() {
	if i.CurrencyValueMarketplace != nil && i.CurrencyValue != nil &&
		*i.CurrencyValueMarketplace > 0 && *i.CurrencyValue > 0 {
		diff := ((*i.CurrencyValueMarketplace - *i.CurrencyValue) / *i.CurrencyValue) * 100
		i.PriceDifference = fmt.Sprintf("%.2f", diff)
		return
	}
	i.PriceDifference = float64(0)
}

// IsEqual compares the scrape-time identity of two items.
func (i *Item) IsEqual(other *Item) bool {
	return strEqual(i.Quality, other.Quality) &&
		strEqual(i.Float, other.Float) &&
		strEqual(i.ItemType, other.ItemType) &&
		strEqual(i.ItemName, other.ItemName) &&
		floatEqual(i.CurrencyValue, other.CurrencyValue)
}

// UniqueIdentifier is the short identity used in logs and dedup checks.
func (i *Item) UniqueIdentifier() string {
	return fmt.Sprintf("%s | %s | %s | %s",
		strOrNull(i.ItemName), strOrNull(i.Quality), strOrNull(i.Float), floatOrNull(i.CurrencyValue))
}

// IsNull reports whether the scrape produced none of the four identity fields.
func (i *Item) IsNull() bool {
	return i.ItemName == nil && i.Quality == nil && i.Float == nil && i.CurrencyValue == nil
}

// IsCompletelyNull reports a full scraping failure: every attribute
// absent at once. Such an item must never reach a price lookup.
func (i *Item) IsCompletelyNull() bool {
	return i.Quality == nil &&
		i.Float == nil &&
		i.ItemType == nil &&
		i.ItemName == nil &&
		i.CurrencyValue == nil &&
		i.CurrencyValueMarketplace == nil &&
		i.Phase == nil &&
		i.PriceDifference == nil
}

func strEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func floatEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strOrNull(p *string) string {
	if p == nil {
		return "null"
	}
	return *p
}

func floatOrNull(p *float64) string {
	if p == nil {
		return "null"
	}
	return fmt.Sprintf("%v", *p)
}
