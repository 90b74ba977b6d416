package models

// ItemPayload is the plain structured form of an Item crossing the
// message boundary between a frontend and the background service.
type ItemPayload struct {
	Quality                  *string  `json:"quality"`
	Float                    *string  `json:"float"`
	ItemType                 *string  `json:"itemType"`
	ItemName                 *string  `json:"itemName"`
	CurrencyValue            *float64 `json:"currencyValue"`
	CurrencyValueMarketplace *float64 `json:"currencyValueMarketplace"`
	PriceDifference          any      `json:"priceDifference"`
	Phase                    *string  `json:"phase"`
	Site                     string   `json:"site"`
	Count                    int      `json:"count"`
}

// ItemFromPayload rehydrates an Item on the service side of the boundary.
func ItemFromPayload(p ItemPayload) *Item {
	return NewItem(
		p.Quality,
		p.Float,
		p.ItemType,
		p.ItemName,
		p.CurrencyValue,
		p.CurrencyValueMarketplace,
		p.PriceDifference,
		p.Phase,
		Site(p.Site),
		p.Count,
	)
}

// Payload flattens an Item for the reply to a frontend.
func (i *Item) Payload() ItemPayload {
	return ItemPayload{
		Quality:                  i.Quality,
		Float:                    i.Float,
		ItemType:                 i.ItemType,
		ItemName:                 i.ItemName,
		CurrencyValue:            i.CurrencyValue,
		CurrencyValueMarketplace: i.CurrencyValueMarketplace,
		PriceDifference:          i.PriceDifference,
		Phase:                    i.Phase,
		Site:                     string(i.Site),
		Count:                    i.Count,
	}
}
