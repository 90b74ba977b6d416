package helpers

import (
	"skin-scout/internal/models"
	"skin-scout/utils"
)

// Success builds a successful reply carrying a scalar answer.
func Success(message any) DispatchResponse {
	return DispatchResponse{Success: true, Message: message}
}

// Failure builds the failed reply for an action; the message contract
// surfaces errors as text, never as HTTP status codes.
func Failure(action string, err error) DispatchResponse {
	utils.Warn(action+": request failed", map[string]any{"error": err.Error()})
	return DispatchResponse{Success: false, Message: err.Error()}
}

// AuthReply builds the auth-check reply shape.
func AuthReply(status models.AuthStatus) DispatchResponse {
	authorized := status.Authorized
	return DispatchResponse{
		Success:    true,
		Authorized: &authorized,
		Plan:       status.Plan,
	}
}

// ItemPriceReply flattens the merged item and filter thresholds into
// the reply the content scripts consume.
func ItemPriceReply(item models.ItemPayload, filters models.FilterSettings) DispatchResponse {
	return DispatchResponse{
		Success:            true,
		Item:               &item,
		IsCoinRatioEnabled: &filters.CoinRatioEnabled,
		CoinRatioThreshold: &filters.CoinRatioThreshold,
		IsSupplyEnabled:    &filters.SupplyEnabled,
		SupplyThreshold:    &filters.SupplyThreshold,
	}
}

// FiltersFromRequest collects the flat filter fields of a visibility
// update; absent fields mean "filter off".
func FiltersFromRequest(req DispatchRequest) models.FilterSettings {
	filters := models.FilterSettings{}
	if req.IsCoinRatioEnabled != nil {
		filters.CoinRatioEnabled = *req.IsCoinRatioEnabled
	}
	if req.CoinRatioThreshold != nil {
		filters.CoinRatioThreshold = *req.CoinRatioThreshold
	}
	if req.IsSupplyEnabled != nil {
		filters.SupplyEnabled = *req.IsSupplyEnabled
	}
	if req.SupplyThreshold != nil {
		filters.SupplyThreshold = *req.SupplyThreshold
	}
	return filters
}
