package helpers

import (
	"encoding/json"

	"skin-scout/internal/models"
)

// DispatchRequest is the discriminated message every frontend sends:
// an action name plus a flat payload. Message carries the action's main
// argument (an item payload, a license key, a Steam profile, a flag)
// and is decoded per action.
type DispatchRequest struct {
	Action             string          `json:"action" binding:"required"`
	Message            json.RawMessage `json:"message,omitempty"`
	State              *bool           `json:"state,omitempty"`
	CoinRatio          *float64        `json:"coinRatio,omitempty"`
	Supply             *float64        `json:"supply,omitempty"`
	IsCoinRatioEnabled *bool           `json:"isCoinRatioEnabled,omitempty"`
	CoinRatioThreshold *float64        `json:"coinRatioThreshold,omitempty"`
	IsSupplyEnabled    *bool           `json:"isSupplyEnabled,omitempty"`
	SupplyThreshold    *float64        `json:"supplyThreshold,omitempty"`
}

// DispatchResponse is the uniform reply shape: a success flag plus the
// action-specific fields. Message holds scalar answers and error texts.
type DispatchResponse struct {
	Success            bool                `json:"success"`
	Message            any                 `json:"message,omitempty"`
	Authorized         *bool               `json:"authorized,omitempty"`
	Plan               string              `json:"plan,omitempty"`
	Item               *models.ItemPayload `json:"item,omitempty"`
	IsCoinRatioEnabled *bool               `json:"isCoinRatioEnabled,omitempty"`
	CoinRatioThreshold *float64            `json:"coinRatioThreshold,omitempty"`
	IsSupplyEnabled    *bool               `json:"isSupplyEnabled,omitempty"`
	SupplyThreshold    *float64            `json:"supplyThreshold,omitempty"`
}
