package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"skin-scout/internal/backend"
	"skin-scout/internal/models"
	"skin-scout/internal/scheduler"
	scout "skin-scout/internal/scoutService"
	"skin-scout/services/scout/helpers"
	"skin-scout/utils"

	"github.com/gin-gonic/gin"
)

// ScoutServiceInterface is the service surface the dispatcher needs.
type ScoutServiceInterface interface {
	AuthCheck(ctx context.Context) (models.AuthStatus, error)
	RefreshAuthCheck(ctx context.Context) (models.AuthStatus, error)
	UpdateItemPrice(ctx context.Context, payload models.ItemPayload) (scout.ItemPriceResult, error)
	UpdateVisibilityByFilters(ctx context.Context, filters models.FilterSettings) error
	EnableExtension(ctx context.Context) error
	DisableExtension(ctx context.Context) error
	SaveCoinRatio(ctx context.Context, ratio float64) error
	CoinRatio(ctx context.Context) (float64, error)
	SaveHideBelowCoinRatio(ctx context.Context, state bool) error
	HideBelowCoinRatio(ctx context.Context) (bool, error)
	SaveSupply(ctx context.Context, supply float64) error
	Supply(ctx context.Context) (float64, error)
	SaveHideBelowSupply(ctx context.Context, state bool) error
	HideBelowSupply(ctx context.Context) (bool, error)
	SaveEnableExtension(ctx context.Context, state bool) error
	EnableExtensionState(ctx context.Context) (bool, error)
	IsUpdatingPrices() bool
	LastPricesUpdate() string
	PendingBroadcast() *models.BroadcastMessage
	ActivateLicense(ctx context.Context, licenseKey string) (backend.OpResult, error)
	SteamProfile(ctx context.Context) (*models.SteamProfile, error)
	ClearSteamProfile(ctx context.Context) error
	SetSteamLogoutIntent(ctx context.Context, value bool) error
	SteamLogoutIntent(ctx context.Context) (bool, error)
	ClearSteamLogoutIntent(ctx context.Context) error
	SteamSignIn(ctx context.Context, profile models.SteamProfile) (backend.OpResult, error)
	SteamSignOut(ctx context.Context) (backend.OpResult, error)
}

// ScoutHandler receives dispatch messages and routes them through the
// two-lane scheduler into the service.
type ScoutHandler struct {
	service    ScoutServiceInterface
	dispatcher *scheduler.Dispatcher
}

func NewScoutHandler(service ScoutServiceInterface, dispatcher *scheduler.Dispatcher) *ScoutHandler {
	return &ScoutHandler{service: service, dispatcher: dispatcher}
}

// DispatchHandler handles POST /message. The reply is always HTTP 200
// with a success flag once the action was dispatched; only unparseable
// requests are rejected at the transport level. Heavy actions wait
// behind the serialized drain loop; light actions answer immediately.
func (h *ScoutHandler) DispatchHandler(c *gin.Context) {
	var req helpers.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBadRequest(c, err, "invalid request payload")
		return
	}

	utils.Debug("dispatching request", map[string]any{"action": req.Action})

	result := make(chan helpers.DispatchResponse, 1)
	h.dispatcher.Dispatch(req.Action, func() {
		result <- h.handle(c.Request.Context(), req)
	})
	utils.JSONResult(c, <-result)
}

func (h *ScoutHandler) handle(ctx context.Context, req helpers.DispatchRequest) helpers.DispatchResponse {
	switch req.Action {

	// Auth and item pricing
	case scheduler.ActionAuthCheck:
		status, err := h.service.AuthCheck(ctx)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.AuthReply(status)

	case scheduler.ActionRefreshAuthCheck:
		status, err := h.service.RefreshAuthCheck(ctx)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.AuthReply(status)

	case scheduler.ActionUpdateItemPrice:
		var payload models.ItemPayload
		if err := json.Unmarshal(req.Message, &payload); err != nil {
			return helpers.Failure(req.Action, fmt.Errorf("invalid item payload: %w", err))
		}
		result, err := h.service.UpdateItemPrice(ctx, payload)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.ItemPriceReply(result.Item, result.Filters)

	// Filters, settings, status
	case scheduler.ActionUpdateVisibility:
		if err := h.service.UpdateVisibilityByFilters(ctx, helpers.FiltersFromRequest(req)); err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success(nil)

	case scheduler.ActionEnableExtension:
		if err := h.service.EnableExtension(ctx); err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success(nil)

	case scheduler.ActionDisableExtension:
		if err := h.service.DisableExtension(ctx); err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success(nil)

	case scheduler.ActionSaveCoinRatio:
		if req.CoinRatio == nil {
			return helpers.Failure(req.Action, errors.New("missing coinRatio"))
		}
		if err := h.service.SaveCoinRatio(ctx, *req.CoinRatio); err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success("coin ratio saved successfully")

	case scheduler.ActionGetCoinRatio:
		ratio, err := h.service.CoinRatio(ctx)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success(ratio)

	case scheduler.ActionSaveHideBelowRatio:
		if req.State == nil {
			return helpers.Failure(req.Action, errors.New("missing state"))
		}
		if err := h.service.SaveHideBelowCoinRatio(ctx, *req.State); err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success("toggle state saved successfully")

	case scheduler.ActionGetHideBelowRatio:
		state, err := h.service.HideBelowCoinRatio(ctx)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success(state)

	case scheduler.ActionSaveSupply:
		if req.Supply == nil {
			return helpers.Failure(req.Action, errors.New("missing supply"))
		}
		if err := h.service.SaveSupply(ctx, *req.Supply); err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success("supply saved successfully")

	case scheduler.ActionGetSupply:
		supply, err := h.service.Supply(ctx)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success(supply)

	case scheduler.ActionSaveHideBelowSupply:
		if req.State == nil {
			return helpers.Failure(req.Action, errors.New("missing state"))
		}
		if err := h.service.SaveHideBelowSupply(ctx, *req.State); err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success("supply toggle state saved successfully")

	case scheduler.ActionGetHideBelowSupply:
		state, err := h.service.HideBelowSupply(ctx)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success(state)

	case scheduler.ActionSaveEnableExtension:
		if req.State == nil {
			return helpers.Failure(req.Action, errors.New("missing state"))
		}
		if err := h.service.SaveEnableExtension(ctx, *req.State); err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success("enable extension state saved successfully")

	case scheduler.ActionGetEnableExtension:
		state, err := h.service.EnableExtensionState(ctx)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success(state)

	case scheduler.ActionGetLastPricesUpdate:
		return helpers.Success(h.service.LastPricesUpdate())

	case scheduler.ActionGetIsUpdatingPrices:
		return helpers.Success(h.service.IsUpdatingPrices())

	case scheduler.ActionGetPendingBroadcast:
		return helpers.Success(h.service.PendingBroadcast())

	// License and Steam identity
	case scheduler.ActionActivateLicense:
		var licenseKey string
		if err := json.Unmarshal(req.Message, &licenseKey); err != nil {
			return helpers.Failure(req.Action, fmt.Errorf("invalid license key payload: %w", err))
		}
		result, err := h.service.ActivateLicense(ctx, licenseKey)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.DispatchResponse{Success: result.Success, Message: result.Message}

	case scheduler.ActionGetSteamProfile:
		profile, err := h.service.SteamProfile(ctx)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success(profile)

	case scheduler.ActionClearSteamProfile:
		if err := h.service.ClearSteamProfile(ctx); err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success("steam profile cleared")

	case scheduler.ActionSetSteamLogoutIntent:
		var intent bool
		if err := json.Unmarshal(req.Message, &intent); err != nil {
			return helpers.Failure(req.Action, fmt.Errorf("invalid logout intent payload: %w", err))
		}
		if err := h.service.SetSteamLogoutIntent(ctx, intent); err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success("steam logout intent set")

	case scheduler.ActionGetSteamLogoutIntent:
		intent, err := h.service.SteamLogoutIntent(ctx)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success(intent)

	case scheduler.ActionClearSteamLogoutIntent:
		if err := h.service.ClearSteamLogoutIntent(ctx); err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.Success("steam logout intent cleared")

	case scheduler.ActionSteamSignIn:
		var profile models.SteamProfile
		if err := json.Unmarshal(req.Message, &profile); err != nil {
			return helpers.Failure(req.Action, fmt.Errorf("invalid steam profile payload: %w", err))
		}
		result, err := h.service.SteamSignIn(ctx, profile)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.DispatchResponse{Success: result.Success, Message: result.Message}

	case scheduler.ActionSteamSignOut:
		result, err := h.service.SteamSignOut(ctx)
		if err != nil {
			return helpers.Failure(req.Action, err)
		}
		return helpers.DispatchResponse{Success: result.Success, Message: result.Message}
	}

	return helpers.Failure(req.Action, fmt.Errorf("unknown action %q", req.Action))
}
