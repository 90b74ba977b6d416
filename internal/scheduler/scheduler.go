// Package scheduler is the two-lane request dispatcher of the
// background service. Light requests (settings/status reads) run
// immediately and never wait behind heavy ones; heavy requests (cache,
// storage, and network mutations) are serialized strictly one-at-a-time
// through a single drain loop, which is the only ordering guarantee the
// service provides and substitutes for any lock/transaction mechanism.
package scheduler

import "sync"

// Request action names exposed over the message boundary.
const (
	ActionAuthCheck              = "authCheck"
	ActionRefreshAuthCheck       = "refreshAuthCheck"
	ActionUpdateItemPrice        = "updateItemPrice"
	ActionUpdateVisibility       = "updateVisibilityByFilters"
	ActionEnableExtension        = "enableExtension"
	ActionDisableExtension       = "disableExtension"
	ActionSaveCoinRatio          = "saveCoinRatio"
	ActionGetCoinRatio           = "getCoinRatio"
	ActionSaveHideBelowRatio     = "saveHideItemsBelowCoinRatio"
	ActionGetHideBelowRatio      = "getHideItemsBelowCoinRatio"
	ActionSaveSupply             = "saveSupply"
	ActionGetSupply              = "getSupply"
	ActionSaveHideBelowSupply    = "saveHideItemsBelowSupply"
	ActionGetHideBelowSupply     = "getHideItemsBelowSupply"
	ActionSaveEnableExtension    = "saveEnableExtension"
	ActionGetEnableExtension     = "getEnableExtension"
	ActionGetLastPricesUpdate    = "getLastPricesUpdate"
	ActionGetIsUpdatingPrices    = "getIsUpdatingPrices"
	ActionGetPendingBroadcast    = "getPendingBroadcast"
	ActionActivateLicense        = "activateLicense"
	ActionGetSteamProfile        = "getSteamProfile"
	ActionClearSteamProfile      = "clearSteamProfile"
	ActionSetSteamLogoutIntent   = "setSteamLogoutIntent"
	ActionGetSteamLogoutIntent   = "getSteamLogoutIntent"
	ActionClearSteamLogoutIntent = "clearSteamLogoutIntent"
	ActionSteamSignIn            = "steamSignIn"
	ActionSteamSignOut           = "steamSignOut"
	ActionUpdatePrices           = "updatePrices"
)

// lightActions is the static allow-list. Everything not listed is heavy.
var lightActions = map[string]struct{}{
	ActionAuthCheck:              {},
	ActionRefreshAuthCheck:       {},
	ActionGetCoinRatio:           {},
	ActionGetHideBelowRatio:      {},
	ActionGetSupply:              {},
	ActionGetHideBelowSupply:     {},
	ActionGetEnableExtension:     {},
	ActionGetLastPricesUpdate:    {},
	ActionGetIsUpdatingPrices:    {},
	ActionGetPendingBroadcast:    {},
	ActionActivateLicense:        {},
	ActionGetSteamProfile:        {},
	ActionClearSteamProfile:      {},
	ActionSetSteamLogoutIntent:   {},
	ActionGetSteamLogoutIntent:   {},
	ActionClearSteamLogoutIntent: {},
	ActionSteamSignIn:            {},
	ActionSteamSignOut:           {},
}

// IsLight reports whether an action belongs to the light lane.
func IsLight(action string) bool {
	_, ok := lightActions[action]
	return ok
}

// Task is one unit of work dispatched through a lane.
type Task func()

// Dispatcher routes tasks into the two lanes. The zero value is not
// usable; construct with NewDispatcher.
type Dispatcher struct {
	mu       sync.Mutex
	heavy    []Task
	draining bool
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Dispatch runs a light task immediately on the calling goroutine and
// enqueues a heavy task for the serialized drain loop. A heavy task
// runs to completion before the next heavy task starts.
func (d *Dispatcher) Dispatch(action string, task Task) {
	if IsLight(action) {
		task()
		return
	}
	d.enqueueHeavy(task)
}

func (d *Dispatcher) enqueueHeavy(task Task) {
	d.mu.Lock()
	d.heavy = append(d.heavy, task)
	if d.draining {
		// A drain loop is already running and will pick this task up.
		d.mu.Unlock()
		return
	}
	d.draining = true
	d.mu.Unlock()

	go d.drainHeavy()
}

func (d *Dispatcher) drainHeavy() {
	for {
		d.mu.Lock()
		if len(d.heavy) == 0 {
			d.draining = false
			d.mu.Unlock()
			return
		}
		task := d.heavy[0]
		d.heavy = d.heavy[1:]
		d.mu.Unlock()

		task()
	}
}
