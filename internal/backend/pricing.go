// Package backend holds the HTTP clients for the external collaborators:
// the pricing/licensing/Steam backend and the currency-rate service.
// Both are plain request/response clients; retry policy lives with the
// callers, never here.
package backend

import (
	"encoding/json"
	"fmt"

	"github.com/valyala/fasthttp"

	"skin-scout/internal/models"
	"skin-scout/internal/scouterrors"
)

// PricingBackend is the contract the repository consumes. The real
// implementation talks HTTP; tests substitute it.
type PricingBackend interface {
	GetCatalog(instanceID, steamProfileID string) (*models.Catalog, error)
	CheckAuth(instanceID, steamProfileID string) (models.AuthStatus, error)
	ActivateLicense(licenseKey, steamProfileID string) (OpResult, error)
	SteamSignIn(profile models.SteamProfile, instanceID string) (OpResult, error)
	SteamSignOut(steamProfileID, instanceID string) (OpResult, error)
}

// OpResult is the backend's generic mutation answer.
type OpResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PricingClient is the fasthttp implementation of PricingBackend.
type PricingClient struct {
	baseURL string
}

func NewPricingClient(baseURL string) *PricingClient {
	return &PricingClient{baseURL: baseURL}
}

func (c *PricingClient) GetCatalog(instanceID, steamProfileID string) (*models.Catalog, error) {
	body, err := c.doGet(c.baseURL+"/prices", instanceID, steamProfileID)
	if err != nil {
		return nil, err
	}

	var catalog models.Catalog
	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("backend: failed to parse catalog response: %w", err)
	}
	return &catalog, nil
}

func (c *PricingClient) CheckAuth(instanceID, steamProfileID string) (models.AuthStatus, error) {
	body, err := c.doGet(c.baseURL+"/extension/auth", instanceID, steamProfileID)
	if err != nil {
		return models.AuthStatus{}, err
	}

	var status models.AuthStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return models.AuthStatus{}, fmt.Errorf("backend: failed to parse auth response: %w", err)
	}
	return status, nil
}

func (c *PricingClient) ActivateLicense(licenseKey, steamProfileID string) (OpResult, error) {
	payload := map[string]string{
		"licenseKey":     licenseKey,
		"steamProfileId": steamProfileID,
	}
	return c.doPost(c.baseURL+"/extension/license/activate", payload)
}

func (c *PricingClient) SteamSignIn(profile models.SteamProfile, instanceID string) (OpResult, error) {
	payload := map[string]string{
		"steamProfileId": profile.SteamID,
		"instanceId":     instanceID,
	}
	if profile.Username != "" {
		payload["name"] = profile.Username
	}
	if profile.Email != "" {
		payload["email"] = profile.Email
	}
	if profile.AvatarURL != "" {
		payload["avatar_url"] = profile.AvatarURL
	}
	return c.doPost(c.baseURL+"/extension/steam/signIn", payload)
}

func (c *PricingClient) SteamSignOut(steamProfileID, instanceID string) (OpResult, error) {
	payload := map[string]string{
		"steamProfileId": steamProfileID,
		"instanceId":     instanceID,
	}
	return c.doPost(c.baseURL+"/extension/steam/signOut", payload)
}

func (c *PricingClient) doGet(url, instanceID, steamProfileID string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetContentType("application/json")
	if instanceID != "" {
		req.Header.Set("instanceId", instanceID)
	}
	if steamProfileID != "" {
		req.Header.Set("steamProfileId", steamProfileID)
	}

	if err := fasthttp.Do(req, resp); err != nil {
		return nil, fmt.Errorf("backend: request to %s failed: %w", url, err)
	}
	if resp.StatusCode() == fasthttp.StatusForbidden {
		return nil, scouterrors.ErrAccessDenied
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("backend: %s returned status %d", url, resp.StatusCode())
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

func (c *PricingClient) doPost(url string, payload any) (OpResult, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	body, err := json.Marshal(payload)
	if err != nil {
		return OpResult{}, fmt.Errorf("backend: failed to encode request: %w", err)
	}

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	if err := fasthttp.Do(req, resp); err != nil {
		return OpResult{}, fmt.Errorf("backend: request to %s failed: %w", url, err)
	}
	if resp.StatusCode() == fasthttp.StatusForbidden {
		return OpResult{}, scouterrors.ErrAccessDenied
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return OpResult{}, fmt.Errorf("backend: %s returned status %d", url, resp.StatusCode())
	}

	var result OpResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return OpResult{}, fmt.Errorf("backend: failed to parse response from %s: %w", url, err)
	}
	return result, nil
}
