// Package org resolves dispatcher bearer tokens to organization IDs via the
// identity service.
package org

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fleetops/opsboard/internal/apperr"
)

// Org is an organization record from the identity service.
type Org struct {
	ID   int64
	Name string
}

// StatusError carries the HTTP status of a failed identity call.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("org gateway: identity returned %d", e.Code)
}

// HTTPGateway resolves tokens against the identity service over HTTP.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway creates an org gateway backed by HTTP.
func NewHTTPGateway(baseURL string, client *http.Client) *HTTPGateway {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil
	}
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &HTTPGateway{baseURL: baseURL, client: client}
}

// Static resolves every non-empty token to a fixed organization. It stands
// in for the identity service in local development.
type Static struct {
	Org Org
}

// Resolve returns the fixed organization for any non-empty token.
func (s Static) Resolve(_ context.Context, token string) (Org, error) {
	if strings.TrimSpace(token) == "" {
		return Org{}, apperr.Unauthorized
	}
	return s.Org, nil
}

type resolveResponse struct {
	OrgID   int64  `json:"org_id"`
	OrgName string `json:"org_name"`
}

// Resolve exchanges a bearer token for the caller's organization.
func (g *HTTPGateway) Resolve(ctx context.Context, token string) (Org, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Org{}, apperr.Unauthorized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/v1/orgs/resolve", nil)
	if err != nil {
		return Org{}, fmt.Errorf("org gateway: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return Org{}, fmt.Errorf("org gateway: resolve: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Org{}, apperr.Unauthorized
	default:
		return Org{}, &StatusError{Code: resp.StatusCode}
	}

	var body resolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Org{}, fmt.Errorf("org gateway: decode response: %w", err)
	}
	if body.OrgID <= 0 {
		return Org{}, apperr.Unauthorized
	}

	return Org{ID: body.OrgID, Name: body.OrgName}, nil
}
