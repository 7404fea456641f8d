package org_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fleetops/opsboard/internal/apperr"
	orggw "github.com/fleetops/opsboard/internal/gateway/org"
)

func TestNewHTTPGateway_EmptyBaseURL_ReturnsNil(t *testing.T) {
	require.Nil(t, orggw.NewHTTPGateway("  ", nil))
}

func TestHTTPGateway_Resolve_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/orgs/resolve", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"org_id": 42, "org_name": "Acme Freight"}`))
	}))
	defer srv.Close()

	gw := orggw.NewHTTPGateway(srv.URL, srv.Client())
	require.NotNil(t, gw)

	o, err := gw.Resolve(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Equal(t, int64(42), o.ID)
	require.Equal(t, "Acme Freight", o.Name)
}

func TestHTTPGateway_Resolve_EmptyToken_Unauthorized(t *testing.T) {
	gw := orggw.NewHTTPGateway("http://identity.local", nil)

	_, err := gw.Resolve(context.Background(), "   ")
	require.ErrorIs(t, err, apperr.Unauthorized)
}

func TestHTTPGateway_Resolve_RejectedToken_Unauthorized(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(code)
		}))

		gw := orggw.NewHTTPGateway(srv.URL, srv.Client())
		_, err := gw.Resolve(context.Background(), "tok-bad")
		require.ErrorIs(t, err, apperr.Unauthorized)

		srv.Close()
	}
}

func TestHTTPGateway_Resolve_ServerError_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gw := orggw.NewHTTPGateway(srv.URL, srv.Client())
	_, err := gw.Resolve(context.Background(), "tok-1")

	var se *orggw.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusBadGateway, se.Code)
}

func TestHTTPGateway_Resolve_ZeroOrgID_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"org_id": 0}`))
	}))
	defer srv.Close()

	gw := orggw.NewHTTPGateway(srv.URL, srv.Client())
	_, err := gw.Resolve(context.Background(), "tok-1")
	require.ErrorIs(t, err, apperr.Unauthorized)
}
