package org_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fleetops/opsboard/internal/apperr"
	orggw "github.com/fleetops/opsboard/internal/gateway/org"
	testlog "github.com/fleetops/opsboard/internal/testutil"
)

type stubGateway struct {
	resolveFn func(ctx context.Context, token string) (orggw.Org, error)
}

func (s stubGateway) Resolve(ctx context.Context, token string) (orggw.Org, error) {
	return s.resolveFn(ctx, token)
}

type countingInc struct {
	n atomic.Int64
}

func (c *countingInc) Inc() { c.n.Add(1) }

func retryCfg() orggw.RetryConfig {
	return orggw.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 4 * time.Millisecond}
}

func TestNewRetryingGateway_NilNext_ReturnsNil(t *testing.T) {
	require.Nil(t, orggw.NewRetryingGateway(nil, testlog.New().Logger(), nil, retryCfg()))
}

func TestRetryingGateway_SuccessFirstTry(t *testing.T) {
	calls := 0
	next := stubGateway{resolveFn: func(_ context.Context, token string) (orggw.Org, error) {
		calls++
		require.Equal(t, "tok-1", token)
		return orggw.Org{ID: 7}, nil
	}}

	gw := orggw.NewRetryingGateway(next, testlog.New().Logger(), nil, retryCfg())

	o, err := gw.Resolve(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Equal(t, int64(7), o.ID)
	require.Equal(t, 1, calls)
}

func TestRetryingGateway_RetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	next := stubGateway{resolveFn: func(context.Context, string) (orggw.Org, error) {
		calls++
		if calls < 3 {
			return orggw.Org{}, &orggw.StatusError{Code: http.StatusServiceUnavailable}
		}
		return orggw.Org{ID: 7}, nil
	}}

	retries := &countingInc{}
	rec := testlog.New()
	gw := orggw.NewRetryingGateway(next, rec.Logger(), retries, retryCfg())

	o, err := gw.Resolve(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Equal(t, int64(7), o.ID)
	require.Equal(t, 3, calls)
	require.Equal(t, int64(2), retries.n.Load())
	require.Len(t, rec.Entries(), 2)
}

func TestRetryingGateway_DoesNotRetryUnauthorized(t *testing.T) {
	calls := 0
	next := stubGateway{resolveFn: func(context.Context, string) (orggw.Org, error) {
		calls++
		return orggw.Org{}, apperr.Unauthorized
	}}

	gw := orggw.NewRetryingGateway(next, testlog.New().Logger(), nil, retryCfg())

	_, err := gw.Resolve(context.Background(), "tok-1")
	require.ErrorIs(t, err, apperr.Unauthorized)
	require.Equal(t, 1, calls)
}

func TestRetryingGateway_ExhaustsAttempts(t *testing.T) {
	calls := 0
	next := stubGateway{resolveFn: func(context.Context, string) (orggw.Org, error) {
		calls++
		return orggw.Org{}, &orggw.StatusError{Code: http.StatusBadGateway}
	}}

	gw := orggw.NewRetryingGateway(next, testlog.New().Logger(), nil, retryCfg())

	_, err := gw.Resolve(context.Background(), "tok-1")

	var se *orggw.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 3, calls)
}

func TestRetryingGateway_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	next := stubGateway{resolveFn: func(context.Context, string) (orggw.Org, error) {
		calls++
		cancel()
		return orggw.Org{}, &orggw.StatusError{Code: http.StatusBadGateway}
	}}

	gw := orggw.NewRetryingGateway(next, testlog.New().Logger(), nil, retryCfg())

	_, err := gw.Resolve(ctx, "tok-1")
	require.Error(t, err)
	require.Equal(t, 1, calls)
	require.False(t, errors.Is(err, context.Canceled))
}
