package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/fleetops/opsboard/internal/config"
	"github.com/fleetops/opsboard/internal/http/handlers"
	"github.com/fleetops/opsboard/internal/logx"
)

func setupTestContainer(t *testing.T, cfg *config.Config) *dig.Container {
	t.Helper()

	c := dig.New()

	providers := []struct {
		name     string
		provider any
	}{
		{"context", func() context.Context { return context.Background() }},
		{"logger", logx.Nop},
		{"config", func() *config.Config { return cfg }},
		{"pgxpool", func() *pgxpool.Pool { return &pgxpool.Pool{} }},
	}

	for _, p := range providers {
		err := c.Provide(p.provider)
		require.NoErrorf(t, err, "provide %s", p.name)
	}

	require.NoError(t, c.Provide(provideMetrics))
	require.NoError(t, registerDomainServices(c))
	require.NoError(t, registerHTTP(c))

	return c
}

func verifyServer(t *testing.T, srv *http.Server) {
	t.Helper()

	require.NotNil(t, srv, "http.Server is nil")
	require.Equal(t, ":8080", srv.Addr)
	require.Greater(t, srv.ReadHeaderTimeout, time.Duration(0))
	require.Greater(t, srv.ReadTimeout, time.Duration(0))
	require.Greater(t, srv.WriteTimeout, time.Duration(0))
	require.Greater(t, srv.IdleTimeout, time.Duration(0))
}

func TestRegisterServiceAndHTTP_ProvidesHttpServerAndHandlers(t *testing.T) {
	c := setupTestContainer(t, &config.Config{Port: 8080})

	err := c.Invoke(func(
		srv *http.Server,
		base *handlers.Handlers,
		boardHandler *handlers.BoardHandler,
		loadHandler *handlers.LoadHandler,
		driverHandler *handlers.DriverHandler,
		assignmentHandler *handlers.AssignmentHandler,
	) {
		verifyServer(t, srv)
		require.NotNil(t, base)
		require.NotNil(t, boardHandler)
		require.NotNil(t, loadHandler)
		require.NotNil(t, driverHandler)
		require.NotNil(t, assignmentHandler)
	})
	require.NoError(t, err)
}

type httpServersIn struct {
	dig.In

	Main  *http.Server
	Pprof *http.Server `name:"pprof_server" optional:"true"`
}

func TestRegisterHTTP_PprofDisabled_ReturnsNilPprofServer(t *testing.T) {
	cfg := &config.Config{
		Port: 8080,
		Pprof: config.Pprof{
			Enabled: false,
			Addr:    "0.0.0.0:6060",
		},
	}
	c := setupTestContainer(t, cfg)
	err := c.Invoke(func(in httpServersIn) {
		require.NotNil(t, in.Main)
		require.Nil(t, in.Pprof)
	})
	require.NoError(t, err)
}

func TestRegisterHTTP_PprofEnabled_ProvidesPprofServer(t *testing.T) {
	cfg := &config.Config{
		Port: 8080,
		Pprof: config.Pprof{
			Enabled: true,
			Addr:    "127.0.0.1:6060",
			User:    "u",
			Pass:    "p",
		},
	}
	c := setupTestContainer(t, cfg)
	err := c.Invoke(func(in httpServersIn) {
		require.NotNil(t, in.Main)
		require.NotNil(t, in.Pprof)
		require.Equal(t, "127.0.0.1:6060", in.Pprof.Addr)
		require.NotNil(t, in.Pprof.Handler)
	})
	require.NoError(t, err)
}

func TestProvideAll_Success(t *testing.T) {
	t.Parallel()

	c := dig.New()

	err := provideAll(c,
		func() context.Context { return context.Background() },
		func() time.Duration { return 3 * time.Second },
	)
	require.NoError(t, err)

	err = c.Invoke(func(ctx context.Context, d time.Duration) {
		require.NotNil(t, ctx)
		require.Equal(t, 3*time.Second, d)
	})
	require.NoError(t, err)
}

func TestProvideAll_InvalidProvider(t *testing.T) {
	t.Parallel()

	c := dig.New()

	type bad struct{}
	err := provideAll(c, bad{})
	require.Error(t, err)
}

func TestProvideMetrics_Success_RegistersAndReturnsCollectors(t *testing.T) {
	oldReg := prometheusSwapRegistry(t)
	_ = oldReg

	out, err := provideMetrics()
	require.NoError(t, err)
	require.NotNil(t, out.RateLimitExceededTotal)
	require.NotNil(t, out.OrgResolverRetriesTotal)
	require.NotNil(t, out.AssignmentConflictsTotal)
	require.NotNil(t, out.BoardRecomputeDuration)
}

func TestProvideMetrics_AlreadyRegistered_ReturnsExistingCollectors(t *testing.T) {
	prometheusSwapRegistry(t)

	first, err := provideMetrics()
	require.NoError(t, err)

	second, err := provideMetrics()
	require.NoError(t, err)
	require.Equal(t, first.RateLimitExceededTotal, second.RateLimitExceededTotal)
	require.Equal(t, first.BoardRecomputeDuration, second.BoardRecomputeDuration)
}
