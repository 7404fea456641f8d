package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/fleetops/opsboard/internal/config"
	"github.com/fleetops/opsboard/internal/gateway/org"
	"github.com/fleetops/opsboard/internal/http/handlers"
	"github.com/fleetops/opsboard/internal/http/pprofserver"
	"github.com/fleetops/opsboard/internal/http/router"
	"github.com/fleetops/opsboard/internal/http/middleware/ratelimit"
	"github.com/fleetops/opsboard/internal/logx"
	"github.com/fleetops/opsboard/internal/repository"
	"github.com/fleetops/opsboard/internal/service/boards"
	"github.com/fleetops/opsboard/internal/service/dispatch"
	"github.com/fleetops/opsboard/internal/service/drivers"
	"github.com/fleetops/opsboard/internal/service/loads"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := container.Provide(provideMetrics); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

type boardServiceIn struct {
	dig.In

	Loads       *repository.LoadRepo
	Drivers     *repository.DriverRepo
	Assignments *repository.AssignmentRepo
	Cfg         *config.Config
	Logger      logx.Logger
	Conflicts   prometheus.Counter   `name:"assignment_conflicts_total"`
	Recompute   prometheus.Histogram `name:"board_recompute_duration_seconds"`
}

func newBoardService(in boardServiceIn) *boards.Service {
	return boards.NewService(
		in.Loads,
		in.Drivers,
		in.Assignments,
		in.Cfg.Board.OperationTimeout,
		in.Logger,
		in.Conflicts,
		in.Recompute,
	)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewLoadRepo,
		repository.NewDriverRepo,
		repository.NewAssignmentRepo,
		func(repo *repository.LoadRepo, cfg *config.Config) *loads.Service {
			return loads.NewService(repo, cfg.Board.OperationTimeout)
		},
		func(repo *repository.DriverRepo, cfg *config.Config) *drivers.Service {
			return drivers.NewService(repo, cfg.Board.OperationTimeout)
		},
		func(repo *repository.AssignmentRepo, cfg *config.Config, logger logx.Logger) *dispatch.Service {
			return dispatch.NewService(repo, cfg.Board.OperationTimeout, logger)
		},
		newBoardService,
	)
}

type orgAuthIn struct {
	dig.In

	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"org_resolver_retries_total"`
}

func newOrgAuth(in orgAuthIn) *handlers.OrgAuth {
	base := org.NewHTTPGateway(in.Cfg.OrgGateway.BaseURL, nil)
	if base == nil {
		in.Logger.Warn("org resolver not configured, using static dev resolver")
		return handlers.NewOrgAuth(org.Static{Org: org.Org{ID: 1, Name: "dev"}}, in.Logger)
	}
	gw := org.NewRetryingGateway(base, in.Logger, in.Retries, org.RetryConfig{
		MaxAttempts: in.Cfg.OrgGateway.MaxAttempts,
		BaseDelay:   in.Cfg.OrgGateway.BaseDelay,
		MaxDelay:    in.Cfg.OrgGateway.MaxDelay,
	})
	return handlers.NewOrgAuth(gw, in.Logger)
}

type routerIn struct {
	dig.In

	Logger      logx.Logger
	Base        *handlers.Handlers
	Boards      *handlers.BoardHandler
	Loads       *handlers.LoadHandler
	Drivers     *handlers.DriverHandler
	Assignments *handlers.AssignmentHandler
	OrgAuth     *handlers.OrgAuth
	RateLimit   *ratelimit.Middleware
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:      in.Logger,
		Base:        in.Base,
		Boards:      in.Boards,
		Loads:       in.Loads,
		Drivers:     in.Drivers,
		Assignments: in.Assignments,
		OrgAuth:     in.OrgAuth,
		RateLimit:   in.RateLimit,
	})
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}

	pprofProvider := func(cfg *config.Config) *http.Server {
		if !cfg.Pprof.Enabled {
			return nil
		}
		return &http.Server{
			Addr: cfg.Pprof.Addr,
			Handler: pprofserver.Handler(pprofserver.Config{
				User: cfg.Pprof.User,
				Pass: cfg.Pprof.Pass,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	if err := container.Provide(pprofProvider, dig.Name("pprof_server")); err != nil {
		return fmt.Errorf("provide pprof server: %w", err)
	}

	return provideAll(container,
		handlers.New,
		handlers.NewLoadUsecase,
		handlers.NewLoadHandler,
		handlers.NewDriverUsecase,
		handlers.NewDriverHandler,
		handlers.NewBoardUsecase,
		handlers.NewBoardHandler,
		handlers.NewDispatchUsecase,
		handlers.NewAssignmentHandler,
		newOrgAuth,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
	)
}
