package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fleetops/opsboard/internal/http/handlers"
	appmw "github.com/fleetops/opsboard/internal/http/middleware"
	"github.com/fleetops/opsboard/internal/http/middleware/ratelimit"
	"github.com/fleetops/opsboard/internal/logx"
)

// Deps carries everything the router mounts.
type Deps struct {
	Logger      logx.Logger
	Base        *handlers.Handlers
	Boards      *handlers.BoardHandler
	Loads       *handlers.LoadHandler
	Drivers     *handlers.DriverHandler
	Assignments *handlers.AssignmentHandler
	OrgAuth     *handlers.OrgAuth
	RateLimit   *ratelimit.Middleware
}

// New constructs a chi-based http.Handler with base middleware and routes.
// Probes and metrics stay outside the auth group; everything else requires
// a resolved organization.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	r.Use(appmw.Observability(d.Logger))
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(d.OrgAuth.Handler())

		r.Get("/board", d.Boards.Get)

		r.Route("/loads", func(r chi.Router) {
			r.Get("/", d.Loads.List)
			r.Post("/", d.Loads.Create)
			r.Get("/{id}", d.Loads.GetByID)
			r.Patch("/{id}", d.Loads.Update)
		})

		r.Route("/drivers", func(r chi.Router) {
			r.Get("/", d.Drivers.List)
			r.Post("/", d.Drivers.Create)
			r.Get("/{id}", d.Drivers.GetByID)
			r.Patch("/{id}", d.Drivers.Update)
		})

		r.Route("/assignments", func(r chi.Router) {
			r.Post("/", d.Assignments.Create)
			r.Delete("/{loadID}", d.Assignments.Delete)
		})
	})

	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}
