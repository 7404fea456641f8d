package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/logx"
)

type ctxKey int

const orgIDKey ctxKey = iota

// OrgAuth resolves the bearer token on every request to an organization ID
// and stores it in the request context. Requests without a valid token are
// rejected with 401.
type OrgAuth struct {
	resolver orgResolver
	logger   logx.Logger
}

// NewOrgAuth creates the org authentication middleware.
func NewOrgAuth(resolver orgResolver, logger logx.Logger) *OrgAuth {
	return &OrgAuth{resolver: resolver, logger: logger}
}

// Handler returns chi-style middleware.
func (a *OrgAuth) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(a.logger, w, r, http.StatusUnauthorized, "missing bearer token")
				return
			}

			o, err := a.resolver.Resolve(r.Context(), token)
			switch {
			case err == nil:
				ctx := context.WithValue(r.Context(), orgIDKey, o.ID)
				next.ServeHTTP(w, r.WithContext(ctx))
			case errors.Is(err, apperr.Unauthorized):
				writeError(a.logger, w, r, http.StatusUnauthorized, "invalid token")
			default:
				a.logger.Error("org resolve failed",
					logx.String("req_id", reqID(r.Context())),
					logx.Any("err", err),
				)
				writeError(a.logger, w, r, http.StatusBadGateway, "identity unavailable")
			}
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, prefix))
}

// orgFromCtx returns the organization ID placed by OrgAuth, or 0 when the
// request skipped authentication.
func orgFromCtx(ctx context.Context) int64 {
	if v, ok := ctx.Value(orgIDKey).(int64); ok {
		return v
	}
	return 0
}
