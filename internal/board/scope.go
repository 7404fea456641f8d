package board

import (
	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/domain"
)

// Scope selects which loads appear in the enriched output. Drivers are
// never filtered by scope.
type Scope string

// List of possible scopes
const (
	ScopeDispatcher Scope = "dispatcher"
	ScopeActiveOnly Scope = "active_only"
	ScopeAll        Scope = "all"
)

// ParseScope maps a raw query value to a Scope. Empty input defaults to all.
func ParseScope(raw string) (Scope, error) {
	switch Scope(raw) {
	case "":
		return ScopeAll, nil
	case ScopeDispatcher, ScopeActiveOnly, ScopeAll:
		return Scope(raw), nil
	default:
		return "", apperr.Invalid
	}
}

// FilterLoads drops loads in terminal statuses unless the scope is all.
func FilterLoads(loads []domain.Load, scope Scope) []domain.Load {
	if scope == ScopeAll {
		return loads
	}
	out := make([]domain.Load, 0, len(loads))
	for _, l := range loads {
		if l.Status.Terminal() {
			continue
		}
		out = append(out, l)
	}
	return out
}
