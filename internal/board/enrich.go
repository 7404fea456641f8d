package board

import "github.com/fleetops/opsboard/internal/domain"

// EnrichedLoad is a load with its open assignment attached. The original
// load fields are never modified.
type EnrichedLoad struct {
	domain.Load
	ActiveAssignment *domain.Assignment
}

// EnrichedDriver is a driver with its open assignment, the load that
// assignment references, and the derived truth status attached.
type EnrichedDriver struct {
	domain.Driver
	ActiveAssignment *domain.Assignment
	ActiveLoad       *domain.Load
	Truth            domain.TruthStatus
}

// LoadIndex maps load IDs to loads.
type LoadIndex map[string]domain.Load

// NewLoadIndex builds an index over the complete load set. Driver enrichment
// must consult the full set, not a scope-filtered one, so that a driver's
// active load resolves even when that load is excluded from the caller's view.
func NewLoadIndex(loads []domain.Load) LoadIndex {
	idx := make(LoadIndex, len(loads))
	for _, l := range loads {
		idx[l.ID] = l
	}
	return idx
}

// EnrichLoads attaches the open assignment, if any, to each load.
func EnrichLoads(loads []domain.Load, ledger *Ledger) []EnrichedLoad {
	out := make([]EnrichedLoad, 0, len(loads))
	for _, l := range loads {
		e := EnrichedLoad{Load: l}
		if a, ok := ledger.ByLoad(l.ID); ok {
			e.ActiveAssignment = &a
		}
		out = append(out, e)
	}
	return out
}

// EnrichDrivers attaches the open assignment, its load, and the truth status
// to each driver. fullIndex must cover every load of the organization.
func EnrichDrivers(drivers []domain.Driver, ledger *Ledger, fullIndex LoadIndex) []EnrichedDriver {
	out := make([]EnrichedDriver, 0, len(drivers))
	for _, d := range drivers {
		e := EnrichedDriver{Driver: d}
		a, assigned := ledger.ByDriver(d.ID)
		if assigned {
			e.ActiveAssignment = &a
			if l, ok := fullIndex[a.LoadID]; ok {
				e.ActiveLoad = &l
			}
		}
		e.Truth = Classify(d.Status, assigned)
		out = append(out, e)
	}
	return out
}
