package board

import "github.com/fleetops/opsboard/internal/domain"

// Input carries the three collections of one organization, fetched close
// enough in time to form a coherent snapshot. The pipeline never mutates
// them; mixed-tenant input is the caller's bug.
type Input struct {
	Loads             []domain.Load
	Drivers           []domain.Driver
	ActiveAssignments []domain.Assignment
	Scope             Scope
}

// Snapshot is the result of one reconciliation pass: scope-filtered enriched
// loads, the full enriched driver list, and the aggregate summary.
type Snapshot struct {
	Loads   []EnrichedLoad   `json:"loads"`
	Drivers []EnrichedDriver `json:"drivers"`
	Summary Summary          `json:"summary"`
}

// Reconcile runs the full pipeline as a single synchronous pass: ledger
// index, scope filter, load and driver enrichment, summary aggregation.
func Reconcile(in Input) Snapshot {
	scope := in.Scope
	if scope == "" {
		scope = ScopeAll
	}

	ledger := NewLedger(in.ActiveAssignments)
	fullIndex := NewLoadIndex(in.Loads)

	loads := EnrichLoads(FilterLoads(in.Loads, scope), ledger)
	drivers := EnrichDrivers(in.Drivers, ledger, fullIndex)

	return Snapshot{
		Loads:   loads,
		Drivers: drivers,
		Summary: Summarize(loads, drivers, ledger.Conflicts()),
	}
}
