// Package board implements the ops-board reconciliation pipeline: it
// cross-references loads, drivers, and the open-assignment ledger of one
// organization and derives a consistency snapshot with aggregate counts.
package board

import "github.com/fleetops/opsboard/internal/domain"

// Ledger indexes currently-open assignments by load and by driver, keeping
// at most one entry per key. When upstream data contains more than one open
// assignment for the same key, the one with the greatest AssignedAt wins;
// equal timestamps resolve to the last record seen. The board must render
// even with imperfect upstream data, so duplicates are counted, not rejected.
type Ledger struct {
	byLoad    map[string]domain.Assignment
	byDriver  map[int64]domain.Assignment
	conflicts int
}

// NewLedger builds a Ledger from a list of open assignments.
func NewLedger(active []domain.Assignment) *Ledger {
	l := &Ledger{
		byLoad:   make(map[string]domain.Assignment, len(active)),
		byDriver: make(map[int64]domain.Assignment, len(active)),
	}
	for _, a := range active {
		collided := false

		if cur, ok := l.byLoad[a.LoadID]; !ok || wins(a, cur) {
			l.byLoad[a.LoadID] = a
			collided = collided || ok
		} else {
			collided = true
		}

		if cur, ok := l.byDriver[a.DriverID]; !ok || wins(a, cur) {
			l.byDriver[a.DriverID] = a
			collided = collided || ok
		} else {
			collided = true
		}

		if collided {
			l.conflicts++
		}
	}
	return l
}

// wins reports whether candidate displaces current under most-recent-wins.
func wins(candidate, current domain.Assignment) bool {
	return !candidate.AssignedAt.Before(current.AssignedAt)
}

// ByLoad returns the open assignment for a load, if any.
func (l *Ledger) ByLoad(loadID string) (domain.Assignment, bool) {
	a, ok := l.byLoad[loadID]
	return a, ok
}

// ByDriver returns the open assignment for a driver, if any.
func (l *Ledger) ByDriver(driverID int64) (domain.Assignment, bool) {
	a, ok := l.byDriver[driverID]
	return a, ok
}

// Conflicts returns the number of open assignments that contended with
// another open assignment for the same load or driver.
func (l *Ledger) Conflicts() int {
	return l.conflicts
}
