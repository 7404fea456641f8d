package board

import "github.com/fleetops/opsboard/internal/domain"

// Classify derives a driver's truth status from the self-reported status and
// whether the ledger holds an open assignment for that driver. It is total:
// every (status, assigned) pair maps to exactly one truth status.
func Classify(status domain.DriverStatus, assigned bool) domain.TruthStatus {
	switch {
	case assigned && status.Busy():
		return domain.TruthOnLoad
	case assigned && status.Free():
		return domain.TruthShouldBeOnLoad
	case !assigned && status.Free():
		return domain.TruthAvailable
	case !assigned && status.Busy():
		return domain.TruthShouldBeFree
	default:
		return domain.TruthUnknown
	}
}
