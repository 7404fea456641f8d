package domain

// TruthStatus is a derived classification comparing a driver's self-reported
// status against the assignment ledger. It is recomputed on every board
// snapshot and never persisted.
type TruthStatus string

// List of possible truth statuses
const (
	TruthAvailable      TruthStatus = "AVAILABLE"
	TruthOnLoad         TruthStatus = "ON_LOAD"
	TruthShouldBeFree   TruthStatus = "SHOULD_BE_FREE"
	TruthShouldBeOnLoad TruthStatus = "SHOULD_BE_ON_LOAD"
	TruthUnknown        TruthStatus = "UNKNOWN"
)

// TruthStatuses lists every truth status in a stable order.
func TruthStatuses() []TruthStatus {
	return []TruthStatus{
		TruthAvailable,
		TruthOnLoad,
		TruthShouldBeFree,
		TruthShouldBeOnLoad,
		TruthUnknown,
	}
}
