package domain

import "strings"

type (
	// LoadStatus represents the status of a load. The upstream store holds
	// free text, so the set of values is open-ended.
	LoadStatus string
	// PODStatus represents the proof-of-delivery status of a load.
	PODStatus string
	// DriverStatus represents the self-reported status of a driver.
	DriverStatus string
)

// List of well-known load statuses
const (
	LoadDelivered LoadStatus = "DELIVERED"
	LoadProblem   LoadStatus = "PROBLEM"
	LoadFailed    LoadStatus = "FAILED"
	LoadCancelled LoadStatus = "CANCELLED"
	LoadAtRisk    LoadStatus = "AT_RISK"
	LoadLate      LoadStatus = "LATE"
	LoadDelayed   LoadStatus = "DELAYED"
)

// List of well-known POD statuses
const (
	PODReceived PODStatus = "RECEIVED"
	// PODNone is the histogram bucket for loads with no POD status set.
	PODNone PODStatus = "NONE"
)

// List of well-known driver statuses
const (
	DriverAvailable  DriverStatus = "AVAILABLE"
	DriverOffDuty    DriverStatus = "OFF_DUTY"
	DriverIdle       DriverStatus = "IDLE"
	DriverOnLoad     DriverStatus = "ON_LOAD"
	DriverDispatched DriverStatus = "DISPATCHED"
	DriverInTransit  DriverStatus = "IN_TRANSIT"
)

// StatusUnknown is the histogram bucket for unset load statuses.
const StatusUnknown = "UNKNOWN"

// terminalLoadStatuses are excluded from scoped board views.
var terminalLoadStatuses = map[LoadStatus]struct{}{
	"CANCELLED": {},
	"CANCELED":  {},
	"CLOSED":    {},
	"ARCHIVED":  {},
	"DELETED":   {},
}

var exceptionLoadStatuses = map[LoadStatus]struct{}{
	LoadProblem:   {},
	LoadFailed:    {},
	LoadCancelled: {},
}

var scheduleRiskLoadStatuses = map[LoadStatus]struct{}{
	LoadAtRisk:  {},
	LoadLate:    {},
	LoadDelayed: {},
}

// Normalize returns the status uppercased with surrounding whitespace removed.
func (s LoadStatus) Normalize() LoadStatus {
	return LoadStatus(strings.ToUpper(strings.TrimSpace(string(s))))
}

// Terminal reports whether the load is in a closed/inactive status.
func (s LoadStatus) Terminal() bool {
	_, ok := terminalLoadStatuses[s.Normalize()]
	return ok
}

// Exception reports whether the load is in a status worth an operator's attention.
func (s LoadStatus) Exception() bool {
	_, ok := exceptionLoadStatuses[s.Normalize()]
	return ok
}

// ScheduleRisk reports whether the load is at risk of missing its schedule.
func (s LoadStatus) ScheduleRisk() bool {
	_, ok := scheduleRiskLoadStatuses[s.Normalize()]
	return ok
}

// Normalize returns the status uppercased with surrounding whitespace removed.
func (s PODStatus) Normalize() PODStatus {
	return PODStatus(strings.ToUpper(strings.TrimSpace(string(s))))
}

// Received reports whether a proof of delivery has been received.
func (s PODStatus) Received() bool {
	return s.Normalize() == PODReceived
}

// freeDriverStatuses claim the driver is not on a load. The empty string is
// a valid "free" signal: new driver rows start with no status at all.
var freeDriverStatuses = map[DriverStatus]struct{}{
	DriverAvailable: {},
	DriverOffDuty:   {},
	DriverIdle:      {},
	"":              {},
}

var busyDriverStatuses = map[DriverStatus]struct{}{
	DriverOnLoad:     {},
	DriverDispatched: {},
	DriverInTransit:  {},
}

// Normalize returns the status uppercased with surrounding whitespace removed.
func (s DriverStatus) Normalize() DriverStatus {
	return DriverStatus(strings.ToUpper(strings.TrimSpace(string(s))))
}

// Free reports whether the status claims the driver is off a load.
func (s DriverStatus) Free() bool {
	_, ok := freeDriverStatuses[s.Normalize()]
	return ok
}

// Busy reports whether the status claims the driver is on a load.
func (s DriverStatus) Busy() bool {
	_, ok := busyDriverStatuses[s.Normalize()]
	return ok
}
