package dispatch

import "time"

// Event types understood by the Processor. Anything else is ignored.
const (
	EventAssignmentOpened  = "assignment.opened"
	EventAssignmentClosed  = "assignment.closed"
	EventLoadStatusChanged = "load.status_changed"
	EventDriverStatus      = "driver.status_changed"
)

// Event is a single dispatch event from the TMS feed.
type Event struct {
	Type       string    `json:"type"`
	OrgID      int64     `json:"org_id"`
	LoadID     string    `json:"load_id,omitempty"`
	DriverID   int64     `json:"driver_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
