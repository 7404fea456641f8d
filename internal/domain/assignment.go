package domain

import "time"

// Assignment links exactly one driver to one load. It is open while
// UnassignedAt is nil and closed once set.
type Assignment struct {
	ID           int64
	OrgID        int64
	LoadID       string
	DriverID     int64
	AssignedAt   time.Time
	UnassignedAt *time.Time
}

// Active reports whether the assignment is still open.
func (a Assignment) Active() bool {
	return a.UnassignedAt == nil
}
