package domain

import "time"

// Load represents a brokered shipment.
type Load struct {
	ID          string
	OrgID       int64
	Reference   string
	Status      LoadStatus
	PODStatus   PODStatus
	Origin      string
	Destination string
	CreatedAt   time.Time
}

// PartialLoadUpdate carries optional fields to update a load.
// A nil field means “do not change” that attribute.
type PartialLoadUpdate struct {
	ID          string
	Reference   *string
	Status      *LoadStatus
	PODStatus   *PODStatus
	Origin      *string
	Destination *string
}
