package kafka

import (
	"strings"
	"time"

	"github.com/fleetops/opsboard/internal/service/dispatch"
)

// EventDTO is the wire shape of a dispatch event.
type EventDTO struct {
	Type       string    `json:"type"`
	OrgID      int64     `json:"org_id"`
	LoadID     string    `json:"load_id"`
	DriverID   int64     `json:"driver_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToDomain converts EventDTO to dispatch.Event.
func ToDomain(dto EventDTO) dispatch.Event {
	return dispatch.Event{
		Type:       strings.TrimSpace(dto.Type),
		OrgID:      dto.OrgID,
		LoadID:     strings.TrimSpace(dto.LoadID),
		DriverID:   dto.DriverID,
		Status:     strings.TrimSpace(dto.Status),
		OccurredAt: dto.OccurredAt,
	}
}
