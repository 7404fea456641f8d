package handlers

import (
	"time"

	"github.com/fleetops/opsboard/internal/domain"
)

type loadDTO struct {
	ID          string            `json:"id"`
	Reference   string            `json:"reference"`
	Status      domain.LoadStatus `json:"status"`
	PODStatus   domain.PODStatus  `json:"pod_status"`
	Origin      string            `json:"origin,omitempty"`
	Destination string            `json:"destination,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

type createLoadRequest struct {
	ID          string            `json:"id,omitempty"`
	Reference   string            `json:"reference"`
	Status      domain.LoadStatus `json:"status,omitempty"`
	PODStatus   domain.PODStatus  `json:"pod_status,omitempty"`
	Origin      string            `json:"origin,omitempty"`
	Destination string            `json:"destination,omitempty"`
}

type updateLoadRequest struct {
	Reference   *string            `json:"reference,omitempty"`
	Status      *domain.LoadStatus `json:"status,omitempty"`
	PODStatus   *domain.PODStatus  `json:"pod_status,omitempty"`
	Origin      *string            `json:"origin,omitempty"`
	Destination *string            `json:"destination,omitempty"`
}

type driverDTO struct {
	ID     int64               `json:"id"`
	Name   string              `json:"name"`
	Phone  string              `json:"phone"`
	Status domain.DriverStatus `json:"status"`
}

type createDriverRequest struct {
	Name   string              `json:"name"`
	Phone  string              `json:"phone"`
	Status domain.DriverStatus `json:"status,omitempty"`
}

type updateDriverRequest struct {
	Name   *string              `json:"name,omitempty"`
	Phone  *string              `json:"phone,omitempty"`
	Status *domain.DriverStatus `json:"status,omitempty"`
}

type assignRequest struct {
	LoadID   string `json:"load_id"`
	DriverID int64  `json:"driver_id"`
}

type assignmentDTO struct {
	ID           int64      `json:"id"`
	LoadID       string     `json:"load_id"`
	DriverID     int64      `json:"driver_id"`
	AssignedAt   time.Time  `json:"assigned_at"`
	UnassignedAt *time.Time `json:"unassigned_at,omitempty"`
}
