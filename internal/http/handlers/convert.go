package handlers

import "github.com/fleetops/opsboard/internal/domain"

func (r createLoadRequest) toModel(orgID int64) *domain.Load {
	return &domain.Load{
		ID:          r.ID,
		OrgID:       orgID,
		Reference:   r.Reference,
		Status:      r.Status,
		PODStatus:   r.PODStatus,
		Origin:      r.Origin,
		Destination: r.Destination,
	}
}

func (r updateLoadRequest) toModel(id string) domain.PartialLoadUpdate {
	return domain.PartialLoadUpdate{
		ID:          id,
		Reference:   r.Reference,
		Status:      r.Status,
		PODStatus:   r.PODStatus,
		Origin:      r.Origin,
		Destination: r.Destination,
	}
}

func loadToResponse(l domain.Load) loadDTO {
	return loadDTO{
		ID:          l.ID,
		Reference:   l.Reference,
		Status:      l.Status,
		PODStatus:   l.PODStatus,
		Origin:      l.Origin,
		Destination: l.Destination,
		CreatedAt:   l.CreatedAt,
	}
}

func loadsToResponse(list []domain.Load) []loadDTO {
	out := make([]loadDTO, 0, len(list))
	for _, l := range list {
		out = append(out, loadToResponse(l))
	}
	return out
}

func (r createDriverRequest) toModel(orgID int64) *domain.Driver {
	return &domain.Driver{
		OrgID:  orgID,
		Name:   r.Name,
		Phone:  r.Phone,
		Status: r.Status,
	}
}

func (r updateDriverRequest) toModel(id int64) domain.PartialDriverUpdate {
	return domain.PartialDriverUpdate{
		ID:     id,
		Name:   r.Name,
		Phone:  r.Phone,
		Status: r.Status,
	}
}

func driverToResponse(d domain.Driver) driverDTO {
	return driverDTO{
		ID:     d.ID,
		Name:   d.Name,
		Phone:  d.Phone,
		Status: d.Status,
	}
}

func driversToResponse(list []domain.Driver) []driverDTO {
	out := make([]driverDTO, 0, len(list))
	for _, d := range list {
		out = append(out, driverToResponse(d))
	}
	return out
}

func assignmentToResponse(a domain.Assignment) assignmentDTO {
	return assignmentDTO{
		ID:           a.ID,
		LoadID:       a.LoadID,
		DriverID:     a.DriverID,
		AssignedAt:   a.AssignedAt,
		UnassignedAt: a.UnassignedAt,
	}
}
