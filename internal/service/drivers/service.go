package drivers

import (
	"context"
	"strings"
	"time"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/domain"
)

// Service coordinates driver business logic and orchestrates repository calls.
type Service struct {
	repo             driverRepository
	operationTimeout time.Duration
}

// NewService creates and configures a driver Service.
func NewService(r driverRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate validates a driver for creation. The status field is
// deliberately not validated against a closed set: dispatch feeds report
// free text and the truth classifier buckets unknown values.
func validateCreate(d *domain.Driver) error {
	if d == nil {
		return apperr.Invalid
	}
	if strings.TrimSpace(d.Name) == "" {
		return apperr.Invalid
	}
	if !domain.ValidatePhone(d.Phone) {
		return apperr.Invalid
	}
	return nil
}

func validateUpdate(u *domain.PartialDriverUpdate) error {
	if u.ID <= 0 {
		return apperr.Invalid
	}
	if u.Name == nil && u.Phone == nil && u.Status == nil {
		return apperr.Invalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.Invalid
	}
	if u.Phone != nil && !domain.ValidatePhone(*u.Phone) {
		return apperr.Invalid
	}
	return nil
}

// Get retrieves a driver by its ID.
func (s *Service) Get(ctx context.Context, orgID, id int64) (*domain.Driver, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	d, err := s.repo.Get(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFound
	}
	return d, nil
}

// List returns all drivers of the organization.
func (s *Service) List(ctx context.Context, orgID int64) ([]domain.Driver, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, orgID)
}

// Create persists a new driver and returns its generated ID.
func (s *Service) Create(ctx context.Context, d *domain.Driver) (int64, error) {
	if err := validateCreate(d); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, d)
}

// UpdatePartial applies a partial update to a driver. It returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, orgID int64, u domain.PartialDriverUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdatePartial(ctx, orgID, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.NotFound
	}
	return true, nil
}
