package loads

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/domain"
)

// Service coordinates load business logic and orchestrates repository calls.
// Statuses are open-ended free text from upstream systems, so they are
// stored as given and only normalized when classified.
type Service struct {
	repo             loadRepository
	operationTimeout time.Duration
}

// NewService creates and configures a load Service.
func NewService(r loadRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(l *domain.Load) error {
	if l == nil {
		return apperr.Invalid
	}
	if strings.TrimSpace(l.Reference) == "" {
		return apperr.Invalid
	}
	return nil
}

func validateUpdate(u *domain.PartialLoadUpdate) error {
	if strings.TrimSpace(u.ID) == "" {
		return apperr.Invalid
	}
	if u.Reference == nil && u.Status == nil && u.PODStatus == nil && u.Origin == nil && u.Destination == nil {
		return apperr.Invalid
	}
	if u.Reference != nil && strings.TrimSpace(*u.Reference) == "" {
		return apperr.Invalid
	}
	return nil
}

// Get retrieves a load by its ID.
func (s *Service) Get(ctx context.Context, orgID int64, id string) (*domain.Load, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	l, err := s.repo.Get(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apperr.NotFound
	}
	return l, nil
}

// List returns all loads of the organization.
func (s *Service) List(ctx context.Context, orgID int64) ([]domain.Load, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, orgID)
}

// Create persists a new load and returns its ID. An empty ID is replaced
// with a generated one.
func (s *Service) Create(ctx context.Context, l *domain.Load) (string, error) {
	if err := validateCreate(l); err != nil {
		return "", err
	}
	if strings.TrimSpace(l.ID) == "" {
		l.ID = uuid.NewString()
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, l); err != nil {
		return "", err
	}
	return l.ID, nil
}

// UpdatePartial applies a partial update to a load. It returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, orgID int64, u domain.PartialLoadUpdate) (bool, error) {
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
