package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/domain"
)

// LoadRepo represents load repository.
type LoadRepo struct{ db *pgxpool.Pool }

// NewLoadRepo creates a new LoadRepo.
func NewLoadRepo(db *pgxpool.Pool) *LoadRepo { return &LoadRepo{db: db} }

const loadColumns = `id, org_id, reference, status, pod_status, origin, destination, created_at`

// Get - returns a load by its ID within an organization.
func (r *LoadRepo) Get(ctx context.Context, orgID int64, id string) (*domain.Load, error) {
	var l domain.Load
	err := r.db.QueryRow(ctx,
		`SELECT `+loadColumns+` FROM loads WHERE org_id=$1 AND id=$2`, orgID, id,
	).Scan(&l.ID, &l.OrgID, &l.Reference, &l.Status, &l.PODStatus, &l.Origin, &l.Destination, &l.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get load %s: %w", id, err)
	}
	return &l, nil
}

// List returns all loads of an organization ordered by creation time.
func (r *LoadRepo) List(ctx context.Context, orgID int64) ([]domain.Load, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+loadColumns+` FROM loads WHERE org_id=$1 ORDER BY created_at, id`, orgID)
	if err != nil {
		return nil, fmt.Errorf("list loads: %w", err)
	}
	defer rows.Close()

	var out []domain.Load
	for rows.Next() {
		var l domain.Load
		if err := rows.Scan(&l.ID, &l.OrgID, &l.Reference, &l.Status, &l.PODStatus, &l.Origin, &l.Destination, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Create - creates a new load.
func (r *LoadRepo) Create(ctx context.Context, l *domain.Load) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO loads(id, org_id, reference, status, pod_status, origin, destination)
         VALUES($1,$2,$3,$4,$5,$6,$7)`,
		l.ID, l.OrgID, l.Reference, l.Status, l.PODStatus, l.Origin, l.Destination)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.Conflict
		}
		return fmt.Errorf("create load: %w", err)
	}
	return nil
}

// UpdatePartial applies a partial update to a load and returns true if a row was affected.
func (r *LoadRepo) UpdatePartial(ctx context.Context, orgID int64, u domain.PartialLoadUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE loads
        SET
            reference   = COALESCE($3, reference),
            status      = COALESCE($4, status),
            pod_status  = COALESCE($5, pod_status),
            origin      = COALESCE($6, origin),
            destination = COALESCE($7, destination),
            updated_at  = now()
        WHERE org_id = $1 AND id = $2
    `, orgID, u.ID, u.Reference, u.Status, u.PODStatus, u.Origin, u.Destination)
	if err != nil {
		return false, fmt.Errorf("update load %s: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}
