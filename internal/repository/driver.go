package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/domain"
)

// DriverRepo represents driver repository.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

// Get - returns a driver by its ID within an organization.
func (r *DriverRepo) Get(ctx context.Context, orgID, id int64) (*domain.Driver, error) {
	var d domain.Driver
	err := r.db.QueryRow(ctx,
		`SELECT id, org_id, name, phone, status FROM drivers WHERE org_id=$1 AND id=$2`, orgID, id,
	).Scan(&d.ID, &d.OrgID, &d.Name, &d.Phone, &d.Status)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	return &d, nil
}

// List returns all drivers of an organization ordered by id.
func (r *DriverRepo) List(ctx context.Context, orgID int64) ([]domain.Driver, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, org_id, name, phone, status FROM drivers WHERE org_id=$1 ORDER BY id`, orgID)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var out []domain.Driver
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.OrgID, &d.Name, &d.Phone, &d.Status); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Create - creates a new driver and returns its generated ID.
func (r *DriverRepo) Create(ctx context.Context, d *domain.Driver) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO drivers(org_id, name, phone, status) VALUES($1,$2,$3,$4) RETURNING id`,
		d.OrgID, d.Name, d.Phone, d.Status).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.Conflict
		}
		return 0, fmt.Errorf("create driver: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update to a driver and returns true if a row was affected.
func (r *DriverRepo) UpdatePartial(ctx context.Context, orgID int64, u domain.PartialDriverUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE drivers
        SET
            name       = COALESCE($3, name),
            phone      = COALESCE($4, phone),
            status     = COALESCE($5, status),
            updated_at = now()
        WHERE org_id = $1 AND id = $2
    `, orgID, u.ID, u.Name, u.Phone, u.Status)
	if err != nil {
		if IsDuplicate(err) {
			return false, apperr.Conflict
		}
		return false, fmt.Errorf("update driver %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}
