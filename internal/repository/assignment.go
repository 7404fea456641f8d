package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fleetops/opsboard/internal/domain"
	"github.com/fleetops/opsboard/internal/ports/dispatchtx"
)

// AssignmentRepo represents assignment repository.
type AssignmentRepo struct {
	db *pgxpool.Pool
}

// NewAssignmentRepo creates a new AssignmentRepo.
func NewAssignmentRepo(db *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

const assignmentColumns = `id, org_id, load_id, driver_id, assigned_at, unassigned_at`

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var a domain.Assignment
	err := row.Scan(&a.ID, &a.OrgID, &a.LoadID, &a.DriverID, &a.AssignedAt, &a.UnassignedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// ListActive returns the open assignments of an organization ordered by assigned_at.
func (r *AssignmentRepo) ListActive(ctx context.Context, orgID int64) ([]domain.Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assignmentColumns+`
         FROM assignments
         WHERE org_id = $1 AND unassigned_at IS NULL
         ORDER BY assigned_at, id`, orgID)
	if err != nil {
		return nil, fmt.Errorf("list active assignments: %w", err)
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.ID, &a.OrgID, &a.LoadID, &a.DriverID, &a.AssignedAt, &a.UnassignedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// WithTx opens a transaction and executes fn within it.
func (r *AssignmentRepo) WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// GetActiveByLoadForUpdate - locks and returns the open assignment of a load.
func (r *TxRepo) GetActiveByLoadForUpdate(ctx context.Context, orgID int64, loadID string) (*domain.Assignment, error) {
	a, err := scanAssignment(r.tx.QueryRow(ctx, `
        SELECT `+assignmentColumns+`
        FROM assignments
        WHERE org_id = $1 AND load_id = $2 AND unassigned_at IS NULL
        ORDER BY assigned_at DESC, id DESC
        FOR UPDATE
        LIMIT 1
    `, orgID, loadID))
	if err != nil {
		return nil, fmt.Errorf("get active assignment by load %q: %w", loadID, err)
	}
	return a, nil
}

// GetActiveByDriverForUpdate - locks and returns the open assignment of a driver.
func (r *TxRepo) GetActiveByDriverForUpdate(ctx context.Context, orgID, driverID int64) (*domain.Assignment, error) {
	a, err := scanAssignment(r.tx.QueryRow(ctx, `
        SELECT `+assignmentColumns+`
        FROM assignments
        WHERE org_id = $1 AND driver_id = $2 AND unassigned_at IS NULL
        ORDER BY assigned_at DESC, id DESC
        FOR UPDATE
        LIMIT 1
    `, orgID, driverID))
	if err != nil {
		return nil, fmt.Errorf("get active assignment by driver %d: %w", driverID, err)
	}
	return a, nil
}

// Insert - opens a new assignment.
func (r *TxRepo) Insert(ctx context.Context, a *domain.Assignment) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO assignments (org_id, load_id, driver_id, assigned_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, a.OrgID, a.LoadID, a.DriverID, a.AssignedAt).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// Close - closes an assignment by setting unassigned_at.
func (r *TxRepo) Close(ctx context.Context, assignmentID int64, at time.Time) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE assignments
        SET unassigned_at = $2
        WHERE id = $1 AND unassigned_at IS NULL
    `, assignmentID, at)
	if err != nil {
		return fmt.Errorf("close assignment %d: %w", assignmentID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("assignment %d not open", assignmentID)
	}
	return nil
}

// UpdateDriverStatus - update driver status inside the transaction.
func (r *TxRepo) UpdateDriverStatus(ctx context.Context, driverID int64, status domain.DriverStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE drivers
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, driverID, string(status))
	if err != nil {
		return fmt.Errorf("update driver status %d: %w", driverID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("driver %d not found", driverID)
	}
	return nil
}
