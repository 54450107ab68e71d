package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/skyfleet/drone-ops/apperr"
	"github.com/skyfleet/drone-ops/models"
)

// ClaimRepository interface defines claim database operations. Claims
// are never deleted; they are closed by setting end_time.
type ClaimRepository interface {
	GetByID(ctx context.Context, id string) (*models.Claim, error)
	// GetActiveByDrone returns the drone's active claim, or nil when
	// there is none.
	GetActiveByDrone(ctx context.Context, droneID string) (*models.Claim, error)
	// CreateActive inserts a new active claim. It fails with a Conflict
	// error when the drone already has an active claim, both via a
	// re-check inside the transaction and via the partial unique index
	// on (drone_id) WHERE end_time IS NULL.
	CreateActive(ctx context.Context, claim *models.Claim) error
	// Close sets end_time on an active claim. Returns false when the
	// claim was already released (conditional write, no matching row).
	Close(ctx context.Context, id string, endTime time.Time) (bool, error)
	ListByDrone(ctx context.Context, droneID string, limit int) ([]models.Claim, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Claim, error)
}

// claimRepository implements ClaimRepository interface
type claimRepository struct {
	db *sql.DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *sql.DB) ClaimRepository {
	return &claimRepository{db: db}
}

const claimColumns = "id, drone_id, user_id, user_email, start_time, end_time"

func scanClaim(row interface{ Scan(...interface{}) error }) (*models.Claim, error) {
	var claim models.Claim
	var endTime sql.NullTime

	err := row.Scan(
		&claim.ID,
		&claim.DroneID,
		&claim.UserID,
		&claim.UserEmail,
		&claim.StartTime,
		&endTime,
	)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		claim.EndTime = &endTime.Time
	}

	return &claim, nil
}

// GetByID retrieves a claim by ID
func (r *claimRepository) GetByID(ctx context.Context, id string) (*models.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE id = ?`

	claim, err := scanClaim(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("claim %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	return claim, nil
}

// GetActiveByDrone retrieves the active claim for a drone, if any
func (r *claimRepository) GetActiveByDrone(ctx context.Context, droneID string) (*models.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE drone_id = ? AND end_time IS NULL`

	claim, err := scanClaim(r.db.QueryRowContext(ctx, query, droneID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active claim: %w", err)
	}

	return claim, nil
}

// CreateActive inserts a new active claim for a drone
func (r *claimRepository) CreateActive(ctx context.Context, claim *models.Claim) error {
	if claim.ID == "" {
		claim.ID = uuid.NewString()
	}
	if claim.StartTime.IsZero() {
		claim.StartTime = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Re-check inside the transaction; the unique index backstops any
	// write that races past this read.
	var existing string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM claims WHERE drone_id = ? AND end_time IS NULL`,
		claim.DroneID,
	).Scan(&existing)
	if err == nil {
		return apperr.Conflict("drone is already claimed")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check active claim: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO claims (id, drone_id, user_id, user_email, start_time, end_time) VALUES (?, ?, ?, ?, ?, NULL)`,
		claim.ID,
		claim.DroneID,
		claim.UserID,
		claim.UserEmail,
		claim.StartTime,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return apperr.Conflict("drone is already claimed")
		}
		return fmt.Errorf("failed to create claim: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit claim: %w", err)
	}

	return nil
}

// Close releases a claim by setting its end time
func (r *claimRepository) Close(ctx context.Context, id string, endTime time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE claims SET end_time = ? WHERE id = ? AND end_time IS NULL`,
		endTime, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to close claim: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// ListByDrone retrieves claim history for a drone, newest first
func (r *claimRepository) ListByDrone(ctx context.Context, droneID string, limit int) ([]models.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE drone_id = ? ORDER BY start_time DESC LIMIT ?`
	return r.list(ctx, query, droneID, limit)
}

// ListByUser retrieves claim history for a user, newest first
func (r *claimRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE user_id = ? ORDER BY start_time DESC LIMIT ?`
	return r.list(ctx, query, userID, limit)
}

func (r *claimRepository) list(ctx context.Context, query string, key string, limit int) ([]models.Claim, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, query, key, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query claims: %w", err)
	}
	defer rows.Close()

	var claims []models.Claim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan claim: %w", err)
		}
		claims = append(claims, *claim)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating claims: %w", err)
	}

	return claims, nil
}
