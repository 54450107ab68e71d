package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skyfleet/drone-ops/apperr"
	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/userctx"
)

// DroneRepository interface defines drone inventory database operations
type DroneRepository interface {
	GetAll(ctx context.Context, includeDeleted bool) ([]models.Drone, error)
	GetByID(ctx context.Context, id string) (*models.Drone, error)
	GetBySerial(ctx context.Context, serial string) (*models.Drone, error)
	Create(ctx context.Context, drone *models.Drone) error
	Update(ctx context.Context, drone *models.Drone) error
	SetDeleted(ctx context.Context, id string, deleted bool) error
	Count(ctx context.Context) (int, error)
}

// droneRepository implements DroneRepository interface
type droneRepository struct {
	db *sql.DB
}

// NewDroneRepository creates a new drone repository
func NewDroneRepository(db *sql.DB) DroneRepository {
	return &droneRepository{db: db}
}

const droneColumns = `id, name, serial, model, status, shareable, is_deleted, notes,
	       created_at, created_by, modified_by, modified_at`

func scanDrone(row interface{ Scan(...interface{}) error }) (*models.Drone, error) {
	var drone models.Drone
	var status string
	var modifiedBy sql.NullString
	var modifiedAt sql.NullTime

	err := row.Scan(
		&drone.ID,
		&drone.Name,
		&drone.Serial,
		&drone.Model,
		&status,
		&drone.Shareable,
		&drone.IsDeleted,
		&drone.Notes,
		&drone.CreatedAt,
		&drone.CreatedBy,
		&modifiedBy,
		&modifiedAt,
	)
	if err != nil {
		return nil, err
	}

	drone.Status = models.DroneStatus(status)

	// Convert NULL values to empty string/nil
	if modifiedBy.Valid {
		drone.ModifiedBy = modifiedBy.String
	}
	if modifiedAt.Valid {
		drone.ModifiedAt = &modifiedAt.Time
	}

	return &drone, nil
}

// GetAll retrieves drones in the inventory. Soft-deleted drones are
// excluded unless includeDeleted is set.
func (r *droneRepository) GetAll(ctx context.Context, includeDeleted bool) ([]models.Drone, error) {
	query := `SELECT ` + droneColumns + ` FROM drones`
	if !includeDeleted {
		query += ` WHERE is_deleted = 0`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query drones: %w", err)
	}
	defer rows.Close()

	var drones []models.Drone
	for rows.Next() {
		drone, err := scanDrone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drone: %w", err)
		}
		drones = append(drones, *drone)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drones: %w", err)
	}

	return drones, nil
}

// GetByID retrieves a drone by ID, including soft-deleted ones.
func (r *droneRepository) GetByID(ctx context.Context, id string) (*models.Drone, error) {
	query := `SELECT ` + droneColumns + ` FROM drones WHERE id = ?`

	drone, err := scanDrone(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("drone %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get drone: %w", err)
	}

	return drone, nil
}

// GetBySerial retrieves a drone by serial number
func (r *droneRepository) GetBySerial(ctx context.Context, serial string) (*models.Drone, error) {
	query := `SELECT ` + droneColumns + ` FROM drones WHERE serial = ?`

	drone, err := scanDrone(r.db.QueryRowContext(ctx, query, serial))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("drone with serial %s not found", serial)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get drone by serial: %w", err)
	}

	return drone, nil
}

// Create creates a new drone
func (r *droneRepository) Create(ctx context.Context, drone *models.Drone) error {
	if drone.ID == "" {
		drone.ID = uuid.NewString()
	}
	if drone.CreatedAt.IsZero() {
		drone.CreatedAt = time.Now()
	}
	if drone.Status == "" {
		drone.Status = models.DroneStatusAvailable
	}

	// Get user from context
	userEmail := userctx.GetUserEmail(ctx)

	query := `
		INSERT INTO drones (id, name, serial, model, status, shareable, is_deleted, notes, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		drone.ID,
		drone.Name,
		drone.Serial,
		drone.Model,
		string(drone.Status),
		drone.Shareable,
		drone.IsDeleted,
		drone.Notes,
		drone.CreatedAt,
		userEmail,
	)
	if err != nil {
		return fmt.Errorf("failed to create drone: %w", err)
	}

	drone.CreatedBy = userEmail
	return nil
}

// Update updates an existing drone
func (r *droneRepository) Update(ctx context.Context, drone *models.Drone) error {
	query := `
		UPDATE drones
		SET name = ?, serial = ?, model = ?, status = ?, shareable = ?, notes = ?,
		    modified_by = ?, modified_at = ?
		WHERE id = ?
	`

	// Get user from context
	userEmail := userctx.GetUserEmail(ctx)
	now := time.Now()

	result, err := r.db.ExecContext(ctx, query,
		drone.Name,
		drone.Serial,
		drone.Model,
		string(drone.Status),
		drone.Shareable,
		drone.Notes,
		userEmail,
		now,
		drone.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update drone: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("drone %s not found", drone.ID)
	}

	drone.ModifiedBy = userEmail
	drone.ModifiedAt = &now
	return nil
}

// SetDeleted sets or clears the soft-delete marker
func (r *droneRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	query := `
		UPDATE drones
		SET is_deleted = ?, modified_by = ?, modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, deleted, userctx.GetUserEmail(ctx), time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update drone delete marker: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("drone %s not found", id)
	}

	return nil
}

// Count returns the number of non-deleted drones
func (r *droneRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drones WHERE is_deleted = 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count drones: %w", err)
	}

	return count, nil
}
