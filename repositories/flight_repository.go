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
)

// FlightLogRepository interface defines flight log database operations
type FlightLogRepository interface {
	GetByID(ctx context.Context, id string) (*models.FlightLog, error)
	ListByDrone(ctx context.Context, droneID string, limit int) ([]models.FlightLog, error)
	ListByPilot(ctx context.Context, pilotID string, limit int) ([]models.FlightLog, error)
	Create(ctx context.Context, entry *models.FlightLog) error
	Update(ctx context.Context, entry *models.FlightLog) error
	Delete(ctx context.Context, id string) error
}

// flightLogRepository implements FlightLogRepository interface
type flightLogRepository struct {
	db *sql.DB
}

// NewFlightLogRepository creates a new flight log repository
func NewFlightLogRepository(db *sql.DB) FlightLogRepository {
	return &flightLogRepository{db: db}
}

const flightLogColumns = `id, drone_id, pilot_id, start_time, end_time, location, purpose,
	       notes, incident, created_by, created_at`

func scanFlightLog(row interface{ Scan(...interface{}) error }) (*models.FlightLog, error) {
	var entry models.FlightLog
	err := row.Scan(
		&entry.ID,
		&entry.DroneID,
		&entry.PilotID,
		&entry.StartTime,
		&entry.EndTime,
		&entry.Location,
		&entry.Purpose,
		&entry.Notes,
		&entry.Incident,
		&entry.CreatedBy,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByID retrieves a flight log entry by ID
func (r *flightLogRepository) GetByID(ctx context.Context, id string) (*models.FlightLog, error) {
	query := `SELECT ` + flightLogColumns + ` FROM flight_logs WHERE id = ?`

	entry, err := scanFlightLog(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("flight log %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get flight log: %w", err)
	}

	return entry, nil
}

// ListByDrone retrieves flight logs for a drone, newest first
func (r *flightLogRepository) ListByDrone(ctx context.Context, droneID string, limit int) ([]models.FlightLog, error) {
	query := `SELECT ` + flightLogColumns + ` FROM flight_logs WHERE drone_id = ? ORDER BY start_time DESC LIMIT ?`
	return r.list(ctx, query, droneID, limit)
}

// ListByPilot retrieves flight logs for a pilot, newest first
func (r *flightLogRepository) ListByPilot(ctx context.Context, pilotID string, limit int) ([]models.FlightLog, error) {
	query := `SELECT ` + flightLogColumns + ` FROM flight_logs WHERE pilot_id = ? ORDER BY start_time DESC LIMIT ?`
	return r.list(ctx, query, pilotID, limit)
}

func (r *flightLogRepository) list(ctx context.Context, query string, key string, limit int) ([]models.FlightLog, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, query, key, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query flight logs: %w", err)
	}
	defer rows.Close()

	var entries []models.FlightLog
	for rows.Next() {
		entry, err := scanFlightLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight log: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating flight logs: %w", err)
	}

	return entries, nil
}

// Create creates a new flight log entry
func (r *flightLogRepository) Create(ctx context.Context, entry *models.FlightLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO flight_logs (id, drone_id, pilot_id, start_time, end_time, location, purpose, notes, incident, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.DroneID,
		entry.PilotID,
		entry.StartTime,
		entry.EndTime,
		entry.Location,
		entry.Purpose,
		entry.Notes,
		entry.Incident,
		entry.CreatedBy,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create flight log: %w", err)
	}

	return nil
}

// Update updates an existing flight log entry
func (r *flightLogRepository) Update(ctx context.Context, entry *models.FlightLog) error {
	query := `
		UPDATE flight_logs
		SET start_time = ?, end_time = ?, location = ?, purpose = ?, notes = ?, incident = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.StartTime,
		entry.EndTime,
		entry.Location,
		entry.Purpose,
		entry.Notes,
		entry.Incident,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update flight log: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("flight log %s not found", entry.ID)
	}

	return nil
}

// Delete deletes a flight log entry by ID
func (r *flightLogRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM flight_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete flight log: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("flight log %s not found", id)
	}

	return nil
}
