package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skyfleet/drone-ops/models"
)

// AuditRepository handles audit log persistence. The log is
// append-only: there is deliberately no update or delete operation.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	List(ctx context.Context, filter AuditFilter) ([]models.AuditLogEntry, error)
}

// AuditFilter narrows an audit log listing. Zero values match everything.
type AuditFilter struct {
	EntityType string
	EntityID   string
	Limit      int
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	query := `
		INSERT INTO audit_log (id, entity_type, entity_id, action, user_id, user_email, timestamp, previous_values, new_values, details)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.EntityType,
		entry.EntityID,
		entry.Action,
		entry.UserID,
		entry.UserEmail,
		entry.Timestamp,
		entry.PreviousValues,
		entry.NewValues,
		entry.Details,
	)

	return err
}

// List retrieves audit log entries matching the filter, newest first
func (r *sqliteAuditRepository) List(ctx context.Context, filter AuditFilter) ([]models.AuditLogEntry, error) {
	query := `
		SELECT id, entity_type, entity_id, action, user_id, user_email, timestamp, previous_values, new_values, details
		FROM audit_log
	`

	var clauses []string
	var args []interface{}
	if filter.EntityType != "" {
		clauses = append(clauses, "entity_type = ?")
		args = append(args, filter.EntityType)
	}
	if filter.EntityID != "" {
		clauses = append(clauses, "entity_id = ?")
		args = append(args, filter.EntityID)
	}

	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " ORDER BY timestamp DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditLogEntry
	for rows.Next() {
		var entry models.AuditLogEntry
		err := rows.Scan(
			&entry.ID,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Action,
			&entry.UserID,
			&entry.UserEmail,
			&entry.Timestamp,
			&entry.PreviousValues,
			&entry.NewValues,
			&entry.Details,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, nil
}
