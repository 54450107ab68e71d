package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skyfleet/drone-ops/apperr"
	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/userctx"
)

// ChecklistRepository interface defines checklist template database operations
type ChecklistRepository interface {
	GetAll(ctx context.Context, includeDeleted bool) ([]models.ChecklistTemplate, error)
	GetByID(ctx context.Context, id string) (*models.ChecklistTemplate, error)
	Create(ctx context.Context, tmpl *models.ChecklistTemplate) error
	Update(ctx context.Context, tmpl *models.ChecklistTemplate) error
	SetDeleted(ctx context.Context, id string, deleted bool) error
}

// checklistRepository implements ChecklistRepository interface
type checklistRepository struct {
	db *sql.DB
}

// NewChecklistRepository creates a new checklist repository
func NewChecklistRepository(db *sql.DB) ChecklistRepository {
	return &checklistRepository{db: db}
}

const checklistColumns = `id, name, phase, items, is_deleted, created_at, created_by,
	       modified_by, modified_at`

func scanChecklist(row interface{ Scan(...interface{}) error }) (*models.ChecklistTemplate, error) {
	var tmpl models.ChecklistTemplate
	var phase string
	var itemsJSON string
	var modifiedBy sql.NullString
	var modifiedAt sql.NullTime

	err := row.Scan(
		&tmpl.ID,
		&tmpl.Name,
		&phase,
		&itemsJSON,
		&tmpl.IsDeleted,
		&tmpl.CreatedAt,
		&tmpl.CreatedBy,
		&modifiedBy,
		&modifiedAt,
	)
	if err != nil {
		return nil, err
	}

	tmpl.Phase = models.ChecklistPhase(phase)

	if err := json.Unmarshal([]byte(itemsJSON), &tmpl.Items); err != nil {
		return nil, fmt.Errorf("failed to decode checklist items: %w", err)
	}

	if modifiedBy.Valid {
		tmpl.ModifiedBy = modifiedBy.String
	}
	if modifiedAt.Valid {
		tmpl.ModifiedAt = &modifiedAt.Time
	}

	return &tmpl, nil
}

// GetAll retrieves checklist templates. Soft-deleted templates are
// excluded unless includeDeleted is set.
func (r *checklistRepository) GetAll(ctx context.Context, includeDeleted bool) ([]models.ChecklistTemplate, error) {
	query := `SELECT ` + checklistColumns + ` FROM checklist_templates`
	if !includeDeleted {
		query += ` WHERE is_deleted = 0`
	}
	query += ` ORDER BY phase ASC, name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query checklist templates: %w", err)
	}
	defer rows.Close()

	var templates []models.ChecklistTemplate
	for rows.Next() {
		tmpl, err := scanChecklist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist template: %w", err)
		}
		templates = append(templates, *tmpl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checklist templates: %w", err)
	}

	return templates, nil
}

// GetByID retrieves a checklist template by ID, including soft-deleted ones.
func (r *checklistRepository) GetByID(ctx context.Context, id string) (*models.ChecklistTemplate, error) {
	query := `SELECT ` + checklistColumns + ` FROM checklist_templates WHERE id = ?`

	tmpl, err := scanChecklist(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("checklist template %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist template: %w", err)
	}

	return tmpl, nil
}

// Create creates a new checklist template
func (r *checklistRepository) Create(ctx context.Context, tmpl *models.ChecklistTemplate) error {
	if tmpl.ID == "" {
		tmpl.ID = uuid.NewString()
	}
	if tmpl.CreatedAt.IsZero() {
		tmpl.CreatedAt = time.Now()
	}

	itemsJSON, err := json.Marshal(tmpl.Items)
	if err != nil {
		return fmt.Errorf("failed to encode checklist items: %w", err)
	}

	// Get user from context
	userEmail := userctx.GetUserEmail(ctx)

	query := `
		INSERT INTO checklist_templates (id, name, phase, items, is_deleted, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		tmpl.ID,
		tmpl.Name,
		string(tmpl.Phase),
		string(itemsJSON),
		tmpl.IsDeleted,
		tmpl.CreatedAt,
		userEmail,
	)
	if err != nil {
		return fmt.Errorf("failed to create checklist template: %w", err)
	}

	tmpl.CreatedBy = userEmail
	return nil
}

// Update updates an existing checklist template
func (r *checklistRepository) Update(ctx context.Context, tmpl *models.ChecklistTemplate) error {
	itemsJSON, err := json.Marshal(tmpl.Items)
	if err != nil {
		return fmt.Errorf("failed to encode checklist items: %w", err)
	}

	// Get user from context
	userEmail := userctx.GetUserEmail(ctx)
	now := time.Now()

	query := `
		UPDATE checklist_templates
		SET name = ?, phase = ?, items = ?, modified_by = ?, modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		tmpl.Name,
		string(tmpl.Phase),
		string(itemsJSON),
		userEmail,
		now,
		tmpl.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update checklist template: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("checklist template %s not found", tmpl.ID)
	}

	tmpl.ModifiedBy = userEmail
	tmpl.ModifiedAt = &now
	return nil
}

// SetDeleted sets or clears the soft-delete marker
func (r *checklistRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	query := `
		UPDATE checklist_templates
		SET is_deleted = ?, modified_by = ?, modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, deleted, userctx.GetUserEmail(ctx), time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update checklist delete marker: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("checklist template %s not found", id)
	}

	return nil
}
