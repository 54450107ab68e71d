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

// TaskRepository interface defines task database operations
type TaskRepository interface {
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	ListByAssignee(ctx context.Context, assigneeID string) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}

// taskRepository implements TaskRepository interface
type taskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = "id, title, description, assignee_id, status, due_date, created_by, created_at, modified_at"

func scanTask(row interface{ Scan(...interface{}) error }) (*models.Task, error) {
	var task models.Task
	var status string
	var assigneeID sql.NullString
	var dueDate sql.NullTime
	var modifiedAt sql.NullTime

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&assigneeID,
		&status,
		&dueDate,
		&task.CreatedBy,
		&task.CreatedAt,
		&modifiedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Status = models.TaskStatus(status)

	if assigneeID.Valid {
		task.AssigneeID = assigneeID.String
	}
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	if modifiedAt.Valid {
		task.ModifiedAt = &modifiedAt.Time
	}

	return &task, nil
}

// GetAll retrieves all tasks, newest first
func (r *taskRepository) GetAll(ctx context.Context) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// GetByID retrieves a task by ID
func (r *taskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("task %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// ListByAssignee retrieves tasks assigned to a roster member
func (r *taskRepository) ListByAssignee(ctx context.Context, assigneeID string) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE assignee_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, assigneeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by assignee: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func collectTasks(rows *sql.Rows) ([]models.Task, error) {
	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

// Create creates a new task
func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	if task.Status == "" {
		task.Status = models.TaskStatusOpen
	}

	var assignee interface{}
	if task.AssigneeID != "" {
		assignee = task.AssigneeID
	}

	query := `
		INSERT INTO tasks (id, title, description, assignee_id, status, due_date, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		assignee,
		string(task.Status),
		task.DueDate,
		task.CreatedBy,
		task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// Update updates an existing task
func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	var assignee interface{}
	if task.AssigneeID != "" {
		assignee = task.AssigneeID
	}

	now := time.Now()

	query := `
		UPDATE tasks
		SET title = ?, description = ?, assignee_id = ?, status = ?, due_date = ?, modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		assignee,
		string(task.Status),
		task.DueDate,
		now,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("task %s not found", task.ID)
	}

	task.ModifiedAt = &now
	return nil
}

// Delete deletes a task by ID
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("task %s not found", id)
	}

	return nil
}
