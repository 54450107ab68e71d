package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/skyfleet/drone-ops/apperr"
	"github.com/skyfleet/drone-ops/authz"
	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/repositories"
)

// TaskService interface defines task assignment business logic.
// Managers and admins create and assign tasks; assignees move their own
// tasks through the status lifecycle.
type TaskService interface {
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	ListByAssignee(ctx context.Context, assigneeID string) ([]models.Task, error)
	Create(ctx context.Context, form *models.TaskForm, actor authz.Actor) (*models.Task, error)
	Update(ctx context.Context, id string, form *models.TaskForm, actor authz.Actor) (*models.Task, error)
	SetStatus(ctx context.Context, id, status string, actor authz.Actor) (*models.Task, error)
	Delete(ctx context.Context, id string, actor authz.Actor) error
}

// taskService implements TaskService interface
type taskService struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
	audit    AuditService
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository, audit AuditService) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		audit:    audit,
	}
}

// GetAll retrieves all tasks
func (s *taskService) GetAll(ctx context.Context) ([]models.Task, error) {
	return s.taskRepo.GetAll(ctx)
}

// GetByID retrieves a task by ID
func (s *taskService) GetByID(ctx context.Context, id string) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

// ListByAssignee retrieves tasks assigned to a roster member
func (s *taskService) ListByAssignee(ctx context.Context, assigneeID string) ([]models.Task, error) {
	return s.taskRepo.ListByAssignee(ctx, assigneeID)
}

// Create creates a new task, optionally assigned
func (s *taskService) Create(ctx context.Context, form *models.TaskForm, actor authz.Actor) (*models.Task, error) {
	if !authz.CanAssignTasks(actor.Role) {
		return nil, apperr.PermissionDenied("insufficient permissions to create tasks")
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, apperr.Invalid("validation failed: %s", strings.Join(errors, ", "))
	}

	if form.AssigneeID != "" {
		if _, err := s.userRepo.GetByID(ctx, form.AssigneeID); err != nil {
			return nil, err
		}
	}

	task := &models.Task{
		Title:       strings.TrimSpace(form.Title),
		Description: form.Description,
		AssigneeID:  form.AssigneeID,
		DueDate:     form.DueDate,
		CreatedBy:   actor.ID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	action := models.AuditActionCreate
	if task.AssigneeID != "" {
		action = models.AuditActionAssign
	}
	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType: models.EntityTypeTask,
		EntityID:   task.ID,
		Action:     action,
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		NewValues:  snapshot(task),
		Details:    fmt.Sprintf("Created task %q", task.Title),
	})

	return task, nil
}

// Update edits a task's fields and assignment
func (s *taskService) Update(ctx context.Context, id string, form *models.TaskForm, actor authz.Actor) (*models.Task, error) {
	if !authz.CanAssignTasks(actor.Role) {
		return nil, apperr.PermissionDenied("insufficient permissions to edit tasks")
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, apperr.Invalid("validation failed: %s", strings.Join(errors, ", "))
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if form.AssigneeID != "" && form.AssigneeID != task.AssigneeID {
		if _, err := s.userRepo.GetByID(ctx, form.AssigneeID); err != nil {
			return nil, err
		}
	}

	before := snapshot(task)
	reassigned := form.AssigneeID != task.AssigneeID

	task.Title = strings.TrimSpace(form.Title)
	task.Description = form.Description
	task.AssigneeID = form.AssigneeID
	task.DueDate = form.DueDate

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	action := models.AuditActionEdit
	if reassigned {
		action = models.AuditActionAssign
	}
	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType:     models.EntityTypeTask,
		EntityID:       task.ID,
		Action:         action,
		UserID:         actor.ID,
		UserEmail:      actor.Email,
		PreviousValues: before,
		NewValues:      snapshot(task),
		Details:        fmt.Sprintf("Updated task %q", task.Title),
	})

	return task, nil
}

// SetStatus moves a task through its lifecycle. Assignees may update
// their own tasks; managers and admins may update any.
func (s *taskService) SetStatus(ctx context.Context, id, status string, actor authz.Actor) (*models.Task, error) {
	if !models.ValidTaskStatus(status) {
		return nil, apperr.Invalid("unknown task status: %s", status)
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if task.AssigneeID != actor.ID && !authz.CanAssignTasks(actor.Role) {
		return nil, apperr.PermissionDenied("can only update your own tasks")
	}

	if task.Status == models.TaskStatusDone || task.Status == models.TaskStatusCancelled {
		return nil, apperr.InvalidState("task is already %s", task.Status)
	}

	before := snapshot(task)
	task.Status = models.TaskStatus(status)

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType:     models.EntityTypeTask,
		EntityID:       task.ID,
		Action:         models.AuditActionStatusChange,
		UserID:         actor.ID,
		UserEmail:      actor.Email,
		PreviousValues: before,
		NewValues:      snapshot(task),
		Details:        fmt.Sprintf("Task %q moved to %s", task.Title, task.Status),
	})

	return task, nil
}

// Delete removes a task
func (s *taskService) Delete(ctx context.Context, id string, actor authz.Actor) error {
	if !authz.CanAssignTasks(actor.Role) {
		return apperr.PermissionDenied("insufficient permissions to delete tasks")
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType:     models.EntityTypeTask,
		EntityID:       task.ID,
		Action:         models.AuditActionDelete,
		UserID:         actor.ID,
		UserEmail:      actor.Email,
		PreviousValues: snapshot(task),
		Details:        fmt.Sprintf("Deleted task %q", task.Title),
	})

	return nil
}
