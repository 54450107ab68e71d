package models

import (
	"time"
)

// TaskStatus represents the state of an assigned task.
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// Task is a unit of work assigned to a roster member.
type Task struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	AssigneeID  string     `json:"assignee_id,omitempty" db:"assignee_id"`
	Status      TaskStatus `json:"status" db:"status"`
	DueDate     *time.Time `json:"due_date,omitempty" db:"due_date"`
	CreatedBy   string     `json:"created_by" db:"created_by"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	ModifiedAt  *time.Time `json:"modified_at,omitempty" db:"modified_at"`
}

// TaskForm represents form data for creating/updating tasks
type TaskForm struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssigneeID  string     `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
}

// Validate validates the task form data
func (f *TaskForm) Validate() []string {
	var errors []string

	if f.Title == "" {
		errors = append(errors, "Title is required")
	}

	if len(f.Title) > 200 {
		errors = append(errors, "Title must be less than 200 characters")
	}

	return errors
}

// ValidTaskStatus reports whether s is a recognized task status.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusDone, TaskStatusCancelled:
		return true
	}
	return false
}
