package models

import (
	"time"
)

// ChecklistPhase says when in the flight cycle a checklist applies.
type ChecklistPhase string

const (
	ChecklistPhasePreflight   ChecklistPhase = "preflight"
	ChecklistPhasePostflight  ChecklistPhase = "postflight"
	ChecklistPhaseMaintenance ChecklistPhase = "maintenance"
)

// ChecklistTemplate is an ordered procedure checklist. Templates are
// soft-deleted so completed runs referencing them stay resolvable.
type ChecklistTemplate struct {
	ID        string         `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	Phase     ChecklistPhase `json:"phase" db:"phase"`
	Items     []string       `json:"items" db:"items"`
	IsDeleted bool           `json:"is_deleted" db:"is_deleted"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	AuditFields
}

// ChecklistTemplateForm represents form data for creating/updating checklist templates
type ChecklistTemplateForm struct {
	Name  string   `json:"name"`
	Phase string   `json:"phase"`
	Items []string `json:"items"`
}

// Validate validates the checklist template form data
func (f *ChecklistTemplateForm) Validate() []string {
	var errors []string

	if f.Name == "" {
		errors = append(errors, "Name is required")
	}

	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	switch ChecklistPhase(f.Phase) {
	case ChecklistPhasePreflight, ChecklistPhasePostflight, ChecklistPhaseMaintenance:
	default:
		errors = append(errors, "Phase must be one of: preflight, postflight, maintenance")
	}

	if len(f.Items) == 0 {
		errors = append(errors, "At least one checklist item is required")
	}

	for _, item := range f.Items {
		if item == "" {
			errors = append(errors, "Checklist items must not be empty")
			break
		}
	}

	return errors
}
