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

// ChecklistService interface defines checklist template business logic
type ChecklistService interface {
	GetAll(ctx context.Context, includeDeleted bool) ([]models.ChecklistTemplate, error)
	GetByID(ctx context.Context, id string) (*models.ChecklistTemplate, error)
	Create(ctx context.Context, form *models.ChecklistTemplateForm, actor authz.Actor) (*models.ChecklistTemplate, error)
	Update(ctx context.Context, id string, form *models.ChecklistTemplateForm, actor authz.Actor) (*models.ChecklistTemplate, error)
	Delete(ctx context.Context, id string, actor authz.Actor) error
	Restore(ctx context.Context, id string, actor authz.Actor) error
}

// checklistService implements ChecklistService interface
type checklistService struct {
	checklistRepo repositories.ChecklistRepository
	audit         AuditService
}

// NewChecklistService creates a new checklist service
func NewChecklistService(checklistRepo repositories.ChecklistRepository, audit AuditService) ChecklistService {
	return &checklistService{
		checklistRepo: checklistRepo,
		audit:         audit,
	}
}

// GetAll retrieves checklist templates
func (s *checklistService) GetAll(ctx context.Context, includeDeleted bool) ([]models.ChecklistTemplate, error) {
	return s.checklistRepo.GetAll(ctx, includeDeleted)
}

// GetByID retrieves a checklist template by ID
func (s *checklistService) GetByID(ctx context.Context, id string) (*models.ChecklistTemplate, error) {
	return s.checklistRepo.GetByID(ctx, id)
}

// Create creates a new checklist template
func (s *checklistService) Create(ctx context.Context, form *models.ChecklistTemplateForm, actor authz.Actor) (*models.ChecklistTemplate, error) {
	if !authz.CanManageDrones(actor.Role) {
		return nil, apperr.PermissionDenied("insufficient permissions to manage checklists")
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, apperr.Invalid("validation failed: %s", strings.Join(errors, ", "))
	}

	tmpl := &models.ChecklistTemplate{
		Name:  strings.TrimSpace(form.Name),
		Phase: models.ChecklistPhase(form.Phase),
		Items: form.Items,
	}

	if err := s.checklistRepo.Create(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("failed to create checklist template: %w", err)
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType: models.EntityTypeChecklistTemplate,
		EntityID:   tmpl.ID,
		Action:     models.AuditActionCreate,
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		NewValues:  snapshot(tmpl),
		Details:    fmt.Sprintf("Added %s checklist %s", tmpl.Phase, tmpl.Name),
	})

	return tmpl, nil
}

// Update updates an existing checklist template
func (s *checklistService) Update(ctx context.Context, id string, form *models.ChecklistTemplateForm, actor authz.Actor) (*models.ChecklistTemplate, error) {
	if !authz.CanManageDrones(actor.Role) {
		return nil, apperr.PermissionDenied("insufficient permissions to manage checklists")
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, apperr.Invalid("validation failed: %s", strings.Join(errors, ", "))
	}

	tmpl, err := s.checklistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if tmpl.IsDeleted {
		return nil, apperr.InvalidState("cannot edit a deleted checklist template")
	}

	before := snapshot(tmpl)

	tmpl.Name = strings.TrimSpace(form.Name)
	tmpl.Phase = models.ChecklistPhase(form.Phase)
	tmpl.Items = form.Items

	if err := s.checklistRepo.Update(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("failed to update checklist template: %w", err)
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType:     models.EntityTypeChecklistTemplate,
		EntityID:       tmpl.ID,
		Action:         models.AuditActionEdit,
		UserID:         actor.ID,
		UserEmail:      actor.Email,
		PreviousValues: before,
		NewValues:      snapshot(tmpl),
		Details:        fmt.Sprintf("Edited checklist %s", tmpl.Name),
	})

	return tmpl, nil
}

// Delete soft-deletes a checklist template
func (s *checklistService) Delete(ctx context.Context, id string, actor authz.Actor) error {
	if !authz.CanManageDrones(actor.Role) {
		return apperr.PermissionDenied("insufficient permissions to manage checklists")
	}

	tmpl, err := s.checklistRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if tmpl.IsDeleted {
		return apperr.InvalidState("checklist template is already deleted")
	}

	if err := s.checklistRepo.SetDeleted(ctx, id, true); err != nil {
		return err
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType:     models.EntityTypeChecklistTemplate,
		EntityID:       tmpl.ID,
		Action:         models.AuditActionDelete,
		UserID:         actor.ID,
		UserEmail:      actor.Email,
		PreviousValues: snapshot(tmpl),
		Details:        fmt.Sprintf("Deleted checklist %s", tmpl.Name),
	})

	return nil
}

// Restore clears the soft-delete marker on a checklist template
func (s *checklistService) Restore(ctx context.Context, id string, actor authz.Actor) error {
	if !authz.CanManageDrones(actor.Role) {
		return apperr.PermissionDenied("insufficient permissions to manage checklists")
	}

	tmpl, err := s.checklistRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !tmpl.IsDeleted {
		return apperr.InvalidState("checklist template is not deleted")
	}

	if err := s.checklistRepo.SetDeleted(ctx, id, false); err != nil {
		return err
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType: models.EntityTypeChecklistTemplate,
		EntityID:   tmpl.ID,
		Action:     models.AuditActionRestore,
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		Details:    fmt.Sprintf("Restored checklist %s", tmpl.Name),
	})

	return nil
}
