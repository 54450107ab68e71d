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

// DroneService interface defines drone inventory business logic
type DroneService interface {
	GetAll(ctx context.Context, includeDeleted bool) ([]models.Drone, error)
	GetByID(ctx context.Context, id string) (*models.Drone, error)
	Create(ctx context.Context, form *models.DroneForm, actor authz.Actor) (*models.Drone, error)
	Update(ctx context.Context, id string, form *models.DroneForm, actor authz.Actor) (*models.Drone, error)
	Delete(ctx context.Context, id string, actor authz.Actor) error
	Restore(ctx context.Context, id string, actor authz.Actor) error
}

// droneService implements DroneService interface
type droneService struct {
	droneRepo repositories.DroneRepository
	claimRepo repositories.ClaimRepository
	audit     AuditService
}

// NewDroneService creates a new drone service
func NewDroneService(droneRepo repositories.DroneRepository, claimRepo repositories.ClaimRepository, audit AuditService) DroneService {
	return &droneService{
		droneRepo: droneRepo,
		claimRepo: claimRepo,
		audit:     audit,
	}
}

// GetAll retrieves the drone inventory
func (s *droneService) GetAll(ctx context.Context, includeDeleted bool) ([]models.Drone, error) {
	return s.droneRepo.GetAll(ctx, includeDeleted)
}

// GetByID retrieves a drone by ID
func (s *droneService) GetByID(ctx context.Context, id string) (*models.Drone, error) {
	return s.droneRepo.GetByID(ctx, id)
}

// Create adds a new drone to the inventory
func (s *droneService) Create(ctx context.Context, form *models.DroneForm, actor authz.Actor) (*models.Drone, error) {
	if !authz.CanManageDrones(actor.Role) {
		return nil, apperr.PermissionDenied("insufficient permissions to manage drones")
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, apperr.Invalid("validation failed: %s", strings.Join(errors, ", "))
	}

	// Check for duplicate serial number
	existing, err := s.droneRepo.GetBySerial(ctx, form.Serial)
	if err == nil && existing != nil {
		return nil, apperr.Conflict("drone with serial %s already exists", form.Serial)
	}

	drone := &models.Drone{
		Name:      strings.TrimSpace(form.Name),
		Serial:    strings.TrimSpace(form.Serial),
		Model:     strings.TrimSpace(form.Model),
		Status:    models.DroneStatus(form.Status),
		Shareable: form.Shareable,
		Notes:     form.Notes,
	}

	if err := s.droneRepo.Create(ctx, drone); err != nil {
		return nil, fmt.Errorf("failed to create drone: %w", err)
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType: models.EntityTypeDrone,
		EntityID:   drone.ID,
		Action:     models.AuditActionCreate,
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		NewValues:  snapshot(drone),
		Details:    fmt.Sprintf("Added drone %s (%s)", drone.Name, drone.Serial),
	})

	return drone, nil
}

// Update updates an existing drone
func (s *droneService) Update(ctx context.Context, id string, form *models.DroneForm, actor authz.Actor) (*models.Drone, error) {
	if !authz.CanManageDrones(actor.Role) {
		return nil, apperr.PermissionDenied("insufficient permissions to manage drones")
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, apperr.Invalid("validation failed: %s", strings.Join(errors, ", "))
	}

	drone, err := s.droneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if drone.IsDeleted {
		return nil, apperr.InvalidState("cannot edit a deleted drone")
	}

	// Check for duplicate serial number when it changed
	if form.Serial != drone.Serial {
		existing, err := s.droneRepo.GetBySerial(ctx, form.Serial)
		if err == nil && existing != nil && existing.ID != id {
			return nil, apperr.Conflict("drone with serial %s already exists", form.Serial)
		}
	}

	before := snapshot(drone)

	drone.Name = strings.TrimSpace(form.Name)
	drone.Serial = strings.TrimSpace(form.Serial)
	drone.Model = strings.TrimSpace(form.Model)
	drone.Status = models.DroneStatus(form.Status)
	drone.Shareable = form.Shareable
	drone.Notes = form.Notes

	if err := s.droneRepo.Update(ctx, drone); err != nil {
		return nil, fmt.Errorf("failed to update drone: %w", err)
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType:     models.EntityTypeDrone,
		EntityID:       drone.ID,
		Action:         models.AuditActionEdit,
		UserID:         actor.ID,
		UserEmail:      actor.Email,
		PreviousValues: before,
		NewValues:      snapshot(drone),
		Details:        fmt.Sprintf("Edited drone %s", drone.Name),
	})

	return drone, nil
}

// Delete soft-deletes a drone. The drone must not have an active claim.
func (s *droneService) Delete(ctx context.Context, id string, actor authz.Actor) error {
	if !authz.CanManageDrones(actor.Role) {
		return apperr.PermissionDenied("insufficient permissions to manage drones")
	}

	drone, err := s.droneRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if drone.IsDeleted {
		return apperr.InvalidState("drone is already deleted")
	}

	active, err := s.claimRepo.GetActiveByDrone(ctx, id)
	if err != nil {
		return err
	}
	if active != nil {
		return apperr.InvalidState("cannot delete a drone with an active claim")
	}

	if err := s.droneRepo.SetDeleted(ctx, id, true); err != nil {
		return err
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType:     models.EntityTypeDrone,
		EntityID:       drone.ID,
		Action:         models.AuditActionDelete,
		UserID:         actor.ID,
		UserEmail:      actor.Email,
		PreviousValues: snapshot(drone),
		Details:        fmt.Sprintf("Deleted drone %s", drone.Name),
	})

	return nil
}

// Restore clears the soft-delete marker on a drone
func (s *droneService) Restore(ctx context.Context, id string, actor authz.Actor) error {
	if !authz.CanManageDrones(actor.Role) {
		return apperr.PermissionDenied("insufficient permissions to manage drones")
	}

	drone, err := s.droneRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !drone.IsDeleted {
		return apperr.InvalidState("drone is not deleted")
	}

	if err := s.droneRepo.SetDeleted(ctx, id, false); err != nil {
		return err
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType: models.EntityTypeDrone,
		EntityID:   drone.ID,
		Action:     models.AuditActionRestore,
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		Details:    fmt.Sprintf("Restored drone %s", drone.Name),
	})

	return nil
}
