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

// FlightLogService interface defines flight logging business logic.
// Any authenticated roster member logs their own flights; editing
// someone else's entry requires manager or admin.
type FlightLogService interface {
	GetByID(ctx context.Context, id string) (*models.FlightLog, error)
	ListByDrone(ctx context.Context, droneID string, limit int) ([]models.FlightLog, error)
	ListByPilot(ctx context.Context, pilotID string, limit int) ([]models.FlightLog, error)
	Create(ctx context.Context, form *models.FlightLogForm, actor authz.Actor) (*models.FlightLog, error)
	Update(ctx context.Context, id string, form *models.FlightLogForm, actor authz.Actor) (*models.FlightLog, error)
	Delete(ctx context.Context, id string, actor authz.Actor) error
}

// flightLogService implements FlightLogService interface
type flightLogService struct {
	flightRepo repositories.FlightLogRepository
	droneRepo  repositories.DroneRepository
	audit      AuditService
}

// NewFlightLogService creates a new flight log service
func NewFlightLogService(flightRepo repositories.FlightLogRepository, droneRepo repositories.DroneRepository, audit AuditService) FlightLogService {
	return &flightLogService{
		flightRepo: flightRepo,
		droneRepo:  droneRepo,
		audit:      audit,
	}
}

// GetByID retrieves a flight log entry by ID
func (s *flightLogService) GetByID(ctx context.Context, id string) (*models.FlightLog, error) {
	return s.flightRepo.GetByID(ctx, id)
}

// ListByDrone retrieves flight logs for a drone
func (s *flightLogService) ListByDrone(ctx context.Context, droneID string, limit int) ([]models.FlightLog, error) {
	return s.flightRepo.ListByDrone(ctx, droneID, limit)
}

// ListByPilot retrieves flight logs for a pilot
func (s *flightLogService) ListByPilot(ctx context.Context, pilotID string, limit int) ([]models.FlightLog, error) {
	return s.flightRepo.ListByPilot(ctx, pilotID, limit)
}

// Create logs a flight flown by the acting user
func (s *flightLogService) Create(ctx context.Context, form *models.FlightLogForm, actor authz.Actor) (*models.FlightLog, error) {
	if !actor.Role.Valid() {
		return nil, apperr.PermissionDenied("authentication required to log flights")
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, apperr.Invalid("validation failed: %s", strings.Join(errors, ", "))
	}

	drone, err := s.droneRepo.GetByID(ctx, form.DroneID)
	if err != nil {
		return nil, err
	}
	if drone.IsDeleted {
		return nil, apperr.InvalidState("cannot log a flight for a deleted drone")
	}

	entry := &models.FlightLog{
		DroneID:   form.DroneID,
		PilotID:   actor.ID,
		StartTime: form.StartTime,
		EndTime:   form.EndTime,
		Location:  strings.TrimSpace(form.Location),
		Purpose:   strings.TrimSpace(form.Purpose),
		Notes:     form.Notes,
		Incident:  form.Incident,
		CreatedBy: actor.ID,
	}

	if err := s.flightRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create flight log: %w", err)
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType: models.EntityTypeFlightLog,
		EntityID:   entry.ID,
		Action:     models.AuditActionCreate,
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		NewValues:  snapshot(entry),
		Details:    fmt.Sprintf("Logged %dm flight on drone %s", entry.DurationMinutes(), drone.Name),
	})

	return entry, nil
}

// Update updates a flight log entry
func (s *flightLogService) Update(ctx context.Context, id string, form *models.FlightLogForm, actor authz.Actor) (*models.FlightLog, error) {
	if errors := form.Validate(); len(errors) > 0 {
		return nil, apperr.Invalid("validation failed: %s", strings.Join(errors, ", "))
	}

	entry, err := s.flightRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if entry.PilotID != actor.ID && !authz.CanManageDrones(actor.Role) {
		return nil, apperr.PermissionDenied("can only edit your own flight logs")
	}

	before := snapshot(entry)

	entry.StartTime = form.StartTime
	entry.EndTime = form.EndTime
	entry.Location = strings.TrimSpace(form.Location)
	entry.Purpose = strings.TrimSpace(form.Purpose)
	entry.Notes = form.Notes
	entry.Incident = form.Incident

	if err := s.flightRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update flight log: %w", err)
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType:     models.EntityTypeFlightLog,
		EntityID:       entry.ID,
		Action:         models.AuditActionEdit,
		UserID:         actor.ID,
		UserEmail:      actor.Email,
		PreviousValues: before,
		NewValues:      snapshot(entry),
		Details:        "Edited flight log",
	})

	return entry, nil
}

// Delete removes a flight log entry
func (s *flightLogService) Delete(ctx context.Context, id string, actor authz.Actor) error {
	entry, err := s.flightRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if entry.PilotID != actor.ID && !authz.CanManageDrones(actor.Role) {
		return apperr.PermissionDenied("can only delete your own flight logs")
	}

	if err := s.flightRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType:     models.EntityTypeFlightLog,
		EntityID:       entry.ID,
		Action:         models.AuditActionDelete,
		UserID:         actor.ID,
		UserEmail:      actor.Email,
		PreviousValues: snapshot(entry),
		Details:        "Deleted flight log",
	})

	return nil
}
