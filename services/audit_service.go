package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/skyfleet/drone-ops/apperr"
	"github.com/skyfleet/drone-ops/authz"
	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/repositories"
)

// AuditService appends to and reads the audit trail.
type AuditService interface {
	// Record appends an audit entry best-effort. A failed append is
	// logged and suppressed; it never fails the operation being audited.
	Record(ctx context.Context, entry *models.AuditLogEntry)
	List(ctx context.Context, filter repositories.AuditFilter, actor authz.Actor) ([]models.AuditLogEntry, error)
}

// auditService implements AuditService interface
type auditService struct {
	auditRepo repositories.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// Record appends an audit entry. Errors are logged, never propagated,
// so a logging outage cannot block an operational transition.
func (s *auditService) Record(ctx context.Context, entry *models.AuditLogEntry) {
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("Failed to create audit log entry (%s %s %s): %v",
			entry.EntityType, entry.EntityID, entry.Action, err)
	}
}

// List retrieves audit entries for managers and admins
func (s *auditService) List(ctx context.Context, filter repositories.AuditFilter, actor authz.Actor) ([]models.AuditLogEntry, error) {
	if !authz.CanViewAuditLog(actor.Role) {
		return nil, apperr.PermissionDenied("insufficient permissions to view the audit log")
	}
	return s.auditRepo.List(ctx, filter)
}

// snapshot serializes an entity for a before/after audit snapshot.
// Returns the empty string when serialization fails; a snapshot is
// advisory and must not fail the audited operation.
func snapshot(v interface{}) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
