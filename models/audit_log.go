package models

import "time"

// Audit actions form a fixed vocabulary so the log can be filtered
// without free-text matching.
const (
	AuditActionCreate              = "create"
	AuditActionEdit                = "edit"
	AuditActionDelete              = "delete"
	AuditActionRestore             = "restore"
	AuditActionRelease             = "release"
	AuditActionAdminOverride       = "admin_override"
	AuditActionAdminOverrideEnd    = "admin_override_end"
	AuditActionAdminOverrideCreate = "admin_override_create"
	AuditActionAssign              = "assign"
	AuditActionStatusChange        = "status_change"
)

// Entity types recorded in the audit log.
const (
	EntityTypeUser              = "user"
	EntityTypeDrone             = "drone"
	EntityTypeDroneClaim        = "droneClaim"
	EntityTypeFlightLog         = "flightLog"
	EntityTypeChecklistTemplate = "checklistTemplate"
	EntityTypeTask              = "task"
)

// AuditLogEntry records who did what to which entity and when. Entries
// are append-only; nothing in the application mutates or deletes them.
type AuditLogEntry struct {
	ID             string    `json:"id"`
	EntityType     string    `json:"entity_type"`
	EntityID       string    `json:"entity_id"`
	Action         string    `json:"action"`
	UserID         string    `json:"user_id"`
	UserEmail      string    `json:"user_email"`
	Timestamp      time.Time `json:"timestamp"`
	PreviousValues string    `json:"previous_values,omitempty"`
	NewValues      string    `json:"new_values,omitempty"`
	Details        string    `json:"details,omitempty"`
}
