package models

import (
	"time"
)

// DroneStatus represents the operational status of a drone.
type DroneStatus string

const (
	DroneStatusAvailable   DroneStatus = "available"
	DroneStatusMaintenance DroneStatus = "maintenance"
	DroneStatusRetired     DroneStatus = "retired"
)

// Drone represents an airframe in the unit's inventory.
// Shareable gates whether the drone participates in the claim workflow
// at all; IsDeleted is a soft-delete marker, deleted drones are hidden
// from listings but retained for flight-log history.
type Drone struct {
	ID        string      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Serial    string      `json:"serial" db:"serial"`
	Model     string      `json:"model" db:"model"`
	Status    DroneStatus `json:"status" db:"status"`
	Shareable bool        `json:"shareable" db:"shareable"`
	IsDeleted bool        `json:"is_deleted" db:"is_deleted"`
	Notes     string      `json:"notes" db:"notes"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	AuditFields
}

// DroneForm represents form data for creating/updating drones
type DroneForm struct {
	Name      string `json:"name"`
	Serial    string `json:"serial"`
	Model     string `json:"model"`
	Status    string `json:"status"`
	Shareable bool   `json:"shareable"`
	Notes     string `json:"notes"`
}

// Validate validates the drone form data
func (f *DroneForm) Validate() []string {
	var errors []string

	if f.Name == "" {
		errors = append(errors, "Name is required")
	}

	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	if f.Serial == "" {
		errors = append(errors, "Serial number is required")
	}

	if f.Status != "" {
		switch DroneStatus(f.Status) {
		case DroneStatusAvailable, DroneStatusMaintenance, DroneStatusRetired:
		default:
			errors = append(errors, "Status must be one of: available, maintenance, retired")
		}
	}

	return errors
}
