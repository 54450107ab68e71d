package models

import (
	"time"
)

// FlightLog records a single flight of a drone by a pilot.
type FlightLog struct {
	ID        string    `json:"id" db:"id"`
	DroneID   string    `json:"drone_id" db:"drone_id"`
	PilotID   string    `json:"pilot_id" db:"pilot_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	EndTime   time.Time `json:"end_time" db:"end_time"`
	Location  string    `json:"location" db:"location"`
	Purpose   string    `json:"purpose" db:"purpose"`
	Notes     string    `json:"notes" db:"notes"`
	Incident  bool      `json:"incident" db:"incident"`
	CreatedBy string    `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DurationMinutes returns the flight duration in whole minutes.
func (f *FlightLog) DurationMinutes() int {
	return int(f.EndTime.Sub(f.StartTime).Minutes())
}

// FlightLogForm represents form data for creating/updating flight logs
type FlightLogForm struct {
	DroneID   string    `json:"drone_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Location  string    `json:"location"`
	Purpose   string    `json:"purpose"`
	Notes     string    `json:"notes"`
	Incident  bool      `json:"incident"`
}

// Validate validates the flight log form data
func (f *FlightLogForm) Validate() []string {
	var errors []string

	if f.DroneID == "" {
		errors = append(errors, "Drone is required")
	}

	if f.StartTime.IsZero() {
		errors = append(errors, "Start time is required")
	}

	if f.EndTime.IsZero() {
		errors = append(errors, "End time is required")
	}

	if !f.StartTime.IsZero() && !f.EndTime.IsZero() && f.EndTime.Before(f.StartTime) {
		errors = append(errors, "End time must not be before start time")
	}

	if len(f.Location) > 200 {
		errors = append(errors, "Location must be less than 200 characters")
	}

	return errors
}
