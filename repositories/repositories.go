package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Users      UserRepository
	Drones     DroneRepository
	Claims     ClaimRepository
	Flights    FlightLogRepository
	Checklists ChecklistRepository
	Tasks      TaskRepository
	Audit      AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(db),
		Drones:     NewDroneRepository(db),
		Claims:     NewClaimRepository(db),
		Flights:    NewFlightLogRepository(db),
		Checklists: NewChecklistRepository(db),
		Tasks:      NewTaskRepository(db),
		Audit:      NewAuditRepository(db),
	}
}
