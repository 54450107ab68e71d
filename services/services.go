package services

import (
	"github.com/skyfleet/drone-ops/repositories"
)

// Services holds all service instances
type Services struct {
	Users      UserService
	Drones     DroneService
	Claims     ClaimService
	Flights    FlightLogService
	Checklists ChecklistService
	Tasks      TaskService
	Audit      AuditService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	audit := NewAuditService(repos.Audit)

	return &Services{
		Users:      NewUserService(repos.Users),
		Drones:     NewDroneService(repos.Drones, repos.Claims, audit),
		Claims:     NewClaimService(repos.Claims, repos.Drones, repos.Users, audit),
		Flights:    NewFlightLogService(repos.Flights, repos.Drones, audit),
		Checklists: NewChecklistService(repos.Checklists, audit),
		Tasks:      NewTaskService(repos.Tasks, repos.Users, audit),
		Audit:      audit,
	}
}
