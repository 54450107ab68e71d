package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/skyfleet/drone-ops/apperr"
	"github.com/skyfleet/drone-ops/services"
)

// writeJSON renders a JSON response with the provided status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, "Failed to encode response: "+err.Error(), http.StatusInternalServerError)
		}
	}
}

// writeError renders an error as JSON, mapping its kind to a status code
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
}

// decodeJSON parses a JSON request body into v
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Invalid("invalid request body: %s", err.Error())
	}
	return nil
}

// Controllers holds all controller instances
type Controllers struct {
	Auth       *AuthController
	Users      *UserController
	Drones     *DroneController
	Claims     *ClaimController
	Flights    *FlightLogController
	Checklists *ChecklistController
	Tasks      *TaskController
	Audit      *AuditController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, jwtSecret string) *Controllers {
	return &Controllers{
		Auth:       NewAuthController(services, jwtSecret),
		Users:      NewUserController(services),
		Drones:     NewDroneController(services),
		Claims:     NewClaimController(services),
		Flights:    NewFlightLogController(services),
		Checklists: NewChecklistController(services),
		Tasks:      NewTaskController(services),
		Audit:      NewAuditController(services),
	}
}
