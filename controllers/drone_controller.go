package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/services"
	"github.com/skyfleet/drone-ops/userctx"
)

// DroneController handles drone inventory requests
type DroneController struct {
	services *services.Services
}

// NewDroneController creates a new drone controller
func NewDroneController(services *services.Services) *DroneController {
	return &DroneController{
		services: services,
	}
}

// Index handles GET /api/drones
func (c *DroneController) Index(w http.ResponseWriter, r *http.Request) {
	includeDeleted := r.URL.Query().Get("include_deleted") == "true"

	drones, err := c.services.Drones.GetAll(r.Context(), includeDeleted)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, drones)
}

// Show handles GET /api/drones/{id}
func (c *DroneController) Show(w http.ResponseWriter, r *http.Request) {
	drone, err := c.services.Drones.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, drone)
}

// Create handles POST /api/drones
func (c *DroneController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.DroneForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	drone, err := c.services.Drones.Create(r.Context(), &form, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, drone)
}

// Update handles PUT /api/drones/{id}
func (c *DroneController) Update(w http.ResponseWriter, r *http.Request) {
	var form models.DroneForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	drone, err := c.services.Drones.Update(r.Context(), chi.URLParam(r, "id"), &form, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, drone)
}

// Delete handles DELETE /api/drones/{id} (soft delete)
func (c *DroneController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.services.Drones.Delete(r.Context(), chi.URLParam(r, "id"), userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Restore handles POST /api/drones/{id}/restore
func (c *DroneController) Restore(w http.ResponseWriter, r *http.Request) {
	err := c.services.Drones.Restore(r.Context(), chi.URLParam(r, "id"), userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}
