package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/services"
	"github.com/skyfleet/drone-ops/userctx"
)

// FlightLogController handles flight log requests
type FlightLogController struct {
	services *services.Services
}

// NewFlightLogController creates a new flight log controller
func NewFlightLogController(services *services.Services) *FlightLogController {
	return &FlightLogController{
		services: services,
	}
}

// Show handles GET /api/flights/{id}
func (c *FlightLogController) Show(w http.ResponseWriter, r *http.Request) {
	entry, err := c.services.Flights.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// ByDrone handles GET /api/drones/{id}/flights
func (c *FlightLogController) ByDrone(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := c.services.Flights.ListByDrone(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Mine handles GET /api/flights/mine
func (c *FlightLogController) Mine(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := c.services.Flights.ListByPilot(r.Context(), userctx.GetUserID(r.Context()), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Create handles POST /api/flights
func (c *FlightLogController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.FlightLogForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	entry, err := c.services.Flights.Create(r.Context(), &form, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// Update handles PUT /api/flights/{id}
func (c *FlightLogController) Update(w http.ResponseWriter, r *http.Request) {
	var form models.FlightLogForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	entry, err := c.services.Flights.Update(r.Context(), chi.URLParam(r, "id"), &form, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/flights/{id}
func (c *FlightLogController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.services.Flights.Delete(r.Context(), chi.URLParam(r, "id"), userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
