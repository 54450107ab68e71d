package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/services"
	"github.com/skyfleet/drone-ops/userctx"
)

// ChecklistController handles checklist template requests
type ChecklistController struct {
	services *services.Services
}

// NewChecklistController creates a new checklist controller
func NewChecklistController(services *services.Services) *ChecklistController {
	return &ChecklistController{
		services: services,
	}
}

// Index handles GET /api/checklists
func (c *ChecklistController) Index(w http.ResponseWriter, r *http.Request) {
	includeDeleted := r.URL.Query().Get("include_deleted") == "true"

	templates, err := c.services.Checklists.GetAll(r.Context(), includeDeleted)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, templates)
}

// Show handles GET /api/checklists/{id}
func (c *ChecklistController) Show(w http.ResponseWriter, r *http.Request) {
	tmpl, err := c.services.Checklists.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tmpl)
}

// Create handles POST /api/checklists
func (c *ChecklistController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.ChecklistTemplateForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	tmpl, err := c.services.Checklists.Create(r.Context(), &form, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tmpl)
}

// Update handles PUT /api/checklists/{id}
func (c *ChecklistController) Update(w http.ResponseWriter, r *http.Request) {
	var form models.ChecklistTemplateForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	tmpl, err := c.services.Checklists.Update(r.Context(), chi.URLParam(r, "id"), &form, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tmpl)
}

// Delete handles DELETE /api/checklists/{id} (soft delete)
func (c *ChecklistController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.services.Checklists.Delete(r.Context(), chi.URLParam(r, "id"), userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Restore handles POST /api/checklists/{id}/restore
func (c *ChecklistController) Restore(w http.ResponseWriter, r *http.Request) {
	err := c.services.Checklists.Restore(r.Context(), chi.URLParam(r, "id"), userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}
