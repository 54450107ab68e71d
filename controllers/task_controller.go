package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/services"
	"github.com/skyfleet/drone-ops/userctx"
)

// TaskController handles task assignment requests
type TaskController struct {
	services *services.Services
}

// NewTaskController creates a new task controller
func NewTaskController(services *services.Services) *TaskController {
	return &TaskController{
		services: services,
	}
}

// Index handles GET /api/tasks
func (c *TaskController) Index(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.services.Tasks.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// Mine handles GET /api/tasks/mine
func (c *TaskController) Mine(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.services.Tasks.ListByAssignee(r.Context(), userctx.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// Show handles GET /api/tasks/{id}
func (c *TaskController) Show(w http.ResponseWriter, r *http.Request) {
	task, err := c.services.Tasks.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// Create handles POST /api/tasks
func (c *TaskController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.TaskForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	task, err := c.services.Tasks.Create(r.Context(), &form, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// Update handles PUT /api/tasks/{id}
func (c *TaskController) Update(w http.ResponseWriter, r *http.Request) {
	var form models.TaskForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	task, err := c.services.Tasks.Update(r.Context(), chi.URLParam(r, "id"), &form, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// SetStatus handles PUT /api/tasks/{id}/status
func (c *TaskController) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	task, err := c.services.Tasks.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}
func (c *TaskController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.services.Tasks.Delete(r.Context(), chi.URLParam(r, "id"), userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
