package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/services"
	"github.com/skyfleet/drone-ops/userctx"
)

// UserController handles roster management requests
type UserController struct {
	services *services.Services
}

// NewUserController creates a new user controller
func NewUserController(services *services.Services) *UserController {
	return &UserController{
		services: services,
	}
}

// Index handles GET /api/users
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.services.Users.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Show handles GET /api/users/{id}
func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	user, err := c.services.Users.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Me handles GET /api/users/me
func (c *UserController) Me(w http.ResponseWriter, r *http.Request) {
	user, err := c.services.Users.GetByID(r.Context(), userctx.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Create handles POST /api/users
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.UserForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	user, err := c.services.Users.Create(r.Context(), &form, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Update handles PUT /api/users/{id}
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	var form models.UserForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	user, err := c.services.Users.Update(r.Context(), chi.URLParam(r, "id"), &form, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Deactivate handles DELETE /api/users/{id}
func (c *UserController) Deactivate(w http.ResponseWriter, r *http.Request) {
	err := c.services.Users.Deactivate(r.Context(), chi.URLParam(r, "id"), userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// SetPassword handles PUT /api/users/{id}/password
func (c *UserController) SetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	err := c.services.Users.SetPassword(r.Context(), chi.URLParam(r, "id"), req.Password, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}
