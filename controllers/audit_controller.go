package controllers

import (
	"net/http"
	"strconv"

	"github.com/skyfleet/drone-ops/repositories"
	"github.com/skyfleet/drone-ops/services"
	"github.com/skyfleet/drone-ops/userctx"
)

// AuditController handles audit trail requests
type AuditController struct {
	services *services.Services
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services) *AuditController {
	return &AuditController{
		services: services,
	}
}

// Index handles GET /api/audit. Supports entity_type, entity_id and
// limit query parameters.
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	filter := repositories.AuditFilter{
		EntityType: r.URL.Query().Get("entity_type"),
		EntityID:   r.URL.Query().Get("entity_id"),
		Limit:      limit,
	}

	entries, err := c.services.Audit.List(r.Context(), filter, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
