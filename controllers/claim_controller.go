package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/services"
	"github.com/skyfleet/drone-ops/userctx"
)

// ClaimController handles drone claim workflow requests
type ClaimController struct {
	services *services.Services
}

// NewClaimController creates a new claim controller
func NewClaimController(services *services.Services) *ClaimController {
	return &ClaimController{
		services: services,
	}
}

// claimView decorates a claim with its formatted duration for display.
type claimView struct {
	models.Claim
	Duration string `json:"duration"`
}

func newClaimView(claim models.Claim) claimView {
	return claimView{
		Claim:    claim,
		Duration: services.FormatClaimDuration(claim.StartTime, claim.EndTime),
	}
}

// Claim handles POST /api/drones/{id}/claim
func (c *ClaimController) Claim(w http.ResponseWriter, r *http.Request) {
	claimID, err := c.services.Claims.Claim(r.Context(), chi.URLParam(r, "id"), userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"claim_id": claimID})
}

// Release handles POST /api/claims/{id}/release
func (c *ClaimController) Release(w http.ResponseWriter, r *http.Request) {
	err := c.services.Claims.Release(r.Context(), chi.URLParam(r, "id"), userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "released"})
}

// Override handles POST /api/drones/{id}/claim/override. An empty or
// missing new_user_id only force-closes the current claim.
func (c *ClaimController) Override(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NewUserID string `json:"new_user_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	claimID, err := c.services.Claims.AdminOverride(r.Context(), chi.URLParam(r, "id"), req.NewUserID, userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]interface{}{"claim_id": nil}
	if claimID != "" {
		resp["claim_id"] = claimID
	}
	writeJSON(w, http.StatusOK, resp)
}

// Active handles GET /api/drones/{id}/claim
func (c *ClaimController) Active(w http.ResponseWriter, r *http.Request) {
	claim, err := c.services.Claims.GetActiveClaim(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	if claim == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	writeJSON(w, http.StatusOK, newClaimView(*claim))
}

// Claimable handles GET /api/drones/{id}/claimable
func (c *ClaimController) Claimable(w http.ResponseWriter, r *http.Request) {
	claimable, err := c.services.Claims.IsClaimable(r.Context(), chi.URLParam(r, "id"), userctx.Actor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"claimable": claimable})
}

// History handles GET /api/drones/{id}/claims
func (c *ClaimController) History(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	claims, err := c.services.Claims.ClaimHistory(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]claimView, 0, len(claims))
	for _, claim := range claims {
		views = append(views, newClaimView(claim))
	}

	writeJSON(w, http.StatusOK, views)
}
