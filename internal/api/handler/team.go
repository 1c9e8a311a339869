package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/middleware"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/request"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/response"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/team"
)

// TeamHandler handles the roster endpoints
type TeamHandler struct {
	teamManager *team.Manager
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamManager *team.Manager) *TeamHandler {
	return &TeamHandler{
		teamManager: teamManager,
	}
}

// Get handles GET /api/v1/team
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	view, err := h.teamManager.GetTeam(r.Context(), principal.UserID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromView(view))
}

// AddPlayer handles POST /api/v1/team/players
func (h *TeamHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	var req request.AddTeamPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID <= 0 {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	view, err := h.teamManager.AddPlayer(r.Context(), principal.UserID, model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromView(view))
}

// RemovePlayer handles DELETE /api/v1/team/players/{id}
func (h *TeamHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	id, err := playerIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.teamManager.RemovePlayer(r.Context(), principal.UserID, id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromView(view))
}

// Budget handles GET /api/v1/budget
func (h *TeamHandler) Budget(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	budget, err := h.teamManager.GetBudget(r.Context(), principal.UserID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BudgetFromView(budget))
}
