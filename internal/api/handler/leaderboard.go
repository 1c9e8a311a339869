package handler

import (
	"net/http"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/middleware"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/response"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/leaderboard"
)

// LeaderboardHandler handles the leaderboard endpoint
type LeaderboardHandler struct {
	leaderboardService *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// Get handles GET /api/v1/leaderboard
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	entries, err := h.leaderboardService.Ranking(r.Context(), principal.UserID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, entries)
}
