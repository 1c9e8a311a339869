package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/request"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/response"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/catalog"
)

// AdminHandler handles the admin catalog endpoints
type AdminHandler struct {
	catalogService *catalog.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalogService *catalog.Service) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
	}
}

// ListPlayers handles GET /api/v1/admin/players
func (h *AdminHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.catalogService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.AdminPlayer, len(players))
	for i, p := range players {
		out[i] = response.AdminPlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, out)
}

// CreatePlayer handles POST /api/v1/admin/players
func (h *AdminHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	category, err := parseCategory(req.Category)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.catalogService.Create(r.Context(), catalog.CreateParams{
		Name:       req.Name,
		University: req.University,
		Category:   category,
		Runs:       req.Runs,
		Wickets:    req.Wickets,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AdminPlayerFromModel(player))
}

// UpdatePlayer handles PATCH /api/v1/admin/players/{id}
func (h *AdminHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := playerIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	params := catalog.UpdateParams{
		Name:       req.Name,
		University: req.University,
		Runs:       req.Runs,
		Wickets:    req.Wickets,
	}
	if req.Category != nil {
		category, err := parseCategory(*req.Category)
		if err != nil {
			WriteError(w, err)
			return
		}
		params.Category = &category
	}

	player, err := h.catalogService.Update(r.Context(), id, params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AdminPlayerFromModel(player))
}

// DeletePlayer handles DELETE /api/v1/admin/players/{id}
func (h *AdminHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := playerIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Summary handles GET /api/v1/admin/summary
func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.catalogService.TournamentSummary(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SummaryFromView(summary))
}

// parseCategory validates a category string
func parseCategory(raw string) (model.Category, error) {
	switch model.Category(raw) {
	case model.CategoryBatsman, model.CategoryBowler, model.CategoryAllRounder:
		return model.Category(raw), nil
	default:
		return "", NewInvalidRequestError("category must be one of Batsman, Bowler, All-Rounder")
	}
}
