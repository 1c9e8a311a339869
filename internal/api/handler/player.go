package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/response"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/catalog"
)

// PlayerHandler handles the user-facing catalog endpoints
type PlayerHandler struct {
	catalogService *catalog.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(catalogService *catalog.Service) *PlayerHandler {
	return &PlayerHandler{
		catalogService: catalogService,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.catalogService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModels(players))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := playerIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.catalogService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// playerIDFromPath parses the {id} path variable
func playerIDFromPath(r *http.Request) (model.PlayerID, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, NewInvalidRequestError("invalid player id")
	}
	return model.PlayerID(id), nil
}
