package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/middleware"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/request"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/response"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/suggest"
)

// ChatbotHandler handles the assistant endpoint
type ChatbotHandler struct {
	suggestService *suggest.Service
}

// NewChatbotHandler creates a new chatbot handler
func NewChatbotHandler(suggestService *suggest.Service) *ChatbotHandler {
	return &ChatbotHandler{
		suggestService: suggestService,
	}
}

// Ask handles POST /api/v1/chatbot
func (h *ChatbotHandler) Ask(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	var req request.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.suggestService.Ask(r.Context(), principal.UserID, req.Query)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ChatFromResult(result))
}
