package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"prestige-backend/internal/models"
	"prestige-backend/internal/services"
)

type ChatHandler struct {
	chat *services.ChatService
}

func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// SendMessage runs one assistant exchange. While an exchange is in flight a
// second message gets a 409, matching the storefront disabling its input.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	resp, err := h.chat.HandleMessage(r.Context(), req.Message)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ChatHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": h.chat.Transcript()})
}

func (h *ChatHandler) ResetTranscript(w http.ResponseWriter, r *http.Request) {
	h.chat.Reset()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Conversation reset"})
}
