package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type chatService interface {
	Chat(ctx context.Context, userID uuid.UUID, message string) (string, error)
}

type ChatHandler struct {
	svc chatService
	log *zap.Logger
}

func NewChatHandler(svc chatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply      string `json:"reply"`
	Confidence string `json:"confidence"`
}

// Ask answers one message. The user turn is kept even when the model fails,
// in which case the client gets 503.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	reply, err := h.svc.Chat(r.Context(), userID, req.Message)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply, Confidence: "ai-assisted with memory"})
}
