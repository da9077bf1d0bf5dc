package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/markdave123-py/healthsense/internal/models"
)

type userService interface {
	Register(ctx context.Context, in models.Credentials) (string, error)
	Login(ctx context.Context, in models.Credentials) (string, error)
	Profile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type AuthHandler struct {
	users userService
	log   *zap.Logger
}

func NewAuthHandler(users userService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, log: logger}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.Credentials
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	token, err := h.users.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.Credentials
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	token, err := h.users.Login(r.Context(), req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	u, err := h.users.Profile(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// UpdateProfile applies only the fields present in the body.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var upd models.ProfileUpdate
	if err := decodeJSON(r, &upd); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.users.UpdateProfile(r.Context(), userID, upd)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *AuthHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.users.DeleteAccount(r.Context(), userID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Account deleted successfully"})
}
