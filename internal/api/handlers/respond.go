package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	middleware "github.com/markdave123-py/healthsense/internal/api/middlewares"
	"github.com/markdave123-py/healthsense/internal/models"
)

type detailResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// handleError maps the shared sentinels to status codes. Anything unrecognised
// is logged and reported as 500 without leaking the cause.
func handleError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, validationDetail(verr))
	case errors.Is(err, models.ErrValidation):
		writeError(w, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, models.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, models.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "Already exists")
	case errors.Is(err, models.ErrAIUnavailable):
		log.Warn("ai unavailable", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "AI service is temporarily unavailable")
	default:
		log.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func validationDetail(verr *models.ValidationError) string {
	parts := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return models.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// currentUser reads the id placed by the JWT middleware. Routes using it are
// always mounted behind that middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
	}
	return id, ok
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id: must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
