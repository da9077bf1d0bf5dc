package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db  dbPinger
	log *zap.Logger
}

func NewHealthHandler(db dbPinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: logger}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Healthz pings the database: 200 when reachable, 503 otherwise.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("database ping failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "down", Database: "unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "connected"})
}
