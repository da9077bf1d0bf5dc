package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/markdave123-py/healthsense/internal/models"
)

type recordService[T any, In any] interface {
	Create(ctx context.Context, userID uuid.UUID, in In) (*T, error)
	List(ctx context.Context, userID uuid.UUID) ([]T, error)
	Update(ctx context.Context, userID, id uuid.UUID, in In) (*T, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (*T, error)
}

// RecordKind names one record type in responses.
type RecordKind[T any] struct {
	NotFound string
	Deleted  func(*T) string
}

var (
	SymptomKind = RecordKind[models.Symptom]{
		NotFound: "Symptom not found",
		Deleted: func(s *models.Symptom) string {
			return fmt.Sprintf("Symptom '%s' deleted successfully.", s.SymptomName)
		},
	}
	MedicationKind = RecordKind[models.Medication]{
		NotFound: "Medication not found",
		Deleted: func(m *models.Medication) string {
			return fmt.Sprintf("Medication '%s' deleted successfully.", m.MedicineName)
		},
	}
	DietKind = RecordKind[models.Diet]{
		NotFound: "Diet entry not found",
		Deleted:  func(d *models.Diet) string { return fmt.Sprintf("Diet entry '%s' deleted successfully.", d.MealType) },
	}
	LifestyleKind = RecordKind[models.Lifestyle]{
		NotFound: "Lifestyle entry not found",
		Deleted:  func(*models.Lifestyle) string { return "Lifestyle entry deleted successfully." },
	}
)

// RecordHandler serves the create/list/update/delete routes of one record kind.
type RecordHandler[T any, In any] struct {
	svc  recordService[T, In]
	kind RecordKind[T]
	log  *zap.Logger
}

func NewRecordHandler[T any, In any](svc recordService[T, In], kind RecordKind[T], logger *zap.Logger) *RecordHandler[T, In] {
	return &RecordHandler[T, In]{svc: svc, kind: kind, log: logger}
}

// Routes mounts POST /, GET /me, PUT /{id} and DELETE /{id}.
func (h *RecordHandler[T, In]) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/me", h.List)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *RecordHandler[T, In]) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var in In
	if err := decodeJSON(r, &in); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Create(r.Context(), userID, in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *RecordHandler[T, In]) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	recs, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (h *RecordHandler[T, In]) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in In
	if err := decodeJSON(r, &in); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Update(r.Context(), userID, id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *RecordHandler[T, In]) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Delete(r.Context(), userID, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: h.kind.Deleted(rec)})
}

func (h *RecordHandler[T, In]) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, h.kind.NotFound)
		return
	}
	handleError(w, r, h.log, err)
}
