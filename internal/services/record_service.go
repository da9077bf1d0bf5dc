package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/markdave123-py/healthsense/internal/models"
)

type recordStore[T any, In any] interface {
	Create(ctx context.Context, userID uuid.UUID, in In) (*T, error)
	ListByUser(ctx context.Context, userID uuid.UUID, w models.Window) ([]T, error)
	Update(ctx context.Context, userID, id uuid.UUID, in In) (*T, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (*T, error)
}

type validatable interface {
	Validate() error
}

// RecordService is the CRUD surface shared by the four health-record kinds.
// Every call is scoped to the calling user.
type RecordService[T any, In validatable] struct {
	store  recordStore[T, In]
	log    *zap.Logger
	entity string
	label  func(*T) string
}

// NewRecordService builds the service for one kind; label names a record in logs.
func NewRecordService[T any, In validatable](store recordStore[T, In], entity string, label func(*T) string, logger *zap.Logger) *RecordService[T, In] {
	return &RecordService[T, In]{
		store:  store,
		log:    logger.With(zap.String("service", entity)),
		entity: entity,
		label:  label,
	}
}

func (s *RecordService[T, In]) Create(ctx context.Context, userID uuid.UUID, in In) (*T, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec, err := s.store.Create(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	s.log.Info("new "+s.entity+" entry", zap.String("entry", s.label(rec)))
	return rec, nil
}

// List returns every record the user owns, newest first.
func (s *RecordService[T, In]) List(ctx context.Context, userID uuid.UUID) ([]T, error) {
	recs, err := s.store.ListByUser(ctx, userID, models.Window{})
	if err != nil {
		return nil, err
	}
	s.log.Debug("fetched "+s.entity+" entries", zap.Int("count", len(recs)))
	return recs, nil
}

func (s *RecordService[T, In]) Update(ctx context.Context, userID, id uuid.UUID, in In) (*T, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec, err := s.store.Update(ctx, userID, id, in)
	if err != nil {
		s.logMiss("update", id, err)
		return nil, err
	}
	s.log.Info("updated "+s.entity, zap.Stringer("id", id), zap.String("entry", s.label(rec)))
	return rec, nil
}

// Delete returns the removed record so callers can name it.
func (s *RecordService[T, In]) Delete(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	rec, err := s.store.Delete(ctx, userID, id)
	if err != nil {
		s.logMiss("delete", id, err)
		return nil, err
	}
	s.log.Info("deleted "+s.entity, zap.Stringer("id", id), zap.String("entry", s.label(rec)))
	return rec, nil
}

func (s *RecordService[T, In]) logMiss(op string, id uuid.UUID, err error) {
	if errors.Is(err, models.ErrNotFound) {
		s.log.Warn(op+" failed, "+s.entity+" not found", zap.Stringer("id", id))
	}
}
