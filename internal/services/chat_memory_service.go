package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/markdave123-py/healthsense/internal/models"
)

// MaxMemory is how many past turns are replayed to the model.
const MaxMemory = 10

type chatStore interface {
	Save(ctx context.Context, userID uuid.UUID, role, content string) (*models.ChatMessage, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatMessage, error)
}

type ChatMemoryService struct {
	store chatStore
}

func NewChatMemoryService(store chatStore) *ChatMemoryService {
	return &ChatMemoryService{store: store}
}

func (s *ChatMemoryService) Save(ctx context.Context, userID uuid.UUID, role, content string) error {
	if _, err := s.store.Save(ctx, userID, role, content); err != nil {
		return fmt.Errorf("save %s turn: %w", role, err)
	}
	return nil
}

// Recent returns up to MaxMemory of the newest turns, oldest first.
func (s *ChatMemoryService) Recent(ctx context.Context, userID uuid.UUID) ([]models.ChatMessage, error) {
	msgs, err := s.store.ListRecent(ctx, userID, MaxMemory)
	if err != nil {
		return nil, fmt.Errorf("recent turns: %w", err)
	}
	slices.Reverse(msgs)
	return msgs, nil
}
