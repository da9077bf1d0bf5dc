package db

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/markdave123-py/healthsense/internal/models"
)

var chatColumns = []string{"id", "user_id", "role", "content", "created_at"}

type ChatStore struct {
	pool Pool
}

func NewChatStore(pool Pool) *ChatStore {
	return &ChatStore{pool: pool}
}

func (s *ChatStore) Save(ctx context.Context, userID uuid.UUID, role, content string) (*models.ChatMessage, error) {
	id := uuid.New()
	query, args, err := psql.Insert("chat_messages").
		Columns("id", "user_id", "role", "content").
		Values(id, userID, role, content).
		Suffix("RETURNING " + joinColumns(chatColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert chat message: %w", err)
	}

	var m models.ChatMessage
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, s.pool), &m, query, args...); err != nil {
		return nil, mapError(err, "chat message", id)
	}
	return &m, nil
}

// ListRecent returns at most limit turns, newest first. Turns written in the same
// instant are ordered by insertion sequence.
func (s *ChatStore) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	query, args, err := psql.Select(chatColumns...).
		From("chat_messages").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "seq DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list chat messages: %w", err)
	}

	var out []models.ChatMessage
	if err := pgxscan.Select(ctx, QuerierFromCtx(ctx, s.pool), &out, query, args...); err != nil {
		return nil, mapError(err, "chat messages for user", userID)
	}
	return out, nil
}
