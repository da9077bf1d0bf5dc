package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/markdave123-py/healthsense/internal/models"
)

var _ userStore = &userStoreMock{}

type userStoreMock struct {
	CreateFunc        func(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.User, error)

	calls struct {
		Create []struct {
			Email        string
			PasswordHash string
		}
	}
	lockCreate sync.RWMutex
}

func (mock *userStoreMock) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	if mock.CreateFunc == nil {
		panic("userStoreMock.CreateFunc: method is nil but userStore.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Email        string
		PasswordHash string
	}{Email: email, PasswordHash: passwordHash})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, email, passwordHash)
}

func (mock *userStoreMock) CreateCalls() []struct {
	Email        string
	PasswordHash string
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *userStoreMock) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userStoreMock.GetByEmailFunc: method is nil but userStore.GetByEmail was just called")
	}
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userStoreMock.GetByIDFunc: method is nil but userStore.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userStoreMock) UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userStoreMock.UpdateProfileFunc: method is nil but userStore.UpdateProfile was just called")
	}
	return mock.UpdateProfileFunc(ctx, id, upd)
}

var _ accountDeleter = &accountDeleterMock{}

type accountDeleterMock struct {
	DeleteAccountFunc func(ctx context.Context, userID uuid.UUID) error
}

func (mock *accountDeleterMock) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteAccountFunc == nil {
		panic("accountDeleterMock.DeleteAccountFunc: method is nil but accountDeleter.DeleteAccount was just called")
	}
	return mock.DeleteAccountFunc(ctx, userID)
}

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateFunc func(userID uuid.UUID) (string, error)
}

func (mock *tokenIssuerMock) Generate(userID uuid.UUID) (string, error) {
	if mock.GenerateFunc == nil {
		panic("tokenIssuerMock.GenerateFunc: method is nil but tokenIssuer.Generate was just called")
	}
	return mock.GenerateFunc(userID)
}

// chatStoreMock keeps turns in memory and honours the newest-first contract.
type chatStoreMock struct {
	mu    sync.Mutex
	turns []models.ChatMessage
	err   error
}

func (m *chatStoreMock) Save(_ context.Context, userID uuid.UUID, role, content string) (*models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	msg := models.ChatMessage{ID: uuid.New(), UserID: userID, Role: role, Content: content, CreatedAt: time.Now()}
	m.turns = append(m.turns, msg)
	return &msg, nil
}

func (m *chatStoreMock) ListRecent(_ context.Context, userID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.ChatMessage
	for i := len(m.turns) - 1; i >= 0 && len(out) < limit; i-- {
		if m.turns[i].UserID == userID {
			out = append(out, m.turns[i])
		}
	}
	return out, nil
}

var _ narrator = &narratorMock{}

type narratorMock struct {
	WeeklyNarrativeFunc func(ctx context.Context, rules models.RuleInsights) (string, error)
	ChatReplyFunc       func(ctx context.Context, message, healthContext string, memory []models.ChatMessage) (string, error)
}

func (mock *narratorMock) WeeklyNarrative(ctx context.Context, rules models.RuleInsights) (string, error) {
	if mock.WeeklyNarrativeFunc == nil {
		panic("narratorMock.WeeklyNarrativeFunc: method is nil but narrator.WeeklyNarrative was just called")
	}
	return mock.WeeklyNarrativeFunc(ctx, rules)
}

func (mock *narratorMock) ChatReply(ctx context.Context, message, healthContext string, memory []models.ChatMessage) (string, error) {
	if mock.ChatReplyFunc == nil {
		panic("narratorMock.ChatReplyFunc: method is nil but narrator.ChatReply was just called")
	}
	return mock.ChatReplyFunc(ctx, message, healthContext, memory)
}

var _ weeklyAggregator = &aggregatorMock{}

type aggregatorMock struct {
	WeeklyFunc func(ctx context.Context, userID uuid.UUID, now time.Time) (models.WeeklySummary, error)
}

func (mock *aggregatorMock) Weekly(ctx context.Context, userID uuid.UUID, now time.Time) (models.WeeklySummary, error) {
	if mock.WeeklyFunc == nil {
		panic("aggregatorMock.WeeklyFunc: method is nil but weeklyAggregator.Weekly was just called")
	}
	return mock.WeeklyFunc(ctx, userID, now)
}

type llmMock struct {
	GenerateFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

func (mock *llmMock) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return mock.GenerateFunc(ctx, systemPrompt, userPrompt)
}
