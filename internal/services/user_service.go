package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/markdave123-py/healthsense/internal/core/auth"
	"github.com/markdave123-py/healthsense/internal/models"
)

type userStore interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.User, error)
}

type accountDeleter interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type tokenIssuer interface {
	Generate(userID uuid.UUID) (string, error)
}

type UserService struct {
	users    userStore
	accounts accountDeleter
	tokens   tokenIssuer
	log      *zap.Logger
}

func NewUserService(users userStore, accounts accountDeleter, tokens tokenIssuer, logger *zap.Logger) *UserService {
	return &UserService{
		users:    users,
		accounts: accounts,
		tokens:   tokens,
		log:      logger.With(zap.String("service", "user")),
	}
}

// Register creates the account and returns an access token for it.
func (s *UserService) Register(ctx context.Context, in models.Credentials) (string, error) {
	in.Email = normalizeEmail(in.Email)
	if err := in.Validate(); err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return "", err
	}

	u, err := s.users.Create(ctx, in.Email, hash)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			s.log.Info("register rejected, email taken", zap.String("email", in.Email))
		}
		return "", fmt.Errorf("register: %w", err)
	}

	s.log.Info("new user registered", zap.String("email", u.Email), zap.Stringer("user_id", u.ID))
	return s.tokens.Generate(u.ID)
}

// Login never tells an unknown email apart from a wrong password.
func (s *UserService) Login(ctx context.Context, in models.Credentials) (string, error) {
	email := normalizeEmail(in.Email)

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", models.ErrUnauthorized
		}
		return "", fmt.Errorf("login: %w", err)
	}
	if !auth.CheckPassword(u.PasswordHash, in.Password) {
		return "", models.ErrUnauthorized
	}

	s.log.Info("user logged in", zap.String("email", u.Email))
	return s.tokens.Generate(u.ID)
}

func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.User, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, err
	}
	if !upd.IsEmpty() {
		s.log.Info("user profile updated", zap.String("email", u.Email))
	}
	return u, nil
}

func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.accounts.DeleteAccount(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	s.log.Info("user account deleted", zap.Stringer("user_id", userID))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
