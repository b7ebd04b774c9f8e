// Package auth orchestrates registration and login: uniqueness checks,
// credential hashing, persistence, and token issuance.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintrack/fintrack/pkg/domain"
	"github.com/fintrack/fintrack/pkg/dto"
	"github.com/fintrack/fintrack/pkg/password"
	"github.com/fintrack/fintrack/pkg/repository"
	"github.com/fintrack/fintrack/pkg/token"
	"github.com/google/uuid"
)

// dummyHash is compared against when login hits an unknown username so the
// request costs one bcrypt comparison either way.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Result is what a successful register or login hands back to the handler.
type Result struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	AccessToken string    `json:"accessToken"`
}

type Service struct {
	users  repository.UserRepository
	hasher *password.Hasher
	tokens *token.Service
	logger *slog.Logger
}

func New(
	users repository.UserRepository,
	hasher *password.Hasher,
	tokens *token.Service,
	logger *slog.Logger,
) *Service {
	return &Service{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new user and issues a token for it.
//
// Uniqueness is pre-checked for a user-facing conflict error; the checks
// are not atomic with the insert, so a duplicate-key failure at insert
// time is re-resolved to the same conflict error instead of surfacing as
// an internal failure.
func (s *Service) Register(
	ctx context.Context,
	username, email, plainPassword string,
) (*Result, error) {
	log := s.logger.With("context", "Register", "username", username)
	log.Debug("Register called")

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		log.Error("Register failed", "error", err)
		return nil, err
	}

	id := uuid.New()
	err = s.users.Create(ctx, dto.UserCreate{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Lost the race between the pre-check and the insert. Probe which
		// column conflicted so the client still sees the right 409.
		return nil, s.resolveConflict(ctx, username)
	}
	if err != nil {
		log.Error("Register failed", "error", err)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	accessToken, err := s.tokens.Issue(token.Payload{ID: id, Username: username, Email: email})
	if err != nil {
		log.Error("Register failed", "error", err)
		return nil, err
	}
	log.Info("Register successful", "userID", id)
	return &Result{ID: id, Username: username, Email: email, AccessToken: accessToken}, nil
}

func (s *Service) resolveConflict(ctx context.Context, username string) error {
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return domain.ErrUsernameTaken
	}
	return domain.ErrEmailRegistered
}

// Login verifies credentials and issues a token. Unknown username and
// wrong password both fail with domain.ErrInvalidCredentials so the
// response never reveals which one was wrong.
func (s *Service) Login(
	ctx context.Context,
	username, plainPassword string,
) (*Result, error) {
	log := s.logger.With("context", "Login", "username", username)
	log.Debug("Login called")

	u, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		// Burn a comparison anyway to keep timing flat.
		_, _ = s.hasher.Verify(plainPassword, dummyHash)
		log.Warn("Login failed", "error", domain.ErrInvalidCredentials)
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	ok, err := s.hasher.Verify(plainPassword, u.PasswordHash)
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	if !ok {
		log.Warn("Login failed", "error", domain.ErrInvalidCredentials)
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(token.Payload{ID: u.ID, Username: u.Username, Email: u.Email})
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	log.Info("Login successful", "userID", u.ID)
	return &Result{ID: u.ID, Username: u.Username, Email: u.Email, AccessToken: accessToken}, nil
}

// CurrentUser resolves verified token claims to the stored user record.
// Used by the auth middleware after signature and expiry have been checked.
func (s *Service) CurrentUser(ctx context.Context, p *token.Payload) (*dto.UserRead, error) {
	u, err := s.users.GetByID(ctx, p.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolving user: %w", err)
	}
	return u, nil
}
