package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/repo"
)

// SessionTTL is how long a sign-in stays valid. The admin panel re-checks the
// session on every tab change, so expiry is noticed promptly.
const SessionTTL = 24 * time.Hour

// AuthService implements email/password sign-in, session retrieval, and
// sign-out for the admin panel.
type AuthService struct {
	users    repo.UserRepo
	sessions repo.SessionRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewAuthService constructs an AuthService with its collaborators.
func NewAuthService(users repo.UserRepo, sessions repo.SessionRepo, log *slog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log, now: time.Now}
}

// Login verifies the credentials and opens a new session.
// Unknown email and wrong password both map to domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, fmt.Errorf("service.AuthService.Login: %w", domain.ErrInvalidCredentials)
		}
		return domain.Session{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.Login: %w", domain.ErrInvalidCredentials)
	}

	session := domain.Session{
		Token:     uuid.New(),
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: s.now().Add(SessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}

	s.log.InfoContext(ctx, "admin signed in", "email", user.Email)
	return session, nil
}

// Session returns the live session for a token.
// Unknown and expired tokens both map to domain.ErrNoSession.
func (s *AuthService) Session(ctx context.Context, token uuid.UUID) (domain.Session, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, fmt.Errorf("service.AuthService.Session: %w", domain.ErrNoSession)
		}
		return domain.Session{}, fmt.Errorf("service.AuthService.Session: %w", err)
	}
	if session.Expired(s.now()) {
		// Best effort cleanup; an expired row left behind is harmless.
		_ = s.sessions.Delete(ctx, token)
		return domain.Session{}, fmt.Errorf("service.AuthService.Session: %w", domain.ErrNoSession)
	}
	return session, nil
}

// Logout closes the session. Logging out an already-dead token succeeds.
func (s *AuthService) Logout(ctx context.Context, token uuid.UUID) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("service.AuthService.Logout: %w", err)
	}
	return nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
// Called once at startup from the configured credentials.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil // bootstrap disabled
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("service.AuthService.EnsureAdmin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service.AuthService.EnsureAdmin: hash: %w", err)
	}
	if _, err := s.users.Create(ctx, domain.User{Email: email, PasswordHash: string(hash)}); err != nil {
		return fmt.Errorf("service.AuthService.EnsureAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "bootstrap admin account created", "email", email)
	return nil
}
