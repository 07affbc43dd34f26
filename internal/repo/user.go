package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/topraga-donus/backend/internal/domain"
)

// UserRepo persists admin accounts.
type UserRepo interface {
	// GetByEmail looks up an account by email.
	// Returns domain.ErrNotFound when no account exists.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Create inserts an account and returns the persisted record.
	Create(ctx context.Context, user domain.User) (domain.User, error)
}

// SessionRepo persists live sign-ins keyed by their bearer token.
type SessionRepo interface {
	// Create inserts a session row.
	Create(ctx context.Context, session domain.Session) error

	// Get returns the session for the given token joined with the account
	// email. Returns domain.ErrNotFound for unknown tokens; expiry is the
	// caller's concern.
	Get(ctx context.Context, token uuid.UUID) (domain.Session, error)

	// Delete removes a session. Deleting an unknown token is not an error —
	// sign-out is idempotent.
	Delete(ctx context.Context, token uuid.UUID) error
}

type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

func (r *pgUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const q = `SELECT id, email, password_hash, created_at FROM users WHERE email = @email`

	var (
		user domain.User
		id   pgtype.UUID
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email}).
		Scan(&id, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", domain.ErrNotFound)
		}
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", classify(err))
	}
	user.ID = uuid.UUID(id.Bytes)
	return user, nil
}

func (r *pgUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (email, password_hash)
		VALUES (@email, @password_hash)
		RETURNING id, email, password_hash, created_at`

	var id pgtype.UUID
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"email":         user.Email,
		"password_hash": user.PasswordHash,
	}).Scan(&id, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", classify(err))
	}
	user.ID = uuid.UUID(id.Bytes)
	return user, nil
}

type pgSessionRepo struct {
	db db
}

// NewSessionRepo constructs a SessionRepo backed by the provided db connection.
func NewSessionRepo(db db) SessionRepo {
	return &pgSessionRepo{db: db}
}

func (r *pgSessionRepo) Create(ctx context.Context, session domain.Session) error {
	const q = `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES (@token, @user_id, @expires_at)`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"token":      session.Token,
		"user_id":    session.UserID,
		"expires_at": session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("repo.SessionRepo.Create: %w", classify(err))
	}
	return nil
}

func (r *pgSessionRepo) Get(ctx context.Context, token uuid.UUID) (domain.Session, error) {
	const q = `
		SELECT s.token, s.user_id, u.email, s.expires_at, s.created_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = @token`

	var (
		session domain.Session
		tok     pgtype.UUID
		userID  pgtype.UUID
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"token": token}).
		Scan(&tok, &userID, &session.Email, &session.ExpiresAt, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, fmt.Errorf("repo.SessionRepo.Get: %w", domain.ErrNotFound)
		}
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.Get: %w", classify(err))
	}
	session.Token = uuid.UUID(tok.Bytes)
	session.UserID = uuid.UUID(userID.Bytes)
	return session, nil
}

func (r *pgSessionRepo) Delete(ctx context.Context, token uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = @token`, pgx.NamedArgs{"token": token}); err != nil {
		return fmt.Errorf("repo.SessionRepo.Delete: %w", classify(err))
	}
	return nil
}
