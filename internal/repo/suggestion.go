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

// SuggestionRepo persists public contributions from the suggestion form.
type SuggestionRepo interface {
	// Create inserts a new suggestion and returns the persisted record with
	// the DB-generated id and created_at populated.
	Create(ctx context.Context, s domain.Suggestion) (domain.Suggestion, error)
}

type pgSuggestionRepo struct {
	db db
}

// NewSuggestionRepo constructs a SuggestionRepo backed by the provided db connection.
func NewSuggestionRepo(db db) SuggestionRepo {
	return &pgSuggestionRepo{db: db}
}

func (r *pgSuggestionRepo) Create(ctx context.Context, s domain.Suggestion) (domain.Suggestion, error) {
	const q = `
		INSERT INTO suggestions (kind, name, location, description, image_url, status, sender_name)
		VALUES (@kind, @name, @location, @description, @image_url, @status, @sender_name)
		RETURNING id, kind, name, location, description, image_url, status, sender_name, created_at`

	args := pgx.NamedArgs{
		"kind":        s.Kind,
		"name":        s.Name,
		"location":    s.Location,
		"description": s.Description,
		"image_url":   s.ImageURL,
		"status":      s.Status,
		"sender_name": s.SenderName,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanSuggestion(row)
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("repo.SuggestionRepo.Create: %w", classify(err))
	}
	return result, nil
}

// scanSuggestion maps a single database row into a domain.Suggestion.
func scanSuggestion(s scanner) (domain.Suggestion, error) {
	var (
		sug domain.Suggestion
		id  pgtype.UUID
	)

	err := s.Scan(&id, &sug.Kind, &sug.Name, &sug.Location, &sug.Description,
		&sug.ImageURL, &sug.Status, &sug.SenderName, &sug.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Suggestion{}, domain.ErrNotFound
		}
		return domain.Suggestion{}, err
	}

	sug.ID = uuid.UUID(id.Bytes)
	return sug, nil
}
