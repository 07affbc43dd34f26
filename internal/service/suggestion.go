package service

import (
	"context"
	"fmt"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/repo"
	"github.com/topraga-donus/backend/internal/storage"
)

// SuggestionService handles the public contribution form.
type SuggestionService struct {
	repo  repo.SuggestionRepo
	files storage.Store
}

// NewSuggestionService constructs a SuggestionService with its collaborators.
func NewSuggestionService(r repo.SuggestionRepo, files storage.Store) *SuggestionService {
	return &SuggestionService{repo: r, files: files}
}

// Create validates and persists a public suggestion. The public form can only
// ever produce a pending submission; whatever status the client sent is
// overwritten. An attached image is uploaded before the insert.
func (s *SuggestionService) Create(ctx context.Context, sug domain.Suggestion, image *Upload) (domain.Suggestion, error) {
	switch sug.Kind {
	case domain.SuggestionWaste, domain.SuggestionStation, domain.SuggestionIdea:
	default:
		return domain.Suggestion{}, fmt.Errorf("service.SuggestionService.Create: %w: unknown kind %q", domain.ErrValidation, sug.Kind)
	}
	if sug.Name == "" && sug.Description == "" {
		return domain.Suggestion{}, fmt.Errorf("service.SuggestionService.Create: %w: name or description is required", domain.ErrValidation)
	}

	if image != nil {
		url, err := s.files.Save(ctx, image.Filename, image.Data)
		if err != nil {
			return domain.Suggestion{}, fmt.Errorf("service.SuggestionService.Create: upload: %w", err)
		}
		sug.ImageURL = url
	}

	sug.Status = domain.StatusPending

	created, err := s.repo.Create(ctx, sug)
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("service.SuggestionService.Create: %w", err)
	}
	return created, nil
}
