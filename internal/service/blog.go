package service

import (
	"context"
	"fmt"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/repo"
)

// BlogService serves the reading side of the project blog.
type BlogService struct {
	repo repo.BlogRepo
}

// NewBlogService constructs a BlogService backed by the provided BlogRepo.
func NewBlogService(r repo.BlogRepo) *BlogService {
	return &BlogService{repo: r}
}

// ListPublished returns a page of published posts, newest first, plus the
// total published count.
func (s *BlogService) ListPublished(ctx context.Context, p domain.PaginationParams) ([]domain.BlogPost, int64, error) {
	posts, total, err := s.repo.ListPublished(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.BlogService.ListPublished: %w", err)
	}
	return posts, total, nil
}

// Featured returns the single highlighted post. When inconsistent data has
// left several rows flagged, the repo's creation-time ordering picks the most
// recently created one, so the choice is deterministic. Returns
// domain.ErrNotFound when nothing is featured.
func (s *BlogService) Featured(ctx context.Context) (domain.BlogPost, error) {
	post, err := s.repo.Featured(ctx)
	if err != nil {
		return domain.BlogPost{}, fmt.Errorf("service.BlogService.Featured: %w", err)
	}
	return post, nil
}
