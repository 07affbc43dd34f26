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

// BlogRepo defines the read surface of the project blog plus the one write
// the featured-post side effect needs.
type BlogRepo interface {
	// ListPublished returns a page of published posts ordered by creation time
	// descending, together with the total published count.
	ListPublished(ctx context.Context, p domain.PaginationParams) ([]domain.BlogPost, int64, error)

	// Featured returns the highlighted post: the most recently created row
	// with featured=true among published posts. When bad data has left several
	// rows flagged, the creation-time ordering makes the choice deterministic.
	// Returns domain.ErrNotFound when no post is featured.
	Featured(ctx context.Context) (domain.BlogPost, error)

	// ClearFeatured unsets the featured flag on every row that carries it and
	// returns the number of rows changed.
	ClearFeatured(ctx context.Context) (int64, error)
}

type pgBlogRepo struct {
	db db
}

// NewBlogRepo constructs a BlogRepo backed by the provided db connection.
func NewBlogRepo(db db) BlogRepo {
	return &pgBlogRepo{db: db}
}

func (r *pgBlogRepo) ListPublished(ctx context.Context, p domain.PaginationParams) ([]domain.BlogPost, int64, error) {
	const countQ = `SELECT count(*) FROM blog_posts WHERE published`
	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.BlogRepo.ListPublished: count: %w", classify(err))
	}

	const q = `
		SELECT id, title, excerpt, content, category, image, author, read_time,
		       featured, published, created_at
		FROM blog_posts
		WHERE published
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.BlogRepo.ListPublished: %w", classify(err))
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.BlogRepo.ListPublished: scan: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.BlogRepo.ListPublished: rows: %w", err)
	}

	return posts, total, nil
}

func (r *pgBlogRepo) Featured(ctx context.Context) (domain.BlogPost, error) {
	const q = `
		SELECT id, title, excerpt, content, category, image, author, read_time,
		       featured, published, created_at
		FROM blog_posts
		WHERE featured AND published
		ORDER BY created_at DESC
		LIMIT 1`

	row := r.db.QueryRow(ctx, q)
	post, err := scanBlogPost(row)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.BlogPost{}, domain.ErrNotFound
		}
		return domain.BlogPost{}, fmt.Errorf("repo.BlogRepo.Featured: %w", classify(err))
	}
	return post, nil
}

func (r *pgBlogRepo) ClearFeatured(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE blog_posts SET featured = false WHERE featured`)
	if err != nil {
		return 0, fmt.Errorf("repo.BlogRepo.ClearFeatured: %w", classify(err))
	}
	return tag.RowsAffected(), nil
}

// scanBlogPost maps a single database row into a domain.BlogPost.
func scanBlogPost(s scanner) (domain.BlogPost, error) {
	var (
		post domain.BlogPost
		id   pgtype.UUID
	)

	err := s.Scan(&id, &post.Title, &post.Excerpt, &post.Content, &post.Category,
		&post.ImageURL, &post.Author, &post.ReadTime, &post.Featured,
		&post.Published, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BlogPost{}, domain.ErrNotFound
		}
		return domain.BlogPost{}, err
	}

	post.ID = uuid.UUID(id.Bytes)
	return post, nil
}
