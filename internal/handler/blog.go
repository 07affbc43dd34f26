package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/topraga-donus/backend/internal/domain"
)

// blogPage is the paginated blog listing envelope.
type blogPage struct {
	Data       []domain.BlogPost `json:"data"`
	Pagination pagination        `json:"pagination"`
}

type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// ListBlogPosts handles GET /api/blog.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=12, max=50).
func (s *Server) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	posts, total, err := s.blog.ListPublished(r.Context(), params)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "blog unavailable")
		return
	}
	if posts == nil {
		posts = []domain.BlogPost{}
	}
	respondJSON(w, http.StatusOK, blogPage{
		Data:       posts,
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetFeaturedPost handles GET /api/blog/featured.
func (s *Server) GetFeaturedPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.blog.Featured(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "no featured post")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "blog unavailable")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// queryInt parses an optional integer query parameter, returning nil when
// absent or malformed.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
