package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/repo"
	"github.com/topraga-donus/backend/internal/storage"
)

// Upload carries an optional image attachment on an admin or public create.
type Upload struct {
	Filename string
	Data     io.Reader
}

// TableState is what the admin console renders for one tab: either a row
// list, or the table-missing remediation state with copyable setup SQL.
type TableState struct {
	Rows         []map[string]any `json:"rows"`
	TableMissing bool             `json:"table_missing"`
	SetupSQL     string           `json:"setup_sql,omitempty"`
}

// AdminService implements the tab-driven CRUD console over the open set of
// logical resources.
type AdminService struct {
	tables repo.TableRepo
	blog   repo.BlogRepo
	files  storage.Store
	log    *slog.Logger
}

// NewAdminService constructs the AdminService with its collaborators.
func NewAdminService(tables repo.TableRepo, blog repo.BlogRepo, files storage.Store, log *slog.Logger) *AdminService {
	return &AdminService{tables: tables, blog: blog, files: files, log: log}
}

// Tabs returns the tab registry for the console chrome.
func (s *AdminService) Tabs() []Tab {
	return Tabs()
}

// List returns the rows for the active tab. A missing table is a recoverable
// state carrying remediation SQL; any other backend error is logged and the
// list stays empty with no further user-facing signal.
func (s *AdminService) List(ctx context.Context, tabKey string) (TableState, error) {
	tab, ok := tabByKey(tabKey)
	if !ok {
		return TableState{}, fmt.Errorf("service.AdminService.List: %w: %s", domain.ErrUnknownTab, tabKey)
	}

	rows, err := s.tables.List(ctx, tab.Table, tab.OrderBy)
	if err != nil {
		if errors.Is(err, domain.ErrTableMissing) {
			return TableState{TableMissing: true, SetupSQL: tab.SetupSQL}, nil
		}
		s.log.ErrorContext(ctx, "admin list failed", "tab", tabKey, "error", err)
		return TableState{Rows: []map[string]any{}}, nil
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	return TableState{Rows: rows}, nil
}

// Create inserts one row for the active tab. The image, when present, is
// uploaded first and its public URL merged into the payload under the tab's
// image field. Tab defaults fill any field the form left unset, and a
// client-supplied id is stripped — identity is always server-generated.
//
// A blog post arriving with featured=true first clears the flag on every
// other post, then inserts. The two calls are not wrapped in a transaction;
// a concurrent admin can race them, which the system accepts.
//
// Insert errors are returned unwrapped meaning-wise: the caller shows the
// backend's raw message.
func (s *AdminService) Create(ctx context.Context, tabKey string, fields map[string]any, image *Upload) error {
	tab, ok := tabByKey(tabKey)
	if !ok {
		return fmt.Errorf("service.AdminService.Create: %w: %s", domain.ErrUnknownTab, tabKey)
	}

	payload := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		if k == "id" || k == "created_at" {
			continue
		}
		payload[k] = v
	}

	for k, v := range tab.Defaults() {
		if cur, ok := payload[k]; !ok || cur == "" {
			payload[k] = v
		}
	}

	if image != nil {
		url, err := s.files.Save(ctx, image.Filename, image.Data)
		if err != nil {
			return fmt.Errorf("service.AdminService.Create: upload: %w", err)
		}
		payload[tab.ImageField] = url
	}

	if tab.Key == "blog_posts" && payload["featured"] == true {
		cleared, err := s.blog.ClearFeatured(ctx)
		if err != nil {
			return fmt.Errorf("service.AdminService.Create: clear featured: %w", err)
		}
		if cleared > 0 {
			s.log.InfoContext(ctx, "cleared previously featured posts", "count", cleared)
		}
	}

	if err := s.tables.Insert(ctx, tab.Table, payload); err != nil {
		return fmt.Errorf("service.AdminService.Create: %w", err)
	}
	return nil
}

// Delete removes one row by id for the active tab. The caller refetches the
// list afterwards; there is no optimistic removal.
func (s *AdminService) Delete(ctx context.Context, tabKey string, id uuid.UUID) error {
	tab, ok := tabByKey(tabKey)
	if !ok {
		return fmt.Errorf("service.AdminService.Delete: %w: %s", domain.ErrUnknownTab, tabKey)
	}
	if err := s.tables.Delete(ctx, tab.Table, id); err != nil {
		return fmt.Errorf("service.AdminService.Delete: %w", err)
	}
	return nil
}
