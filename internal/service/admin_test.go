package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/service"
)

// mockTableRepo is a func-field double for repo.TableRepo.
type mockTableRepo struct {
	list   func(ctx context.Context, table, orderBy string) ([]map[string]any, error)
	insert func(ctx context.Context, table string, fields map[string]any) error
	del    func(ctx context.Context, table string, id uuid.UUID) error
}

func (m *mockTableRepo) List(ctx context.Context, table, orderBy string) ([]map[string]any, error) {
	return m.list(ctx, table, orderBy)
}
func (m *mockTableRepo) Insert(ctx context.Context, table string, fields map[string]any) error {
	return m.insert(ctx, table, fields)
}
func (m *mockTableRepo) Delete(ctx context.Context, table string, id uuid.UUID) error {
	return m.del(ctx, table, id)
}

// mockBlogRepo only implements what the admin service touches.
type mockBlogRepo struct {
	clearFeatured func(ctx context.Context) (int64, error)
}

func (m *mockBlogRepo) ListPublished(context.Context, domain.PaginationParams) ([]domain.BlogPost, int64, error) {
	panic("not used")
}
func (m *mockBlogRepo) Featured(context.Context) (domain.BlogPost, error) { panic("not used") }
func (m *mockBlogRepo) ClearFeatured(ctx context.Context) (int64, error) {
	return m.clearFeatured(ctx)
}

// mockStore records upload names and hands back a deterministic URL.
type mockStore struct {
	saved []string
}

func (m *mockStore) Save(_ context.Context, name string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	m.saved = append(m.saved, name)
	return "/uploads/generated-" + name, nil
}

func newAdmin(tables *mockTableRepo, blog *mockBlogRepo, files *mockStore) *service.AdminService {
	if blog == nil {
		blog = &mockBlogRepo{}
	}
	if files == nil {
		files = &mockStore{}
	}
	return service.NewAdminService(tables, blog, files, discard())
}

// ---- List ------------------------------------------------------------------

func TestAdminList_UnknownTab(t *testing.T) {
	svc := newAdmin(&mockTableRepo{}, nil, nil)

	_, err := svc.List(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrUnknownTab)
}

func TestAdminList_OrdersCompostLogsByDate(t *testing.T) {
	var gotTable, gotOrder string
	svc := newAdmin(&mockTableRepo{
		list: func(_ context.Context, table, orderBy string) ([]map[string]any, error) {
			gotTable, gotOrder = table, orderBy
			return nil, nil
		},
	}, nil, nil)

	_, err := svc.List(context.Background(), "compost_logs")

	require.NoError(t, err)
	assert.Equal(t, "compost_logs", gotTable)
	assert.Equal(t, "log_date", gotOrder, "compost tab orders by measurement date")
}

func TestAdminList_TableMissingBecomesRecoverableState(t *testing.T) {
	svc := newAdmin(&mockTableRepo{
		list: func(context.Context, string, string) ([]map[string]any, error) {
			return nil, domain.ErrTableMissing
		},
	}, nil, nil)

	state, err := svc.List(context.Background(), "stations")

	require.NoError(t, err, "table missing is a state, not an error")
	assert.True(t, state.TableMissing)
	assert.Contains(t, state.SetupSQL, "CREATE TABLE IF NOT EXISTS stations")
	assert.Empty(t, state.Rows)
}

func TestAdminList_OtherErrorsAreSwallowed(t *testing.T) {
	svc := newAdmin(&mockTableRepo{
		list: func(context.Context, string, string) ([]map[string]any, error) {
			return nil, errors.New("permission denied")
		},
	}, nil, nil)

	state, err := svc.List(context.Background(), "stations")

	require.NoError(t, err)
	assert.False(t, state.TableMissing)
	assert.NotNil(t, state.Rows)
	assert.Empty(t, state.Rows)
}

// ---- Create ----------------------------------------------------------------

func TestAdminCreate_InjectsDefaultsAndStripsID(t *testing.T) {
	var inserted map[string]any
	svc := newAdmin(&mockTableRepo{
		insert: func(_ context.Context, table string, fields map[string]any) error {
			require.Equal(t, "waste_items", table)
			inserted = fields
			return nil
		},
	}, nil, nil)

	err := svc.Create(context.Background(), "waste_items", map[string]any{
		"id":   "client-supplied",
		"name": "Muz kabuğu",
	}, nil)

	require.NoError(t, err)
	assert.NotContains(t, inserted, "id", "identity is server-generated")
	assert.Equal(t, "Muz kabuğu", inserted["name"])
	assert.Equal(t, string(domain.WasteGreen), inserted["category"], "unset category defaults to green")
	assert.Equal(t, true, inserted["compostable"])
}

func TestAdminCreate_FormValuesWinOverDefaults(t *testing.T) {
	var inserted map[string]any
	svc := newAdmin(&mockTableRepo{
		insert: func(_ context.Context, _ string, fields map[string]any) error {
			inserted = fields
			return nil
		},
	}, nil, nil)

	err := svc.Create(context.Background(), "waste_items", map[string]any{
		"name":     "Et",
		"category": string(domain.WasteProhibited),
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, string(domain.WasteProhibited), inserted["category"])
}

func TestAdminCreate_UploadsImageUnderTabField(t *testing.T) {
	files := &mockStore{}
	var inserted map[string]any
	svc := newAdmin(&mockTableRepo{
		insert: func(_ context.Context, _ string, fields map[string]any) error {
			inserted = fields
			return nil
		},
	}, nil, files)

	err := svc.Create(context.Background(), "project_images", map[string]any{"title": "Afiş"},
		&service.Upload{Filename: "afis.png", Data: strings.NewReader("png")})

	require.NoError(t, err)
	assert.Equal(t, []string{"afis.png"}, files.saved)
	assert.Equal(t, "/uploads/generated-afis.png", inserted["image_url"])
}

func TestAdminCreate_BlogUsesDifferentImageField(t *testing.T) {
	var inserted map[string]any
	svc := newAdmin(&mockTableRepo{
		insert: func(_ context.Context, _ string, fields map[string]any) error {
			inserted = fields
			return nil
		},
	}, &mockBlogRepo{clearFeatured: func(context.Context) (int64, error) { return 0, nil }}, &mockStore{})

	err := svc.Create(context.Background(), "blog_posts", map[string]any{"title": "Kompost 101"},
		&service.Upload{Filename: "kapak.jpg", Data: strings.NewReader("jpg")})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/generated-kapak.jpg", inserted["image"], "blog stores its image under \"image\"")
	assert.NotContains(t, inserted, "image_url")
	assert.Equal(t, domain.DefaultBlogAuthor, inserted["author"])
	assert.Equal(t, true, inserted["published"])
}

func TestAdminCreate_FeaturedBlogPostClearsOthersFirst(t *testing.T) {
	var calls []string
	svc := newAdmin(&mockTableRepo{
		insert: func(context.Context, string, map[string]any) error {
			calls = append(calls, "insert")
			return nil
		},
	}, &mockBlogRepo{clearFeatured: func(context.Context) (int64, error) {
		calls = append(calls, "clear")
		return 2, nil
	}}, nil)

	err := svc.Create(context.Background(), "blog_posts", map[string]any{
		"title":    "Yeni duyuru",
		"featured": true,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"clear", "insert"}, calls,
		"featured flag on others must be cleared before the insert")
}

func TestAdminCreate_NonFeaturedBlogPostSkipsClearing(t *testing.T) {
	svc := newAdmin(&mockTableRepo{
		insert: func(context.Context, string, map[string]any) error { return nil },
	}, &mockBlogRepo{clearFeatured: func(context.Context) (int64, error) {
		t.Fatal("ClearFeatured must not be called")
		return 0, nil
	}}, nil)

	err := svc.Create(context.Background(), "blog_posts", map[string]any{"title": "Sıradan yazı"}, nil)

	require.NoError(t, err)
}

func TestAdminCreate_InsertErrorIsReturned(t *testing.T) {
	svc := newAdmin(&mockTableRepo{
		insert: func(context.Context, string, map[string]any) error {
			return errors.New(`null value in column "name" violates not-null constraint`)
		},
	}, nil, nil)

	err := svc.Create(context.Background(), "stations", map[string]any{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-null constraint", "raw backend message must survive")
}

// ---- Delete ----------------------------------------------------------------

func TestAdminDelete(t *testing.T) {
	id := uuid.New()
	var gotTable string
	var gotID uuid.UUID
	svc := newAdmin(&mockTableRepo{
		del: func(_ context.Context, table string, rowID uuid.UUID) error {
			gotTable, gotID = table, rowID
			return nil
		},
	}, nil, nil)

	err := svc.Delete(context.Background(), "suggestions", id)

	require.NoError(t, err)
	assert.Equal(t, "suggestions", gotTable)
	assert.Equal(t, id, gotID)
}

func TestAdminDelete_UnknownTab(t *testing.T) {
	svc := newAdmin(&mockTableRepo{}, nil, nil)

	err := svc.Delete(context.Background(), "ghosts", uuid.New())

	assert.ErrorIs(t, err, domain.ErrUnknownTab)
}

// ---- CoerceField -----------------------------------------------------------

func TestCoerceField(t *testing.T) {
	assert.Equal(t, true, service.CoerceField("featured", "true"))
	assert.Equal(t, true, service.CoerceField("verified", "on"))
	assert.Equal(t, false, service.CoerceField("published", "false"))
	assert.Equal(t, 14, service.CoerceField("leaf_count", "14"))
	assert.Equal(t, 39.92, service.CoerceField("lat", "39.92"))
	assert.Equal(t, "05551234567", service.CoerceField("phone", "05551234567"),
		"free-text fields stay strings even when numeric-looking")
	assert.Equal(t, "abc", service.CoerceField("leaf_count", "abc"),
		"unparseable values pass through for the backend to reject")
}
