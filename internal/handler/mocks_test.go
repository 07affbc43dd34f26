package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/handler"
	"github.com/topraga-donus/backend/internal/service"
	"github.com/topraga-donus/backend/internal/stage"
)

// Test doubles for the Server's consumer interfaces. Set only the method
// fields your test needs; an unset field panics, which fails the test loudly.

type mockCatalog struct {
	list func(ctx context.Context) ([]domain.WasteItem, service.Source)
}

func (m *mockCatalog) List(ctx context.Context) ([]domain.WasteItem, service.Source) {
	return m.list(ctx)
}

type mockStations struct {
	list func(ctx context.Context) ([]domain.Station, service.Source)
}

func (m *mockStations) List(ctx context.Context) ([]domain.Station, service.Source) {
	return m.list(ctx)
}

type mockGallery struct {
	list func(ctx context.Context) ([]domain.GalleryImage, service.Source)
}

func (m *mockGallery) List(ctx context.Context) ([]domain.GalleryImage, service.Source) {
	return m.list(ctx)
}

type mockBlog struct {
	listPublished func(ctx context.Context, p domain.PaginationParams) ([]domain.BlogPost, int64, error)
	featured      func(ctx context.Context) (domain.BlogPost, error)
}

func (m *mockBlog) ListPublished(ctx context.Context, p domain.PaginationParams) ([]domain.BlogPost, int64, error) {
	return m.listPublished(ctx, p)
}
func (m *mockBlog) Featured(ctx context.Context) (domain.BlogPost, error) {
	return m.featured(ctx)
}

type mockCompost struct {
	list  func(ctx context.Context) ([]domain.CompostLog, error)
	pairs func(ctx context.Context) ([]domain.CompostPair, error)
}

func (m *mockCompost) List(ctx context.Context) ([]domain.CompostLog, error) {
	return m.list(ctx)
}
func (m *mockCompost) Pairs(ctx context.Context) ([]domain.CompostPair, error) {
	return m.pairs(ctx)
}

type mockSuggestions struct {
	create func(ctx context.Context, s domain.Suggestion, image *service.Upload) (domain.Suggestion, error)
}

func (m *mockSuggestions) Create(ctx context.Context, s domain.Suggestion, image *service.Upload) (domain.Suggestion, error) {
	return m.create(ctx, s, image)
}

type mockRegistrations struct {
	create func(ctx context.Context, reg domain.SchoolRegistration) (domain.SchoolRegistration, error)
}

func (m *mockRegistrations) Create(ctx context.Context, reg domain.SchoolRegistration) (domain.SchoolRegistration, error) {
	return m.create(ctx, reg)
}

type mockAdmin struct {
	tabs   func() []service.Tab
	list   func(ctx context.Context, tabKey string) (service.TableState, error)
	create func(ctx context.Context, tabKey string, fields map[string]any, image *service.Upload) error
	delete func(ctx context.Context, tabKey string, id uuid.UUID) error
}

func (m *mockAdmin) Tabs() []service.Tab { return m.tabs() }
func (m *mockAdmin) List(ctx context.Context, tabKey string) (service.TableState, error) {
	return m.list(ctx, tabKey)
}
func (m *mockAdmin) Create(ctx context.Context, tabKey string, fields map[string]any, image *service.Upload) error {
	return m.create(ctx, tabKey, fields, image)
}
func (m *mockAdmin) Delete(ctx context.Context, tabKey string, id uuid.UUID) error {
	return m.delete(ctx, tabKey, id)
}

type mockAuth struct {
	login   func(ctx context.Context, email, password string) (domain.Session, error)
	session func(ctx context.Context, token uuid.UUID) (domain.Session, error)
	logout  func(ctx context.Context, token uuid.UUID) error
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (domain.Session, error) {
	return m.login(ctx, email, password)
}
func (m *mockAuth) Session(ctx context.Context, token uuid.UUID) (domain.Session, error) {
	return m.session(ctx, token)
}
func (m *mockAuth) Logout(ctx context.Context, token uuid.UUID) error {
	return m.logout(ctx, token)
}

type mockOverview struct {
	get func(ctx context.Context) (service.Overview, error)
}

func (m *mockOverview) Get(ctx context.Context) (service.Overview, error) {
	return m.get(ctx)
}

// Compile-time checks: every mock must satisfy its handler interface.
var (
	_ handler.CatalogLister       = (*mockCatalog)(nil)
	_ handler.StationLister       = (*mockStations)(nil)
	_ handler.GalleryLister       = (*mockGallery)(nil)
	_ handler.BlogReader          = (*mockBlog)(nil)
	_ handler.CompostReader       = (*mockCompost)(nil)
	_ handler.SuggestionCreator   = (*mockSuggestions)(nil)
	_ handler.RegistrationCreator = (*mockRegistrations)(nil)
	_ handler.AdminController     = (*mockAdmin)(nil)
	_ handler.Authenticator       = (*mockAuth)(nil)
	_ handler.OverviewProvider    = (*mockOverview)(nil)
	_ handler.LabEngine           = (*stage.Engine)(nil)
)

// ---- helpers ---------------------------------------------------------------

// deps bundles the Server dependencies so tests override only what they use.
type deps struct {
	catalog       handler.CatalogLister
	stations      handler.StationLister
	gallery       handler.GalleryLister
	blog          handler.BlogReader
	compost       handler.CompostReader
	suggestions   handler.SuggestionCreator
	registrations handler.RegistrationCreator
	admin         handler.AdminController
	auth          handler.Authenticator
	overview      handler.OverviewProvider
	lab           handler.LabEngine
}

// newHTTPHandler wires a Server through its chi router, mirroring how
// main.go mounts it in production. Unset dependencies stay nil and panic if
// a test unexpectedly reaches them.
func newHTTPHandler(d deps) http.Handler {
	if d.lab == nil {
		d.lab = stage.New()
	}
	srv := handler.NewServer(
		d.catalog, d.stations, d.gallery, d.blog, d.compost,
		d.suggestions, d.registrations, d.admin, d.auth, d.overview, d.lab,
	)
	return srv.Routes()
}

// allowAllAuth is an Authenticator that accepts any well-formed token, for
// tests exercising the admin surface rather than the gate itself.
func allowAllAuth() *mockAuth {
	return &mockAuth{
		session: func(_ context.Context, token uuid.UUID) (domain.Session, error) {
			return domain.Session{Token: token, Email: "admin@example.com"}, nil
		},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
