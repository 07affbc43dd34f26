// Package handler implements the HTTP handlers for the Toprağa Dönüş API.
// All handlers are methods on Server; methods are split into domain-specific
// files (resources.go, admin.go, lab.go, ...) but all share the same Server
// struct so they can access its dependencies.
//
// Each dependency is an interface defined here, in the consumer package,
// following the "accept interfaces, return concrete types" convention; tests
// inject func-field mocks without touching the database or service layer.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/service"
	"github.com/topraga-donus/backend/internal/stage"
)

// CatalogLister serves the waste-sorting catalog with the fallback policy
// already applied — it cannot fail.
type CatalogLister interface {
	List(ctx context.Context) ([]domain.WasteItem, service.Source)
}

// StationLister serves the recycling-station map data.
type StationLister interface {
	List(ctx context.Context) ([]domain.Station, service.Source)
}

// GalleryLister serves the content gallery.
type GalleryLister interface {
	List(ctx context.Context) ([]domain.GalleryImage, service.Source)
}

// BlogReader serves the reading side of the blog.
type BlogReader interface {
	ListPublished(ctx context.Context, p domain.PaginationParams) ([]domain.BlogPost, int64, error)
	Featured(ctx context.Context) (domain.BlogPost, error)
}

// CompostReader serves the compost experiment data.
type CompostReader interface {
	List(ctx context.Context) ([]domain.CompostLog, error)
	Pairs(ctx context.Context) ([]domain.CompostPair, error)
}

// SuggestionCreator accepts public contributions.
type SuggestionCreator interface {
	Create(ctx context.Context, s domain.Suggestion, image *service.Upload) (domain.Suggestion, error)
}

// RegistrationCreator accepts school sign-ups.
type RegistrationCreator interface {
	Create(ctx context.Context, reg domain.SchoolRegistration) (domain.SchoolRegistration, error)
}

// AdminController is the tab-driven CRUD console.
type AdminController interface {
	Tabs() []service.Tab
	List(ctx context.Context, tabKey string) (service.TableState, error)
	Create(ctx context.Context, tabKey string, fields map[string]any, image *service.Upload) error
	Delete(ctx context.Context, tabKey string, id uuid.UUID) error
}

// Authenticator is the session subsystem guarding the admin surface.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Session(ctx context.Context, token uuid.UUID) (domain.Session, error)
	Logout(ctx context.Context, token uuid.UUID) error
}

// OverviewProvider aggregates the home-page reads.
type OverviewProvider interface {
	Get(ctx context.Context) (service.Overview, error)
}

// LabEngine is the shared server-side compost animation.
type LabEngine interface {
	Stages() []stage.Stage
	Snapshot() stage.State
	Tick() stage.State
	Play() stage.State
	Pause() stage.State
	Reset() stage.State
	SelectStage(i int) (stage.State, error)
	SetSpeed(v float64) (stage.State, error)
}

// Server holds every handler dependency. Wire it in main.go and mount its
// Routes on the chi router.
type Server struct {
	catalog       CatalogLister
	stations      StationLister
	gallery       GalleryLister
	blog          BlogReader
	compost       CompostReader
	suggestions   SuggestionCreator
	registrations RegistrationCreator
	admin         AdminController
	auth          Authenticator
	overview      OverviewProvider
	lab           LabEngine
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	catalog CatalogLister,
	stations StationLister,
	gallery GalleryLister,
	blog BlogReader,
	compost CompostReader,
	suggestions SuggestionCreator,
	registrations RegistrationCreator,
	admin AdminController,
	auth Authenticator,
	overview OverviewProvider,
	lab LabEngine,
) *Server {
	return &Server{
		catalog:       catalog,
		stations:      stations,
		gallery:       gallery,
		blog:          blog,
		compost:       compost,
		suggestions:   suggestions,
		registrations: registrations,
		admin:         admin,
		auth:          auth,
		overview:      overview,
		lab:           lab,
	}
}
