package services

import (
	"context"

	"freelancedesk/internal/domain/models"
)

// Set is the per-session bundle of services. Every service in a Set talks to
// the API with that session's bearer token.
type Set struct {
	Directory   DirectoryService
	Panels      PanelService
	Freelancers FreelancerService
	Customers   CustomerService
	Projects    ProjectService
	Tasks       TaskService
	Links       LinkService
	Dashboard   DashboardService
}

// Factory builds the Set for a session.
type Factory func(session *models.Session) *Set

// DirectoryService lists records of one kind
type DirectoryService interface {
	// List returns up to the page size of records sorted by the kind's sort
	// field. An empty search returns the unfiltered set.
	List(ctx context.Context, kind models.EntityKind, search string) (*models.Directory, error)

	// Fingerprint lists like List and also returns a stable digest of the
	// result, used by the change feed to detect changes.
	Fingerprint(ctx context.Context, kind models.EntityKind, search string) (*models.Directory, string, error)
}

// PanelService builds detail panels
type PanelService interface {
	// Panel returns the panel for a route-derived mode. An Edit mode whose
	// record does not exist yields Panel.NotFound, not an error.
	Panel(ctx context.Context, kind models.EntityKind, mode models.PanelMode) (*models.Panel, error)
}

// DashboardService summarises the directories
type DashboardService interface {
	Dashboard(ctx context.Context) (*models.Dashboard, error)
}
