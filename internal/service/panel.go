package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/services"
)

// panelService implements the PanelService interface on top of the form
// flows, so a panel's form state is computed exactly like a form submission.
type panelService struct {
	freelancers *freelancerService
	customers   *customerService
	projects    *projectService
	tasks       *taskService
	links       services.LinkService
	logger      *slog.Logger
}

func newPanelService(
	freelancers *freelancerService,
	customers *customerService,
	projects *projectService,
	tasks *taskService,
	links services.LinkService,
	logger *slog.Logger,
) services.PanelService {
	return &panelService{
		freelancers: freelancers,
		customers:   customers,
		projects:    projects,
		tasks:       tasks,
		links:       links,
		logger:      logger,
	}
}

type relationFetch func(ctx context.Context, id string) (*models.RelationList, error)

// panelTabs is the tab table per entity and mode.
func panelTabs(kind models.EntityKind, mode models.PanelMode) []models.Tab {
	record := func(suffix string) string {
		if suffix == "" {
			return kind.RecordRoute(mode.ID)
		}
		return kind.RecordRoute(mode.ID) + "/" + suffix
	}

	switch mode.Kind {
	case models.ModeNotSelected:
		if kind.Addable() {
			return []models.Tab{}
		}
		return []models.Tab{{Name: "Select " + kind.Singular(), Info: true}}
	case models.ModeAdd:
		return []models.Tab{{Name: "Profile", Route: kind.EntryRoute()}}
	}

	switch kind {
	case models.Freelancers:
		return []models.Tab{
			{Name: "Profile", Route: record("")},
			{Name: "Projects", Route: record("projects")},
			{Name: "Tasks", Route: record("tasks")},
		}
	case models.Customers:
		return []models.Tab{
			{Name: "Profile", Route: record("")},
			{Name: "Projects", Route: record("projects")},
		}
	case models.Projects:
		return []models.Tab{
			{Name: "Description", Route: record("")},
			{Name: "Tasks", Route: record("tasks")},
		}
	default:
		return []models.Tab{
			{Name: "Description", Route: record("")},
			{Name: "Freelancer", Route: record("freelancer")},
		}
	}
}

func (s *panelService) Panel(ctx context.Context, kind models.EntityKind, mode models.PanelMode) (*models.Panel, error) {
	if mode.IsAdd() && !kind.Addable() {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("%s are created from their parent's panel", kind)}
	}

	panel := &models.Panel{
		Entity: kind,
		Mode:   mode,
		Tabs:   panelTabs(kind, mode),
	}

	switch mode.Kind {
	case models.ModeNotSelected:
		panel.Title = "Select " + kind.Label()
		return panel, nil
	case models.ModeAdd:
		panel.Title = "Add " + kind.Label()
	}

	var err error
	switch kind {
	case models.Freelancers:
		err = fillPanel(ctx, panel, s.freelancers.flow, map[string]relationFetch{
			"projects": s.links.FreelancerProjects,
			"tasks":    s.links.FreelancerTasks,
		}, func(r any) string { return r.(*models.Freelancer).DisplayName() })
	case models.Customers:
		err = fillPanel(ctx, panel, s.customers.flow, map[string]relationFetch{
			"projects": s.links.CustomerProjects,
		}, func(r any) string { return r.(*models.Customer).CustomerName })
	case models.Projects:
		err = fillPanel(ctx, panel, s.projects.flow, map[string]relationFetch{
			"tasks": s.links.ProjectTasks,
		}, func(r any) string { return r.(*models.Project).ProjectName })
	case models.Tasks:
		err = fillPanel(ctx, panel, s.tasks.flow, map[string]relationFetch{
			"freelancer": s.links.TaskFreelancer,
		}, func(r any) string { return r.(*models.Task).TaskName })
	default:
		err = fmt.Errorf("unknown entity %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return panel, nil
}

// fillPanel loads the record and its relation tabs concurrently. A missing
// record marks the panel not found instead of failing.
func fillPanel[A any](
	ctx context.Context,
	panel *models.Panel,
	flow *formFlow[A],
	relations map[string]relationFetch,
	title func(record any) string,
) error {
	if panel.Mode.IsAdd() {
		empty := new(A)
		panel.Form = flow.state(panel.Mode, empty, empty, 0)
		return nil
	}

	id := panel.Mode.ID
	var (
		cur      *loaded[A]
		notFound bool
		results  = make([]*models.RelationList, len(relations))
		names    = make([]string, 0, len(relations))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cur, err = flow.load(gctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			notFound = true
			return nil
		}
		return err
	})
	for name, fetch := range relations {
		i := len(names)
		names = append(names, name)
		g.Go(func() error {
			list, err := fetch(gctx, id)
			if err != nil {
				return fmt.Errorf("load %s: %w", name, err)
			}
			results[i] = list
			return nil
		})
	}

	err := g.Wait()
	// relation lookups of a missing record (a task's freelancer) fail the same way
	if notFound || errors.Is(err, domain.ErrNotFound) {
		panel.NotFound = true
		panel.Title = panel.Entity.Label() + " not found"
		panel.Tabs = []models.Tab{}
		return nil
	}
	if err != nil {
		return err
	}

	panel.Record = cur.record
	panel.Title = title(cur.record)
	panel.Form = flow.state(panel.Mode, &cur.attrs, &cur.attrs, cur.dependents)
	panel.Relations = make(map[string]*models.RelationList, len(names))
	for i, name := range names {
		panel.Relations[name] = results[i]
	}
	return nil
}
