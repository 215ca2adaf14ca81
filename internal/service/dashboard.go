package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/services"
)

// dashboardService implements the DashboardService interface
type dashboardService struct {
	directory services.DirectoryService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(directory services.DirectoryService) services.DashboardService {
	return &dashboardService{directory: directory}
}

// Dashboard counts every directory in parallel.
func (s *dashboardService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	var mu sync.Mutex
	counts := make(map[models.EntityKind]int, len(models.AllEntities))

	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range models.AllEntities {
		g.Go(func() error {
			dir, err := s.directory.List(gctx, kind, "")
			if err != nil {
				return err
			}
			mu.Lock()
			counts[kind] = dir.Count
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &models.Dashboard{Counts: counts}, nil
}
