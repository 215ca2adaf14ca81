package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
	"freelancedesk/internal/domain/services"
)

// directoryService implements the DirectoryService interface
type directoryService struct {
	gw     repositories.Gateway
	logger *slog.Logger
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(gw repositories.Gateway, logger *slog.Logger) services.DirectoryService {
	return &directoryService{gw: gw, logger: logger}
}

func (s *directoryService) List(ctx context.Context, kind models.EntityKind, search string) (*models.Directory, error) {
	dir, _, err := s.fetch(ctx, kind, search)
	return dir, err
}

func (s *directoryService) Fingerprint(ctx context.Context, kind models.EntityKind, search string) (*models.Directory, string, error) {
	dir, records, err := s.fetch(ctx, kind, search)
	if err != nil {
		return nil, "", err
	}
	body, err := json.Marshal(records)
	if err != nil {
		return nil, "", fmt.Errorf("fingerprint %s: %w", kind, err)
	}
	sum := sha256.Sum256(body)
	return dir, hex.EncodeToString(sum[:]), nil
}

// fetch lists one kind and also returns the raw records, which carry every
// field (including updatedAt) the fingerprint should react to.
func (s *directoryService) fetch(ctx context.Context, kind models.EntityKind, search string) (*models.Directory, any, error) {
	search = strings.TrimSpace(search)

	var (
		items   []models.DirectoryItem
		records any
	)
	switch kind {
	case models.Freelancers:
		list, err := s.gw.Freelancers().List(ctx, search)
		if err != nil {
			return nil, nil, fmt.Errorf("list freelancers: %w", err)
		}
		items, records = mapItems(list, freelancerItem), list
	case models.Customers:
		list, err := s.gw.Customers().List(ctx, search)
		if err != nil {
			return nil, nil, fmt.Errorf("list customers: %w", err)
		}
		items, records = mapItems(list, customerItem), list
	case models.Projects:
		list, err := s.gw.Projects().List(ctx, repositories.ProjectQuery{Search: search})
		if err != nil {
			return nil, nil, fmt.Errorf("list projects: %w", err)
		}
		items, records = mapItems(list, projectItem), list
	case models.Tasks:
		list, err := s.gw.Tasks().List(ctx, repositories.TaskQuery{Search: search})
		if err != nil {
			return nil, nil, fmt.Errorf("list tasks: %w", err)
		}
		items, records = mapItems(list, taskItem), list
	default:
		return nil, nil, fmt.Errorf("unknown entity %q", kind)
	}

	dir := &models.Directory{
		Entity: kind,
		Search: search,
		Count:  len(items),
		Items:  items,
	}
	if len(items) == 0 {
		dir.Placeholder = emptyPlaceholder(kind)
	}
	return dir, records, nil
}
