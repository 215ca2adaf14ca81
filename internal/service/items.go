package service

import (
	"fmt"

	"freelancedesk/internal/domain/models"
)

func freelancerItem(f *models.Freelancer) models.DirectoryItem {
	return models.DirectoryItem{
		ID:       f.ID,
		Title:    f.DisplayName(),
		Subtitle: f.Email,
		ImageURL: f.ImageURL,
		Route:    models.Freelancers.RecordRoute(f.ID),
	}
}

func customerItem(c *models.Customer) models.DirectoryItem {
	return models.DirectoryItem{
		ID:       c.ID,
		Title:    c.CustomerName,
		Subtitle: c.CustomerLocation,
		ImageURL: c.CustomerImageURL,
		Route:    models.Customers.RecordRoute(c.ID),
	}
}

func projectItem(p *models.Project) models.DirectoryItem {
	return models.DirectoryItem{
		ID:       p.ID,
		Title:    p.ProjectName,
		Subtitle: p.CustomerName,
		Route:    models.Projects.RecordRoute(p.ID),
	}
}

func taskItem(t *models.Task) models.DirectoryItem {
	return models.DirectoryItem{
		ID:       t.ID,
		Title:    t.TaskName,
		Subtitle: t.ProjectName,
		Route:    models.Tasks.RecordRoute(t.ID),
	}
}

func mapItems[T any](records []T, item func(*T) models.DirectoryItem) []models.DirectoryItem {
	items := make([]models.DirectoryItem, 0, len(records))
	for i := range records {
		items = append(items, item(&records[i]))
	}
	return items
}

func itemIDs(items []models.DirectoryItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

// emptyPlaceholder is the row text shown instead of an empty list.
func emptyPlaceholder(kind models.EntityKind) string {
	return fmt.Sprintf("No %s found", kind)
}
