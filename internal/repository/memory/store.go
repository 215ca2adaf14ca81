// Package memory is an in-process stand-in for the GraphQL API and the
// session table, used in development and tests.
package memory

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"freelancedesk/internal/config"
	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

// Store holds every record behind one lock. Relations are stored on the
// child side only (task.project, task.freelancer, project.customer); the
// parent's id lists are derived on read, the way the API resolves backlinks.
type Store struct {
	mu          sync.RWMutex
	nextID      int
	pageSize    int
	now         func() time.Time
	freelancers map[string]*models.Freelancer
	customers   map[string]*models.Customer
	projects    map[string]*models.Project
	tasks       map[string]*models.Task
}

// NewStore creates an empty store. pageSize caps list results like the API does.
func NewStore(pageSize int) *Store {
	if pageSize <= 0 || pageSize > config.DefaultPageSize {
		pageSize = config.DefaultPageSize
	}
	return &Store{
		pageSize:    pageSize,
		now:         func() time.Time { return time.Now().UTC() },
		freelancers: make(map[string]*models.Freelancer),
		customers:   make(map[string]*models.Customer),
		projects:    make(map[string]*models.Project),
		tasks:       make(map[string]*models.Task),
	}
}

// Gateway returns the repositories over this store.
func (s *Store) Gateway() repositories.Gateway {
	return &gateway{store: s}
}

// GatewayFactory ignores the session: the store has a single tenant.
func (s *Store) GatewayFactory() repositories.GatewayFactory {
	return func(*models.Session) repositories.Gateway {
		return s.Gateway()
	}
}

// newID must be called with mu held for writing.
func (s *Store) newID() string {
	s.nextID++
	return strconv.Itoa(s.nextID)
}

func (s *Store) stamp() *time.Time {
	t := s.now()
	return &t
}

func notFound(resource, id string) error {
	return &domain.NotFoundError{Message: fmt.Sprintf("%s %s not found", resource, id)}
}

func conflict(resource, id, message string) error {
	return &domain.ConflictError{Message: message, ResourceType: resource, ResourceID: id}
}

// containsFold is the containsi filter.
func containsFold(value, needle string) bool {
	return needle == "" || strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}

// sortAndCap orders by key then numeric id and truncates to the page size.
func sortAndCap[T any](s *Store, items []T, key func(T) string, id func(T) string) []T {
	sort.SliceStable(items, func(i, j int) bool {
		ki, kj := key(items[i]), key(items[j])
		if ki != kj {
			return ki < kj
		}
		ni, _ := strconv.Atoi(id(items[i]))
		nj, _ := strconv.Atoi(id(items[j]))
		return ni < nj
	})
	if len(items) > s.pageSize {
		items = items[:s.pageSize]
	}
	return items
}

// resolve fills derived relation fields on copies. Callers hold mu.
func (s *Store) resolveFreelancer(f *models.Freelancer) models.Freelancer {
	out := *f
	out.TaskIDs = []string{}
	for _, t := range s.sortedTasks() {
		if t.FreelancerID == f.ID {
			out.TaskIDs = append(out.TaskIDs, t.ID)
		}
	}
	return out
}

func (s *Store) resolveCustomer(c *models.Customer) models.Customer {
	out := *c
	out.ProjectIDs = []string{}
	for _, p := range s.sortedProjects() {
		if p.CustomerID == c.ID {
			out.ProjectIDs = append(out.ProjectIDs, p.ID)
		}
	}
	return out
}

func (s *Store) resolveProject(p *models.Project) models.Project {
	out := *p
	out.CustomerName = ""
	if c, ok := s.customers[p.CustomerID]; ok {
		out.CustomerName = c.CustomerName
	}
	out.TaskIDs = []string{}
	for _, t := range s.sortedTasks() {
		if t.ProjectID == p.ID {
			out.TaskIDs = append(out.TaskIDs, t.ID)
		}
	}
	return out
}

func (s *Store) resolveTask(t *models.Task) models.Task {
	out := *t
	out.ProjectName, out.FreelancerName = "", ""
	if p, ok := s.projects[t.ProjectID]; ok {
		out.ProjectName = p.ProjectName
	}
	if f, ok := s.freelancers[t.FreelancerID]; ok {
		out.FreelancerName = f.DisplayName()
	}
	return out
}

func (s *Store) sortedTasks() []*models.Task {
	out := make([]*models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return numericLess(out[i].ID, out[j].ID) })
	return out
}

func (s *Store) sortedProjects() []*models.Project {
	out := make([]*models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return numericLess(out[i].ID, out[j].ID) })
	return out
}

func numericLess(a, b string) bool {
	na, _ := strconv.Atoi(a)
	nb, _ := strconv.Atoi(b)
	return na < nb
}
