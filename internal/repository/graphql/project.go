package graphql

import (
	"context"
	"fmt"
	"time"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

type projectAttributes struct {
	models.ProjectAttributes
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
	// shadows the embedded CustomerID, which is the input spelling
	Customer struct {
		Data *entity[struct {
			CustomerName string `json:"customerName"`
		}] `json:"data"`
	} `json:"customer"`
	Tasks relationMany `json:"tasks"`
}

func (a *projectAttributes) toModel(id string) models.Project {
	p := models.Project{
		ID:                id,
		ProjectAttributes: a.ProjectAttributes,
		TaskIDs:           a.Tasks.ids(),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if c := a.Customer.Data; c != nil {
		p.CustomerID = c.ID
		p.CustomerName = c.Attributes.CustomerName
	}
	return p
}

// ProjectRepository implements repositories.ProjectRepository over GraphQL
type ProjectRepository struct {
	client *Client
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(client *Client) repositories.ProjectRepository {
	return &ProjectRepository{client: client}
}

func (r *ProjectRepository) List(ctx context.Context, q repositories.ProjectQuery) ([]models.Project, error) {
	f := containsi(models.Projects.SearchField(), q.Search)
	if q.CustomerID != "" {
		f = and(f, relationEq("customer", q.CustomerID))
	}
	if q.FreelancerID != "" {
		f = and(f, through("tasks", relationEq("freelancer", q.FreelancerID)))
	}

	var out struct {
		Projects collection[projectAttributes] `json:"projects"`
	}
	if err := r.client.exec(ctx, "projects", projectListQuery, r.client.listVars(models.Projects.SortField(), f), &out); err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(out.Projects.Data))
	for _, e := range out.Projects.Data {
		projects = append(projects, e.Attributes.toModel(e.ID))
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var out struct {
		Project single[projectAttributes] `json:"project"`
	}
	if err := r.client.exec(ctx, "project", projectQuery, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	if out.Project.Data == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("project %s not found", id)}
	}

	project := out.Project.Data.Attributes.toModel(out.Project.Data.ID)
	return &project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, attrs *models.ProjectAttributes) (string, error) {
	var out struct {
		CreateProject mutationResult `json:"createProject"`
	}
	if err := r.client.exec(ctx, "createProject", createProjectMutation, map[string]any{"data": attrs}, &out); err != nil {
		return "", err
	}
	return createdID("createProject", out.CreateProject)
}

func (r *ProjectRepository) Update(ctx context.Context, id string, attrs *models.ProjectAttributes) error {
	var out struct {
		UpdateProject mutationResult `json:"updateProject"`
	}
	if err := r.client.exec(ctx, "updateProject", updateProjectMutation, map[string]any{"id": id, "data": attrs}, &out); err != nil {
		return err
	}
	return mutated("project", id, out.UpdateProject)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	var out struct {
		DeleteProject mutationResult `json:"deleteProject"`
	}
	if err := r.client.exec(ctx, "deleteProject", deleteProjectMutation, map[string]any{"id": id}, &out); err != nil {
		return err
	}
	return mutated("project", id, out.DeleteProject)
}
