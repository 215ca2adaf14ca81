package graphql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

type taskAttributes struct {
	models.TaskAttributes
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
	// shadows the embedded ProjectID, which is the input spelling
	Project struct {
		Data *entity[struct {
			ProjectName string `json:"projectName"`
		}] `json:"data"`
	} `json:"project"`
	Freelancer struct {
		Data *entity[struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		}] `json:"data"`
	} `json:"freelancer"`
}

func (a *taskAttributes) toModel(id string) models.Task {
	t := models.Task{
		ID:             id,
		TaskAttributes: a.TaskAttributes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if p := a.Project.Data; p != nil {
		t.ProjectID = p.ID
		t.ProjectName = p.Attributes.ProjectName
	}
	if f := a.Freelancer.Data; f != nil {
		t.FreelancerID = f.ID
		t.FreelancerName = strings.TrimSpace(f.Attributes.FirstName + " " + f.Attributes.LastName)
	}
	return t
}

// TaskRepository implements repositories.TaskRepository over GraphQL
type TaskRepository struct {
	client *Client
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(client *Client) repositories.TaskRepository {
	return &TaskRepository{client: client}
}

func (r *TaskRepository) List(ctx context.Context, q repositories.TaskQuery) ([]models.Task, error) {
	f := containsi(models.Tasks.SearchField(), q.Search)
	if q.ProjectID != "" {
		f = and(f, relationEq("project", q.ProjectID))
	}
	switch {
	case q.FreelancerID != "":
		f = and(f, relationEq("freelancer", q.FreelancerID))
	case q.Unassigned:
		f = and(f, relationNull("freelancer"))
	}

	var out struct {
		Tasks collection[taskAttributes] `json:"tasks"`
	}
	if err := r.client.exec(ctx, "tasks", taskListQuery, r.client.listVars(models.Tasks.SortField(), f), &out); err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(out.Tasks.Data))
	for _, e := range out.Tasks.Data {
		tasks = append(tasks, e.Attributes.toModel(e.ID))
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	var out struct {
		Task single[taskAttributes] `json:"task"`
	}
	if err := r.client.exec(ctx, "task", taskQuery, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	if out.Task.Data == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("task %s not found", id)}
	}

	task := out.Task.Data.Attributes.toModel(out.Task.Data.ID)
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, attrs *models.TaskAttributes) (string, error) {
	var out struct {
		CreateTask mutationResult `json:"createTask"`
	}
	if err := r.client.exec(ctx, "createTask", createTaskMutation, map[string]any{"data": attrs}, &out); err != nil {
		return "", err
	}
	return createdID("createTask", out.CreateTask)
}

func (r *TaskRepository) Update(ctx context.Context, id string, attrs *models.TaskAttributes) error {
	var out struct {
		UpdateTask mutationResult `json:"updateTask"`
	}
	if err := r.client.exec(ctx, "updateTask", updateTaskMutation, map[string]any{"id": id, "data": attrs}, &out); err != nil {
		return err
	}
	return mutated("task", id, out.UpdateTask)
}

// SetFreelancer sends {freelancer: id} or {freelancer: null}
func (r *TaskRepository) SetFreelancer(ctx context.Context, id string, freelancerID *string) error {
	var out struct {
		UpdateTask mutationResult `json:"updateTask"`
	}
	vars := map[string]any{"id": id, "data": map[string]any{"freelancer": freelancerID}}
	if err := r.client.exec(ctx, "updateTask", updateTaskMutation, vars, &out); err != nil {
		return err
	}
	return mutated("task", id, out.UpdateTask)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	var out struct {
		DeleteTask mutationResult `json:"deleteTask"`
	}
	if err := r.client.exec(ctx, "deleteTask", deleteTaskMutation, map[string]any{"id": id}, &out); err != nil {
		return err
	}
	return mutated("task", id, out.DeleteTask)
}
