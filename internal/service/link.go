package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"freelancedesk/internal/config"
	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
	"freelancedesk/internal/domain/services"
)

// linkService implements the LinkService interface
type linkService struct {
	gw       repositories.Gateway
	strategy string
	logger   *slog.Logger
}

// NewLinkService creates a link service. strategy is config.LinkStrategyChild
// or config.LinkStrategyArray.
func NewLinkService(gw repositories.Gateway, strategy string, logger *slog.Logger) services.LinkService {
	return &linkService{gw: gw, strategy: strategy, logger: logger}
}

func relationList(parent string, items []models.DirectoryItem, placeholder string) *models.RelationList {
	list := &models.RelationList{
		Parent:   parent,
		Items:    items,
		ChildIDs: itemIDs(items),
	}
	if len(items) == 0 {
		list.Placeholder = placeholder
	}
	return list
}

func (s *linkService) FreelancerTasks(ctx context.Context, freelancerID string) (*models.RelationList, error) {
	tasks, err := s.gw.Tasks().List(ctx, repositories.TaskQuery{FreelancerID: freelancerID})
	if err != nil {
		return nil, fmt.Errorf("list freelancer tasks: %w", err)
	}
	return relationList(models.Freelancers.RecordRoute(freelancerID), mapItems(tasks, taskItem), "No tasks linked"), nil
}

func (s *linkService) FreelancerProjects(ctx context.Context, freelancerID string) (*models.RelationList, error) {
	projects, err := s.gw.Projects().List(ctx, repositories.ProjectQuery{FreelancerID: freelancerID})
	if err != nil {
		return nil, fmt.Errorf("list freelancer projects: %w", err)
	}
	return relationList(models.Freelancers.RecordRoute(freelancerID), mapItems(projects, projectItem), "No projects"), nil
}

func (s *linkService) CustomerProjects(ctx context.Context, customerID string) (*models.RelationList, error) {
	projects, err := s.gw.Projects().List(ctx, repositories.ProjectQuery{CustomerID: customerID})
	if err != nil {
		return nil, fmt.Errorf("list customer projects: %w", err)
	}
	return relationList(models.Customers.RecordRoute(customerID), mapItems(projects, projectItem), "No projects"), nil
}

func (s *linkService) ProjectTasks(ctx context.Context, projectID string) (*models.RelationList, error) {
	tasks, err := s.gw.Tasks().List(ctx, repositories.TaskQuery{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("list project tasks: %w", err)
	}
	return relationList(models.Projects.RecordRoute(projectID), mapItems(tasks, taskItem), "No tasks"), nil
}

func (s *linkService) TaskFreelancer(ctx context.Context, taskID string) (*models.RelationList, error) {
	task, err := s.gw.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return taskFreelancerList(task), nil
}

func taskFreelancerList(task *models.Task) *models.RelationList {
	items := []models.DirectoryItem{}
	if task.FreelancerID != "" {
		items = append(items, models.DirectoryItem{
			ID:    task.FreelancerID,
			Title: task.FreelancerName,
			Route: models.Freelancers.RecordRoute(task.FreelancerID),
		})
	}
	return relationList(models.Tasks.RecordRoute(task.ID), items, "No freelancer assigned")
}

func (s *linkService) TaskCandidates(ctx context.Context, freelancerID, search string) (*models.RelationList, error) {
	search = strings.TrimSpace(search)
	tasks, err := s.gw.Tasks().List(ctx, repositories.TaskQuery{Search: search, Unassigned: true})
	if err != nil {
		return nil, fmt.Errorf("list task candidates: %w", err)
	}
	list := relationList(models.Freelancers.RecordRoute(freelancerID), mapItems(tasks, taskItem), "No unassigned tasks found")
	list.Search = search
	return list, nil
}

func (s *linkService) LinkTask(ctx context.Context, freelancerID, taskID string) (*models.RelationList, error) {
	if err := s.link(ctx, freelancerID, taskID); err != nil {
		return nil, err
	}
	return s.FreelancerTasks(ctx, freelancerID)
}

func (s *linkService) UnlinkTask(ctx context.Context, freelancerID, taskID string) (*models.RelationList, error) {
	task, err := s.gw.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.FreelancerID != freelancerID {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("task %s is not linked to freelancer %s", taskID, freelancerID)}
	}
	if err := s.unlink(ctx, freelancerID, taskID); err != nil {
		return nil, err
	}
	return s.FreelancerTasks(ctx, freelancerID)
}

func (s *linkService) AssignFreelancer(ctx context.Context, taskID, freelancerID string) (*models.RelationList, error) {
	if err := s.link(ctx, freelancerID, taskID); err != nil {
		return nil, err
	}
	return s.TaskFreelancer(ctx, taskID)
}

func (s *linkService) UnassignFreelancer(ctx context.Context, taskID string) (*models.RelationList, error) {
	task, err := s.gw.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.FreelancerID == "" {
		return taskFreelancerList(task), nil
	}
	if err := s.unlink(ctx, task.FreelancerID, taskID); err != nil {
		return nil, err
	}
	return s.TaskFreelancer(ctx, taskID)
}

// link attaches the task to the freelancer. Linking an already linked pair is
// a no-op; a task linked elsewhere must be unlinked first.
func (s *linkService) link(ctx context.Context, freelancerID, taskID string) error {
	freelancer, err := s.gw.Freelancers().GetByID(ctx, freelancerID)
	if err != nil {
		return err
	}
	task, err := s.gw.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	switch task.FreelancerID {
	case freelancerID:
		return nil
	case "":
	default:
		return &domain.ConflictError{
			Message:      fmt.Sprintf("task %q is already linked to %s", task.TaskName, task.FreelancerName),
			ResourceType: "freelancer",
			ResourceID:   task.FreelancerID,
		}
	}

	if s.strategy == config.LinkStrategyArray {
		// read-modify-write of the parent's array; a concurrent link can be lost
		ids := freelancer.TaskIDs
		if !slices.Contains(ids, taskID) {
			ids = append(slices.Clone(ids), taskID)
		}
		err = s.gw.Freelancers().SetTasks(ctx, freelancerID, ids)
	} else {
		err = s.gw.Tasks().SetFreelancer(ctx, taskID, &freelancerID)
	}
	if err != nil {
		s.logger.Warn("task link failed", "freelancer_id", freelancerID, "task_id", taskID, "error", err)
		return fmt.Errorf("link task: %w", err)
	}

	s.logger.Info("task linked", "freelancer_id", freelancerID, "task_id", taskID, "strategy", s.strategy)
	return nil
}

func (s *linkService) unlink(ctx context.Context, freelancerID, taskID string) error {
	var err error
	if s.strategy == config.LinkStrategyArray {
		var freelancer *models.Freelancer
		freelancer, err = s.gw.Freelancers().GetByID(ctx, freelancerID)
		if err != nil {
			return err
		}
		ids := slices.DeleteFunc(slices.Clone(freelancer.TaskIDs), func(id string) bool { return id == taskID })
		err = s.gw.Freelancers().SetTasks(ctx, freelancerID, ids)
	} else {
		err = s.gw.Tasks().SetFreelancer(ctx, taskID, nil)
	}
	if err != nil {
		s.logger.Warn("task unlink failed", "freelancer_id", freelancerID, "task_id", taskID, "error", err)
		return fmt.Errorf("unlink task: %w", err)
	}

	s.logger.Info("task unlinked", "freelancer_id", freelancerID, "task_id", taskID, "strategy", s.strategy)
	return nil
}
