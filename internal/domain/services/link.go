package services

import (
	"context"

	"freelancedesk/internal/domain/models"
)

// LinkService lists and edits relations between records
type LinkService interface {
	// FreelancerTasks lists the tasks linked to a freelancer
	FreelancerTasks(ctx context.Context, freelancerID string) (*models.RelationList, error)

	// FreelancerProjects lists projects with at least one task linked to the freelancer
	FreelancerProjects(ctx context.Context, freelancerID string) (*models.RelationList, error)

	// CustomerProjects lists a customer's projects
	CustomerProjects(ctx context.Context, customerID string) (*models.RelationList, error)

	// ProjectTasks lists a project's tasks
	ProjectTasks(ctx context.Context, projectID string) (*models.RelationList, error)

	// TaskFreelancer lists the zero-or-one freelancer linked to a task
	TaskFreelancer(ctx context.Context, taskID string) (*models.RelationList, error)

	// TaskCandidates lists tasks without a freelancer that can be linked to
	// freelancerID, filtered by a case-insensitive taskName substring
	TaskCandidates(ctx context.Context, freelancerID, search string) (*models.RelationList, error)

	// LinkTask links a task to a freelancer and returns the refreshed task list
	LinkTask(ctx context.Context, freelancerID, taskID string) (*models.RelationList, error)

	// UnlinkTask removes a task from a freelancer and returns the refreshed task list
	UnlinkTask(ctx context.Context, freelancerID, taskID string) (*models.RelationList, error)

	// AssignFreelancer links a task to a freelancer from the task side and
	// returns the task's refreshed freelancer list
	AssignFreelancer(ctx context.Context, taskID, freelancerID string) (*models.RelationList, error)

	// UnassignFreelancer unlinks whichever freelancer the task has
	UnassignFreelancer(ctx context.Context, taskID string) (*models.RelationList, error)
}
