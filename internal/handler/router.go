package handler

import (
	"net/http"

	"freelancedesk/internal/domain/models"
)

// Handlers groups every handler the router mounts
type Handlers struct {
	Session     *SessionHandler
	Shell       *ShellHandler
	Directory   *DirectoryHandler
	Panel       *PanelHandler
	Freelancers *FreelancerHandler
	Customers   *CustomerHandler
	Projects    *ProjectHandler
	Tasks       *TaskHandler
	Links       *LinkHandler
	Events      *EventsHandler
}

// NewRouter registers the HTTP surface (Go 1.22+ enhanced patterns)
func NewRouter(h *Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check and session
	mux.HandleFunc("GET /health", h.Shell.HealthCheck)
	mux.HandleFunc("GET /login", h.Session.LoginPage)
	mux.HandleFunc("POST /login", h.Session.Login)
	mux.HandleFunc("POST /login/token", h.Session.LoginWithToken)
	mux.HandleFunc("POST /logout", h.Session.Logout)

	// Shell
	mux.HandleFunc("GET /{$}", h.Shell.Dashboard)
	mux.HandleFunc("GET /settings", h.Shell.Settings)

	// Directories, panels and change streams
	for _, kind := range models.AllEntities {
		index := kind.IndexRoute()
		mux.HandleFunc("GET "+index, h.Directory.Index(kind))
		mux.HandleFunc("GET "+index+"/{id}", h.Panel.Panel)
		mux.HandleFunc("GET "+index+"/events", h.Events.Stream(kind))
		if kind.Addable() {
			mux.HandleFunc("GET "+index+"/"+models.SegmentAdd, h.Panel.Panel)
		} else {
			mux.HandleFunc("GET "+index+"/"+models.SegmentSelect, h.Panel.Panel)
		}
	}

	// Freelancer routes
	mux.HandleFunc("POST /freelancers/add", h.Freelancers.Create)
	mux.HandleFunc("POST /freelancers/form", h.Freelancers.Form)
	mux.HandleFunc("PUT /freelancers/{id}", h.Freelancers.Update)
	mux.HandleFunc("DELETE /freelancers/{id}", h.Freelancers.Delete)
	mux.HandleFunc("GET /freelancers/{id}/projects", h.Links.FreelancerProjects())
	mux.HandleFunc("GET /freelancers/{id}/tasks", h.Links.FreelancerTasks())
	mux.HandleFunc("GET /freelancers/{id}/tasks/candidates", h.Links.TaskCandidates())
	mux.HandleFunc("POST /freelancers/{id}/tasks/{taskId}", h.Links.LinkTask())
	mux.HandleFunc("DELETE /freelancers/{id}/tasks/{taskId}", h.Links.UnlinkTask())

	// Customer routes
	mux.HandleFunc("POST /customers/add", h.Customers.Create)
	mux.HandleFunc("POST /customers/form", h.Customers.Form)
	mux.HandleFunc("PUT /customers/{id}", h.Customers.Update)
	mux.HandleFunc("DELETE /customers/{id}", h.Customers.Delete)
	mux.HandleFunc("GET /customers/{id}/projects", h.Links.CustomerProjects())
	mux.HandleFunc("POST /customers/{id}/projects", h.Projects.CreateForCustomer)
	mux.HandleFunc("POST /customers/{id}/projects/form", h.Projects.FormForCustomer)

	// Project routes
	mux.HandleFunc("POST /projects/form", h.Projects.Form)
	mux.HandleFunc("PUT /projects/{id}", h.Projects.Update)
	mux.HandleFunc("DELETE /projects/{id}", h.Projects.Delete)
	mux.HandleFunc("GET /projects/{id}/tasks", h.Links.ProjectTasks())
	mux.HandleFunc("POST /projects/{id}/tasks", h.Tasks.CreateForProject)
	mux.HandleFunc("POST /projects/{id}/tasks/form", h.Tasks.FormForProject)

	// Task routes
	mux.HandleFunc("POST /tasks/form", h.Tasks.Form)
	mux.HandleFunc("PUT /tasks/{id}", h.Tasks.Update)
	mux.HandleFunc("DELETE /tasks/{id}", h.Tasks.Delete)
	mux.HandleFunc("GET /tasks/{id}/freelancer", h.Links.TaskFreelancer())
	mux.HandleFunc("PUT /tasks/{id}/freelancer", h.Links.AssignFreelancer)
	mux.HandleFunc("DELETE /tasks/{id}/freelancer", h.Links.UnassignFreelancer())

	mux.HandleFunc("/", h.Shell.NotFound)

	return mux
}
