package service

import (
	"log/slog"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
	"freelancedesk/internal/domain/services"
)

// FactoryConfig holds what every per-session service Set shares.
type FactoryConfig struct {
	Gateways     repositories.GatewayFactory
	LinkStrategy string
	Guard        *SubmitGuard
	Logger       *slog.Logger
}

// NewFactory returns a services.Factory. Each Set wraps a gateway acting
// with the session's token; the services themselves hold no state.
func NewFactory(cfg *FactoryConfig) services.Factory {
	guard := cfg.Guard
	if guard == nil {
		guard = NewSubmitGuard()
	}

	return func(session *models.Session) *services.Set {
		gw := cfg.Gateways(session)

		sessionID := ""
		logger := cfg.Logger
		if session != nil {
			sessionID = session.ID
			logger = logger.With("user_id", session.User.ID)
		}

		directory := NewDirectoryService(gw, logger)
		links := NewLinkService(gw, cfg.LinkStrategy, logger)
		freelancers := NewFreelancerService(gw.Freelancers(), guard, sessionID, logger).(*freelancerService)
		customers := NewCustomerService(gw.Customers(), guard, sessionID, logger).(*customerService)
		projects := NewProjectService(gw, guard, sessionID, logger).(*projectService)
		tasks := NewTaskService(gw, guard, sessionID, logger).(*taskService)

		return &services.Set{
			Directory:   directory,
			Panels:      newPanelService(freelancers, customers, projects, tasks, links, logger),
			Freelancers: freelancers,
			Customers:   customers,
			Projects:    projects,
			Tasks:       tasks,
			Links:       links,
			Dashboard:   NewDashboardService(directory),
		}
	}
}
