package seed

import (
	"context"
	"fmt"
	"log/slog"

	"freelancedesk/internal/domain/repositories"
)

// Report counts what a seeding run created
type Report struct {
	Freelancers int
	Customers   int
	Projects    int
	Tasks       int
	Links       int
}

// Seeder creates fixture records through the API repositories
type Seeder struct {
	gw     repositories.Gateway
	logger *slog.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(gw repositories.Gateway, logger *slog.Logger) *Seeder {
	return &Seeder{
		gw:     gw,
		logger: logger,
	}
}

// Apply creates freelancers first, then customers with their projects and
// tasks, linking each task to the freelancer with the referenced phone number.
// It stops at the first failed mutation.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) (*Report, error) {
	report := &Report{}
	byPhone := make(map[string]string, len(f.Freelancers))

	for i := range f.Freelancers {
		fl := &f.Freelancers[i]
		id, err := s.gw.Freelancers().Create(ctx, fl.attributes())
		if err != nil {
			return report, fmt.Errorf("create freelancer %s %s: %w", fl.FirstName, fl.LastName, err)
		}
		byPhone[fl.PhoneNumber] = id
		report.Freelancers++
		s.logger.Debug("seeded freelancer", "id", id, "last_name", fl.LastName)
	}

	for i := range f.Customers {
		c := &f.Customers[i]
		customerID, err := s.gw.Customers().Create(ctx, c.attributes())
		if err != nil {
			return report, fmt.Errorf("create customer %s: %w", c.CustomerName, err)
		}
		report.Customers++

		for j := range c.Projects {
			p := &c.Projects[j]
			projectID, err := s.gw.Projects().Create(ctx, p.attributes(customerID))
			if err != nil {
				return report, fmt.Errorf("create project %s: %w", p.ProjectName, err)
			}
			report.Projects++

			for k := range p.Tasks {
				t := &p.Tasks[k]
				taskID, err := s.gw.Tasks().Create(ctx, t.attributes(projectID))
				if err != nil {
					return report, fmt.Errorf("create task %s: %w", t.TaskName, err)
				}
				report.Tasks++

				if t.Freelancer == "" {
					continue
				}
				freelancerID := byPhone[t.Freelancer]
				if err := s.gw.Tasks().SetFreelancer(ctx, taskID, &freelancerID); err != nil {
					return report, fmt.Errorf("link task %s: %w", t.TaskName, err)
				}
				report.Links++
			}
		}
	}

	s.logger.Info("seed applied",
		"freelancers", report.Freelancers,
		"customers", report.Customers,
		"projects", report.Projects,
		"tasks", report.Tasks,
		"links", report.Links,
	)
	return report, nil
}
