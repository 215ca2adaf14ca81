package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"freelancedesk/internal/config"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/services"
	"freelancedesk/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr(f float64) *float64 { return &f }

type fixture struct {
	set   *services.Set
	store *memory.Store
	ids   map[string]string
}

// newFixture seeds one customer with one project holding two tasks, and
// two freelancers.
func newFixture(t *testing.T, strategy string) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore(config.DefaultPageSize)
	gw := store.Gateway()
	ids := map[string]string{}

	must := func(key, id string, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
		ids[key] = id
	}

	id, err := gw.Customers().Create(ctx, &models.CustomerAttributes{CustomerName: "Acme", CustomerPhone: "5551234"})
	must("acme", id, err)
	id, err = gw.Projects().Create(ctx, &models.ProjectAttributes{
		ProjectName:   "Website",
		ProjectStart:  models.MustParseDate("2024-01-01"),
		ProjectFinish: models.MustParseDate("2024-03-01"),
		CustomerID:    ids["acme"],
	})
	must("website", id, err)
	for _, name := range []string{"Wireframes", "Copywriting"} {
		id, err = gw.Tasks().Create(ctx, &models.TaskAttributes{
			TaskName:   name,
			TaskStart:  models.MustParseDate("2024-01-02"),
			TaskFinish: models.MustParseDate("2024-01-20"),
			ProjectID:  ids["website"],
		})
		must(name, id, err)
	}
	for _, f := range []models.FreelancerAttributes{
		{FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "111"},
		{FirstName: "Grace", LastName: "Hopper", PhoneNumber: "222"},
	} {
		id, err = gw.Freelancers().Create(ctx, &f)
		must(f.LastName, id, err)
	}

	factory := NewFactory(&FactoryConfig{
		Gateways:     store.GatewayFactory(),
		LinkStrategy: strategy,
		Logger:       testLogger(),
	})
	session := &models.Session{ID: "s1", User: models.User{ID: "1"}}
	return &fixture{set: factory(session), store: store, ids: ids}
}
