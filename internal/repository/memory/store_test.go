package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

func seedStore(t *testing.T) (*Store, map[string]string) {
	t.Helper()
	ctx := context.Background()
	s := NewStore(0)
	gw := s.Gateway()
	ids := map[string]string{}

	mustID := func(key string, id string, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("create %s: %v", key, err)
		}
		ids[key] = id
	}

	id, err := gw.Customers().Create(ctx, &models.CustomerAttributes{CustomerName: "Acme", CustomerPhone: "123"})
	mustID("acme", id, err)
	id, err = gw.Projects().Create(ctx, &models.ProjectAttributes{
		ProjectName:   "Website",
		ProjectStart:  models.MustParseDate("2024-01-01"),
		ProjectFinish: models.MustParseDate("2024-02-01"),
		CustomerID:    ids["acme"],
	})
	mustID("website", id, err)
	for _, name := range []string{"Wireframes", "Copy", "Deploy"} {
		id, err = gw.Tasks().Create(ctx, &models.TaskAttributes{
			TaskName:   name,
			TaskStart:  models.MustParseDate("2024-01-02"),
			TaskFinish: models.MustParseDate("2024-01-05"),
			ProjectID:  ids["website"],
		})
		mustID(name, id, err)
	}
	for _, f := range []models.FreelancerAttributes{
		{FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "111"},
		{FirstName: "Alan", LastName: "Turing", PhoneNumber: "222"},
		{FirstName: "Grace", LastName: "Hopper", PhoneNumber: "333"},
	} {
		id, err = gw.Freelancers().Create(ctx, &f)
		mustID(f.LastName, id, err)
	}
	return s, ids
}

func TestFreelancerListSearch(t *testing.T) {
	s, _ := seedStore(t)
	repo := s.Gateway().Freelancers()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "no search returns all sorted", search: "", want: []string{"Hopper", "Lovelace", "Turing"}},
		{name: "case insensitive substring", search: "OVE", want: []string{"Lovelace"}},
		{name: "no match", search: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(context.Background(), tt.search)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, f := range got {
				if f.LastName != tt.want[i] {
					t.Errorf("[%d] = %s, want %s", i, f.LastName, tt.want[i])
				}
			}
		})
	}
}

func TestPageSizeCapsList(t *testing.T) {
	s := NewStore(2)
	repo := s.Gateway().Customers()
	for _, name := range []string{"a", "b", "c"} {
		if _, err := repo.Create(context.Background(), &models.CustomerAttributes{CustomerName: name}); err != nil {
			t.Fatal(err)
		}
	}
	got, _ := repo.List(context.Background(), "")
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestTaskFreelancerBacklink(t *testing.T) {
	s, ids := seedStore(t)
	ctx := context.Background()
	gw := s.Gateway()
	ada := ids["Lovelace"]

	if err := gw.Tasks().SetFreelancer(ctx, ids["Copy"], &ada); err != nil {
		t.Fatalf("SetFreelancer() error = %v", err)
	}

	f, _ := gw.Freelancers().GetByID(ctx, ada)
	if len(f.TaskIDs) != 1 || f.TaskIDs[0] != ids["Copy"] {
		t.Errorf("taskIds = %v, want [%s]", f.TaskIDs, ids["Copy"])
	}
	task, _ := gw.Tasks().GetByID(ctx, ids["Copy"])
	if task.FreelancerName != "Ada Lovelace" || task.ProjectName != "Website" {
		t.Errorf("task = %+v", task)
	}

	unassigned, _ := gw.Tasks().List(ctx, repositories.TaskQuery{Unassigned: true})
	for _, u := range unassigned {
		if u.ID == ids["Copy"] {
			t.Errorf("linked task listed as unassigned")
		}
	}

	projects, _ := gw.Projects().List(ctx, repositories.ProjectQuery{FreelancerID: ada})
	if len(projects) != 1 || projects[0].ID != ids["website"] {
		t.Errorf("freelancer projects = %v", projects)
	}
}

func TestSetTasksReplacesRelation(t *testing.T) {
	s, ids := seedStore(t)
	ctx := context.Background()
	gw := s.Gateway()
	ada := ids["Lovelace"]

	if err := gw.Freelancers().SetTasks(ctx, ada, []string{ids["Copy"], ids["Deploy"]}); err != nil {
		t.Fatal(err)
	}
	if err := gw.Freelancers().SetTasks(ctx, ada, []string{ids["Deploy"]}); err != nil {
		t.Fatal(err)
	}

	f, _ := gw.Freelancers().GetByID(ctx, ada)
	if len(f.TaskIDs) != 1 || f.TaskIDs[0] != ids["Deploy"] {
		t.Errorf("taskIds = %v, want [%s]", f.TaskIDs, ids["Deploy"])
	}
	copyTask, _ := gw.Tasks().GetByID(ctx, ids["Copy"])
	if copyTask.FreelancerID != "" {
		t.Errorf("released task still linked to %s", copyTask.FreelancerID)
	}
}

func TestUniqueKeys(t *testing.T) {
	s, ids := seedStore(t)
	ctx := context.Background()
	gw := s.Gateway()

	_, err := gw.Freelancers().Create(ctx, &models.FreelancerAttributes{LastName: "Dup", PhoneNumber: "111"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate phone: error = %v, want ErrConflict", err)
	}
	_, err = gw.Customers().Create(ctx, &models.CustomerAttributes{CustomerName: "Acme"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate customer: error = %v, want ErrConflict", err)
	}
	_, err = gw.Tasks().Create(ctx, &models.TaskAttributes{
		TaskName:  "Copy",
		TaskStart: models.MustParseDate("2024-01-02"),
		ProjectID: ids["website"],
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate task: error = %v, want ErrConflict", err)
	}
}

func TestMissingRecords(t *testing.T) {
	s, _ := seedStore(t)
	ctx := context.Background()
	gw := s.Gateway()

	if _, err := gw.Projects().GetByID(ctx, "404"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
	if err := gw.Tasks().Delete(ctx, "404"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
	_, err := gw.Projects().Create(ctx, &models.ProjectAttributes{ProjectName: "x", CustomerID: "404"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Create() with unknown customer error = %v, want ErrValidation", err)
	}
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	now := time.Now()

	live := &models.Session{ID: "live", Token: "t1", ExpiresAt: now.Add(time.Hour)}
	stale := &models.Session{ID: "stale", Token: "t2", ExpiresAt: now.Add(-time.Minute)}
	for _, s := range []*models.Session{live, stale} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatal(err)
		}
	}

	n, err := repo.DeleteExpired(ctx, now)
	if err != nil || n != 1 {
		t.Fatalf("DeleteExpired() = %d, %v, want 1", n, err)
	}
	if _, err := repo.GetByID(ctx, "stale"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expired session still present: %v", err)
	}
	got, err := repo.GetByID(ctx, "live")
	if err != nil || got.Token != "t1" {
		t.Errorf("GetByID() = %+v, %v", got, err)
	}
	if err := repo.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete() of missing session error = %v", err)
	}
}

func TestAuthenticator(t *testing.T) {
	auth := NewAuthenticator(map[string]string{"admin": "secret"})

	token, user, err := auth.Login(context.Background(), "admin", "secret")
	if err != nil || token == "" || user.Username != "admin" {
		t.Errorf("Login() = %q, %+v, %v", token, user, err)
	}
	if _, _, err := auth.Login(context.Background(), "admin", "nope"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Login() bad password error = %v, want ErrUnauthorized", err)
	}
}
