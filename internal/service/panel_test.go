package service

import (
	"context"
	"errors"
	"testing"

	"freelancedesk/internal/config"
	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
)

func tabNames(tabs []models.Tab) []string {
	names := make([]string, 0, len(tabs))
	for _, t := range tabs {
		names = append(names, t.Name)
	}
	return names
}

func TestPanelModes(t *testing.T) {
	fx := newFixture(t, config.LinkStrategyChild)

	tests := []struct {
		name      string
		path      string
		wantTitle string
		wantTabs  []string
	}{
		{name: "freelancer directory", path: "/freelancers", wantTitle: "Select Freelancer", wantTabs: []string{}},
		{name: "freelancer add", path: "/freelancers/add", wantTitle: "Add Freelancer", wantTabs: []string{"Profile"}},
		{name: "freelancer edit", path: "/freelancers/" + fx.ids["Lovelace"], wantTitle: "Ada Lovelace", wantTabs: []string{"Profile", "Projects", "Tasks"}},
		{name: "customer add", path: "/customers/add", wantTitle: "Add Customer", wantTabs: []string{"Profile"}},
		{name: "customer edit", path: "/customers/" + fx.ids["acme"], wantTitle: "Acme", wantTabs: []string{"Profile", "Projects"}},
		{name: "project select", path: "/projects/select", wantTitle: "Select Project", wantTabs: []string{"Select project"}},
		{name: "project edit", path: "/projects/" + fx.ids["website"], wantTitle: "Website", wantTabs: []string{"Description", "Tasks"}},
		{name: "task select", path: "/tasks/select", wantTitle: "Select Task", wantTabs: []string{"Select task"}},
		{name: "task edit", path: "/tasks/" + fx.ids["Copywriting"], wantTitle: "Copywriting", wantTabs: []string{"Description", "Freelancer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, mode, err := models.ParsePanelRoute(tt.path)
			if err != nil {
				t.Fatalf("ParsePanelRoute() error = %v", err)
			}
			panel, err := fx.set.Panels.Panel(context.Background(), kind, mode)
			if err != nil {
				t.Fatalf("Panel() error = %v", err)
			}
			if panel.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", panel.Title, tt.wantTitle)
			}
			got := tabNames(panel.Tabs)
			if len(got) != len(tt.wantTabs) {
				t.Fatalf("Tabs = %v, want %v", got, tt.wantTabs)
			}
			for i := range got {
				if got[i] != tt.wantTabs[i] {
					t.Errorf("Tabs = %v, want %v", got, tt.wantTabs)
					break
				}
			}
			if mode.IsEdit() && panel.Record == nil {
				t.Error("edit panel without record")
			}
			if !mode.IsEdit() && panel.Record != nil {
				t.Error("record fetched outside edit mode")
			}
		})
	}
}

func TestPanelRelations(t *testing.T) {
	fx := newFixture(t, config.LinkStrategyChild)

	panel, err := fx.set.Panels.Panel(context.Background(), models.Projects, models.EditMode(fx.ids["website"]))
	if err != nil {
		t.Fatal(err)
	}
	tasks := panel.Relations["tasks"]
	if tasks == nil || len(tasks.Items) != 2 {
		t.Fatalf("tasks relation = %+v", tasks)
	}
	if panel.Form.CanDelete {
		t.Error("project with tasks reports canDelete")
	}
}

func TestPanelNotFound(t *testing.T) {
	fx := newFixture(t, config.LinkStrategyChild)

	for _, kind := range models.AllEntities {
		panel, err := fx.set.Panels.Panel(context.Background(), kind, models.EditMode("404"))
		if err != nil {
			t.Fatalf("%s: Panel() error = %v", kind, err)
		}
		if !panel.NotFound || panel.Record != nil {
			t.Errorf("%s: panel = %+v, want notFound", kind, panel)
		}
	}
}

func TestPanelRejectsAddForChildKinds(t *testing.T) {
	fx := newFixture(t, config.LinkStrategyChild)

	_, err := fx.set.Panels.Panel(context.Background(), models.Tasks, models.AddMode())
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Panel(tasks, add) error = %v, want ErrValidation", err)
	}
}
