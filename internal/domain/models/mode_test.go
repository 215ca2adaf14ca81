package models

import (
	"encoding/json"
	"testing"
)

func TestParsePanelRoute(t *testing.T) {
	tests := []struct {
		path     string
		wantKind EntityKind
		wantMode PanelMode
		wantErr  bool
	}{
		{path: "/freelancers", wantKind: Freelancers, wantMode: NotSelected()},
		{path: "/freelancers/", wantKind: Freelancers, wantMode: NotSelected()},
		{path: "/freelancers/add", wantKind: Freelancers, wantMode: AddMode()},
		{path: "/freelancers/42", wantKind: Freelancers, wantMode: EditMode("42")},
		{path: "/freelancers/42/tasks", wantKind: Freelancers, wantMode: EditMode("42")},
		{path: "/customers/add", wantKind: Customers, wantMode: AddMode()},
		{path: "/projects/select", wantKind: Projects, wantMode: NotSelected()},
		{path: "/projects/7", wantKind: Projects, wantMode: EditMode("7")},
		{path: "/tasks/select", wantKind: Tasks, wantMode: NotSelected()},
		{path: "/projects/add", wantErr: true},
		{path: "/tasks/add", wantErr: true},
		{path: "/invoices/1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, mode, err := ParsePanelRoute(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParsePanelRoute(%q) = %s %s, want error", tt.path, kind, mode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePanelRoute(%q) error = %v", tt.path, err)
			}
			if kind != tt.wantKind || mode != tt.wantMode {
				t.Errorf("ParsePanelRoute(%q) = %s %s, want %s %s", tt.path, kind, mode, tt.wantKind, tt.wantMode)
			}
		})
	}
}

func TestPanelModeJSON(t *testing.T) {
	body, err := json.Marshal(EditMode("42"))
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != `{"kind":"edit","id":"42"}` {
		t.Errorf("Marshal(edit) = %s", body)
	}
	body, _ = json.Marshal(NotSelected())
	if string(body) != `{"kind":"not-selected"}` {
		t.Errorf("Marshal(not-selected) = %s", body)
	}
}

func TestEntityRoutes(t *testing.T) {
	tests := []struct {
		kind  EntityKind
		entry string
	}{
		{kind: Freelancers, entry: "/freelancers/add"},
		{kind: Customers, entry: "/customers/add"},
		{kind: Projects, entry: "/projects/select"},
		{kind: Tasks, entry: "/tasks/select"},
	}
	for _, tt := range tests {
		if got := tt.kind.EntryRoute(); got != tt.entry {
			t.Errorf("%s.EntryRoute() = %q, want %q", tt.kind, got, tt.entry)
		}
	}
	if got := Tasks.RecordRoute("3"); got != "/tasks/3" {
		t.Errorf("RecordRoute = %q", got)
	}
}
