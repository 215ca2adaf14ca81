package service

import (
	"context"
	"testing"

	"freelancedesk/internal/domain/models"
)

func TestDirectorySearch(t *testing.T) {
	fx := newFixture(t, "child")
	ctx := context.Background()

	tests := []struct {
		name        string
		kind        models.EntityKind
		search      string
		wantTitles  []string
		placeholder string
	}{
		{name: "all freelancers sorted by last name", kind: models.Freelancers, search: "", wantTitles: []string{"Grace Hopper", "Ada Lovelace"}},
		{name: "search is a case-insensitive substring", kind: models.Freelancers, search: "LOVE", wantTitles: []string{"Ada Lovelace"}},
		{name: "search trims whitespace", kind: models.Tasks, search: "  wire ", wantTitles: []string{"Wireframes"}},
		{name: "tasks sorted by name", kind: models.Tasks, search: "", wantTitles: []string{"Copywriting", "Wireframes"}},
		{name: "no match shows placeholder", kind: models.Customers, search: "nobody", placeholder: "No customers found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := fx.set.Directory.List(ctx, tt.kind, tt.search)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if dir.Count != len(tt.wantTitles) {
				t.Fatalf("Count = %d, want %d", dir.Count, len(tt.wantTitles))
			}
			for i, item := range dir.Items {
				if item.Title != tt.wantTitles[i] {
					t.Errorf("item[%d] = %q, want %q", i, item.Title, tt.wantTitles[i])
				}
				if item.Route != tt.kind.RecordRoute(item.ID) {
					t.Errorf("item[%d].Route = %q", i, item.Route)
				}
			}
			if dir.Placeholder != tt.placeholder {
				t.Errorf("Placeholder = %q, want %q", dir.Placeholder, tt.placeholder)
			}
		})
	}
}

// A filtered result is a subset of the unfiltered one, and clearing the
// search restores the full set.
func TestDirectorySearchSubsetAndReset(t *testing.T) {
	fx := newFixture(t, "child")
	ctx := context.Background()

	for _, kind := range models.AllEntities {
		full, err := fx.set.Directory.List(ctx, kind, "")
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		all := map[string]bool{}
		for _, it := range full.Items {
			all[it.ID] = true
		}

		for _, search := range []string{"a", "e", "zz", "W"} {
			filtered, err := fx.set.Directory.List(ctx, kind, search)
			if err != nil {
				t.Fatalf("%s %q: %v", kind, search, err)
			}
			for _, it := range filtered.Items {
				if !all[it.ID] {
					t.Errorf("%s %q returned %s outside the full set", kind, search, it.ID)
				}
			}
		}

		reset, _ := fx.set.Directory.List(ctx, kind, "")
		if reset.Count != full.Count {
			t.Errorf("%s reset Count = %d, want %d", kind, reset.Count, full.Count)
		}
	}
}

func TestFingerprintChangesOnUpdate(t *testing.T) {
	fx := newFixture(t, "child")
	ctx := context.Background()

	_, before, err := fx.set.Directory.Fingerprint(ctx, models.Customers, "")
	if err != nil {
		t.Fatal(err)
	}
	_, same, _ := fx.set.Directory.Fingerprint(ctx, models.Customers, "")
	if before != same {
		t.Fatal("fingerprint differs without a change")
	}

	attrs := models.CustomerAttributes{CustomerName: "Acme Ltd", CustomerPhone: "5551234"}
	if _, err := fx.set.Customers.Update(ctx, fx.ids["acme"], &attrs); err != nil {
		t.Fatal(err)
	}
	_, after, _ := fx.set.Directory.Fingerprint(ctx, models.Customers, "")
	if after == before {
		t.Error("fingerprint unchanged after update")
	}
}

func TestDashboardCounts(t *testing.T) {
	fx := newFixture(t, "child")

	d, err := fx.set.Dashboard.Dashboard(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := map[models.EntityKind]int{
		models.Freelancers: 2,
		models.Customers:   1,
		models.Projects:    1,
		models.Tasks:       2,
	}
	for kind, n := range want {
		if d.Counts[kind] != n {
			t.Errorf("Counts[%s] = %d, want %d", kind, d.Counts[kind], n)
		}
	}
}
