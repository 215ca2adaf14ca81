package models

import "fmt"

// EntityKind names one of the four managed record types. The value is the
// plural route segment ("freelancers").
type EntityKind string

const (
	Freelancers EntityKind = "freelancers"
	Customers   EntityKind = "customers"
	Projects    EntityKind = "projects"
	Tasks       EntityKind = "tasks"
)

// AllEntities lists the kinds in navigation order.
var AllEntities = []EntityKind{Freelancers, Customers, Projects, Tasks}

type entityMeta struct {
	singular    string
	label       string
	sortField   string
	searchField string
	addable     bool
}

var entities = map[EntityKind]entityMeta{
	Freelancers: {singular: "freelancer", label: "Freelancer", sortField: "lastName", searchField: "lastName", addable: true},
	Customers:   {singular: "customer", label: "Customer", sortField: "customerName", searchField: "customerName", addable: true},
	Projects:    {singular: "project", label: "Project", sortField: "projectName", searchField: "projectName"},
	Tasks:       {singular: "task", label: "Task", sortField: "taskName", searchField: "taskName"},
}

// ParseEntityKind maps a route segment to its kind.
func ParseEntityKind(s string) (EntityKind, error) {
	k := EntityKind(s)
	if _, ok := entities[k]; !ok {
		return "", fmt.Errorf("unknown entity %q", s)
	}
	return k, nil
}

// Singular returns the lower-case singular name ("freelancer").
func (k EntityKind) Singular() string { return entities[k].singular }

// Label returns the display label ("Freelancer").
func (k EntityKind) Label() string { return entities[k].label }

// SortField is the attribute a directory of this kind is sorted by.
func (k EntityKind) SortField() string { return entities[k].sortField }

// SearchField is the attribute the directory search box filters on.
func (k EntityKind) SearchField() string { return entities[k].searchField }

// Addable reports whether records of this kind are created from their own
// "add" route. Projects and tasks are created from their parent's panel.
func (k EntityKind) Addable() bool { return entities[k].addable }

// IndexRoute is the directory route ("/freelancers").
func (k EntityKind) IndexRoute() string { return "/" + string(k) }

// RecordRoute is the panel route of one record ("/freelancers/42").
func (k EntityKind) RecordRoute(id string) string { return "/" + string(k) + "/" + id }

// EntryRoute is where the panel lands when nothing is selected: the add
// form for addable kinds, the select placeholder otherwise.
func (k EntityKind) EntryRoute() string {
	if k.Addable() {
		return k.IndexRoute() + "/" + SegmentAdd
	}
	return k.IndexRoute() + "/" + SegmentSelect
}
