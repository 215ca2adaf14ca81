package models

import "time"

// DirectoryItem is one clickable row of a directory or relation list.
type DirectoryItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Route    string `json:"route"`
}

// Directory is the list view of one entity kind.
type Directory struct {
	Entity EntityKind      `json:"entity"`
	Search string          `json:"search"`
	Count  int             `json:"count"`
	Items  []DirectoryItem `json:"items"`
	// Placeholder is set instead of rows when the result is empty.
	Placeholder string `json:"placeholder,omitempty"`
}

// Tab is a panel sub-view. Route is the endpoint that renders its content.
type Tab struct {
	Name  string `json:"name"`
	Route string `json:"route,omitempty"`
	// Info marks the informational tab shown while nothing is selected.
	Info bool `json:"info,omitempty"`
}

// Panel is the detail view of one record, its add form, or the
// nothing-selected placeholder.
type Panel struct {
	Entity   EntityKind `json:"entity"`
	Mode     PanelMode  `json:"mode"`
	Title    string     `json:"title"`
	Tabs     []Tab      `json:"tabs"`
	Record   any        `json:"record,omitempty"`
	Form     *FormState `json:"form,omitempty"`
	// Relations holds the content of relation tabs, keyed by tab route suffix.
	Relations map[string]*RelationList `json:"relations,omitempty"`
	NotFound  bool                     `json:"notFound,omitempty"`
}

// FormState mirrors the save/delete affordances of a profile form.
type FormState struct {
	Defaults  any               `json:"defaults"`
	Dirty     bool              `json:"dirty"`
	Valid     bool              `json:"valid"`
	Errors    map[string]string `json:"errors,omitempty"`
	CanSave   bool              `json:"canSave"`
	CanDelete bool              `json:"canDelete"`
}

// SaveResult is returned by create/update/delete. Redirect is the route the
// client navigates to (empty when it stays on the current panel).
type SaveResult struct {
	Saved    bool       `json:"saved"`
	Record   any        `json:"record,omitempty"`
	Form     *FormState `json:"form,omitempty"`
	Redirect string     `json:"redirect,omitempty"`
}

// RelationList is the content of a linked-children tab or the link picker.
type RelationList struct {
	Parent      string          `json:"parent"`
	Items       []DirectoryItem `json:"items"`
	Search      string          `json:"search,omitempty"`
	Placeholder string          `json:"placeholder,omitempty"`
	// ChildIDs is the parent's current linked id set.
	ChildIDs []string `json:"childIds"`
}

// Dashboard is the landing page summary.
type Dashboard struct {
	Counts map[EntityKind]int `json:"counts"`
}

// ChangeEvent is pushed on a directory event stream when the listing changes.
type ChangeEvent struct {
	Entity      EntityKind `json:"entity"`
	Search      string     `json:"search,omitempty"`
	Fingerprint string     `json:"fingerprint"`
	Directory   *Directory `json:"directory"`
	At          time.Time  `json:"at"`
}
