package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Literal route segments that select a mode instead of a record id.
const (
	SegmentAdd    = "add"
	SegmentSelect = "select"
)

// ModeKind discriminates PanelMode.
type ModeKind int

const (
	ModeNotSelected ModeKind = iota
	ModeAdd
	ModeEdit
)

func (k ModeKind) String() string {
	switch k {
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	default:
		return "not-selected"
	}
}

// PanelMode is the panel state derived from the route:
// NotSelected | Add | Edit(id). ID is set only for ModeEdit.
type PanelMode struct {
	Kind ModeKind
	ID   string
}

func NotSelected() PanelMode { return PanelMode{Kind: ModeNotSelected} }

func AddMode() PanelMode { return PanelMode{Kind: ModeAdd} }

func EditMode(id string) PanelMode { return PanelMode{Kind: ModeEdit, ID: id} }

func (m PanelMode) IsAdd() bool  { return m.Kind == ModeAdd }
func (m PanelMode) IsEdit() bool { return m.Kind == ModeEdit }

func (m PanelMode) String() string {
	if m.Kind == ModeEdit {
		return fmt.Sprintf("edit(%s)", m.ID)
	}
	return m.Kind.String()
}

// MarshalJSON encodes the mode as {"kind":"edit","id":"42"}.
func (m PanelMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		ID   string `json:"id,omitempty"`
	}{Kind: m.Kind.String(), ID: m.ID})
}

// ParsePanelRoute derives entity and mode from a panel path:
//
//	/freelancers        -> NotSelected
//	/freelancers/add    -> Add
//	/projects/select    -> NotSelected
//	/freelancers/42     -> Edit(42)
//
// Segments after the id (sub-resources such as /freelancers/42/tasks) do not
// change the mode. "add" is rejected for kinds that are created from a parent.
func ParsePanelRoute(path string) (EntityKind, PanelMode, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	kind, err := ParseEntityKind(segments[0])
	if err != nil {
		return "", PanelMode{}, err
	}

	if len(segments) == 1 {
		return kind, NotSelected(), nil
	}

	switch seg := segments[1]; seg {
	case "":
		return kind, NotSelected(), nil
	case SegmentSelect:
		return kind, NotSelected(), nil
	case SegmentAdd:
		if !kind.Addable() {
			return "", PanelMode{}, fmt.Errorf("%s cannot be added directly", kind)
		}
		return kind, AddMode(), nil
	default:
		return kind, EditMode(seg), nil
	}
}
