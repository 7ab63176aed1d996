package selection

import (
	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
)

// Phase names the position of the selection state machine.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseHovering Phase = "hovering"
	PhaseSelected Phase = "selected"
)

// State tracks pointer feedback (Hovered) and the element being edited
// (Selected). The two are independent.
type State struct {
	Hovered  *element.Descriptor `json:"hovered"`
	Selected *element.Descriptor `json:"selected"`
}

// Phase reports Selected when something is selected, Hovering when
// only a hover is active, Idle otherwise.
func (s State) Phase() Phase {
	switch {
	case s.Selected != nil:
		return PhaseSelected
	case s.Hovered != nil:
		return PhaseHovering
	default:
		return PhaseIdle
	}
}

// Hover marks d as hovered.
func (s State) Hover(d element.Descriptor) State {
	d = d.Normalize()
	s.Hovered = &d
	return s
}

// Unhover clears the hover if it still points at id. A leave event for
// an element that is no longer hovered changes nothing.
func (s State) Unhover(id string) State {
	if s.Hovered != nil && s.Hovered.ID == id {
		s.Hovered = nil
	}
	return s
}

// Select makes d the element being edited, replacing any previous
// selection.
func (s State) Select(d element.Descriptor) State {
	d = d.Normalize()
	s.Selected = &d
	return s
}

// Close ends editing of the selected element.
func (s State) Close() State {
	s.Selected = nil
	return s
}

// IsSelected reports whether id is the selected element.
func (s State) IsSelected(id string) bool {
	return s.Selected != nil && s.Selected.ID == id
}

// IsHovered reports whether id is the hovered element.
func (s State) IsHovered(id string) bool {
	return s.Hovered != nil && s.Hovered.ID == id
}
