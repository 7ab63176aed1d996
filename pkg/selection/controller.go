package selection

import (
	"sync"

	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
	"github.com/YoussefAz2/elenashop-sub001/pkg/override"
)

// Controller drives the selection of one editing surface.
type Controller interface {
	Hover(d element.Descriptor)
	Unhover(id string)
	Select(d element.Descriptor)
	Close()
	State() State
}

// Nop is the Controller handed to code running outside an editing
// surface. It ignores every transition.
type Nop struct{}

func (Nop) Hover(element.Descriptor)  {}
func (Nop) Unhover(string)            {}
func (Nop) Select(element.Descriptor) {}
func (Nop) Close()                    {}
func (Nop) State() State              { return State{} }

// Tracker is a Controller holding its State behind a mutex. OnChange,
// when set, is called with the new state after every transition that
// changed it, outside the lock.
type Tracker struct {
	mu       sync.Mutex
	state    State
	OnChange func(State)
}

func NewTracker(onChange func(State)) *Tracker {
	return &Tracker{OnChange: onChange}
}

func (t *Tracker) Hover(d element.Descriptor) {
	t.apply(func(s State) State { return s.Hover(d) })
}

func (t *Tracker) Unhover(id string) {
	t.apply(func(s State) State { return s.Unhover(id) })
}

func (t *Tracker) Select(d element.Descriptor) {
	t.apply(func(s State) State { return s.Select(d) })
}

func (t *Tracker) Close() {
	t.apply(func(s State) State { return s.Close() })
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Tracker) apply(transition func(State) State) {
	t.mu.Lock()
	before := t.state
	after := transition(before)
	t.state = after
	t.mu.Unlock()

	if t.OnChange != nil && !sameState(before, after) {
		t.OnChange(after)
	}
}

func sameState(a, b State) bool {
	return sameDescriptor(a.Hovered, b.Hovered) && sameDescriptor(a.Selected, b.Selected)
}

func sameDescriptor(a, b *element.Descriptor) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Indicator is what a surface renders around one element.
type Indicator struct {
	Hovered    bool `json:"hovered"`
	Selected   bool `json:"selected"`
	Customized bool `json:"customized"`
}

// Indicators computes the rings and badge for id. Customized is
// decided by the override store alone.
func Indicators(id string, s State, overrides override.Reader) Indicator {
	ind := Indicator{
		Hovered:  s.IsHovered(id),
		Selected: s.IsSelected(id),
	}
	if overrides != nil {
		if style, ok := overrides.Get(id); ok && !style.IsEmpty() {
			ind.Customized = true
		}
	}
	return ind
}
