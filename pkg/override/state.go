package override

// DefaultHistoryLimit bounds the undo stack.
const DefaultHistoryLimit = 50

// History keeps the snapshots for undo and redo, most recent last.
type History struct {
	Past   []Map `json:"past"`
	Future []Map `json:"future"`
}

// State is the override part of an editing session. Transitions return
// the next State and never modify the receiver, so a State value can
// be kept as a snapshot.
type State struct {
	Overrides Map            `json:"overrides"`
	Clipboard *StyleOverride `json:"clipboard"`
	History   History        `json:"history"`

	// Limit bounds History.Past; zero means DefaultHistoryLimit.
	Limit int `json:"-"`
}

// NewState starts a session from persisted overrides.
func NewState(initial Map, limit int) State {
	if initial == nil {
		initial = Map{}
	}
	return State{Overrides: initial.Clone().Prune(), Limit: limit}
}

func (s State) limit() int {
	if s.Limit <= 0 {
		return DefaultHistoryLimit
	}
	return s.Limit
}

// Get returns the override of id.
func (s State) Get(id string) (StyleOverride, bool) {
	return s.Overrides.Get(id)
}

// Set merges style into the override of id. The previous overrides
// become an undo snapshot and the redo stack is cleared. A merge that
// leaves the overrides unchanged is a no-op.
func (s State) Set(id string, style StyleOverride) (State, bool) {
	current := s.Overrides[id]
	merged := current.Merge(style)
	if merged.IsEmpty() || merged == current {
		return s, false
	}

	next := s.Overrides.Clone()
	next[id] = merged
	return s.commit(next), true
}

// Reset removes the override of id entirely. Resetting an element
// without an override is a no-op.
func (s State) Reset(id string) (State, bool) {
	if _, ok := s.Overrides[id]; !ok {
		return s, false
	}

	next := s.Overrides.Clone()
	delete(next, id)
	return s.commit(next), true
}

// Copy puts the override of id in the clipboard, replacing what was
// there. Copying an element without an override is a no-op.
func (s State) Copy(id string) (State, bool) {
	style, ok := s.Overrides[id]
	if !ok || style.IsEmpty() {
		return s, false
	}
	s.Clipboard = &style
	return s, true
}

// Paste applies the clipboard to id with the Set merge rule.
func (s State) Paste(id string) (State, bool) {
	if s.Clipboard == nil || s.Clipboard.IsEmpty() {
		return s, false
	}
	return s.Set(id, *s.Clipboard)
}

// Undo restores the most recent snapshot.
func (s State) Undo() (State, bool) {
	n := len(s.History.Past)
	if n == 0 {
		return s, false
	}

	previous := s.History.Past[n-1]
	s.History = History{
		Past:   s.History.Past[:n-1 : n-1],
		Future: appendSnapshot(s.History.Future, s.Overrides),
	}
	s.Overrides = previous
	return s, true
}

// Redo reapplies the most recently undone snapshot.
func (s State) Redo() (State, bool) {
	n := len(s.History.Future)
	if n == 0 {
		return s, false
	}

	following := s.History.Future[n-1]
	s.History = History{
		Past:   appendSnapshot(s.History.Past, s.Overrides),
		Future: s.History.Future[:n-1 : n-1],
	}
	s.Overrides = following
	return s, true
}

// CanUndo reports whether Undo would change anything.
func (s State) CanUndo() bool { return len(s.History.Past) > 0 }

// CanRedo reports whether Redo would change anything.
func (s State) CanRedo() bool { return len(s.History.Future) > 0 }

func (s State) commit(next Map) State {
	past := appendSnapshot(s.History.Past, s.Overrides)
	if over := len(past) - s.limit(); over > 0 {
		past = past[over:]
	}
	s.History = History{Past: past, Future: nil}
	s.Overrides = next
	return s
}

// appendSnapshot appends to a fresh backing array so earlier State
// values never see the new element.
func appendSnapshot(stack []Map, m Map) []Map {
	out := make([]Map, len(stack), len(stack)+1)
	copy(out, stack)
	return append(out, m)
}
