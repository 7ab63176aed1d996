package override

// Notifier receives the complete override set after every committed
// change. Implementations must not block; persistence is handed off,
// never awaited.
type Notifier interface {
	OverridesChanged(overrides Map)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Map)

func (f NotifierFunc) OverridesChanged(m Map) { f(m) }

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) OverridesChanged(Map) {}

// Store holds a State and reports committed changes. It is not safe
// for concurrent use; callers serialise access.
type Store struct {
	state    State
	notifier Notifier
}

// NewStore creates a Store. A nil notifier is replaced by NopNotifier.
func NewStore(initial State, notifier Notifier) *Store {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if initial.Overrides == nil {
		initial.Overrides = Map{}
	}
	return &Store{state: initial, notifier: notifier}
}

// State returns the current state value.
func (s *Store) State() State { return s.state }

// Overrides returns a copy of the current overrides.
func (s *Store) Overrides() Map { return s.state.Overrides.Clone() }

// Get implements Reader.
func (s *Store) Get(id string) (StyleOverride, bool) { return s.state.Get(id) }

func (s *Store) SetOverride(id string, style StyleOverride) bool {
	return s.apply(s.state.Set(id, style))
}

func (s *Store) ResetOverride(id string) bool {
	return s.apply(s.state.Reset(id))
}

// CopyStyle fills the clipboard. It does not touch the overrides, so
// nothing is reported to the notifier.
func (s *Store) CopyStyle(id string) bool {
	next, changed := s.state.Copy(id)
	s.state = next
	return changed
}

func (s *Store) PasteStyle(id string) bool {
	return s.apply(s.state.Paste(id))
}

func (s *Store) Undo() bool {
	return s.apply(s.state.Undo())
}

func (s *Store) Redo() bool {
	return s.apply(s.state.Redo())
}

func (s *Store) apply(next State, changed bool) bool {
	if !changed {
		return false
	}
	s.state = next
	s.notifier.OverridesChanged(next.Overrides.Clone())
	return true
}
