package editor

import (
	"sync"
	"time"

	"github.com/YoussefAz2/elenashop-sub001/pkg/binding"
	"github.com/YoussefAz2/elenashop-sub001/pkg/bridge"
	"github.com/YoussefAz2/elenashop-sub001/pkg/clock"
	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
	"github.com/YoussefAz2/elenashop-sub001/pkg/override"
	"github.com/YoussefAz2/elenashop-sub001/pkg/selection"
	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

// Options configures a Session. Zero values are usable: no
// persistence, no listeners, default history limit and long press.
type Options struct {
	StoreID      string
	Mode         selection.Mode
	Initial      override.Map
	HistoryLimit int

	// Notifier receives the complete override map after every
	// committed change. It is called with the session lock held and
	// must not call back into the session.
	Notifier override.Notifier
	// OnSelection receives the selection after every change.
	OnSelection func(selection.State)
	// Opener is asked to show the editing surface for a selected
	// element.
	Opener binding.Opener

	Clock     clock.Clock
	LongPress time.Duration
}

// Session is the editing state of one store: overrides with history,
// the current selection and the interaction surface. It is safe for
// concurrent use.
type Session struct {
	storeID   string
	mode      selection.Mode
	opener    binding.Opener
	createdAt time.Time

	mu    sync.Mutex
	store *override.Store

	tracker *selection.Tracker
	surface *binding.Surface
}

func New(opts Options) *Session {
	if opts.Notifier == nil {
		opts.Notifier = override.NopNotifier{}
	}
	if opts.Opener == nil {
		opts.Opener = binding.NopOpener{}
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}

	tracker := selection.NewTracker(opts.OnSelection)
	return &Session{
		storeID:   opts.StoreID,
		mode:      opts.Mode,
		opener:    opts.Opener,
		createdAt: opts.Clock.Now(),
		store:     override.NewStore(override.NewState(opts.Initial, opts.HistoryLimit), opts.Notifier),
		tracker:   tracker,
		surface:   binding.NewSurface(opts.Mode, tracker, opts.Opener, opts.Clock, opts.LongPress),
	}
}

func (s *Session) StoreID() string           { return s.storeID }
func (s *Session) Mode() selection.Mode       { return s.mode }
func (s *Session) CreatedAt() time.Time       { return s.createdAt }
func (s *Session) Selection() selection.State { return s.tracker.State() }

func (s *Session) withStore(op func(st *override.Store) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return op(s.store)
}

// SetOverride merges style into the override of id.
func (s *Session) SetOverride(id string, style override.StyleOverride) bool {
	return s.withStore(func(st *override.Store) bool { return st.SetOverride(id, style) })
}

// ResetOverride removes every override of id.
func (s *Session) ResetOverride(id string) bool {
	return s.withStore(func(st *override.Store) bool { return st.ResetOverride(id) })
}

// CopyStyle puts the override of id on the clipboard.
func (s *Session) CopyStyle(id string) bool {
	return s.withStore(func(st *override.Store) bool { return st.CopyStyle(id) })
}

// PasteStyle merges the clipboard into the override of id.
func (s *Session) PasteStyle(id string) bool {
	return s.withStore(func(st *override.Store) bool { return st.PasteStyle(id) })
}

func (s *Session) Undo() bool {
	return s.withStore(func(st *override.Store) bool { return st.Undo() })
}

func (s *Session) Redo() bool {
	return s.withStore(func(st *override.Store) bool { return st.Redo() })
}

// Overrides returns a copy of the current override map.
func (s *Session) Overrides() override.Map {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Overrides()
}

// Hover marks d as hovered. Outside an interactive mode there is no
// hover, and it reports false.
func (s *Session) Hover(d element.Descriptor) bool {
	if !s.mode.Interactive() {
		return false
	}
	s.tracker.Hover(d)
	return true
}

func (s *Session) Unhover(id string) { s.tracker.Unhover(id) }
func (s *Session) CloseSelection()   { s.tracker.Close() }

// Select makes d the element being edited and opens its editor. It
// reports false, changing nothing, outside an interactive mode.
func (s *Session) Select(d element.Descriptor) bool {
	if !s.mode.Interactive() {
		return false
	}
	s.tracker.Select(d)
	s.opener.Open(d.Normalize())
	return true
}

// Dispatch routes a pointer event from the editing surface. Events are
// ignored unless the session is interactive.
func (s *Session) Dispatch(ev binding.PointerEvent) bool {
	return s.surface.Dispatch(ev)
}

// HandleBridge treats a preview message as the latest selection
// intent.
func (s *Session) HandleBridge(m bridge.Message) bool {
	if m.Type != bridge.EditSection || m.SectionID == "" {
		return false
	}
	return s.Select(m.Descriptor())
}

// Element is one element to bind, with the style its markup authors.
type Element struct {
	Descriptor element.Descriptor `json:"descriptor" validate:"required"`
	Authored   binding.Style      `json:"authored,omitempty"`
}

// Bind computes the render contract of elements against cfg and the
// current session state.
func (s *Session) Bind(cfg theme.Config, elements []Element) []binding.Bound {
	deps := binding.Deps{
		Theme:     cfg,
		Overrides: s.Overrides(),
		Selection: s.tracker.State(),
		Mode:      s.mode,
	}
	out := make([]binding.Bound, 0, len(elements))
	for _, e := range elements {
		out = append(out, binding.Bind(e.Descriptor, e.Authored, deps))
	}
	return out
}

// Snapshot is an immutable view of a session for transport.
type Snapshot struct {
	StoreID   string                  `json:"store_id"`
	Mode      selection.Mode          `json:"mode"`
	Phase     selection.Phase         `json:"phase"`
	Selection selection.State         `json:"selection"`
	Overrides override.Map            `json:"overrides"`
	Clipboard *override.StyleOverride `json:"clipboard,omitempty"`
	CanUndo   bool                    `json:"can_undo"`
	CanRedo   bool                    `json:"can_redo"`
	UndoDepth int                     `json:"undo_depth"`
	RedoDepth int                     `json:"redo_depth"`
}

func (s *Session) Snapshot() Snapshot {
	sel := s.tracker.State()

	s.mu.Lock()
	st := s.store.State()
	s.mu.Unlock()

	var clipboard *override.StyleOverride
	if st.Clipboard != nil {
		c := *st.Clipboard
		clipboard = &c
	}
	return Snapshot{
		StoreID:   s.storeID,
		Mode:      s.mode,
		Phase:     sel.Phase(),
		Selection: sel,
		Overrides: st.Overrides.Clone(),
		Clipboard: clipboard,
		CanUndo:   st.CanUndo(),
		CanRedo:   st.CanRedo(),
		UndoDepth: len(st.History.Past),
		RedoDepth: len(st.History.Future),
	}
}
