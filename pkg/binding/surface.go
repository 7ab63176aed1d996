package binding

import (
	"sync"
	"time"

	"github.com/YoussefAz2/elenashop-sub001/pkg/clock"
	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
	"github.com/YoussefAz2/elenashop-sub001/pkg/selection"
)

// Pointer event names accepted by Surface.Dispatch.
const (
	EventPointerEnter = "pointerenter"
	EventPointerLeave = "pointerleave"
	EventClick        = "click"
	EventContextMenu  = "contextmenu"
	EventPressStart   = "pressstart"
	EventPressEnd     = "pressend"
	EventScroll       = "scroll"
)

// PointerEvent is one input event aimed at a bound element.
type PointerEvent struct {
	Event   string             `json:"event" validate:"required,oneof=pointerenter pointerleave click contextmenu pressstart pressend scroll"`
	Element element.Descriptor `json:"element" validate:"required"`
}

// Surface keeps one Handler per element of an editing surface and
// routes input events to them.
type Surface struct {
	mode      selection.Mode
	sel       selection.Controller
	opener    Opener
	clock     clock.Clock
	longPress time.Duration

	mu       sync.Mutex
	handlers map[string]*Handler
}

func NewSurface(mode selection.Mode, sel selection.Controller, opener Opener, c clock.Clock, longPress time.Duration) *Surface {
	return &Surface{
		mode:      mode,
		sel:       sel,
		opener:    opener,
		clock:     c,
		longPress: longPress,
		handlers:  make(map[string]*Handler),
	}
}

// Dispatch routes ev. It reports false when the surface is not
// interactive or the event is unknown.
func (s *Surface) Dispatch(ev PointerEvent) bool {
	h := s.handler(ev.Element)
	if h == nil {
		return false
	}

	switch ev.Event {
	case EventPointerEnter:
		h.PointerEnter()
	case EventPointerLeave:
		h.PointerLeave()
	case EventClick:
		h.Click()
	case EventContextMenu:
		h.ContextMenu()
	case EventPressStart:
		h.PressStart()
	case EventPressEnd:
		h.PressEnd()
	case EventScroll:
		s.cancelAll()
	default:
		return false
	}
	return true
}

func (s *Surface) handler(d element.Descriptor) *Handler {
	if !s.mode.Interactive() || d.ID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.handlers[d.ID]
	if !ok {
		h = NewHandler(d, s.mode, s.sel, s.opener, s.clock, s.longPress)
		s.handlers[d.ID] = h
	}
	return h
}

// cancelAll cancels pending presses on every element; scrolling moves
// the whole surface.
func (s *Surface) cancelAll() {
	s.mu.Lock()
	handlers := make([]*Handler, 0, len(s.handlers))
	for _, h := range s.handlers {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h.Scroll()
	}
}
