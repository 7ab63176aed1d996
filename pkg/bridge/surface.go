package bridge

import (
	"sync"
	"time"

	"github.com/YoussefAz2/elenashop-sub001/pkg/clock"
	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
	"github.com/YoussefAz2/elenashop-sub001/pkg/gesture"
)

const (
	GestureClick       = "click"
	GestureTouchStart  = "touchstart"
	GestureTouchMove   = "touchmove"
	GestureTouchEnd    = "touchend"
	GestureTouchCancel = "touchcancel"
)

// Gesture is one raw input event from the preview. Target is the node
// the event landed on, not necessarily an editable one.
type Gesture struct {
	Type   string `json:"type" validate:"required,oneof=click touchstart touchmove touchend touchcancel"`
	Target string `json:"target"`
}

// Feedback is the local acknowledgement shown in the preview for an
// accepted gesture.
type Feedback struct {
	ElementID string `json:"elementId"`
	Pulse     bool   `json:"pulse"`
	Haptic    bool   `json:"haptic"`
}

// Surface turns preview gestures into edit messages. A click sends one
// message; a touch held for the long-press duration sends one message
// and the click that trails it is swallowed. Moving, lifting or
// cancelling the touch earlier sends nothing.
type Surface struct {
	poster     Poster
	onFeedback func(Feedback)
	press      *gesture.LongPress

	mu       sync.RWMutex
	registry *element.Registry
}

// NewSurface creates a surface posting to poster. onFeedback may be
// nil. A nil clock uses the real one, a zero duration the default.
func NewSurface(poster Poster, onFeedback func(Feedback), c clock.Clock, longPress time.Duration) *Surface {
	if poster == nil {
		poster = PosterFunc(func(Message) {})
	}
	if onFeedback == nil {
		onFeedback = func(Feedback) {}
	}
	return &Surface{
		poster:     poster,
		onFeedback: onFeedback,
		press:      gesture.NewLongPress(c, longPress),
	}
}

// SetLayout replaces the registry used to resolve targets. A pending
// press is cancelled since its target may no longer exist.
func (s *Surface) SetLayout(r *element.Registry) {
	s.press.Cancel()
	s.mu.Lock()
	s.registry = r
	s.mu.Unlock()
}

func (s *Surface) resolve(target string) (element.Descriptor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Closest(target)
}

// Handle processes one gesture and reports whether it was accepted.
func (s *Surface) Handle(g Gesture) bool {
	switch g.Type {
	case GestureClick:
		if s.press.ConsumeFired() {
			return false
		}
		d, ok := s.resolve(g.Target)
		if !ok {
			return false
		}
		s.send(d, false)
		return true

	case GestureTouchStart:
		d, ok := s.resolve(g.Target)
		if !ok {
			s.press.Cancel()
			return false
		}
		s.press.Start(func() { s.send(d, true) })
		return true

	case GestureTouchEnd:
		return s.press.Release()

	case GestureTouchMove, GestureTouchCancel:
		return s.press.Cancel()
	}
	return false
}

// Pending reports whether a long press is armed.
func (s *Surface) Pending() bool {
	return s.press.Pending()
}

func (s *Surface) send(d element.Descriptor, haptic bool) {
	s.onFeedback(Feedback{ElementID: d.ID, Pulse: true, Haptic: haptic})
	s.poster.Post(NewEditSection(d))
}
