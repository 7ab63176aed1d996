package binding

import (
	"time"

	"github.com/YoussefAz2/elenashop-sub001/pkg/clock"
	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
	"github.com/YoussefAz2/elenashop-sub001/pkg/gesture"
	"github.com/YoussefAz2/elenashop-sub001/pkg/selection"
)

// Opener shows the style-editing surface for a selected element.
type Opener interface {
	Open(d element.Descriptor)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(element.Descriptor)

func (f OpenerFunc) Open(d element.Descriptor) { f(d) }

// NopOpener opens nothing.
type NopOpener struct{}

func (NopOpener) Open(element.Descriptor) {}

// Handler wires pointer and touch input of one element into a
// selection Controller. A nil *Handler ignores every event, which is
// what non-interactive modes get.
type Handler struct {
	desc   element.Descriptor
	sel    selection.Controller
	opener Opener
	press  *gesture.LongPress
}

// NewHandler returns nil unless mode is interactive. Nil collaborators
// are replaced by their null objects.
func NewHandler(d element.Descriptor, mode selection.Mode, sel selection.Controller, opener Opener, c clock.Clock, longPress time.Duration) *Handler {
	if !mode.Interactive() {
		return nil
	}
	if sel == nil {
		sel = selection.Nop{}
	}
	if opener == nil {
		opener = NopOpener{}
	}
	return &Handler{
		desc:   d.Normalize(),
		sel:    sel,
		opener: opener,
		press:  gesture.NewLongPress(c, longPress),
	}
}

func (h *Handler) PointerEnter() {
	if h == nil {
		return
	}
	h.sel.Hover(h.desc)
}

// PointerLeave clears the hover and cancels a pending press.
func (h *Handler) PointerLeave() {
	if h == nil {
		return
	}
	h.press.Release()
	h.sel.Unhover(h.desc.ID)
}

// Click selects the element, unless it trails a completed long press
// that already did.
func (h *Handler) Click() {
	if h == nil {
		return
	}
	if h.press.ConsumeFired() {
		return
	}
	h.activate()
}

// ContextMenu is the secondary-button path to selection.
func (h *Handler) ContextMenu() {
	if h == nil {
		return
	}
	h.press.Cancel()
	h.activate()
}

// PressStart arms the long-press timer.
func (h *Handler) PressStart() {
	if h == nil {
		return
	}
	h.press.Start(h.activate)
}

// PressEnd releases the press; before expiry nothing is selected.
func (h *Handler) PressEnd() {
	if h == nil {
		return
	}
	h.press.Release()
}

// Scroll signals scrolling intent and cancels a pending press.
func (h *Handler) Scroll() {
	if h == nil {
		return
	}
	h.press.Cancel()
}

func (h *Handler) activate() {
	h.sel.Select(h.desc)
	h.opener.Open(h.desc)
}
