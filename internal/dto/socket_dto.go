package dto

import (
	"encoding/json"

	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
)

// Socket roles.
const (
	RoleHost    = "host"
	RolePreview = "preview"
)

// Socket frame types.
const (
	FrameLayout          = "layout"
	FrameOutline         = "outline"
	FrameGesture         = "gesture"
	FrameFeedback        = "feedback"
	FramePointer         = "pointer"
	FrameSelection       = "selection"
	FrameState           = "state"
	FrameOpen            = "open"
	FrameThemeSaved      = "theme_saved"
	FrameThemeSaveFailed = "theme_save_failed"
	FramePaletteApplied  = "palette_applied"
	FrameTypography      = "typography_applied"
	FrameThemeReset      = "theme_reset"
	FrameError           = "error"
)

// SocketFrame is the envelope of every socket message in both
// directions.
type SocketFrame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewSocketFrame encodes data into a frame. Encoding failures yield an
// error frame.
func NewSocketFrame(frameType string, data interface{}) []byte {
	raw, err := json.Marshal(data)
	if err != nil {
		frameType, raw = FrameError, []byte(`{"message":"encode failed"}`)
	}
	out, _ := json.Marshal(SocketFrame{Type: frameType, Data: raw})
	return out
}

type LayoutFrame struct {
	Nodes []element.Node `json:"nodes" validate:"max=5000,dive"`
}

type ErrorFrame struct {
	Message string `json:"message"`
}
