package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/YoussefAz2/elenashop-sub001/pkg/override"
	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

type ThemeResponse struct {
	StoreId   uuid.UUID    `json:"store_id"`
	Revision  int64        `json:"revision"`
	Config    theme.Config `json:"config"`
	UpdatedAt *time.Time   `json:"updated_at"`
}

type ThemeSummary struct {
	StoreId   uuid.UUID  `json:"store_id"`
	Revision  int64      `json:"revision"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ListThemesRequest struct {
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
	Since  string `query:"since" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type ListThemesResponse struct {
	Items []ThemeSummary `json:"items"`
	Total int64          `json:"total"`
}

// UpdateThemeRequest carries a partial document; missing sections are
// filled from the defaults before saving.
type UpdateThemeRequest struct {
	Config theme.Config `json:"config" validate:"required"`
}

type ApplyPaletteRequest struct {
	PaletteId string `json:"palette_id" validate:"required"`
}

type ApplyTypographyRequest struct {
	PresetId string `json:"preset_id" validate:"required"`
}

// SaveThemeMessage is the payload handed to the persistence consumer
// after every committed override change. Sequence grows per session;
// delivery is unordered, so a consumer drops anything older than what
// it already wrote for that session.
type SaveThemeMessage struct {
	StoreId     uuid.UUID    `json:"store_id"`
	UserId      uuid.UUID    `json:"user_id"`
	SessionKey  string       `json:"session_key"`
	Generation  uint64       `json:"generation"`
	Sequence    uint64       `json:"sequence"`
	Overrides   override.Map `json:"overrides"`
	RequestedAt time.Time    `json:"requested_at"`
}
