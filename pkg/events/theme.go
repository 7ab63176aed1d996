package events

import "time"

// Theme event codes. Published on subject "events.<code>".
const (
	ThemeSaved      = "THEME_SAVED"
	ThemeSaveFailed = "THEME_SAVE_FAILED"
	ThemeReset      = "THEME_RESET"
	PaletteApplied  = "PALETTE_APPLIED"
	TypographySet   = "TYPOGRAPHY_APPLIED"
)

// NewThemeEvent builds a theme event for storeID. Extra fields are
// merged into the payload; store_id and occurred_at are always set.
func NewThemeEvent(code, storeID string, fields map[string]interface{}) BaseEvent {
	now := time.Now().UTC()
	data := make(map[string]interface{}, len(fields)+3)
	for k, v := range fields {
		data[k] = v
	}
	data["store_id"] = storeID
	data["entity_type"] = "store_theme"
	data["occurred_at"] = now.Format(time.RFC3339Nano)
	return BaseEvent{Type: code, Data: data, OccurredAt: now}
}

// StoreID extracts the store id of a theme event payload.
func StoreID(e Event) string {
	id, _ := e.Payload()["store_id"].(string)
	return id
}
