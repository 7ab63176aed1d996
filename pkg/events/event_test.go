package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewThemeEvent(t *testing.T) {
	evt := NewThemeEvent(PaletteApplied, "store-1", map[string]interface{}{
		"palette_id": "ocean",
		"store_id":   "ignored",
	})

	assert.Equal(t, PaletteApplied, evt.EventType())
	assert.Equal(t, "store-1", StoreID(evt))
	assert.Equal(t, "ocean", evt.Payload()["palette_id"])
	assert.Equal(t, "store_theme", evt.Payload()["entity_type"])

	ts, err := time.Parse(time.RFC3339Nano, evt.Payload()["occurred_at"].(string))
	assert.NoError(t, err)
	assert.True(t, ts.Equal(evt.Timestamp()))
}

func TestStoreID_Missing(t *testing.T) {
	assert.Equal(t, "", StoreID(BaseEvent{Data: map[string]interface{}{}}))
}
