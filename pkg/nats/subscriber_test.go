package nats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoussefAz2/elenashop-sub001/pkg/events"
)

func TestDecodeEvent(t *testing.T) {
	evt, err := DecodeEvent(Subject(events.ThemeSaved), []byte(`{"store_id":"s1","revision":4,"occurred_at":"2026-01-02T03:04:05Z"}`))
	require.NoError(t, err)

	assert.Equal(t, events.ThemeSaved, evt.EventType())
	assert.Equal(t, "s1", events.StoreID(evt))
	assert.Equal(t, float64(4), evt.Payload()["revision"])
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), evt.Timestamp())
}

func TestDecodeEvent_Edges(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "malformed", data: `{`, wantErr: true},
		{name: "array", data: `[1]`, wantErr: true},
		{name: "null", data: `null`},
		{name: "bad time", data: `{"occurred_at":"yesterday"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt, err := DecodeEvent("events.X", []byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "X", evt.EventType())
			assert.NotNil(t, evt.Payload())
			assert.False(t, evt.Timestamp().IsZero())
		})
	}
}
