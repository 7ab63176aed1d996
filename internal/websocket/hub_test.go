package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/logger"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func connect(t *testing.T, hub *Hub, storeId, userId uuid.UUID, role string) *Client {
	t.Helper()
	c := NewClient(hub, nil, storeId, userId, role)
	before := hub.ClientCount(storeId)
	hub.Register(c)
	require.Eventually(t, func() bool { return hub.ClientCount(storeId) == before+1 }, time.Second, 5*time.Millisecond)
	return c
}

func received(c *Client) [][]byte {
	var out [][]byte
	for {
		select {
		case m, ok := <-c.Send:
			if !ok {
				return out
			}
			out = append(out, m)
		default:
			return out
		}
	}
}

func TestHub_SendToUserFiltersByRoleAndUser(t *testing.T) {
	hub := startHub(t)
	store, alice, bob := uuid.New(), uuid.New(), uuid.New()

	aliceHost := connect(t, hub, store, alice, "host")
	alicePreview := connect(t, hub, store, alice, "preview")
	bobHost := connect(t, hub, store, bob, "host")

	hub.SendToUser(store, alice, "host", []byte(`{"type":"state"}`))

	assert.Equal(t, [][]byte{[]byte(`{"type":"state"}`)}, received(aliceHost))
	assert.Empty(t, received(alicePreview))
	assert.Empty(t, received(bobHost))
}

func TestHub_SendToStoreReachesEveryClientWithRole(t *testing.T) {
	hub := startHub(t)
	store, other := uuid.New(), uuid.New()

	a := connect(t, hub, store, uuid.New(), "host")
	b := connect(t, hub, store, uuid.New(), "host")
	elsewhere := connect(t, hub, other, uuid.New(), "host")

	hub.SendToStore(store, "host", []byte("x"))

	assert.Len(t, received(a), 1)
	assert.Len(t, received(b), 1)
	assert.Empty(t, received(elsewhere))
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := startHub(t)
	store := uuid.New()
	c := connect(t, hub, store, uuid.New(), "preview")

	hub.Unregister(c)
	require.Eventually(t, func() bool { return hub.ClientCount(store) == 0 }, time.Second, 5*time.Millisecond)

	_, ok := <-c.Send
	assert.False(t, ok)
	assert.False(t, c.Push([]byte("late")))
}

func TestHub_HandleRelay(t *testing.T) {
	hub := startHub(t)
	store, user := uuid.New(), uuid.New()
	c := connect(t, hub, store, user, "host")

	foreign, _ := json.Marshal(relayPayload{
		Instance:      "other",
		TargetStoreID: store.String(),
		TargetUserID:  user.String(),
		Role:          "host",
		Message:       json.RawMessage(`{"type":"theme_saved"}`),
	})
	hub.handleRelay(foreign)
	assert.Equal(t, [][]byte{[]byte(`{"type":"theme_saved"}`)}, received(c))

	own, _ := json.Marshal(relayPayload{
		Instance:      hub.instance,
		TargetStoreID: store.String(),
		Role:          "host",
		Message:       json.RawMessage(`{}`),
	})
	hub.handleRelay(own)
	hub.handleRelay([]byte("not json"))
	assert.Empty(t, received(c))
}
