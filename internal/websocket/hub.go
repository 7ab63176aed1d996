package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/logger"
)

// ClusterChannel is the redis channel instances relay frames on.
const ClusterChannel = "cluster_events"

// relayPayload is a frame forwarded to the other instances. An empty
// TargetUserID addresses every client of the store with the role.
type relayPayload struct {
	Instance      string          `json:"instance"`
	TargetStoreID string          `json:"target_store_id"`
	TargetUserID  string          `json:"target_user_id,omitempty"`
	Role          string          `json:"role"`
	Message       json.RawMessage `json:"message"`
}

type Hub struct {
	// Registered clients: StoreID -> clients (hosts and previews).
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb      *redis.Client
	instance string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instance:   uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.StoreID] = append(h.clients[client.StoreID], client)
			h.mu.Unlock()
			h.logger.Info("HUB", "Client registered", map[string]interface{}{
				"store_id": client.StoreID.String(),
				"user_id":  client.UserID.String(),
				"role":     client.Role,
			})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

func (h *Hub) Register(c *Client)   { h.register <- c }
func (h *Hub) Unregister(c *Client) { h.unregister <- c }

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := h.clients[client.StoreID]
	for i, c := range clients {
		if c != client {
			continue
		}
		h.clients[client.StoreID] = append(clients[:i], clients[i+1:]...)
		close(client.Send)
		break
	}
	if len(h.clients[client.StoreID]) == 0 {
		delete(h.clients, client.StoreID)
	}
}

// ClientCount returns the number of clients connected to storeId on
// this instance.
func (h *Hub) ClientCount(storeId uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[storeId])
}

// SendToUser delivers frame to the clients of userId on storeId that
// have role.
func (h *Hub) SendToUser(storeId, userId uuid.UUID, role string, frame []byte) {
	h.deliverLocal(storeId, &userId, role, frame)
	h.relay(relayPayload{TargetStoreID: storeId.String(), TargetUserID: userId.String(), Role: role, Message: frame})
}

// SendToStore delivers frame to every client of storeId that has role.
func (h *Hub) SendToStore(storeId uuid.UUID, role string, frame []byte) {
	h.deliverLocal(storeId, nil, role, frame)
	h.relay(relayPayload{TargetStoreID: storeId.String(), Role: role, Message: frame})
}

func (h *Hub) deliverLocal(storeId uuid.UUID, userId *uuid.UUID, role string, frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients[storeId] {
		if client.Role != role || (userId != nil && client.UserID != *userId) {
			continue
		}
		select {
		case client.Send <- frame:
		default:
			h.logger.Warn("HUB", "Client send buffer full, dropping client", map[string]interface{}{
				"store_id": storeId.String(),
				"user_id":  client.UserID.String(),
			})
			go h.Unregister(client)
		}
	}
}

func (h *Hub) relay(payload relayPayload) {
	if h.rdb == nil {
		return
	}
	payload.Instance = h.instance
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := h.rdb.Publish(context.Background(), ClusterChannel, data).Err(); err != nil {
		h.logger.Warn("HUB", "Failed to relay frame", map[string]interface{}{"error": err.Error()})
	}
}

// handleRelay delivers a frame received from another instance. Frames
// this instance relayed itself were already delivered.
func (h *Hub) handleRelay(raw []byte) {
	var payload relayPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.logger.Warn("HUB", "Redis message parse error", map[string]interface{}{"error": err.Error()})
		return
	}
	if payload.Instance == h.instance {
		return
	}
	storeId, err := uuid.Parse(payload.TargetStoreID)
	if err != nil {
		return
	}
	var userId *uuid.UUID
	if payload.TargetUserID != "" {
		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			return
		}
		userId = &uid
	}
	h.deliverLocal(storeId, userId, payload.Role, payload.Message)
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, ClusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.handleRelay([]byte(msg.Payload))
		}
	}
}
