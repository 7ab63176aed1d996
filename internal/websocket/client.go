package websocket

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 256 * 1024
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	StoreID uuid.UUID
	UserID  uuid.UUID
	Role    string

	// Buffered channel of outbound messages.
	Send chan []byte

	// OnMessage receives every inbound text frame.
	OnMessage func(c *Client, data []byte)
}

func NewClient(hub *Hub, conn *websocket.Conn, storeId, userId uuid.UUID, role string) *Client {
	return &Client{
		Hub:     hub,
		Conn:    conn,
		StoreID: storeId,
		UserID:  userId,
		Role:    role,
		Send:    make(chan []byte, 256),
	}
}

// Push queues frame for this client only. A full buffer drops the
// frame.
func (c *Client) Push(frame []byte) (queued bool) {
	// Send is closed once the hub drops the client.
	defer func() { _ = recover() }()
	select {
	case c.Send <- frame:
		return true
	default:
		return false
	}
}

// readPump pumps messages from the websocket connection to OnMessage.
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		kind, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("HUB", "Unexpected socket close", map[string]interface{}{
					"user_id": c.UserID.String(),
					"error":   err.Error(),
				})
			}
			break
		}
		if kind == websocket.TextMessage && c.OnMessage != nil {
			c.OnMessage(c, data)
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
// Each frame is written as its own message.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
