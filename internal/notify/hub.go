package notify

import (
	"encoding/json"
	"net/http"
	"sync"

	"fleetrent-backend/internal/logger"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Op identifies what happened to an entity.
type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Event is a single change-feed entry. Subscribers receive the entity
// name, the operation, and the row id; they re-fetch the row themselves.
type Event struct {
	Entity string `json:"entity"`
	Op     Op     `json:"op"`
	ID     int64  `json:"id"`
}

// Client is one connected change-feed subscriber.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	hub  *Hub
}

// Hub fans change events out to all connected clients.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

// Run owns the client set. Call it once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Register adds a subscriber to the hub.
func (h *Hub) Register(c *Client) {
	c.hub = h
	h.register <- c
}

// Unregister removes a subscriber and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Publish broadcasts a change event to every connected client. A client
// whose send buffer is full is dropped rather than blocking the feed.
func (h *Hub) Publish(entity string, op Op, id int64) {
	data, err := json.Marshal(Event{Entity: entity, Op: op, ID: id})
	if err != nil {
		logger.Error("Failed to marshal change event", "entity", entity, "error", err)
		return
	}
	h.broadcast <- data
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// ServeWS upgrades an HTTP request to a websocket and attaches it to the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 64),
	}
	h.Register(client)

	go client.writePump()
	go client.readPump()
}

// readPump drains the connection so close frames are processed. The feed
// is one-way; inbound payloads are discarded.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error", "error", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("WebSocket write error", "error", err)
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
