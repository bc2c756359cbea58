// Package feed pushes newly submitted track requests to connected admin
// dashboards over websocket.
package feed

import (
	"sync"
	"time"

	"github.com/matteomarino16/telegram-audio-bot/logger"
	"github.com/matteomarino16/telegram-audio-bot/model"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Hub tracks connected dashboard clients and broadcasts to them.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Register adds a client connection.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
	logger.Info("Dashboard client connected", logger.Int("clients", len(h.clients)))
}

// Unregister removes a client connection and closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[conn] {
		delete(h.clients, conn)
		conn.Close()
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// PublishRequest broadcasts a track request to every connected client.
// Clients whose write fails are dropped.
func (h *Hub) PublishRequest(req *model.TrackRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(req); err != nil {
			logger.Warn("Dropping dashboard client after write failure", logger.ErrorField(err))
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
