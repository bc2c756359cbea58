package server

import (
	"net/http"

	"github.com/matteomarino16/telegram-audio-bot/core/auth"
	"github.com/matteomarino16/telegram-audio-bot/logger"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// RequestsWSHandler upgrades an admin dashboard connection and registers
// it with the feed hub. The token travels as a query parameter because
// browsers cannot set headers on websocket handshakes.
func (h *WebHandler) RequestsWSHandler(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		http.Error(w, "Request feed is not enabled", http.StatusServiceUnavailable)
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}
	if _, err := auth.ParseToken([]byte(h.cfg.JWTSecret), token); err != nil {
		http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Websocket upgrade failed", logger.ErrorField(err))
		return
	}

	h.hub.Register(conn)

	// The dashboard only listens; the read loop just detects disconnects.
	go func() {
		defer h.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
