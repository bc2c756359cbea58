package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/matteomarino16/telegram-audio-bot/core/auth"
	"github.com/matteomarino16/telegram-audio-bot/logger"
)

const requestListLimit = 100

// AdminLoginHandler exchanges the admin password for a JWT.
func (h *WebHandler) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	if h.cfg.AdminPasswordHash == "" || h.cfg.JWTSecret == "" {
		http.Error(w, "Admin dashboard is not configured", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Password == "" || !auth.VerifyPassword(req.Password, h.cfg.AdminPasswordHash) {
		logger.Warn("Admin login rejected")
		http.Error(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken([]byte(h.cfg.JWTSecret), "admin")
	if err != nil {
		logger.Error("Failed to generate admin token", logger.ErrorField(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"token": token})
}

// AdminAuthMiddleware guards admin endpoints with a Bearer token.
func (h *WebHandler) AdminAuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header is required", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization header", http.StatusUnauthorized)
			return
		}

		if _, err := auth.ParseToken([]byte(h.cfg.JWTSecret), parts[1]); err != nil {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

// ListRequestsHandler returns the most recent track requests as JSON.
func (h *WebHandler) ListRequestsHandler(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requests.ListRequests(requestListLimit)
	if err != nil {
		logger.Error("Failed to list track requests", logger.ErrorField(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, requests)
}
