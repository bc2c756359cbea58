package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matteomarino16/telegram-audio-bot/cache"
	"github.com/matteomarino16/telegram-audio-bot/config"
	"github.com/matteomarino16/telegram-audio-bot/core/feed"
	"github.com/matteomarino16/telegram-audio-bot/logger"
	"github.com/matteomarino16/telegram-audio-bot/repository"

	"github.com/gorilla/mux"
)

// Server is the companion web surface: a read-only track listing with
// search, plus the admin request dashboard endpoints.
type Server struct {
	cfg     *config.Config
	handler *WebHandler
}

// New wires the web server. searchCache and hub may be nil.
func New(
	cfg *config.Config,
	tracks repository.TrackRepository,
	requests repository.RequestRepository,
	searchCache *cache.SearchCache,
	hub *feed.Hub,
) *Server {
	return &Server{
		cfg:     cfg,
		handler: NewWebHandler(cfg, tracks, requests, searchCache, hub),
	}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(requestIDMiddleware)
	router.Use(loggingMiddleware)

	router.HandleFunc("/", s.handler.IndexHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/tracks", s.handler.GetTracksHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/tracks/search", s.handler.SearchTracksHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/admin/login", s.handler.AdminLoginHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/requests", s.handler.AdminAuthMiddleware(s.handler.ListRequestsHandler)).Methods(http.MethodGet)
	router.HandleFunc("/ws/requests", s.handler.RequestsWSHandler).Methods(http.MethodGet)

	return router
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	server := &http.Server{
		Addr:         s.cfg.HTTPAddr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Web server listening", logger.String("addr", s.cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("Shutting down web server", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

// corsMiddleware mirrors the permissive CORS policy of the API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
