package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/matteomarino16/telegram-audio-bot/cache"
	"github.com/matteomarino16/telegram-audio-bot/config"
	"github.com/matteomarino16/telegram-audio-bot/core/feed"
	"github.com/matteomarino16/telegram-audio-bot/logger"
	"github.com/matteomarino16/telegram-audio-bot/model"
	"github.com/matteomarino16/telegram-audio-bot/repository"
)

// WebHandler serves the public track listing and the admin endpoints.
type WebHandler struct {
	cfg         *config.Config
	tracks      repository.TrackRepository
	requests    repository.RequestRepository
	searchCache *cache.SearchCache
	hub         *feed.Hub
	indexTmpl   *template.Template
}

// NewWebHandler creates a WebHandler. searchCache and hub may be nil.
func NewWebHandler(
	cfg *config.Config,
	tracks repository.TrackRepository,
	requests repository.RequestRepository,
	searchCache *cache.SearchCache,
	hub *feed.Hub,
) *WebHandler {
	return &WebHandler{
		cfg:         cfg,
		tracks:      tracks,
		requests:    requests,
		searchCache: searchCache,
		hub:         hub,
		indexTmpl:   template.Must(template.New("index").Parse(indexTemplate)),
	}
}

// IndexHandler renders the HTML library page, optionally filtered by ?q=.
func (h *WebHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	tracks, err := h.lookupTracks(r, query)
	if err != nil {
		logger.Error("Failed to load tracks for index page", logger.ErrorField(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Tracks      []*model.Track
		SearchQuery string
	}{Tracks: tracks, SearchQuery: query}
	if err := h.indexTmpl.Execute(w, data); err != nil {
		logger.Error("Failed to render index page", logger.ErrorField(err))
	}
}

// GetTracksHandler returns the whole library as JSON.
func (h *WebHandler) GetTracksHandler(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.tracks.GetAllTracks()
	if err != nil {
		logger.Error("Failed to load tracks", logger.ErrorField(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, tracks)
}

// SearchTracksHandler returns the tracks matching ?q= as JSON. Results go
// through the Redis cache when one is configured.
func (h *WebHandler) SearchTracksHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "Missing 'q' query parameter", http.StatusBadRequest)
		return
	}

	tracks, err := h.lookupTracks(r, query)
	if err != nil {
		logger.Error("Search failed", logger.String("query", query), logger.ErrorField(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, tracks)
}

// lookupTracks resolves a query against the cache, then the store. An
// empty query lists the whole library and bypasses the cache.
func (h *WebHandler) lookupTracks(r *http.Request, query string) ([]*model.Track, error) {
	if query == "" {
		return h.tracks.GetAllTracks()
	}

	if cached, ok := h.searchCache.Get(r.Context(), query); ok {
		return cached, nil
	}

	tracks, err := h.tracks.SearchTracksByTitle(query)
	if err != nil {
		return nil, err
	}
	h.searchCache.Set(r.Context(), query, tracks)
	return tracks, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode JSON response", logger.ErrorField(err))
	}
}

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Music Library</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
li { margin: 0.25rem 0; }
</style>
</head>
<body>
<h1>🎹 Music Library</h1>
<form method="get" action="/">
<input type="text" name="q" value="{{.SearchQuery}}" placeholder="Search tracks...">
<button type="submit">Search</button>
</form>
{{if .Tracks}}
<ul>
{{range .Tracks}}<li>{{.Title}}</li>
{{end}}</ul>
{{else}}
<p>No tracks found.</p>
{{end}}
</body>
</html>
`
