package server

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/setlist/internal/formatter"
	"github.com/desertthunder/setlist/internal/metrics"
	"github.com/desertthunder/setlist/internal/models"
	"github.com/desertthunder/setlist/internal/registry"
	"github.com/desertthunder/setlist/internal/shared"
)

const (
	routeCreate     = "POST /playlist"
	routeList       = "GET /playlist"
	routeGet        = "GET /playlist/{name}"
	routeDelete     = "DELETE /playlist/{name}"
	routeAddSong    = "POST /playlist/{name}/add_song"
	routeRemoveSong = "DELETE /playlist/{name}/remove_song"
	routeSort       = "POST /playlist/{name}/sort"
	routeSearch     = "GET /playlist/{name}/search"
	routeExport     = "GET /playlist/{name}/export"
)

// PlaylistHandler maps playlist API routes onto a [registry.Registry].
//
// Implements the Handler interface for registration with a Router and
// dispatches on the matched pattern.
type PlaylistHandler struct {
	registry *registry.Registry
	metrics  *metrics.Metrics
	logger   *log.Logger
}

// NewPlaylistHandler creates a handler serving the playlists held by reg.
func NewPlaylistHandler(reg *registry.Registry, m *metrics.Metrics, logger *log.Logger) *PlaylistHandler {
	return &PlaylistHandler{registry: reg, metrics: m, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *PlaylistHandler) Routes() []string {
	return []string{
		routeCreate, routeList, routeGet, routeDelete,
		routeAddSong, routeRemoveSong, routeSort, routeSearch, routeExport,
	}
}

// ServeHTTP dispatches on [http.Request.Pattern] set by the mux.
func (h *PlaylistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Pattern {
	case routeCreate:
		h.create(w, r)
	case routeList:
		h.list(w, r)
	case routeGet:
		h.get(w, r)
	case routeDelete:
		h.delete(w, r)
	case routeAddSong:
		h.addSong(w, r)
	case routeRemoveSong:
		h.removeSong(w, r)
	case routeSort:
		h.sort(w, r)
	case routeSearch:
		h.search(w, r)
	case routeExport:
		h.export(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *PlaylistHandler) create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlaylistRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Name == "" {
		writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: msgMissingName})
		return
	}

	if err := h.registry.Create(req.Name); err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("playlist created", "name", req.Name)
	writeJSON(w, http.StatusCreated, models.CreatePlaylistResponse{Message: msgPlaylistCreated, Name: req.Name})
}

func (h *PlaylistHandler) list(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.PlaylistListResponse{Playlists: h.registry.List()})
}

func (h *PlaylistHandler) get(w http.ResponseWriter, r *http.Request) {
	view, err := h.registry.Get(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.PlaylistResponse{Name: view.Name, Songs: models.SongStrings(view.Songs)})
}

func (h *PlaylistHandler) delete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := h.registry.Delete(name); err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("playlist deleted", "name", name)
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: msgPlaylistDeleted})
}

func (h *PlaylistHandler) addSong(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var in models.SongInput
	if !h.decodeFor(w, r, name, &in) {
		return
	}

	song, err := h.registry.AddSong(name, in)
	if err != nil {
		writeError(w, err)
		return
	}

	h.metrics.SongsAdded.Inc()
	writeJSON(w, http.StatusOK, models.SongResponse{Message: msgSongAdded, Song: song.String()})
}

func (h *PlaylistHandler) removeSong(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var req models.RemoveSongRequest
	if !h.decodeFor(w, r, name, &req) {
		return
	}

	if req.Title == nil {
		h.rejectFor(w, name, fmt.Errorf("%w: title", shared.ErrMissingFields))
		return
	}

	song, err := h.registry.RemoveSong(name, *req.Title)
	if err != nil {
		writeError(w, err)
		return
	}

	h.metrics.SongsRemoved.Inc()
	writeJSON(w, http.StatusOK, models.SongResponse{Message: msgSongRemoved, Song: song.String()})
}

func (h *PlaylistHandler) sort(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var req models.SortRequest
	if !h.decodeFor(w, r, name, &req) {
		return
	}

	songs, err := h.registry.Sort(name, req.Attribute)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.SortResponse{Message: msgSongsSorted, SortedSongs: models.SongStrings(songs)})
}

func (h *PlaylistHandler) search(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	query := r.URL.Query()
	if !query.Has("title") {
		h.rejectFor(w, name, fmt.Errorf("%w: title", shared.ErrMissingFields))
		return
	}

	songs, err := h.registry.Search(name, query.Get("title"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SearchResponse{Message: msgSongFound, Songs: models.SongStrings(songs)})
}

func (h *PlaylistHandler) export(w http.ResponseWriter, r *http.Request) {
	view, err := h.registry.Get(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	format, err := formatter.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := formatter.Export(view, format)
	if err != nil {
		h.logger.Error("export failed", "name", view.Name, "format", format, "error", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// decodeFor decodes the request body for the named playlist. On a malformed
// body a missing playlist still wins, so callers see 404 before 400.
func (h *PlaylistHandler) decodeFor(w http.ResponseWriter, r *http.Request, name string, v any) bool {
	if err := decodeJSON(w, r, v); err != nil {
		h.rejectFor(w, name, err)
		return false
	}
	return true
}

// rejectFor writes err unless the named playlist is missing, which is reported instead.
func (h *PlaylistHandler) rejectFor(w http.ResponseWriter, name string, err error) {
	if _, lookupErr := h.registry.Get(name); lookupErr != nil {
		writeError(w, lookupErr)
		return
	}
	writeError(w, err)
}

// HealthHandler reports liveness and the number of playlists.
type HealthHandler struct {
	registry *registry.Registry
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(reg *registry.Registry) *HealthHandler {
	return &HealthHandler{registry: reg}
}

// Routes returns the HTTP routes this handler serves.
func (h *HealthHandler) Routes() []string {
	return []string{"GET /health"}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Playlists: h.registry.Len()})
}
