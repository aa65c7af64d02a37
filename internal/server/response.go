package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/desertthunder/setlist/internal/models"
	"github.com/desertthunder/setlist/internal/shared"
)

const maxBodyBytes = 1 << 20

const (
	msgPlaylistCreated = "Playlist created"
	msgPlaylistDeleted = "Playlist deleted"
	msgSongAdded       = "Song added"
	msgSongRemoved     = "Song removed"
	msgSongsSorted     = "Songs sorted"
	msgSongFound       = "Song found"
	msgPlaylistExists  = "Playlist already exists"
	msgPlaylistMissing = "Playlist not found"
	msgSongMissing     = "Song not found in playlist"
	msgMissingFields   = "Missing song data"
	msgMissingName     = "Missing playlist name"
	msgInvalidName     = "Invalid playlist name"
	msgInvalidSort     = "Invalid attribute for sorting"
	msgInvalidFormat   = "Invalid export format"
	msgRateLimited     = "Rate limit exceeded"
	msgInternal        = "Internal server error"
)

// errorStatus maps domain errors to a status code and client message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, shared.ErrPlaylistExists):
		return http.StatusBadRequest, msgPlaylistExists
	case errors.Is(err, shared.ErrInvalidName):
		return http.StatusBadRequest, msgInvalidName
	case errors.Is(err, shared.ErrPlaylistNotFound):
		return http.StatusNotFound, msgPlaylistMissing
	case errors.Is(err, shared.ErrSongNotFound):
		return http.StatusNotFound, msgSongMissing
	case errors.Is(err, shared.ErrMissingFields):
		return http.StatusBadRequest, msgMissingFields
	case errors.Is(err, shared.ErrInvalidAttribute):
		return http.StatusBadRequest, msgInvalidSort
	case errors.Is(err, shared.ErrInvalidFormat):
		return http.StatusBadRequest, msgInvalidFormat
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status, msg := errorStatus(err)
	writeJSON(w, status, models.MessageResponse{Message: msg})
}

// decodeJSON reads a size-limited JSON body into v. Any failure is reported as
// [shared.ErrMissingFields].
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed body: %v", shared.ErrMissingFields, err)
	}
	return nil
}
