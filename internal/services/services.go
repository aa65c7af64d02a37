// package services defines interface Service for talking to a setlist server
package services

import (
	"context"

	"github.com/desertthunder/setlist/internal/models"
)

// Service defines the playlist operations exposed by a setlist server.
type Service interface {
	// ListPlaylists returns every playlist name with its song count.
	ListPlaylists(ctx context.Context) ([]models.PlaylistSummary, error)

	// GetPlaylist returns the playlist's name and rendered songs.
	GetPlaylist(ctx context.Context, name string) (*models.PlaylistResponse, error)

	// CreatePlaylist creates an empty playlist.
	CreatePlaylist(ctx context.Context, name string) error

	// DeletePlaylist deletes a playlist and its songs.
	DeletePlaylist(ctx context.Context, name string) error

	// AddSong appends a song and returns its rendered form.
	AddSong(ctx context.Context, name string, song models.Song) (string, error)

	// RemoveSong removes the first song matching title and returns its rendered form.
	RemoveSong(ctx context.Context, name, title string) (string, error)

	// SortPlaylist sorts by attribute ("title", "artist", "genre") and returns the new order.
	SortPlaylist(ctx context.Context, name, attribute string) ([]string, error)

	// SearchPlaylist returns songs whose title matches case-insensitively.
	SearchPlaylist(ctx context.Context, name, title string) ([]string, error)

	// ExportPlaylist returns the playlist rendered in format ("csv", "markdown", "text").
	ExportPlaylist(ctx context.Context, name, format string) ([]byte, error)

	// Health reports server liveness.
	Health(ctx context.Context) (*models.HealthResponse, error)
}
