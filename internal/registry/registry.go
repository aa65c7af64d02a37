package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/desertthunder/setlist/internal/models"
	"github.com/desertthunder/setlist/internal/shared"
)

// Registry owns every playlist served by the process.
type Registry struct {
	mu        sync.RWMutex
	playlists map[string]*models.Playlist
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{playlists: map[string]*models.Playlist{}}
}

// Create adds an empty playlist called name.
//
// "." and ".." are refused because they cannot be addressed as a URL path segment.
func (r *Registry) Create(name string) error {
	switch name {
	case "":
		return fmt.Errorf("%w: playlist name", shared.ErrMissingFields)
	case ".", "..":
		return fmt.Errorf("%w: %q", shared.ErrInvalidName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.playlists[name]; ok {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistExists, name)
	}
	r.playlists[name] = models.NewPlaylist(name)
	return nil
}

// Get returns a detached copy of the playlist's name and songs.
func (r *Registry) Get(name string) (models.PlaylistView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, err := r.lookup(name)
	if err != nil {
		return models.PlaylistView{}, err
	}
	return p.Snapshot(), nil
}

// Delete removes the playlist and all of its songs.
func (r *Registry) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookup(name); err != nil {
		return err
	}
	delete(r.playlists, name)
	return nil
}

// List summarizes every playlist, ordered by name.
func (r *Registry) List() []models.PlaylistSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.PlaylistSummary, 0, len(r.playlists))
	for name, p := range r.playlists {
		out = append(out, models.PlaylistSummary{Name: name, SongCount: p.Len()})
	}
	slices.SortFunc(out, func(a, b models.PlaylistSummary) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Len returns the number of playlists.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.playlists)
}

// AddSong builds a song from in and appends it to the named playlist.
func (r *Registry) AddSong(name string, in models.SongInput) (models.Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.lookup(name)
	if err != nil {
		return models.Song{}, err
	}

	song, err := in.Song()
	if err != nil {
		return models.Song{}, err
	}

	p.Add(song)
	return song, nil
}

// RemoveSong removes the first song whose title matches title case-insensitively.
// An empty title only matches songs with an empty title.
func (r *Registry) RemoveSong(name, title string) (models.Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.lookup(name)
	if err != nil {
		return models.Song{}, err
	}
	matches := p.Search(title)
	if len(matches) == 0 {
		return models.Song{}, fmt.Errorf("%w: %s", shared.ErrSongNotFound, title)
	}

	if err := p.Remove(matches[0]); err != nil {
		return models.Song{}, err
	}
	return matches[0], nil
}

// Sort orders the named playlist by attribute and returns the new sequence.
//
// attribute must be one of "title", "artist" or "genre"; the playlist is left
// unchanged otherwise.
func (r *Registry) Sort(name, attribute string) ([]models.Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	attr, err := models.ParseSortAttribute(attribute)
	if err != nil {
		return nil, err
	}

	p.Sort(attr)
	return p.Songs(), nil
}

// Search returns the songs of the named playlist whose title matches title.
//
// No match yields an empty slice and [shared.ErrSongNotFound].
func (r *Registry) Search(name, title string) ([]models.Song, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	matches := p.Search(title)
	if len(matches) == 0 {
		return matches, fmt.Errorf("%w: %s", shared.ErrSongNotFound, title)
	}
	return matches, nil
}

// lookup must be called with r.mu held.
func (r *Registry) lookup(name string) (*models.Playlist, error) {
	p, ok := r.playlists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, name)
	}
	return p, nil
}
