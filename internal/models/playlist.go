package models

import (
	"fmt"
	"slices"

	"github.com/desertthunder/setlist/internal/shared"
)

// Playlist holds an ordered collection of songs under an immutable name.
type Playlist struct {
	name  string
	songs []Song
}

// NewPlaylist creates an empty playlist.
func NewPlaylist(name string) *Playlist {
	return &Playlist{name: name, songs: make([]Song, 0)}
}

// Name returns the playlist name.
func (p *Playlist) Name() string { return p.name }

// Len returns the number of songs.
func (p *Playlist) Len() int { return len(p.songs) }

// Add appends song to the end of the playlist. Duplicates are allowed.
func (p *Playlist) Add(song Song) {
	p.songs = append(p.songs, song)
}

// Remove deletes the first song whose fields all equal song.
func (p *Playlist) Remove(song Song) error {
	idx := slices.IndexFunc(p.songs, song.Equal)
	if idx < 0 {
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, song)
	}
	p.songs = slices.Delete(p.songs, idx, idx+1)
	return nil
}

// Search returns every song whose title matches title case-insensitively.
//
// An empty result is not an error.
func (p *Playlist) Search(title string) []Song {
	matches := []Song{}
	for _, s := range p.songs {
		if s.TitleMatches(title) {
			matches = append(matches, s)
		}
	}
	return matches
}

// Sort reorders the songs ascending by attr. Equal keys keep their relative order.
func (p *Playlist) Sort(attr SortAttribute) {
	slices.SortStableFunc(p.songs, attr.Compare)
}

// Songs returns a copy of the current sequence.
func (p *Playlist) Songs() []Song {
	return slices.Clone(p.songs)
}

// Snapshot returns a read-only view of the playlist.
func (p *Playlist) Snapshot() PlaylistView {
	return PlaylistView{Name: p.name, Songs: p.Songs()}
}

// PlaylistView is a detached copy of a playlist's name and songs.
type PlaylistView struct {
	Name  string `json:"name"`
	Songs []Song `json:"songs"`
}

// PlaylistSummary describes a playlist without its songs.
type PlaylistSummary struct {
	Name      string `json:"name"`
	SongCount int    `json:"song_count"`
}
