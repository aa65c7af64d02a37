package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/setlist/internal/models"
)

var (
	_ list.Item = playlistItem{}
	_ list.Item = songItem{}
)

// playlistItem wraps [models.PlaylistSummary] to implement [list.Item].
type playlistItem struct {
	playlist models.PlaylistSummary
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	if i.playlist.SongCount == 1 {
		return "1 song"
	}
	return fmt.Sprintf("%d songs", i.playlist.SongCount)
}

// songItem wraps a rendered song and its position to implement [list.Item].
type songItem struct {
	position int
	song     string
}

func (i songItem) FilterValue() string { return i.song }
func (i songItem) Title() string       { return i.song }
func (i songItem) Description() string { return fmt.Sprintf("#%d", i.position) }

func playlistItems(playlists []models.PlaylistSummary) []list.Item {
	items := make([]list.Item, len(playlists))
	for i, pl := range playlists {
		items[i] = playlistItem{playlist: pl}
	}
	return items
}

func songItems(songs []string) []list.Item {
	items := make([]list.Item, len(songs))
	for i, s := range songs {
		items[i] = songItem{position: i + 1, song: s}
	}
	return items
}
