package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/setlist/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgPlaylistsFetched MsgKind = iota
	MsgSongsFetched
	MsgSongsSorted
	MsgPlaylistDeleted
)

type playlistsPayload struct {
	playlists []models.PlaylistSummary
	err       error
}

type songsPayload struct {
	name  string
	songs []string
	err   error
}

type sortedPayload struct {
	attribute string
	songs     []string
	err       error
}

type deletedPayload struct {
	name string
	err  error
}

// playlistsFetchedMsg is the constructor for [MsgPlaylistsFetched]
func playlistsFetchedMsg(playlists []models.PlaylistSummary, err error) Msg {
	return Msg{kind: MsgPlaylistsFetched, data: playlistsPayload{playlists, err}}
}

// songsFetchedMsg is the constructor for [MsgSongsFetched]
func songsFetchedMsg(name string, songs []string, err error) Msg {
	return Msg{kind: MsgSongsFetched, data: songsPayload{name, songs, err}}
}

// songsSortedMsg is the constructor for [MsgSongsSorted]
func songsSortedMsg(attribute string, songs []string, err error) Msg {
	return Msg{kind: MsgSongsSorted, data: sortedPayload{attribute, songs, err}}
}

// playlistDeletedMsg is the constructor for [MsgPlaylistDeleted]
func playlistDeletedMsg(name string, err error) Msg {
	return Msg{kind: MsgPlaylistDeleted, data: deletedPayload{name, err}}
}
