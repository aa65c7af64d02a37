package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/setlist/internal/services"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistListView ViewState = iota
	SongListView
	ConfirmDeleteView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	client       services.Service
	width        int
	height       int
	loaded       bool
	songsLoaded  bool
	playlistList list.Model
	songList     list.Model
	selected     string
	status       string
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model backed by client.
func NewModel(ctx context.Context, client services.Service) *Model {
	return &Model{
		ctx:    ctx,
		view:   PlaylistListView,
		client: client,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init initializes the TUI by fetching playlists from the server.
func (m *Model) Init() tea.Cmd {
	return m.fetchPlaylists()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.err != nil {
			return m.handleErrorKeys(msg)
		}
		switch m.view {
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case SongListView:
			return m.handleSongListKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateLists(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgPlaylistsFetched:
		data := msg.data.(playlistsPayload)
		if data.err != nil {
			m.err = data.err
			return m, nil
		}
		m.playlistList = list.New(playlistItems(data.playlists), list.NewDefaultDelegate(), 0, 0)
		m.playlistList.Title = "Playlists"
		m.loaded = true
		m.resizeLists()
		return m, nil

	case MsgSongsFetched:
		data := msg.data.(songsPayload)
		if data.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Could not load '%s': %v", data.name, data.err))
			m.view = PlaylistListView
			return m, nil
		}
		m.selected = data.name
		m.songList = list.New(songItems(data.songs), list.NewDefaultDelegate(), 0, 0)
		m.songList.Title = fmt.Sprintf("Songs in '%s'", data.name)
		m.songsLoaded = true
		m.resizeLists()
		m.status = ""
		m.view = SongListView
		return m, nil

	case MsgSongsSorted:
		data := msg.data.(sortedPayload)
		if data.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Sort failed: %v", data.err))
			return m, nil
		}
		m.songList.SetItems(songItems(data.songs))
		m.songList.ResetSelected()
		m.status = styles.ok.Render(fmt.Sprintf("Sorted by %s", data.attribute))
		return m, nil

	case MsgPlaylistDeleted:
		data := msg.data.(deletedPayload)
		m.view = PlaylistListView
		if data.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Delete failed: %v", data.err))
			return m, nil
		}
		m.status = styles.ok.Render(fmt.Sprintf("Deleted '%s'", data.name))
		m.selected = ""
		return m, m.fetchPlaylists()
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress r to retry, q to quit", m.err))
	}
	if !m.loaded {
		return styles.status.Render("Loading playlists...")
	}

	switch m.view {
	case PlaylistListView:
		return m.renderPlaylistList()
	case SongListView:
		return m.renderSongList()
	case ConfirmDeleteView:
		return m.renderConfirm()
	default:
		return ""
	}
}

func (m *Model) handleErrorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.err = nil
		return m, m.fetchPlaylists()
	}
	return m, nil
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.playlistList.FilterState() == list.Filtering {
		return m.updateLists(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.status = ""
		return m, m.fetchPlaylists()
	case "enter":
		if pl, ok := m.playlistList.SelectedItem().(playlistItem); ok {
			return m, m.fetchSongs(pl.playlist.Name)
		}
		return m, nil
	case "d":
		if pl, ok := m.playlistList.SelectedItem().(playlistItem); ok {
			m.selected = pl.playlist.Name
			m.view = ConfirmDeleteView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleSongListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.songList.FilterState() == list.Filtering {
		return m.updateLists(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PlaylistListView
		m.status = ""
		return m, m.fetchPlaylists()
	case "t", "a", "g":
		return m, m.sortSongs(m.selected, sortKeys[msg.String()])
	}

	var cmd tea.Cmd
	m.songList, cmd = m.songList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "n", "esc", "q":
		m.view = PlaylistListView
		m.selected = ""
		return m, nil
	case "y":
		return m, m.deletePlaylist(m.selected)
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.loaded {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.view {
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case SongListView:
		if m.songsLoaded {
			m.songList, cmd = m.songList.Update(msg)
		}
	}
	return m, cmd
}

func (m *Model) resizeLists() {
	w, h := max(m.width-4, 0), max(m.height-8, 0)
	if m.loaded {
		m.playlistList.SetSize(w, h)
	}
	if m.songsLoaded {
		m.songList.SetSize(w, h)
	}
}

func (m *Model) fetchPlaylists() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.client.ListPlaylists(m.ctx)
		return playlistsFetchedMsg(playlists, err)
	}
}

func (m *Model) fetchSongs(name string) tea.Cmd {
	return func() tea.Msg {
		playlist, err := m.client.GetPlaylist(m.ctx, name)
		if err != nil {
			return songsFetchedMsg(name, nil, err)
		}
		return songsFetchedMsg(playlist.Name, playlist.Songs, nil)
	}
}

func (m *Model) sortSongs(name, attribute string) tea.Cmd {
	return func() tea.Msg {
		songs, err := m.client.SortPlaylist(m.ctx, name, attribute)
		return songsSortedMsg(attribute, songs, err)
	}
}

func (m *Model) deletePlaylist(name string) tea.Cmd {
	return func() tea.Msg {
		return playlistDeletedMsg(name, m.client.DeletePlaylist(m.ctx, name))
	}
}

func (m *Model) withStatus(body string, bindings ...key.Binding) string {
	helpView := m.help.ShortHelpView(bindings)
	if m.status == "" {
		return fmt.Sprintf("%s\n\n%s", body, helpView)
	}
	return fmt.Sprintf("%s\n\n%s\n%s", body, m.status, helpView)
}

func (m *Model) renderPlaylistList() string {
	return m.withStatus(m.playlistList.View(), m.keys.enter, m.keys.del, m.keys.refresh, m.keys.quit)
}

func (m *Model) renderSongList() string {
	return m.withStatus(m.songList.View(),
		m.keys.sortTitle, m.keys.sortArtist, m.keys.sortGenre, m.keys.back, m.keys.quit)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Delete playlist '%s'?", m.selected))
	warning := styles.warn.Render("All of its songs will be removed.")
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no})
	return fmt.Sprintf("%s\n%s\n\n%s", title, warning, helpView)
}
