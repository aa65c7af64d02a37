// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI browses the playlists held by a running setlist server:
//  1. [PlaylistListView] : Browse playlists with their song counts
//  2. [SongListView] : Inspect a playlist's songs and re-sort them
//  3. [ConfirmDeleteView] : Confirm deleting the selected playlist
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving server
// results via the [Msg] union type. Every server call runs as a [tea.Cmd] against a [services.Service].
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q). In the song view t, a and g
// sort by title, artist and genre. Contextual help is displayed via charmbracelet/bubbles/help.
package ui
