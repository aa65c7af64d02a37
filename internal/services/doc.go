// Package services implements the client side of the setlist playlist API.
//
// [APIService] performs raw HTTP requests against a running server and
// implements the typed [Service] interface used by the CLI and the TUI.
//
// # Error Handling
//
// Non-2xx responses become an [*APIError]. It unwraps to [shared.ErrAPIRequest]
// and, when the server message is recognized, to the matching domain error:
//   - [shared.ErrPlaylistExists] : "Playlist already exists"
//   - [shared.ErrPlaylistNotFound] : "Playlist not found"
//   - [shared.ErrSongNotFound] : "Song not found in playlist"
//   - [shared.ErrMissingFields] : "Missing song data", "Missing playlist name"
//   - [shared.ErrInvalidName] : "Invalid playlist name"
//   - [shared.ErrInvalidAttribute] : "Invalid attribute for sorting"
//   - [shared.ErrRateLimited] : any 429 response
package services
