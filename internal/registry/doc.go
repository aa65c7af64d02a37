// Package registry holds the process-wide mapping from playlist name to [models.Playlist].
//
// A playlist name is either absent or present. [Registry.Create] moves a name
// from absent to present and [Registry.Delete] moves it back, discarding its
// songs. Nothing is persisted: the registry starts empty and is dropped with
// the process.
//
// Every operation takes a single registry-wide lock, so add, remove and sort
// on a playlist are atomic with respect to each other. Lookups fail with
// [shared.ErrPlaylistNotFound] before any input validation happens.
package registry
