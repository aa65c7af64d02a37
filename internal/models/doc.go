// Package models defines the in-memory playlist domain for the setlist service.
//
// A [Song] is an immutable value identified only by its title, artist and genre.
// Two songs with identical fields are indistinguishable.
//
// A [Playlist] is a named, ordered sequence of songs. Insertion order is kept
// until [Playlist.Sort] is called with a [SortAttribute]. Readers always
// receive copies of the sequence, never the backing slice.
//
// Playlist is not safe for concurrent use; the registry package serializes access.
package models
