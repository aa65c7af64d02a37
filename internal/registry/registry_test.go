package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/desertthunder/setlist/internal/models"
	"github.com/desertthunder/setlist/internal/shared"
)

func input(title, artist, genre string) models.SongInput {
	return models.SongInput{Title: &title, Artist: &artist, Genre: &genre}
}

func mustCreate(t *testing.T, r *Registry, name string) {
	t.Helper()
	if err := r.Create(name); err != nil {
		t.Fatalf("failed to create playlist %s: %v", name, err)
	}
}

func mustAdd(t *testing.T, r *Registry, name string, in models.SongInput) models.Song {
	t.Helper()
	song, err := r.AddSong(name, in)
	if err != nil {
		t.Fatalf("failed to add song: %v", err)
	}
	return song
}

func TestRegistry(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		t.Run("new playlist is empty", func(t *testing.T) {
			r := New()
			mustCreate(t, r, "road-trip")

			view, err := r.Get("road-trip")
			if err != nil {
				t.Fatalf("failed to get playlist: %v", err)
			}
			if view.Name != "road-trip" || len(view.Songs) != 0 {
				t.Errorf("unexpected view: %+v", view)
			}
		})

		t.Run("duplicate name keeps original contents", func(t *testing.T) {
			r := New()
			mustCreate(t, r, "road-trip")
			mustAdd(t, r, "road-trip", input("Imagine", "John Lennon", "Pop"))

			err := r.Create("road-trip")
			if !errors.Is(err, shared.ErrPlaylistExists) {
				t.Fatalf("expected ErrPlaylistExists, got %v", err)
			}

			view, _ := r.Get("road-trip")
			if len(view.Songs) != 1 {
				t.Errorf("expected original song to survive, got %v", view.Songs)
			}
		})

		t.Run("empty name", func(t *testing.T) {
			if err := New().Create(""); !errors.Is(err, shared.ErrMissingFields) {
				t.Errorf("expected ErrMissingFields, got %v", err)
			}
		})

		t.Run("dot segments", func(t *testing.T) {
			r := New()
			for _, name := range []string{".", ".."} {
				if err := r.Create(name); !errors.Is(err, shared.ErrInvalidName) {
					t.Errorf("%q: expected ErrInvalidName, got %v", name, err)
				}
			}
			if err := r.Create("..."); err != nil {
				t.Errorf("expected %q to be accepted, got %v", "...", err)
			}
			if r.Len() != 1 {
				t.Errorf("expected 1 playlist, got %d", r.Len())
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		r := New()
		if _, err := r.Get("nope"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}

		mustCreate(t, r, "road-trip")
		mustAdd(t, r, "road-trip", input("Imagine", "John Lennon", "Pop"))

		view, _ := r.Get("road-trip")
		view.Songs[0] = models.NewSong("x", "y", "z")

		again, _ := r.Get("road-trip")
		if again.Songs[0].Title != "Imagine" {
			t.Error("mutating a view changed registry state")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		r := New()
		mustCreate(t, r, "road-trip")
		mustAdd(t, r, "road-trip", input("Imagine", "John Lennon", "Pop"))

		if err := r.Delete("road-trip"); err != nil {
			t.Fatalf("failed to delete: %v", err)
		}
		if _, err := r.Get("road-trip"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound after delete, got %v", err)
		}
		if err := r.Delete("road-trip"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound on second delete, got %v", err)
		}

		mustCreate(t, r, "road-trip")
		view, _ := r.Get("road-trip")
		if len(view.Songs) != 0 {
			t.Error("recreated playlist should not carry old songs")
		}
	})

	t.Run("List", func(t *testing.T) {
		r := New()
		if got := r.List(); len(got) != 0 {
			t.Errorf("expected empty list, got %v", got)
		}

		mustCreate(t, r, "zeta")
		mustCreate(t, r, "alpha")
		mustAdd(t, r, "zeta", input("a", "b", "c"))

		want := []models.PlaylistSummary{{Name: "alpha", SongCount: 0}, {Name: "zeta", SongCount: 1}}
		if got := r.List(); !slices.Equal(got, want) {
			t.Errorf("List() = %v, want %v", got, want)
		}
		if r.Len() != 2 {
			t.Errorf("expected Len 2, got %d", r.Len())
		}
	})

	t.Run("AddSong", func(t *testing.T) {
		r := New()
		if _, err := r.AddSong("nope", input("a", "b", "c")); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
		if _, err := r.AddSong("nope", models.SongInput{}); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected playlist lookup before validation, got %v", err)
		}

		mustCreate(t, r, "road-trip")
		if _, err := r.AddSong("road-trip", models.SongInput{}); !errors.Is(err, shared.ErrMissingFields) {
			t.Errorf("expected ErrMissingFields, got %v", err)
		}

		song := mustAdd(t, r, "road-trip", input("Imagine", "John Lennon", "Pop"))
		if song.String() != "Imagine by John Lennon [Pop]" {
			t.Errorf("unexpected song: %s", song)
		}
	})

	t.Run("RemoveSong", func(t *testing.T) {
		r := New()
		if _, err := r.RemoveSong("nope", "x"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}

		mustCreate(t, r, "road-trip")
		mustAdd(t, r, "road-trip", input("Imagine", "John Lennon", "Pop"))
		mustAdd(t, r, "road-trip", input("imagine", "A Perfect Circle", "Rock"))

		if _, err := r.RemoveSong("road-trip", "Yesterday"); !errors.Is(err, shared.ErrSongNotFound) {
			t.Errorf("expected ErrSongNotFound, got %v", err)
		}
		if view, _ := r.Get("road-trip"); len(view.Songs) != 2 {
			t.Errorf("failed removal changed length to %d", len(view.Songs))
		}

		if _, err := r.RemoveSong("road-trip", ""); !errors.Is(err, shared.ErrSongNotFound) {
			t.Errorf("expected empty title to match nothing, got %v", err)
		}

		removed, err := r.RemoveSong("road-trip", "IMAGINE")
		if err != nil {
			t.Fatalf("failed to remove: %v", err)
		}
		if removed.Artist != "John Lennon" {
			t.Errorf("expected first match to be removed, got %s", removed)
		}

		view, _ := r.Get("road-trip")
		if len(view.Songs) != 1 || view.Songs[0].Artist != "A Perfect Circle" {
			t.Errorf("unexpected remaining songs: %v", view.Songs)
		}
	})

	t.Run("Sort", func(t *testing.T) {
		r := New()
		if _, err := r.Sort("nope", "bogus"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound before attribute check, got %v", err)
		}

		mustCreate(t, r, "road-trip")
		mustAdd(t, r, "road-trip", input("Imagine", "John Lennon", "Pop"))
		mustAdd(t, r, "road-trip", input("Bohemian Rhapsody", "Queen", "Rock"))

		if _, err := r.Sort("road-trip", "album"); !errors.Is(err, shared.ErrInvalidAttribute) {
			t.Errorf("expected ErrInvalidAttribute, got %v", err)
		}
		view, _ := r.Get("road-trip")
		if view.Songs[0].Title != "Imagine" {
			t.Error("invalid attribute should leave order unchanged")
		}

		sorted, err := r.Sort("road-trip", "title")
		if err != nil {
			t.Fatalf("failed to sort: %v", err)
		}
		if sorted[0].Title != "Bohemian Rhapsody" {
			t.Errorf("unexpected order: %v", sorted)
		}

		byArtist, _ := r.Sort("road-trip", "artist")
		again, _ := r.Sort("road-trip", "artist")
		if !slices.Equal(byArtist, again) {
			t.Errorf("sort by artist not idempotent: %v vs %v", byArtist, again)
		}
	})

	t.Run("Search", func(t *testing.T) {
		r := New()
		if _, err := r.Search("nope", "x"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}

		mustCreate(t, r, "road-trip")
		mustAdd(t, r, "road-trip", input("Imagine", "John Lennon", "Pop"))

		a, err := r.Search("road-trip", "Imagine")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, _ := r.Search("road-trip", "imagine")
		if !slices.Equal(a, b) || len(a) != 1 {
			t.Errorf("expected identical single matches, got %v and %v", a, b)
		}

		none, err := r.Search("road-trip", "Yesterday")
		if !errors.Is(err, shared.ErrSongNotFound) {
			t.Errorf("expected ErrSongNotFound, got %v", err)
		}
		if none == nil || len(none) != 0 {
			t.Errorf("expected empty result, got %#v", none)
		}

		if _, err := r.Search("road-trip", ""); !errors.Is(err, shared.ErrSongNotFound) {
			t.Errorf("expected empty title to match nothing, got %v", err)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		r := New()
		mustCreate(t, r, "road-trip")
		mustAdd(t, r, "road-trip", input("Imagine", "John Lennon", "Pop"))
		mustAdd(t, r, "road-trip", input("", "Aphex Twin", "Electronic"))

		found, err := r.Search("road-trip", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 || found[0].Artist != "Aphex Twin" {
			t.Errorf("expected the untitled song, got %v", found)
		}

		removed, err := r.RemoveSong("road-trip", "")
		if err != nil {
			t.Fatalf("failed to remove: %v", err)
		}
		if removed.Artist != "Aphex Twin" {
			t.Errorf("removed wrong song %s", removed)
		}
		if view, _ := r.Get("road-trip"); len(view.Songs) != 1 {
			t.Errorf("expected 1 song left, got %d", len(view.Songs))
		}
	})

	t.Run("road trip scenario", func(t *testing.T) {
		r := New()
		mustCreate(t, r, "road-trip")
		mustAdd(t, r, "road-trip", input("Bohemian Rhapsody", "Queen", "Rock"))
		mustAdd(t, r, "road-trip", input("Imagine", "John Lennon", "Pop"))

		sorted, err := r.Sort("road-trip", "title")
		if err != nil {
			t.Fatalf("sort failed: %v", err)
		}
		if got := []string{sorted[0].Title, sorted[1].Title}; !slices.Equal(got, []string{"Bohemian Rhapsody", "Imagine"}) {
			t.Errorf("unexpected order: %v", got)
		}

		matches, err := r.Search("road-trip", "imagine")
		if err != nil || len(matches) != 1 {
			t.Fatalf("expected one match, got %v (%v)", matches, err)
		}

		if _, err := r.RemoveSong("road-trip", "Imagine"); err != nil {
			t.Fatalf("remove failed: %v", err)
		}

		view, _ := r.Get("road-trip")
		if got := models.SongStrings(view.Songs); !slices.Equal(got, []string{"Bohemian Rhapsody by Queen [Rock]"}) {
			t.Errorf("unexpected remaining songs: %v", got)
		}
	})

	t.Run("concurrent mutation", func(t *testing.T) {
		r := New()
		mustCreate(t, r, "shared")

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				r.AddSong("shared", input(fmt.Sprintf("song-%02d", i), "artist", "genre"))
				r.Sort("shared", "title")
				r.Search("shared", "song-00")
			}(i)
		}
		wg.Wait()

		view, _ := r.Get("shared")
		if len(view.Songs) != 50 {
			t.Errorf("expected 50 songs, got %d", len(view.Songs))
		}
	})
}
