package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/setlist/internal/shared"
)

// Song is a track entry in a playlist.
type Song struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Genre  string `json:"genre"`
}

// NewSong creates a Song from its three fields.
func NewSong(title, artist, genre string) Song {
	return Song{Title: title, Artist: artist, Genre: genre}
}

// String renders the song as "<title> by <artist> [<genre>]".
func (s Song) String() string {
	return fmt.Sprintf("%s by %s [%s]", s.Title, s.Artist, s.Genre)
}

// Equal reports whether all three fields match exactly.
func (s Song) Equal(o Song) bool {
	return s.Title == o.Title && s.Artist == o.Artist && s.Genre == o.Genre
}

// TitleMatches reports whether the song's title equals title, ignoring case.
func (s Song) TitleMatches(title string) bool {
	return strings.EqualFold(s.Title, title)
}

// SortAttribute selects the song field a playlist is ordered by.
type SortAttribute int

const (
	SortByTitle SortAttribute = iota
	SortByArtist
	SortByGenre
)

var sortAttributeNames = map[SortAttribute]string{
	SortByTitle:  "title",
	SortByArtist: "artist",
	SortByGenre:  "genre",
}

// ParseSortAttribute maps "title", "artist" or "genre" to a [SortAttribute].
//
// Matching is exact; anything else returns [shared.ErrInvalidAttribute].
func ParseSortAttribute(s string) (SortAttribute, error) {
	for attr, name := range sortAttributeNames {
		if name == s {
			return attr, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", shared.ErrInvalidAttribute, s)
}

func (a SortAttribute) String() string {
	if name, ok := sortAttributeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("SortAttribute(%d)", int(a))
}

// Key returns the field of s this attribute orders by.
func (a SortAttribute) Key(s Song) string {
	switch a {
	case SortByArtist:
		return s.Artist
	case SortByGenre:
		return s.Genre
	default:
		return s.Title
	}
}

// Compare orders two songs by the attribute's field using byte-wise string comparison.
func (a SortAttribute) Compare(x, y Song) int {
	return strings.Compare(a.Key(x), a.Key(y))
}

// SongStrings renders each song with [Song.String].
func SongStrings(songs []Song) []string {
	out := make([]string, len(songs))
	for i, s := range songs {
		out[i] = s.String()
	}
	return out
}

// SongInput carries song fields from a request where any field may be absent.
type SongInput struct {
	Title  *string `json:"title"`
	Artist *string `json:"artist"`
	Genre  *string `json:"genre"`
}

// Song builds a [Song], failing with [shared.ErrMissingFields] if any field is absent.
func (in SongInput) Song() (Song, error) {
	missing := []string{}
	if in.Title == nil {
		missing = append(missing, "title")
	}
	if in.Artist == nil {
		missing = append(missing, "artist")
	}
	if in.Genre == nil {
		missing = append(missing, "genre")
	}
	if len(missing) > 0 {
		return Song{}, fmt.Errorf("%w: %s", shared.ErrMissingFields, strings.Join(missing, ", "))
	}
	return NewSong(*in.Title, *in.Artist, *in.Genre), nil
}
