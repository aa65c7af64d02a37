package shared

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhowden/tag"
)

// AudioTags holds the song metadata read from an audio file.
type AudioTags struct {
	Title  string
	Artist string
	Genre  string
	Path   string
}

// Complete reports whether title, artist and genre are all present.
func (a AudioTags) Complete() bool {
	return a.Title != "" && a.Artist != "" && a.Genre != ""
}

// ReadAudioTags reads ID3, MP4, FLAC or OGG metadata from the file at path.
func ReadAudioTags(path string) (*AudioTags, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read tags from %s: %w", path, err)
	}

	return &AudioTags{
		Title:  strings.TrimSpace(meta.Title()),
		Artist: strings.TrimSpace(meta.Artist()),
		Genre:  strings.TrimSpace(meta.Genre()),
		Path:   path,
	}, nil
}
