// package formatter renders playlist snapshots to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/setlist/internal/models"
	"github.com/desertthunder/setlist/internal/shared"
)

// Format names an export document type.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// ParseFormat resolves a format name. Empty selects [FormatText]; "md" and "txt" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", shared.ErrInvalidFormat, s)
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension returns the conventional file extension, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatMarkdown:
		return "md"
	default:
		return "txt"
	}
}

// Export renders view in the given format.
func Export(view models.PlaylistView, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ExportToCSV(view)
	case FormatMarkdown:
		return ExportToMarkdown(view)
	case FormatText:
		return ExportToText(view)
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrInvalidFormat, string(format))
	}
}

// ExportToCSV converts a playlist to CSV format with columns: Position, Title, Artist, Genre
func ExportToCSV(view models.PlaylistView) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Position", "Title", "Artist", "Genre"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, song := range view.Songs {
		record := []string{strconv.Itoa(i + 1), song.Title, song.Artist, song.Genre}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a playlist to a Markdown document with a numbered song list
func ExportToMarkdown(view models.PlaylistView) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", view.Name))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(view.Songs)))

	if genres := genreCounts(view.Songs); genres != "" {
		buf.WriteString(fmt.Sprintf("**Genres**: %s\n\n", genres))
	}

	buf.WriteString("## Songs\n\n")
	for i, song := range view.Songs {
		buf.WriteString(fmt.Sprintf("%d. %s - %s *(%s)*\n", i+1, song.Artist, song.Title, song.Genre))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a playlist to plain text format, one "<title> by <artist> [<genre>]" line per song
func ExportToText(view models.PlaylistView) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", view.Name))
	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(view.Songs)))

	for i, song := range view.Songs {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, song))
	}

	return buf.Bytes(), nil
}

// WriteExport writes rendered export data to path.
//
// Defaults to {name}.{ext} in the working directory.
func WriteExport(data []byte, name string, format Format, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("%s.%s", name, format.Extension())
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

// genreCounts summarizes genres in first-seen order, e.g. "Rock (2), Pop (1)".
func genreCounts(songs []models.Song) string {
	counts := map[string]int{}
	order := []string{}
	for _, s := range songs {
		if _, ok := counts[s.Genre]; !ok {
			order = append(order, s.Genre)
		}
		counts[s.Genre]++
	}

	parts := make([]string, len(order))
	for i, g := range order {
		parts[i] = fmt.Sprintf("%s (%d)", g, counts[g])
	}
	return strings.Join(parts, ", ")
}
