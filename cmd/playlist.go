package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/setlist/internal/formatter"
	"github.com/desertthunder/setlist/internal/models"
	"github.com/desertthunder/setlist/internal/services"
	"github.com/desertthunder/setlist/internal/shared"
	"github.com/desertthunder/setlist/internal/tasks"
	"github.com/urfave/cli/v3"
)

// nameArg returns the required playlist name argument.
func nameArg(cmd *cli.Command) (string, error) {
	name := cmd.StringArg("name")
	if name == "" {
		return "", fmt.Errorf("%w: playlist name is required", shared.ErrMissingArgument)
	}
	return name, nil
}

// PlaylistCreate creates an empty playlist.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	name, err := nameArg(cmd)
	if err != nil {
		return err
	}

	if err := r.client(cmd).CreatePlaylist(ctx, name); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	r.logger.Debug("playlist created", "name", name)
	return r.writePlain("Created playlist %q\n", name)
}

// PlaylistList prints every playlist with its song count.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	playlists, err := r.client(cmd).ListPlaylists(ctx)
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(models.PlaylistListResponse{Playlists: playlists}, cmd.Bool("pretty"))
	}

	if len(playlists) == 0 {
		return r.writePlain("No playlists\n")
	}
	for _, pl := range playlists {
		if err := r.writePlain("%s (%d songs)\n", pl.Name, pl.SongCount); err != nil {
			return err
		}
	}
	return nil
}

// PlaylistGet prints a playlist's songs in order.
func (r *Runner) PlaylistGet(ctx context.Context, cmd *cli.Command) error {
	name, err := nameArg(cmd)
	if err != nil {
		return err
	}

	playlist, err := r.client(cmd).GetPlaylist(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get playlist: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlist, cmd.Bool("pretty"))
	}

	r.writePlain("Playlist: %s\n", playlist.Name)
	return r.writeSongs(playlist.Songs)
}

// PlaylistDelete deletes a playlist.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	name, err := nameArg(cmd)
	if err != nil {
		return err
	}

	if err := r.client(cmd).DeletePlaylist(ctx, name); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	return r.writePlain("Deleted playlist %q\n", name)
}

// PlaylistAdd appends a song built from the --title, --artist and --genre flags.
func (r *Runner) PlaylistAdd(ctx context.Context, cmd *cli.Command) error {
	name, err := nameArg(cmd)
	if err != nil {
		return err
	}

	song := models.NewSong(cmd.String("title"), cmd.String("artist"), cmd.String("genre"))
	added, err := r.client(cmd).AddSong(ctx, name, song)
	if err != nil {
		return fmt.Errorf("failed to add song: %w", err)
	}
	return r.writePlain("Added %s to %q\n", added, name)
}

// PlaylistRemove removes the first song whose title matches --title.
func (r *Runner) PlaylistRemove(ctx context.Context, cmd *cli.Command) error {
	name, err := nameArg(cmd)
	if err != nil {
		return err
	}

	removed, err := r.client(cmd).RemoveSong(ctx, name, cmd.String("title"))
	if err != nil {
		return fmt.Errorf("failed to remove song: %w", err)
	}
	return r.writePlain("Removed %s from %q\n", removed, name)
}

// PlaylistSort sorts a playlist by --by and prints the new order.
func (r *Runner) PlaylistSort(ctx context.Context, cmd *cli.Command) error {
	name, err := nameArg(cmd)
	if err != nil {
		return err
	}

	attribute := cmd.String("by")
	songs, err := r.client(cmd).SortPlaylist(ctx, name, attribute)
	if err != nil {
		return fmt.Errorf("failed to sort playlist: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(models.SortResponse{Message: "Songs sorted", SortedSongs: songs}, cmd.Bool("pretty"))
	}

	r.writePlain("Sorted %q by %s\n", name, attribute)
	return r.writeSongs(songs)
}

// PlaylistSearch prints songs whose title matches --title case-insensitively.
func (r *Runner) PlaylistSearch(ctx context.Context, cmd *cli.Command) error {
	name, err := nameArg(cmd)
	if err != nil {
		return err
	}

	title := cmd.String("title")
	message := "Song found"
	songs, err := r.client(cmd).SearchPlaylist(ctx, name, title)
	switch {
	case errors.Is(err, shared.ErrSongNotFound):
		songs = []string{}
		message = "Song not found in playlist"
		var apiErr *services.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			message = apiErr.Message
		}
	case err != nil:
		return fmt.Errorf("failed to search playlist: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(models.SearchResponse{Message: message, Songs: songs}, cmd.Bool("pretty"))
	}

	if len(songs) == 0 {
		return r.writePlain("No songs matching %q in %q\n", title, name)
	}
	r.writePlain("Found %d song(s) matching %q\n", len(songs), title)
	return r.writeSongs(songs)
}

// PlaylistExport renders a playlist server-side and writes it to a file or stdout.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	name, err := nameArg(cmd)
	if err != nil {
		return err
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	data, err := r.client(cmd).ExportPlaylist(ctx, name, string(format))
	if err != nil {
		return fmt.Errorf("failed to export playlist: %w", err)
	}

	output := cmd.String("output")
	if output == "-" {
		_, err := r.output.Write(data)
		return err
	}

	path, err := formatter.WriteExport(data, name, format, output)
	if err != nil {
		return err
	}

	r.logger.Info("playlist exported", "name", name, "format", format, "path", path)
	return r.writePlain("Exported %q to %s\n", name, path)
}

// PlaylistExportAll exports the named playlists, or all of them, into a directory.
func (r *Runner) PlaylistExportAll(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	prog := make(chan tasks.ProgressUpdate, 16)
	done := make(chan struct{})
	go func() {
		for u := range prog {
			r.logger.Info(u.Message, "phase", u.Phase, "step", u.Step, "total", u.Total)
		}
		close(done)
	}()

	exporter := tasks.NewExporter(r.client(cmd), r.logger)
	result, err := exporter.BulkExport(ctx, prog, cmd.Args().Slice(), tasks.BulkExportOpts{
		Format:     format,
		OutputDir:  cmd.String("dir"),
		NumWorkers: int(cmd.Int("workers")),
		RateLimit:  cmd.Float("rate"),
	})
	close(prog)
	<-done
	if err != nil {
		return fmt.Errorf("bulk export failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	r.writePlain("Exported %d of %d playlists to %s\n", result.SuccessfulExports, result.TotalPlaylists, result.OutputDirectory)
	for _, res := range result.Results {
		if !res.Success {
			r.writePlain("  ✗ %s: %s\n", res.Name, res.Error)
		}
	}
	return r.writePlain("Manifest: %s\n", result.ManifestPath)
}

// PlaylistImport adds a song for each audio file whose tags carry a title, artist and genre.
//
// Files that cannot be read or have incomplete tags are skipped with a warning.
func (r *Runner) PlaylistImport(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	name := args.First()
	if name == "" {
		return fmt.Errorf("%w: playlist name is required", shared.ErrMissingArgument)
	}
	files := args.Tail()
	if len(files) == 0 {
		return fmt.Errorf("%w: at least one audio file is required", shared.ErrMissingArgument)
	}

	client := r.client(cmd)
	if cmd.Bool("create") {
		if err := client.CreatePlaylist(ctx, name); err != nil && !errors.Is(err, shared.ErrPlaylistExists) {
			return fmt.Errorf("failed to create playlist: %w", err)
		}
	}

	imported := 0
	for _, path := range files {
		tags, err := shared.ReadAudioTags(path)
		if err != nil {
			r.logger.Warn("skipping file", "path", path, "error", err)
			continue
		}
		if !tags.Complete() {
			r.logger.Warn("skipping file with incomplete tags", "path", path,
				"title", tags.Title, "artist", tags.Artist, "genre", tags.Genre)
			continue
		}

		added, err := client.AddSong(ctx, name, models.NewSong(tags.Title, tags.Artist, tags.Genre))
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", path, err)
		}
		r.logger.Debug("song imported", "path", path, "song", added)
		imported++
	}

	return r.writePlain("Imported %d of %d files into %q\n", imported, len(files), name)
}
