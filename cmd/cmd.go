// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// serveCommand runs the playlist HTTP server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the playlist HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (replaces the loaded config)",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Interface to listen on (overrides server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides server.port)",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand writes the default configuration file.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Write a default configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   r.defaultConfigPath(),
			},
		},
		Action: r.Setup,
	}
}

// playlistCommand handles playlist operations against a running server
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Playlist operations against a running server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "Server base URL (overrides client.base_url)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create an empty playlist",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Action:    r.PlaylistCreate,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List playlists with their song counts",
				Action:  r.PlaylistList,
			},
			{
				Name:      "get",
				Usage:     "Show a playlist's songs",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Action:    r.PlaylistGet,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a playlist",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Action:    r.PlaylistDelete,
			},
			{
				Name:      "add",
				Usage:     "Append a song to a playlist",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Song title", Required: true},
					&cli.StringFlag{Name: "artist", Aliases: []string{"a"}, Usage: "Song artist", Required: true},
					&cli.StringFlag{Name: "genre", Aliases: []string{"g"}, Usage: "Song genre", Required: true},
				},
				Action: r.PlaylistAdd,
			},
			{
				Name:      "remove",
				Usage:     "Remove the first song whose title matches (case-insensitive)",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Song title", Required: true},
				},
				Action: r.PlaylistRemove,
			},
			{
				Name:      "sort",
				Usage:     "Sort a playlist by title, artist or genre",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "by", Usage: "Attribute to sort by (title, artist, genre)", Value: "title"},
				},
				Action: r.PlaylistSort,
			},
			{
				Name:      "search",
				Usage:     "Find songs by title (case-insensitive)",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Song title", Required: true},
				},
				Action: r.PlaylistSearch,
			},
			{
				Name:      "export",
				Usage:     "Export a playlist as csv, markdown or text",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Export format (csv, markdown, text)", Value: "text"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file path, - for stdout (default: <name>.<ext>)"},
				},
				Action: r.PlaylistExport,
			},
			{
				Name:      "export-all",
				Usage:     "Export many playlists concurrently, one file each plus a manifest",
				ArgsUsage: "[name]...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Export format (csv, markdown, text)", Value: "text"},
					&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "Output directory (default: setlist_export_{epoch})"},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Concurrent workers", Value: 4},
					&cli.FloatFlag{Name: "rate", Usage: "Export requests per second", Value: 10},
				},
				Action: r.PlaylistExportAll,
			},
			{
				Name:      "import",
				Usage:     "Add songs to a playlist from audio file tags",
				ArgsUsage: "<name> <file>...",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "create", Usage: "Create the playlist if it does not exist"},
				},
				Action: r.PlaylistImport,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive playlist management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing playlists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "Server base URL (overrides client.base_url)",
			},
		},
		Action: r.TUI,
	}
}
