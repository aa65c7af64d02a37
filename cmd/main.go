package main

import (
	"context"
	"net/http"
	"os"

	"github.com/desertthunder/setlist/internal/shared"
	"github.com/urfave/cli/v3"
)

// configEnv names the environment variable that overrides the config path.
const configEnv = "SETLIST_CONFIG"

func main() {
	logger := shared.NewLogger(nil)

	configPath := os.Getenv(configEnv)
	if configPath == "" {
		configPath = "config.toml"
	}

	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
		}
	}

	level, err := shared.ParseLogLevel(config.Logging.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", config.Logging.Level)
	}
	shared.SetLogLevel(logger, level)

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Logger:     logger,
		HTTPClient: &http.Client{Timeout: config.Client.Timeout},
	})

	app := &cli.Command{
		Name:     "setlist",
		Usage:    "Manage named playlists over HTTP",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
