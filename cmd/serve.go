package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/setlist/internal/registry"
	"github.com/desertthunder/setlist/internal/server"
	"github.com/desertthunder/setlist/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve runs the playlist server until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config, err := r.serveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Config:   config,
		Registry: registry.New(),
		Logger:   r.logger,
	})

	r.logger.Info("starting server", "addr", config.Server.Address(), "rate_limit", config.RateLimit.Enabled)
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrServiceUnavailable, err)
	}
	r.logger.Info("server stopped")
	return nil
}

// serveConfig applies --host and --port on top of a copy of the loaded config,
// or of the file named by --config when given.
func (r *Runner) serveConfig(cmd *cli.Command) (*shared.Config, error) {
	config := *r.config
	if cmd.IsSet("config") {
		loaded, err := shared.LoadConfig(cmd.String("config"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", shared.ErrInvalidConfig, err)
		}
		config = *loaded
	}
	if cmd.IsSet("host") {
		config.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		config.Server.Port = int(cmd.Int("port"))
	}
	return &config, nil
}
