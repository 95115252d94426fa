package app

import (
	"context"
	"errors"

	"confluence-poster/internal/config"
	"confluence-poster/internal/domain/ports"
	"confluence-poster/internal/usecase"
)

// App runs the pipe notifications publication once.
type App struct {
	cfg     *config.Config
	usecase *usecase.PostNotifications
	logger  ports.Logger
}

// New constructs an App instance.
func New(cfg *config.Config, post *usecase.PostNotifications, logger ports.Logger) *App {
	return &App{
		cfg:     cfg,
		usecase: post,
		logger:  logger,
	}
}

// Run checks the configuration and executes a single run. No network call is
// made when required settings are missing.
func (a *App) Run(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		var missing *config.MissingError
		if errors.As(err, &missing) {
			a.logger.Error(ctx, "missing required env vars", "missing", missing.Names)
		}
		return err
	}

	if err := a.usecase.Run(ctx); err != nil {
		if ctx.Err() != nil {
			a.logger.Error(context.Background(), "run interrupted", "error", ctx.Err())
		}
		return err
	}
	return nil
}
