//go:build wireinject

package di

import (
	"io"
	"log/slog"

	"github.com/google/wire"

	"confluence-poster/internal/adapter/confluence"
	"confluence-poster/internal/adapter/logging"
	"confluence-poster/internal/adapter/node"
	"confluence-poster/internal/adapter/preview"
	"confluence-poster/internal/adapter/render"
	"confluence-poster/internal/app"
	"confluence-poster/internal/config"
	"confluence-poster/internal/domain/ports"
	"confluence-poster/internal/usecase"
)

// Options carries command-line settings that are not part of the environment.
type Options struct {
	DryRun   bool
	LogLevel string
	Stdout   io.Writer
	Stderr   io.Writer
}

// InitializeApp wires the application components together.
func InitializeApp(cfg *config.Config, opts Options) (*app.App, error) {
	wire.Build(
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		providePipeProvider,
		render.NewTable,
		wire.Bind(new(ports.ReportRenderer), new(*render.Table)),
		providePublisher,
		usecase.NewPostNotifications,
		app.New,
	)
	return nil, nil
}

func provideSlogLogger(cfg *config.Config, opts Options) *slog.Logger {
	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	return logging.NewText(opts.Stderr, level)
}

func providePipeProvider(cfg *config.Config, logger ports.Logger) ports.PipeProvider {
	return node.New(cfg.NodeURL, cfg.JWT, nil, logger)
}

func providePublisher(cfg *config.Config, opts Options, logger ports.Logger) ports.Publisher {
	if opts.DryRun {
		return preview.NewWriter(opts.Stdout)
	}
	store := confluence.New(cfg.ConfluenceBaseURL, cfg.ConfluenceUsername, cfg.ConfluencePassword, nil, logger)
	return usecase.NewPagePublisher(store, logger, usecase.PagePublisherConfig{
		PageID:   cfg.PageID,
		Username: cfg.ConfluenceUsername,
	})
}
