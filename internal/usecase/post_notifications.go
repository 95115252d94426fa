package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"confluence-poster/internal/domain/model"
	"confluence-poster/internal/domain/ports"
)

// PostNotifications fetches the node's pipes, builds the notification rule
// matrix and publishes it.
type PostNotifications struct {
	pipes     ports.PipeProvider
	renderer  ports.ReportRenderer
	publisher ports.Publisher
	logger    ports.Logger
}

// NewPostNotifications constructs a PostNotifications use case.
func NewPostNotifications(
	pipes ports.PipeProvider,
	renderer ports.ReportRenderer,
	publisher ports.Publisher,
	logger ports.Logger,
) *PostNotifications {
	return &PostNotifications{
		pipes:     pipes,
		renderer:  renderer,
		publisher: publisher,
		logger:    logger,
	}
}

// Run executes one fetch, render and publish cycle. Nothing is published if
// any earlier step fails.
func (u *PostNotifications) Run(ctx context.Context) error {
	start := time.Now()
	u.logger.Debug(ctx, "starting pipe notifications run", "started_at", start)

	pipes, err := u.pipes.FetchAllPipes(ctx)
	if err != nil {
		u.logFetchFailure(ctx, err)
		return err
	}

	notifiable := PipesWithNotifications(pipes)
	u.logger.Debug(ctx, "filtered pipes", "total", len(pipes), "with_notifications", len(notifiable))

	report, err := BuildReport(notifiable)
	if err != nil {
		u.logger.Error(ctx, "failed to build report", "error", err)
		return err
	}

	markup, err := u.renderer.Render(report)
	if err != nil {
		u.logger.Error(ctx, "failed to render report", "error", err)
		return err
	}

	if err := u.publisher.Publish(ctx, markup); err != nil {
		return fmt.Errorf("publish report: %w", err)
	}

	u.logger.Info(ctx, "successfully posted pipe notifications config",
		"pipes", len(report.Rows),
		"rule_types", len(report.RuleTypes),
		"duration", time.Since(start))
	return nil
}

func (u *PostNotifications) logFetchFailure(ctx context.Context, err error) {
	var transportErr *model.TransportError
	var statusErr *model.UpstreamStatusError
	switch {
	case errors.As(err, &transportErr):
		u.logger.Error(ctx, "connection error fetching pipes from node", "node", transportErr.URL, "error", transportErr.Err)
	case errors.As(err, &statusErr):
		u.logger.Error(ctx, "unexpected status fetching pipes from node", "node", statusErr.URL, "status", statusErr.StatusCode, "error", err)
	default:
		u.logger.Error(ctx, "failed to fetch pipes from node", "error", err)
	}
}
