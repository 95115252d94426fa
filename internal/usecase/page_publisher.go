package usecase

import (
	"context"
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"confluence-poster/internal/domain/model"
	"confluence-poster/internal/domain/ports"
)

// PagePublisher replaces the body of one wiki page with the report markup.
type PagePublisher struct {
	store    ports.PageStore
	logger   ports.Logger
	pageID   string
	username string
}

// PagePublisherConfig identifies the target page and the account used, for
// error reporting.
type PagePublisherConfig struct {
	PageID   string
	Username string
}

var _ ports.Publisher = (*PagePublisher)(nil)

// NewPagePublisher constructs a PagePublisher.
func NewPagePublisher(store ports.PageStore, logger ports.Logger, cfg PagePublisherConfig) *PagePublisher {
	return &PagePublisher{
		store:    store,
		logger:   logger,
		pageID:   cfg.PageID,
		username: cfg.Username,
	}
}

// Publish fetches the current page and writes the markup as its next
// version. A concurrent edit makes the update fail; it is not retried.
func (p *PagePublisher) Publish(ctx context.Context, markup string) error {
	page, err := p.store.GetPage(ctx, p.pageID)
	if err != nil {
		p.logFailure(ctx, "could not fetch confluence page", err)
		return err
	}

	id := page.ID
	if id == "" {
		id = p.pageID
	}

	update := model.PageUpdate{
		ID:      id,
		Type:    model.PageTypePage,
		Title:   titleCase(page.Title),
		Version: page.Version + 1,
		Body:    markup,
	}
	if err := p.store.UpdatePage(ctx, update); err != nil {
		p.logFailure(ctx, "could not update confluence page", err, "version", update.Version)
		return err
	}

	p.logger.Debug(ctx, "confluence page updated", "page_id", id, "version", update.Version, "title", update.Title)
	return nil
}

func (p *PagePublisher) logFailure(ctx context.Context, msg string, err error, args ...any) {
	switch {
	case errors.Is(err, model.ErrPageNotFound):
		p.logger.Error(ctx, "could not find confluence page", append([]any{"page_id", p.pageID, "error", err}, args...)...)
	case errors.Is(err, model.ErrAuthentication):
		p.logger.Error(ctx, "confluence authentication failure", append([]any{"user", p.username, "error", err}, args...)...)
	default:
		p.logger.Error(ctx, msg, append([]any{"page_id", p.pageID, "error", err}, args...)...)
	}
}

// titleCase upper-cases the first letter of every word and lower-cases the rest.
func titleCase(title string) string {
	return cases.Title(language.Und).String(title)
}
