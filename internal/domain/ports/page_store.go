package ports

import (
	"context"

	"confluence-poster/internal/domain/model"
)

// PageStore reads and replaces wiki pages (e.g. Confluence).
type PageStore interface {
	GetPage(ctx context.Context, id string) (*model.Page, error)
	UpdatePage(ctx context.Context, update model.PageUpdate) error
}
