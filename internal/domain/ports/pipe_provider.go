package ports

import (
	"context"

	"confluence-poster/internal/domain/model"
)

// PipeProvider lists the pipes configured on a node.
type PipeProvider interface {
	FetchAllPipes(ctx context.Context) ([]model.Pipe, error)
}
