package ports

import "context"

// Publisher delivers rendered report markup to its destination.
type Publisher interface {
	Publish(ctx context.Context, markup string) error
}
