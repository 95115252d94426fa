package preview

import (
	"context"
	"fmt"
	"io"

	"confluence-poster/internal/domain/ports"
)

// Writer is a Publisher that prints the markup instead of sending it anywhere.
type Writer struct {
	out io.Writer
}

var _ ports.Publisher = (*Writer)(nil)

// NewWriter creates a Writer printing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Publish writes the markup followed by a newline.
func (w *Writer) Publish(_ context.Context, markup string) error {
	if _, err := fmt.Fprintln(w.out, markup); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}
