package ports

import "confluence-poster/internal/domain/model"

// ReportRenderer turns a report into page markup.
type ReportRenderer interface {
	Render(report model.Report) (string, error)
}
