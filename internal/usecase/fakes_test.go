package usecase

import (
	"context"
	"fmt"
	"sync"

	"confluence-poster/internal/domain/model"
)

type fakePipeProvider struct {
	pipes []model.Pipe
	err   error
	calls int
}

func (f *fakePipeProvider) FetchAllPipes(_ context.Context) ([]model.Pipe, error) {
	f.calls++
	return f.pipes, f.err
}

type fakePageStore struct {
	page      *model.Page
	getErr    error
	updateErr error
	gets      []string
	updates   []model.PageUpdate
}

func (f *fakePageStore) GetPage(_ context.Context, id string) (*model.Page, error) {
	f.gets = append(f.gets, id)
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.page, nil
}

func (f *fakePageStore) UpdatePage(_ context.Context, update model.PageUpdate) error {
	f.updates = append(f.updates, update)
	return f.updateErr
}

type fakePublisher struct {
	markups []string
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, markup string) error {
	f.markups = append(f.markups, markup)
	return f.err
}

type fakeRenderer struct{}

func (fakeRenderer) Render(report model.Report) (string, error) {
	return fmt.Sprintf("types=%v rows=%d", report.RuleTypes, len(report.Rows)), nil
}

type logEntry struct {
	level string
	msg   string
	args  []any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *recordingLogger) Debug(_ context.Context, msg string, args ...any) {
	l.record("debug", msg, args)
}

func (l *recordingLogger) Info(_ context.Context, msg string, args ...any) {
	l.record("info", msg, args)
}

func (l *recordingLogger) Error(_ context.Context, msg string, args ...any) {
	l.record("error", msg, args)
}

func (l *recordingLogger) at(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logEntry
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

// value returns the value logged for key, or nil.
func (e logEntry) value(key string) any {
	for i := 0; i+1 < len(e.args); i += 2 {
		if e.args[i] == key {
			return e.args[i+1]
		}
	}
	return nil
}
