package usecase

import (
	"context"
	"errors"
	"sync"

	"news-summarizer-client/internal/domain/model"
)

// fakeService records calls and answers quick news per category.
type fakeService struct {
	mu       sync.Mutex
	calls    []string
	queries  []model.NewsQuery
	analysis []model.AnalysisRequest

	failOn  map[string]error         // keyed by call name or "news:<category>"
	payload map[string]model.Payload // quick news payload per category
}

func (f *fakeService) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.failOn[name]
}

func (f *fakeService) CheckHealth(context.Context) (model.Payload, error) {
	if err := f.record("health"); err != nil {
		return nil, err
	}
	return model.Payload{"status": "healthy"}, nil
}

func (f *fakeService) GetQuickNews(_ context.Context, q model.NewsQuery) (model.Payload, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	if err := f.record("news:" + q.Category); err != nil {
		return nil, err
	}
	if p, ok := f.payload[q.Category]; ok {
		return p, nil
	}
	return model.Payload{"success": true, "data": map[string]any{"summaries": []any{}}}, nil
}

func (f *fakeService) GetDetailedAnalysis(_ context.Context, req model.AnalysisRequest) (model.Payload, error) {
	f.mu.Lock()
	f.analysis = append(f.analysis, req)
	f.mu.Unlock()
	if err := f.record("summarize"); err != nil {
		return nil, err
	}
	return model.Payload{"success": true}, nil
}

func (f *fakeService) GetAPIDocs(context.Context) (model.Payload, error) {
	if err := f.record("docs"); err != nil {
		return nil, err
	}
	return model.Payload{"title": "News Summarizer Agent API"}, nil
}

type lineReporter struct {
	mu    sync.Mutex
	lines []string
}

func (r *lineReporter) add(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, s)
}

func (r *lineReporter) Result(_ context.Context, title string, _ model.Payload) { r.add(title) }
func (r *lineReporter) Failure(_ context.Context, name string, err error) {
	r.add("❌ " + name + " Failed: " + err.Error())
}
func (r *lineReporter) Heading(_ context.Context, text string) { r.add(text) }
func (r *lineReporter) Line(_ context.Context, text string)    { r.add(text) }
func (r *lineReporter) Blank(context.Context)                  { r.add("") }

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type recordingNotifier struct {
	sent []model.Notification
	err  error
}

func (n *recordingNotifier) Send(_ context.Context, notification model.Notification) error {
	n.sent = append(n.sent, notification)
	return n.err
}

var errBoom = errors.New("boom")
