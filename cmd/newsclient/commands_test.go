package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-summarizer-client/internal/usecase"
)

type hit struct {
	method string
	path   string
	query  string
	body   string
}

func newFakeService(t *testing.T, status int) (*httptest.Server, func() []hit) {
	t.Helper()
	var (
		mu   sync.Mutex
		hits []hit
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		hits = append(hits, hit{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: string(data)})
		mu.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{"success":true,"data":{"summaries":[{"title":"Headline"}]}}`)
	}))
	t.Cleanup(srv.Close)
	return srv, func() []hit {
		mu.Lock()
		defer mu.Unlock()
		return append([]hit(nil), hits...)
	}
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("NEWS_CLIENT_LOG_LEVEL", "error")
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(context.Background())
}

func TestHealthCommand(t *testing.T) {
	srv, hits := newFakeService(t, http.StatusOK)
	require.NoError(t, run(t, "health", "--base-url", srv.URL))
	require.Len(t, hits(), 1)
	assert.Equal(t, "/health", hits()[0].path)
}

func TestHealthCommand_ServerError(t *testing.T) {
	srv, _ := newFakeService(t, http.StatusInternalServerError)
	assert.Error(t, run(t, "health", "--base-url", srv.URL))
}

func TestNewsCommand(t *testing.T) {
	srv, hits := newFakeService(t, http.StatusOK)
	require.NoError(t, run(t, "news", "--base-url", srv.URL, "--category", "science", "--max-articles", "4"))
	assert.Equal(t, "category=science&maxArticles=4", hits()[0].query)
}

func TestSummarizeCommand_DefaultFocus(t *testing.T) {
	srv, hits := newFakeService(t, http.StatusOK)
	require.NoError(t, run(t, "summarize", "--base-url", srv.URL))
	assert.JSONEq(t, `{"category":"technology","maxArticles":10,"summaryLength":"medium","focusAreas":["AI","startups"]}`, hits()[0].body)
}

func TestSummarizeCommand_ExplicitFocus(t *testing.T) {
	srv, hits := newFakeService(t, http.StatusOK)
	require.NoError(t, run(t, "summarize", "--base-url", srv.URL,
		"--category", "AI", "--max-articles", "5", "--length", "long", "--focus", "ml,chatgpt"))
	assert.JSONEq(t, `{"category":"AI","maxArticles":5,"summaryLength":"long","focusAreas":["ml","chatgpt"]}`, hits()[0].body)
}

func TestDocsCommand(t *testing.T) {
	srv, hits := newFakeService(t, http.StatusOK)
	require.NoError(t, run(t, "docs", "--base-url", srv.URL))
	assert.Equal(t, "/api/docs", hits()[0].path)
}

func TestSweepCommand(t *testing.T) {
	srv, hits := newFakeService(t, http.StatusOK)
	require.NoError(t, run(t, "sweep", "--base-url", srv.URL, "--categories", "world,sports", "--concurrency", "2"))

	got := hits()
	require.Len(t, got, 2)
	queries := []string{got[0].query, got[1].query}
	assert.ElementsMatch(t, []string{"category=world&maxArticles=2", "category=sports&maxArticles=2"}, queries)
}

func TestSweepCommand_FlagDefaults(t *testing.T) {
	cmd := newSweepCmd(&globalFlags{})
	assert.Equal(t, strconv.Itoa(usecase.DefaultSweepMaxArticles), cmd.Flags().Lookup("max-articles").DefValue)
	assert.Equal(t, strconv.Itoa(usecase.DefaultSweepConcurrency), cmd.Flags().Lookup("concurrency").DefValue)
}

func TestSweepCommand_AllFailed(t *testing.T) {
	srv, hits := newFakeService(t, http.StatusBadGateway)
	assert.Error(t, run(t, "sweep", "--base-url", srv.URL))
	assert.Len(t, hits(), 4)
}

func TestRootCommand_RunsDemoAndSweep(t *testing.T) {
	srv, hits := newFakeService(t, http.StatusOK)
	require.NoError(t, run(t, "--base-url", srv.URL))

	paths := make([]string, 0, len(hits()))
	for _, h := range hits() {
		paths = append(paths, h.method+" "+h.path)
	}
	assert.Equal(t, []string{
		"GET /health",
		"GET /api/news",
		"POST /api/summarize",
		"GET /api/news",
		"GET /api/docs",
		"GET /api/news",
		"GET /api/news",
		"GET /api/news",
		"GET /api/news",
	}, paths)
}

func TestRootCommand_InvalidBaseURL(t *testing.T) {
	assert.Error(t, run(t, "health", "--base-url", "not-a-url"))
}

func TestScheduleCommand_InvalidCron(t *testing.T) {
	assert.Error(t, run(t, "schedule", "--base-url", "http://127.0.0.1:1", "--cron", "sometimes"))
}
