package newsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"news-summarizer-client/internal/domain/model"
	"news-summarizer-client/internal/domain/ports"
)

const (
	// DefaultBaseURL is a placeholder deployment; point it at a real one.
	DefaultBaseURL   = "https://yd-mastra-agent.your-subdomain.workers.dev"
	DefaultUserAgent = "NewsSummarizerClient/1.0"

	maxErrorBody = 1024
)

type endpoint struct {
	op     string // metric and log label
	name   string // used in failure diagnostics
	title  string // heading printed with a successful result
	method string
	path   string
}

var (
	healthEndpoint    = endpoint{op: "health", name: "Health Check", title: "✅ Health Check", method: http.MethodGet, path: "/health"}
	newsEndpoint      = endpoint{op: "news", name: "Quick News", title: "📰 Quick News", method: http.MethodGet, path: "/api/news"}
	summarizeEndpoint = endpoint{op: "summarize", name: "Detailed Analysis", title: "🔍 Detailed Analysis", method: http.MethodPost, path: "/api/summarize"}
	docsEndpoint      = endpoint{op: "docs", name: "API Docs", title: "📋 API Documentation", method: http.MethodGet, path: "/api/docs"}
)

// Client implements ports.NewsService over HTTP. A single http.Client is
// shared by all calls so connections are kept alive between them.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	reporter   ports.Reporter
	logger     ports.Logger
}

var _ ports.NewsService = (*Client)(nil)

// New creates a client for the service rooted at baseURL. Every call result is
// echoed to reporter.
func New(baseURL string, reporter ports.Reporter, logger ports.Logger, opts ...Option) (*Client, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if reporter == nil {
		return nil, fmt.Errorf("reporter must not be nil")
	}
	if logger == nil {
		logger = nopLogger{}
	}

	c := &Client{
		baseURL:    base,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{},
		reporter:   reporter,
		logger:     logger,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	transport := c.httpClient.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	c.httpClient.Transport = &headerTransport{base: transport, userAgent: c.userAgent}

	return c, nil
}

// BaseURL returns the normalized service root.
func (c *Client) BaseURL() string { return c.baseURL }

// CheckHealth calls GET /health.
func (c *Client) CheckHealth(ctx context.Context) (model.Payload, error) {
	return c.call(ctx, healthEndpoint, nil, nil)
}

// GetQuickNews calls GET /api/news with the category and maxArticles query
// parameters.
func (c *Client) GetQuickNews(ctx context.Context, query model.NewsQuery) (model.Payload, error) {
	query = query.WithDefaults()
	params := url.Values{}
	params.Set("category", query.Category)
	params.Set("maxArticles", strconv.Itoa(query.MaxArticles))
	return c.call(ctx, newsEndpoint, params, nil)
}

// GetDetailedAnalysis calls POST /api/summarize with all four request fields
// in the JSON body.
func (c *Client) GetDetailedAnalysis(ctx context.Context, req model.AnalysisRequest) (model.Payload, error) {
	req = req.WithDefaults()
	return c.call(ctx, summarizeEndpoint, nil, req)
}

// GetAPIDocs calls GET /api/docs.
func (c *Client) GetAPIDocs(ctx context.Context) (model.Payload, error) {
	return c.call(ctx, docsEndpoint, nil, nil)
}

func (c *Client) call(ctx context.Context, ep endpoint, query url.Values, body any) (model.Payload, error) {
	start := time.Now()
	payload, err := c.send(ctx, ep, query, body)
	elapsed := time.Since(start)
	requestDuration.WithLabelValues(ep.op).Observe(elapsed.Seconds())

	if err != nil {
		requestsTotal.WithLabelValues(ep.op, outcomeOf(err)).Inc()
		c.logger.Error(ctx, "news api request failed",
			"operation", ep.op,
			"status", StatusCode(err),
			"duration", elapsed,
			"error", err)
		c.reporter.Failure(ctx, ep.name, err)
		return nil, err
	}

	requestsTotal.WithLabelValues(ep.op, outcomeOK).Inc()
	c.logger.Debug(ctx, "news api request completed", "operation", ep.op, "duration", elapsed)
	c.reporter.Result(ctx, ep.title, payload)
	return payload, nil
}

func (c *Client) send(ctx context.Context, ep endpoint, query url.Values, body any) (model.Payload, error) {
	op := ep.method + " " + ep.path

	reqBody := io.Reader(http.NoBody)
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s payload: %w", ep.op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	endpointURL := c.baseURL + ep.path
	if len(query) > 0 {
		endpointURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, endpointURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	var payload model.Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	if payload == nil {
		payload = model.Payload{}
	}
	return payload, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("base URL must not be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("base URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base URL %q has no host", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

func outcomeOf(err error) string {
	if StatusCode(err) != 0 {
		return outcomeStatus
	}
	return outcomeTransport
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
