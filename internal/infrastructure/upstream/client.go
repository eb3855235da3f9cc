package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hospital-directory/config"
	"hospital-directory/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

const (
	MessageTimeout    = "Request timeout"
	MessageAuthFailed = "authentication failed"
)

// Result is the outcome of one upstream call. Failures never surface as Go
// errors past this package.
type Result struct {
	Data    any
	Success bool
	Message string
	Status  int
}

// ResponseCache memoizes successful response bodies.
type ResponseCache interface {
	GetOrSet(ctx context.Context, key string, ttl time.Duration, fetch func(ctx context.Context) ([]byte, error)) ([]byte, error)
	Refresh(ctx context.Context, key string, ttl time.Duration, fetch func(ctx context.Context) ([]byte, error)) ([]byte, error)
}

type refreshKey struct{}

// WithRefresh marks ctx so cached GETs made with it skip the cached value,
// hit the upstream and overwrite the entry.
func WithRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, refreshKey{}, true)
}

// RefreshRequested reports whether ctx was marked by WithRefresh.
func RefreshRequested(ctx context.Context) bool {
	refresh, _ := ctx.Value(refreshKey{}).(bool)
	return refresh
}

// failure carries a non-cacheable Result through the cache fetcher.
type failure struct {
	result Result
}

func (f *failure) Error() string {
	return f.result.Message
}

type Client struct {
	baseURL    string
	timeout    time.Duration
	cacheTTL   time.Duration
	httpClient *http.Client
	session    *Session
	cache      ResponseCache
	metrics    *metrics.DirectoryMetrics
	log        *logrus.Logger
}

// NewClient builds a client for the hospital API. cache may be nil.
func NewClient(cfg config.UpstreamConfig, cacheTTL time.Duration, session *Session, cache ResponseCache, m *metrics.DirectoryMetrics, log *logrus.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    timeout,
		cacheTTL:   cacheTTL,
		httpClient: &http.Client{},
		session:    session,
		cache:      cache,
		metrics:    m,
		log:        log,
	}
}

// Get fetches path with the given query, through the response cache.
func (c *Client) Get(ctx context.Context, path string, query url.Values) Result {
	return c.GetWithTTL(ctx, path, query, c.cacheTTL)
}

// GetWithTTL is Get with a per-call cache lifetime. A non-positive ttl bypasses the cache.
func (c *Client) GetWithTTL(ctx context.Context, path string, query url.Values, ttl time.Duration) Result {
	endpoint, err := c.buildURL(path, query)
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}

	if c.cache == nil || ttl <= 0 {
		body, res := c.fetch(ctx, path, endpoint)
		if !res.Success {
			return res
		}
		return decodeBody(body, res.Status)
	}

	load := c.cache.GetOrSet
	if RefreshRequested(ctx) {
		load = c.cache.Refresh
	}
	body, err := load(ctx, "GET:"+endpoint, ttl, func(ctx context.Context) ([]byte, error) {
		body, res := c.fetch(ctx, path, endpoint)
		if !res.Success {
			return nil, &failure{result: res}
		}
		return body, nil
	})
	if err != nil {
		var f *failure
		if errors.As(err, &f) {
			return f.result
		}
		return Result{Success: false, Message: transportMessage(ctx, err)}
	}
	return decodeBody(body, http.StatusOK)
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	parsed, err := url.Parse(c.baseURL + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid upstream url: %w", err)
	}
	if len(query) > 0 {
		parsed.RawQuery = query.Encode()
	}
	return parsed.String(), nil
}

// fetch performs the request, retrying once with a fresh token on 401.
func (c *Client) fetch(ctx context.Context, path, endpoint string) ([]byte, Result) {
	start := time.Now()
	body, res := c.do(ctx, endpoint)
	if res.Status == http.StatusUnauthorized {
		c.log.Warnf("Upstream rejected token for %s, logging in again", path)
		c.session.Clear()
		body, res = c.do(ctx, endpoint)
	}

	outcome := "success"
	if !res.Success {
		outcome = "error"
		c.log.Warnf("Failed to fetch %s: %s", path, res.Message)
	}
	c.metrics.ObserveUpstream(path, outcome, time.Since(start).Seconds())

	return body, res
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, Result) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	token, err := c.session.EnsureToken(ctx)
	if err != nil {
		c.log.Warnf("Failed to authenticate against upstream: %+v", err)
		return nil, Result{Success: false, Message: MessageAuthFailed}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, Result{Success: false, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, Result{Success: false, Message: transportMessage(ctx, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Result{Success: false, Message: transportMessage(ctx, err), Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, Result{Success: false, Message: errorMessage(resp.StatusCode, body), Status: resp.StatusCode}
	}

	return body, Result{Success: true, Status: resp.StatusCode}
}

func transportMessage(ctx context.Context, err error) string {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return MessageTimeout
	}
	return err.Error()
}

// errorMessage prefers a JSON "message" field, then the raw body text.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := payload.Message.(string); ok && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP error %d", status)
}

func decodeBody(body []byte, status int) Result {
	if len(strings.TrimSpace(string(body))) == 0 {
		return Result{Success: true, Status: status}
	}
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return Result{Data: string(body), Success: true, Status: status}
	}
	return Result{Data: data, Success: true, Status: status}
}
