package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

const (
	megabyte       = 1024 * 1024
	statsCacheSize = 10 * megabyte

	HeaderRequestID = "X-Request-ID"
)

// TokenSource supplies the bearer token attached to every request.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a plain func to TokenSource.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string {
	return f()
}

type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
	limiter     *rate.Limiter
	metrics     *metrics.Manager

	statsCache    *freecache.Cache
	statsCacheTTL int // seconds
}

type Option func(c *Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokenSource = ts
	}
}

// WithRateLimit throttles outgoing requests, 0 means unlimited.
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

func WithMetrics(m *metrics.Manager) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithStatsCache enables caching of stats responses for ttlSeconds, 0 disables it.
func WithStatsCache(ttlSeconds int) Option {
	return func(c *Client) {
		if ttlSeconds > 0 {
			c.statsCache = freecache.NewCache(statsCacheSize)
			c.statsCacheTTL = ttlSeconds
		}
	}
}

// NewHTTPClient returns a traced http client, timeout 0 means no timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    trimSlash(baseURL),
		httpClient: NewHTTPClient(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTokenSource replaces the token source, used when the session is created after the client.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokenSource = ts
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, resource, method, path string, query url.Values, body, out any) error {
	respBytes, err := c.send(ctx, resource, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(respBytes)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", resource, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, resource, method, path string, query url.Values, body any) (respBytes []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "apiClient."+resource)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	reqURL := c.baseURL + path
	if encoded := encodeQuery(query); encoded != "" {
		reqURL += "?" + encoded
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s request: %w", resource, err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", resource, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenSource != nil {
		if token := c.tokenSource.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	span.SetAttributes(
		attribute.String("request.id", requestID),
		attribute.String("http.method", method),
		attribute.String("api.path", path),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe(resource, method, resp, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Errorf("close %s response body: %s", resource, closeErr)
		}
	}()

	respBytes, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", resource, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debugf("api %s %s [%s] failed with status %d", method, path, requestID, resp.StatusCode)
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    parseErrorMessage(respBytes),
		}
	}

	return respBytes, nil
}

func (c *Client) observe(resource, method string, resp *http.Response, took time.Duration) {
	if c.metrics == nil {
		return
	}
	status := "error"
	if resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	c.metrics.CounterAPIRequests.WithLabelValues(resource, method, status).Inc()
	c.metrics.HistogramAPIRequestDuration.WithLabelValues(resource, method).Observe(took.Seconds())
}

// encodeQuery drops empty values.
func encodeQuery(query url.Values) string {
	if len(query) == 0 {
		return ""
	}
	cleaned := url.Values{}
	for k, values := range query {
		for _, v := range values {
			if v != "" {
				cleaned.Add(k, v)
			}
		}
	}
	return cleaned.Encode()
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
