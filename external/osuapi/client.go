package osuapi

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/osu-ultimate/tournament-console/internal/platform/logging"
	"github.com/osu-ultimate/tournament-console/internal/platform/resilience"
	"github.com/osu-ultimate/tournament-console/internal/usecase"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 15 * time.Second

	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"

	fallbackErrorMessage = "API request failed"
	unknownErrorMessage  = "Unknown error occurred"

	maxResponseBytes = 4 << 20
)

var errBackendTransient = crerr.New("tournament backend transient failure")

// RequestError is a non-2xx answer from the backend. Message is the body's
// message field, or a fixed fallback.
type RequestError struct {
	Status  int
	Message string
	Method  string
	Path    string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) StatusCode() int {
	return e.Status
}

// Success is the body of endpoints that answer without a JSON payload.
type Success struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the tournament backend with one cookie session shared by
// every caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	base       *url.URL
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse backend base url %q", baseURL)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, crerr.Newf("backend base url %q uses unsupported scheme=%q; expected http or https", baseURL, base.Scheme)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, crerr.Wrap(err, "create cookie jar")
		}
		httpClient.Jar = jar
	}

	breaker := resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("osu api circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		base:       base,
		logger:     logger,
		breaker:    breaker,
	}, nil
}

// Do sends a JSON request to the backend and decodes a JSON answer into out.
// Bodies are only sent for POST, PUT and PATCH.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil && sendsBody(method) {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return crerr.Wrapf(err, "encode %s %s body", method, path)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return crerr.Wrapf(err, "build %s %s request", method, path)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(ctx, req, path, out)
}

// UploadMultipart posts r as a single file part named field.
func (c *Client) UploadMultipart(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return crerr.Wrap(err, "create multipart part")
	}
	if _, err := io.Copy(part, r); err != nil {
		return crerr.Wrapf(err, "copy %s into multipart body", filename)
	}
	if err := mw.Close(); err != nil {
		return crerr.Wrap(err, "close multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf.B))
	if err != nil {
		return crerr.Wrapf(err, "build upload %s request", path)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(ctx, req, path, out)
}

// EnsureCSRF primes the csrftoken cookie when the session has none.
func (c *Client) EnsureCSRF(ctx context.Context) error {
	if c.csrfToken() != "" {
		return nil
	}
	return c.Do(ctx, http.MethodGet, "/api/csrf/", nil, nil)
}

func (c *Client) send(ctx context.Context, req *http.Request, path string, out any) error {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "osu api circuit breaker rejected request", "path", path, "state", c.breaker.State())
		return fmt.Errorf("%w: tournament backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	req.Header.Set("Accept", "application/json")
	if token := c.csrfToken(); token != "" {
		req.Header.Set(csrfHeaderName, token)
	}

	started := time.Now()
	err := c.roundTrip(req, path, out)
	c.breaker.Record(err, isCircuitFailure)

	status := 0
	var reqErr *RequestError
	if stderrors.As(err, &reqErr) {
		status = reqErr.Status
	}
	c.logger.DebugContext(ctx, "osu api request",
		"method", req.Method,
		"path", path,
		"status", status,
		"latency_ms", time.Since(started).Milliseconds(),
		"error", err,
	)
	return err
}

func (c *Client) roundTrip(req *http.Request, path string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s %s: %v", errBackendTransient, req.Method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read %s %s response: %v", errBackendTransient, req.Method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{
			Status:  resp.StatusCode,
			Message: errorMessage(raw),
			Method:  req.Method,
			Path:    path,
		}
	}

	if out == nil {
		return nil
	}
	if !isJSON(resp.Header.Get("Content-Type")) || len(bytes.TrimSpace(raw)) == 0 {
		if s, ok := out.(*Success); ok {
			*s = Success{Success: true}
		}
		return nil
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return crerr.Wrapf(err, "decode %s %s response", req.Method, path)
	}
	return nil
}

func (c *Client) csrfToken() string {
	for _, cookie := range c.httpClient.Jar.Cookies(c.base) {
		if cookie.Name == csrfCookieName {
			return cookie.Value
		}
	}
	return ""
}

func errorMessage(raw []byte) string {
	var body struct {
		Message *string `json:"message"`
	}
	if err := sonic.Unmarshal(raw, &body); err != nil {
		return unknownErrorMessage
	}
	if body.Message == nil || *body.Message == "" {
		return fallbackErrorMessage
	}
	return *body.Message
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func sendsBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, errBackendTransient) {
		return true
	}
	var reqErr *RequestError
	return stderrors.As(err, &reqErr) && reqErr.Status >= http.StatusInternalServerError
}
