package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const (
	// AttemptTimeout ограничивает каждую отдельную попытку запроса
	AttemptTimeout = 10 * time.Second

	// MaxResponseSize ограничивает размер читаемого тела ответа
	MaxResponseSize = 10 << 20

	defaultUserAgent = "dogbrowser/1.0"
	tracerName       = "github.com/iudanet/dogbrowser/internal/client/api"
)

// RequestOptions описывает исходящий запрос
type RequestOptions struct {
	Header http.Header
	Body   any    // кодируется в JSON один раз и повторяется на каждой попытке
	Method string // GET по умолчанию
}

// Response is a fully read 2xx response.
type Response struct {
	Header     http.Header
	Body       []byte
	StatusCode int
}

// Client представляет HTTP клиент с таймаутом, повторами и backoff
type Client struct {
	httpClient      *http.Client
	logger          *slog.Logger
	tracer          trace.Tracer
	rand            func() float64
	metrics         clientMetrics
	attemptTimeout  time.Duration
	maxResponseSize int64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (tests inject httptest transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithTracer sets the tracer; one span is recorded per logical request.
func WithTracer(tr trace.Tracer) Option {
	return func(c *Client) { c.tracer = tr }
}

// WithMeter enables attempt/retry counters.
func WithMeter(m metric.Meter) Option {
	return func(c *Client) { c.metrics = newClientMetrics(m) }
}

// WithRand overrides the jitter source; f must return values in [0, 1).
func WithRand(f func() float64) Option {
	return func(c *Client) { c.rand = f }
}

// WithAttemptTimeout overrides AttemptTimeout.
func WithAttemptTimeout(d time.Duration) Option {
	return func(c *Client) { c.attemptTimeout = d }
}

// WithMaxResponseSize overrides MaxResponseSize.
func WithMaxResponseSize(n int64) Option {
	return func(c *Client) { c.maxResponseSize = n }
}

// NewClient создает новый API клиент
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			// Таймаут задается на каждую попытку через context, не здесь
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
		rand:            rand.Float64,
		attemptTimeout:  AttemptTimeout,
		maxResponseSize: MaxResponseSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.tracer == nil {
		c.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if c.rand == nil {
		c.rand = rand.Float64
	}
	if c.attemptTimeout <= 0 {
		c.attemptTimeout = AttemptTimeout
	}
	if c.maxResponseSize <= 0 {
		c.maxResponseSize = MaxResponseSize
	}
	return c
}

// Request выполняет запрос с повторами согласно policy (nil = политика по умолчанию)
// Повторяются сетевые ошибки, 5xx и 429; остальные статусы возвращаются сразу.
// После исчерпания попыток возвращается последняя ошибка.
func (c *Client) Request(ctx context.Context, url string, opts RequestOptions, policy *RetryPolicy) (*Response, error) {
	p := DefaultRetryPolicy()
	if policy != nil {
		p = policy.WithDefaults()
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var payload []byte
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, "api.Request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", url),
			attribute.String("request.id", requestID),
		))
	defer span.End()

	var (
		attempt int
		lastErr *HTTPError
		result  *Response
	)

	backoff := retry.BackoffFunc(func() (time.Duration, bool) {
		delay := p.Delay(attempt, lastErr.RetryAfter, c.rand)
		c.logger.Debug("retrying request",
			"request_id", requestID,
			"method", method,
			"attempt", attempt,
			"delay", delay,
			"error", lastErr)
		c.metrics.recordRetry(ctx, method)
		return delay, false
	})

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		c.metrics.recordAttempt(ctx, method)

		resp, err := c.do(ctx, method, url, opts.Header, payload, requestID)
		if err == nil {
			result = resp
			return nil
		}

		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			// отмена контекста вызывающим или ошибка построения запроса
			return err
		}
		lastErr = httpErr
		if attempt >= p.MaxAttempts || !httpErr.Retryable() {
			return httpErr
		}
		return retry.RetryableError(httpErr)
	})

	span.SetAttributes(attribute.Int("http.request.attempts", attempt))
	if err != nil {
		if code := StatusCode(err); code != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", code))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Debug("request failed",
			"request_id", requestID,
			"method", method,
			"attempts", attempt,
			"error", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", result.StatusCode))
	return result, nil
}

// FetchJSON выполняет Request и декодирует тело ответа в dest
// Ошибка разбора JSON не повторяется: HTTP обмен уже завершился успешно
func (c *Client) FetchJSON(ctx context.Context, url string, opts RequestOptions, policy *RetryPolicy, dest any) error {
	resp, err := c.Request(ctx, url, opts, policy)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(resp.Body, dest); err != nil {
		return newDecodeError(err)
	}
	return nil
}

// do выполняет одну попытку с собственным таймаутом
func (c *Client) do(ctx context.Context, method, url string, header http.Header, payload []byte, requestID string) (*Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(ctx, attemptCtx, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело внутри попытки, чтобы таймаут покрывал и его
	// лишний байт отличает тело ровно на лимите от превышения
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseSize+1))
	if err != nil {
		return nil, transportError(ctx, attemptCtx, err)
	}
	tooLarge := int64(len(respBody)) > c.maxResponseSize

	// у неуспешного ответа статус важнее тела: тело только обрезается
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if tooLarge {
			respBody = respBody[:c.maxResponseSize]
		}
		return nil, newStatusError(resp, respBody)
	}
	if tooLarge {
		return nil, newTooLargeError(resp.StatusCode, c.maxResponseSize)
	}

	return &Response{
		Header:     resp.Header,
		Body:       respBody,
		StatusCode: resp.StatusCode,
	}, nil
}

// transportError отличает отмену вызывающим от таймаута попытки
func transportError(parent, attemptCtx context.Context, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		return newNetworkError("request timeout", err)
	}
	return newNetworkError(err.Error(), err)
}
