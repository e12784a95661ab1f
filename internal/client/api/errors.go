package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Transport-level error kinds, matchable with errors.Is
var (
	// ErrNetwork indicates a failure without HTTP status (timeout, connection failure)
	ErrNetwork = errors.New("network error")

	// ErrStatus indicates a non-2xx HTTP response
	ErrStatus = errors.New("unexpected http status")

	// ErrDecode indicates that a successful response body is not valid JSON
	ErrDecode = errors.New("failed to parse JSON response")

	// ErrResponseTooLarge indicates a body over the client's size limit; wrapped in an ErrDecode HTTPError
	ErrResponseTooLarge = errors.New("response too large")
)

// HTTPError описывает неуспешный HTTP обмен
// StatusCode == 0 означает ошибку сетевого уровня
type HTTPError struct {
	kind       error
	err        error
	Message    string
	StatusCode int
	RetryAfter time.Duration // подсказка сервера из заголовка Retry-After, 0 если нет
	Body       []byte        // тело неуспешного ответа, может быть пустым
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause (transport or decode error), if any.
func (e *HTTPError) Unwrap() error {
	return e.err
}

// Is matches the error kind (ErrNetwork, ErrStatus, ErrDecode).
func (e *HTTPError) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

// Retryable reports whether the request may be repeated:
// network errors, 5xx and 429 are retryable, everything else is terminal.
func (e *HTTPError) Retryable() bool {
	if errors.Is(e, ErrDecode) {
		return false
	}
	if e.StatusCode == 0 {
		return true
	}
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

func newNetworkError(message string, cause error) *HTTPError {
	return &HTTPError{
		kind:    ErrNetwork,
		err:     cause,
		Message: message,
	}
}

func newStatusError(resp *http.Response, body []byte) *HTTPError {
	return &HTTPError{
		kind:       ErrStatus,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, statusText(resp)),
		StatusCode: resp.StatusCode,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		Body:       body,
	}
}

func newDecodeError(cause error) *HTTPError {
	return &HTTPError{
		kind:    ErrDecode,
		err:     cause,
		Message: ErrDecode.Error(),
	}
}

// newTooLargeError не повторяется: следующая попытка получит то же тело
func newTooLargeError(statusCode int, limit int64) *HTTPError {
	return &HTTPError{
		kind:       ErrDecode,
		err:        ErrResponseTooLarge,
		Message:    fmt.Sprintf("%s: exceeds %d bytes", ErrResponseTooLarge, limit),
		StatusCode: statusCode,
	}
}

// StatusCode extracts the HTTP status from err, 0 when err carries none.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// parseRetryAfter понимает только целое число секунд; HTTP-date не поддерживается
func parseRetryAfter(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func statusText(resp *http.Response) string {
	// resp.Status имеет вид "503 Service Unavailable"
	if _, text, ok := strings.Cut(resp.Status, " "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
