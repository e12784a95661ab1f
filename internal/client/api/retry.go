package api

import (
	"math"
	"time"
)

const (
	defaultMaxAttempts   = 3
	defaultBaseDelay     = 1 * time.Second
	defaultMaxDelay      = 10 * time.Second
	defaultBackoffFactor = 2.0

	// jitterFraction is the upper bound of the random addition to a delay.
	jitterFraction = 0.1
)

// RetryPolicy описывает политику повторов для одного вызова
// Нулевые поля заменяются значениями по умолчанию, поэтому вызывающий
// код может переопределить только нужные поля
type RetryPolicy struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryPolicy returns 3 attempts, 1s base delay, 10s cap, factor 2.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   defaultMaxAttempts,
		BaseDelay:     defaultBaseDelay,
		MaxDelay:      defaultMaxDelay,
		BackoffFactor: defaultBackoffFactor,
	}
}

// WithDefaults fills zero fields from DefaultRetryPolicy.
func (p RetryPolicy) WithDefaults() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = def.BaseDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = def.MaxDelay
	}
	if p.BackoffFactor <= 0 {
		p.BackoffFactor = def.BackoffFactor
	}
	return p
}

// Delay returns the wait after failed attempt n (1-based).
// A server hint (retryAfter > 0) replaces the exponential formula; both are
// capped at MaxDelay. rnd must return a value in [0, 1).
func (p RetryPolicy) Delay(attempt int, retryAfter time.Duration, rnd func() float64) time.Duration {
	if retryAfter > 0 {
		return min(retryAfter, p.MaxDelay)
	}
	if attempt < 1 {
		attempt = 1
	}

	exponential := float64(p.BaseDelay) * math.Pow(p.BackoffFactor, float64(attempt-1))
	// jitter только добавляется, никогда не вычитается
	jitter := rnd() * jitterFraction * exponential
	delay := exponential + jitter

	if delay >= float64(p.MaxDelay) {
		return p.MaxDelay
	}
	return time.Duration(delay)
}
