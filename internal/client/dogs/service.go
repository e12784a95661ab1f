// Package dogs implements the Dog CEO catalog and image lookup services.
package dogs

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/dogbrowser/internal/client/api"
)

// DefaultBaseURL is the public Dog CEO API root.
const DefaultBaseURL = "https://dog.ceo/api"

// Fetcher is the part of api.Client the services depend on
type Fetcher interface {
	FetchJSON(ctx context.Context, url string, opts api.RequestOptions, policy *api.RetryPolicy, dest any) error
}

// defaultPolicy: 3 попытки, базовая задержка 1s
func defaultPolicy() api.RetryPolicy {
	return api.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second}.WithDefaults()
}

type options struct {
	logger *slog.Logger
	cache  *BreedCache
	policy api.RetryPolicy
}

// Option configures CatalogService and ImageService.
type Option func(*options)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRetryPolicy overrides the retry policy (tests use millisecond delays).
func WithRetryPolicy(p api.RetryPolicy) Option {
	return func(o *options) { o.policy = p.WithDefaults() }
}

// WithCache injects the catalog cache; ignored by ImageService.
func WithCache(c *BreedCache) Option {
	return func(o *options) { o.cache = c }
}

func buildOptions(opts []Option) options {
	o := options{policy: defaultPolicy()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

func trimBase(baseURL string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/")
}
