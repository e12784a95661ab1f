package dogs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/iudanet/dogbrowser/internal/client/api"
	"github.com/iudanet/dogbrowser/internal/models"
	pkgapi "github.com/iudanet/dogbrowser/pkg/api"
)

// CatalogService загружает список пород с кешированием
type CatalogService struct {
	client  Fetcher
	cache   *BreedCache
	opts    options
	baseURL string
}

// NewCatalogService creates a catalog service; without WithCache it owns a
// fresh cache with DefaultCacheTTL.
func NewCatalogService(client Fetcher, baseURL string, opts ...Option) *CatalogService {
	o := buildOptions(opts)
	cache := o.cache
	if cache == nil {
		cache = NewBreedCache(DefaultCacheTTL, nil)
	}
	return &CatalogService{
		client:  client,
		cache:   cache,
		opts:    o,
		baseURL: trimBase(baseURL),
	}
}

// FetchBreeds returns the sorted list of top-level breeds.
// Свежий кеш отдается без сети; любая ошибка очищает кеш.
func (s *CatalogService) FetchBreeds(ctx context.Context) ([]models.Breed, error) {
	if breeds, ok := s.cache.Get(); ok {
		s.opts.logger.Debug("breeds served from cache", "count", len(breeds))
		return breeds, nil
	}

	breeds, err := s.fetch(ctx)
	if err != nil {
		s.cache.Clear()
		return nil, err
	}

	s.cache.Set(breeds)
	s.opts.logger.Debug("breeds fetched", "count", len(breeds))
	return breeds, nil
}

func (s *CatalogService) fetch(ctx context.Context) ([]models.Breed, error) {
	var resp pkgapi.BreedsResponse
	if err := s.client.FetchJSON(ctx, s.baseURL+"/breeds/list/all", api.RequestOptions{}, &s.opts.policy, &resp); err != nil {
		return nil, err
	}

	if resp.Status != pkgapi.StatusSuccess {
		return nil, fmt.Errorf("%w: breeds status %q", models.ErrAPILogic, resp.Status)
	}

	raw := bytes.TrimSpace(resp.Message)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, fmt.Errorf("%w: invalid response format: expected breed mapping", models.ErrAPILogic)
	}

	var catalog map[string][]string
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("%w: invalid response format: %v", models.ErrAPILogic, err)
	}

	// Под-породы не показываются, берем только ключи верхнего уровня
	breeds := make([]models.Breed, 0, len(catalog))
	for name := range catalog {
		breeds = append(breeds, models.Breed(name))
	}
	slices.Sort(breeds)

	return breeds, nil
}

// ClearCache drops the cached catalog so the next FetchBreeds hits the network.
func (s *CatalogService) ClearCache() {
	s.cache.Clear()
}

// IsCached reports whether FetchBreeds would be served from cache.
func (s *CatalogService) IsCached() bool {
	return s.cache.Fresh()
}
