package dogs

import (
	"slices"
	"sync"
	"time"

	"github.com/iudanet/dogbrowser/internal/models"
)

// DefaultCacheTTL is how long a fetched breed catalog is served without network.
const DefaultCacheTTL = 5 * time.Minute

// BreedCache хранит последний успешно загруженный каталог пород
// Один экземпляр принадлежит одному CatalogService
type BreedCache struct {
	storedAt time.Time
	now      func() time.Time
	breeds   []models.Breed
	ttl      time.Duration
	mu       sync.Mutex
}

// NewBreedCache creates a cache with the given TTL (<= 0 means DefaultCacheTTL).
// now is the clock; nil means time.Now.
func NewBreedCache(ttl time.Duration, now func() time.Time) *BreedCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if now == nil {
		now = time.Now
	}
	return &BreedCache{ttl: ttl, now: now}
}

// Get returns a copy of the cached catalog if it is younger than the TTL.
func (c *BreedCache) Get() ([]models.Breed, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.freshLocked() {
		return nil, false
	}
	return slices.Clone(c.breeds), true
}

// Set stores a copy of breeds with the current time.
func (c *BreedCache) Set(breeds []models.Breed) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.breeds = slices.Clone(breeds)
	if c.breeds == nil {
		// пустой каталог тоже валидный результат
		c.breeds = []models.Breed{}
	}
	c.storedAt = c.now()
}

// Clear drops the cached catalog.
func (c *BreedCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.breeds = nil
	c.storedAt = time.Time{}
}

// Fresh reports whether Get would hit.
func (c *BreedCache) Fresh() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.freshLocked()
}

// TTL returns the configured lifetime.
func (c *BreedCache) TTL() time.Duration {
	return c.ttl
}

func (c *BreedCache) freshLocked() bool {
	return c.breeds != nil && c.now().Sub(c.storedAt) < c.ttl
}
