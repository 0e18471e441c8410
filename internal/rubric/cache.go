package rubric

import (
	"sync"
	"time"
)

// Loader produces a rubric, typically by reading a reference file.
type Loader func() (*Rubric, error)

// Cache caches a loaded rubric for a TTL. It is an explicitly owned object
// injected by the calling service layer; the extraction core holds no
// global rubric state.
//
// A failed reload keeps serving the previously loaded rubric so a transient
// loader failure never degrades scoring mid-flight.
type Cache struct {
	mu       sync.Mutex
	ttl      time.Duration
	load     Loader
	now      func() time.Time
	cached   *Rubric
	loadedAt time.Time
}

// NewCache creates a rubric cache. A non-positive ttl reloads on every Get.
func NewCache(ttl time.Duration, load Loader) *Cache {
	return &Cache{
		ttl:  ttl,
		load: load,
		now:  time.Now,
	}
}

// Get returns the cached rubric, reloading when the TTL has elapsed.
// Returns an error only when no rubric has ever been loaded; callers treat
// that as "no rubric" and fall back to the default expected categories.
func (c *Cache) Get() (*Rubric, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && c.ttl > 0 && c.now().Sub(c.loadedAt) < c.ttl {
		return c.cached, nil
	}

	r, err := c.load()
	if err != nil {
		if c.cached != nil {
			return c.cached, nil // serve stale
		}
		return nil, err
	}

	c.cached = r
	c.loadedAt = c.now()
	return r, nil
}
