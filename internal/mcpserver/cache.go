package mcpserver

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/taxokit/taxonomy"
)

// cacheEntry holds an extracted file with LRU ordering and TTL expiry.
type cacheEntry struct {
	file      *taxonomy.File
	usedAt    time.Time
	expiresAt time.Time
}

// extractCache is a session-scoped taxonomy.FileCache. Keys carry the file's
// modification time and size, so an edited file misses on its next lookup
// and the stale entry ages out.
type extractCache struct {
	mu             sync.Mutex
	entries        map[taxonomy.CacheKey]*cacheEntry
	maxSize        int
	ttl            time.Duration
	now            func() time.Time
	sweeperStarted atomic.Bool
}

var fileCache = newExtractCache(cfg.CacheMaxSize, cfg.CacheTTL)

func newExtractCache(maxSize int, ttl time.Duration) *extractCache {
	return &extractCache{
		entries: make(map[taxonomy.CacheKey]*cacheEntry),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns a cached file. Expired entries are lazily removed.
func (c *extractCache) Get(key taxonomy.CacheKey) (*taxonomy.File, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	now := c.now()
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	e.usedAt = now
	return e.file, true
}

// Put stores f, evicting the least recently used entry when at capacity.
func (c *extractCache) Put(key taxonomy.CacheKey, f *taxonomy.File) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	entry := &cacheEntry{file: f, usedAt: now, expiresAt: now.Add(c.ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey taxonomy.CacheKey
		var oldestTime time.Time
		found := false
		for k, e := range c.entries {
			if !found || e.usedAt.Before(oldestTime) {
				oldestKey, oldestTime, found = k, e.usedAt, true
			}
		}
		if found {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries.
func (c *extractCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a goroutine that periodically removes expired
// entries until ctx is cancelled. Only the first concurrent call spawns one.
// The returned channel is closed when the sweeper exits.
func (c *extractCache) startSweeper(ctx context.Context, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	if interval <= 0 || !c.sweeperStarted.CompareAndSwap(false, true) {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
	return done
}

// reset clears all cached entries. Used in tests.
func (c *extractCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[taxonomy.CacheKey]*cacheEntry)
}

// size returns the number of cached entries.
func (c *extractCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
