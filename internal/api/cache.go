package api

import (
	"os"
	"strconv"
	"sync"

	"github.com/swinglab/swinglab/pkg/analysis"
)

// ReportCache is a thread-safe LRU cache for loaded swing analyses, keyed by
// athlete and swing since swing IDs are only unique per athlete.
type ReportCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*analysis.Result
	order   []string // oldest first
}

// NewReportCache creates a cache with the given maximum number of entries.
// If maxSize <= 0, it defaults to 100.
func NewReportCache(maxSize int) *ReportCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &ReportCache{
		maxSize: maxSize,
		entries: make(map[string]*analysis.Result),
	}
}

// NewReportCacheFromEnv creates a cache with size from REPORT_CACHE_SIZE env var.
func NewReportCacheFromEnv() *ReportCache {
	size := 100
	if v := os.Getenv("REPORT_CACHE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return NewReportCache(size)
}

func cacheKey(athleteID, swingID string) string {
	return athleteID + "/" + swingID
}

// Get retrieves a result from the cache, or nil if not found.
func (c *ReportCache) Get(athleteID, swingID string) *analysis.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(athleteID, swingID)
	res, ok := c.entries[key]
	if !ok {
		return nil
	}
	c.moveToEnd(key)
	return res
}

// Put adds a result to the cache, evicting the least recently used if full.
func (c *ReportCache) Put(athleteID, swingID string, res *analysis.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(athleteID, swingID)
	if _, ok := c.entries[key]; ok {
		c.entries[key] = res
		c.moveToEnd(key)
		return
	}

	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = res
	c.order = append(c.order, key)
}

// Len returns the number of cached results.
func (c *ReportCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ReportCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}
