package skyphase

import (
	"math"
	"sync"
	"time"

	"cloudeng.io/algo/container/list"
)

// DefaultCacheSize is used by NewTwilightCache for sizes <= 0.
const DefaultCacheSize = 64

// TwilightCache memoizes TwilightTimesFor by local calendar date, time zone
// and coordinates rounded to 0.01° (roughly a kilometre). The least recently
// used entry is evicted once the cache is full. It is safe for concurrent use.
type TwilightCache struct {
	mu      sync.Mutex
	size    int
	entries map[cacheKey]*cacheEntry
	lru     *list.Double[cacheKey]

	hits, misses int64
}

type cacheKey struct {
	year     int
	month    time.Month
	day      int
	zone     string
	lat, lon int64
}

type cacheEntry struct {
	times TwilightTimes
	id    list.DoubleID[cacheKey]
}

// NewTwilightCache returns a cache holding at most size days.
func NewTwilightCache(size int) *TwilightCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &TwilightCache{
		size:    size,
		entries: make(map[cacheKey]*cacheEntry, size),
		lru:     list.NewDouble[cacheKey](),
	}
}

func newCacheKey(date time.Time, loc Coordinates) cacheKey {
	year, month, day := date.Date()
	return cacheKey{
		year:  year,
		month: month,
		day:   day,
		zone:  date.Location().String(),
		lat:   int64(math.Round(loc.Lat * 100)),
		lon:   int64(math.Round(loc.Lon * 100)),
	}
}

// Get returns the twilight times for date's calendar day at loc, computing
// them on a miss. Cached values were computed for the first coordinates
// seen within the 0.01° cell.
func (c *TwilightCache) Get(date time.Time, loc Coordinates) TwilightTimes {
	key := newCacheKey(date, loc)

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.hits++
		c.lru.RemoveItem(e.id)
		e.id = c.lru.Append(key)
		tt := e.times
		c.mu.Unlock()
		return tt
	}
	c.misses++
	c.mu.Unlock()

	tt := TwilightTimesFor(date, loc)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		// Filled concurrently.
		return tt
	}
	for c.lru.Len() >= c.size {
		oldest := c.lru.Head()
		c.lru.RemoveItem(c.entries[oldest].id)
		delete(c.entries, oldest)
	}
	c.entries[key] = &cacheEntry{times: tt, id: c.lru.Append(key)}
	return tt
}

// Len returns the number of cached days.
func (c *TwilightCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the number of hits and misses since creation.
func (c *TwilightCache) Stats() (hits, misses int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// twilightTimes uses the cache when it is non-nil.
func (c *TwilightCache) twilightTimes(date time.Time, loc Coordinates) TwilightTimes {
	if c == nil {
		return TwilightTimesFor(date, loc)
	}
	return c.Get(date, loc)
}
