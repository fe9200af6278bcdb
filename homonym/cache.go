package homonym

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/scalecode-solutions/pinyinseg"
	"github.com/scalecode-solutions/pinyinseg/internal/log"
)

// Cache timing used by Cached.
const (
	DefaultExpiration      = 10 * time.Minute // Used when the ttl is not positive.
	DefaultCleanupInterval = 30 * time.Minute // How often expired lookups are purged.
)

// CachedTable memoizes the lookups of another table, misses included. It is
// meant for tables whose Rank is expensive, such as ones backed by a remote
// service.
type CachedTable struct {
	table pinyinseg.FrequencyTable
	cache *gocache.Cache
}

var _ pinyinseg.FrequencyTable = (*CachedTable)(nil)

// cachedRank is stored for hits and misses alike.
type cachedRank struct {
	rank int
	ok   bool
}

// Cached wraps table so that every key is looked up at most once per ttl.
// A ttl of zero uses DefaultExpiration.
func Cached(table pinyinseg.FrequencyTable, ttl time.Duration) *CachedTable {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	return &CachedTable{
		table: table,
		cache: gocache.New(ttl, DefaultCleanupInterval),
	}
}

// Rank implements pinyinseg.FrequencyTable.
func (c *CachedTable) Rank(key string) (int, bool) {
	if value, found := c.cache.Get(key); found {
		if r, ok := value.(cachedRank); ok {
			log.Debug(log.CatCache, "cache hit", "key", key)
			return r.rank, r.ok
		}
		log.Error(log.CatCache, "wrong type assertion when getting value", "key", key)
	}

	rank, ok := c.table.Rank(key)
	c.cache.SetDefault(key, cachedRank{rank: rank, ok: ok})
	return rank, ok
}

// Flush drops every cached lookup.
func (c *CachedTable) Flush() {
	c.cache.Flush()
}

// Len returns the number of cached lookups, including expired ones that
// have not been cleaned up yet.
func (c *CachedTable) Len() int {
	return c.cache.ItemCount()
}
