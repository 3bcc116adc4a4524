package hue

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/gopatchy/hue/pkg/log"
)

// DefaultCacheTTL is how long a compiled RuleSet stays cached when NewCache
// is given a zero ttl.
const DefaultCacheTTL = 10 * time.Minute

// Cache memoizes compiled rule sets from another [Loader], keyed by
// normalized language. Load errors are not cached. Safe for concurrent use.
type Cache struct {
	loader Loader
	cache  *gocache.Cache
}

// NewCache wraps loader. A ttl <= 0 uses [DefaultCacheTTL].
func NewCache(loader Loader, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Cache{
		loader: loader,
		cache:  gocache.New(ttl, 2*ttl),
	}
}

// Load returns the cached rule set for language, loading it on a miss.
func (c *Cache) Load(language string) (*RuleSet, error) {
	key := NormalizeLanguage(language)

	if v, found := c.cache.Get(key); found {
		if rs, ok := v.(*RuleSet); ok {
			log.Debugf("[cache] hit %s", key)
			return rs, nil
		}
	}

	log.Debugf("[cache] miss %s", key)

	rs, err := c.loader.Load(language)
	if err != nil {
		return nil, err
	}

	c.cache.SetDefault(key, rs)

	return rs, nil
}

// Flush drops every cached rule set.
func (c *Cache) Flush() {
	log.Debugf("[cache] flush")
	c.cache.Flush()
}

// Len returns the number of cached rule sets, expired or not.
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}
