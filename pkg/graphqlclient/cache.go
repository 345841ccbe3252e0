package graphqlclient

import (
	"net/http"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/atomic"

	"github.com/wundergraph/graphql-browser/pkg/introspection"
)

const DefaultIntrospectionCacheSize = 16

// IntrospectionCache memoizes introspection results per endpoint and header
// set. One cache is meant to be shared by every client of a process.
type IntrospectionCache struct {
	cache  *lru.Cache
	hits   *atomic.Uint64
	misses *atomic.Uint64
}

type CacheStats struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

func NewIntrospectionCache(size int) (*IntrospectionCache, error) {
	if size <= 0 {
		size = DefaultIntrospectionCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &IntrospectionCache{
		cache:  cache,
		hits:   atomic.NewUint64(0),
		misses: atomic.NewUint64(0),
	}, nil
}

func (c *IntrospectionCache) get(key uint64) (*introspection.Introspection, bool) {
	value, ok := c.cache.Get(key)
	if !ok {
		c.misses.Inc()
		return nil, false
	}
	c.hits.Inc()
	return value.(*introspection.Introspection), true
}

func (c *IntrospectionCache) add(key uint64, schema *introspection.Introspection) {
	c.cache.Add(key, schema)
}

func (c *IntrospectionCache) Purge() {
	c.cache.Purge()
}

func (c *IntrospectionCache) Stats() CacheStats {
	return CacheStats{
		Entries: c.cache.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}

// cacheKey hashes the endpoint together with the sorted headers, since
// headers may select a different schema.
func cacheKey(endpoint string, headers http.Header) uint64 {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	digest := xxhash.New()
	_, _ = digest.WriteString(endpoint)
	for _, key := range keys {
		_, _ = digest.WriteString("\n")
		_, _ = digest.WriteString(key)
		_, _ = digest.WriteString(": ")
		_, _ = digest.WriteString(strings.Join(headers[key], ","))
	}
	return digest.Sum64()
}
