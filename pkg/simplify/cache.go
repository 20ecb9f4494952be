package simplify

import "github.com/oisee/symexpr/pkg/expr"

// DefaultCacheCapacity and DefaultPruneTarget bound a State's memo cache
// (spec.md §5): once an insertion takes it past capacity, the oldest entries
// are discarded down to pruneTarget rather than evicted one at a time,
// amortizing the prune cost the way a generational GC amortizes collection.
const (
	DefaultCacheCapacity = 65536
	DefaultPruneTarget   = 42000
)

type cacheEntry struct {
	key *expr.Expr
	val *expr.Expr
}

// cache memoizes Simplify results keyed by structural equality (not pointer
// identity) of the input expression, bucketed by Hash to keep lookup near
// O(1) despite Expr not being a valid Go map key on its own.
type cache struct {
	capacity int
	pruneTo  int
	buckets  map[uint64][]cacheEntry
	order    []*expr.Expr
}

func newCache(capacity, pruneTo int) *cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	if pruneTo <= 0 || pruneTo >= capacity {
		pruneTo = DefaultPruneTarget
		if pruneTo >= capacity {
			pruneTo = capacity * DefaultPruneTarget / DefaultCacheCapacity
		}
	}
	return &cache{capacity: capacity, pruneTo: pruneTo, buckets: map[uint64][]cacheEntry{}}
}

func (c *cache) get(key *expr.Expr) (*expr.Expr, bool) {
	for _, e := range c.buckets[key.Hash] {
		if e.key.Equal(key) {
			return e.val, true
		}
	}
	return nil, false
}

func (c *cache) put(key, val *expr.Expr) {
	if _, ok := c.get(key); ok {
		return
	}
	c.buckets[key.Hash] = append(c.buckets[key.Hash], cacheEntry{key: key, val: val})
	c.order = append(c.order, key)
	if len(c.order) > c.capacity {
		c.prune()
	}
}

func (c *cache) prune() {
	drop := len(c.order) - c.pruneTo
	if drop <= 0 {
		return
	}
	for _, k := range c.order[:drop] {
		bucket := c.buckets[k.Hash]
		for i, e := range bucket {
			if e.key == k {
				bucket = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(bucket) == 0 {
			delete(c.buckets, k.Hash)
		} else {
			c.buckets[k.Hash] = bucket
		}
	}
	c.order = c.order[drop:]
}

func (c *cache) len() int { return len(c.order) }
