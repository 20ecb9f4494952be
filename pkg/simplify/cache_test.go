package simplify

import (
	"testing"

	"github.com/oisee/symexpr/pkg/expr"
)

func buildConst(t *testing.T, v uint64) *expr.Expr {
	t.Helper()
	e, err := expr.BuildConstant(v, 32)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestCacheGetMissThenHit(t *testing.T) {
	c := newCache(0, 0)
	key := buildConst(t, 1)
	if _, ok := c.get(key); ok {
		t.Fatal("expected a miss on an empty cache")
	}
	val := buildConst(t, 2)
	c.put(key, val)
	got, ok := c.get(key)
	if !ok || !got.Equal(val) {
		t.Fatal("expected a hit after put")
	}
}

func TestCachePrunesDownToTarget(t *testing.T) {
	c := newCache(8, 4)
	for i := uint64(0); i < 8; i++ {
		c.put(buildConst(t, i), buildConst(t, i))
	}
	if c.len() != 8 {
		t.Fatalf("expected 8 entries before overflow, got %d", c.len())
	}
	// the 9th insert overflows capacity 8 and triggers a prune to 4.
	c.put(buildConst(t, 100), buildConst(t, 100))
	if c.len() != 4 {
		t.Fatalf("expected prune to leave pruneTo = 4 entries (the newest included), got %d", c.len())
	}
	// the most recently inserted entries must survive the prune.
	if _, ok := c.get(buildConst(t, 100)); !ok {
		t.Fatal("the newest entry must survive a prune")
	}
	if _, ok := c.get(buildConst(t, 0)); ok {
		t.Fatal("the oldest entry must be dropped by a prune")
	}
}

func TestCacheDuplicatePutIsNoop(t *testing.T) {
	c := newCache(0, 0)
	key := buildConst(t, 1)
	c.put(key, buildConst(t, 2))
	c.put(key, buildConst(t, 3))
	if c.len() != 1 {
		t.Fatalf("expected duplicate put to be a no-op, got len %d", c.len())
	}
	got, _ := c.get(key)
	if got.ConstValue != 2 {
		t.Fatal("expected the first put's value to win")
	}
}
