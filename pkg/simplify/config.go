package simplify

// DefaultJoinDepthLimit bounds recursive Simplify/TrySimplify meta-operator
// nesting (spec.md §5): a rule whose replacement itself invokes Simplify on
// a subexpression that again matches a Simplify-wrapping rule could recurse
// without bound; capping depth turns a potential runaway into a no-op at
// the limit instead of a stack overflow.
const DefaultJoinDepthLimit = 20

// Config tunes one State's resource bounds. The zero value is valid — every
// field defaults when a State is constructed with it.
type Config struct {
	CacheCapacity  int
	PruneTarget    int
	JoinDepthLimit int
}

func (c Config) withDefaults() Config {
	if c.CacheCapacity <= 0 {
		c.CacheCapacity = DefaultCacheCapacity
	}
	if c.PruneTarget <= 0 {
		c.PruneTarget = DefaultPruneTarget
	}
	if c.JoinDepthLimit <= 0 {
		c.JoinDepthLimit = DefaultJoinDepthLimit
	}
	return c
}
