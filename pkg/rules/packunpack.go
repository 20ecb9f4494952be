package rules

import "github.com/oisee/symexpr/pkg/op"

// PackUnpack holds cast/resize collapsing rules (spec.md §4.5's
// "packunpack" family, named for the pack/unpack width-conversion
// operators). Chaining two same-direction widenings collapses to one
// widening at the final width, but only when the final width is no
// narrower than the intermediate one — otherwise the intermediate cast
// would have discarded bits the collapsed form wouldn't. That side
// condition is encoded with an Iff guard rather than assumed, since
// dropping it would make the rule unsound for w2 < w1.
var PackUnpack = []Rule{
	New("ucast-ucast-widen",
		bin(op.UCAST,
			bin(op.UCAST, mvar("a", 0), mconst("w1", 1)),
			mconst("w2", 2)),
		iffD(
			bin(op.UGE, mvar("w2", 2), mvar("w1", 1)),
			bin(op.UCAST, mvar("a", 0), mvar("w2", 2)),
		)),
	New("cast-cast-widen",
		bin(op.CAST,
			bin(op.CAST, mvar("a", 0), mconst("w1", 1)),
			mconst("w2", 2)),
		iffD(
			bin(op.UGE, mvar("w2", 2), mvar("w1", 1)),
			bin(op.CAST, mvar("a", 0), mvar("w2", 2)),
		)),
}
