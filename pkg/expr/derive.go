package expr

import "github.com/oisee/symexpr/pkg/op"

// Complexity weights for leaves, per spec.md §3: "a constant = 0, a
// variable = 1, an op = 1 + sum(children) + operator-weight".
const (
	constComplexity = 0.0
	varComplexity   = 1.0
)

func mixHash(seed uint64, values ...uint64) uint64 {
	h := seed
	for _, v := range values {
		// 64-bit boost-style hash_combine step (golden-ratio constant plus
		// shifted copies of the running hash); chosen for speed over a general hasher
		// since every input here is already a fixed-width integer.
		h ^= v + 0x9E3779B97F4A7C15 + (h << 6) + (h >> 2)
	}
	return h
}

func constHash(width uint8, raw uint64) uint64 {
	return mixHash(0xC0A57A17, uint64(width), raw)
}

func varHash(width uint8, ident Identifier) uint64 {
	return mixHash(0x7A61AB1E, uint64(width), ident.Hash())
}

func unaryHash(width uint8, o op.Operator, rhs uint64) uint64 {
	return mixHash(0x0000A61E, uint64(width), uint64(o), rhs)
}

func binaryHash(width uint8, o op.Operator, lhs, rhs uint64) uint64 {
	return mixHash(0xB14A5217, uint64(width), uint64(o), lhs, rhs)
}
