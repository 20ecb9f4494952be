package expr

import "github.com/oisee/symexpr/pkg/op"

// Signature is the compressed 192-bit structural fingerprint of spec.md
// §4.2: three 64-bit lanes derived from operator placement and children's
// signatures. It supports an O(1) *subset* test (CanMatch) used to reject
// non-matching rewrite rules before the backtracking matcher runs at all —
// the same role the teacher's pkg/search.Fingerprint/FingerprintMap plays
// for instruction sequences, retargeted from a runtime-behavior fingerprint
// to a purely structural one.
type Signature struct {
	S0, S1, S2 uint64
}

// constSignature encodes a constant's low bits into S0; S1/S2 carry no
// further information for widths <= 64 (spec.md's "up to 24 bytes" allowance
// exceeds our 64-bit value domain, so S1/S2 stay zero for constants here).
func constSignature(raw uint64) Signature {
	return Signature{S0: raw}
}

// varSignature is the zero signature: a variable node requires nothing of
// its signature lanes, mirroring how a MatchVar directive leaf (which binds
// to anything under a constraint) also carries the zero signature — both
// must be trivially satisfied by any candidate lane bits.
func varSignature() Signature {
	return Signature{}
}

func unarySignature(o op.Operator, rhs Signature) Signature {
	return Signature{
		S0: uint64(o) << 56,
		S1: rhs.S0,
		S2: rhs.S1,
	}
}

func binarySignature(o op.Operator, lhs, rhs Signature) Signature {
	return Signature{
		S0: lhs.S0 | (uint64(o) << 48),
		S1: lhs.S1 | (rhs.S0 << 32),
		S2: lhs.S2 | (rhs.S1 >> 32),
	}
}

// CanMatch implements spec.md §4.2's subset test: every bit the pattern
// requires must be present in the candidate. It is necessary, not
// sufficient — false positives are eliminated by the matcher.
func CanMatch(pattern, candidate Signature) bool {
	return candidate.S0&pattern.S0 == pattern.S0 &&
		candidate.S1&pattern.S1 == pattern.S1 &&
		candidate.S2&pattern.S2 == pattern.S2
}
