// Package propcheck checks semantic equivalence between two expressions
// over their shared free variables: a cheap QuickCheck spot check against
// fixed test vectors, and a complete ExhaustiveCheck brute-force sweep when
// the combined variable width is small enough to enumerate.
//
// Grounded on the teacher's pkg/search/verifier.go: QuickCheck here plays
// the same role as the teacher's QuickCheck (a fixed battery of inputs that
// rejects the overwhelming majority of non-equivalent candidates cheaply),
// and Fingerprint mirrors the teacher's Fingerprint (a compact per-input
// behavior hash used to dedup candidates before expensive verification).
package propcheck

// NumTestVectors is the number of fixed test vectors.
const NumTestVectors = 8

// TestVectors are fixed 64-bit patterns assigned (after masking to each
// variable's actual width) to an expression's free variables during
// QuickCheck. Chosen the way the teacher's register test vectors are: all
// zero, all one, a single bit set at each end, and alternating-bit
// patterns, which between them tend to expose arithmetic and bitwise bugs
// cheaply.
var TestVectors = [NumTestVectors]uint64{
	0x0000000000000000,
	0xFFFFFFFFFFFFFFFF,
	0x0000000000000001,
	0x8000000000000000,
	0x5555555555555555,
	0xAAAAAAAAAAAAAAAA,
	0x0F0F0F0F0F0F0F0F,
	0x123456789ABCDEF0,
}
