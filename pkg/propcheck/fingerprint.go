package propcheck

import "github.com/oisee/symexpr/pkg/expr"

// FingerprintSize is the number of bytes per trial (one 64-bit result).
const FingerprintSize = 8

// FingerprintLen is the total fingerprint length.
const FingerprintLen = FingerprintSize * NumTestVectors

// Fingerprint computes a compact hash of e's behavior across the same
// trials QuickCheck uses. Test vectors are assigned by position in e's own
// FreeVars order, so two fingerprints are comparable only when both
// expressions have the same free variables in the same order; under that
// condition, different fingerprints mean the expressions are not equivalent.
func Fingerprint(e *expr.Expr) [FingerprintLen]byte {
	var fp [FingerprintLen]byte
	vars := expr.FreeVars(e)
	for trial := 0; trial < NumTestVectors; trial++ {
		env := assignment(vars, trial)
		out, ok := expr.Evaluate(e, env)
		var raw uint64
		if ok {
			raw = out.Raw
		}
		off := trial * FingerprintSize
		for b := 0; b < FingerprintSize; b++ {
			fp[off+b] = byte(raw >> (8 * b))
		}
	}
	return fp
}
