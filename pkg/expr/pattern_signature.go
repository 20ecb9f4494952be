package expr

import "github.com/oisee/symexpr/pkg/op"

// ConstSignature, VarSignature, UnarySignature and BinarySignature expose
// the same signature-composition rules BuildConstant/BuildVariable/
// BuildUnary/BuildBinary use internally, for callers (pkg/rules) that need
// to compute a structural signature over a pattern tree whose leaves may be
// unbound match variables rather than real Expr nodes.
func ConstSignature(raw uint64) Signature { return constSignature(raw) }

func VarSignature() Signature { return varSignature() }

func UnarySignature(o op.Operator, rhs Signature) Signature { return unarySignature(o, rhs) }

func BinarySignature(o op.Operator, lhs, rhs Signature) Signature {
	return binarySignature(o, lhs, rhs)
}
