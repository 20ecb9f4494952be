package expr

import "github.com/oisee/symexpr/pkg/op"

// Resize produces an equal-value expression at newWidth, per spec.md §6.
// It wraps e in a CAST (sign_extend=true) or UCAST (sign_extend=false)
// binary node whose RHS is the target-width constant.
func Resize(e *Expr, newWidth uint8, signExtend bool) (*Expr, error) {
	widthConst, err := BuildConstant(uint64(newWidth), 8)
	if err != nil {
		return nil, err
	}
	o := op.UCAST
	if signExtend {
		o = op.CAST
	}
	return BuildBinary(o, e, widthConst)
}

// BuildIf is the public constructor for a ternary IF expression: cond must
// be width 1, then/else must share a width (the result's width).
func BuildIf(cond, then, els *Expr) (*Expr, error) {
	pair, err := BuildBinary(op.PAIR, then, els)
	if err != nil {
		return nil, err
	}
	return BuildBinary(op.IF, cond, pair)
}
