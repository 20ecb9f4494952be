package directive

import "strconv"

// String renders d as a compact s-expression-like form, for diagnostics and
// the rule-catalog listing — never parsed back, display only.
func (d *Directive) String() string {
	if d == nil {
		return "<nil>"
	}
	switch d.Kind {
	case KindConst:
		if d.ConstWidth == 0 {
			return strconv.FormatUint(d.ConstValue, 10)
		}
		return strconv.FormatUint(d.ConstValue, 10) + ":" + strconv.Itoa(int(d.ConstWidth))
	case KindMatchVar:
		return "$" + d.Name + "<" + d.Constraint.String() + ">"
	case KindNullaryMeta:
		return d.Meta.String() + "()"
	case KindUnary:
		if d.IsMeta {
			return d.Meta.String() + "(" + d.RHS.String() + ")"
		}
		return d.Op.Name() + "(" + d.RHS.String() + ")"
	case KindBinary:
		if d.IsMeta {
			return d.Meta.String() + "(" + d.LHS.String() + ", " + d.RHS.String() + ")"
		}
		return d.Op.Name() + "(" + d.LHS.String() + ", " + d.RHS.String() + ")"
	}
	return "?"
}
