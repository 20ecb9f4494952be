package expr

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/oisee/symexpr/pkg/op"
)

// wireNode is the on-disk shape cmd/symexpr reads and writes: a plain JSON
// tree mirroring Expr's shape, carrying only the fields a caller supplies —
// derived fields (Depth, Complexity, Signature, Hash, ...) are always
// recomputed through the Build* constructors on the way back in, never
// trusted from the file.
type wireNode struct {
	Kind  string    `json:"kind"`
	Op    string    `json:"op,omitempty"`
	Value uint64    `json:"value,omitempty"`
	Ident string    `json:"ident,omitempty"`
	Width uint8     `json:"width"`
	LHS   *wireNode `json:"lhs,omitempty"`
	RHS   *wireNode `json:"rhs,omitempty"`
}

// MarshalJSON renders e as indented JSON in the wire format ParseJSON
// accepts back.
func MarshalJSON(e *Expr) ([]byte, error) {
	return json.MarshalIndent(toWire(e), "", "  ")
}

// ParseJSON parses a single expression from the wire format produced by
// MarshalJSON, reconstructing every derived field via the ordinary Build*
// constructors.
func ParseJSON(data []byte) (*Expr, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("expr: invalid JSON: %w", err)
	}
	return fromWire(&w)
}

func toWire(e *Expr) *wireNode {
	w := &wireNode{Width: e.Width}
	switch e.Kind {
	case KindConst:
		w.Kind = "const"
		w.Value = e.ConstValue
	case KindVar:
		w.Kind = "var"
		w.Ident = identString(e.Ident)
	case KindUnary:
		w.Kind = "unary"
		w.Op = e.Op.Name()
		w.RHS = toWire(e.RHS)
	case KindBinary:
		w.Kind = "binary"
		w.Op = e.Op.Name()
		w.LHS = toWire(e.LHS)
		w.RHS = toWire(e.RHS)
	}
	return w
}

func identString(id Identifier) string {
	if ii, ok := id.(IntIdent); ok {
		return ii.String()
	}
	return id.String()
}

func parseIdent(s string) Identifier {
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		if v, err := strconv.ParseUint(rest, 16, 64); err == nil {
			return IntIdent(v)
		}
	}
	return StringIdent(s)
}

func fromWire(w *wireNode) (*Expr, error) {
	switch w.Kind {
	case "const":
		return BuildConstant(w.Value, w.Width)
	case "var":
		if w.Ident == "" {
			return nil, fmt.Errorf("expr: var node missing ident")
		}
		return BuildVariable(parseIdent(w.Ident), w.Width)
	case "unary":
		o, ok := op.Parse(w.Op)
		if !ok {
			return nil, fmt.Errorf("expr: unknown operator %q", w.Op)
		}
		if w.RHS == nil {
			return nil, fmt.Errorf("expr: unary node missing operand")
		}
		operand, err := fromWire(w.RHS)
		if err != nil {
			return nil, err
		}
		return BuildUnary(o, operand)
	case "binary":
		o, ok := op.Parse(w.Op)
		if !ok {
			return nil, fmt.Errorf("expr: unknown operator %q", w.Op)
		}
		if w.LHS == nil || w.RHS == nil {
			return nil, fmt.Errorf("expr: binary node missing an operand")
		}
		lhs, err := fromWire(w.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := fromWire(w.RHS)
		if err != nil {
			return nil, err
		}
		return BuildBinary(o, lhs, rhs)
	default:
		return nil, fmt.Errorf("expr: unknown node kind %q", w.Kind)
	}
}
