package rules

import (
	"testing"

	"github.com/oisee/symexpr/pkg/expr"
	"github.com/oisee/symexpr/pkg/op"
	"github.com/oisee/symexpr/pkg/translate"
)

func identityCtx() *translate.Context {
	return &translate.Context{Simplify: func(e *expr.Expr) *expr.Expr { return e }}
}

func mustVar(t *testing.T, name string, w uint8) *expr.Expr {
	t.Helper()
	e, err := expr.BuildVariable(expr.StringIdent(name), w)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func mustConst(t *testing.T, v uint64, w uint8) *expr.Expr {
	t.Helper()
	e, err := expr.BuildConstant(v, w)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func findRule(t *testing.T, name string) Rule {
	t.Helper()
	for _, r := range All {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no such rule %q", name)
	return Rule{}
}

// applyOne is a test-only convenience: most of these tests only care
// whether a rule fires at all and what its (single, in these fixtures)
// result looks like, not step 5/6's cross-rule complexity comparison,
// which TestSimplifyPicksLowestComplexityRewrite in pkg/simplify exercises
// directly.
func applyOne(ctx *translate.Context, r Rule, candidate *expr.Expr) (*expr.Expr, bool) {
	results := r.Apply(ctx, candidate)
	if len(results) == 0 {
		return nil, false
	}
	return results[0], true
}

func TestAddZeroRuleFires(t *testing.T) {
	x := mustVar(t, "x", 32)
	zero := mustConst(t, 0, 32)
	e, err := expr.BuildBinary(op.ADD, x, zero)
	if err != nil {
		t.Fatal(err)
	}
	r := findRule(t, "add-zero")
	got, ok := applyOne(identityCtx(), r, e)
	if !ok || !got.Equal(x) {
		t.Fatal("expected ADD(x,0) to rewrite to x")
	}
}

func TestXorSelfRuleFires(t *testing.T) {
	x := mustVar(t, "x", 32)
	e, err := expr.BuildBinary(op.XOR, x, x)
	if err != nil {
		t.Fatal(err)
	}
	r := findRule(t, "xor-self")
	got, ok := applyOne(identityCtx(), r, e)
	if !ok || !got.IsConst() || got.ConstValue != 0 {
		t.Fatal("expected XOR(x,x) to rewrite to 0")
	}
}

func TestNotEqRewritesToNe(t *testing.T) {
	x := mustVar(t, "x", 32)
	y := mustVar(t, "y", 32)
	eq, err := expr.BuildBinary(op.EQ, x, y)
	if err != nil {
		t.Fatal(err)
	}
	notEq, err := expr.BuildUnary(op.NOT, eq)
	if err != nil {
		t.Fatal(err)
	}
	r := findRule(t, "not-eq")
	got, ok := applyOne(identityCtx(), r, notEq)
	if !ok || got.Op != op.NE {
		t.Fatal("expected NOT(EQ(x,y)) to rewrite to NE(x,y)")
	}
}

func TestUcastUcastWidenCollapsesWhenWidening(t *testing.T) {
	x := mustVar(t, "x", 8)
	inner, err := expr.Resize(x, 16, false)
	if err != nil {
		t.Fatal(err)
	}
	outer, err := expr.Resize(inner, 32, false)
	if err != nil {
		t.Fatal(err)
	}
	r := findRule(t, "ucast-ucast-widen")
	got, ok := applyOne(identityCtx(), r, outer)
	if !ok {
		t.Fatal("expected the double-widen cast to collapse")
	}
	if got.Op != op.UCAST || got.Width != 32 {
		t.Fatalf("unexpected collapsed result %+v", got)
	}
}

func TestUcastUcastWidenRejectsNarrowing(t *testing.T) {
	x := mustVar(t, "x", 8)
	inner, err := expr.Resize(x, 32, false)
	if err != nil {
		t.Fatal(err)
	}
	outer, err := expr.Resize(inner, 16, false)
	if err != nil {
		t.Fatal(err)
	}
	r := findRule(t, "ucast-ucast-widen")
	if _, ok := applyOne(identityCtx(), r, outer); ok {
		t.Fatal("the Iff guard must reject w2 < w1")
	}
}

func TestIndexFindsCandidatesByTopLevelOp(t *testing.T) {
	idx := BuildIndex(All)
	x := mustVar(t, "x", 32)
	zero := mustConst(t, 0, 32)
	e, err := expr.BuildBinary(op.ADD, x, zero)
	if err != nil {
		t.Fatal(err)
	}
	cands := idx.Candidates(e)
	found := false
	for _, r := range cands {
		if r.Name == "add-zero" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the index to surface add-zero as a candidate")
	}
}

func TestIndexSkipsWrongOperator(t *testing.T) {
	idx := BuildIndex(All)
	x := mustVar(t, "x", 32)
	y := mustVar(t, "y", 32)
	e, err := expr.BuildBinary(op.MUL, x, y)
	if err != nil {
		t.Fatal(err)
	}
	cands := idx.Candidates(e)
	for _, r := range cands {
		if r.Name == "add-zero" {
			t.Fatal("add-zero must not be a candidate for a MUL node")
		}
	}
}
