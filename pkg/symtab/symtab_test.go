package symtab

import (
	"testing"

	"github.com/oisee/symexpr/pkg/directive"
	"github.com/oisee/symexpr/pkg/expr"
)

func mustVar(t *testing.T, name string, w uint8) *expr.Expr {
	t.Helper()
	e, err := expr.BuildVariable(expr.StringIdent(name), w)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestBindThenGetRoundTrips(t *testing.T) {
	var tab Table
	x := mustVar(t, "x", 32)
	tab, ok := tab.Bind(0, x, directive.MatchAny)
	if !ok {
		t.Fatal("bind should succeed")
	}
	got, ok := tab.Get(0)
	if !ok || !got.Equal(x) {
		t.Fatal("expected to retrieve the bound expression")
	}
}

func TestRepeatedBindRequiresSameExpression(t *testing.T) {
	var tab Table
	x := mustVar(t, "x", 32)
	y := mustVar(t, "y", 32)
	tab, ok := tab.Bind(0, x, directive.MatchAny)
	if !ok {
		t.Fatal("first bind should succeed")
	}
	if _, ok := tab.Bind(0, y, directive.MatchAny); ok {
		t.Fatal("rebinding the same slot to a different expression must fail")
	}
	if _, ok := tab.Bind(0, x, directive.MatchAny); !ok {
		t.Fatal("rebinding the same slot to an equal expression must succeed")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var tab Table
	tab, _ = tab.Bind(0, mustVar(t, "x", 32), directive.MatchAny)
	clone := tab.Clone()
	clone, ok := clone.Bind(1, mustVar(t, "y", 32), directive.MatchAny)
	if !ok {
		t.Fatal("bind on clone should succeed")
	}
	if _, ok := tab.Get(1); ok {
		t.Fatal("binding on the clone must not affect the original table")
	}
}

func TestConstraintsRejectWrongShape(t *testing.T) {
	var tab Table
	x := mustVar(t, "x", 32)
	if _, ok := tab.Bind(0, x, directive.MatchConstant); ok {
		t.Fatal("a variable must not satisfy MatchConstant")
	}
	c, err := expr.BuildConstant(5, 32)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tab.Bind(0, c, directive.MatchVariable); ok {
		t.Fatal("a constant must not satisfy MatchVariable")
	}
	if _, ok := tab.Bind(0, c, directive.MatchConstant); !ok {
		t.Fatal("a constant must satisfy MatchConstant")
	}
}
