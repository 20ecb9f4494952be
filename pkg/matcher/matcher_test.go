package matcher

import (
	"testing"

	"github.com/oisee/symexpr/pkg/directive"
	"github.com/oisee/symexpr/pkg/expr"
	"github.com/oisee/symexpr/pkg/op"
	"github.com/oisee/symexpr/pkg/symtab"
)

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

func TestMatchVarBindsAndGet(t *testing.T) {
	x := mustVar(t, "x", 32)
	pat := directive.MatchVar("a", 0, directive.MatchAny)
	tables := Match(pat, x, symtab.Table{})
	if len(tables) != 1 {
		t.Fatalf("expected exactly one table, got %d", len(tables))
	}
	bound, ok := tables[0].Get(0)
	if !ok || !bound.Equal(x) {
		t.Fatal("expected slot 0 bound to x")
	}
}

func TestMatchConstRequiresExactValue(t *testing.T) {
	five := mustConst(t, 5, 32)
	pat := directive.Const(5, 32)
	if tables := Match(pat, five, symtab.Table{}); len(tables) != 1 {
		t.Fatal("expected a match on equal constant")
	}
	patOther := directive.Const(6, 32)
	if tables := Match(patOther, five, symtab.Table{}); len(tables) != 0 {
		t.Fatal("expected no match on differing constant")
	}
}

func TestMatchBinaryNonCommutativeRequiresOrder(t *testing.T) {
	x := mustVar(t, "x", 32)
	c := mustConst(t, 1, 32)
	sub, err := expr.BuildBinary(op.SUB, x, c)
	if err != nil {
		t.Fatal(err)
	}
	// pattern: SUB(a, 1) should match, SUB(1, a) should not.
	pat := directive.Binary(op.SUB, directive.MatchVar("a", 0, directive.MatchAny), directive.Const(1, 32))
	if tables := Match(pat, sub, symtab.Table{}); len(tables) != 1 {
		t.Fatal("expected SUB(a,1) to match SUB(x,1)")
	}
	patSwapped := directive.Binary(op.SUB, directive.Const(1, 32), directive.MatchVar("a", 0, directive.MatchAny))
	if tables := Match(patSwapped, sub, symtab.Table{}); len(tables) != 0 {
		t.Fatal("SUB is not commutative, swapped pattern must not match")
	}
}

func TestMatchBinaryCommutativeTriesBothOrders(t *testing.T) {
	x := mustVar(t, "x", 32)
	c := mustConst(t, 7, 32)
	add, err := expr.BuildBinary(op.ADD, x, c)
	if err != nil {
		t.Fatal(err)
	}
	// pattern ADD(7, a) should still match ADD(x, 7) since ADD commutes.
	pat := directive.Binary(op.ADD, directive.Const(7, 32), directive.MatchVar("a", 0, directive.MatchAny))
	tables := Match(pat, add, symtab.Table{})
	if len(tables) == 0 {
		t.Fatal("expected commutative match to succeed")
	}
	bound, ok := tables[0].Get(0)
	if !ok || !bound.Equal(x) {
		t.Fatal("expected slot 0 bound to x via the swapped branch")
	}
}

func TestMatchFailsOnOperatorMismatch(t *testing.T) {
	x := mustVar(t, "x", 32)
	c := mustConst(t, 1, 32)
	add, err := expr.BuildBinary(op.ADD, x, c)
	if err != nil {
		t.Fatal(err)
	}
	pat := directive.Binary(op.SUB, directive.MatchVar("a", 0, directive.MatchAny), directive.Const(1, 32))
	if tables := Match(pat, add, symtab.Table{}); len(tables) != 0 {
		t.Fatal("expected no match across differing operators")
	}
}

func TestRepeatedMatchVarRequiresEqualBinding(t *testing.T) {
	x := mustVar(t, "x", 32)
	addXX, err := expr.BuildBinary(op.ADD, x, x)
	if err != nil {
		t.Fatal(err)
	}
	pat := directive.Binary(op.ADD,
		directive.MatchVar("a", 0, directive.MatchAny),
		directive.MatchVar("a", 0, directive.MatchAny))
	if tables := Match(pat, addXX, symtab.Table{}); len(tables) == 0 {
		t.Fatal("expected ADD(a,a) to match ADD(x,x)")
	}

	y := mustVar(t, "y", 32)
	addXY, err := expr.BuildBinary(op.ADD, x, y)
	if err != nil {
		t.Fatal(err)
	}
	if tables := Match(pat, addXY, symtab.Table{}); len(tables) != 0 {
		t.Fatal("ADD(a,a) must not match ADD(x,y) where x != y")
	}
}
