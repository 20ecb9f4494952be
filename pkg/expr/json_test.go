package expr

import (
	"testing"

	"github.com/oisee/symexpr/pkg/op"
)

func TestJSONRoundTripsBinaryExpression(t *testing.T) {
	x, err := BuildVariable(StringIdent("x"), 8)
	if err != nil {
		t.Fatal(err)
	}
	c, err := BuildConstant(5, 8)
	if err != nil {
		t.Fatal(err)
	}
	want, err := BuildBinary(op.ADD, x, c)
	if err != nil {
		t.Fatal(err)
	}

	data, err := MarshalJSON(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Fatalf("round trip changed the expression: got %+v, want %+v", got, want)
	}
}

func TestParseJSONRejectsUnknownOperator(t *testing.T) {
	_, err := ParseJSON([]byte(`{"kind":"unary","op":"NOPE","width":8,"rhs":{"kind":"var","ident":"x","width":8}}`))
	if err == nil {
		t.Fatal("expected an error for an unknown operator name")
	}
}

func TestParseJSONRoundTripsIntIdent(t *testing.T) {
	v, err := BuildVariable(IntIdent(42), 16)
	if err != nil {
		t.Fatal(err)
	}
	data, err := MarshalJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(v) {
		t.Fatal("int-backed identifier did not round trip")
	}
}
