package typeset

import "testing"

func TestLiteral_StructuralDedup(t *testing.T) {
	in := New()
	a := in.NewStringLiteral("hello")
	b := in.NewStringLiteral("hello")
	if a != b {
		t.Fatalf("equal string literals interned to different ids: %v != %v", a, b)
	}
	if c := in.NewStringLiteral("world"); c == a {
		t.Fatalf("distinct string literals interned to the same id")
	}
}

func TestLiteral_BaseType(t *testing.T) {
	in := New()
	cases := []struct {
		id   TypeID
		want TypeID
	}{
		{in.NewStringLiteral("hi"), String},
		{in.NewNumberLiteral("42"), Number},
		{in.NewBooleanLiteral(true), Boolean},
		{in.NewBigIntLiteral("9"), BigInt},
	}
	for _, c := range cases {
		got, ok := in.LiteralBaseType(c.id)
		if !ok || got != c.want {
			t.Errorf("LiteralBaseType(%v) = (%v, %v), want (%v, true)", c.id, got, ok, c.want)
		}
	}
}

func TestLiteral_BooleanHasTwoDistinctValues(t *testing.T) {
	in := New()
	tru := in.NewBooleanLiteral(true)
	fls := in.NewBooleanLiteral(false)
	if tru == fls {
		t.Fatalf("true and false literals must be distinct")
	}
}
