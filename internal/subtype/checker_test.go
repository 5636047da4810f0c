package subtype

import (
	"testing"

	"github.com/tszsolve/tszsolve/internal/typeset"
)

func assignable(t *testing.T, in *typeset.Interner, s, t2 typeset.TypeID, opts Options) bool {
	t.Helper()
	return IsAssignable(in, nil, s, t2, opts)
}

func TestReflexivity(t *testing.T) {
	in := typeset.New()
	for _, id := range []typeset.TypeID{typeset.String, typeset.Number, typeset.Boolean, typeset.Any, typeset.Unknown, typeset.Never} {
		if !assignable(t, in, id, id, Options{}) {
			t.Errorf("%v is not assignable to itself", id)
		}
	}
}

func TestAnyAndUnknown(t *testing.T) {
	in := typeset.New()
	if !assignable(t, in, typeset.String, typeset.Any, Options{}) {
		t.Errorf("String should be assignable to Any")
	}
	if !assignable(t, in, typeset.Any, typeset.String, Options{}) {
		t.Errorf("Any should be assignable to anything")
	}
	if !assignable(t, in, typeset.String, typeset.Unknown, Options{}) {
		t.Errorf("String should be assignable to Unknown")
	}
	if assignable(t, in, typeset.Unknown, typeset.String, Options{}) {
		t.Errorf("Unknown should not be assignable to String")
	}
}

func TestNeverAssignableToAnything(t *testing.T) {
	in := typeset.New()
	if !assignable(t, in, typeset.Never, typeset.String, Options{}) {
		t.Errorf("Never should be assignable to anything")
	}
}

func TestLiteralToBase(t *testing.T) {
	in := typeset.New()
	lit := in.NewStringLiteral("hello")
	if !assignable(t, in, lit, typeset.String, Options{}) {
		t.Errorf("string literal should be assignable to string")
	}
	if assignable(t, in, typeset.String, lit, Options{}) {
		t.Errorf("string should not be assignable to a narrower literal")
	}
}

func TestUnionIntroductionAndElimination(t *testing.T) {
	in := typeset.New()
	u := in.NewUnion([]typeset.TypeID{typeset.String, typeset.Number})

	if !assignable(t, in, typeset.String, u, Options{}) {
		t.Errorf("introduction: String should be assignable to (String | Number)")
	}
	if !assignable(t, in, u, u, Options{}) {
		t.Errorf("elimination: a union is assignable to itself")
	}
	if assignable(t, in, u, typeset.String, Options{}) {
		t.Errorf("elimination: (String | Number) should not be assignable to String alone")
	}
}

func TestStrictNullChecksGating(t *testing.T) {
	in := typeset.New()
	if assignable(t, in, typeset.Null, typeset.String, Options{StrictNullChecks: true}) {
		t.Errorf("null should not be assignable to string under strict_null_checks")
	}
	if !assignable(t, in, typeset.Null, typeset.String, Options{StrictNullChecks: false}) {
		t.Errorf("null should widen into string when strict_null_checks is off")
	}
}

func TestObjectStructuralSubtyping(t *testing.T) {
	in := typeset.New()
	x, y := in.InternString("x"), in.InternString("y")
	wide := in.NewObjectLiteral([]typeset.PropertyRecord{
		{Name: x, Read: typeset.Number, Write: typeset.Number},
	})
	narrow := in.NewObjectLiteral([]typeset.PropertyRecord{
		{Name: x, Read: typeset.Number, Write: typeset.Number},
		{Name: y, Read: typeset.Number, Write: typeset.Number},
	})
	if !assignable(t, in, narrow, wide, Options{}) {
		t.Errorf("an object with extra properties should satisfy the narrower target")
	}
	if assignable(t, in, wide, narrow, Options{}) {
		t.Errorf("a widened object should not satisfy a target requiring more properties")
	}
}

func TestWeakTypeRejection(t *testing.T) {
	in := typeset.New()
	a, b := in.InternString("a"), in.InternString("b")
	weakTarget := in.NewObjectLiteral([]typeset.PropertyRecord{
		{Name: a, Read: typeset.String, Write: typeset.String, Optional: true},
		{Name: b, Read: typeset.String, Write: typeset.String, Optional: true},
	})
	c := in.InternString("c")
	unrelated := in.NewObjectLiteral([]typeset.PropertyRecord{
		{Name: c, Read: typeset.String, Write: typeset.String},
	})
	if assignable(t, in, unrelated, weakTarget, Options{}) {
		t.Errorf("an object sharing no property name with a weak target should be rejected")
	}

	shared := in.NewObjectLiteral([]typeset.PropertyRecord{
		{Name: a, Read: typeset.String, Write: typeset.String},
	})
	if !assignable(t, in, shared, weakTarget, Options{}) {
		t.Errorf("an object sharing one property name with a weak target should be accepted")
	}
}

func TestFreshObjectExcessPropertyCheck(t *testing.T) {
	in := typeset.New()
	x := in.InternString("x")
	target := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: x, Read: typeset.Number, Write: typeset.Number}})

	y := in.InternString("y")
	fresh := in.NewFreshObjectLiteral([]typeset.PropertyRecord{
		{Name: x, Read: typeset.Number, Write: typeset.Number},
		{Name: y, Read: typeset.Number, Write: typeset.Number},
	})
	if assignable(t, in, fresh, target, Options{}) {
		t.Errorf("a fresh object literal with an excess property should be rejected")
	}

	widened := in.Widen(fresh)
	if !assignable(t, in, widened, target, Options{}) {
		t.Errorf("a widened object with an extra property should be accepted structurally")
	}
}

func TestNominalBrandMismatch(t *testing.T) {
	in := typeset.New()
	name := in.InternString("secret")
	a := in.NewObjectLiteral([]typeset.PropertyRecord{
		{Name: name, Read: typeset.String, Write: typeset.String, Parent: typeset.SymbolRef(1)},
	})
	b := in.NewObjectLiteral([]typeset.PropertyRecord{
		{Name: name, Read: typeset.String, Write: typeset.String, Parent: typeset.SymbolRef(2)},
	})
	if assignable(t, in, a, b, Options{}) {
		t.Errorf("two private properties with different brands should not be assignable")
	}

	reason, ok := ExplainFailure(in, nil, a, b, Options{})
	if !ok {
		t.Fatalf("ExplainFailure: expected a reason")
	}
	if _, isBrand := reason.(NominalBrandMismatch); !isBrand {
		t.Errorf("ExplainFailure reason = %T, want NominalBrandMismatch", reason)
	}
}

func TestExplainFailure_NoReasonWhenAssignable(t *testing.T) {
	in := typeset.New()
	if _, ok := ExplainFailure(in, nil, typeset.String, typeset.String, Options{}); ok {
		t.Errorf("ExplainFailure should report nothing when the types are assignable")
	}
}
