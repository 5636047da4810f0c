package subtype

import (
	"testing"

	"github.com/tszsolve/tszsolve/internal/typeset"
)

func TestEmptyObjectTarget_AcceptsAnyNonNullish(t *testing.T) {
	in := typeset.New()
	empty := in.NewObject(nil, typeset.NoTypeID, typeset.NoTypeID, false)

	if !assignable(t, in, typeset.Number, empty, Options{}) {
		t.Errorf("a number should be assignable to an empty object type")
	}
	if !assignable(t, in, typeset.String, empty, Options{}) {
		t.Errorf("a string should be assignable to an empty object type")
	}
}

func TestEmptyObjectTarget_RejectsNullishUnderStrictNullChecks(t *testing.T) {
	in := typeset.New()
	empty := in.NewObject(nil, typeset.NoTypeID, typeset.NoTypeID, false)

	if assignable(t, in, typeset.Null, empty, Options{StrictNullChecks: true}) {
		t.Errorf("null should not be assignable to an empty object type under strict_null_checks")
	}
	if !assignable(t, in, typeset.Null, empty, Options{StrictNullChecks: false}) {
		t.Errorf("null should be assignable to an empty object type when strict_null_checks is off")
	}
}

func TestEmptyObjectTarget_DoesNotShadowWeakTypeCheck(t *testing.T) {
	in := typeset.New()
	name := in.InternString("name")
	weak := in.NewObject([]typeset.PropertyRecord{{Name: name, Read: typeset.String, Write: typeset.String, Optional: true}}, typeset.NoTypeID, typeset.NoTypeID, false)

	if assignable(t, in, typeset.Number, weak, Options{}) {
		t.Errorf("a type with no properties in common should not satisfy a weak (all-optional) object target")
	}
}
