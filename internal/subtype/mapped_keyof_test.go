package subtype

import (
	"testing"

	"github.com/tszsolve/tszsolve/internal/typeset"
)

func TestKeyOf_SourceAndTargetPositions(t *testing.T) {
	in := typeset.New()
	x, y := in.InternString("x"), in.InternString("y")
	point := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: x, Read: typeset.Number, Write: typeset.Number}, {Name: y, Read: typeset.Number, Write: typeset.Number}})
	keys := in.NewKeyOf(point)
	xLit := in.NewStringLiteral("x")

	if !assignable(t, in, xLit, keys, Options{}) {
		t.Errorf("the literal name of a declared property should be assignable to keyof its owner")
	}
	if assignable(t, in, in.NewStringLiteral("z"), keys, Options{}) {
		t.Errorf("a literal naming an undeclared property should not be assignable to keyof its owner")
	}
}

func TestMapped_TargetRequiresEveryDomainKey(t *testing.T) {
	in := typeset.New()
	x, y := in.InternString("x"), in.InternString("y")

	domain := in.NewUnion([]typeset.TypeID{in.NewStringLiteral("x"), in.NewStringLiteral("y")})
	tp := in.NewTypeParameter(in.InternString("K"), typeset.Unknown, typeset.NoTypeID)
	mapped := in.NewMapped(tp, domain, typeset.NoTypeID, typeset.Number, typeset.ModifierUnchanged, typeset.ModifierUnchanged)

	full := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: x, Read: typeset.Number, Write: typeset.Number}, {Name: y, Read: typeset.Number, Write: typeset.Number}})
	missingY := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: x, Read: typeset.Number, Write: typeset.Number}})

	if !assignable(t, in, full, mapped, Options{}) {
		t.Errorf("an object with every mapped key present at the right type should satisfy the mapped target")
	}
	if assignable(t, in, missingY, mapped, Options{}) {
		t.Errorf("an object missing one of the mapped domain's keys should not satisfy the mapped target")
	}
}
