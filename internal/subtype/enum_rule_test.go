package subtype

import (
	"testing"

	"github.com/tszsolve/tszsolve/internal/typeset"
)

func TestEnum_MemberAssignableOnlyToDeclaringEnum(t *testing.T) {
	in := typeset.New()
	colorSym := typeset.SymbolRef(1)
	shapeSym := typeset.SymbolRef(2)

	red := in.NewEnumMember(colorSym, in.InternString("Red"), typeset.EnumMemberValue{})
	circle := in.NewEnumMember(shapeSym, in.InternString("Circle"), typeset.EnumMemberValue{})
	colorEnum := in.NewEnum(colorSym, false, []typeset.TypeID{red})

	if !assignable(t, in, red, colorEnum, Options{}) {
		t.Errorf("an enum member should be assignable to its own declaring enum")
	}
	if assignable(t, in, circle, colorEnum, Options{}) {
		t.Errorf("a member of a sibling enum should not be assignable to an unrelated enum")
	}
}

func TestEnum_NumericLiteralAssignableToNumericEnumOnly(t *testing.T) {
	in := typeset.New()
	numSym := typeset.SymbolRef(1)
	strSym := typeset.SymbolRef(2)

	numEnum := in.NewEnum(numSym, false, nil)
	strEnum := in.NewEnum(strSym, true, nil)
	numLit := in.NewNumberLiteral("1")
	strLit := in.NewStringLiteral("Red")

	if !assignable(t, in, numLit, numEnum, Options{}) {
		t.Errorf("a numeric literal should be assignable to a numeric enum")
	}
	if assignable(t, in, strLit, strEnum, Options{}) {
		t.Errorf("a bare string literal should not be assignable to a string enum")
	}
}

func TestEnum_SourceEnumNotAssignableToPlainPrimitive(t *testing.T) {
	in := typeset.New()
	sym := typeset.SymbolRef(1)
	member := in.NewEnumMember(sym, in.InternString("Red"), typeset.EnumMemberValue{})
	enum := in.NewEnum(sym, false, []typeset.TypeID{member})

	if assignable(t, in, enum, typeset.Number, Options{}) {
		t.Errorf("an enum should not be assignable to a plain numeric intrinsic")
	}
	if assignable(t, in, member, typeset.Number, Options{}) {
		t.Errorf("an enum member should not be assignable to a plain numeric intrinsic")
	}
}
