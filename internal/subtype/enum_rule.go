package subtype

import "github.com/tszsolve/tszsolve/internal/typeset"

// enumRule checks that enums are nominal. A member is assignable only to
// its declaring enum; a numeric literal is assignable to any numeric enum
// (TypeScript's historical weak typing of numeric enums); string enums
// accept neither bare strings nor sibling enums.
func (c *checker) enumRule(s, t typeset.TypeID) (ok, handled bool) {
	tKey, tOk := c.in.Lookup(t)
	if !tOk {
		return false, false
	}
	sKey, sOk := c.in.Lookup(s)
	if !sOk {
		return false, false
	}

	if tEnum, isEnum := tKey.(typeset.EnumKey); isEnum {
		switch sv := sKey.(type) {
		case typeset.EnumMemberKey:
			return sv.Owner == tEnum.Symbol, true
		case typeset.LiteralKey:
			if !tEnum.IsString && sv.Tag == typeset.LiteralNumberTag {
				return true, true
			}
			return c.fail(TypeMismatch{Source: s, Target: t}), true
		default:
			return c.fail(TypeMismatch{Source: s, Target: t}), true
		}
	}

	switch sKey.(type) {
	case typeset.EnumMemberKey, typeset.EnumKey:
		return c.fail(TypeMismatch{Source: s, Target: t}), true
	default:
		return false, false
	}
}
