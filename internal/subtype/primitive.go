package subtype

import "github.com/tszsolve/tszsolve/internal/typeset"

// primitiveRule checks the intrinsic lattice, literal-to-base widening,
// strict_null_checks gating, and the `object` intrinsic's
// non-primitive-only membership.
func (c *checker) primitiveRule(s, t typeset.TypeID) (ok, handled bool) {
	if !c.opts.StrictNullChecks && (s == typeset.Null || s == typeset.Undefined) && t != typeset.Never {
		return true, true
	}

	if t == typeset.Object {
		return c.isNonPrimitiveKind(s), true
	}

	sKey, sOk := c.in.Lookup(s)
	tKey, tOk := c.in.Lookup(t)
	if !sOk || !tOk {
		return false, false
	}
	_, sIsLiteral := sKey.(typeset.LiteralKey)
	_, tIsLiteral := tKey.(typeset.LiteralKey)
	sIsIntrinsic, tIsIntrinsic := isIntrinsicKey(sKey), isIntrinsicKey(tKey)

	if !sIsLiteral && !sIsIntrinsic {
		return false, false // not this rule's concern; let structural rules decide
	}
	if !tIsLiteral && !tIsIntrinsic {
		return false, false
	}

	if sIsLiteral {
		if base, ok := c.in.LiteralBaseType(s); ok && base == t {
			return true, true // literal assignable to its base
		}
	}
	if sIsIntrinsic && tIsLiteral {
		return c.fail(TypeMismatch{Source: s, Target: t}), true // base not assignable to a literal
	}
	// two different intrinsics, or a literal against an unrelated base/literal
	return c.fail(TypeMismatch{Source: s, Target: t}), true
}

func isIntrinsicKey(k typeset.TypeKey) bool {
	_, ok := k.(typeset.IntrinsicKey)
	return ok
}

// isNonPrimitiveKind reports whether id belongs to one of the structural
// (non-primitive) kinds that satisfy the `object` intrinsic as a target.
func (c *checker) isNonPrimitiveKind(id typeset.TypeID) bool {
	key, ok := c.in.Lookup(id)
	if !ok {
		return false
	}
	switch key.(type) {
	case typeset.ObjectKey, typeset.CallableKey, typeset.TupleKey:
		return true
	default:
		return false
	}
}
