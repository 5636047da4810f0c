package subtype

import "github.com/tszsolve/tszsolve/internal/typeset"

// emptyObjectTargetRule handles `{}` as a target, which accepts any
// non-null/non-undefined source. It must run before the general object
// rule so a truly-empty target never triggers the weak-type check
// (which requires at least one optional property).
func (c *checker) emptyObjectTargetRule(s, t typeset.TypeID) (ok, handled bool) {
	key, found := c.in.Lookup(t)
	if !found {
		return false, false
	}
	obj, isObj := key.(typeset.ObjectKey)
	if !isObj || len(obj.Props) != 0 || obj.StringIndex != typeset.NoTypeID || obj.NumberIndex != typeset.NoTypeID {
		return false, false
	}
	if s == typeset.Null || s == typeset.Undefined {
		if !c.opts.StrictNullChecks {
			return true, true
		}
		return c.fail(TypeMismatch{Source: s, Target: t}), true
	}
	return true, true
}
