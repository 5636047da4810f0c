package subtype

import "github.com/tszsolve/tszsolve/internal/typeset"

// tupleRule checks positional, element-wise covariance between tuples,
// handling rest and optional elements the way TypeScript tuple
// assignability does.
func (c *checker) tupleRule(s, t typeset.TypeID) (ok, handled bool) {
	tKey, found := c.in.Lookup(t)
	if !found {
		return false, false
	}
	tTup, isTup := tKey.(typeset.TupleKey)
	if !isTup {
		return false, false
	}

	sKey, sFound := c.in.Lookup(s)
	if !sFound {
		return c.fail(TypeMismatch{Source: s, Target: t}), true
	}
	sTup, sIsTup := sKey.(typeset.TupleKey)
	if !sIsTup {
		return c.fail(TypeMismatch{Source: s, Target: t}), true
	}

	si, ti := 0, 0
	for ti < len(tTup.Elems) {
		te := tTup.Elems[ti]
		if te.Rest {
			for ; si < len(sTup.Elems); si++ {
				if !c.check(sTup.Elems[si].Type, te.Type) {
					return c.fail(TypeMismatch{Source: sTup.Elems[si].Type, Target: te.Type}), true
				}
			}
			ti++
			continue
		}
		if si >= len(sTup.Elems) {
			if te.Optional {
				ti++
				continue
			}
			return c.fail(TypeMismatch{Source: s, Target: t}), true
		}
		se := sTup.Elems[si]
		if se.Rest {
			if !c.check(se.Type, te.Type) {
				return c.fail(TypeMismatch{Source: se.Type, Target: te.Type}), true
			}
			si++
			continue
		}
		if !c.check(se.Type, te.Type) {
			return c.fail(TypeMismatch{Source: se.Type, Target: te.Type}), true
		}
		si++
		ti++
	}
	if si < len(sTup.Elems) {
		return c.fail(TypeMismatch{Source: s, Target: t}), true
	}
	return true, true
}
