package subtype

import "github.com/tszsolve/tszsolve/internal/typeset"

// dispatchUnionIntersection handles the union/intersection cases: a union
// source is split first (every member must be assignable to the whole
// target), then a union target, an intersection target, and an
// intersection source.
func (c *checker) dispatchUnionIntersection(s, t typeset.TypeID) (ok, handled bool) {
	if members, isUnion := c.in.GetUnionMembers(s); isUnion {
		for _, m := range members {
			if !c.check(m, t) {
				return c.fail(TypeMismatch{Source: m, Target: t}), true
			}
		}
		return true, true
	}
	if members, isUnion := c.in.GetUnionMembers(t); isUnion {
		for _, m := range members {
			if c.check(s, m) {
				return true, true
			}
		}
		return c.fail(TypeMismatch{Source: s, Target: t}), true
	}
	if members, isIntersection := c.in.GetIntersectionMembers(t); isIntersection {
		for _, m := range members {
			if !c.check(s, m) {
				return c.fail(TypeMismatch{Source: s, Target: m}), true
			}
		}
		return true, true
	}
	if members, isIntersection := c.in.GetIntersectionMembers(s); isIntersection {
		for _, m := range members {
			if c.check(m, t) {
				return true, true
			}
		}
		return c.fail(TypeMismatch{Source: s, Target: t}), true
	}
	return false, false
}
