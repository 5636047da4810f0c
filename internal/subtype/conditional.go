package subtype

import (
	"github.com/tszsolve/tszsolve/internal/instantiate"
	"github.com/tszsolve/tszsolve/internal/typeset"
)

// dispatchConditional handles the target-is-conditional case. Determinate
// conditionals (non-distributive) reduce to one branch by running an
// independent, non-recording sub-query so that a failed check/extends
// probe never contaminates the caller's ExplainFailure tap. A
// distributive conditional whose check-type is still a naked type
// parameter cannot be reduced without a concrete substitution (that is
// instantiate's job); here it is conservatively treated as the union of
// its two branches.
func (c *checker) dispatchConditional(s, t typeset.TypeID) (ok, handled bool) {
	if ck, isCond := c.conditionalKey(t); isCond {
		branch := c.reduceConditional(ck)
		return c.check(s, branch), true
	}
	if ck, isCond := c.conditionalKey(s); isCond {
		branch := c.reduceConditional(ck)
		return c.check(branch, t), true
	}
	return false, false
}

func (c *checker) conditionalKey(id typeset.TypeID) (typeset.ConditionalKey, bool) {
	key, ok := c.in.Lookup(id)
	if !ok {
		return typeset.ConditionalKey{}, false
	}
	ck, isCond := key.(typeset.ConditionalKey)
	return ck, isCond
}

func (c *checker) reduceConditional(ck typeset.ConditionalKey) typeset.TypeID {
	if ck.Distributive {
		return c.in.NewUnion2(ck.True, ck.False)
	}
	if IsAssignable(c.in, c.res, ck.Check, ck.Extends, c.opts) {
		return ck.True
	}
	return ck.False
}

// conditionalReducer adapts this checker's assignability query into an
// instantiate.Reducer, so substitution can collapse a determinate
// conditional to one branch using the same check/extends test
// reduceConditional uses.
func (c *checker) conditionalReducer() instantiate.Reducer {
	return func(check, extends typeset.TypeID) bool {
		return IsAssignable(c.in, c.res, check, extends, c.opts)
	}
}
