package subtype

import (
	"github.com/tszsolve/tszsolve/internal/resolver"
	"github.com/tszsolve/tszsolve/internal/typeset"
)

// maxDepth bounds the recursion the relation will perform before it
// gives up conservatively.
const maxDepth = 120

type pairKey struct {
	S, T typeset.TypeID
}

// checker holds the mutable state of one IsAssignable/ExplainFailure
// call. It is never reused across calls — each top-level query threads
// its own fresh visited-pair set.
type checker struct {
	in      *typeset.Interner
	res     resolver.Resolver
	opts    Options
	visited map[pairKey]bool
	depth   int

	explain bool
	reason  FailureReason

	// forceBivariantParams is set by the object rule for one property
	// comparison when that property is method-shorthand: methods are
	// always bivariant regardless of strict_function_types. callableRule
	// reads and clears it immediately so it never leaks into unrelated
	// nested comparisons.
	forceBivariantParams bool
}

func newChecker(in *typeset.Interner, res resolver.Resolver, opts Options, explain bool) *checker {
	if res == nil {
		res = resolver.Func(nil)
	}
	return &checker{
		in:      in,
		res:     res,
		opts:    opts,
		visited: make(map[pairKey]bool, 8),
		explain: explain,
	}
}

// IsAssignable decides S <: T under opts.
func IsAssignable(in *typeset.Interner, res resolver.Resolver, source, target typeset.TypeID, opts Options) bool {
	c := newChecker(in, res, opts, false)
	return c.check(source, target)
}

// ExplainFailure reruns the relation with a recording tap, returning the
// first structural reason it found for S not being assignable to T. It
// returns ok=false both when the assignment actually succeeds and when no
// more specific reason than recursion-budget exhaustion applies.
func ExplainFailure(in *typeset.Interner, res resolver.Resolver, source, target typeset.TypeID, opts Options) (FailureReason, bool) {
	c := newChecker(in, res, opts, true)
	if c.check(source, target) {
		return nil, false
	}
	if c.reason == nil {
		return nil, false
	}
	return c.reason, true
}

func (c *checker) fail(r FailureReason) bool {
	if c.explain && c.reason == nil {
		c.reason = r
	}
	return false
}

// check is the recursive relation entry point used by every rule file in
// this package.
func (c *checker) check(s, t typeset.TypeID) bool {
	if ok, handled := c.trivial(s, t); handled {
		return ok
	}

	key := pairKey{S: s, T: t}
	if c.visited[key] {
		return true // coinductive assumption: re-entering a pair succeeds
	}
	if c.depth >= maxDepth {
		return false // conservative cutoff, no explanation
	}
	c.visited[key] = true
	c.depth++
	defer func() {
		c.depth--
		delete(c.visited, key)
	}()

	return c.dispatch(s, t)
}

// trivial handles the identity, any/unknown, never, and error-type
// short-circuits that bypass structural comparison entirely.
func (c *checker) trivial(s, t typeset.TypeID) (ok, handled bool) {
	switch {
	case s == t:
		return true, true
	case s == typeset.ErrorType && t == typeset.ErrorType:
		return true, true
	case s == typeset.ErrorType || t == typeset.ErrorType:
		return c.fail(TypeMismatch{Source: s, Target: t}), true
	case t == typeset.Any, t == typeset.Unknown:
		return true, true
	case s == typeset.Any:
		return true, true
	case s == typeset.Never:
		return true, true
	}
	return false, false
}

// dispatch resolves target/source shape and falls through to the
// kind-specific structural rules.
func (c *checker) dispatch(s, t typeset.TypeID) bool {
	if ok, handled := c.dispatchUnionIntersection(s, t); handled {
		return ok
	}
	if ok, handled := c.dispatchConditional(s, t); handled {
		return ok
	}
	if ok, handled := c.dispatchMappedKeyOf(s, t); handled {
		return ok
	}
	if ok, handled := c.primitiveRule(s, t); handled {
		return ok
	}
	if ok, handled := c.enumRule(s, t); handled {
		return ok
	}
	if ok, handled := c.emptyObjectTargetRule(s, t); handled {
		return ok
	}
	if ok, handled := c.objectRule(s, t); handled {
		return ok
	}
	if ok, handled := c.callableRule(s, t); handled {
		return ok
	}
	if ok, handled := c.tupleRule(s, t); handled {
		return ok
	}
	return c.fail(TypeMismatch{Source: s, Target: t})
}
