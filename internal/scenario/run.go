package scenario

import (
	"fmt"

	"github.com/tszsolve/tszsolve/internal/resolver"
	"github.com/tszsolve/tszsolve/internal/subtype"
)

// Result is the outcome of running one CheckSpec against an Env.
type Result struct {
	Name       string
	Source     string
	Target     string
	Expect     bool
	Got        bool
	Pass       bool
	FailReason subtype.FailureReason // set only when Got is false
}

// Run evaluates every [[check]] in f against env, in file order. A
// scenario carries no Ref/Lazy types, so a nil resolver.Func is enough —
// per resolver.Func's contract, every Ref falls back to typeset.Unknown.
func Run(env *Env, checks []CheckSpec) ([]Result, error) {
	var res resolver.Func
	results := make([]Result, 0, len(checks))
	for _, cs := range checks {
		source, ok := env.Names[cs.Source]
		if !ok {
			return nil, fmt.Errorf("scenario: check %q: unknown source type %q", cs.Name, cs.Source)
		}
		target, ok := env.Names[cs.Target]
		if !ok {
			return nil, fmt.Errorf("scenario: check %q: unknown target type %q", cs.Name, cs.Target)
		}

		got := subtype.IsAssignable(env.Interner, res, source, target, env.Options)
		r := Result{
			Name:   cs.Name,
			Source: cs.Source,
			Target: cs.Target,
			Expect: cs.Expect,
			Got:    got,
			Pass:   got == cs.Expect,
		}
		if !got {
			r.FailReason, _ = subtype.ExplainFailure(env.Interner, res, source, target, env.Options)
		}
		results = append(results, r)
	}
	return results, nil
}
