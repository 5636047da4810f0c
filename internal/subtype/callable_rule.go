package subtype

import "github.com/tszsolve/tszsolve/internal/typeset"

// callableRule checks that every target signature is matched by some
// source overload, contravariant (or bivariant) in parameters and
// covariant in return, with void-return absorption and bivariant
// any[]/unknown[] rest parameters.
func (c *checker) callableRule(s, t typeset.TypeID) (ok, handled bool) {
	tKey, found := c.in.Lookup(t)
	if !found {
		return false, false
	}
	tCall, isCall := tKey.(typeset.CallableKey)
	if !isCall {
		return false, false
	}

	sKey, sFound := c.in.Lookup(s)
	if !sFound {
		return c.fail(TypeMismatch{Source: s, Target: t}), true
	}
	sCall, sIsCall := sKey.(typeset.CallableKey)
	if !sIsCall {
		return c.fail(TypeMismatch{Source: s, Target: t}), true
	}

	bivariant := !c.opts.StrictFunctionTypes || c.forceBivariantParams
	c.forceBivariantParams = false

	for _, tsig := range tCall.Calls {
		if !c.signatureSatisfiedBySome(sCall.Calls, tsig, bivariant) {
			return c.fail(TypeMismatch{Source: s, Target: t}), true
		}
	}
	for _, tsig := range tCall.Constructs {
		if !c.signatureSatisfiedBySome(sCall.Constructs, tsig, bivariant) {
			return c.fail(TypeMismatch{Source: s, Target: t}), true
		}
	}
	return true, true
}

func (c *checker) signatureSatisfiedBySome(sourceSigs []typeset.Signature, target typeset.Signature, bivariant bool) bool {
	for _, ssig := range sourceSigs {
		if c.signatureAssignable(ssig, target, bivariant) {
			return true
		}
	}
	return len(sourceSigs) == 0 && len(target.Params) == 0
}

func (c *checker) signatureAssignable(source, target typeset.Signature, bivariant bool) bool {
	n := len(source.Params)
	if len(target.Params) < n {
		n = len(target.Params)
	}
	for i := 0; i < n; i++ {
		sp, tp := source.Params[i], target.Params[i]
		if (sp.Rest && c.isAnyOrUnknownArray(sp.Type)) || (tp.Rest && c.isAnyOrUnknownArray(tp.Type)) {
			continue
		}
		if bivariant {
			if !c.check(tp.Type, sp.Type) && !c.check(sp.Type, tp.Type) {
				return false
			}
			continue
		}
		if !c.check(tp.Type, sp.Type) { // contravariant
			return false
		}
	}
	if len(target.Params) > len(source.Params) && !lastIsRest(source.Params) {
		return false // target requires more positional parameters than source accepts
	}

	if c.opts.StrictFunctionTypes && source.This != typeset.NoTypeID && target.This != typeset.NoTypeID {
		if !c.check(target.This, source.This) {
			return false
		}
	}

	if target.Return == typeset.Void { // void absorbs any return type
		return true
	}
	return c.check(source.Return, target.Return)
}

func lastIsRest(params []typeset.Param) bool {
	if len(params) == 0 {
		return false
	}
	return params[len(params)-1].Rest
}

func (c *checker) isAnyOrUnknownArray(id typeset.TypeID) bool {
	key, ok := c.in.Lookup(id)
	if !ok {
		return false
	}
	obj, isObj := key.(typeset.ObjectKey)
	if !isObj {
		return false
	}
	return obj.NumberIndex == typeset.Any || obj.NumberIndex == typeset.Unknown
}
