package subtype

import "github.com/tszsolve/tszsolve/internal/typeset"

// sourceShape is the property-bearing view of a source type extracted for
// the object shape rule. Only ObjectKey and CallableKey (function-with-
// properties) currently contribute a shape; anything else is reported as
// ok=false and the caller treats that as an outright structural mismatch.
type sourceShape struct {
	Props       []typeset.PropertyRecord
	StringIndex typeset.TypeID
	NumberIndex typeset.TypeID
	Fresh       bool
}

func (c *checker) sourceObjectLike(s typeset.TypeID) (sourceShape, bool) {
	key, ok := c.in.Lookup(s)
	if !ok {
		return sourceShape{}, false
	}
	switch k := key.(type) {
	case typeset.ObjectKey:
		return sourceShape{Props: k.Props, StringIndex: k.StringIndex, NumberIndex: k.NumberIndex, Fresh: k.Fresh}, true
	case typeset.CallableKey:
		return sourceShape{Props: k.Props, StringIndex: typeset.NoTypeID, NumberIndex: typeset.NoTypeID}, true
	default:
		return sourceShape{}, false
	}
}

func findProp(props []typeset.PropertyRecord, name typeset.Atom) (typeset.PropertyRecord, bool) {
	for _, p := range props {
		if p.Name == name {
			return p, true
		}
	}
	return typeset.PropertyRecord{}, false
}

// isWeakTarget reports the weak-type shape: zero required properties,
// at least one optional one.
func isWeakTarget(t typeset.ObjectKey) bool {
	if len(t.Props) == 0 {
		return false
	}
	for _, p := range t.Props {
		if !p.Optional {
			return false
		}
	}
	return true
}

func sharesNameOrIndex(t typeset.ObjectKey, source sourceShape) bool {
	for _, sp := range source.Props {
		if _, ok := findProp(t.Props, sp.Name); ok {
			return true
		}
	}
	return source.StringIndex != typeset.NoTypeID && t.StringIndex != typeset.NoTypeID ||
		source.NumberIndex != typeset.NoTypeID && t.NumberIndex != typeset.NoTypeID
}

// objectRule checks structural object shape comparison plus the
// fresh-object excess-property check.
func (c *checker) objectRule(s, t typeset.TypeID) (ok, handled bool) {
	tKey, found := c.in.Lookup(t)
	if !found {
		return false, false
	}
	tObj, isObj := tKey.(typeset.ObjectKey)
	if !isObj {
		return false, false
	}

	source, hasShape := c.sourceObjectLike(s)
	if !hasShape {
		return c.fail(TypeMismatch{Source: s, Target: t}), true
	}

	if isWeakTarget(tObj) && !sharesNameOrIndex(tObj, source) {
		return c.fail(NoCommonProperties{}), true
	}

	for _, tp := range tObj.Props {
		sp, present := findProp(source.Props, tp.Name)
		if !present {
			switch {
			case source.StringIndex != typeset.NoTypeID:
				sp = typeset.PropertyRecord{Name: tp.Name, Read: source.StringIndex, Write: source.StringIndex}
				present = true
			case tp.Optional:
				continue
			default:
				return c.fail(MissingProperty{Name: tp.Name}), true
			}
		}

		if sp.Optional && !tp.Optional {
			return c.fail(PropertyTypeMismatch{Name: tp.Name}), true
		}
		if sp.Readonly && !tp.Readonly {
			return c.fail(PropertyTypeMismatch{Name: tp.Name}), true
		}

		if tp.Method && sp.Method {
			c.forceBivariantParams = true
		}
		readOK := c.check(sp.Read, tp.Read) // (a) covariant read
		c.forceBivariantParams = false
		if !readOK {
			return c.fail(PropertyTypeMismatch{Name: tp.Name}), true
		}
		if tp.Write != tp.Read { // (b) contravariant write, split accessor only
			if !c.check(tp.Write, sp.Write) {
				return c.fail(PropertyTypeMismatch{Name: tp.Name}), true
			}
		}
		if tp.Parent != typeset.NoSymbolRef || sp.Parent != typeset.NoSymbolRef { // (d) nominal brand
			if tp.Parent != sp.Parent {
				return c.fail(NominalBrandMismatch{Name: tp.Name}), true
			}
		}
		if c.opts.ExactOptionalPropertyTypes && tp.Optional {
			if sp.Read == typeset.Undefined && !c.check(typeset.Undefined, tp.Read) {
				return c.fail(PropertyTypeMismatch{Name: tp.Name}), true
			}
		}
	}

	if source.Fresh {
		hasTargetIndex := tObj.StringIndex != typeset.NoTypeID || tObj.NumberIndex != typeset.NoTypeID
		for _, sp := range source.Props {
			if _, known := findProp(tObj.Props, sp.Name); known {
				continue
			}
			if hasTargetIndex {
				continue
			}
			return c.fail(ExcessProperty{Name: sp.Name}), true
		}
	}

	return true, true
}
