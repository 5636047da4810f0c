package subtype

import (
	"github.com/tszsolve/tszsolve/internal/instantiate"
	"github.com/tszsolve/tszsolve/internal/typeset"
)

// dispatchMappedKeyOf handles the mapped-target and keyof-target/source
// cases.
func (c *checker) dispatchMappedKeyOf(s, t typeset.TypeID) (ok, handled bool) {
	if mk, isMapped := c.mappedKey(t); isMapped {
		return c.checkMappedTarget(s, mk), true
	}
	if kk, isKeyOf := c.keyOfKey(t); isKeyOf {
		return c.check(s, c.keyDomain(kk.Source)), true
	}
	if kk, isKeyOf := c.keyOfKey(s); isKeyOf {
		return c.check(c.keyDomain(kk.Source), t), true
	}
	return false, false
}

func (c *checker) mappedKey(id typeset.TypeID) (typeset.MappedKey, bool) {
	key, ok := c.in.Lookup(id)
	if !ok {
		return typeset.MappedKey{}, false
	}
	mk, isMapped := key.(typeset.MappedKey)
	return mk, isMapped
}

func (c *checker) keyOfKey(id typeset.TypeID) (typeset.KeyOfKey, bool) {
	key, ok := c.in.Lookup(id)
	if !ok {
		return typeset.KeyOfKey{}, false
	}
	kk, isKeyOf := key.(typeset.KeyOfKey)
	return kk, isKeyOf
}

// keyDomain computes keyof source: the union of its property-name literals
// plus string/number for any index signature present.
func (c *checker) keyDomain(source typeset.TypeID) typeset.TypeID {
	key, ok := c.in.Lookup(source)
	if !ok {
		return typeset.Never
	}
	obj, isObj := key.(typeset.ObjectKey)
	if !isObj {
		return typeset.Never
	}
	members := make([]typeset.TypeID, 0, len(obj.Props)+2)
	for _, p := range obj.Props {
		name, _ := c.in.ResolveAtom(p.Name)
		members = append(members, c.in.NewStringLiteral(name))
	}
	if obj.StringIndex != typeset.NoTypeID {
		members = append(members, typeset.String)
	}
	if obj.NumberIndex != typeset.NoTypeID {
		members = append(members, typeset.Number)
	}
	return c.in.NewUnion(members)
}

// domainKeys decomposes a key-domain type (typically keyof X or a literal
// union) back into its individual key types.
func (c *checker) domainKeys(domain typeset.TypeID) []typeset.TypeID {
	if members, isUnion := c.in.GetUnionMembers(domain); isUnion {
		return members
	}
	return []typeset.TypeID{domain}
}

// checkMappedTarget unfolds the mapped type's constraint and requires the
// source to carry a compatible property (or matching index signature) for
// every resulting key.
func (c *checker) checkMappedTarget(source typeset.TypeID, mk typeset.MappedKey) bool {
	paramKey, ok := c.in.Lookup(mk.Param)
	if !ok {
		return c.fail(TypeMismatch{Source: source, Target: mk.Template})
	}
	param, isParam := paramKey.(typeset.TypeParameterKey)
	if !isParam {
		return c.fail(TypeMismatch{Source: source, Target: mk.Template})
	}

	for _, keyType := range c.domainKeys(mk.Constraint) {
		expected := instantiate.InstantiateWithReducer(c.in, mk.Template, map[typeset.Atom]typeset.TypeID{param.Name: keyType}, c.conditionalReducer())

		name, isLiteralKey := c.literalKeyName(keyType)
		if !isLiteralKey {
			continue // non-literal keys (e.g. a bare string/number domain) can't be matched positionally
		}
		nameAtom := c.in.InternString(name)
		if prop, found := c.in.FindProperty(source, nameAtom); found {
			if !c.check(prop.Read, expected) {
				return c.fail(PropertyTypeMismatch{Name: nameAtom})
			}
			continue
		}
		if indexType, hasIndex := c.matchingIndexType(source, typeset.String); hasIndex {
			if !c.check(indexType, expected) {
				return c.fail(PropertyTypeMismatch{Name: nameAtom})
			}
			continue
		}
		return c.fail(MissingProperty{Name: nameAtom})
	}
	return true
}

func (c *checker) literalKeyName(id typeset.TypeID) (string, bool) {
	key, ok := c.in.Lookup(id)
	if !ok {
		return "", false
	}
	lit, isLit := key.(typeset.LiteralKey)
	if !isLit || lit.Tag != typeset.LiteralStringTag {
		return "", false
	}
	text, _ := c.in.ResolveAtom(lit.Text)
	return text, true
}

func (c *checker) matchingIndexType(source, keyType typeset.TypeID) (typeset.TypeID, bool) {
	key, ok := c.in.Lookup(source)
	if !ok {
		return typeset.NoTypeID, false
	}
	obj, isObj := key.(typeset.ObjectKey)
	if !isObj {
		return typeset.NoTypeID, false
	}
	switch keyType {
	case typeset.String:
		if obj.StringIndex != typeset.NoTypeID {
			return obj.StringIndex, true
		}
	case typeset.Number:
		if obj.NumberIndex != typeset.NoTypeID {
			return obj.NumberIndex, true
		}
	}
	return typeset.NoTypeID, false
}
