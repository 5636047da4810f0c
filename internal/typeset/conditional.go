package typeset

// conditionalShape is the arena-resident content of a ConditionalKey.
type conditionalShape struct {
	Check        TypeID
	Extends      TypeID
	True         TypeID
	False        TypeID
	Distributive bool
	Infer        []Atom
}

func (s *conditionalShape) key() string {
	k := newShapeKey()
	k.id(s.Check).id(s.Extends).id(s.True).id(s.False).b(s.Distributive)
	k.u32(uint32(len(s.Infer)))
	for _, a := range s.Infer {
		k.atom(a)
	}
	return k.String()
}

// NewConditional interns `check extends extends ? true : false`.
// The distributive flag is not a parameter: NewConditional sets it itself
// to IsTypeParameter(check), i.e. whether the check-type is a naked type
// parameter.
func (in *Interner) NewConditional(check, extends, trueBranch, falseBranch TypeID, infer []Atom) TypeID {
	shape := conditionalShape{
		Check:        check,
		Extends:      extends,
		True:         trueBranch,
		False:        falseBranch,
		Distributive: in.IsTypeParameter(check),
		Infer:        append([]Atom(nil), infer...),
	}
	key := shape.key()
	var idx uint32
	if existing, ok := in.conditionalIx[key]; ok {
		idx = existing
	} else {
		idx = nextSlot(len(in.conditionals))
		in.conditionals = append(in.conditionals, shape)
		in.conditionalIx[key] = idx
	}
	return in.intern(rawType{Kind: KindConditional, Payload: idx})
}

// IsTypeParameter reports whether id names a bare type parameter term.
func (in *Interner) IsTypeParameter(id TypeID) bool {
	raw, ok := in.rawLookup(id)
	return ok && raw.Kind == KindTypeParameter
}
