package typeset

// typeParamInfo is the arena-resident content of a TypeParameterKey.
type typeParamInfo struct {
	Name       Atom
	Constraint TypeID
	Default    TypeID
}

// typeParamKey is the comparable dedup key for a type parameter: all three
// fields are already fixed-size, so no string encoding is needed.
type typeParamKey struct {
	Name       Atom
	Constraint TypeID
	Default    TypeID
}

// NewTypeParameter interns a generic type parameter.
func (in *Interner) NewTypeParameter(name Atom, constraint, def TypeID) TypeID {
	key := typeParamKey{Name: name, Constraint: constraint, Default: def}
	var idx uint32
	if existing, ok := in.typeParamIx[key]; ok {
		idx = existing
	} else {
		idx = nextSlot(len(in.typeParams))
		in.typeParams = append(in.typeParams, typeParamInfo{Name: name, Constraint: constraint, Default: def})
		in.typeParamIx[key] = idx
	}
	return in.intern(rawType{Kind: KindTypeParameter, Payload: idx})
}
