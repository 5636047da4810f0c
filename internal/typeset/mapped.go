package typeset

// mappedShape is the arena-resident content of a MappedKey.
type mappedShape struct {
	Param       TypeID
	Constraint  TypeID
	NameType    TypeID
	Template    TypeID
	ReadonlyMod Modifier
	OptionalMod Modifier
}

func (s *mappedShape) key() string {
	k := newShapeKey()
	k.id(s.Param).id(s.Constraint).id(s.NameType).id(s.Template).tag(byte(s.ReadonlyMod)).tag(byte(s.OptionalMod))
	return k.String()
}

// NewMapped interns a homomorphic mapped type shape.
func (in *Interner) NewMapped(param, constraint, nameType, template TypeID, readonlyMod, optionalMod Modifier) TypeID {
	shape := mappedShape{
		Param:       param,
		Constraint:  constraint,
		NameType:    nameType,
		Template:    template,
		ReadonlyMod: readonlyMod,
		OptionalMod: optionalMod,
	}
	key := shape.key()
	if idx, ok := in.mappedIx[key]; ok {
		return in.intern(rawType{Kind: KindMapped, Payload: idx})
	}
	idx := nextSlot(len(in.mappeds))
	in.mappeds = append(in.mappeds, shape)
	in.mappedIx[key] = idx
	return in.intern(rawType{Kind: KindMapped, Payload: idx})
}
