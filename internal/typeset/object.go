package typeset

// objectShape is the arena-resident content of an ObjectKey. Props is kept
// sorted by Atom so structurally-equal shapes always hash-cons together.
// nameIndex is built lazily, once Props grows past propertyMapThreshold,
// and is not part of the shape's identity.
type objectShape struct {
	Props       []PropertyRecord
	StringIndex TypeID
	NumberIndex TypeID

	nameIndex map[Atom]int
}

func (s *objectShape) indexOf(name Atom) (int, bool) {
	if len(s.Props) > propertyMapThreshold {
		if s.nameIndex == nil {
			s.nameIndex = make(map[Atom]int, len(s.Props))
			for i, p := range s.Props {
				s.nameIndex[p.Name] = i
			}
		}
		i, ok := s.nameIndex[name]
		return i, ok
	}
	for i, p := range s.Props {
		if p.Name == name {
			return i, true
		}
	}
	return 0, false
}

func (s *objectShape) key() string {
	k := newShapeKey()
	k.props(s.Props).id(s.StringIndex).id(s.NumberIndex)
	return k.String()
}

// NewObject interns an object shape. fresh marks a freshly-constructed
// object literal, used by the assignability checker's excess-property
// check; a fresh object and its widened counterpart must share the same
// underlying Payload so dropping the Fresh bit is the only difference
// between them.
func (in *Interner) NewObject(props []PropertyRecord, stringIndex, numberIndex TypeID, fresh bool) TypeID {
	shape := objectShape{
		Props:       sortProps(props),
		StringIndex: stringIndex,
		NumberIndex: numberIndex,
	}
	payload := in.internObjectShape(shape)
	return in.intern(rawType{Kind: KindObject, Payload: payload, Fresh: fresh})
}

// NewObjectLiteral interns a non-fresh object shape with no index
// signatures — the common case for a plain interface/type-literal shape.
func (in *Interner) NewObjectLiteral(props []PropertyRecord) TypeID {
	return in.NewObject(props, NoTypeID, NoTypeID, false)
}

// NewFreshObjectLiteral interns a fresh object shape with no index
// signatures — the common case for an object expression under check.
func (in *Interner) NewFreshObjectLiteral(props []PropertyRecord) TypeID {
	return in.NewObject(props, NoTypeID, NoTypeID, true)
}

func (in *Interner) internObjectShape(shape objectShape) uint32 {
	key := shape.key()
	if idx, ok := in.objectIndex[key]; ok {
		return idx
	}
	idx := nextSlot(len(in.objects))
	in.objects = append(in.objects, shape)
	in.objectIndex[key] = idx
	return idx
}

// FindProperty looks up name on an object-kind TypeID, using the shape's
// secondary name index once it has grown past propertyMapThreshold.
func (in *Interner) FindProperty(id TypeID, name Atom) (PropertyRecord, bool) {
	raw, ok := in.rawLookup(id)
	if !ok || raw.Kind != KindObject {
		return PropertyRecord{}, false
	}
	shape := &in.objects[raw.Payload]
	i, found := shape.indexOf(name)
	if !found {
		return PropertyRecord{}, false
	}
	return shape.Props[i], true
}

// Widen returns id with its Fresh bit cleared, reusing the same shape
// Payload. Widening a non-fresh or non-object type is the identity.
func (in *Interner) Widen(id TypeID) TypeID {
	raw, ok := in.rawLookup(id)
	if !ok || raw.Kind != KindObject || !raw.Fresh {
		return id
	}
	return in.intern(rawType{Kind: KindObject, Payload: raw.Payload, Fresh: false})
}

// IsFreshObject reports whether id is an object type still carrying its
// freshness bit; only a type in this state is excess-property checked.
func (in *Interner) IsFreshObject(id TypeID) bool {
	raw, ok := in.rawLookup(id)
	return ok && raw.Kind == KindObject && raw.Fresh
}
