package typeset

// enumShape is the arena-resident content of an EnumKey.
type enumShape struct {
	Symbol   SymbolRef
	IsString bool
	Members  []TypeID
}

func (s *enumShape) key() string {
	k := newShapeKey()
	k.sym(s.Symbol).b(s.IsString)
	k.u32(uint32(len(s.Members)))
	for _, m := range s.Members {
		k.id(m)
	}
	return k.String()
}

// enumMemberShape is the arena-resident content of an EnumMemberKey.
type enumMemberShape struct {
	Owner SymbolRef
	Name  Atom
	Value EnumMemberValue
}

// NewEnum interns a nominal enum type. Nominal identity comes from Symbol,
// not from the member list, so two enums with identical members but
// different declaring symbols never dedup together.
func (in *Interner) NewEnum(sym SymbolRef, isString bool, members []TypeID) TypeID {
	shape := enumShape{Symbol: sym, IsString: isString, Members: append([]TypeID(nil), members...)}
	key := shape.key()
	var idx uint32
	if existing, ok := in.enumIndex[key]; ok {
		idx = existing
	} else {
		idx = nextSlot(len(in.enums))
		in.enums = append(in.enums, shape)
		in.enumIndex[key] = idx
	}
	return in.intern(rawType{Kind: KindEnum, Payload: idx, Sym: sym})
}

// NewEnumMember interns one member of an enum, bound to its declaring enum
// by owner. Two members with the same owner and name always dedup
// together; this piggybacks on the Payload/Sym pair already carried by
// rawType, so no dedicated dedup map is needed.
func (in *Interner) NewEnumMember(owner SymbolRef, name Atom, value EnumMemberValue) TypeID {
	idx := nextSlot(len(in.enumMembers))
	shape := enumMemberShape{Owner: owner, Name: name, Value: value}
	// Member identity is (owner,name): scan the member arena linearly
	// rather than maintaining a dedicated dedup map.
	for i, existing := range in.enumMembers {
		if existing.Owner == owner && existing.Name == name {
			idx = uint32(i)
			return in.intern(rawType{Kind: KindEnumMember, Payload: idx, Sym: owner})
		}
	}
	in.enumMembers = append(in.enumMembers, shape)
	return in.intern(rawType{Kind: KindEnumMember, Payload: idx, Sym: owner})
}
