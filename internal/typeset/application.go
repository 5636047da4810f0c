package typeset

// applicationShape is the arena-resident content of an ApplicationKey.
type applicationShape struct {
	Base TypeID
	Args []TypeID
}

func (s *applicationShape) key() string {
	k := newShapeKey()
	k.id(s.Base)
	k.u32(uint32(len(s.Args)))
	for _, a := range s.Args {
		k.id(a)
	}
	return k.String()
}

// NewApplication interns `base<args...>`, a lazy reference to a generic
// alias applied to concrete type arguments. Resolution is left to the
// subtype checker or an external consumer.
func (in *Interner) NewApplication(base TypeID, args []TypeID) TypeID {
	shape := applicationShape{Base: base, Args: append([]TypeID(nil), args...)}
	key := shape.key()
	var idx uint32
	if existing, ok := in.applicationIx[key]; ok {
		idx = existing
	} else {
		idx = nextSlot(len(in.applications))
		in.applications = append(in.applications, shape)
		in.applicationIx[key] = idx
	}
	return in.intern(rawType{Kind: KindApplication, Payload: idx})
}
