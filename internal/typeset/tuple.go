package typeset

// tupleShape is the arena-resident content of a TupleKey.
type tupleShape struct {
	Elems []TupleElem
}

func (k *shapeKey) elem(e TupleElem) *shapeKey {
	k.id(e.Type).atom(e.Name).b(e.Optional).b(e.Rest)
	return k
}

func (s *tupleShape) key() string {
	k := newShapeKey()
	k.u32(uint32(len(s.Elems)))
	for _, e := range s.Elems {
		k.elem(e)
	}
	return k.String()
}

// NewTuple interns an ordered tuple shape. Element order is observable, so
// unlike object properties it is never sorted.
func (in *Interner) NewTuple(elems []TupleElem) TypeID {
	shape := tupleShape{Elems: append([]TupleElem(nil), elems...)}
	payload := in.internTupleShape(shape)
	return in.intern(rawType{Kind: KindTuple, Payload: payload})
}

func (in *Interner) internTupleShape(shape tupleShape) uint32 {
	key := shape.key()
	if idx, ok := in.tupleIndex[key]; ok {
		return idx
	}
	idx := nextSlot(len(in.tuples))
	in.tuples = append(in.tuples, shape)
	in.tupleIndex[key] = idx
	return idx
}
