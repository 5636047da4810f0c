package typeset

// callableShape is the arena-resident content of a CallableKey.
type callableShape struct {
	Calls      []Signature
	Constructs []Signature
	Props      []PropertyRecord
}

func (s *callableShape) key() string {
	k := newShapeKey()
	k.signatures(s.Calls).sep().signatures(s.Constructs).sep().props(s.Props)
	return k.String()
}

// NewCallable interns a (possibly overloaded) function/constructor shape.
func (in *Interner) NewCallable(calls, constructs []Signature, props []PropertyRecord) TypeID {
	shape := callableShape{
		Calls:      cloneSignatures(calls),
		Constructs: cloneSignatures(constructs),
		Props:      sortProps(props),
	}
	payload := in.internCallableShape(shape)
	return in.intern(rawType{Kind: KindCallable, Payload: payload})
}

func (in *Interner) internCallableShape(shape callableShape) uint32 {
	key := shape.key()
	if idx, ok := in.callableIndex[key]; ok {
		return idx
	}
	idx := nextSlot(len(in.callables))
	in.callables = append(in.callables, shape)
	in.callableIndex[key] = idx
	return idx
}

// NewFunction interns a single-signature function shape, the common case
// callers reach for instead of building a one-element Calls slice by hand.
func (in *Interner) NewFunction(sig Signature) TypeID {
	return in.NewCallable([]Signature{sig}, nil, nil)
}

func cloneSignatures(sigs []Signature) []Signature {
	out := make([]Signature, len(sigs))
	for i, s := range sigs {
		out[i] = Signature{
			TypeParams: append([]TypeID(nil), s.TypeParams...),
			Params:     append([]Param(nil), s.Params...),
			This:       s.This,
			Return:     s.Return,
			Predicate:  s.Predicate,
		}
	}
	return out
}
