package typeset

// NewRef interns a nominal reference resolved through the external
// name-resolution layer (see internal/resolver).
func (in *Interner) NewRef(sym SymbolRef) TypeID {
	if id, ok := in.refIndex[sym]; ok {
		return id
	}
	id := in.internRaw(rawType{Kind: KindRef, Sym: sym})
	in.refIndex[sym] = id
	return id
}

// NewUniqueSymbol interns a `unique symbol` type keyed by nominal identity.
func (in *Interner) NewUniqueSymbol(sym SymbolRef) TypeID {
	if id, ok := in.uniqueSymbolIndex[sym]; ok {
		return id
	}
	id := in.internRaw(rawType{Kind: KindUniqueSymbol, Sym: sym})
	in.uniqueSymbolIndex[sym] = id
	return id
}

// RefSymbol returns the SymbolRef a Ref or UniqueSymbol term carries.
func (in *Interner) RefSymbol(id TypeID) (SymbolRef, bool) {
	raw, ok := in.rawLookup(id)
	if !ok || (raw.Kind != KindRef && raw.Kind != KindUniqueSymbol) {
		return NoSymbolRef, false
	}
	return raw.Sym, true
}
