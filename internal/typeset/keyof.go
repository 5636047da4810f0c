package typeset

// NewKeyOf interns `keyof source`.
func (in *Interner) NewKeyOf(source TypeID) TypeID {
	if id, ok := in.keyOfIndex[source]; ok {
		return id
	}
	id := in.internRaw(rawType{Kind: KindKeyOf, Arg: source})
	in.keyOfIndex[source] = id
	return id
}

// KeyOfSource returns the source TypeID of a KeyOf term.
func (in *Interner) KeyOfSource(id TypeID) (TypeID, bool) {
	raw, ok := in.rawLookup(id)
	if !ok || raw.Kind != KindKeyOf {
		return NoTypeID, false
	}
	return raw.Arg, true
}
