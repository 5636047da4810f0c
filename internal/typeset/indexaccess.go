package typeset

// indexAccessKey is the comparable dedup key for `Object[Index]`.
type indexAccessKey struct {
	Object TypeID
	Index  TypeID
}

// NewIndexAccess interns `object[index]`. Resolution to the member type the
// access denotes is left to the subtype relation and query helpers; the
// interner only guarantees identity.
func (in *Interner) NewIndexAccess(object, index TypeID) TypeID {
	key := indexAccessKey{Object: object, Index: index}
	if id, ok := in.indexAccessIndex[key]; ok {
		return id
	}
	id := in.internRaw(rawType{Kind: KindIndexAccess, Arg: object, Payload: uint32(index)})
	in.indexAccessIndex[key] = id
	return id
}

// IndexAccessParts returns the object and index TypeIDs for an IndexAccess
// term produced by NewIndexAccess.
func (in *Interner) IndexAccessParts(id TypeID) (object, index TypeID, ok bool) {
	raw, found := in.rawLookup(id)
	if !found || raw.Kind != KindIndexAccess {
		return NoTypeID, NoTypeID, false
	}
	return raw.Arg, TypeID(raw.Payload), true
}
