package typeset

// lazyInfo is the arena-resident content of a LazyKey.
type lazyInfo struct {
	Def uint32
}

// NewLazy interns a deferred definition identifier whose shape the
// resolver collaborator fills in later. def is an opaque handle owned
// by the caller; the interner never dereferences it.
func (in *Interner) NewLazy(def uint32) TypeID {
	if id, ok := in.lazyIndex[def]; ok {
		return id
	}
	idx := nextSlot(len(in.lazies))
	in.lazies = append(in.lazies, lazyInfo{Def: def})
	id := in.intern(rawType{Kind: KindLazy, Payload: idx})
	in.lazyIndex[def] = id
	return id
}
