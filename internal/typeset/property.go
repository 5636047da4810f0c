package typeset

import "sort"

// sortProps orders properties by Atom so that two property lists built in
// different declaration order still hash-cons to the same ObjectKey —
// property order is not observable.
func sortProps(props []PropertyRecord) []PropertyRecord {
	sorted := make([]PropertyRecord, len(props))
	copy(sorted, props)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted
}

func (k *shapeKey) prop(p PropertyRecord) *shapeKey {
	k.atom(p.Name).id(p.Read).id(p.Write).b(p.Optional).b(p.Readonly).b(p.Method).tag(byte(p.Vis)).sym(p.Parent)
	return k
}

func (k *shapeKey) props(props []PropertyRecord) *shapeKey {
	k.u32(uint32(len(props)))
	for _, p := range props {
		k.prop(p)
	}
	return k
}

func (k *shapeKey) param(p Param) *shapeKey {
	k.atom(p.Name).id(p.Type).b(p.Optional).b(p.Rest)
	return k
}

func (k *shapeKey) signature(s Signature) *shapeKey {
	k.u32(uint32(len(s.TypeParams)))
	for _, tp := range s.TypeParams {
		k.id(tp)
	}
	k.u32(uint32(len(s.Params)))
	for _, p := range s.Params {
		k.param(p)
	}
	k.id(s.This).id(s.Return)
	if s.Predicate == nil {
		k.b(false)
	} else {
		k.b(true).atom(s.Predicate.ParamName).id(s.Predicate.Type)
	}
	return k
}

func (k *shapeKey) signatures(sigs []Signature) *shapeKey {
	k.u32(uint32(len(sigs)))
	for _, s := range sigs {
		k.signature(s)
	}
	return k
}

func clonePropRecords(props []PropertyRecord) []PropertyRecord {
	out := make([]PropertyRecord, len(props))
	copy(out, props)
	return out
}
