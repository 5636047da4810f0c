package typeset

import "sort"

// memberList is the arena-resident content shared by union and intersection
// TypeIDs: a canonicalized (flattened, deduped, sorted) member set. Both
// kinds reuse the same arena and key space; KindUnion/KindIntersection in
// the owning rawType disambiguate which relation the members describe.
type memberList struct {
	Members []TypeID
}

func (s *memberList) key() string {
	return ids(s.Members).String()
}

func (in *Interner) internMemberList(members []TypeID) uint32 {
	shape := memberList{Members: members}
	key := shape.key()
	if idx, ok := in.memberIndex[key]; ok {
		return idx
	}
	idx := nextSlot(len(in.memberLists))
	in.memberLists = append(in.memberLists, shape)
	in.memberIndex[key] = idx
	return idx
}

// dedupeSorted returns the sorted set of distinct TypeIDs in ts.
func dedupeSorted(ts []TypeID) []TypeID {
	seen := make(map[TypeID]struct{}, len(ts))
	out := make([]TypeID, 0, len(ts))
	for _, t := range ts {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (in *Interner) flattenKind(members []TypeID, kind Kind) []TypeID {
	out := make([]TypeID, 0, len(members))
	for _, m := range members {
		raw, ok := in.rawLookup(m)
		if ok && raw.Kind == kind {
			out = append(out, in.memberLists[raw.Payload].Members...)
			continue
		}
		out = append(out, m)
	}
	return out
}

// NewUnion interns a normalized union: members are flattened one level,
// any/unknown/error absorb the whole union, never is filtered, the
// remainder is deduped and sorted, and a single surviving member is
// returned directly with no new allocation.
func (in *Interner) NewUnion(members []TypeID) TypeID {
	flat := in.flattenKind(members, KindUnion)

	hasError, hasAny, hasUnknown := false, false, false
	for _, m := range flat {
		switch m {
		case ErrorType:
			hasError = true
		case Any:
			hasAny = true
		case Unknown:
			hasUnknown = true
		}
	}
	if hasError {
		return ErrorType
	}
	if hasAny {
		return Any
	}
	if hasUnknown {
		return Unknown
	}

	filtered := make([]TypeID, 0, len(flat))
	for _, m := range flat {
		if m == Never {
			continue
		}
		filtered = append(filtered, m)
	}
	deduped := dedupeSorted(filtered)

	switch len(deduped) {
	case 0:
		return Never
	case 1:
		return deduped[0]
	}

	payload := in.internMemberList(deduped)
	return in.intern(rawType{Kind: KindUnion, Payload: payload})
}

// NewUnion2 is the two-argument convenience form used throughout the
// constructors below.
func (in *Interner) NewUnion2(a, b TypeID) TypeID {
	return in.NewUnion([]TypeID{a, b})
}

// GetUnionMembers returns id's member set if id is a union, else (nil,
// false).
func (in *Interner) GetUnionMembers(id TypeID) ([]TypeID, bool) {
	raw, ok := in.rawLookup(id)
	if !ok || raw.Kind != KindUnion {
		return nil, false
	}
	return in.memberLists[raw.Payload].Members, true
}

// SplitNullishType separates a union's null/undefined members from the
// rest, returning the non-nullish remainder and whether null/undefined
// were present. A non-union input that is itself null or undefined splits
// into (Never, true); anything else splits into (id, false).
func (in *Interner) SplitNullishType(id TypeID) (rest TypeID, hadNullish bool) {
	members, ok := in.GetUnionMembers(id)
	if !ok {
		if id == Null || id == Undefined {
			return Never, true
		}
		return id, false
	}
	kept := make([]TypeID, 0, len(members))
	for _, m := range members {
		if m == Null || m == Undefined {
			hadNullish = true
			continue
		}
		kept = append(kept, m)
	}
	return in.NewUnion(kept), hadNullish
}
