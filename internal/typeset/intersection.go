package typeset

// disjointPrimitiveClass groups intrinsics that can never simultaneously
// inhabit one value; two different non-zero classes in one intersection
// collapse it to never (e.g. "string & number").
func disjointPrimitiveClass(id TypeID) int {
	switch id {
	case String:
		return 1
	case Number:
		return 2
	case Boolean:
		return 3
	case BigInt:
		return 4
	case Symbol:
		return 5
	default:
		return 0
	}
}

// NewIntersection interns a normalized intersection: flatten, apply
// absorbing laws, collapse disjoint primitives, then partially merge
// object members into one shape and callable members into one
// overloaded callable.
func (in *Interner) NewIntersection(members []TypeID) TypeID {
	flat := in.flattenKind(members, KindIntersection)

	for _, m := range flat {
		if m == Never || m == ErrorType {
			if m == ErrorType {
				return ErrorType
			}
			return Never
		}
	}
	hasAny := false
	filtered := make([]TypeID, 0, len(flat))
	for _, m := range flat {
		switch m {
		case Any:
			hasAny = true
		case Unknown:
			// unknown is filtered out of an intersection (identity element)
		default:
			filtered = append(filtered, m)
		}
	}
	if hasAny {
		return Any
	}

	deduped := dedupeSorted(filtered)
	if len(deduped) == 0 {
		return Unknown
	}
	if len(deduped) == 1 {
		return deduped[0]
	}

	seenClass := 0
	for _, m := range deduped {
		class := disjointPrimitiveClass(m)
		if class == 0 {
			continue
		}
		if seenClass != 0 && seenClass != class {
			return Never
		}
		seenClass = class
	}

	seenLiteral := NoTypeID
	for _, m := range deduped {
		key, ok := in.Lookup(m)
		if !ok {
			continue
		}
		if _, isLiteral := key.(LiteralKey); !isLiteral {
			continue
		}
		if seenLiteral != NoTypeID && seenLiteral != m {
			return Never
		}
		seenLiteral = m
	}

	merged, ok := in.mergeIntersectionObjectsAndCallables(deduped)
	if !ok {
		return Never
	}
	merged = dropAbsorbedEmptyObjects(in, merged)

	switch len(merged) {
	case 0:
		return Unknown
	case 1:
		return merged[0]
	}

	payload := in.internMemberList(merged)
	return in.intern(rawType{Kind: KindIntersection, Payload: payload})
}

// NewIntersection2 is the two-argument convenience form.
func (in *Interner) NewIntersection2(a, b TypeID) TypeID {
	return in.NewIntersection([]TypeID{a, b})
}

// mergeIntersectionObjectsAndCallables groups every object member into a
// single merged object and every callable member into a single merged
// callable, leaving other members untouched. ok is false if a property
// merge hit a disjoint required discriminant.
func (in *Interner) mergeIntersectionObjectsAndCallables(members []TypeID) ([]TypeID, bool) {
	var objs, calls []TypeID
	var rest []TypeID
	for _, m := range members {
		raw, _ := in.rawLookup(m)
		switch raw.Kind {
		case KindObject:
			objs = append(objs, m)
		case KindCallable:
			calls = append(calls, m)
		default:
			rest = append(rest, m)
		}
	}

	if len(objs) > 1 {
		merged, ok := in.mergeObjects(objs)
		if !ok {
			return nil, false
		}
		rest = append(rest, merged)
	} else {
		rest = append(rest, objs...)
	}

	if len(calls) > 1 {
		rest = append(rest, in.mergeCallables(calls))
	} else {
		rest = append(rest, calls...)
	}

	return dedupeSorted(rest), true
}

func (in *Interner) mergeObjects(objIDs []TypeID) (TypeID, bool) {
	byName := map[Atom]PropertyRecord{}
	order := []Atom{}
	var stringIdx, numberIdx TypeID

	for _, id := range objIDs {
		raw, _ := in.rawLookup(id)
		shape := in.objects[raw.Payload]
		if shape.StringIndex != NoTypeID {
			if stringIdx == NoTypeID {
				stringIdx = shape.StringIndex
			} else {
				stringIdx = in.NewIntersection2(stringIdx, shape.StringIndex)
			}
		}
		if shape.NumberIndex != NoTypeID {
			if numberIdx == NoTypeID {
				numberIdx = shape.NumberIndex
			} else {
				numberIdx = in.NewIntersection2(numberIdx, shape.NumberIndex)
			}
		}
		for _, p := range shape.Props {
			prev, ok := byName[p.Name]
			if !ok {
				byName[p.Name] = p
				order = append(order, p.Name)
				continue
			}
			merged, ok := mergeProperty(in, prev, p)
			if !ok {
				return NoTypeID, false
			}
			byName[p.Name] = merged
		}
	}

	props := make([]PropertyRecord, 0, len(order))
	for _, name := range order {
		props = append(props, byName[name])
	}
	return in.NewObject(props, stringIdx, numberIdx, false), true
}

// mergeProperty combines two same-named property records:
// visibility is max(private,protected,public), readonly is the union
// (either readonly implies readonly), optional is the intersection (both
// must be optional to stay optional), and read/write types intersect. A
// required (non-optional on both sides) property whose merged type
// collapses to never signals a disjoint discriminant.
func mergeProperty(in *Interner, a, b PropertyRecord) (PropertyRecord, bool) {
	if a.Parent != NoSymbolRef && b.Parent != NoSymbolRef && a.Parent != b.Parent {
		return PropertyRecord{}, false
	}
	read := in.NewIntersection2(a.Read, b.Read)
	write := in.NewIntersection2(a.Write, b.Write)
	optional := a.Optional && b.Optional
	if read == Never && !a.Optional && !b.Optional {
		return PropertyRecord{}, false
	}
	parent := a.Parent
	if parent == NoSymbolRef {
		parent = b.Parent
	}
	return PropertyRecord{
		Name:     a.Name,
		Read:     read,
		Write:    write,
		Optional: optional,
		Readonly: a.Readonly || b.Readonly,
		Method:   a.Method && b.Method,
		Vis:      a.Vis.max(b.Vis),
		Parent:   parent,
	}, true
}

// mergeCallables concatenates overload lists in order; callables are not
// order-independent so, unlike objects, there is no per-name merge step.
func (in *Interner) mergeCallables(callIDs []TypeID) TypeID {
	var calls, constructs []Signature
	var props []PropertyRecord
	for _, id := range callIDs {
		raw, _ := in.rawLookup(id)
		shape := in.callables[raw.Payload]
		calls = append(calls, shape.Calls...)
		constructs = append(constructs, shape.Constructs...)
		props = append(props, shape.Props...)
	}
	return in.NewCallable(calls, constructs, props)
}

// dropAbsorbedEmptyObjects implements "an empty object in a mixed
// intersection is absorbed by any non-nullish sibling".
func dropAbsorbedEmptyObjects(in *Interner, members []TypeID) []TypeID {
	if len(members) < 2 {
		return members
	}
	hasNonNullishSibling := false
	for _, m := range members {
		if !in.isEmptyObject(m) && m != Null && m != Undefined {
			hasNonNullishSibling = true
			break
		}
	}
	if !hasNonNullishSibling {
		return members
	}
	out := make([]TypeID, 0, len(members))
	for _, m := range members {
		if in.isEmptyObject(m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (in *Interner) isEmptyObject(id TypeID) bool {
	raw, ok := in.rawLookup(id)
	if !ok || raw.Kind != KindObject {
		return false
	}
	shape := in.objects[raw.Payload]
	return len(shape.Props) == 0 && shape.StringIndex == NoTypeID && shape.NumberIndex == NoTypeID
}

// GetIntersectionMembers returns id's member set if id is an intersection.
func (in *Interner) GetIntersectionMembers(id TypeID) ([]TypeID, bool) {
	raw, ok := in.rawLookup(id)
	if !ok || raw.Kind != KindIntersection {
		return nil, false
	}
	return in.memberLists[raw.Payload].Members, true
}
