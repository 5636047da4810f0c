package typeset

// IsArrayType reports whether id is an object shape carrying a number
// index signature — this model's representation of `T[]`: there is no
// dedicated array kind, arrays are object shapes with a numeric index.
func (in *Interner) IsArrayType(id TypeID) bool {
	raw, ok := in.rawLookup(id)
	if !ok || raw.Kind != KindObject {
		return false
	}
	return in.objects[raw.Payload].NumberIndex != NoTypeID
}

// IsTupleType reports whether id is a TupleKey.
func (in *Interner) IsTupleType(id TypeID) bool {
	raw, ok := in.rawLookup(id)
	return ok && raw.Kind == KindTuple
}

// UnwrapReadonly strips a `readonly` mapped-type wrapper (e.g. the shape
// produced for `Readonly<T>`) down to its per-key template type. Any other
// kind, including a plain (non-wrapped) type, is returned unchanged.
func (in *Interner) UnwrapReadonly(id TypeID) TypeID {
	raw, ok := in.rawLookup(id)
	if !ok || raw.Kind != KindMapped {
		return id
	}
	shape := in.mappeds[raw.Payload]
	if shape.ReadonlyMod != ModifierAdd {
		return id
	}
	return shape.Template
}

// ContainsErrorType walks id's structure looking for the error type, so
// that an explanation can propagate the first encountered error term.
// The walk follows object, callable (parameters and return), tuple,
// union, intersection, template, index-access, keyof and conditional
// terms. It does not look inside mapped or application terms, nor
// Ref/Lazy, since resolving those requires the external collaborator.
func (in *Interner) ContainsErrorType(id TypeID) bool {
	return in.containsError(id, make(map[TypeID]bool))
}

func (in *Interner) containsError(id TypeID, visited map[TypeID]bool) bool {
	if id == ErrorType {
		return true
	}
	if visited[id] {
		return false
	}
	visited[id] = true

	key, ok := in.Lookup(id)
	if !ok {
		return false
	}
	switch k := key.(type) {
	case ObjectKey:
		for _, p := range k.Props {
			if in.containsError(p.Read, visited) || in.containsError(p.Write, visited) {
				return true
			}
		}
		return in.containsError(k.StringIndex, visited) || in.containsError(k.NumberIndex, visited)
	case CallableKey:
		for _, sig := range append(append([]Signature{}, k.Calls...), k.Constructs...) {
			for _, p := range sig.Params {
				if in.containsError(p.Type, visited) {
					return true
				}
			}
			if in.containsError(sig.Return, visited) {
				return true
			}
		}
		return false
	case TupleKey:
		for _, e := range k.Elems {
			if in.containsError(e.Type, visited) {
				return true
			}
		}
		return false
	case UnionKey:
		return containsErrorAny(in, k.Members, visited)
	case IntersectionKey:
		return containsErrorAny(in, k.Members, visited)
	case TemplateLiteralKey:
		for _, sp := range k.Spans {
			if sp.Type != NoTypeID && in.containsError(sp.Type, visited) {
				return true
			}
		}
		return false
	case IndexAccessKey:
		return in.containsError(k.Object, visited) || in.containsError(k.Index, visited)
	case KeyOfKey:
		return in.containsError(k.Source, visited)
	case ConditionalKey:
		return in.containsError(k.Check, visited) || in.containsError(k.Extends, visited) ||
			in.containsError(k.True, visited) || in.containsError(k.False, visited)
	default:
		return false
	}
}

func containsErrorAny(in *Interner, ids []TypeID, visited map[TypeID]bool) bool {
	for _, id := range ids {
		if in.containsError(id, visited) {
			return true
		}
	}
	return false
}

// NamespaceMemberKind classifies whether a declaration merging slot names a
// value, a type, or a namespace.
type NamespaceMemberKind uint8

const (
	NamespaceMemberUnknown NamespaceMemberKind = iota
	NamespaceMemberValue
	NamespaceMemberType
	NamespaceMemberNamespace
)

// ClassifyNamespaceMember reports which declaration space id's TypeKind
// occupies. Enums and enum members occupy both the type and value spaces in
// TypeScript; this classifier reports their value-space role since that is
// what a plain expression reference resolves to.
func (in *Interner) ClassifyNamespaceMember(id TypeID) NamespaceMemberKind {
	key, ok := in.Lookup(id)
	if !ok {
		return NamespaceMemberUnknown
	}
	switch key.(type) {
	case ObjectKey, CallableKey, TupleKey, LiteralKey, EnumKey, EnumMemberKey, UniqueSymbolKey:
		return NamespaceMemberValue
	case TypeParameterKey, MappedKey, ConditionalKey, IndexAccessKey, KeyOfKey, TemplateLiteralKey,
		UnionKey, IntersectionKey, ApplicationKey, RefKey, IntrinsicKey:
		return NamespaceMemberType
	default:
		return NamespaceMemberUnknown
	}
}
