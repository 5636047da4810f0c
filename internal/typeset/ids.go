package typeset

import "github.com/tszsolve/tszsolve/internal/atom"

// TypeID uniquely identifies a type inside an Interner. Equal TypeIDs mean
// identical types; TypeIDs from different Interners are not comparable.
type TypeID uint32

// Atom is an interned property/parameter/type-parameter name.
type Atom = atom.ID

// NoAtom marks the absence of a name.
const NoAtom = atom.None

// SymbolRef is an opaque handle into the external name-resolution layer.
// The solver never dereferences it directly — only through a
// resolver.Resolver supplied by the host.
type SymbolRef uint32

// NoSymbolRef marks the absence of a nominal identity.
const NoSymbolRef SymbolRef = 0

// Kind tags the variant a TypeID's descriptor holds.
type Kind uint8

const (
	KindIntrinsic Kind = iota
	KindLiteral
	KindObject
	KindCallable
	KindTuple
	KindUnion
	KindIntersection
	KindTemplateLiteral
	KindMapped
	KindConditional
	KindIndexAccess
	KindKeyOf
	KindApplication
	KindRef
	KindUniqueSymbol
	KindTypeParameter
	KindLazy
	KindEnum
	KindEnumMember
)

func (k Kind) String() string {
	switch k {
	case KindIntrinsic:
		return "intrinsic"
	case KindLiteral:
		return "literal"
	case KindObject:
		return "object"
	case KindCallable:
		return "callable"
	case KindTuple:
		return "tuple"
	case KindUnion:
		return "union"
	case KindIntersection:
		return "intersection"
	case KindTemplateLiteral:
		return "template_literal"
	case KindMapped:
		return "mapped"
	case KindConditional:
		return "conditional"
	case KindIndexAccess:
		return "index_access"
	case KindKeyOf:
		return "keyof"
	case KindApplication:
		return "application"
	case KindRef:
		return "ref"
	case KindUniqueSymbol:
		return "unique_symbol"
	case KindTypeParameter:
		return "type_parameter"
	case KindLazy:
		return "lazy"
	case KindEnum:
		return "enum"
	case KindEnumMember:
		return "enum_member"
	default:
		return "unknown"
	}
}

// rawType is the compact descriptor stored per TypeID. It holds only
// comparable fields so it can serve directly as a hash-consing key —
// variable-length content (property lists, union members, template spans,
// ...) is interned one level down into a per-kind shape arena first, and
// only the resulting Payload index appears here. This lets a fixed-size
// comparable struct serve as the top-level key even for kinds whose
// identity depends on variable-length structure.
type rawType struct {
	Kind    Kind
	Payload uint32 // index into the kind-specific shape arena, when applicable
	Arg     TypeID // single TypeID operand, for kinds that only need one
	Sym     SymbolRef
	Fresh   bool // object freshness bit (invariant: shares Payload with its widened sibling)
}
