package typeset

// TypeKey is the tagged variant a TypeID resolves to via Interner.Lookup.
// It is a sealed interface — the concrete types below are its only
// implementations — so callers type-switch over it instead of branching on
// an exported Kind field.
type TypeKey interface {
	Kind() Kind
}

// IntrinsicKey is one of the reserved primitives.
type IntrinsicKey struct{ intr IntrinsicKind }

func (IntrinsicKey) Kind() Kind { return KindIntrinsic }

// Name returns the intrinsic's keyword spelling ("any", "string", ...).
func (k IntrinsicKey) Name() string { return k.intr.String() }

// LiteralTag distinguishes the payload a LiteralKey carries.
type LiteralTag uint8

const (
	LiteralStringTag LiteralTag = iota
	LiteralNumberTag
	LiteralBigIntTag
	LiteralBooleanTag
	LiteralUniqueSymbolTag
)

// LiteralKey is a tagged literal value.
type LiteralKey struct {
	Tag  LiteralTag
	Text Atom      // string/number/bigint: canonical text
	Flag bool      // boolean value
	Sym  SymbolRef // unique symbol identity
}

func (LiteralKey) Kind() Kind { return KindLiteral }

// Visibility orders property access from least to most restrictive.
type Visibility uint8

const (
	Public Visibility = iota
	Protected
	Private
)

func (v Visibility) max(o Visibility) Visibility {
	if o > v {
		return o
	}
	return v
}

// PropertyRecord describes one member of an object or callable shape.
type PropertyRecord struct {
	Name     Atom
	Read     TypeID
	Write    TypeID // equals Read unless the property has a split accessor
	Optional bool
	Readonly bool
	Method   bool
	Vis      Visibility
	Parent   SymbolRef // nominal brand: set for private/protected class members
}

// ObjectKey is an object shape: a sorted-by-name property list plus
// optional index signatures and the freshness bit.
type ObjectKey struct {
	Props       []PropertyRecord
	StringIndex TypeID // NoTypeID if absent
	NumberIndex TypeID
	Fresh       bool
}

func (ObjectKey) Kind() Kind { return KindObject }

// Param describes one parameter of a call or construct signature.
type Param struct {
	Name     Atom
	Type     TypeID
	Optional bool
	Rest     bool
}

// TypePredicate narrows a parameter's type when a signature returns true.
type TypePredicate struct {
	ParamName Atom
	Type      TypeID
}

// Signature is one call or construct signature inside a CallableKey.
type Signature struct {
	TypeParams []TypeID
	Params     []Param
	This       TypeID // NoTypeID if absent
	Return     TypeID
	Predicate  *TypePredicate
}

// CallableKey is a (possibly overloaded) function/constructor shape,
// optionally carrying its own properties (a function-with-properties).
type CallableKey struct {
	Calls      []Signature
	Constructs []Signature
	Props      []PropertyRecord
}

func (CallableKey) Kind() Kind { return KindCallable }

// TupleElem is one element of a TupleKey.
type TupleElem struct {
	Type     TypeID
	Name     Atom
	Optional bool
	Rest     bool
}

// TupleKey is an ordered list of elements.
type TupleKey struct {
	Elems []TupleElem
}

func (TupleKey) Kind() Kind { return KindTuple }

// UnionKey is the sorted, deduplicated member set of a union.
type UnionKey struct {
	Members []TypeID
}

func (UnionKey) Kind() Kind { return KindUnion }

// IntersectionKey is the sorted, deduplicated member set of an intersection
// after partial merging (§4.2): at most one merged object, at most one
// merged callable, plus any other members.
type IntersectionKey struct {
	Members []TypeID
}

func (IntersectionKey) Kind() Kind { return KindIntersection }

// TemplateSpan is either a literal text run (Type == NoTypeID) or a type
// interpolation (Text == NoAtom).
type TemplateSpan struct {
	Text Atom
	Type TypeID
}

// TemplateLiteralKey is an alternating text/type span list.
type TemplateLiteralKey struct {
	Spans []TemplateSpan
}

func (TemplateLiteralKey) Kind() Kind { return KindTemplateLiteral }

// Modifier is a mapped-type `+`/`-`/absent modifier.
type Modifier uint8

const (
	ModifierUnchanged Modifier = iota
	ModifierAdd
	ModifierRemove
)

// MappedKey is a homomorphic mapped type.
type MappedKey struct {
	Param        TypeID // the TypeParameter TypeID being mapped over
	Constraint   TypeID
	NameType     TypeID // optional key remap ("as" clause); NoTypeID if absent
	Template     TypeID // the per-key value template
	ReadonlyMod  Modifier
	OptionalMod  Modifier
}

func (MappedKey) Kind() Kind { return KindMapped }

// ConditionalKey is `Check extends Extends ? True : False`.
type ConditionalKey struct {
	Check        TypeID
	Extends      TypeID
	True         TypeID
	False        TypeID
	Distributive bool
	Infer        []Atom
}

func (ConditionalKey) Kind() Kind { return KindConditional }

// IndexAccessKey is `Object[Index]`.
type IndexAccessKey struct {
	Object TypeID
	Index  TypeID
}

func (IndexAccessKey) Kind() Kind { return KindIndexAccess }

// KeyOfKey is `keyof Source`.
type KeyOfKey struct {
	Source TypeID
}

func (KeyOfKey) Kind() Kind { return KindKeyOf }

// ApplicationKey is a lazy reference to a generic alias applied to
// concrete type arguments: `Base<Args...>`.
type ApplicationKey struct {
	Base TypeID
	Args []TypeID
}

func (ApplicationKey) Kind() Kind { return KindApplication }

// RefKey is a nominal reference resolved through the external environment.
type RefKey struct {
	Symbol SymbolRef
}

func (RefKey) Kind() Kind { return KindRef }

// UniqueSymbolKey is `unique symbol` keyed by nominal identity.
type UniqueSymbolKey struct {
	Symbol SymbolRef
}

func (UniqueSymbolKey) Kind() Kind { return KindUniqueSymbol }

// TypeParameterKey is a generic type parameter.
type TypeParameterKey struct {
	Name       Atom
	Constraint TypeID // NoTypeID if absent
	Default    TypeID // NoTypeID if absent
}

func (TypeParameterKey) Kind() Kind { return KindTypeParameter }

// LazyKey is a deferred definition resolved later by the collaborator.
type LazyKey struct {
	Def uint32
}

func (LazyKey) Kind() Kind { return KindLazy }

// EnumMemberValue is the underlying constant of one enum member.
type EnumMemberValue struct {
	IsString bool
	Number   float64
	Text     Atom
}

// EnumKey is a nominal enum type.
type EnumKey struct {
	Symbol   SymbolRef
	IsString bool
	Members  []TypeID // EnumMember TypeIDs, declaration order
}

func (EnumKey) Kind() Kind { return KindEnum }

// EnumMemberKey is a single member of an enum, nominally bound to its
// declaring enum via Owner.
type EnumMemberKey struct {
	Owner SymbolRef
	Name  Atom
	Value EnumMemberValue
}

func (EnumMemberKey) Kind() Kind { return KindEnumMember }
