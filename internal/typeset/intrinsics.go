package typeset

// IntrinsicKind tags which reserved primitive a KindIntrinsic descriptor
// denotes. It doubles as the Payload field of that descriptor so intrinsics
// dedup through the same rawType map as everything else.
type IntrinsicKind uint8

const (
	intrinsicNone IntrinsicKind = iota
	intrinsicAny
	intrinsicUnknown
	intrinsicNever
	intrinsicError
	intrinsicVoid
	intrinsicNull
	intrinsicUndefined
	intrinsicString
	intrinsicNumber
	intrinsicBoolean
	intrinsicBigInt
	intrinsicSymbol
	intrinsicObject
)

func (k IntrinsicKind) String() string {
	switch k {
	case intrinsicAny:
		return "any"
	case intrinsicUnknown:
		return "unknown"
	case intrinsicNever:
		return "never"
	case intrinsicError:
		return "error"
	case intrinsicVoid:
		return "void"
	case intrinsicNull:
		return "null"
	case intrinsicUndefined:
		return "undefined"
	case intrinsicString:
		return "string"
	case intrinsicNumber:
		return "number"
	case intrinsicBoolean:
		return "boolean"
	case intrinsicBigInt:
		return "bigint"
	case intrinsicSymbol:
		return "symbol"
	case intrinsicObject:
		return "object"
	default:
		return "none"
	}
}

// Reserved TypeIDs. Every Interner pre-seeds these in this exact order
// (New asserts it), so a constant declared here is valid across
// every Interner in the process — unlike every other TypeID, which is only
// meaningful relative to the Interner that produced it.
const (
	NoTypeID  TypeID = 0 // sentinel "no type"
	Any       TypeID = 1
	Unknown   TypeID = 2
	Never     TypeID = 3
	ErrorType TypeID = 4
	Void      TypeID = 5
	Null      TypeID = 6
	Undefined TypeID = 7
	String    TypeID = 8
	Number    TypeID = 9
	Boolean   TypeID = 10
	BigInt    TypeID = 11
	Symbol    TypeID = 12
	Object    TypeID = 13
)

var intrinsicOrder = []IntrinsicKind{
	intrinsicAny,
	intrinsicUnknown,
	intrinsicNever,
	intrinsicError,
	intrinsicVoid,
	intrinsicNull,
	intrinsicUndefined,
	intrinsicString,
	intrinsicNumber,
	intrinsicBoolean,
	intrinsicBigInt,
	intrinsicSymbol,
	intrinsicObject,
}
