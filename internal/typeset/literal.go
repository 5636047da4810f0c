package typeset

// literalKey is the comparable dedup key for a literal value; unlike the
// variable-length shapes, literals fit directly as a map key with no
// separate arena.
type literalKey struct {
	Tag  LiteralTag
	Text Atom
	Flag bool
	Sym  SymbolRef
}

func (in *Interner) newLiteral(key literalKey) TypeID {
	if id, ok := in.literalIndex[key]; ok {
		return id
	}
	id := in.internRaw(rawType{
		Kind:    KindLiteral,
		Payload: uint32(key.Tag),
		Arg:     TypeID(key.Text),
		Sym:     key.Sym,
		Fresh:   key.Flag,
	})
	in.literalIndex[key] = id
	return id
}

// NewStringLiteral interns a string literal type.
func (in *Interner) NewStringLiteral(s string) TypeID {
	return in.newLiteral(literalKey{Tag: LiteralStringTag, Text: in.InternString(s)})
}

// NewNumberLiteral interns a number literal type, keyed by its canonical
// textual form so that "1" and "1.0" intern to the same literal only if
// the caller normalizes first — the interner does not reparse numbers.
func (in *Interner) NewNumberLiteral(text string) TypeID {
	return in.newLiteral(literalKey{Tag: LiteralNumberTag, Text: in.InternString(text)})
}

// NewBigIntLiteral interns a bigint literal type from its canonical digits.
func (in *Interner) NewBigIntLiteral(text string) TypeID {
	return in.newLiteral(literalKey{Tag: LiteralBigIntTag, Text: in.InternString(text)})
}

// NewBooleanLiteral interns `true` or `false` as a type.
func (in *Interner) NewBooleanLiteral(v bool) TypeID {
	return in.newLiteral(literalKey{Tag: LiteralBooleanTag, Flag: v})
}

// NewUniqueSymbolLiteral interns a `typeof` narrowing of a unique symbol
// value, distinct from the unique symbol type itself (KindUniqueSymbol).
func (in *Interner) NewUniqueSymbolLiteral(sym SymbolRef) TypeID {
	return in.newLiteral(literalKey{Tag: LiteralUniqueSymbolTag, Sym: sym})
}

// LiteralBaseType returns the intrinsic a literal widens to, or
// (NoTypeID, false) if id is not a literal.
func (in *Interner) LiteralBaseType(id TypeID) (TypeID, bool) {
	raw, ok := in.rawLookup(id)
	if !ok || raw.Kind != KindLiteral {
		return NoTypeID, false
	}
	switch LiteralTag(raw.Payload) {
	case LiteralStringTag:
		return String, true
	case LiteralNumberTag:
		return Number, true
	case LiteralBigIntTag:
		return BigInt, true
	case LiteralBooleanTag:
		return Boolean, true
	case LiteralUniqueSymbolTag:
		return Symbol, true
	default:
		return NoTypeID, false
	}
}
