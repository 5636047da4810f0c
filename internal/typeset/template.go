package typeset

// templateShape is the arena-resident content of a TemplateLiteralKey.
type templateShape struct {
	Spans []TemplateSpan
}

func (k *shapeKey) span(s TemplateSpan) *shapeKey {
	k.atom(s.Text).id(s.Type)
	return k
}

func (s *templateShape) key() string {
	k := newShapeKey()
	k.u32(uint32(len(s.Spans)))
	for _, sp := range s.Spans {
		k.span(sp)
	}
	return k.String()
}

// literalSpanText returns the text a concrete, string-compatible literal
// type contributes to template folding, or ok=false if id cannot be folded
// into plain text (it is not a literal, or it is a literal whose value
// isn't known at intern time).
func (in *Interner) literalSpanText(id TypeID) (string, bool) {
	raw, ok := in.rawLookup(id)
	if !ok || raw.Kind != KindLiteral {
		return "", false
	}
	switch LiteralTag(raw.Payload) {
	case LiteralStringTag, LiteralNumberTag, LiteralBigIntTag:
		return in.atoms.MustLookup(Atom(raw.Arg)), true
	case LiteralBooleanTag:
		if raw.Fresh {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}

// NewTemplateLiteral interns a normalized template literal: a never span
// collapses the whole thing to never; an any/unknown span widens the
// whole thing to string, following standard TypeScript widening rather
// than any-style absorption; adjacent text runs fold together, with
// empty runs elided; if every remaining span folds to text, the result
// is a single string literal.
func (in *Interner) NewTemplateLiteral(spans []TemplateSpan) TypeID {
	for _, sp := range spans {
		if sp.Type == Never {
			return Never
		}
		if sp.Type == Any || sp.Type == Unknown {
			return String
		}
	}

	folded := make([]TemplateSpan, 0, len(spans))
	for _, sp := range spans {
		if sp.Type != NoTypeID {
			if text, ok := in.literalSpanText(sp.Type); ok {
				sp = TemplateSpan{Text: in.InternString(text)}
			}
		}
		folded = append(folded, sp)
	}

	merged := make([]TemplateSpan, 0, len(folded))
	for _, sp := range folded {
		if sp.Type == NoTypeID {
			text, _ := in.ResolveAtom(sp.Text)
			if text == "" {
				continue
			}
			if n := len(merged); n > 0 && merged[n-1].Type == NoTypeID {
				prev, _ := in.ResolveAtom(merged[n-1].Text)
				merged[n-1].Text = in.InternString(prev + text)
				continue
			}
		}
		merged = append(merged, sp)
	}

	allText := true
	for _, sp := range merged {
		if sp.Type != NoTypeID {
			allText = false
			break
		}
	}
	if allText {
		var text string
		for _, sp := range merged {
			s, _ := in.ResolveAtom(sp.Text)
			text += s
		}
		return in.NewStringLiteral(text)
	}

	shape := templateShape{Spans: merged}
	payload := in.internTemplateShape(shape)
	return in.intern(rawType{Kind: KindTemplateLiteral, Payload: payload})
}

func (in *Interner) internTemplateShape(shape templateShape) uint32 {
	key := shape.key()
	if idx, ok := in.templateIndex[key]; ok {
		return idx
	}
	idx := nextSlot(len(in.templates))
	in.templates = append(in.templates, shape)
	in.templateIndex[key] = idx
	return idx
}
