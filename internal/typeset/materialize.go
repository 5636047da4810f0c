package typeset

// materialize turns a stored rawType back into its public tagged variant.
// It is the sole place that reaches into the shape arenas for Lookup, so
// every new composite kind needs exactly one case added here.
func (in *Interner) materialize(id TypeID, raw rawType) TypeKey {
	switch raw.Kind {
	case KindIntrinsic:
		return IntrinsicKey{intr: IntrinsicKind(raw.Payload)}
	case KindLiteral:
		return LiteralKey{
			Tag:  LiteralTag(raw.Payload),
			Text: Atom(raw.Arg),
			Flag: raw.Fresh,
			Sym:  raw.Sym,
		}
	case KindObject:
		shape := in.objects[raw.Payload]
		return ObjectKey{
			Props:       clonePropRecords(shape.Props),
			StringIndex: shape.StringIndex,
			NumberIndex: shape.NumberIndex,
			Fresh:       raw.Fresh,
		}
	case KindCallable:
		shape := in.callables[raw.Payload]
		return CallableKey{
			Calls:      cloneSignatures(shape.Calls),
			Constructs: cloneSignatures(shape.Constructs),
			Props:      clonePropRecords(shape.Props),
		}
	case KindTuple:
		shape := in.tuples[raw.Payload]
		return TupleKey{Elems: append([]TupleElem(nil), shape.Elems...)}
	case KindUnion:
		return UnionKey{Members: append([]TypeID(nil), in.memberLists[raw.Payload].Members...)}
	case KindIntersection:
		return IntersectionKey{Members: append([]TypeID(nil), in.memberLists[raw.Payload].Members...)}
	case KindTemplateLiteral:
		shape := in.templates[raw.Payload]
		return TemplateLiteralKey{Spans: append([]TemplateSpan(nil), shape.Spans...)}
	case KindMapped:
		shape := in.mappeds[raw.Payload]
		return MappedKey{
			Param:       shape.Param,
			Constraint:  shape.Constraint,
			NameType:    shape.NameType,
			Template:    shape.Template,
			ReadonlyMod: shape.ReadonlyMod,
			OptionalMod: shape.OptionalMod,
		}
	case KindConditional:
		shape := in.conditionals[raw.Payload]
		return ConditionalKey{
			Check:        shape.Check,
			Extends:      shape.Extends,
			True:         shape.True,
			False:        shape.False,
			Distributive: shape.Distributive,
			Infer:        append([]Atom(nil), shape.Infer...),
		}
	case KindIndexAccess:
		return IndexAccessKey{Object: raw.Arg, Index: TypeID(raw.Payload)}
	case KindKeyOf:
		return KeyOfKey{Source: raw.Arg}
	case KindApplication:
		shape := in.applications[raw.Payload]
		return ApplicationKey{Base: shape.Base, Args: append([]TypeID(nil), shape.Args...)}
	case KindRef:
		return RefKey{Symbol: raw.Sym}
	case KindUniqueSymbol:
		return UniqueSymbolKey{Symbol: raw.Sym}
	case KindTypeParameter:
		info := in.typeParams[raw.Payload]
		return TypeParameterKey{Name: info.Name, Constraint: info.Constraint, Default: info.Default}
	case KindLazy:
		return LazyKey{Def: in.lazies[raw.Payload].Def}
	case KindEnum:
		shape := in.enums[raw.Payload]
		return EnumKey{Symbol: shape.Symbol, IsString: shape.IsString, Members: append([]TypeID(nil), shape.Members...)}
	case KindEnumMember:
		shape := in.enumMembers[raw.Payload]
		return EnumMemberKey{Owner: shape.Owner, Name: shape.Name, Value: shape.Value}
	default:
		panic("typeset: materialize: unhandled kind for id " + Label(in, id))
	}
}
