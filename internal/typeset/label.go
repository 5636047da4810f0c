package typeset

import (
	"fmt"
	"strings"
)

// Label renders a short debug string for id, e.g. "string", "\"a\" | \"b\"",
// "{ x: number }". It is for diagnostics and test failure messages only —
// never part of a TypeID's identity.
func Label(in *Interner, id TypeID) string {
	if id == NoTypeID {
		return "<none>"
	}
	key, ok := in.Lookup(id)
	if !ok {
		return fmt.Sprintf("<invalid:%d>", id)
	}
	switch k := key.(type) {
	case IntrinsicKey:
		return k.Name()
	case LiteralKey:
		return labelLiteral(in, k)
	case ObjectKey:
		return labelObject(in, k)
	case CallableKey:
		return labelCallable(in, k)
	case TupleKey:
		return labelTuple(in, k)
	case UnionKey:
		return labelJoin(in, k.Members, " | ")
	case IntersectionKey:
		return labelJoin(in, k.Members, " & ")
	case TemplateLiteralKey:
		return labelTemplate(in, k)
	case MappedKey:
		return "{ [K in " + Label(in, k.Constraint) + "]: " + Label(in, k.Template) + " }"
	case ConditionalKey:
		return Label(in, k.Check) + " extends " + Label(in, k.Extends) + " ? " + Label(in, k.True) + " : " + Label(in, k.False)
	case IndexAccessKey:
		return Label(in, k.Object) + "[" + Label(in, k.Index) + "]"
	case KeyOfKey:
		return "keyof " + Label(in, k.Source)
	case ApplicationKey:
		return labelApplication(in, k)
	case RefKey:
		return fmt.Sprintf("ref#%d", k.Symbol)
	case UniqueSymbolKey:
		return fmt.Sprintf("unique symbol#%d", k.Symbol)
	case TypeParameterKey:
		name, _ := in.ResolveAtom(k.Name)
		return name
	case LazyKey:
		return fmt.Sprintf("lazy#%d", k.Def)
	case EnumKey:
		return fmt.Sprintf("enum#%d", k.Symbol)
	case EnumMemberKey:
		name, _ := in.ResolveAtom(k.Name)
		return fmt.Sprintf("enum#%d.%s", k.Owner, name)
	default:
		return fmt.Sprintf("<kind:%T>", key)
	}
}

func labelLiteral(in *Interner, k LiteralKey) string {
	switch k.Tag {
	case LiteralStringTag:
		text, _ := in.ResolveAtom(k.Text)
		return fmt.Sprintf("%q", text)
	case LiteralNumberTag, LiteralBigIntTag:
		text, _ := in.ResolveAtom(k.Text)
		return text
	case LiteralBooleanTag:
		if k.Flag {
			return "true"
		}
		return "false"
	case LiteralUniqueSymbolTag:
		return fmt.Sprintf("unique symbol#%d", k.Sym)
	default:
		return "<literal>"
	}
}

func labelObject(in *Interner, k ObjectKey) string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, p := range k.Props {
		if i > 0 {
			b.WriteString("; ")
		}
		name, _ := in.ResolveAtom(p.Name)
		b.WriteString(name)
		if p.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(Label(in, p.Read))
	}
	b.WriteString(" }")
	if k.Fresh {
		return "fresh " + b.String()
	}
	return b.String()
}

func labelCallable(in *Interner, k CallableKey) string {
	if len(k.Calls) == 0 {
		return "<callable>"
	}
	sig := k.Calls[0]
	var b strings.Builder
	b.WriteString("(")
	for i, p := range sig.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		name, _ := in.ResolveAtom(p.Name)
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(Label(in, p.Type))
	}
	b.WriteString(") => ")
	b.WriteString(Label(in, sig.Return))
	return b.String()
}

func labelTuple(in *Interner, k TupleKey) string {
	parts := make([]string, len(k.Elems))
	for i, e := range k.Elems {
		parts[i] = Label(in, e.Type)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func labelTemplate(in *Interner, k TemplateLiteralKey) string {
	var b strings.Builder
	b.WriteString("`")
	for _, sp := range k.Spans {
		if sp.Type == NoTypeID {
			text, _ := in.ResolveAtom(sp.Text)
			b.WriteString(text)
		} else {
			b.WriteString("${")
			b.WriteString(Label(in, sp.Type))
			b.WriteString("}")
		}
	}
	b.WriteString("`")
	return b.String()
}

func labelApplication(in *Interner, k ApplicationKey) string {
	parts := make([]string, len(k.Args))
	for i, a := range k.Args {
		parts[i] = Label(in, a)
	}
	return Label(in, k.Base) + "<" + strings.Join(parts, ", ") + ">"
}

func labelJoin(in *Interner, members []TypeID, sep string) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = Label(in, m)
	}
	return strings.Join(parts, sep)
}
