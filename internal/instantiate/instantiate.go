// Package instantiate implements substitution of type-parameter atoms
// inside any type term, rebuilding composites through typeset's
// constructors so normalization reapplies on the way out.
package instantiate

import "github.com/tszsolve/tszsolve/internal/typeset"

// maxDepth bounds the walk so a pathological or cyclic substitution
// terminates by returning the original TypeID rather than recursing
// forever.
const maxDepth = 120

// Substitution maps a type-parameter name atom to the concrete TypeID it
// should be replaced with.
type Substitution map[typeset.Atom]typeset.TypeID

// Reducer reports whether check extends extends. Supplying one lets
// Instantiate collapse a conditional to a single branch as soon as
// substitution makes it determinate, instead of leaving it for a later
// assignability check. The assignability engine that can answer this
// question lives in package subtype, which itself depends on
// instantiate (for mapped-type expansion), so the reducer is passed in
// by the caller rather than imported directly.
type Reducer func(check, extends typeset.TypeID) bool

type walker struct {
	in     *typeset.Interner
	subst  Substitution
	reduce Reducer
	depth  int
}

// Instantiate walks typ, replacing every TypeParameter leaf whose name
// appears in subst, and rebuilds composites through the interner's
// constructors. Substitution is referentially transparent: equal inputs
// produce equal TypeIDs because the constructors themselves hash-cons.
// A distributive conditional whose parameter becomes a union is expanded
// into a union of per-member conditional terms, which are not reduced;
// use InstantiateWithReducer to collapse them.
func Instantiate(in *typeset.Interner, typ typeset.TypeID, subst Substitution) typeset.TypeID {
	w := &walker{in: in, subst: subst}
	return w.walk(typ)
}

// InstantiateWithReducer is Instantiate plus immediate reduction of every
// conditional that becomes determinate during substitution: a
// distributive conditional's per-member branch, or a non-distributive
// conditional whose check no longer contains a type parameter, resolves
// straight to its true or false branch instead of staying a conditional
// term.
func InstantiateWithReducer(in *typeset.Interner, typ typeset.TypeID, subst Substitution, reduce Reducer) typeset.TypeID {
	w := &walker{in: in, subst: subst, reduce: reduce}
	return w.walk(typ)
}

func (w *walker) walk(id typeset.TypeID) typeset.TypeID {
	if len(w.subst) == 0 {
		return id
	}
	if w.depth >= maxDepth {
		return id
	}
	w.depth++
	defer func() { w.depth-- }()

	key, ok := w.in.Lookup(id)
	if !ok {
		return id
	}

	switch k := key.(type) {
	case typeset.TypeParameterKey:
		if repl, found := w.subst[k.Name]; found {
			return repl
		}
		return id
	case typeset.ObjectKey:
		return w.walkObject(k)
	case typeset.CallableKey:
		return w.walkCallable(k)
	case typeset.TupleKey:
		return w.walkTuple(k)
	case typeset.UnionKey:
		return w.in.NewUnion(w.walkAll(k.Members))
	case typeset.IntersectionKey:
		return w.in.NewIntersection(w.walkAll(k.Members))
	case typeset.TemplateLiteralKey:
		return w.walkTemplate(k)
	case typeset.MappedKey:
		return w.walkMapped(k)
	case typeset.ConditionalKey:
		return w.walkConditional(k)
	case typeset.IndexAccessKey:
		return w.in.NewIndexAccess(w.walk(k.Object), w.walk(k.Index))
	case typeset.KeyOfKey:
		return w.in.NewKeyOf(w.walk(k.Source))
	case typeset.ApplicationKey:
		return w.in.NewApplication(w.walk(k.Base), w.walkAll(k.Args))
	default:
		return id // Intrinsic, Literal, Ref, UniqueSymbol, Lazy, Enum, EnumMember carry no type parameters
	}
}

func (w *walker) walkAll(ids []typeset.TypeID) []typeset.TypeID {
	out := make([]typeset.TypeID, len(ids))
	for i, id := range ids {
		out[i] = w.walk(id)
	}
	return out
}

func (w *walker) walkObject(k typeset.ObjectKey) typeset.TypeID {
	props := make([]typeset.PropertyRecord, len(k.Props))
	for i, p := range k.Props {
		props[i] = p
		props[i].Read = w.walk(p.Read)
		props[i].Write = w.walk(p.Write)
	}
	return w.in.NewObject(props, w.walk(k.StringIndex), w.walk(k.NumberIndex), k.Fresh)
}

func (w *walker) walkCallable(k typeset.CallableKey) typeset.TypeID {
	return w.in.NewCallable(w.walkSignatures(k.Calls), w.walkSignatures(k.Constructs), w.walkProps(k.Props))
}

func (w *walker) walkProps(props []typeset.PropertyRecord) []typeset.PropertyRecord {
	out := make([]typeset.PropertyRecord, len(props))
	for i, p := range props {
		out[i] = p
		out[i].Read = w.walk(p.Read)
		out[i].Write = w.walk(p.Write)
	}
	return out
}

func (w *walker) walkSignatures(sigs []typeset.Signature) []typeset.Signature {
	out := make([]typeset.Signature, len(sigs))
	for i, s := range sigs {
		params := make([]typeset.Param, len(s.Params))
		for j, p := range s.Params {
			params[j] = p
			params[j].Type = w.walk(p.Type)
		}
		out[i] = typeset.Signature{
			TypeParams: s.TypeParams,
			Params:     params,
			This:       w.walk(s.This),
			Return:     w.walk(s.Return),
			Predicate:  s.Predicate,
		}
	}
	return out
}

func (w *walker) walkTuple(k typeset.TupleKey) typeset.TypeID {
	elems := make([]typeset.TupleElem, len(k.Elems))
	for i, e := range k.Elems {
		elems[i] = e
		elems[i].Type = w.walk(e.Type)
	}
	return w.in.NewTuple(elems)
}

func (w *walker) walkTemplate(k typeset.TemplateLiteralKey) typeset.TypeID {
	spans := make([]typeset.TemplateSpan, len(k.Spans))
	for i, sp := range k.Spans {
		spans[i] = sp
		if sp.Type != typeset.NoTypeID {
			spans[i].Type = w.walk(sp.Type)
		}
	}
	return w.in.NewTemplateLiteral(spans)
}

func (w *walker) walkMapped(k typeset.MappedKey) typeset.TypeID {
	return w.in.NewMapped(
		k.Param,
		w.walk(k.Constraint),
		w.walk(k.NameType),
		w.walk(k.Template),
		k.ReadonlyMod,
		k.OptionalMod,
	)
}

// walkConditional implements distributive substitution: when the
// conditional distributes over its naked check-parameter, substitution
// expands over the union the parameter resolved to and unions the
// per-member results.
func (w *walker) walkConditional(k typeset.ConditionalKey) typeset.TypeID {
	check := w.walk(k.Check)
	extends := w.walk(k.Extends)
	trueBranch := w.walk(k.True)
	falseBranch := w.walk(k.False)

	if !k.Distributive {
		return w.resolveConditional(check, extends, trueBranch, falseBranch, k.Infer)
	}

	members, isUnion := w.in.GetUnionMembers(check)
	if !isUnion {
		return w.resolveConditional(check, extends, trueBranch, falseBranch, k.Infer)
	}
	results := make([]typeset.TypeID, len(members))
	for i, m := range members {
		results[i] = w.resolveConditional(m, extends, trueBranch, falseBranch, k.Infer)
	}
	return w.in.NewUnion(results)
}

// resolveConditional interns check extends extends ? trueBranch : falseBranch
// and, when a reducer was supplied and check is no longer a bare type
// parameter, immediately picks the matching branch instead of returning
// the conditional term.
func (w *walker) resolveConditional(check, extends, trueBranch, falseBranch typeset.TypeID, infer []typeset.Atom) typeset.TypeID {
	if w.reduce != nil && !w.in.IsTypeParameter(check) {
		if w.reduce(check, extends) {
			return trueBranch
		}
		return falseBranch
	}
	return w.in.NewConditional(check, extends, trueBranch, falseBranch, infer)
}
