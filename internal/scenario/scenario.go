// Package scenario builds typeset.TypeID graphs and assignability checks
// from a declarative TOML file, the way cmd/tszsolve's "check" and
// "describe" subcommands drive the solver without a TypeScript parser:
// named types reference each other by name instead of by syntax.
package scenario

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/tszsolve/tszsolve/internal/subtype"
	"github.com/tszsolve/tszsolve/internal/typeset"
)

// File is the on-disk shape of a scenario file:
//
//	[options]
//	strict_null_checks = true
//
//	[[type]]
//	name = "Point"
//	kind = "object"
//	  [[type.prop]]
//	  name = "x"
//	  type = "number"
//
//	[[check]]
//	source = "Point"
//	target = "Point"
//	expect = true
type File struct {
	Options OptionsSpec `toml:"options"`
	Types   []TypeSpec  `toml:"type"`
	Checks  []CheckSpec `toml:"check"`
}

// OptionsSpec mirrors solveropts.File; duplicated here (rather than
// imported) because a scenario's [options] table is optional and scoped to
// the scenario file, not a standalone compiler-options file.
type OptionsSpec struct {
	StrictNullChecks           bool `toml:"strict_null_checks"`
	StrictFunctionTypes        bool `toml:"strict_function_types"`
	ExactOptionalPropertyTypes bool `toml:"exact_optional_property_types"`
	NoUncheckedIndexedAccess   bool `toml:"no_unchecked_indexed_access"`
}

// ToOptions adapts the on-disk shape to subtype.Options.
func (o OptionsSpec) ToOptions() subtype.Options {
	return subtype.Options{
		StrictNullChecks:           o.StrictNullChecks,
		StrictFunctionTypes:        o.StrictFunctionTypes,
		ExactOptionalPropertyTypes: o.ExactOptionalPropertyTypes,
		NoUncheckedIndexedAccess:   o.NoUncheckedIndexedAccess,
	}
}

// PropSpec is one [[type.prop]] entry of an object TypeSpec.
type PropSpec struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Optional bool   `toml:"optional"`
	Readonly bool   `toml:"readonly"`
	Method   bool   `toml:"method"`
}

// ElemSpec is one [[type.elem]] entry of a tuple TypeSpec.
type ElemSpec struct {
	Type     string `toml:"type"`
	Optional bool   `toml:"optional"`
	Rest     bool   `toml:"rest"`
}

// ParamSpec is one [[type.param]] entry of a function TypeSpec.
type ParamSpec struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Optional bool   `toml:"optional"`
	Rest     bool   `toml:"rest"`
}

// TypeSpec is one [[type]] declaration. Which fields apply depends on Kind.
type TypeSpec struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"` // intrinsic|literal|object|fresh_object|union|intersection|tuple|function

	// kind = "intrinsic"
	Intrinsic string `toml:"intrinsic"`

	// kind = "literal"
	Literal string `toml:"literal"` // string|number|boolean|bigint
	Text    string `toml:"text"`
	Flag    bool   `toml:"flag"`

	// kind = "object" | "fresh_object"
	Prop        []PropSpec `toml:"prop"`
	StringIndex string     `toml:"string_index"`
	NumberIndex string     `toml:"number_index"`

	// kind = "union" | "intersection"
	Members []string `toml:"members"`

	// kind = "tuple"
	Elem []ElemSpec `toml:"elem"`

	// kind = "function"
	Param  []ParamSpec `toml:"param"`
	Return string      `toml:"return"`
}

// CheckSpec is one [[check]] entry: an assignability query plus the
// expected verdict, so "tszsolve check" can report mismatches.
type CheckSpec struct {
	Name   string `toml:"name"`
	Source string `toml:"source"`
	Target string `toml:"target"`
	Expect bool   `toml:"expect"`
}

// Load parses path as a scenario file.
func Load(path string) (File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, fmt.Errorf("scenario: parsing %s: %w", path, err)
	}
	return f, nil
}

// Env is the result of building a scenario's [[type]] table: every named
// type, interned into in.
type Env struct {
	Interner *typeset.Interner
	Options  subtype.Options
	Names    map[string]typeset.TypeID
}

var intrinsicByName = map[string]typeset.TypeID{
	"any":       typeset.Any,
	"unknown":   typeset.Unknown,
	"never":     typeset.Never,
	"error":     typeset.ErrorType,
	"void":      typeset.Void,
	"null":      typeset.Null,
	"undefined": typeset.Undefined,
	"string":    typeset.String,
	"number":    typeset.Number,
	"boolean":   typeset.Boolean,
	"bigint":    typeset.BigInt,
	"symbol":    typeset.Symbol,
	"object":    typeset.Object,
}

// Build interns every [[type]] declaration in f in file order, resolving
// each named reference against types already built — so a scenario file
// must declare dependencies before dependents, the same left-to-right
// discipline a TypeScript file's declaration order implies.
func Build(f File) (*Env, error) {
	in := typeset.New()
	env := &Env{
		Interner: in,
		Options:  f.Options.ToOptions(),
		Names:    make(map[string]typeset.TypeID, len(f.Types)),
	}
	for _, ts := range f.Types {
		if ts.Name == "" {
			return nil, fmt.Errorf("scenario: type entry missing a name")
		}
		if _, exists := env.Names[ts.Name]; exists {
			return nil, fmt.Errorf("scenario: duplicate type name %q", ts.Name)
		}
		id, err := env.buildType(ts)
		if err != nil {
			return nil, fmt.Errorf("scenario: type %q: %w", ts.Name, err)
		}
		env.Names[ts.Name] = id
	}
	return env, nil
}

func (env *Env) resolve(name string) (typeset.TypeID, error) {
	if name == "" {
		return typeset.NoTypeID, nil
	}
	if id, ok := intrinsicByName[name]; ok {
		return id, nil
	}
	if id, ok := env.Names[name]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("unknown type reference %q", name)
}

func (env *Env) buildType(ts TypeSpec) (typeset.TypeID, error) {
	in := env.Interner
	switch ts.Kind {
	case "intrinsic":
		id, ok := intrinsicByName[ts.Intrinsic]
		if !ok {
			return 0, fmt.Errorf("unknown intrinsic %q", ts.Intrinsic)
		}
		return id, nil

	case "literal":
		switch ts.Literal {
		case "string":
			return in.NewStringLiteral(ts.Text), nil
		case "number":
			return in.NewNumberLiteral(ts.Text), nil
		case "bigint":
			return in.NewBigIntLiteral(ts.Text), nil
		case "boolean":
			return in.NewBooleanLiteral(ts.Flag), nil
		default:
			return 0, fmt.Errorf("unknown literal tag %q", ts.Literal)
		}

	case "object", "fresh_object":
		props, err := env.buildProps(ts.Prop)
		if err != nil {
			return 0, err
		}
		stringIndex, err := env.resolve(ts.StringIndex)
		if err != nil {
			return 0, err
		}
		numberIndex, err := env.resolve(ts.NumberIndex)
		if err != nil {
			return 0, err
		}
		return in.NewObject(props, stringIndex, numberIndex, ts.Kind == "fresh_object"), nil

	case "union":
		members, err := env.resolveAll(ts.Members)
		if err != nil {
			return 0, err
		}
		return in.NewUnion(members), nil

	case "intersection":
		members, err := env.resolveAll(ts.Members)
		if err != nil {
			return 0, err
		}
		return in.NewIntersection(members), nil

	case "tuple":
		elems := make([]typeset.TupleElem, 0, len(ts.Elem))
		for _, e := range ts.Elem {
			t, err := env.resolve(e.Type)
			if err != nil {
				return 0, err
			}
			elems = append(elems, typeset.TupleElem{Type: t, Optional: e.Optional, Rest: e.Rest})
		}
		return in.NewTuple(elems), nil

	case "function":
		params := make([]typeset.Param, 0, len(ts.Param))
		for _, p := range ts.Param {
			t, err := env.resolve(p.Type)
			if err != nil {
				return 0, err
			}
			params = append(params, typeset.Param{
				Name:     in.InternString(p.Name),
				Type:     t,
				Optional: p.Optional,
				Rest:     p.Rest,
			})
		}
		ret, err := env.resolve(ts.Return)
		if err != nil {
			return 0, err
		}
		return in.NewFunction(typeset.Signature{Params: params, Return: ret}), nil

	default:
		return 0, fmt.Errorf("unknown type kind %q", ts.Kind)
	}
}

func (env *Env) buildProps(specs []PropSpec) ([]typeset.PropertyRecord, error) {
	in := env.Interner
	props := make([]typeset.PropertyRecord, 0, len(specs))
	for _, p := range specs {
		t, err := env.resolve(p.Type)
		if err != nil {
			return nil, err
		}
		props = append(props, typeset.PropertyRecord{
			Name:     in.InternString(p.Name),
			Read:     t,
			Write:    t,
			Optional: p.Optional,
			Readonly: p.Readonly,
			Method:   p.Method,
		})
	}
	return props, nil
}

func (env *Env) resolveAll(names []string) ([]typeset.TypeID, error) {
	ids := make([]typeset.TypeID, 0, len(names))
	for _, n := range names {
		id, err := env.resolve(n)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
