package scenario

import (
	"fmt"

	"github.com/tszsolve/tszsolve/internal/subtype"
	"github.com/tszsolve/tszsolve/internal/typeset"
)

// DescribeFailure renders a subtype.FailureReason for terminal output,
// resolving the atoms and TypeIDs it carries against in.
func DescribeFailure(in *typeset.Interner, r subtype.FailureReason) string {
	if r == nil {
		return "no reason recorded"
	}
	switch v := r.(type) {
	case subtype.MissingProperty:
		return fmt.Sprintf("missing property %q", atomName(in, v.Name))
	case subtype.PropertyTypeMismatch:
		return fmt.Sprintf("property %q has an incompatible type", atomName(in, v.Name))
	case subtype.ParameterTypeMismatch:
		return fmt.Sprintf("parameter %d has an incompatible type", v.Index)
	case subtype.ReturnTypeMismatch:
		return "return type is not covariant"
	case subtype.NoCommonProperties:
		return "source shares no property with this weak target type"
	case subtype.ExcessProperty:
		return fmt.Sprintf("excess property %q on a fresh object literal", atomName(in, v.Name))
	case subtype.NominalBrandMismatch:
		return fmt.Sprintf("property %q has mismatched private/protected brands", atomName(in, v.Name))
	case subtype.TypeMismatch:
		return fmt.Sprintf("%s is not assignable to %s", typeset.Label(in, v.Source), typeset.Label(in, v.Target))
	default:
		return "unknown failure reason"
	}
}

func atomName(in *typeset.Interner, a typeset.Atom) string {
	if s, ok := in.ResolveAtom(a); ok {
		return s
	}
	return "<unknown>"
}
