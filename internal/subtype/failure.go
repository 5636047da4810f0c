package subtype

import "github.com/tszsolve/tszsolve/internal/typeset"

// FailureReason is the sealed result of ExplainFailure.
type FailureReason interface {
	reason()
}

// MissingProperty means the target required a property the source lacks.
type MissingProperty struct {
	Name typeset.Atom
}

func (MissingProperty) reason() {}

// PropertyTypeMismatch means a shared property exists on both sides but
// its type is not compatible in the direction the rule requires.
type PropertyTypeMismatch struct {
	Name typeset.Atom
}

func (PropertyTypeMismatch) reason() {}

// ParameterTypeMismatch means parameter Index failed the required variance
// check between two callable shapes.
type ParameterTypeMismatch struct {
	Index int
}

func (ParameterTypeMismatch) reason() {}

// ReturnTypeMismatch means a signature's return type was not covariant.
type ReturnTypeMismatch struct{}

func (ReturnTypeMismatch) reason() {}

// NoCommonProperties is the weak-type rejection: the target has only
// optional properties and the source shares none of their names.
type NoCommonProperties struct{}

func (NoCommonProperties) reason() {}

// ExcessProperty means a fresh object literal carried a property the
// target's shape does not recognize.
type ExcessProperty struct {
	Name typeset.Atom
}

func (ExcessProperty) reason() {}

// NominalBrandMismatch means two structurally matching properties carry
// different nominal parent SymbolRefs (private/protected class brands).
type NominalBrandMismatch struct {
	Name typeset.Atom
}

func (NominalBrandMismatch) reason() {}

// TypeMismatch is the generic fallback when no more specific reason
// applies (e.g. two incompatible primitives). A recursion-budget cutoff
// records no reason at all.
type TypeMismatch struct {
	Source typeset.TypeID
	Target typeset.TypeID
}

func (TypeMismatch) reason() {}
