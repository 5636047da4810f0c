// Package subtype implements the structural assignability relation over
// typeset.TypeID: S <: T under TypeScript's variance, bivariance, and
// freshness rules.
package subtype

// Options is the minimal compiler-option surface the relation observes.
// The host must supply all four; there is no default.
type Options struct {
	// StrictNullChecks gates null/undefined assignability. When false,
	// null and undefined are assignable to every non-never type and the
	// reverse is relaxed for target defaults.
	StrictNullChecks bool

	// StrictFunctionTypes makes function parameters contravariant when
	// true; bivariant (historical behavior) when false. Methods are
	// always bivariant regardless of this flag.
	StrictFunctionTypes bool

	// ExactOptionalPropertyTypes, when true, rejects undefined as a write
	// value for an optional property whose declared type doesn't already
	// include undefined.
	ExactOptionalPropertyTypes bool

	// NoUncheckedIndexedAccess, when true, makes an index-access type
	// yield T | undefined even when the index signature declares T.
	NoUncheckedIndexedAccess bool
}
