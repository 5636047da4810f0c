// Package resolver defines the contract between the solver and the external
// name-resolution layer. Nothing here resolves anything itself — it exists
// so that typeset and subtype can depend on an interface instead of on a
// binder implementation, which is out of scope for this repository.
package resolver

import "github.com/tszsolve/tszsolve/internal/typeset"

// SymbolRef is re-exported for convenience so callers of this package don't
// need to import typeset solely for the type.
type SymbolRef = typeset.SymbolRef

// Resolver looks up the declared type of a symbol. The subtype package
// replaces a nil Resolver with Func(nil), which answers every symbol with
// (typeset.Unknown, false). The subtype relation does not call Resolve on
// Ref or Lazy terms: it compares them as opaque terms that are equal only
// to themselves, without expanding them.
type Resolver interface {
	// Resolve returns the TypeID a SymbolRef refers to, produced by the same
	// Interner the caller is querying. Returning false means the symbol is
	// not yet resolved (e.g. during declaration merging).
	Resolve(ref SymbolRef) (typeset.TypeID, bool)
}

// Func adapts a plain function to the Resolver interface.
type Func func(ref SymbolRef) (typeset.TypeID, bool)

// Resolve implements Resolver.
func (f Func) Resolve(ref SymbolRef) (typeset.TypeID, bool) {
	if f == nil {
		return typeset.Unknown, false
	}
	return f(ref)
}
