// Package solveropts loads the compiler-option flags the subtype relation
// observes from a TOML file, using BurntSushi/toml for on-disk
// configuration.
package solveropts

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/tszsolve/tszsolve/internal/subtype"
)

// File is the on-disk shape of a solver options file, e.g.:
//
//	strict_null_checks = true
//	strict_function_types = true
//	exact_optional_property_types = false
//	no_unchecked_indexed_access = false
type File struct {
	StrictNullChecks           bool `toml:"strict_null_checks"`
	StrictFunctionTypes        bool `toml:"strict_function_types"`
	ExactOptionalPropertyTypes bool `toml:"exact_optional_property_types"`
	NoUncheckedIndexedAccess   bool `toml:"no_unchecked_indexed_access"`
}

// ToOptions adapts the on-disk shape to subtype.Options.
func (f File) ToOptions() subtype.Options {
	return subtype.Options{
		StrictNullChecks:           f.StrictNullChecks,
		StrictFunctionTypes:        f.StrictFunctionTypes,
		ExactOptionalPropertyTypes: f.ExactOptionalPropertyTypes,
		NoUncheckedIndexedAccess:   f.NoUncheckedIndexedAccess,
	}
}

// Strict is the preset a `--strict` CLI flag maps to: every flag on.
func Strict() subtype.Options {
	return subtype.Options{
		StrictNullChecks:           true,
		StrictFunctionTypes:        true,
		ExactOptionalPropertyTypes: true,
		NoUncheckedIndexedAccess:   true,
	}
}

// Load parses path as TOML into a File and converts it to subtype.Options.
func Load(path string) (subtype.Options, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return subtype.Options{}, fmt.Errorf("solveropts: parsing %s: %w", path, err)
	}
	return f.ToOptions(), nil
}
