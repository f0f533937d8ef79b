// SPDX-License-Identifier: MIT
// Package unit: sentinel error set.
//
// Error policy (matching the rest of the module):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is, never string comparison.
//   - Sentinels carry no parameters; call sites attach context by wrapping
//     with fmt.Errorf("...: %w", ErrX).
//   - No runtime panics on user input; panics are confined to loading the
//     embedded builtin dataset, which cannot fail in a released build.
package unit

import "errors"

var (
	// ErrUnknownUnit indicates that a symbol is not in the registry and no
	// prefix decomposition resolves it.
	ErrUnknownUnit = errors.New("unit: unknown unit")

	// ErrDuplicateUnit indicates an attempt to redefine an existing symbol
	// with a different dimension, scale or prefixability.
	ErrDuplicateUnit = errors.New("unit: duplicate unit definition")

	// ErrBadUnitExpr indicates that Parse could not read a unit expression.
	ErrBadUnitExpr = errors.New("unit: malformed unit expression")

	// ErrBadDefinition indicates a Define call with an empty symbol, an
	// unknown dimension key, or a non-positive or non-finite scale.
	ErrBadDefinition = errors.New("unit: invalid unit definition")

	// ErrZeroRoot indicates Root(0), which has no meaning.
	ErrZeroRoot = errors.New("unit: zeroth root is undefined")
)
