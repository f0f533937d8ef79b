// SPDX-License-Identifier: MIT
// Package quantity: sentinel error set.
//
// Error policy (same as the rest of the module):
//   - package-level sentinels only; branch with errors.Is;
//   - call sites add context via fmt.Errorf("...: %w", ErrX);
//   - every error is raised synchronously at the offending operation and
//     always surfaces to the caller — conversion never falls back to an
//     equivalency the caller did not pass.
package quantity

import "errors"

var (
	// ErrBadShape indicates an Array constructor received a negative axis
	// length or a data slice whose length mismatches the shape.
	ErrBadShape = errors.New("quantity: invalid array shape")

	// ErrIndexOutOfRange indicates an At index outside the array bounds.
	ErrIndexOutOfRange = errors.New("quantity: index out of range")

	// ErrShapeMismatch indicates two arrays whose shapes cannot broadcast.
	ErrShapeMismatch = errors.New("quantity: shapes do not broadcast")

	// ErrNotScalar indicates a scalar accessor on a multi-element array.
	ErrNotScalar = errors.New("quantity: magnitude is not a scalar")

	// ErrIncompatibleUnits indicates Add/Sub between quantities whose
	// dimension vectors differ.
	ErrIncompatibleUnits = errors.New("quantity: incompatible units")

	// ErrUnitConversion indicates ConvertTo found no direct conversion and
	// no applicable equivalency among those supplied.
	ErrUnitConversion = errors.New("quantity: no conversion path")

	// ErrDimensionfulValue indicates ToNumeric/Float on a quantity whose
	// dimension vector is not all-zero.
	ErrDimensionfulValue = errors.New("quantity: dimensionful value used as a raw number")
)
