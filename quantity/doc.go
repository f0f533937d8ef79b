// Package quantity pairs numeric arrays with units and keeps every
// operation dimensionally honest.
//
// 🚀 What is a Quantity?
//
//	An immutable (magnitude, unit) pair. The magnitude is always an Array
//	(a scalar is just a rank-0 array), so one arithmetic contract covers
//	single values, spectra, and data cubes alike. Units ride along through
//	every operation:
//
//	  σ  := quantity.New(220, kmPerS)           // 220 km / s
//	  σ2 := σ.Mul(σ)                            // 48400 km² / s²
//	  σ2.Add(σ)                                 // ErrIncompatibleUnits
//
// ✨ The rules, in five lines:
//   - Add/Sub demand equal dimension vectors; the right operand is
//     rescaled into the left's unit, which the result keeps.
//   - Mul/Div/Pow always succeed and build composite units.
//   - ConvertTo rescales commensurable units directly; anything else
//     needs an Equivalency passed *into that call* — nothing global,
//     nothing implicit, no guessed intent.
//   - Decompose rewrites a composite in canonical SI base units,
//     cancelling factors with net-zero exponents.
//   - ToNumeric is the single escape hatch to raw numbers, and it
//     refuses dimensionful values — log(mass) is a compile-away bug, not
//     a runtime surprise three packages later.
//
// 🧮 Arrays broadcast element-wise under the usual right-aligned rules
// (trailing axes must match or be 1), and a unit always applies uniformly
// to every element.
//
// Everything here is a pure value: no operation mutates its receiver, so
// Quantities and Arrays are safely shared across goroutines without
// synchronization.
package quantity
