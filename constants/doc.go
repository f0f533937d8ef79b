// Package constants provides a read-only table of physical constants as
// ordinary Quantities.
//
// The dataset (CODATA 2018 and IAU 2015 nominal values) ships as embedded
// YAML and is parsed exactly once, on first use; after that the table is
// immutable and safe for unsynchronized concurrent readers.
//
// Constants carry an uncertainty field as data — it is reported, never
// propagated through arithmetic. In every other respect a constant is a
// plain Quantity with no special-casing:
//
//	sigma := quantity.New(220, unit.MustParse(reg, "km / s"))
//	reff := quantity.New(3.6, reg.MustLookup("kpc"))
//	num, _ := sigma.Pow(dim.Int(2)).Mul(reff)    // σ²·R
//	mass, _ := num.Div(constants.G())            // ... / G  → a mass
//
// Lookup accepts either the symbol ("G") or the long name ("gravitational
// constant"); unknown keys fail with ErrUnknownConstant.
package constants
