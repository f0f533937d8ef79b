// Package quanta is your in-memory toolkit for dimensionally-correct
// numeric computation — units, array-valued quantities, opt-in
// equivalencies and physical constants, built for astrophysics-flavoured
// work.
//
// 🚀 What is quanta?
//
//	A modern, immutable, value-type library that brings together:
//		• Dimension vectors: exact rational exponents over 8 base dimensions
//		• Unit registry: SI + astronomy units, prefixes, parse/format round-trip
//		• Quantities: scalar or n-d array magnitudes with broadcasting
//		• Equivalencies: spectral, dimensionless-angle, parallax, thermal —
//		  always explicit, never ambient
//		• Constants: CODATA/IAU values as ordinary Quantities
//
// ✨ Why choose quanta?
//
//   - Dimensional honesty – adding a length to a velocity is an error, not
//     a warning; log of a mass cannot happen by accident
//   - Rock-solid sharing – every value is immutable, safe across goroutines
//   - Pure Go – no cgo, datasets embedded at build time
//   - Explicit over implicit – registries are passed, equivalencies are
//     per-call, nothing global ever mutates
//
// Under the hood, everything is organized in five subpackages plus a CLI:
//
//	dim/       — dimension vectors with exact rational exponents
//	unit/      — Unit values, the Registry, parsing and formatting
//	quantity/  — Array magnitudes, Quantity arithmetic and conversion
//	equiv/     — the standard equivalency rules
//	constants/ — the read-only physical-constants table
//	cmd/unitconv — command-line conversions over all of the above
//
// Quick taste:
//
//	reg := unit.Builtin()
//	sigma := quantity.New(220, unit.MustParse(reg, "km / s"))
//	reff := quantity.New(3.6, reg.MustLookup("kpc"))
//	num, _ := sigma.Pow(dim.Int(2)).Mul(reff)
//	mass, _ := num.Scale(4).Div(constants.G())
//	fmt.Println(mass.Decompose())            // ... kg — a genuine mass
//
// Dive into examples/ for full worked astrophysics scenarios.
//
//	go get github.com/katalvlaran/quanta
package quanta
