// Package dim models physical dimensions as exponent vectors over a fixed
// basis of eight base dimensions, with exact rational exponents.
//
// 🚀 What is a dimension vector?
//
//	Every physical quantity measures *something*: a speed is length per
//	time, an energy is mass·length²/time². dim captures that "something"
//	as a Vector — one rational exponent per base dimension:
//
//	  speed   = [length: 1, time: -1]
//	  energy  = [mass: 1, length: 2, time: -2]
//	  angle   = [angle: 1]          (a real base dimension here, not 1)
//
// ✨ Why exact rationals?
//
//   - Commensurability is an equality question: two units convert directly
//     iff their Vectors are *exactly* equal. Float tolerance would turn a
//     hard dimensional-analysis error into a silent near-miss.
//   - Fractional exponents are legitimate (the square root of an area is a
//     length), so exponents are Ratio values, normalized and comparable.
//
// ⚙️ Usage:
//
//	v := dim.Length.Div(dim.Time)        // length / time
//	e := dim.Mass.Mul(v).Mul(v)          // mass · length² / time² ... almost:
//	e = dim.Mass.Mul(v.Pow(dim.NewRatio(2, 1)))
//	e.IsZero()                           // false — dimensionful
//	dim.Zero.IsZero()                    // true  — dimensionless
//
// This layer is pure algebra: no operation can fail on well-formed input,
// so nothing here returns an error. NewRatio panics on a zero denominator
// (programmer error, confined to the constructor).
package dim
