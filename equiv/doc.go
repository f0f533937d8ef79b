// Package equiv supplies the standard astrophysical equivalency rules
// for quantity.ConvertTo.
//
// 🚀 What is an equivalency?
//
//	A conversion that is dimensionally illegal in general but physically
//	sound in a specific regime. A wavelength is not a frequency — yet for
//	light in vacuum λ and ν name the same photon, so converting between
//	them is fine *when you say so*:
//
//	  line := quantity.New(2.60076, reg.MustLookup("mm"))
//	  line.ConvertTo(ghz)                    // ErrUnitConversion
//	  line.ConvertTo(ghz, equiv.Spectral())  // ≈ 115.27 GHz
//
// The rules:
//   - Spectral            — wavelength ↔ frequency ↔ photon energy
//     (ν = c/λ, E = hν), for light in vacuum.
//   - DimensionlessAngle  — cancels any pure angle-exponent difference
//     (the radian is the scale-1 angle), so rad²·km² converts to an area
//     when, and only when, you opt in.
//   - Parallax            — annual-parallax angle ↔ distance (d = 1 AU/θ,
//     i.e. one parsec per arcsecond of parallax).
//   - ThermalEnergy       — temperature ↔ energy via E = k_B·T.
//
// Every rule is a plain value scoped to the ConvertTo call it is passed
// to. There is no way to register one globally, and that is the point:
// an ambient "angle is dimensionless" rule would quietly absorb real
// dimensional-analysis mistakes everywhere else.
package equiv
