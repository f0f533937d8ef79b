// Package unit defines immutable measurement units and the Registry that
// names them.
//
// 🚀 What is a Unit?
//
//	A Unit is a dimension vector (see package dim) plus a multiplicative
//	scale factor: "1 of this unit equals scale SI-base units of that
//	dimension". km is {length, 1000}; minute is {time, 60}; Jy is
//	{mass·time⁻², 1e-26}. The display symbol is metadata only — two units
//	are Equal iff dimension and scale match.
//
// ✨ Key features:
//   - Registry with Define/Lookup, ErrDuplicateUnit / ErrUnknownUnit
//     sentinels, and SI-prefix resolution at lookup (km, GHz, mJy, ...)
//     for units the dataset flags prefixable.
//   - Builtin() — the SI + astronomy unit table, shipped as embedded YAML
//     and built exactly once; safe for unsynchronized concurrent readers.
//   - Composition: Mul, Div, Pow, Root build anonymous composite units;
//     factors merge by symbol and vanish at net-zero exponent.
//   - ToBase() — the canonical SI-base unit for a dimension (scale 1).
//   - Deterministic String() ("km / s", "kg m^2 / s^2") and Parse(), which
//     reconstructs an equivalent Unit from any String() output.
//
// ⚙️ Usage:
//
//	reg := unit.Builtin()
//	kms, _ := reg.Lookup("km")
//	sec, _ := reg.Lookup("s")
//	speed := kms.Div(sec)                 // "km / s", scale 1000
//	speed.ToBase()                        // "m / s",  scale 1
//	back, _ := unit.Parse(reg, speed.String())
//	back.Equal(speed)                     // true
//
// Units never perform arithmetic on magnitudes — that is package quantity's
// job. This package only answers "what does a symbol mean" and "what unit
// does this combination produce".
package unit
