// SPDX-License-Identifier: MIT
// Package dim: the Vector type and its pure algebra.
//
// Design notes:
//   - Vector is a fixed-size array of normalized Ratios, so it is a plain
//     comparable value: copying is cheap, sharing is safe, and there is no
//     hidden pointer state anywhere in this package.
//   - Mul/Div/Pow never fail: dimension algebra is total. Error handling
//     belongs to the layers that *interpret* vectors (unit, quantity).
package dim

import "strings"

// Base enumerates the base dimensions, in canonical order. Angle is a
// distinct base dimension: treating it as dimensionless is a physical
// regime choice, expressed by an explicit equivalency, never baked in here.
type Base int

const (
	// BaseLength — SI metre axis.
	BaseLength Base = iota
	// BaseMass — SI kilogram axis.
	BaseMass
	// BaseTime — SI second axis.
	BaseTime
	// BaseTemperature — SI kelvin axis.
	BaseTemperature
	// BaseCurrent — SI ampere axis.
	BaseCurrent
	// BaseLuminous — SI candela axis.
	BaseLuminous
	// BaseAmount — SI mole axis.
	BaseAmount
	// BaseAngle — radian axis, kept separate from dimensionless.
	BaseAngle

	// NumBase is the size of the basis; Vector has exactly this many slots.
	NumBase
)

// baseNames are the display names used by Vector.String, in Base order.
var baseNames = [NumBase]string{
	"length", "mass", "time", "temperature",
	"current", "luminosity", "amount", "angle",
}

// String returns the lowercase display name of the base dimension.
func (b Base) String() string {
	if b < 0 || b >= NumBase {
		return "unknown"
	}

	return baseNames[b]
}

// Vector is an exponent tuple over the base dimensions. The zero value is
// the dimensionless vector. Vectors are immutable: every operation returns
// a new value.
type Vector struct {
	exp [NumBase]Ratio
}

// Zero is the dimensionless vector (all exponents 0).
var Zero = Vector{}

// Ready-made unit vectors for each base dimension.
var (
	Length      = Unit(BaseLength)
	Mass        = Unit(BaseMass)
	Time        = Unit(BaseTime)
	Temperature = Unit(BaseTemperature)
	Current     = Unit(BaseCurrent)
	Luminous    = Unit(BaseLuminous)
	Amount      = Unit(BaseAmount)
	Angle       = Unit(BaseAngle)
)

// Unit returns the vector with exponent 1 on axis b and 0 elsewhere.
func Unit(b Base) Vector {
	var v Vector
	v.exp[b] = Int(1)

	return v
}

// New builds a vector from explicit (axis, exponent) assignments.
func New(exps map[Base]Ratio) Vector {
	var v Vector
	for b, r := range exps {
		v.exp[b] = r.norm()
	}

	return v
}

// Exp returns the exponent on axis b.
func (v Vector) Exp(b Base) Ratio { return v.exp[b].norm() }

// Mul returns the component-wise sum v + o (dimension of a product).
func (v Vector) Mul(o Vector) Vector {
	var out Vector
	for i := Base(0); i < NumBase; i++ {
		out.exp[i] = v.exp[i].Add(o.exp[i])
	}

	return out
}

// Div returns the component-wise difference v - o (dimension of a ratio).
func (v Vector) Div(o Vector) Vector {
	var out Vector
	for i := Base(0); i < NumBase; i++ {
		out.exp[i] = v.exp[i].Sub(o.exp[i])
	}

	return out
}

// Pow multiplies every exponent by r. Fractional r is legal: the square
// root of an area vector is a length vector.
func (v Vector) Pow(r Ratio) Vector {
	var out Vector
	for i := Base(0); i < NumBase; i++ {
		out.exp[i] = v.exp[i].MulRatio(r)
	}

	return out
}

// Equal reports exact component-wise rational equality. This is the
// commensurability test: two units convert directly iff their vectors
// are Equal.
func (v Vector) Equal(o Vector) bool {
	for i := Base(0); i < NumBase; i++ {
		if !v.exp[i].Equal(o.exp[i]) {
			return false
		}
	}

	return true
}

// IsZero reports whether v is dimensionless (all exponents 0).
func (v Vector) IsZero() bool { return v.Equal(Zero) }

// PureAxis reports whether v has non-zero exponent on axis b only, and
// returns that exponent. Used by equivalencies that strip a single axis
// (e.g. angle-as-dimensionless).
func (v Vector) PureAxis(b Base) (Ratio, bool) {
	e := v.exp[b].norm()
	if e.IsZero() {
		return Ratio{}, false
	}
	for i := Base(0); i < NumBase; i++ {
		if i != b && !v.exp[i].IsZero() {
			return Ratio{}, false
		}
	}

	return e, true
}

// String renders the vector for diagnostics, e.g. "mass length^2 time^-2"
// or "dimensionless". Deterministic: axes appear in Base order.
func (v Vector) String() string {
	var parts []string
	for i := Base(0); i < NumBase; i++ {
		e := v.exp[i].norm()
		if e.IsZero() {
			continue
		}
		if e.Equal(Int(1)) {
			parts = append(parts, baseNames[i])
			continue
		}
		parts = append(parts, baseNames[i]+"^"+e.String())
	}
	if len(parts) == 0 {
		return "dimensionless"
	}

	return strings.Join(parts, " ")
}
