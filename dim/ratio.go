// SPDX-License-Identifier: MIT
package dim

import (
	"fmt"
	"strconv"
)

// Ratio is an exact rational exponent, always stored in lowest terms with a
// positive denominator. The zero value is the rational 0 (0/1 normalizes to
// {0, 1} — see norm), so Vector's zero value is genuinely dimensionless.
type Ratio struct {
	num, den int
}

// NewRatio returns the normalized rational num/den.
// Panics if den == 0: exponents with no denominator are a programmer error,
// and the panic is confined to this constructor.
func NewRatio(num, den int) Ratio {
	if den == 0 {
		panic("dim: NewRatio denominator must be non-zero")
	}

	return Ratio{num: num, den: den}.norm()
}

// Int returns the rational n/1 without normalization overhead.
func Int(n int) Ratio {
	return Ratio{num: n, den: 1}
}

// norm reduces the ratio to lowest terms and forces a positive denominator.
// A zero denominator (possible only for the struct zero value) is treated
// as 1 so that Ratio{} behaves as the rational 0.
func (r Ratio) norm() Ratio {
	if r.den == 0 {
		r.den = 1
	}
	if r.num == 0 {
		return Ratio{num: 0, den: 1}
	}
	if r.den < 0 {
		r.num, r.den = -r.num, -r.den
	}
	g := gcd(abs(r.num), r.den)

	return Ratio{num: r.num / g, den: r.den / g}
}

// Num returns the numerator in lowest terms.
func (r Ratio) Num() int { return r.norm().num }

// Den returns the (positive) denominator in lowest terms.
func (r Ratio) Den() int { return r.norm().den }

// Add returns r + o.
func (r Ratio) Add(o Ratio) Ratio {
	r, o = r.norm(), o.norm()

	return Ratio{num: r.num*o.den + o.num*r.den, den: r.den * o.den}.norm()
}

// Sub returns r - o.
func (r Ratio) Sub(o Ratio) Ratio {
	return r.Add(Ratio{num: -o.Num(), den: o.Den()})
}

// MulRatio returns r · o.
func (r Ratio) MulRatio(o Ratio) Ratio {
	r, o = r.norm(), o.norm()

	return Ratio{num: r.num * o.num, den: r.den * o.den}.norm()
}

// IsZero reports whether r is the rational 0.
func (r Ratio) IsZero() bool { return r.Num() == 0 }

// Equal reports exact rational equality.
func (r Ratio) Equal(o Ratio) bool {
	r, o = r.norm(), o.norm()

	return r.num == o.num && r.den == o.den
}

// Float returns the float64 value of r; used only when a scale factor must
// be raised to this exponent, never for equality decisions.
func (r Ratio) Float() float64 {
	r = r.norm()

	return float64(r.num) / float64(r.den)
}

// String renders "2", "-1" or "(1/2)" — the same forms unit.Parse accepts
// as exponents, keeping Unit.String round-trippable.
func (r Ratio) String() string {
	r = r.norm()
	if r.den == 1 {
		return strconv.Itoa(r.num)
	}

	return fmt.Sprintf("(%d/%d)", r.num, r.den)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
