// SPDX-License-Identifier: MIT
package unit

import (
	"math"

	"github.com/katalvlaran/quanta/dim"
)

// Factor is one displayed component of a unit: a symbol raised to a
// rational exponent. Factors exist purely for rendering and parsing;
// unit identity lives in the dimension vector and the scale.
type Factor struct {
	// Sym is the display symbol, e.g. "km".
	Sym string

	// Exp is the exponent the symbol carries in this unit.
	Exp dim.Ratio
}

// Unit is an immutable measurement unit: a dimension vector, the scale
// factor to the SI base of that dimension, and the display factors.
// The zero value is Dimensionless. Every method returns a new value.
type Unit struct {
	d       dim.Vector
	scale   float64
	factors []Factor
}

// Dimensionless is the multiplicative identity: empty dimension, scale 1.
var Dimensionless = Unit{scale: 1}

// newNamed builds a single-symbol unit. Used by the registry and by
// prefix resolution; not exported because ad-hoc units should go through
// Registry.Define so collisions are caught.
func newNamed(sym string, d dim.Vector, scale float64) Unit {
	return Unit{d: d, scale: scale, factors: []Factor{{Sym: sym, Exp: dim.Int(1)}}}
}

// Dim returns the unit's dimension vector.
func (u Unit) Dim() dim.Vector { return u.d }

// Scale returns the factor converting 1 of this unit to SI-base units.
// The zero value reports 1 so Unit{} behaves as Dimensionless.
func (u Unit) Scale() float64 {
	if u.scale == 0 {
		return 1
	}

	return u.scale
}

// Factors returns a copy of the display factors.
func (u Unit) Factors() []Factor {
	out := make([]Factor, len(u.factors))
	copy(out, u.factors)

	return out
}

// IsDimensionless reports whether the unit measures nothing.
func (u Unit) IsDimensionless() bool { return u.d.IsZero() }

// Equal reports unit identity: same dimension vector and same scale.
// Symbols are metadata — "min" equals an anonymous {time, 60} composite.
func (u Unit) Equal(o Unit) bool {
	return u.d.Equal(o.d) && u.Scale() == o.Scale()
}

// Mul returns the composite unit u·o: dimensions add, scales multiply,
// display factors merge by symbol.
func (u Unit) Mul(o Unit) Unit {
	return Unit{
		d:       u.d.Mul(o.d),
		scale:   u.Scale() * o.Scale(),
		factors: mergeFactors(u.factors, o.factors, false),
	}
}

// Div returns the composite unit u/o: dimensions subtract, scales divide.
func (u Unit) Div(o Unit) Unit {
	return Unit{
		d:       u.d.Div(o.d),
		scale:   u.Scale() / o.Scale(),
		factors: mergeFactors(u.factors, o.factors, true),
	}
}

// Pow raises the unit to a rational power: every dimension exponent and
// every display exponent is multiplied by r, the scale is exponentiated.
func (u Unit) Pow(r dim.Ratio) Unit {
	if r.IsZero() {
		return Dimensionless
	}
	factors := make([]Factor, 0, len(u.factors))
	for _, f := range u.factors {
		factors = append(factors, Factor{Sym: f.Sym, Exp: f.Exp.MulRatio(r)})
	}

	return Unit{
		d:       u.d.Pow(r),
		scale:   math.Pow(u.Scale(), r.Float()),
		factors: factors,
	}
}

// Root returns the n-th root of the unit, or ErrZeroRoot for n == 0.
// Root(2) of km^2 is km; Root(2) of km/s is km^(1/2)/s^(1/2).
func (u Unit) Root(n int) (Unit, error) {
	if n == 0 {
		return Unit{}, ErrZeroRoot
	}

	return u.Pow(dim.NewRatio(1, n)), nil
}

// baseSymbols are the canonical SI-base symbols, in dim.Base order.
var baseSymbols = [dim.NumBase]string{"m", "kg", "s", "K", "A", "cd", "mol", "rad"}

// ToBase returns the canonical SI-base unit for u's dimension: one factor
// per non-zero axis in basis order, scale exactly 1. The result of
// converting into ToBase() is the quantity's value in pure SI.
func (u Unit) ToBase() Unit {
	var factors []Factor
	for b := dim.Base(0); b < dim.NumBase; b++ {
		e := u.d.Exp(b)
		if e.IsZero() {
			continue
		}
		factors = append(factors, Factor{Sym: baseSymbols[b], Exp: e})
	}

	return Unit{d: u.d, scale: 1, factors: factors}
}

// mergeFactors combines two factor lists, negating the second when div is
// set. First-appearance order is preserved; symbols whose exponents cancel
// disappear entirely, which is what makes Decompose output readable.
func mergeFactors(a, b []Factor, div bool) []Factor {
	type slot struct {
		idx int
		exp dim.Ratio
	}
	order := make([]string, 0, len(a)+len(b))
	bySym := make(map[string]*slot, len(a)+len(b))

	accumulate := func(fs []Factor, negate bool) {
		for _, f := range fs {
			e := f.Exp
			if negate {
				e = dim.Int(0).Sub(e)
			}
			s, ok := bySym[f.Sym]
			if !ok {
				order = append(order, f.Sym)
				bySym[f.Sym] = &slot{idx: len(order) - 1, exp: e}
				continue
			}
			s.exp = s.exp.Add(e)
		}
	}
	accumulate(a, false)
	accumulate(b, div)

	out := make([]Factor, 0, len(order))
	for _, sym := range order {
		s := bySym[sym]
		if s.exp.IsZero() {
			continue
		}
		out = append(out, Factor{Sym: sym, Exp: s.exp})
	}
	if len(out) == 0 {
		return nil
	}

	return out
}
