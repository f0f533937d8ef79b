// SPDX-License-Identifier: MIT
package quantity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quanta/dim"
)

// Add returns q + o. The operands must be commensurable (equal dimension
// vectors) or the call fails with ErrIncompatibleUnits — an equivalency is
// never consulted here; convert first if you mean something looser.
// o's magnitude is rescaled into q's unit, which the result keeps, and the
// magnitudes broadcast element-wise.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	return q.addScaled(o, 1)
}

// Sub returns q - o under the same contract as Add.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	return q.addScaled(o, -1)
}

// addScaled implements Add/Sub with sign = ±1.
func (q Quantity) addScaled(o Quantity, sign float64) (Quantity, error) {
	if !q.u.Dim().Equal(o.u.Dim()) {
		return Quantity{}, fmt.Errorf("%s vs %s (%s vs %s): %w",
			q.u.Label(), o.u.Label(), q.u.Dim(), o.u.Dim(), ErrIncompatibleUnits)
	}
	factor := sign * o.u.Scale() / q.u.Scale()
	mag, err := broadcastApply(q.magnitude(), o.magnitude(), func(x, y float64) float64 {
		return x + y*factor
	})
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{mag: mag, u: q.u}, nil
}

// Mul returns q·o with the composite unit q.Unit()·o.Unit(). Always legal
// dimensionally; only a broadcast failure can error.
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	mag, err := broadcastApply(q.magnitude(), o.magnitude(), func(x, y float64) float64 {
		return x * y
	})
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{mag: mag, u: q.u.Mul(o.u)}, nil
}

// Div returns q/o with the composite unit q.Unit()/o.Unit(). Division by
// zero follows IEEE 754 (±Inf, NaN), as everywhere else in the package.
func (q Quantity) Div(o Quantity) (Quantity, error) {
	mag, err := broadcastApply(q.magnitude(), o.magnitude(), func(x, y float64) float64 {
		return x / y
	})
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{mag: mag, u: q.u.Div(o.u)}, nil
}

// Scale returns k·q: a plain scalar multiple, unit unchanged.
func (q Quantity) Scale(k float64) Quantity {
	return Quantity{
		mag: q.magnitude().mapElem(func(v float64) float64 { return v * k }),
		u:   q.u,
	}
}

// Pow raises q to the rational power r: magnitudes element-wise, unit
// exponents multiplied by r. Fractional powers of negative magnitudes
// yield NaN per IEEE 754.
func (q Quantity) Pow(r dim.Ratio) Quantity {
	exp := r.Float()

	return Quantity{
		mag: q.magnitude().mapElem(func(v float64) float64 { return math.Pow(v, exp) }),
		u:   q.u.Pow(r),
	}
}

// Sqrt is Pow(1/2): the square root of km²/s² is km/s.
func (q Quantity) Sqrt() Quantity {
	return q.Pow(dim.NewRatio(1, 2))
}

// EqualWithin reports whether o equals q element-wise within tol, after
// converting o into q's unit. Incommensurable operands or a shape mismatch
// fail with the corresponding sentinel; tol applies to magnitudes in q's
// unit.
func (q Quantity) EqualWithin(o Quantity, tol float64) (bool, error) {
	conv, err := o.ConvertTo(q.u)
	if err != nil {
		return false, err
	}
	a, b := q.magnitude(), conv.magnitude()
	if !sameShape(a.shape, b.shape) {
		return false, fmt.Errorf("EqualWithin %v vs %v: %w", a.shape, b.shape, ErrShapeMismatch)
	}
	for i := range a.data {
		if math.Abs(a.data[i]-b.data[i]) > tol {
			return false, nil
		}
	}

	return true, nil
}
