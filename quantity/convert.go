// SPDX-License-Identifier: MIT
package quantity

import (
	"fmt"

	"github.com/katalvlaran/quanta/unit"
)

// ConvertTo re-expresses q in target units.
//
// Resolution order (and the whole of it):
//  1. If q's and target's dimension vectors are equal, rescale directly by
//     the ratio of unit scales.
//  2. Otherwise try each supplied equivalency, in order, and apply the
//     first that bridges the two dimension vectors.
//  3. Otherwise fail with ErrUnitConversion.
//
// Equivalencies apply only to the call they are passed to. A rule that is
// physically sound in one regime ("angle is dimensionless") silently
// applied elsewhere would mask real dimensional-analysis errors, so there
// is deliberately no way to install one globally.
func (q Quantity) ConvertTo(target unit.Unit, eqs ...Equivalency) (Quantity, error) {
	if q.u.Dim().Equal(target.Dim()) {
		factor := q.u.Scale() / target.Scale()

		return Quantity{
			mag: q.magnitude().mapElem(func(v float64) float64 { return v * factor }),
			u:   target,
		}, nil
	}

	for _, eq := range eqs {
		bridge, ok := eq.Resolve(q.u.Dim(), target.Dim())
		if !ok {
			continue
		}
		// Bridges map base-SI magnitudes to base-SI magnitudes, so fold
		// the source scale in first and the target scale out last.
		inScale, outScale := q.u.Scale(), target.Scale()
		mag := q.magnitude().mapElem(func(v float64) float64 {
			return bridge(v*inScale) / outScale
		})

		return Quantity{mag: mag, u: target}, nil
	}

	return Quantity{}, fmt.Errorf("ConvertTo(%s -> %s, %d equivalencies): %s vs %s: %w",
		q.u.Label(), target.Label(), len(eqs), q.u.Dim(), target.Dim(), ErrUnitConversion)
}

// Decompose rewrites q in canonical SI base units: "km / s" becomes
// "m / s", and a composite like solMass·km²·pc/s²/m³ collapses axis by
// axis, cancelling every factor with net-zero exponent. Handy for
// checking that a derived composite is secretly a known physical
// quantity (4σ²R/G really is a mass).
func (q Quantity) Decompose() Quantity {
	out, err := q.ConvertTo(q.u.ToBase())
	if err != nil {
		// ToBase preserves the dimension vector, so the direct path
		// cannot miss; reaching this is a bug in unit composition.
		panic(fmt.Sprintf("quantity: Decompose lost its own dimension: %v", err))
	}

	return out
}

// ToNumeric strips the unit from a dimensionless quantity, folding the
// unit scale into the magnitudes (a ratio formed as km/m comes out as
// 1000·x, not x). Any non-zero dimension vector fails with
// ErrDimensionfulValue: this is the single legal escape hatch to raw
// numeric code (logarithms, special functions), and it stays checked.
func (q Quantity) ToNumeric() (*Array, error) {
	if !q.u.Dim().IsZero() {
		return nil, fmt.Errorf("ToNumeric on %s (%s): %w", q.u.Label(), q.u.Dim(), ErrDimensionfulValue)
	}
	scale := q.u.Scale()
	if scale == 1 {
		return q.magnitude().clone(), nil
	}

	return q.magnitude().mapElem(func(v float64) float64 { return v * scale }), nil
}

// Float is ToNumeric for scalar magnitudes.
func (q Quantity) Float() (float64, error) {
	arr, err := q.ToNumeric()
	if err != nil {
		return 0, err
	}

	return arr.ScalarValue()
}
