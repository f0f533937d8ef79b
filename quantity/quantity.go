// SPDX-License-Identifier: MIT
package quantity

import (
	"fmt"

	"github.com/katalvlaran/quanta/unit"
)

// Quantity is an immutable magnitude+unit pair. The zero value is the
// dimensionless scalar 0. Construct with New, FromSlice or FromArray;
// every operation returns a new Quantity.
type Quantity struct {
	mag *Array
	u   unit.Unit
}

// New returns the scalar quantity v·u.
func New(v float64, u unit.Unit) Quantity {
	return Quantity{mag: Scalar(v), u: u}
}

// FromSlice returns a 1-D quantity over a copy of vals.
func FromSlice(vals []float64, u unit.Unit) Quantity {
	arr, _ := NewArray(vals) // a bare slice always carries a valid shape

	return Quantity{mag: arr, u: u}
}

// FromArray returns a quantity over a copy of arr with unit u.
func FromArray(arr *Array, u unit.Unit) Quantity {
	return Quantity{mag: arr.clone(), u: u}
}

// magnitude returns the backing array, materializing the zero value's
// implicit scalar 0 so method receivers never chase a nil pointer.
func (q Quantity) magnitude() *Array {
	if q.mag == nil {
		return Scalar(0)
	}

	return q.mag
}

// Unit returns the quantity's unit.
func (q Quantity) Unit() unit.Unit { return q.u }

// Array returns a copy of the magnitude array, unit stripped. This is the
// rendering seam: plotting and formatting collaborators take Array (or
// Values) plus Unit().Label() and never touch quantity internals.
func (q Quantity) Array() *Array { return q.magnitude().clone() }

// Values returns a copy of the flat magnitude buffer.
func (q Quantity) Values() []float64 { return q.magnitude().Data() }

// Shape returns the magnitude shape (empty for a scalar).
func (q Quantity) Shape() []int { return q.magnitude().Shape() }

// Value returns the scalar magnitude in the quantity's own unit, or
// ErrNotScalar for array-shaped magnitudes.
func (q Quantity) Value() (float64, error) {
	return q.magnitude().ScalarValue()
}

// String renders a scalar as "220 km / s" and an array by shape, e.g.
// "[4 5] Jy". Deterministic; the unit part is exactly Unit().String().
func (q Quantity) String() string {
	m := q.magnitude()
	label := q.u.String()
	if v, err := m.ScalarValue(); err == nil {
		if label == "" {
			return fmt.Sprintf("%g", v)
		}

		return fmt.Sprintf("%g %s", v, label)
	}
	if label == "" {
		return fmt.Sprintf("%v", m.Shape())
	}

	return fmt.Sprintf("%v %s", m.Shape(), label)
}
