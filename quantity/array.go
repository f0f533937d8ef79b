// SPDX-License-Identifier: MIT
// Package quantity: the Array magnitude type.
//
// Array is a flat, row-major float64 buffer plus a shape — the same
// storage discipline as a dense matrix, generalized to arbitrary rank.
// Rank 0 is a scalar with exactly one element. Arrays are immutable by
// convention: every operation allocates its output and no method writes
// through the receiver.
package quantity

import (
	"fmt"
)

// Array is an n-dimensional array of float64 in row-major order.
type Array struct {
	shape []int // empty for a scalar
	data  []float64
}

// Scalar returns the rank-0 array holding v.
func Scalar(v float64) *Array {
	return &Array{data: []float64{v}}
}

// NewArray builds an array over a copy of data with the given shape.
// With no shape arguments the result is a 1-D array of len(data).
// Zero-length axes are legal (an empty dataset is still an array); a
// negative axis or a shape whose element count differs from len(data)
// fails with ErrBadShape.
func NewArray(data []float64, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	size := 1
	for _, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("NewArray(shape %v): %w", shape, ErrBadShape)
		}
		size *= n
	}
	if size != len(data) {
		return nil, fmt.Errorf("NewArray: %d elements for shape %v: %w", len(data), shape, ErrBadShape)
	}

	buf := make([]float64, len(data))
	copy(buf, data)
	shp := make([]int, len(shape))
	copy(shp, shape)

	return &Array{shape: shp, data: buf}, nil
}

// Rank returns the number of axes (0 for a scalar).
func (a *Array) Rank() int { return len(a.shape) }

// Size returns the total element count (1 for a scalar).
func (a *Array) Size() int { return len(a.data) }

// Shape returns a copy of the shape (empty for a scalar).
func (a *Array) Shape() []int {
	out := make([]int, len(a.shape))
	copy(out, a.shape)

	return out
}

// Data returns a copy of the flat row-major element buffer.
func (a *Array) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// IsScalar reports whether the array holds exactly one element.
func (a *Array) IsScalar() bool { return len(a.data) == 1 }

// ScalarValue returns the single element, or ErrNotScalar.
func (a *Array) ScalarValue() (float64, error) {
	if !a.IsScalar() {
		return 0, fmt.Errorf("ScalarValue on shape %v: %w", a.shape, ErrNotScalar)
	}

	return a.data[0], nil
}

// At returns the element at the given multi-index. A scalar is addressed
// with no indices. Fails with ErrIndexOutOfRange on a rank or bounds
// violation.
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("At%v on rank %d: %w", idx, len(a.shape), ErrIndexOutOfRange)
	}
	flat := 0
	for i, n := range a.shape {
		if idx[i] < 0 || idx[i] >= n {
			return 0, fmt.Errorf("At%v on shape %v: %w", idx, a.shape, ErrIndexOutOfRange)
		}
		flat = flat*n + idx[i]
	}

	return a.data[flat], nil
}

// clone returns a deep copy.
func (a *Array) clone() *Array {
	return &Array{shape: a.Shape(), data: a.Data()}
}

// mapElem applies f element-wise into a fresh array.
func (a *Array) mapElem(f func(float64) float64) *Array {
	out := a.clone()
	for i, v := range out.data {
		out.data[i] = f(v)
	}

	return out
}

// broadcastShape resolves the common shape of a and b under right-aligned
// broadcasting: trailing axes pair up, and each pair must be equal or
// contain a 1. Fails with ErrShapeMismatch otherwise.
func broadcastShape(a, b []int) ([]int, error) {
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	out := make([]int, rank)
	for i := 1; i <= rank; i++ {
		da, db := 1, 1
		if i <= len(a) {
			da = a[len(a)-i]
		}
		if i <= len(b) {
			db = b[len(b)-i]
		}
		switch {
		case da == db:
			out[rank-i] = da
		case da == 1:
			out[rank-i] = db
		case db == 1:
			out[rank-i] = da
		default:
			return nil, fmt.Errorf("broadcast %v with %v: %w", a, b, ErrShapeMismatch)
		}
	}

	return out, nil
}

// broadcastStrides computes the element strides of an operand with shape
// src when iterated under the broadcast result shape dst: missing leading
// axes and axes of length 1 contribute stride 0 (the operand's value is
// reused along them).
func broadcastStrides(src, dst []int) []int {
	strides := make([]int, len(dst))
	stride := 1
	for i := 1; i <= len(src); i++ {
		d := len(dst) - i
		if src[len(src)-i] != 1 {
			strides[d] = stride
		}
		stride *= src[len(src)-i]
	}

	return strides
}

// broadcastApply combines a and b element-wise under broadcasting.
// The iteration is a plain odometer over the result shape with
// per-operand strides; loops are deterministic and the only allocation
// is the output buffer.
func broadcastApply(a, b *Array, f func(x, y float64) float64) (*Array, error) {
	shape, err := broadcastShape(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	size := 1
	for _, n := range shape {
		size *= n
	}
	out := &Array{shape: shape, data: make([]float64, size)}

	// Fast path: identical shapes need no odometer.
	if sameShape(a.shape, b.shape) {
		for i := range out.data {
			out.data[i] = f(a.data[i], b.data[i])
		}

		return out, nil
	}

	sa := broadcastStrides(a.shape, shape)
	sb := broadcastStrides(b.shape, shape)
	idx := make([]int, len(shape))
	ia, ib := 0, 0
	for flat := 0; flat < size; flat++ {
		out.data[flat] = f(a.data[ia], b.data[ib])

		// Advance the odometer from the innermost axis.
		for ax := len(shape) - 1; ax >= 0; ax-- {
			idx[ax]++
			ia += sa[ax]
			ib += sb[ax]
			if idx[ax] < shape[ax] {
				break
			}
			idx[ax] = 0
			ia -= sa[ax] * shape[ax]
			ib -= sb[ax] * shape[ax]
		}
	}

	return out, nil
}

// sameShape reports exact shape equality.
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
