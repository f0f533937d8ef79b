package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Array internals (strides, odometer) are unexported, so these tests live
// in-package, mirroring how the broadcast kernels are actually called.

// TestNewArray_ShapeValidation pins constructor error behavior.
func TestNewArray_ShapeValidation(t *testing.T) {
	_, err := NewArray([]float64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrBadShape, "3 elements cannot fill 2x2")

	_, err = NewArray([]float64{1}, -1)
	assert.ErrorIs(t, err, ErrBadShape)

	arr, err := NewArray(nil)
	require.NoError(t, err, "an empty 1-D array is legal")
	assert.Equal(t, 0, arr.Size())

	arr, err = NewArray([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, arr.Shape())
	assert.Equal(t, 6, arr.Size())
}

// TestArray_At covers multi-index addressing and its failure modes.
func TestArray_At(t *testing.T) {
	arr, err := NewArray([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	v, err := arr.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = arr.At(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = arr.At(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange, "rank mismatch is an index error")

	s := Scalar(7)
	v, err = s.At()
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

// TestArray_ScalarAccess checks the scalar view of rank-0 arrays.
func TestArray_ScalarAccess(t *testing.T) {
	s := Scalar(2.5)
	assert.True(t, s.IsScalar())
	assert.Equal(t, 0, s.Rank())

	v, err := s.ScalarValue()
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	arr, _ := NewArray([]float64{1, 2})
	_, err = arr.ScalarValue()
	assert.ErrorIs(t, err, ErrNotScalar)
}

// TestBroadcastShape exercises the right-aligned shape resolution rules.
func TestBroadcastShape(t *testing.T) {
	cases := []struct {
		a, b, want []int
	}{
		{[]int{2, 3}, []int{2, 3}, []int{2, 3}},
		{[]int{2, 3}, []int{3}, []int{2, 3}},
		{[]int{2, 1}, []int{1, 4}, []int{2, 4}},
		{[]int{}, []int{5}, []int{5}},
		{[]int{4, 1, 6}, []int{2, 6}, []int{4, 2, 6}},
	}
	for _, tc := range cases {
		got, err := broadcastShape(tc.a, tc.b)
		require.NoError(t, err, "%v x %v", tc.a, tc.b)
		assert.Equal(t, tc.want, got, "%v x %v", tc.a, tc.b)
	}

	_, err := broadcastShape([]int{2, 3}, []int{4, 3})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

// TestBroadcastApply_RowAcrossMatrix: a 1-D row combines with each row of
// a 2-D matrix, the classic column-calibration pattern.
func TestBroadcastApply_RowAcrossMatrix(t *testing.T) {
	m, _ := NewArray([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	row, _ := NewArray([]float64{10, 20, 30})

	out, err := broadcastApply(m, row, func(x, y float64) float64 { return x + y })
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, out.Shape())
	assert.Equal(t, []float64{11, 22, 33, 14, 25, 36}, out.Data())
}

// TestBroadcastApply_ColumnAgainstRow: (2,1) x (1,3) fans out to (2,3).
func TestBroadcastApply_ColumnAgainstRow(t *testing.T) {
	col, _ := NewArray([]float64{1, 2}, 2, 1)
	row, _ := NewArray([]float64{10, 20, 30}, 1, 3)

	out, err := broadcastApply(col, row, func(x, y float64) float64 { return x * y })
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, out.Shape())
	assert.Equal(t, []float64{10, 20, 30, 20, 40, 60}, out.Data())
}

// TestBroadcastApply_ScalarOperand: a rank-0 array reaches every element.
func TestBroadcastApply_ScalarOperand(t *testing.T) {
	m, _ := NewArray([]float64{1, 2, 3, 4}, 2, 2)

	out, err := broadcastApply(m, Scalar(10), func(x, y float64) float64 { return x * y })
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 40}, out.Data())
	assert.Equal(t, []int{2, 2}, out.Shape())
}

// TestArray_Immutability: accessors hand out copies, operations allocate.
func TestArray_Immutability(t *testing.T) {
	arr, _ := NewArray([]float64{1, 2, 3})
	leaked := arr.Data()
	leaked[0] = 99

	v, _ := arr.At(0)
	assert.Equal(t, 1.0, v, "Data must return a copy")

	shape := arr.Shape()
	shape[0] = 42
	assert.Equal(t, []int{3}, arr.Shape(), "Shape must return a copy")
}
