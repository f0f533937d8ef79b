package dim_test

import (
	"testing"

	"github.com/katalvlaran/quanta/dim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRatio_Normalization verifies lowest-terms reduction and sign handling.
func TestRatio_Normalization(t *testing.T) {
	assert.Equal(t, dim.NewRatio(1, 2), dim.NewRatio(2, 4), "2/4 must reduce to 1/2")
	assert.Equal(t, dim.NewRatio(-1, 2), dim.NewRatio(1, -2), "sign must move to the numerator")
	assert.Equal(t, dim.Int(0), dim.NewRatio(0, -7), "every zero is the same zero")
	assert.True(t, dim.Ratio{}.IsZero(), "zero value must behave as rational 0")
}

// TestRatio_ZeroDenominatorPanics confirms the constructor-confined panic.
func TestRatio_ZeroDenominatorPanics(t *testing.T) {
	assert.Panics(t, func() { dim.NewRatio(1, 0) }, "den == 0 is a programmer error")
}

// TestRatio_Arithmetic exercises Add/Sub/MulRatio on non-trivial fractions.
func TestRatio_Arithmetic(t *testing.T) {
	half := dim.NewRatio(1, 2)
	third := dim.NewRatio(1, 3)

	assert.True(t, half.Add(third).Equal(dim.NewRatio(5, 6)))
	assert.True(t, half.Sub(third).Equal(dim.NewRatio(1, 6)))
	assert.True(t, half.MulRatio(third).Equal(dim.NewRatio(1, 6)))
	assert.True(t, half.Add(half).Equal(dim.Int(1)), "1/2 + 1/2 must be exactly 1")
}

// TestVector_MulDiv checks the product/ratio dimension algebra component-wise.
func TestVector_MulDiv(t *testing.T) {
	speed := dim.Length.Div(dim.Time)
	accel := speed.Div(dim.Time)
	force := dim.Mass.Mul(accel)

	require.True(t, force.Exp(dim.BaseMass).Equal(dim.Int(1)))
	require.True(t, force.Exp(dim.BaseLength).Equal(dim.Int(1)))
	require.True(t, force.Exp(dim.BaseTime).Equal(dim.Int(-2)))

	// force / force collapses back to dimensionless.
	assert.True(t, force.Div(force).IsZero())
}

// TestVector_PowFractional verifies that the square root of an area is a length.
func TestVector_PowFractional(t *testing.T) {
	area := dim.Length.Pow(dim.Int(2))
	root := area.Pow(dim.NewRatio(1, 2))

	assert.True(t, root.Equal(dim.Length), "sqrt(length^2) must equal length exactly")
}

// TestVector_EqualIsExact guards against any float-tolerance creep:
// length^(1/3) three times must land exactly on length.
func TestVector_EqualIsExact(t *testing.T) {
	third := dim.Length.Pow(dim.NewRatio(1, 3))
	back := third.Pow(dim.Int(3))

	assert.True(t, back.Equal(dim.Length))
	assert.False(t, third.Equal(dim.Length))
}

// TestVector_AngleIsDistinct confirms angle never collapses to dimensionless.
func TestVector_AngleIsDistinct(t *testing.T) {
	assert.False(t, dim.Angle.IsZero(), "angle is a real base dimension")
	assert.False(t, dim.Angle.Equal(dim.Zero))
}

// TestVector_PureAxis covers the single-axis probe used by equivalencies.
func TestVector_PureAxis(t *testing.T) {
	sq := dim.Angle.Pow(dim.Int(2))
	e, ok := sq.PureAxis(dim.BaseAngle)
	require.True(t, ok)
	assert.True(t, e.Equal(dim.Int(2)))

	mixed := dim.Angle.Mul(dim.Length)
	_, ok = mixed.PureAxis(dim.BaseAngle)
	assert.False(t, ok, "angle·length is not a pure angle axis")

	_, ok = dim.Zero.PureAxis(dim.BaseAngle)
	assert.False(t, ok, "zero exponent is not a pure axis either")
}

// TestVector_String pins the deterministic rendering used in error messages.
func TestVector_String(t *testing.T) {
	energy := dim.Mass.Mul(dim.Length.Pow(dim.Int(2))).Div(dim.Time.Pow(dim.Int(2)))

	assert.Equal(t, "length^2 mass time^-2", energy.String())
	assert.Equal(t, "dimensionless", dim.Zero.String())
	assert.Equal(t, "length^(1/2)", dim.Length.Pow(dim.NewRatio(1, 2)).String())
}
