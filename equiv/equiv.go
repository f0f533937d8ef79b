// SPDX-License-Identifier: MIT
package equiv

import (
	"fmt"

	"github.com/katalvlaran/quanta/constants"
	"github.com/katalvlaran/quanta/dim"
	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/unit"
)

// Dimension vectors the rules bridge. Energy is mass·length²/time².
var (
	lengthDim = dim.Length
	freqDim   = dim.Zero.Div(dim.Time)
	energyDim = dim.Mass.Mul(dim.Length.Pow(dim.Int(2))).Div(dim.Time.Pow(dim.Int(2)))
)

// Spectral returns the light-in-vacuum equivalency bridging wavelength,
// frequency and photon energy (ν = c/λ, E = hν). All bridges operate on
// SI-base magnitudes (metres, hertz, joules).
func Spectral() quantity.Equivalency {
	c := baseValue(constants.C())
	h := baseValue(constants.H())

	return quantity.Bundle("spectral",
		quantity.Rule{
			Label: "wavelength-frequency",
			From:  lengthDim, To: freqDim,
			Forward:  func(lambda float64) float64 { return c / lambda },
			Backward: func(nu float64) float64 { return c / nu },
		},
		quantity.Rule{
			Label: "wavelength-energy",
			From:  lengthDim, To: energyDim,
			Forward:  func(lambda float64) float64 { return h * c / lambda },
			Backward: func(e float64) float64 { return h * c / e },
		},
		quantity.Rule{
			Label: "frequency-energy",
			From:  freqDim, To: energyDim,
			Forward:  func(nu float64) float64 { return h * nu },
			Backward: func(e float64) float64 { return e / h },
		},
	)
}

// DimensionlessAngle returns the rule treating angle as dimensionless:
// whenever source and target dimensions differ by a pure angle exponent
// (any rational power, either direction), the bridge is the identity on
// base magnitudes, because the radian carries scale 1.
func DimensionlessAngle() quantity.Equivalency {
	identity := func(v float64) float64 { return v }

	return quantity.ResolveFunc("dimensionless-angle",
		func(from, to dim.Vector) (func(float64) float64, bool) {
			if _, ok := from.Div(to).PureAxis(dim.BaseAngle); ok {
				return identity, true
			}

			return nil, false
		})
}

// Parallax returns the annual-parallax equivalency between a parallax
// angle and a distance: d = 1 AU / tan(θ) ≈ 1 AU/θ for the tiny angles
// involved, which is the classical "one parsec per arcsecond" rule. The
// bridge is its own inverse.
func Parallax() quantity.Equivalency {
	reg := unit.Builtin()
	// 1 pc·arcsec expressed in base units: m·rad.
	k := reg.MustLookup("pc").Scale() * reg.MustLookup("arcsec").Scale()
	invert := func(v float64) float64 { return k / v }

	return quantity.Rule{
		Label: "parallax",
		From:  dim.Angle, To: lengthDim,
		Forward:  invert,
		Backward: invert,
	}
}

// ThermalEnergy returns the temperature ↔ energy equivalency E = k_B·T,
// the usual shorthand behind "a 10⁷ K plasma is a keV plasma".
func ThermalEnergy() quantity.Equivalency {
	kb := baseValue(constants.KB())

	return quantity.Rule{
		Label: "thermal-energy",
		From:  dim.Temperature, To: energyDim,
		Forward:  func(t float64) float64 { return kb * t },
		Backward: func(e float64) float64 { return e / kb },
	}
}

// baseValue extracts a scalar constant's SI-base magnitude. The constants
// used here are scalar by construction; anything else is a build defect.
func baseValue(q quantity.Quantity) float64 {
	v, err := q.Decompose().Value()
	if err != nil {
		panic(fmt.Sprintf("equiv: non-scalar constant: %v", err))
	}

	return v
}
