// SPDX-License-Identifier: MIT
// Package quantity: the equivalency seam.
//
// An Equivalency is a conversion rule between otherwise-incommensurable
// dimension vectors. Rules are plain values handed to ConvertTo per call;
// the package keeps no rule registry of any kind. Concrete astrophysical
// rules (spectral, dimensionless-angle, parallax, thermal) live in the
// equiv package; this file defines only the contract and the generic
// building blocks.
package quantity

import "github.com/katalvlaran/quanta/dim"

// Equivalency bridges pairs of dimension vectors. Resolve inspects the
// source and target dimensions and, when the rule applies, returns the
// bridge function mapping base-SI source magnitudes to base-SI target
// magnitudes. Resolve must be pure: same inputs, same answer, no state.
type Equivalency interface {
	// Name identifies the rule in diagnostics, e.g. "spectral".
	Name() string

	// Resolve returns the base-magnitude bridge for from→to, or ok=false
	// when the rule does not cover that pair.
	Resolve(from, to dim.Vector) (bridge func(float64) float64, ok bool)
}

// Rule is the pair-form Equivalency: a fixed (From, To) dimension pair
// with a forward bridge and an optional backward bridge. A nil Backward
// makes the rule one-way.
type Rule struct {
	// Label names the rule for diagnostics.
	Label string

	// From and To are the bridged dimension vectors.
	From, To dim.Vector

	// Forward maps base-SI magnitudes of From to base-SI magnitudes of To.
	Forward func(float64) float64

	// Backward maps To back to From; nil means the rule is directional.
	Backward func(float64) float64
}

// Name implements Equivalency.
func (r Rule) Name() string { return r.Label }

// Resolve implements Equivalency for the fixed pair (both ways when
// Backward is set).
func (r Rule) Resolve(from, to dim.Vector) (func(float64) float64, bool) {
	if from.Equal(r.From) && to.Equal(r.To) && r.Forward != nil {
		return r.Forward, true
	}
	if r.Backward != nil && from.Equal(r.To) && to.Equal(r.From) {
		return r.Backward, true
	}

	return nil, false
}

// Bundle groups several rules under one name; Resolve tries them in
// order. Used for families like the spectral equivalency, which bridges
// wavelength, frequency and photon energy pairwise.
func Bundle(name string, rules ...Rule) Equivalency {
	return bundle{name: name, rules: rules}
}

type bundle struct {
	name  string
	rules []Rule
}

func (b bundle) Name() string { return b.name }

func (b bundle) Resolve(from, to dim.Vector) (func(float64) float64, bool) {
	for _, r := range b.rules {
		if f, ok := r.Resolve(from, to); ok {
			return f, ok
		}
	}

	return nil, false
}

// ResolveFunc adapts a bare resolver function into an Equivalency; used
// for rules that match families of dimension vectors rather than a fixed
// pair (the dimensionless-angle rule strips *any* pure angle exponent).
func ResolveFunc(name string, fn func(from, to dim.Vector) (func(float64) float64, bool)) Equivalency {
	return funcEquivalency{name: name, fn: fn}
}

type funcEquivalency struct {
	name string
	fn   func(from, to dim.Vector) (func(float64) float64, bool)
}

func (f funcEquivalency) Name() string { return f.name }

func (f funcEquivalency) Resolve(from, to dim.Vector) (func(float64) float64, bool) {
	return f.fn(from, to)
}
