// SPDX-License-Identifier: MIT
// Package unit: the builtin unit table.
//
// The SI + astronomy unit set ships as an embedded YAML document rather
// than a wall of Go literals: the dataset is data, reviewable as data, and
// the loader is the same code path a caller would use for a custom system.
// Builtin() builds the registry exactly once; a malformed embedded dataset
// is a build defect and panics at first use.
package unit

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quanta/dim"
)

//go:embed units.yaml
var builtinYAML []byte

var (
	builtinOnce sync.Once
	builtinReg  *Registry
)

// Builtin returns the shared registry of SI and astronomy units. The
// registry is built on first call and must be treated as read-only;
// callers wanting to Define their own units should start from
// NewRegistry (or maintain a second registry alongside).
func Builtin() *Registry {
	builtinOnce.Do(func() {
		reg, err := LoadRegistry(builtinYAML)
		if err != nil {
			panic(fmt.Sprintf("unit: embedded dataset is broken: %v", err))
		}
		builtinReg = reg
	})

	return builtinReg
}

// yamlUnits mirrors the on-disk dataset layout.
type yamlUnits struct {
	Units []yamlUnitDef `yaml:"units"`
}

// yamlUnitDef is one dataset row. Dimension maps base-dimension names
// (length, mass, time, temperature, current, luminosity, amount, angle)
// to integer exponents.
type yamlUnitDef struct {
	Symbol     string         `yaml:"symbol"`
	Name       string         `yaml:"name"`
	Dimension  map[string]int `yaml:"dimension"`
	Scale      float64        `yaml:"scale"`
	Prefixable bool           `yaml:"prefixable"`
}

// dimensionKeys maps dataset keys onto dim axes.
var dimensionKeys = map[string]dim.Base{
	"length":      dim.BaseLength,
	"mass":        dim.BaseMass,
	"time":        dim.BaseTime,
	"temperature": dim.BaseTemperature,
	"current":     dim.BaseCurrent,
	"luminosity":  dim.BaseLuminous,
	"amount":      dim.BaseAmount,
	"angle":       dim.BaseAngle,
}

// LoadRegistry builds a registry from a YAML unit dataset (the builtin
// units.yaml documents the layout). Unknown dimension keys and invalid
// scales fail with ErrBadDefinition; duplicate symbols with
// ErrDuplicateUnit.
func LoadRegistry(data []byte) (*Registry, error) {
	var doc yamlUnits
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unit: parse dataset: %w", err)
	}

	reg := NewRegistry()
	for _, row := range doc.Units {
		vec, err := dimensionFromKeys(row.Dimension)
		if err != nil {
			return nil, fmt.Errorf("unit: dataset row %q: %w", row.Symbol, err)
		}
		def := Def{
			Symbol:     row.Symbol,
			Name:       row.Name,
			Dim:        vec,
			Scale:      row.Scale,
			Prefixable: row.Prefixable,
		}
		if err = reg.Define(def); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// dimensionFromKeys folds a {name: exponent} map into a dim.Vector.
func dimensionFromKeys(keys map[string]int) (dim.Vector, error) {
	exps := make(map[dim.Base]dim.Ratio, len(keys))
	for name, exp := range keys {
		b, ok := dimensionKeys[name]
		if !ok {
			return dim.Vector{}, fmt.Errorf("unknown dimension %q: %w", name, ErrBadDefinition)
		}
		exps[b] = dim.Int(exp)
	}

	return dim.New(exps), nil
}
