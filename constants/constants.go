// SPDX-License-Identifier: MIT
package constants

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/unit"
)

// ErrUnknownConstant indicates a Lookup key that names no constant.
var ErrUnknownConstant = errors.New("constants: unknown constant")

// Constant is one table entry. Quantity behaves like any other Quantity;
// Uncertainty is the one-sigma uncertainty in the same unit, 0 for exact
// (defined) values.
type Constant struct {
	Name        string
	Symbol      string
	Quantity    quantity.Quantity
	Uncertainty float64
	Reference   string
}

//go:embed constants.yaml
var datasetYAML []byte

// yamlConstants mirrors the dataset layout.
type yamlConstants struct {
	Constants []yamlConstantDef `yaml:"constants"`
}

type yamlConstantDef struct {
	Name        string  `yaml:"name"`
	Symbol      string  `yaml:"symbol"`
	Value       float64 `yaml:"value"`
	Unit        string  `yaml:"unit"`
	Uncertainty float64 `yaml:"uncertainty"`
	Reference   string  `yaml:"reference"`
}

var (
	tableOnce sync.Once
	bySymbol  map[string]Constant
	byName    map[string]Constant
	ordered   []Constant
)

// buildTable parses the embedded dataset. Unit expressions resolve
// against the builtin registry; a malformed embedded dataset is a build
// defect and panics at first use.
func buildTable() {
	var doc yamlConstants
	if err := yaml.Unmarshal(datasetYAML, &doc); err != nil {
		panic(fmt.Sprintf("constants: embedded dataset is broken: %v", err))
	}
	reg := unit.Builtin()
	bySymbol = make(map[string]Constant, len(doc.Constants))
	byName = make(map[string]Constant, len(doc.Constants))
	for _, row := range doc.Constants {
		u, err := unit.Parse(reg, row.Unit)
		if err != nil {
			panic(fmt.Sprintf("constants: %s: bad unit %q: %v", row.Symbol, row.Unit, err))
		}
		c := Constant{
			Name:        row.Name,
			Symbol:      row.Symbol,
			Quantity:    quantity.New(row.Value, u),
			Uncertainty: row.Uncertainty,
			Reference:   row.Reference,
		}
		bySymbol[c.Symbol] = c
		byName[c.Name] = c
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Symbol < ordered[j].Symbol })
}

// Lookup finds a constant by symbol ("G") or long name ("gravitational
// constant"). Fails with ErrUnknownConstant.
func Lookup(key string) (Constant, error) {
	tableOnce.Do(buildTable)
	if c, ok := bySymbol[key]; ok {
		return c, nil
	}
	if c, ok := byName[key]; ok {
		return c, nil
	}

	return Constant{}, fmt.Errorf("Lookup(%q): %w", key, ErrUnknownConstant)
}

// All returns every constant, sorted by symbol.
func All() []Constant {
	tableOnce.Do(buildTable)
	out := make([]Constant, len(ordered))
	copy(out, ordered)

	return out
}

// mustQuantity backs the typed accessors; the symbols below are part of
// the embedded dataset, so a miss is a build defect.
func mustQuantity(symbol string) quantity.Quantity {
	c, err := Lookup(symbol)
	if err != nil {
		panic(err)
	}

	return c.Quantity
}

// G is the Newtonian constant of gravitation.
func G() quantity.Quantity { return mustQuantity("G") }

// C is the speed of light in vacuum (exact).
func C() quantity.Quantity { return mustQuantity("c") }

// H is the Planck constant (exact).
func H() quantity.Quantity { return mustQuantity("h") }

// Hbar is the reduced Planck constant.
func Hbar() quantity.Quantity { return mustQuantity("hbar") }

// KB is the Boltzmann constant (exact).
func KB() quantity.Quantity { return mustQuantity("k_B") }

// SigmaSB is the Stefan–Boltzmann constant.
func SigmaSB() quantity.Quantity { return mustQuantity("sigma_sb") }

// NA is the Avogadro constant (exact).
func NA() quantity.Quantity { return mustQuantity("N_A") }

// RGas is the molar gas constant.
func RGas() quantity.Quantity { return mustQuantity("R") }

// E is the elementary charge (exact).
func E() quantity.Quantity { return mustQuantity("e") }

// Me is the electron mass.
func Me() quantity.Quantity { return mustQuantity("m_e") }

// Mp is the proton mass.
func Mp() quantity.Quantity { return mustQuantity("m_p") }

// Eps0 is the vacuum electric permittivity.
func Eps0() quantity.Quantity { return mustQuantity("eps0") }

// AU is the astronomical unit (exact).
func AU() quantity.Quantity { return mustQuantity("au") }

// MSun is the nominal solar mass.
func MSun() quantity.Quantity { return mustQuantity("M_sun") }

// LSun is the nominal solar luminosity (exact, IAU 2015).
func LSun() quantity.Quantity { return mustQuantity("L_sun") }

// RSun is the nominal solar radius.
func RSun() quantity.Quantity { return mustQuantity("R_sun") }

// MEarth is the Earth mass.
func MEarth() quantity.Quantity { return mustQuantity("M_earth") }

// REarth is the nominal Earth equatorial radius.
func REarth() quantity.Quantity { return mustQuantity("R_earth") }
