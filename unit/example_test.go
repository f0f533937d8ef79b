package unit_test

import (
	"fmt"

	"github.com/katalvlaran/quanta/dim"
	"github.com/katalvlaran/quanta/unit"
)

// ExampleRegistry_Lookup shows plain and prefixed resolution against the
// builtin table.
func ExampleRegistry_Lookup() {
	reg := unit.Builtin()

	km, _ := reg.Lookup("km")
	fmt.Println(km, "scale:", km.Scale())

	_, err := reg.Lookup("florb")
	fmt.Println(err)
	// Output:
	// km scale: 1000
	// Lookup("florb"): unit: unknown unit
}

// ExampleUnit_Div builds the astronomer's favourite velocity unit and
// round-trips it through Parse.
func ExampleUnit_Div() {
	reg := unit.Builtin()
	speed := reg.MustLookup("km").Div(reg.MustLookup("s"))

	fmt.Println("unit:", speed)
	back, _ := unit.Parse(reg, speed.String())
	fmt.Println("round-trips:", back.Equal(speed))
	// Output:
	// unit: km / s
	// round-trips: true
}

// ExampleUnit_ToBase decomposes a cgs energy unit to SI base form.
func ExampleUnit_ToBase() {
	reg := unit.Builtin()
	erg := reg.MustLookup("erg")

	fmt.Println("erg in SI base:", erg.ToBase())
	fmt.Println("erg scale:", erg.Scale())
	// Output:
	// erg in SI base: m^2 kg / s^2
	// erg scale: 1e-07
}

// ExampleUnit_Pow shows fractional exponents surviving display and parse.
func ExampleUnit_Pow() {
	reg := unit.Builtin()
	root := reg.MustLookup("m").Pow(dim.NewRatio(1, 2))

	fmt.Println(root)
	// Output:
	// m^(1/2)
}
