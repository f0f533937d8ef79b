// SPDX-License-Identifier: MIT
// Package unit: deterministic rendering of units.
//
// The contract (shared with parse.go): for every Unit u built from
// registry symbols, Parse(reg, u.String()) yields a Unit with u.Equal.
// String therefore emits only forms the parser accepts:
//
//	term      := SYM [ "^" exponent ]
//	exponent  := INT | "(" INT "/" INT ")"
//	expr      := term { " " term } { " / " term }
//
// Positive-exponent factors come first, space-separated; each
// negative-exponent factor follows its own " / " with the exponent
// rendered positive. "1" stands in for an empty numerator, "" for the
// fully dimensionless unit.
package unit

import (
	"strings"

	"github.com/katalvlaran/quanta/dim"
)

// String renders the unit, e.g. "km / s", "kg m^2 / s^2", "m^(1/2)".
// Dimensionless units with no factors render as the empty string.
func (u Unit) String() string {
	if len(u.factors) == 0 {
		return ""
	}

	var num, den []string
	for _, f := range u.factors {
		if f.Exp.Num() < 0 {
			den = append(den, renderFactor(f.Sym, f.Exp.MulRatio(dim.Int(-1))))
			continue
		}
		num = append(num, renderFactor(f.Sym, f.Exp))
	}

	var b strings.Builder
	if len(num) == 0 {
		b.WriteString("1")
	} else {
		b.WriteString(strings.Join(num, " "))
	}
	for _, d := range den {
		b.WriteString(" / ")
		b.WriteString(d)
	}

	return b.String()
}

// Label returns the human-facing label for plot axes and logs:
// String() for dimensionful units, "dimensionless" otherwise.
func (u Unit) Label() string {
	if s := u.String(); s != "" {
		return s
	}

	return "dimensionless"
}

// renderFactor emits "sym", "sym^2" or "sym^(1/2)".
func renderFactor(sym string, exp dim.Ratio) string {
	if exp.Equal(dim.Int(1)) {
		return sym
	}

	return sym + "^" + exp.String()
}
