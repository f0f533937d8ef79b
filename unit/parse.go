// SPDX-License-Identifier: MIT
package unit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/quanta/dim"
)

// Parse reads a unit expression against the given registry and returns the
// unit it denotes. It accepts everything String emits, plus a few humane
// variants:
//
//	"km / s"        quotient form (each "/" negates the following term)
//	"km s^-1"       explicit negative exponents
//	"kg*m^2/s^2"    "*" as separator, "/" without spaces
//	"m^(1/2)"       rational exponents (parentheses required, so that a
//	                bare "/" always separates terms)
//	"" or "1"       the dimensionless unit
//
// Unknown symbols surface ErrUnknownUnit; anything structurally wrong
// surfaces ErrBadUnitExpr. Prefix resolution applies (so "GHz" parses as
// long as "Hz" is registered prefixable).
func Parse(reg *Registry, expr string) (Unit, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return Unit{}, fmt.Errorf("Parse(%q): %w", expr, err)
	}

	out := Dimensionless
	divide := false // true when the previous token was "/"
	sawTerm := false
	for _, tok := range toks {
		if tok == "/" {
			if divide {
				return Unit{}, fmt.Errorf("Parse(%q): doubled slash: %w", expr, ErrBadUnitExpr)
			}
			divide = true
			continue
		}
		term, termErr := parseTerm(reg, tok)
		if termErr != nil {
			return Unit{}, fmt.Errorf("Parse(%q): %w", expr, termErr)
		}
		if divide {
			out = out.Div(term)
			divide = false
		} else {
			out = out.Mul(term)
		}
		sawTerm = true
	}
	if divide {
		return Unit{}, fmt.Errorf("Parse(%q): trailing slash: %w", expr, ErrBadUnitExpr)
	}
	if !sawTerm {
		return Dimensionless, nil
	}

	return out, nil
}

// MustParse is Parse for expressions known at compile time; it panics on
// error and exists for tests and example programs.
func MustParse(reg *Registry, expr string) Unit {
	u, err := Parse(reg, expr)
	if err != nil {
		panic(err)
	}

	return u
}

// tokenize splits an expression into term and "/" tokens. "*" and
// whitespace both separate terms; "/" separates and is kept as a token.
func tokenize(expr string) ([]string, error) {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	depth := 0 // inside ^(a/b) a slash is part of the exponent
	for _, r := range expr {
		switch {
		case r == '(':
			depth++
			cur.WriteRune(r)
		case r == ')':
			depth--
			if depth < 0 {
				return nil, ErrBadUnitExpr
			}
			cur.WriteRune(r)
		case depth == 0 && (r == ' ' || r == '\t' || r == '*'):
			flush()
		case depth == 0 && r == '/':
			flush()
			toks = append(toks, "/")
		default:
			cur.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, ErrBadUnitExpr
	}
	flush()

	return toks, nil
}

// parseTerm reads one "sym" / "sym^exp" / "1" token.
func parseTerm(reg *Registry, tok string) (Unit, error) {
	if tok == "1" {
		return Dimensionless, nil
	}
	sym, expPart := tok, ""
	if i := strings.IndexByte(tok, '^'); i >= 0 {
		sym, expPart = tok[:i], tok[i+1:]
	}
	if sym == "" {
		return Unit{}, ErrBadUnitExpr
	}

	u, err := reg.Lookup(sym)
	if err != nil {
		return Unit{}, err
	}
	if expPart == "" {
		return u, nil
	}

	exp, err := parseExponent(expPart)
	if err != nil {
		return Unit{}, err
	}

	return u.Pow(exp), nil
}

// parseExponent reads "2", "-2", "(1/2)", "(-1/2)" or "1/2".
func parseExponent(s string) (dim.Ratio, error) {
	s = strings.TrimPrefix(strings.TrimSuffix(s, ")"), "(")
	if s == "" {
		return dim.Ratio{}, ErrBadUnitExpr
	}
	numStr, denStr, frac := strings.Cut(s, "/")
	num, err := strconv.Atoi(numStr)
	if err != nil {
		return dim.Ratio{}, fmt.Errorf("exponent %q: %w", s, ErrBadUnitExpr)
	}
	if !frac {
		return dim.Int(num), nil
	}
	den, err := strconv.Atoi(denStr)
	if err != nil || den == 0 {
		return dim.Ratio{}, fmt.Errorf("exponent %q: %w", s, ErrBadUnitExpr)
	}

	return dim.NewRatio(num, den), nil
}
