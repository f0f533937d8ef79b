// SPDX-License-Identifier: MIT
package unit

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/quanta/dim"
)

// Def declares one named unit for Registry.Define.
type Def struct {
	// Symbol is the lookup key, e.g. "pc". Must be non-empty.
	Symbol string

	// Name is the long form, e.g. "parsec". Metadata only.
	Name string

	// Dim is the unit's dimension vector.
	Dim dim.Vector

	// Scale converts 1 Symbol to SI-base units of Dim. Must be positive
	// and finite.
	Scale float64

	// Prefixable allows SI-prefix resolution against this symbol at
	// lookup time ("km" from "m", "GHz" from "Hz").
	Prefixable bool
}

// Registry maps symbols to units. A Registry is safe for concurrent use:
// Define takes the write lock, lookups the read lock. The builtin registry
// is built once and only ever read.
//
// Explicitly passing a Registry (rather than consulting a process-global
// namespace) is deliberate: tests and embedded unit systems can run their
// own registries side by side without touching each other.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]Def
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Def)}
}

// Define registers d. Redefining a symbol with an identical definition is
// a no-op; redefining it differently fails with ErrDuplicateUnit. A
// malformed definition fails with ErrBadDefinition.
func (r *Registry) Define(d Def) error {
	if d.Symbol == "" {
		return fmt.Errorf("Define: empty symbol: %w", ErrBadDefinition)
	}
	if !(d.Scale > 0) || d.Scale > maxFiniteScale {
		return fmt.Errorf("Define(%q): scale must be positive and finite: %w", d.Symbol, ErrBadDefinition)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.defs[d.Symbol]; ok {
		if sameDef(prev, d) {
			return nil
		}

		return fmt.Errorf("Define(%q): %w", d.Symbol, ErrDuplicateUnit)
	}
	r.defs[d.Symbol] = d

	return nil
}

// maxFiniteScale rejects +Inf (and NaN via the > 0 check) in Define.
const maxFiniteScale = 1e308

// sameDef reports definitional identity (Name is metadata and ignored).
func sameDef(a, b Def) bool {
	return a.Dim.Equal(b.Dim) && a.Scale == b.Scale && a.Prefixable == b.Prefixable
}

// Lookup resolves a symbol to its unit. Resolution order:
//  1. exact registered symbol ("h" is the hour, even though "h" is also
//     the hecto prefix);
//  2. SI prefix + registered prefixable symbol ("km", "GHz", "mJy");
//  3. ErrUnknownUnit.
func (r *Registry) Lookup(sym string) (Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if d, ok := r.defs[sym]; ok {
		return newNamed(d.Symbol, d.Dim, d.Scale), nil
	}
	for _, p := range siPrefixes {
		rest, ok := cutPrefix(sym, p.sym)
		if !ok || rest == "" {
			continue
		}
		d, found := r.defs[rest]
		if !found || !d.Prefixable {
			continue
		}

		return newNamed(sym, d.Dim, d.Scale*p.factor), nil
	}

	return Unit{}, fmt.Errorf("Lookup(%q): %w", sym, ErrUnknownUnit)
}

// MustLookup is Lookup for symbols known at compile time; panics on error.
func (r *Registry) MustLookup(sym string) Unit {
	u, err := r.Lookup(sym)
	if err != nil {
		panic(err)
	}

	return u
}

// Symbols returns all registered symbols, sorted. Prefixed variants are
// not enumerated — they exist only through Lookup.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.defs))
	for sym := range r.defs {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out
}

// Describe returns the stored definition for an exact symbol (no prefix
// resolution), primarily for listings.
func (r *Registry) Describe(sym string) (Def, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.defs[sym]
	if !ok {
		return Def{}, fmt.Errorf("Describe(%q): %w", sym, ErrUnknownUnit)
	}

	return d, nil
}

// siPrefix is one SI decimal prefix. Longer symbols sort first so "da"
// wins over "d" during resolution.
type siPrefix struct {
	sym    string
	factor float64
}

// siPrefixes in resolution order (longest symbol first, then by size).
var siPrefixes = []siPrefix{
	{"da", 1e1},
	{"Y", 1e24}, {"Z", 1e21}, {"E", 1e18}, {"P", 1e15}, {"T", 1e12},
	{"G", 1e9}, {"M", 1e6}, {"k", 1e3}, {"h", 1e2},
	{"d", 1e-1}, {"c", 1e-2}, {"m", 1e-3}, {"u", 1e-6}, {"n", 1e-9},
	{"p", 1e-12}, {"f", 1e-15}, {"a", 1e-18}, {"z", 1e-21}, {"y", 1e-24},
}

// cutPrefix strips a strict prefix; the remainder must be non-empty.
func cutPrefix(s, prefix string) (string, bool) {
	if len(s) <= len(prefix) || s[:len(prefix)] != prefix {
		return "", false
	}

	return s[len(prefix):], true
}
