// SPDX-License-Identifier: MIT

package units

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/dunits/quantity"
)

// Family groups units by measurement system.
type Family int

const (
	// SI covers SI base and derived units and SI-accepted units.
	SI Family = iota

	// Imperial covers inch, foot, yard, mile, psi.
	Imperial

	// Standard covers other customary units (minute, atm, light_year, ...).
	Standard
)

// String returns "si", "imperial" or "standard".
func (f Family) String() string {
	switch f {
	case SI:
		return "si"
	case Imperial:
		return "imperial"
	case Standard:
		return "standard"
	default:
		return "unknown"
	}
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(s string) (Family, bool) {
	switch s {
	case "si":
		return SI, true
	case "imperial":
		return Imperial, true
	case "standard":
		return Standard, true
	default:
		return 0, false
	}
}

// Entry is a snapshot of a canonical registry record.
type Entry struct {
	// Value is one of this unit, in SI base magnitudes.
	Value quantity.Value

	// Family is the measurement system the unit belongs to.
	Family Family

	// Abbrevs lists abbreviations registered through DefineAbbreviation,
	// in registration order.
	Abbrevs []string
}

// entry is the shared record stored in the name table. Every alias and
// abbreviation points at the same *entry as its base name.
type entry struct {
	value   quantity.Value
	family  Family
	abbrevs []string
}

// Registry maps unit names, aliases and abbreviations to canonical values
// and resolves SI-prefixed names on demand. Constants live in a separate
// table and never resolve as units.
//
// A Registry is safe for concurrent use. It is intended to be populated once
// (see NewSI) and read thereafter; Define* calls take a write lock.
type Registry struct {
	mu     sync.RWMutex
	units  map[string]*entry
	consts map[string]quantity.Value
	logger *log.Logger
}

// New returns an empty Registry. Use NewSI for one preloaded with the
// standard catalog.
func New(opts ...Option) *Registry {
	r := &Registry{
		units:  make(map[string]*entry),
		consts: make(map[string]quantity.Value),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
