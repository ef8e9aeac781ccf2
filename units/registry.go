// SPDX-License-Identifier: MIT

package units

import (
	"sort"
	"strings"

	"github.com/katalvlaran/dunits/dimension"
	"github.com/katalvlaran/dunits/quantity"
)

// DefineUnit registers name as a canonical unit worth v.
// Redefining an existing name replaces it (last write wins); aliases of the
// old entry keep pointing at the old record.
//
// Errors:
//   - ErrEmptyName if name == "".
func (r *Registry) DefineUnit(name string, v quantity.Value, family Family) error {
	if name == "" {
		return registryErrorf("DefineUnit", ErrEmptyName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.units[name]; ok {
		r.logger.Debug("redefining unit", "name", name, "value", v)
	}
	r.units[name] = &entry{value: v, family: family}
	return nil
}

// DefineAlias makes name resolve to the same record as existing.
//
// Errors:
//   - ErrEmptyName if name == "".
//   - ErrUnknownUnit if existing is not registered.
func (r *Registry) DefineAlias(name, existing string) error {
	if name == "" {
		return registryErrorf("DefineAlias", ErrEmptyName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.units[existing]
	if !ok {
		return registryErrorf("DefineAlias", &LookupError{Name: existing, Err: ErrUnknownUnit})
	}
	r.units[name] = e
	return nil
}

// DefineAbbreviation behaves like DefineAlias and also records name in the
// record's abbreviation list, visible through every alias of it.
func (r *Registry) DefineAbbreviation(name, existing string) error {
	if name == "" {
		return registryErrorf("DefineAbbreviation", ErrEmptyName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.units[existing]
	if !ok {
		return registryErrorf("DefineAbbreviation", &LookupError{Name: existing, Err: ErrUnknownUnit})
	}
	e.abbrevs = append(e.abbrevs, name)
	r.units[name] = e
	return nil
}

// LookupUnit resolves name to the Value of one such unit.
//
// Resolution:
//  1. An exact registered name wins outright.
//  2. Otherwise every prefix alias that name starts with is stripped, and
//     each remainder is looked up exactly. Only one level of prefix applies.
//  3. Exactly one resolving split returns the unit scaled by the prefix
//     multiplier. None yields ErrUnknownUnit; more than one yields
//     ErrAmbiguousUnit. Candidates are never ranked.
//
// Errors are *LookupError values.
func (r *Registry) LookupUnit(name string) (quantity.Value, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.units[name]; ok {
		return e.value, nil
	}

	var (
		matches    []*entry
		prefixes   []Prefix
		candidates []string
	)
	for _, alias := range prefixAliasNames {
		rest, ok := strings.CutPrefix(name, alias)
		if !ok || rest == "" {
			continue
		}
		e, ok := r.units[rest]
		if !ok {
			continue
		}
		matches = append(matches, e)
		prefixes = append(prefixes, prefixAliases[alias])
		candidates = append(candidates, alias+"+"+rest)
	}

	switch len(matches) {
	case 0:
		return quantity.Value{}, &LookupError{Name: name, Err: ErrUnknownUnit}
	case 1:
		return matches[0].value.Scale(prefixes[0].Multiplier()), nil
	default:
		return quantity.Value{}, &LookupError{Name: name, Err: ErrAmbiguousUnit, Candidates: candidates}
	}
}

// Entry returns a snapshot of the record name resolves to exactly
// (no prefix decomposition).
func (r *Registry) Entry(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.units[name]
	if !ok {
		return Entry{}, false
	}
	return Entry{
		Value:   e.value,
		Family:  e.family,
		Abbrevs: append([]string(nil), e.abbrevs...),
	}, true
}

// Names returns every registered name, alias and abbreviation, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.units))
	for n := range r.units {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NamesWithDimensions returns the sorted names whose unit has dimensions d.
func (r *Registry) NamesWithDimensions(d dimension.Vector) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for n, e := range r.units {
		if e.value.Dimensions() == d {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// NamesInFamily returns the sorted names registered under family f.
func (r *Registry) NamesInFamily(f Family) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for n, e := range r.units {
		if e.family == f {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// Dim returns value units of the named unit.
func (r *Registry) Dim(value float64, unit string) (quantity.Value, error) {
	return quantity.Dim(r, value, unit)
}

// ValueIn expresses v as a number of the named unit.
func (r *Registry) ValueIn(v quantity.Value, unit string) (float64, error) {
	return quantity.ValueIn(r, v, unit)
}
