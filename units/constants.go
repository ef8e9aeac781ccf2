// SPDX-License-Identifier: MIT

package units

import (
	"sort"

	"github.com/katalvlaran/dunits/quantity"
)

// DefineConstant stores a named physical constant. Constants are kept apart
// from units: LookupUnit never sees them. Redefinition overwrites.
func (r *Registry) DefineConstant(name string, v quantity.Value) error {
	if name == "" {
		return registryErrorf("DefineConstant", ErrEmptyName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.consts[name]; ok {
		r.logger.Debug("redefining constant", "name", name, "value", v)
	}
	r.consts[name] = v
	return nil
}

// Constant returns the named constant.
//
// Errors:
//   - ErrUnknownConstant if name was never defined.
func (r *Registry) Constant(name string) (quantity.Value, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.consts[name]
	if !ok {
		return quantity.Value{}, registryErrorf("Constant "+name, ErrUnknownConstant)
	}
	return v, nil
}

// Constants returns the sorted names of all defined constants.
func (r *Registry) Constants() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.consts))
	for n := range r.consts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
