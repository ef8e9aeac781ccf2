// SPDX-License-Identifier: MIT

package quantity

import "fmt"

// Dim returns value units of the named unit, i.e. value × r.LookupUnit(unit).
// Lookup errors from r are returned unchanged.
func Dim(r Resolver, value float64, unit string) (Value, error) {
	u, err := r.LookupUnit(unit)
	if err != nil {
		return Value{}, err
	}
	return u.Scale(value), nil
}

// DimOf returns value units of u.
func DimOf(value float64, u Value) Value {
	return u.Scale(value)
}

// ValueIn expresses v as a plain number of the named unit.
// v and the unit must share dimensions.
//
// Errors:
//   - lookup errors from r, unchanged.
//   - ErrDimensionMismatch (as *MismatchError, Op "in <unit>").
func ValueIn(r Resolver, v Value, unit string) (float64, error) {
	u, err := r.LookupUnit(unit)
	if err != nil {
		return 0, err
	}
	if v.dims != u.dims {
		return 0, mismatch(fmt.Sprintf("in %s", unit), v.dims, u.dims)
	}
	return v.mag / u.mag, nil
}

// In is the method form of ValueIn.
func (v Value) In(r Resolver, unit string) (float64, error) {
	return ValueIn(r, v, unit)
}
