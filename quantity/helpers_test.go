// SPDX-License-Identifier: MIT

package quantity_test

import (
	"errors"

	"github.com/katalvlaran/dunits/dimension"
	"github.com/katalvlaran/dunits/quantity"
)

var errNoUnit = errors.New("test: no such unit")

// table is a minimal quantity.Resolver backed by a map; it keeps these tests
// independent of the units package.
type table map[string]quantity.Value

func (t table) LookupUnit(name string) (quantity.Value, error) {
	v, ok := t[name]
	if !ok {
		return quantity.Value{}, errNoUnit
	}
	return v, nil
}

var (
	lengthDim = dimension.Basis(dimension.Length)
	timeDim   = dimension.Basis(dimension.Time)

	meter  = quantity.New(1, lengthDim)
	second = quantity.New(1, timeDim)

	resolver = table{
		"m":  meter,
		"km": quantity.New(1000, lengthDim),
		"s":  second,
		"ft": quantity.New(0.3048, lengthDim),
	}
)
