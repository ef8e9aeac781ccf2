// SPDX-License-Identifier: MIT

package quantity_test

import (
	"testing"

	"github.com/katalvlaran/dunits/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDim(t *testing.T) {
	v, err := quantity.Dim(resolver, 5, "km")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, v.Magnitude())
	assert.Equal(t, lengthDim, v.Dimensions())

	_, err = quantity.Dim(resolver, 1, "furlong")
	assert.ErrorIs(t, err, errNoUnit, "resolver errors pass through unchanged")
}

func TestDimOf(t *testing.T) {
	km := quantity.New(1000, lengthDim)
	assert.True(t, quantity.DimOf(2, km).Equal(meter.Scale(2000)))
}

func TestValueIn(t *testing.T) {
	km, err := quantity.Dim(resolver, 1, "km")
	require.NoError(t, err)

	got, err := quantity.ValueIn(resolver, km, "m")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)

	got, err = km.In(resolver, "km")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestValueIn_Mismatch(t *testing.T) {
	_, err := quantity.ValueIn(resolver, meter, "s")
	require.ErrorIs(t, err, quantity.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "in s")
}

func TestValueIn_UnknownUnit(t *testing.T) {
	_, err := meter.In(resolver, "parsec")
	assert.ErrorIs(t, err, errNoUnit)
}

// TestValueIn_RoundTrip checks every table unit projects back to 1.
func TestValueIn_RoundTrip(t *testing.T) {
	for name := range resolver {
		u, err := resolver.LookupUnit(name)
		require.NoError(t, err)
		got, err := u.Mul(quantity.Scalar(1)).In(resolver, name)
		require.NoError(t, err)
		assert.Equal(t, 1.0, got, name)
	}
}
