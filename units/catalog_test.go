// SPDX-License-Identifier: MIT

package units_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dunits/dimension"
	"github.com/katalvlaran/dunits/quantity"
	"github.com/katalvlaran/dunits/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSI builds an isolated catalog registry or fails the test.
func newSI(t *testing.T) *units.Registry {
	t.Helper()
	r, err := units.NewSI()
	require.NoError(t, err)
	return r
}

// mustLookup resolves name or fails the test.
func mustLookup(t *testing.T, r *units.Registry, name string) quantity.Value {
	t.Helper()
	v, err := r.LookupUnit(name)
	require.NoError(t, err, name)
	return v
}

// TestCatalog_BaseDimensions checks each base unit and its abbreviation.
func TestCatalog_BaseDimensions(t *testing.T) {
	r := newSI(t)
	cases := []struct {
		names []string
		dim   int
	}{
		{[]string{"meter", "m", "kilometer", "km", "foot", "ft", "inch", "mile", "parsec", "light_year"}, dimension.Length},
		{[]string{"gram", "g", "kg", "kilogram", "tonne", "t"}, dimension.Mass},
		{[]string{"second", "s", "minute", "hour", "day", "week", "month", "year", "ms"}, dimension.Time},
		{[]string{"kelvin", "K"}, dimension.Temperature},
		{[]string{"ampere", "amp", "A", "mA"}, dimension.Current},
		{[]string{"candela", "cd", "lumen", "lm"}, dimension.LuminousIntensity},
		{[]string{"mol", "mole", "mmol"}, dimension.AmountOfSubstance},
	}
	for _, tc := range cases {
		want := dimension.Basis(tc.dim)
		for _, name := range tc.names {
			assert.Equal(t, want, mustLookup(t, r, name).Dimensions(), name)
		}
	}
}

func TestCatalog_MeterAndAbbrev(t *testing.T) {
	r := newSI(t)
	m := mustLookup(t, r, "meter")
	assert.Equal(t, dimension.New(1, 0, 0, 0, 0, 0, 0), m.Dimensions())
	assert.True(t, m.Equal(mustLookup(t, r, "m")))
}

func TestCatalog_Kilometer(t *testing.T) {
	r := newSI(t)
	km, err := r.Dim(1, "kilometer")
	require.NoError(t, err)
	assert.Equal(t, mustLookup(t, r, "meter").Dimensions(), km.Dimensions())

	got, err := r.ValueIn(km, "meter")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)
}

// TestCatalog_GramVsKilogram checks the gram base with kilogram magnitudes.
func TestCatalog_GramVsKilogram(t *testing.T) {
	r := newSI(t)
	g := mustLookup(t, r, "gram")
	kg := mustLookup(t, r, "kg")
	assert.Equal(t, kg.Dimensions(), g.Dimensions())
	assert.Equal(t, 0.001, g.Magnitude())
	assert.Equal(t, 1.0, kg.Magnitude())
	assert.Equal(t, 1000.0, mustLookup(t, r, "tonne").Magnitude())
}

// TestCatalog_Derived checks derived SI units against their definitions.
func TestCatalog_Derived(t *testing.T) {
	r := newSI(t)
	cases := map[string]dimension.Vector{
		"hertz":     dimension.New(0, 0, -1, 0, 0, 0, 0),
		"Hz":        dimension.New(0, 0, -1, 0, 0, 0, 0),
		"newton":    dimension.New(1, 1, -2, 0, 0, 0, 0),
		"pascal":    dimension.New(-1, 1, -2, 0, 0, 0, 0),
		"joule":     dimension.New(2, 1, -2, 0, 0, 0, 0),
		"watt":      dimension.New(2, 1, -3, 0, 0, 0, 0),
		"coulomb":   dimension.New(0, 0, 1, 0, 1, 0, 0),
		"volt":      dimension.New(2, 1, -3, 0, -1, 0, 0),
		"farad":     dimension.New(-2, -1, 4, 0, 2, 0, 0),
		"ohm":       dimension.New(2, 1, -3, 0, -2, 0, 0),
		"siemens":   dimension.New(-2, -1, 3, 0, 2, 0, 0),
		"weber":     dimension.New(2, 1, -2, 0, -1, 0, 0),
		"tesla":     dimension.New(0, 1, -2, 0, -1, 0, 0),
		"henry":     dimension.New(2, 1, -2, 0, -2, 0, 0),
		"lux":       dimension.New(-2, 0, 0, 0, 0, 1, 0),
		"becquerel": dimension.New(0, 0, -1, 0, 0, 0, 0),
		"gray":      dimension.New(2, 0, -2, 0, 0, 0, 0),
		"Sv":        dimension.New(2, 0, -2, 0, 0, 0, 0),
		"kat":       dimension.New(0, 0, -1, 0, 0, 0, 1),
		"liter":     dimension.New(3, 0, 0, 0, 0, 0, 0),
		"radian":    dimension.Zero,
		"sr":        dimension.Zero,
		"degree":    dimension.Zero,
	}
	for name, want := range cases {
		assert.Equal(t, want, mustLookup(t, r, name).Dimensions(), name)
	}
}

func TestCatalog_Conversions(t *testing.T) {
	r := newSI(t)
	cases := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{1, "hour", "s", 3600},
		{1, "week", "minute", 10080},
		{1, "mile", "ft", 5280},
		{1, "foot", "in", 12},
		{1, "atm", "kPa", 101.325},
		{1, "bar", "Pa", 100000},
		{1, "L", "m3", 0.001},
		{1, "kJ", "J", 1000},
		{1, "mW", "W", 0.001},
		{1, "micron", "μm", 1},
		{180, "degree", "rad", math.Pi},
		{1, "light_second", "m", 299792458},
		{1, "g_TNT", "kJ", 4.184},
		{1, "t_tnt", "GJ", 4.184},
		{1, "year", "month", 12},
	}
	for _, tc := range cases {
		v, err := r.Dim(tc.value, tc.from)
		require.NoError(t, err, tc.from)
		got, err := r.ValueIn(v, tc.to)
		require.NoError(t, err, "%s -> %s", tc.from, tc.to)
		assert.InEpsilon(t, tc.want, got, 1e-9, "%v %s in %s", tc.value, tc.from, tc.to)
	}
}

// TestCatalog_RoundTrip checks ValueIn(LookupUnit(n)*1, n) == 1 for every name.
func TestCatalog_RoundTrip(t *testing.T) {
	r := newSI(t)
	names := r.Names()
	require.NotEmpty(t, names)
	for _, name := range names {
		u := mustLookup(t, r, name)
		got, err := r.ValueIn(u.Mul(quantity.Scalar(1)), name)
		require.NoError(t, err, name)
		assert.Equal(t, 1.0, got, name)
	}
}

func TestCatalog_AddMultiplyMeters(t *testing.T) {
	r := newSI(t)
	a, err := r.Dim(5, "meter")
	require.NoError(t, err)

	sum, err := a.Add(a)
	require.NoError(t, err)
	assert.Equal(t, mustLookup(t, r, "meter").Dimensions(), sum.Dimensions())
	assert.Equal(t, dimension.New(2, 0, 0, 0, 0, 0, 0), a.Mul(a).Dimensions())

	s, err := r.Dim(3, "second")
	require.NoError(t, err)
	_, err = a.Add(s)
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestCatalog_UnknownAndAmbiguous(t *testing.T) {
	r := newSI(t)
	_, err := r.LookupUnit("furlong")
	assert.ErrorIs(t, err, units.ErrUnknownUnit)

	// Extending an isolated catalog registry can introduce ambiguity.
	require.NoError(t, r.DefineUnit("am", quantity.New(1, lengthDim), units.Standard))
	_, err = r.LookupUnit("dam")
	assert.ErrorIs(t, err, units.ErrAmbiguousUnit)

	// The shared default registry is unaffected.
	v, err := units.Default().LookupUnit("dam")
	require.NoError(t, err)
	assert.Equal(t, 10.0, v.Magnitude())
}

// TestCatalog_MinIsMilliInch documents the prefix quirk: "min" is m+in.
func TestCatalog_MinIsMilliInch(t *testing.T) {
	r := newSI(t)
	got, err := r.Dim(1000, "min")
	require.NoError(t, err)
	inches, err := r.ValueIn(got, "inch")
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0, inches, 1e-12)
}

func TestCatalog_ValueInMismatch(t *testing.T) {
	r := newSI(t)
	v, err := r.Dim(1, "kg")
	require.NoError(t, err)
	_, err = r.ValueIn(v, "meter")
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestCatalog_Constants(t *testing.T) {
	r := newSI(t)
	assert.Equal(t, []string{"G", "c", "gee"}, r.Constants())

	c, err := r.Constant("c")
	require.NoError(t, err)
	assert.Equal(t, 299792458.0, c.Magnitude())
	assert.Equal(t, dimension.New(1, 0, -1, 0, 0, 0, 0), c.Dimensions())

	g, err := r.Constant("G")
	require.NoError(t, err)
	assert.Equal(t, dimension.New(3, -1, -2, 0, 0, 0, 0), g.Dimensions())

	gee, err := r.Constant("gee")
	require.NoError(t, err)
	assert.Equal(t, 9.80665, gee.Magnitude())

	for _, name := range r.Constants() {
		_, err := r.LookupUnit(name)
		assert.ErrorIs(t, err, units.ErrUnknownUnit, name)
	}

	_, err = r.Constant("h")
	assert.ErrorIs(t, err, units.ErrUnknownConstant)
}

// TestCatalog_LightYear compares the derived value with a tolerance;
// exact equality is not expected for chained products.
func TestCatalog_LightYear(t *testing.T) {
	r := newSI(t)
	ly := mustLookup(t, r, "light_year")
	assert.InEpsilon(t, 299792458.0*31556926.0, ly.Magnitude(), 1e-15)

	pc, err := r.ValueIn(mustLookup(t, r, "parsec"), "light_year")
	require.NoError(t, err)
	assert.InDelta(t, 3.26, pc, 0.01)
}

func TestCatalog_Families(t *testing.T) {
	r := newSI(t)
	assert.Equal(t,
		[]string{"foot", "ft", "in", "inch", "mi", "mile", "psi", "yard", "yd"},
		r.NamesInFamily(units.Imperial))

	e, ok := r.Entry("minute")
	require.True(t, ok)
	assert.Equal(t, units.Standard, e.Family)

	e, ok = r.Entry("m")
	require.True(t, ok)
	assert.Equal(t, units.SI, e.Family)
	assert.Equal(t, []string{"m"}, e.Abbrevs)
}

func TestCatalog_NamesWithDimensions(t *testing.T) {
	r := newSI(t)
	energy := dimension.New(2, 1, -2, 0, 0, 0, 0)
	names := r.NamesWithDimensions(energy)
	assert.Subset(t, names, []string{"joule", "J", "electron_volt", "t_TNT", "g_tnt"})
	assert.NotContains(t, names, "watt")
}

func TestDefault_Singleton(t *testing.T) {
	assert.Same(t, units.Default(), units.Default())
}
