// SPDX-License-Identifier: MIT

package units

import (
	"math"
	"sync"

	"github.com/katalvlaran/dunits/dimension"
	"github.com/katalvlaran/dunits/quantity"
)

// NewSI returns a fresh Registry loaded with the standard catalog: SI base
// and derived units, SI-accepted and customary units, and the constants
// c, G and gee. Each registry is independent; tests may extend one freely.
func NewSI(opts ...Option) (*Registry, error) {
	r := New(opts...)
	if err := Bootstrap(r); err != nil {
		return nil, err
	}
	return r, nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide SI registry, building it on first call.
// It panics if the built-in catalog fails to load, which is a programmer
// error.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewSI()
		if err != nil {
			panic(err)
		}
		defaultReg = r
	})
	return defaultReg
}

// Bootstrap loads the standard catalog into r. Definitions are built from
// previously defined units through the quantity algebra, so the order below
// matters.
func Bootstrap(r *Registry) error {
	c := &catalog{r: r}

	one := quantity.Dimensionless(1)
	meter := quantity.New(1, dimension.Basis(dimension.Length))
	kg := quantity.New(1, dimension.Basis(dimension.Mass))
	// Mass derives from the kilogram, but prefixes attach to the gram.
	gram := quantity.New(1.0/1000, dimension.Basis(dimension.Mass))
	second := quantity.New(1, dimension.Basis(dimension.Time))
	kelvin := quantity.New(1, dimension.Basis(dimension.Temperature))
	ampere := quantity.New(1, dimension.Basis(dimension.Current))
	candela := quantity.New(1, dimension.Basis(dimension.LuminousIntensity))
	mol := quantity.New(1, dimension.Basis(dimension.AmountOfSubstance))

	// Base units.
	c.unit("meter", meter, SI)
	c.unit("gram", gram, SI)
	c.unit("second", second, SI)
	c.unit("kelvin", kelvin, SI)
	c.unit("ampere", ampere, SI)
	c.alias("amp", "ampere")
	c.unit("candela", candela, SI)
	c.unit("mol", mol, SI)
	c.alias("mole", "mol")
	c.unit("radian", one, SI)
	c.unit("steradian", one, SI)

	c.abbrev("s", "second")
	c.abbrev("m", "meter")
	c.abbrev("g", "gram")
	c.abbrev("K", "kelvin")
	c.abbrev("A", "ampere")
	c.abbrev("cd", "candela")
	c.abbrev("rad", "radian")
	c.abbrev("sr", "steradian")

	// Derived units.
	m2 := meter.Mul(meter)
	s2 := second.Mul(second)
	c.unit("m2", m2, SI)
	c.unit("m3", m2.Mul(meter), SI)
	c.unit("s2", s2, SI)

	newton := kg.Mul(meter).Div(s2)
	joule := newton.Mul(meter)
	coulomb := second.Mul(ampere)
	volt := joule.Div(coulomb)
	weber := joule.Div(ampere)

	c.unit("hertz", one.Div(second), SI)
	c.unit("newton", newton, SI)
	c.unit("pascal", newton.Div(m2), SI)
	c.unit("joule", joule, SI)
	c.unit("watt", joule.Div(second), SI)
	c.unit("coulomb", coulomb, SI)
	c.unit("volt", volt, SI)
	c.unit("farad", coulomb.Div(volt), SI)
	c.unit("ohm", volt.Div(ampere), SI)
	c.unit("siemens", ampere.Div(volt), SI)
	c.unit("weber", weber, SI)
	c.unit("tesla", weber.Div(m2), SI)
	c.unit("henry", weber.Div(ampere), SI)
	c.unit("lumen", candela, SI)       // cd·sr
	c.unit("lux", candela.Div(m2), SI) // lm/m²
	c.unit("becquerel", one.Div(second), SI)
	c.unit("gray", joule.Div(kg), SI)
	c.unit("sievert", joule.Div(kg), SI)
	c.unit("katal", mol.Div(second), SI)

	c.abbrev("Hz", "hertz")
	c.abbrev("N", "newton")
	c.abbrev("Pa", "pascal")
	c.abbrev("J", "joule")
	c.abbrev("W", "watt")
	c.abbrev("C", "coulomb")
	c.abbrev("V", "volt")
	c.abbrev("F", "farad")
	c.abbrev("S", "siemens")
	c.abbrev("Wb", "weber")
	c.abbrev("T", "tesla")
	c.abbrev("H", "henry")
	c.abbrev("lm", "lumen")
	c.abbrev("lx", "lux")
	c.abbrev("Bq", "becquerel")
	c.abbrev("Gy", "gray")
	c.abbrev("Sv", "sievert")
	c.abbrev("kat", "katal")

	// Non-SI units accepted for use with SI.
	c.unit("liter", quantity.New(0.001, dimension.New(3, 0, 0, 0, 0, 0, 0)), SI)
	c.abbrev("L", "liter")
	c.unit("tonne", c.dim(1000, "kg"), SI)
	c.abbrev("t", "tonne")
	c.unit("micron", c.dim(1e-6, "m"), SI)

	c.unit("t_TNT", c.dim(4.184e9, "J"), SI)
	c.alias("t_tnt", "t_TNT")
	c.unit("g_TNT", c.dim(4.184e3, "J"), SI)
	c.alias("g_tnt", "g_TNT")

	c.unit("minute", c.dim(60, "s"), Standard)
	c.unit("hour", c.dim(60, "minute"), Standard)
	c.unit("day", c.dim(24, "hour"), Standard)
	c.unit("week", c.dim(7, "day"), Standard)
	c.unit("year", c.dim(31556926, "s"), Standard)
	c.unit("month", c.dim(1.0/12, "year"), Standard)

	c.unit("atm", c.dim(101325, "pascal"), Standard)
	c.unit("bar", c.dim(100000, "pascal"), Standard)
	c.unit("torr", c.dim(133.322, "pascal"), Standard)
	c.unit("psi", c.dim(6895, "pascal"), Imperial)

	c.unit("electron_volt", c.dim(1.60217653e-19, "J"), Standard)
	c.unit("degree", quantity.Dimensionless(math.Pi/180), Standard)

	c.unit("inch", c.dim(0.0254, "m"), Imperial)
	c.abbrev("in", "inch")
	c.unit("foot", c.dim(12, "in"), Imperial)
	c.abbrev("ft", "foot")
	c.unit("yard", c.dim(3, "ft"), Imperial)
	c.abbrev("yd", "yard")
	c.unit("mile", c.dim(1760, "yd"), Imperial)
	c.abbrev("mi", "mile")

	// Constants.
	light := c.dim(299792458, "m").Div(c.dim(1, "s"))
	c.constant("c", light)
	c.constant("G", c.dim(6.67300e-11, "m3").Div(c.dim(1, "kg")).Div(c.dim(1, "s2")))
	c.constant("gee", c.dim(9.80665, "m").Div(c.dim(1, "s2")))

	// Astronomical distances.
	c.unit("light_second", light.Mul(c.dim(1, "s")), Standard)
	c.unit("light_minute", light.Mul(c.dim(1, "minute")), Standard)
	c.unit("light_hour", light.Mul(c.dim(1, "hour")), Standard)
	c.unit("light_week", light.Mul(c.dim(1, "week")), Standard)
	c.unit("light_month", light.Mul(c.dim(1, "month")), Standard)
	c.unit("light_year", light.Mul(c.dim(1, "year")), Standard)
	c.unit("parsec", c.dim(3.08568025e16, "m"), Standard)

	if c.err != nil {
		return registryErrorf("Bootstrap", c.err)
	}
	r.logger.Debug("catalog loaded", "names", len(r.Names()), "constants", len(r.Constants()))
	return nil
}

// catalog sequences Define* calls and keeps the first error, so Bootstrap
// reads as a flat list of definitions. After a failure every step is a no-op.
type catalog struct {
	r   *Registry
	err error
}

func (c *catalog) unit(name string, v quantity.Value, f Family) {
	if c.err == nil {
		c.err = c.r.DefineUnit(name, v, f)
	}
}

func (c *catalog) alias(name, base string) {
	if c.err == nil {
		c.err = c.r.DefineAlias(name, base)
	}
}

func (c *catalog) abbrev(name, base string) {
	if c.err == nil {
		c.err = c.r.DefineAbbreviation(name, base)
	}
}

func (c *catalog) constant(name string, v quantity.Value) {
	if c.err == nil {
		c.err = c.r.DefineConstant(name, v)
	}
}

// dim resolves value × unit against the registry built so far.
func (c *catalog) dim(value float64, unit string) quantity.Value {
	if c.err != nil {
		return quantity.Value{}
	}
	v, err := c.r.Dim(value, unit)
	if err != nil {
		c.err = err
	}
	return v
}
