// SPDX-License-Identifier: MIT

package units

import (
	"math"
	"sort"
)

// Prefix is a canonical SI prefix, identified by its long name.
type Prefix string

// Canonical SI prefixes.
const (
	Yotta Prefix = "yotta"
	Zetta Prefix = "zetta"
	Exa   Prefix = "exa"
	Peta  Prefix = "peta"
	Tera  Prefix = "tera"
	Giga  Prefix = "giga"
	Mega  Prefix = "mega"
	Kilo  Prefix = "kilo"
	Hecto Prefix = "hecto"
	Deca  Prefix = "deca"
	Deci  Prefix = "deci"
	Centi Prefix = "centi"
	Milli Prefix = "milli"
	Micro Prefix = "micro"
	Nano  Prefix = "nano"
	Pico  Prefix = "pico"
	Femto Prefix = "femto"
	Atto  Prefix = "atto"
	Zepto Prefix = "zepto"
	Yocto Prefix = "yocto"
)

// prefixExponents maps each canonical prefix to its power of ten.
var prefixExponents = map[Prefix]int{
	Yotta: 24,
	Zetta: 21,
	Exa:   18,
	Peta:  15,
	Tera:  12,
	Giga:  9,
	Mega:  6,
	Kilo:  3,
	Hecto: 2,
	Deca:  1,

	Deci:  -1,
	Centi: -2,
	Milli: -3,
	Micro: -6,
	Nano:  -9,
	Pico:  -12,
	Femto: -15,
	Atto:  -18,
	Zepto: -21,
	Yocto: -24,
}

// prefixAliases maps every accepted spelling to its canonical prefix.
// Both micro spellings are accepted: U+03BC GREEK SMALL LETTER MU and
// U+00B5 MICRO SIGN.
var prefixAliases = map[string]Prefix{
	"yotta": Yotta, "Y": Yotta,
	"zetta": Zetta, "Z": Zetta,
	"exa": Exa, "E": Exa,
	"peta": Peta, "P": Peta,
	"tera": Tera, "T": Tera,
	"giga": Giga, "G": Giga,
	"mega": Mega, "M": Mega,
	"kilo": Kilo, "k": Kilo,
	"hecto": Hecto, "h": Hecto,
	"deca": Deca, "da": Deca,

	"deci": Deci, "d": Deci,
	"centi": Centi, "c": Centi,
	"milli": Milli, "m": Milli,
	"micro": Micro, "μ": Micro, "µ": Micro,
	"nano": Nano, "n": Nano,
	"pico": Pico, "p": Pico,
	"femto": Femto, "f": Femto,
	"atto": Atto, "a": Atto,
	"zepto": Zepto, "z": Zepto,
	"yocto": Yocto, "y": Yocto,
}

// prefixMultipliers caches 10^exponent per canonical prefix.
var prefixMultipliers = func() map[Prefix]float64 {
	m := make(map[Prefix]float64, len(prefixExponents))
	for p, e := range prefixExponents {
		m[p] = math.Pow10(e)
	}
	return m
}()

// prefixAliasNames lists every alias in a fixed order (longest first, then
// lexicographic) so candidate lists in errors are deterministic.
var prefixAliasNames = func() []string {
	names := make([]string, 0, len(prefixAliases))
	for a := range prefixAliases {
		names = append(names, a)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

// Exponent returns the power of ten for p, or 0 for an unknown prefix.
func (p Prefix) Exponent() int { return prefixExponents[p] }

// Multiplier returns 10^Exponent, or 0 for an unknown prefix.
func (p Prefix) Multiplier() float64 { return prefixMultipliers[p] }

// ParsePrefix resolves a prefix alias ("k", "kilo", "µ", ...) to its
// canonical Prefix.
func ParsePrefix(alias string) (Prefix, bool) {
	p, ok := prefixAliases[alias]
	return p, ok
}

// PrefixAliases returns every accepted prefix spelling in a deterministic order.
func PrefixAliases() []string {
	return append([]string(nil), prefixAliasNames...)
}
