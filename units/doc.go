// SPDX-License-Identifier: MIT

// Package units resolves human-readable unit names to dimensioned values.
//
// A Registry holds one flat table from every accepted spelling (full name,
// alias, abbreviation) to a shared record {value, family, abbreviations}.
// Aliases point at the same record as their base name, so an abbreviation
// added later is visible through every alias.
//
// Name resolution (LookupUnit):
//
//  1. Exact match: a registered name always wins.
//  2. Prefix split: every SI prefix alias the name starts with ("kilo", "k",
//     "μ", "µ", ...) is stripped and the remainder looked up exactly.
//  3. One resolving split → the unit scaled by 10^exponent. None →
//     ErrUnknownUnit. Several → ErrAmbiguousUnit, with every candidate
//     listed; no split is preferred over another.
//
// Only one prefix applies: "kkm" does not resolve.
//
// Catalog:
//
//	NewSI builds an isolated registry preloaded with SI base units (the gram,
//	not the kilogram, carries prefixes), SI derived units, accepted non-SI
//	units, imperial lengths, astronomical distances and the constants c, G
//	and gee. Default returns a shared instance built once on first use.
//
// A quirk worth knowing: "min" is not minute; it resolves as milli-inch.
// Use "minute".
//
// Concurrency:
//
//	All methods are safe for concurrent use. The registry is meant to be
//	populated once and then only read.
package units
