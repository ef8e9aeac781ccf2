// SPDX-License-Identifier: MIT

// Package quantity implements dimensioned values: a float64 magnitude paired
// with a dimension.Vector, and the arithmetic that keeps the two consistent.
//
// What is Value?
//
//	An immutable (magnitude, dimensions) pair. Every operation returns a new
//	Value; the dimensions of a result are a pure function of the operands'
//	dimensions and are never coerced.
//
// Operator contract:
//
//	Add / Sub  — operands must share dimensions, else ErrDimensionMismatch.
//	Mul / Div  — always legal; dimension vectors add / subtract.
//	Pow        — exponent must be dimensionless; dimensions are scaled.
//	Neg        — magnitude negated, dimensions kept.
//	Equal      — exact magnitude and dimension equality (no epsilon).
//
// Right-hand operands are an Operand: either a Scalar (a bare number, always
// dimensionless) or another Value. Scalars multiply and divide without
// touching dimensions and may only be added to dimensionless values.
//
// Units by name:
//
//	Dim and ValueIn consult a Resolver (implemented by *units.Registry) to turn
//	names like "km" into Values and back:
//
//	d, _ := quantity.Dim(reg, 5, "km")
//	m, _ := quantity.ValueIn(reg, d, "m") // 5000
//
// Floating-point equality is exact throughout. Values derived through long
// chains (light_year, parsec) may differ from a hand-computed magnitude in the
// last ulp; compare those with a tolerance in caller code.
package quantity
