// SPDX-License-Identifier: MIT

// Package dimension defines Vector, the seven-component exponent vector that
// tags every physical quantity with its dimension.
//
// The components are, in order:
//
//	Length · Mass · Time · Temperature · Current · LuminousIntensity · AmountOfSubstance
//
// A Vector is a plain array, so it is copied by value, compared with ==, and
// can be used as a map key. The all-zero Vector (Zero) means "dimensionless"
// and is the identity for Add.
//
// Multiplying quantities adds their vectors, dividing subtracts them, and
// raising to a power scales them:
//
//	m   := dimension.Basis(dimension.Length)   // [1 0 0 0 0 0 0]
//	s   := dimension.Basis(dimension.Time)     // [0 0 1 0 0 0 0]
//	vel := m.Sub(s)                            // [1 0 -1 0 0 0 0]
//	acc := vel.Sub(s)                          // [1 0 -2 0 0 0 0]
//	area := m.Scale(2)                         // [2 0 0 0 0 0 0]
//
// Components are float64 so fractional powers (e.g. a square root) stay
// representable; every unit in the standard catalog uses integers only.
package dimension
