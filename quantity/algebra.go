// SPDX-License-Identifier: MIT

package quantity

import (
	"math"

	"github.com/katalvlaran/dunits/dimension"
)

// Add returns v + b. Both sides must have identical dimensions; a Scalar is
// dimensionless and therefore only addable to a dimensionless v.
//
// Errors:
//   - ErrDimensionMismatch (as *MismatchError) when dimensions differ.
func (v Value) Add(b Operand) (Value, error) {
	mag, dims := unpack(b)
	if v.dims != dims {
		return Value{}, mismatch("add", v.dims, dims)
	}
	return Value{mag: v.mag + mag, dims: v.dims}, nil
}

// Sub returns v - b under the same dimension rule as Add.
func (v Value) Sub(b Operand) (Value, error) {
	mag, dims := unpack(b)
	if v.dims != dims {
		return Value{}, mismatch("sub", v.dims, dims)
	}
	return Value{mag: v.mag - mag, dims: v.dims}, nil
}

// Mul returns v * b. Dimensions add; a Scalar leaves them unchanged.
func (v Value) Mul(b Operand) Value {
	mag, dims := unpack(b)
	return Value{mag: v.mag * mag, dims: v.dims.Add(dims)}
}

// Div returns v / b. Dimensions subtract. A zero divisor yields ±Inf or NaN
// per IEEE 754; it is not a dimensional error.
func (v Value) Div(b Operand) Value {
	mag, dims := unpack(b)
	return Value{mag: v.mag / mag, dims: v.dims.Sub(dims)}
}

// Pow returns v raised to k. The exponent must be dimensionless (a Scalar or
// a Value with zero dimensions); the result's dimensions are v's scaled by k.
//
// Errors:
//   - ErrDimensionMismatch when k carries dimensions.
func (v Value) Pow(k Operand) (Value, error) {
	exp, dims := unpack(k)
	if !dims.IsZero() {
		return Value{}, mismatch("pow", dimension.Zero, dims)
	}
	return Value{mag: math.Pow(v.mag, exp), dims: v.dims.Scale(exp)}, nil
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{mag: -v.mag, dims: v.dims}
}

// Scale multiplies the magnitude by k without touching dimensions.
func (v Value) Scale(k float64) Value {
	return Value{mag: v.mag * k, dims: v.dims}
}

// Equal reports exact equality of magnitude and dimensions.
// No tolerance is applied.
func (v Value) Equal(b Value) bool {
	return v.mag == b.mag && v.dims == b.dims
}

// SameDimensions reports whether v and b share a dimension vector.
func (v Value) SameDimensions(b Value) bool { return v.dims == b.dims }
