// SPDX-License-Identifier: MIT

package quantity

import (
	"strconv"

	"github.com/katalvlaran/dunits/dimension"
)

// Value is a magnitude tagged with physical dimensions.
// The zero Value is the dimensionless number 0.
type Value struct {
	mag  float64
	dims dimension.Vector
}

// New returns a Value with explicit magnitude and dimensions.
func New(mag float64, dims dimension.Vector) Value {
	return Value{mag: mag, dims: dims}
}

// Dimensionless returns mag as a Value with the zero dimension vector.
func Dimensionless(mag float64) Value {
	return Value{mag: mag}
}

// Magnitude returns the numeric part, expressed in SI base units
// (kilogram for mass).
func (v Value) Magnitude() float64 { return v.mag }

// Dimensions returns the dimension vector.
func (v Value) Dimensions() dimension.Vector { return v.dims }

// IsDimensionless reports whether v carries no dimensions.
func (v Value) IsDimensionless() bool { return v.dims.IsZero() }

// String renders v as "{<magnitude>: <dimensions>}", e.g. "{1000: [1 0 0 0 0 0 0]}".
func (v Value) String() string {
	return "{" + strconv.FormatFloat(v.mag, 'g', -1, 64) + ": " + v.dims.String() + "}"
}

// Operand is the right-hand side of an arithmetic operation: either a Scalar
// or a Value. The interface is sealed; no other implementations exist.
type Operand interface {
	isOperand()
}

// Scalar is a bare, dimensionless number used as an Operand.
type Scalar float64

func (Scalar) isOperand() {}

func (Value) isOperand() {}

// unpack resolves an Operand into its magnitude and dimensions.
// A nil Operand is treated as Scalar(0).
func unpack(o Operand) (float64, dimension.Vector) {
	switch x := o.(type) {
	case Value:
		return x.mag, x.dims
	case Scalar:
		return float64(x), dimension.Zero
	default:
		return 0, dimension.Zero
	}
}

// Resolver turns a unit name into the Value of one such unit.
// *units.Registry is the canonical implementation.
type Resolver interface {
	LookupUnit(name string) (Value, error)
}
