// SPDX-License-Identifier: MIT

package dimension

import (
	"strconv"
	"strings"
)

// Base dimension indices into a Vector.
const (
	Length = iota
	Mass
	Time
	Temperature
	Current
	LuminousIntensity
	AmountOfSubstance

	// NumDims is the fixed length of every Vector.
	NumDims
)

// names holds the short symbol for each base dimension, in index order.
var names = [NumDims]string{"L", "M", "T", "Θ", "I", "J", "N"}

// Vector is the exponent of each base dimension.
type Vector [NumDims]float64

// Zero is the dimensionless vector.
var Zero Vector

// New builds a Vector from integer exponents, in index order.
func New(length, mass, time, temperature, current, intensity, amount int) Vector {
	return Vector{
		float64(length),
		float64(mass),
		float64(time),
		float64(temperature),
		float64(current),
		float64(intensity),
		float64(amount),
	}
}

// Basis returns the unit vector for base dimension i.
// It panics if i is not in [0, NumDims); that is a programmer error.
func Basis(i int) Vector {
	var v Vector
	v[i] = 1
	return v
}

// Add returns the elementwise sum v + b.
// Used when multiplying quantities.
func (v Vector) Add(b Vector) Vector {
	for i := range v {
		v[i] += b[i]
	}
	return v
}

// Sub returns the elementwise difference v - b.
// Used when dividing quantities.
func (v Vector) Sub(b Vector) Vector {
	for i := range v {
		v[i] -= b[i]
	}
	return v
}

// Scale returns v with every component multiplied by k.
// Used when raising a quantity to a power.
func (v Vector) Scale(k float64) Vector {
	for i := range v {
		v[i] *= k
	}
	return v
}

// Equal reports whether v and b are identical component by component.
func (v Vector) Equal(b Vector) bool { return v == b }

// IsZero reports whether v is dimensionless.
func (v Vector) IsZero() bool { return v == Zero }

// String renders the exponents as "[1 0 -2 0 0 0 0]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Symbol renders v in conventional dimensional notation, e.g. "L·T^-2".
// The zero vector renders as "1".
func (v Vector) Symbol() string {
	parts := make([]string, 0, NumDims)
	for i, c := range v {
		switch c {
		case 0:
			continue
		case 1:
			parts = append(parts, names[i])
		default:
			parts = append(parts, names[i]+"^"+strconv.FormatFloat(c, 'g', -1, 64))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}
