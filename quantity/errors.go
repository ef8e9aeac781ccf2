// SPDX-License-Identifier: MIT

package quantity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dunits/dimension"
)

// ErrDimensionMismatch indicates operands whose dimension vectors are
// incompatible for the requested operation (Add, Sub, Pow, ValueIn).
// Callers match it with errors.Is; the concrete error is a *MismatchError.
var ErrDimensionMismatch = errors.New("quantity: dimension mismatch")

// MismatchError carries the operation and both offending dimension vectors.
type MismatchError struct {
	// Op names the failed operation ("add", "sub", "pow", "in km", ...).
	Op string

	// Left and Right are the dimensions that did not agree.
	Left, Right dimension.Vector
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %s %s vs %s", ErrDimensionMismatch, e.Op, e.Left, e.Right)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *MismatchError) Unwrap() error { return ErrDimensionMismatch }

func mismatch(op string, left, right dimension.Vector) error {
	return &MismatchError{Op: op, Left: left, Right: right}
}
