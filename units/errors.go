// SPDX-License-Identifier: MIT

package units

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for registry operations. Match them with errors.Is; lookup
// failures arrive as *LookupError, which unwraps to one of these.
var (
	// ErrUnknownUnit indicates a name with no registry entry and no valid
	// prefix decomposition, or an alias target that is not defined yet.
	ErrUnknownUnit = errors.New("units: unknown unit")

	// ErrAmbiguousUnit indicates a name with more than one valid
	// prefix + unit decomposition.
	ErrAmbiguousUnit = errors.New("units: ambiguous unit")

	// ErrUnknownConstant indicates a constant name that was never defined.
	ErrUnknownConstant = errors.New("units: unknown constant")

	// ErrEmptyName indicates an attempt to register the empty string.
	ErrEmptyName = errors.New("units: empty name")
)

// LookupError reports a failed unit resolution.
type LookupError struct {
	// Name is the raw name passed to the lookup.
	Name string

	// Err is ErrUnknownUnit or ErrAmbiguousUnit.
	Err error

	// Candidates lists every "prefix+unit" split that resolved when Err is
	// ErrAmbiguousUnit. Empty otherwise.
	Candidates []string
}

func (e *LookupError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("%v: %q", e.Err, e.Name)
	}
	return fmt.Sprintf("%v: %q (%s)", e.Err, e.Name, strings.Join(e.Candidates, ", "))
}

func (e *LookupError) Unwrap() error { return e.Err }

// registryErrorf tags err with the failing registry method.
func registryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
