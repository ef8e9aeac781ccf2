// SPDX-License-Identifier: MIT

package units

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a Registry at construction.
type Option func(r *Registry)

// WithLogger routes registry diagnostics (redefinitions, bootstrap summary)
// to l. A nil l is ignored.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// discardLogger is the default: registries are silent unless asked.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
