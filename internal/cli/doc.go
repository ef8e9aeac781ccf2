// SPDX-License-Identifier: MIT

// Package cli contains the dunit command tree: lookup, convert, units and
// const, all served from one SI registry built per invocation.
package cli
