// SPDX-License-Identifier: MIT

package implicit

import "errors"

// Sentinel errors for implicit grid operations.
// Query paths return them unwrapped so callers can compare with errors.Is
// without paying for an allocation.
var (
	// ErrInvalidDimensions indicates a grid dimension below 1.
	ErrInvalidDimensions = errors.New("implicit: every grid dimension must be at least 1")
	// ErrAlreadyConfigured indicates SetInputGrid was called on a configured grid.
	ErrAlreadyConfigured = errors.New("implicit: grid is already configured")
	// ErrNotConfigured indicates a query on a grid that was never configured.
	ErrNotConfigured = errors.New("implicit: grid is not configured")
	// ErrSimplexOutOfRange indicates a simplex id outside [0, count).
	ErrSimplexOutOfRange = errors.New("implicit: simplex id out of range")
	// ErrLocalOutOfRange indicates a local index outside [0, relation count).
	ErrLocalOutOfRange = errors.New("implicit: local index out of range")
	// ErrNotImplemented1D indicates a cell query that has no 1D definition.
	ErrNotImplemented1D = errors.New("implicit: operation not implemented for 1D grids")
	// ErrUnsupportedDimension indicates a query that makes no sense for the
	// grid's dimensionality (for instance a cell query on a single vertex).
	ErrUnsupportedDimension = errors.New("implicit: operation not supported for this dimensionality")
)
