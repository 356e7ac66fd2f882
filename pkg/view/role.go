// Package view implements the dimension-role engine at the heart of the
// viewer: per-dimension role assignments and indices for an N-dimensional
// array, operations to reassign roles and move indices, and the slice and
// mosaic extraction that turns the current assignment into a 2D frame.
//
// The engine is deliberately free of any rendering or UI concern: state
// goes in through the mutators, a 2D matrix comes out of Render. It is
// single-threaded by contract and never logs.
package view

import (
	"errors"
	"fmt"
)

// Errors reported by the engine beyond those defined in pkg/array.
var (
	// ErrDuplicateRole indicates a request to put the X and Y view
	// roles on the same dimension.
	ErrDuplicateRole = errors.New("duplicate view role")
)

// Role is the function a dimension currently serves in the display.
// Every dimension holds exactly one role at any time.
type Role int

const (
	// Fixed dimensions contribute only their current index to the slice.
	Fixed Role = iota

	// Scroll marks the one non-view dimension the user is scrubbing
	// or animating. At most one dimension holds it.
	Scroll

	// ViewX varies along one display axis. Exactly one dimension
	// holds it at all times.
	ViewX

	// ViewY varies along the other display axis. Exactly one
	// dimension holds it, and never the same one as ViewX.
	ViewY

	// ViewGrid tiles every index of its dimension into a mosaic.
	// At most one dimension holds it.
	ViewGrid
)

// String returns the role name used in summaries and error messages.
func (r Role) String() string {
	switch r {
	case Fixed:
		return "fixed"
	case Scroll:
		return "scroll"
	case ViewX:
		return "view_x"
	case ViewY:
		return "view_y"
	case ViewGrid:
		return "view_grid"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// IsView reports whether the role spans a full axis in the rendered
// frame rather than pinning it to an index.
func (r Role) IsView() bool {
	return r == ViewX || r == ViewY || r == ViewGrid
}

// Direction selects which neighbor the scroll role moves to when cycling.
type Direction int

const (
	// Next moves the scroll role to the following non-view dimension.
	Next Direction = iota

	// Prev moves the scroll role to the preceding non-view dimension.
	Prev
)
