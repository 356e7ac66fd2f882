package view

import (
	"fmt"

	"ndview/pkg/array"
)

// Dimension is one axis of the viewed array: its fixed size, its current
// role, and its current index. The index is meaningful only while the
// role is Fixed or Scroll; view roles span the whole axis and ignore it.
type Dimension struct {
	Size  int
	Role  Role
	Index int
}

// DimState is the read-only snapshot of a dimension returned by Roles,
// in original axis order.
type DimState struct {
	Role  Role
	Index int
	Size  int
}

// Engine holds the per-dimension role assignment for one viewing session
// and implements every role and index mutation. All invariants (exactly
// one ViewX and one ViewY on distinct dimensions, at most one ViewGrid,
// at most one Scroll with auto-promotion) hold after every exported call.
type Engine struct {
	dims []Dimension
}

// New creates an engine for an array of the given shape and assigns the
// initial roles: dimension 0 is ViewX, dimension 1 is ViewY, dimension 2
// (when present) is Scroll and the rest are Fixed. Every index starts at
// the midpoint size/2. Shapes with fewer than two dimensions are rejected.
func New(shape ...int) (*Engine, error) {
	if len(shape) < 2 {
		return nil, fmt.Errorf("%w: viewer needs at least 2 dimensions, got %d",
			array.ErrInvalidShape, len(shape))
	}
	dims := make([]Dimension, len(shape))
	for i, size := range shape {
		if size < 1 {
			return nil, fmt.Errorf("%w: dimension %d has size %d",
				array.ErrInvalidShape, i, size)
		}
		role := Fixed
		switch {
		case i == 0:
			role = ViewX
		case i == 1:
			role = ViewY
		case i == 2:
			role = Scroll
		}
		dims[i] = Dimension{Size: size, Role: role, Index: size / 2}
	}
	return &Engine{dims: dims}, nil
}

// NDim returns the number of dimensions the engine manages.
func (e *Engine) NDim() int { return len(e.dims) }

// Roles returns a snapshot of every dimension in original axis order.
func (e *Engine) Roles() []DimState {
	out := make([]DimState, len(e.dims))
	for i, d := range e.dims {
		out[i] = DimState{Role: d.Role, Index: d.Index, Size: d.Size}
	}
	return out
}

// roleIndex returns the dimension currently holding role r, or -1.
func (e *Engine) roleIndex(r Role) int {
	for i, d := range e.dims {
		if d.Role == r {
			return i
		}
	}
	return -1
}

// ScrollDimension returns the dimension currently holding the Scroll
// role, or -1 when none does (a 2D array has no scroll dimension).
func (e *Engine) ScrollDimension() int { return e.roleIndex(Scroll) }

// checkDim validates an externally supplied axis number.
func (e *Engine) checkDim(d int) error {
	if d < 0 || d >= len(e.dims) {
		return fmt.Errorf("%w: dimension %d (have %d dimensions)",
			array.ErrIndexOutOfRange, d, len(e.dims))
	}
	return nil
}

// SetViewAxes makes dimension x the ViewX axis and dimension y the ViewY
// axis. When the requested pair is exactly the current pair reversed the
// two roles are swapped in place, leaving every other dimension's role
// and index untouched. Any other reassignment demotes the remaining
// dimensions to Fixed and re-runs the auto-scroll partition.
func (e *Engine) SetViewAxes(x, y int) error {
	if err := e.checkDim(x); err != nil {
		return err
	}
	if err := e.checkDim(y); err != nil {
		return err
	}
	if x == y {
		return fmt.Errorf("%w: X and Y both requested on dimension %d", ErrDuplicateRole, x)
	}

	curX := e.roleIndex(ViewX)
	curY := e.roleIndex(ViewY)
	if x == curY && y == curX {
		// Plain swap: no intermediate state, no re-partition.
		e.dims[x].Role = ViewX
		e.dims[y].Role = ViewY
		return nil
	}

	for i := range e.dims {
		switch i {
		case x:
			e.dims[i].Role = ViewX
		case y:
			e.dims[i].Role = ViewY
		default:
			e.dims[i].Role = Fixed
		}
	}
	e.repartition()
	return nil
}

// ToggleGrid toggles the mosaic role on dimension d. A grid dimension
// reverts to Scroll; a non-view dimension takes over the grid role from
// whichever dimension held it. View axes are left untouched.
func (e *Engine) ToggleGrid(d int) error {
	if err := e.checkDim(d); err != nil {
		return err
	}
	switch e.dims[d].Role {
	case ViewGrid:
		e.dims[d].Role = Scroll
		e.repartition()
	case ViewX, ViewY:
		// Grid cannot live on a view axis.
	default:
		if g := e.roleIndex(ViewGrid); g >= 0 {
			e.dims[g].Role = Fixed
		}
		e.dims[d].Role = ViewGrid
		e.repartition()
	}
	return nil
}

// repartition restores the scroll invariant after a role change: the
// first non-view dimension in axis order takes Scroll and every other
// non-view dimension is forced to Fixed. ViewGrid counts as a view role
// and survives.
func (e *Engine) repartition() {
	foundScroll := false
	for i := range e.dims {
		if e.dims[i].Role.IsView() {
			continue
		}
		if !foundScroll {
			e.dims[i].Role = Scroll
			foundScroll = true
		} else {
			e.dims[i].Role = Fixed
		}
	}
}

// SetScrollDimension moves the Scroll role to dimension d. Requests
// naming a view-role dimension are ignored.
func (e *Engine) SetScrollDimension(d int) error {
	if err := e.checkDim(d); err != nil {
		return err
	}
	if e.dims[d].Role.IsView() || e.dims[d].Role == Scroll {
		return nil
	}
	if old := e.roleIndex(Scroll); old >= 0 {
		e.dims[old].Role = Fixed
	}
	e.dims[d].Role = Scroll
	return nil
}

// CycleScrollDimension moves the Scroll role to the next or previous
// non-view dimension, wrapping around. With fewer than two non-view
// dimensions there is nowhere to move and the call is a no-op.
func (e *Engine) CycleScrollDimension(dir Direction) {
	var cyclable []int
	for i, d := range e.dims {
		if !d.Role.IsView() {
			cyclable = append(cyclable, i)
		}
	}
	if len(cyclable) < 2 {
		return
	}
	cur := -1
	for pos, i := range cyclable {
		if e.dims[i].Role == Scroll {
			cur = pos
			break
		}
	}
	if cur < 0 {
		e.SetScrollDimension(cyclable[0])
		return
	}
	step := 1
	if dir == Prev {
		step = -1
	}
	next := (cur + step + len(cyclable)) % len(cyclable)
	e.SetScrollDimension(cyclable[next])
}

// StepIndex moves dimension d's index by delta, clamped to [0, size-1].
// View-role dimensions carry no index and the call is a no-op for them.
func (e *Engine) StepIndex(d, delta int) error {
	if err := e.checkDim(d); err != nil {
		return err
	}
	if e.dims[d].Role.IsView() {
		return nil
	}
	idx := e.dims[d].Index + delta
	if idx < 0 {
		idx = 0
	}
	if max := e.dims[d].Size - 1; idx > max {
		idx = max
	}
	e.dims[d].Index = idx
	return nil
}

// SetIndex sets dimension d's index to an absolute position, as a
// slider would. The position must be within the dimension's bounds.
// View-role dimensions ignore the call.
func (e *Engine) SetIndex(d, index int) error {
	if err := e.checkDim(d); err != nil {
		return err
	}
	if index < 0 || index >= e.dims[d].Size {
		return fmt.Errorf("%w: index %d for dimension %d (size %d)",
			array.ErrIndexOutOfRange, index, d, e.dims[d].Size)
	}
	if e.dims[d].Role.IsView() {
		return nil
	}
	e.dims[d].Index = index
	return nil
}

// AdvanceScroll is the playback tick: it moves the scroll dimension's
// index forward by one. Past the end it either wraps to 0 (loop) or
// leaves the index alone and reports false, telling the caller to stop
// playback. It also reports false when no scroll dimension exists.
func (e *Engine) AdvanceScroll(loop bool) bool {
	s := e.roleIndex(Scroll)
	if s < 0 {
		return false
	}
	next := e.dims[s].Index + 1
	if next > e.dims[s].Size-1 {
		if !loop {
			return false
		}
		next = 0
	}
	e.dims[s].Index = next
	return true
}
