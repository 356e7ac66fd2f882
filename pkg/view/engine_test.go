package view

import (
	"errors"
	"testing"

	"ndview/pkg/array"
)

// rolesOf collects just the role of every dimension, in axis order.
func rolesOf(e *Engine) []Role {
	states := e.Roles()
	roles := make([]Role, len(states))
	for i, s := range states {
		roles[i] = s.Role
	}
	return roles
}

func expectRoles(t *testing.T, e *Engine, want []Role) {
	t.Helper()
	got := rolesOf(e)
	if len(got) != len(want) {
		t.Fatalf("Expected %d dimensions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dimension %d: expected role %v, got %v", i, want[i], got[i])
		}
	}
}

// TestNewInitialRoles verifies the deterministic initial assignment:
// dim 0 X, dim 1 Y, dim 2 scroll, the rest fixed, indices at midpoints.
func TestNewInitialRoles(t *testing.T) {
	e, err := New(8, 8, 5, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	expectRoles(t, e, []Role{ViewX, ViewY, Scroll, Fixed})

	wantIndex := []int{4, 4, 2, 1}
	for i, d := range e.Roles() {
		if d.Index != wantIndex[i] {
			t.Errorf("Dimension %d: expected index %d, got %d", i, wantIndex[i], d.Index)
		}
	}
}

// TestNewTwoDimensions verifies that 2D data gets no scroll dimension.
func TestNewTwoDimensions(t *testing.T) {
	e, err := New(16, 9)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	expectRoles(t, e, []Role{ViewX, ViewY})
	if s := e.ScrollDimension(); s != -1 {
		t.Errorf("Expected no scroll dimension, got %d", s)
	}
}

// TestNewRejectsBadShapes verifies construction failures.
func TestNewRejectsBadShapes(t *testing.T) {
	if _, err := New(10); !errors.Is(err, array.ErrInvalidShape) {
		t.Errorf("Expected ErrInvalidShape for 1D shape, got %v", err)
	}
	if _, err := New(); !errors.Is(err, array.ErrInvalidShape) {
		t.Errorf("Expected ErrInvalidShape for empty shape, got %v", err)
	}
	if _, err := New(4, 0, 3); !errors.Is(err, array.ErrInvalidShape) {
		t.Errorf("Expected ErrInvalidShape for zero-size dimension, got %v", err)
	}
}

// TestSetViewAxes verifies a full reassignment re-partitions the
// remaining dimensions: the first non-view dimension takes scroll.
func TestSetViewAxes(t *testing.T) {
	e, _ := New(8, 8, 5, 3)

	if err := e.SetViewAxes(2, 3); err != nil {
		t.Fatalf("SetViewAxes failed: %v", err)
	}
	expectRoles(t, e, []Role{Scroll, Fixed, ViewX, ViewY})
}

// TestSetViewAxesErrors verifies rejection of identical and
// out-of-range axes.
func TestSetViewAxesErrors(t *testing.T) {
	e, _ := New(8, 8, 5)

	if err := e.SetViewAxes(1, 1); !errors.Is(err, ErrDuplicateRole) {
		t.Errorf("Expected ErrDuplicateRole, got %v", err)
	}
	if err := e.SetViewAxes(0, 3); !errors.Is(err, array.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
	if err := e.SetViewAxes(-1, 1); !errors.Is(err, array.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange for negative axis, got %v", err)
	}

	// Failed calls must leave the assignment untouched.
	expectRoles(t, e, []Role{ViewX, ViewY, Scroll})
}

// TestSetViewAxesSwap verifies that requesting the current pair in
// reverse swaps the two roles in place, leaving grid and scroll alone.
func TestSetViewAxesSwap(t *testing.T) {
	e, _ := New(8, 8, 5, 3)
	if err := e.ToggleGrid(3); err != nil {
		t.Fatalf("ToggleGrid failed: %v", err)
	}
	expectRoles(t, e, []Role{ViewX, ViewY, Scroll, ViewGrid})

	if err := e.SetViewAxes(1, 0); err != nil {
		t.Fatalf("SetViewAxes swap failed: %v", err)
	}
	expectRoles(t, e, []Role{ViewY, ViewX, Scroll, ViewGrid})
}

// TestSetViewAxesRoundTrip verifies that swapping twice restores the
// original assignment.
func TestSetViewAxesRoundTrip(t *testing.T) {
	e, _ := New(8, 8, 5, 3)
	before := rolesOf(e)

	if err := e.SetViewAxes(1, 0); err != nil {
		t.Fatalf("First swap failed: %v", err)
	}
	if err := e.SetViewAxes(0, 1); err != nil {
		t.Fatalf("Second swap failed: %v", err)
	}

	after := rolesOf(e)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Dimension %d: expected role %v after round trip, got %v",
				i, before[i], after[i])
		}
	}
}

// TestToggleGrid verifies that on a (8, 8, 5, 3) array,
// tiling the fixed dimension 3 leaves dimension 2 as scroll.
func TestToggleGrid(t *testing.T) {
	e, _ := New(8, 8, 5, 3)

	if err := e.ToggleGrid(3); err != nil {
		t.Fatalf("ToggleGrid failed: %v", err)
	}
	expectRoles(t, e, []Role{ViewX, ViewY, Scroll, ViewGrid})
}

// TestToggleGridRevert verifies toggling the grid dimension off hands
// its role back through the re-partition.
func TestToggleGridRevert(t *testing.T) {
	e, _ := New(8, 8, 5, 3)
	e.ToggleGrid(3)

	if err := e.ToggleGrid(3); err != nil {
		t.Fatalf("ToggleGrid revert failed: %v", err)
	}
	// Dimension 2 is the first non-view dimension, so scroll lands
	// there and dimension 3 drops back to fixed.
	expectRoles(t, e, []Role{ViewX, ViewY, Scroll, Fixed})
}

// TestToggleGridMoves verifies the grid role moves when a second
// dimension requests it.
func TestToggleGridMoves(t *testing.T) {
	e, _ := New(8, 8, 5, 3)
	e.ToggleGrid(2)
	expectRoles(t, e, []Role{ViewX, ViewY, ViewGrid, Scroll})

	if err := e.ToggleGrid(3); err != nil {
		t.Fatalf("ToggleGrid failed: %v", err)
	}
	expectRoles(t, e, []Role{ViewX, ViewY, Scroll, ViewGrid})
}

// TestToggleGridViewAxisNoop verifies grid cannot land on a view axis.
func TestToggleGridViewAxisNoop(t *testing.T) {
	e, _ := New(8, 8, 5)

	if err := e.ToggleGrid(0); err != nil {
		t.Fatalf("ToggleGrid failed: %v", err)
	}
	expectRoles(t, e, []Role{ViewX, ViewY, Scroll})

	if err := e.ToggleGrid(4); !errors.Is(err, array.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

// TestSetScrollDimension verifies explicit scroll moves and the silent
// no-op on view axes.
func TestSetScrollDimension(t *testing.T) {
	e, _ := New(8, 8, 5, 3)

	if err := e.SetScrollDimension(3); err != nil {
		t.Fatalf("SetScrollDimension failed: %v", err)
	}
	expectRoles(t, e, []Role{ViewX, ViewY, Fixed, Scroll})

	// View axes are ignored without error.
	if err := e.SetScrollDimension(0); err != nil {
		t.Fatalf("SetScrollDimension on view axis failed: %v", err)
	}
	expectRoles(t, e, []Role{ViewX, ViewY, Fixed, Scroll})

	if err := e.SetScrollDimension(7); !errors.Is(err, array.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

// TestCycleScrollDimension verifies wrap-around cycling over the
// non-view dimensions in both directions.
func TestCycleScrollDimension(t *testing.T) {
	e, _ := New(8, 8, 5, 3)

	e.CycleScrollDimension(Next)
	if s := e.ScrollDimension(); s != 3 {
		t.Errorf("Expected scroll on dimension 3, got %d", s)
	}

	e.CycleScrollDimension(Next)
	if s := e.ScrollDimension(); s != 2 {
		t.Errorf("Expected scroll to wrap to dimension 2, got %d", s)
	}

	e.CycleScrollDimension(Prev)
	if s := e.ScrollDimension(); s != 3 {
		t.Errorf("Expected scroll back on dimension 3, got %d", s)
	}
}

// TestCycleScrollDimensionSingle verifies cycling is a no-op with only
// one non-view dimension.
func TestCycleScrollDimensionSingle(t *testing.T) {
	e, _ := New(8, 8, 5)

	e.CycleScrollDimension(Next)
	if s := e.ScrollDimension(); s != 2 {
		t.Errorf("Expected scroll to stay on dimension 2, got %d", s)
	}
}

// TestStepIndex verifies clamping at both ends and the view-axis no-op.
func TestStepIndex(t *testing.T) {
	e, _ := New(8, 8, 5)

	// Walk the scroll dimension (size 5, starting index 2) down past zero.
	for i := 0; i < 4; i++ {
		if err := e.StepIndex(2, -1); err != nil {
			t.Fatalf("StepIndex failed: %v", err)
		}
	}
	if idx := e.Roles()[2].Index; idx != 0 {
		t.Errorf("Expected index clamped at 0, got %d", idx)
	}

	// And up past the end.
	for i := 0; i < 6; i++ {
		if err := e.StepIndex(2, 1); err != nil {
			t.Fatalf("StepIndex failed: %v", err)
		}
	}
	if idx := e.Roles()[2].Index; idx != 4 {
		t.Errorf("Expected index clamped at 4, got %d", idx)
	}

	// View axes ignore stepping.
	if err := e.StepIndex(0, 1); err != nil {
		t.Fatalf("StepIndex on view axis failed: %v", err)
	}
	if idx := e.Roles()[0].Index; idx != 4 {
		t.Errorf("Expected view-axis index untouched at 4, got %d", idx)
	}

	if err := e.StepIndex(5, 1); !errors.Is(err, array.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

// TestSetIndex verifies absolute positioning and its range check.
func TestSetIndex(t *testing.T) {
	e, _ := New(8, 8, 5)

	if err := e.SetIndex(2, 4); err != nil {
		t.Fatalf("SetIndex failed: %v", err)
	}
	if idx := e.Roles()[2].Index; idx != 4 {
		t.Errorf("Expected index 4, got %d", idx)
	}

	if err := e.SetIndex(2, 5); !errors.Is(err, array.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange for index past end, got %v", err)
	}
	if err := e.SetIndex(2, -1); !errors.Is(err, array.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange for negative index, got %v", err)
	}
}

// TestAdvanceScroll verifies the playback tick: wrap when looping,
// stop signal otherwise, stop when no scroll dimension exists.
func TestAdvanceScroll(t *testing.T) {
	e, _ := New(4, 4, 3)
	e.SetIndex(2, 2)

	// At the end with loop: wraps to zero and keeps going.
	if !e.AdvanceScroll(true) {
		t.Error("Expected looping advance to continue")
	}
	if idx := e.Roles()[2].Index; idx != 0 {
		t.Errorf("Expected wrap to index 0, got %d", idx)
	}

	// At the end without loop: signals stop and leaves the index.
	e.SetIndex(2, 2)
	if e.AdvanceScroll(false) {
		t.Error("Expected non-looping advance to signal stop")
	}
	if idx := e.Roles()[2].Index; idx != 2 {
		t.Errorf("Expected index to stay at 2, got %d", idx)
	}

	// Mid-range advance just moves.
	e.SetIndex(2, 0)
	if !e.AdvanceScroll(false) {
		t.Error("Expected mid-range advance to continue")
	}
	if idx := e.Roles()[2].Index; idx != 1 {
		t.Errorf("Expected index 1, got %d", idx)
	}

	// 2D data has nothing to animate.
	flat, _ := New(4, 4)
	if flat.AdvanceScroll(true) {
		t.Error("Expected advance without a scroll dimension to signal stop")
	}
}
