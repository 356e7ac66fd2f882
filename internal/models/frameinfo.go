package models

import (
	"fmt"
	"strings"

	"ndview/pkg/view"
)

// FrameInfo captures the view state behind one rendered frame: the
// per-dimension role snapshot, the display mode, and which dimension
// (if any) holds the scroll role. Consumers use it for frame filenames
// and human-readable summaries.
type FrameInfo struct {
	// Dims is the role snapshot in original axis order
	Dims []view.DimState

	// Mode is the display mode the frame was rendered under
	Mode view.Mode

	// Scroll is the scroll dimension, -1 when none exists
	Scroll int
}

// FrameInfoFor snapshots the session's current view state.
func FrameInfoFor(s *view.Session) FrameInfo {
	return FrameInfo{
		Dims:   s.Engine().Roles(),
		Mode:   s.Mode(),
		Scroll: s.Engine().ScrollDimension(),
	}
}

// ScrollIndex returns the scroll dimension's current position, or 0
// when no scroll dimension exists (2D data has a single frame).
func (f FrameInfo) ScrollIndex() int {
	if f.Scroll < 0 {
		return 0
	}
	return f.Dims[f.Scroll].Index
}

// FileName returns the frame's file name, numbered by scroll position,
// e.g. "frame_002.png".
func (f FrameInfo) FileName(ext string) string {
	return fmt.Sprintf("frame_%03d.%s", f.ScrollIndex(), ext)
}

// Summary formats the per-dimension role listing shown after role
// changes, one line per dimension.
func (f FrameInfo) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mode: %s\n", f.Mode)
	for i, d := range f.Dims {
		if d.Role.IsView() {
			fmt.Fprintf(&b, "  dim %d: %-9s size %d\n", i, d.Role, d.Size)
		} else {
			fmt.Fprintf(&b, "  dim %d: %-9s size %d, index %d\n", i, d.Role, d.Size, d.Index)
		}
	}
	return b.String()
}
