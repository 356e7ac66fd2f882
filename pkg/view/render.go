package view

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"ndview/pkg/array"
)

// Render computes the 2D frame for the current role assignment. Fixed
// and scroll dimensions are pinned to their indices, the two view axes
// span the frame, and a grid dimension (when present) tiles every one
// of its slices into a row-major mosaic.
//
// Orientation follows the natural-order extraction of the original axes
// with a transpose applied whenever the ViewY axis precedes the ViewX
// axis in the array: the net effect is that frame rows always follow
// ViewX and frame columns always follow ViewY. This is a fixed contract.
//
// The supplied array must match the shape the engine was built for.
func (e *Engine) Render(active *array.Array) (*mat.Dense, error) {
	if err := e.checkShape(active); err != nil {
		return nil, err
	}
	g := e.roleIndex(ViewGrid)
	if g < 0 {
		return e.renderSlice(active, -1, 0), nil
	}
	return e.renderMosaic(active, g), nil
}

// checkShape verifies the active array is dimension-for-dimension
// compatible with the engine's state. Switching the active data source
// (projection or frequency view) must not change the shape.
func (e *Engine) checkShape(active *array.Array) error {
	if active.NDim() != len(e.dims) {
		return fmt.Errorf("%w: engine has %d dimensions, array has %d",
			array.ErrInvalidShape, len(e.dims), active.NDim())
	}
	for i, d := range e.dims {
		if active.Size(i) != d.Size {
			return fmt.Errorf("%w: dimension %d is %d in the engine but %d in the array",
				array.ErrInvalidShape, i, d.Size, active.Size(i))
		}
	}
	return nil
}

// renderSlice extracts one 2D slice. Every non-view dimension is pinned
// to its current index; gridDim (when >= 0) is pinned to gridIndex
// instead of spanning, which is how mosaic tiles are produced.
func (e *Engine) renderSlice(active *array.Array, gridDim, gridIndex int) *mat.Dense {
	xDim := e.roleIndex(ViewX)
	yDim := e.roleIndex(ViewY)

	idx := make([]int, len(e.dims))
	for i, d := range e.dims {
		if d.Role.IsView() {
			continue
		}
		idx[i] = d.Index
	}
	if gridDim >= 0 {
		idx[gridDim] = gridIndex
	}

	h := e.dims[xDim].Size
	w := e.dims[yDim].Size
	out := mat.NewDense(h, w, nil)
	for r := 0; r < h; r++ {
		idx[xDim] = r
		for c := 0; c < w; c++ {
			idx[yDim] = c
			out.Set(r, c, active.At(idx...))
		}
	}
	return out
}

// renderMosaic tiles every slice along the grid dimension into one
// frame. Tile i lands at row i/cols, column i%cols.
func (e *Engine) renderMosaic(active *array.Array, gridDim int) *mat.Dense {
	n := e.dims[gridDim].Size
	rows, cols := gridLayout(n)

	h := e.dims[e.roleIndex(ViewX)].Size
	w := e.dims[e.roleIndex(ViewY)].Size
	out := mat.NewDense(rows*h, cols*w, nil)
	for i := 0; i < n; i++ {
		tile := e.renderSlice(active, gridDim, i)
		r, c := i/cols, i%cols
		out.Slice(r*h, (r+1)*h, c*w, (c+1)*w).(*mat.Dense).Copy(tile)
	}
	return out
}

// gridLayout picks the mosaic shape for n tiles: rows is the largest
// divisor of n at most sqrt(n), searched downward, so the layout is as
// close to square as an exact tiling allows. A prime n degenerates to a
// single row of tiles.
func gridLayout(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	for r := int(math.Sqrt(float64(n))); r >= 1; r-- {
		if n%r == 0 {
			return r, n / r
		}
	}
	return 1, n
}
