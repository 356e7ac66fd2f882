package transform

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"

	"ndview/pkg/array"
)

// ErrInvalidAxisSet indicates an empty FFT axis list or an axis outside
// the array's dimensions.
var ErrInvalidAxisSet = errors.New("invalid axis set")

// FFTLogMagnitude computes the frequency-domain view of a real array:
// the discrete Fourier transform over the given axes, shifted so zero
// frequency sits at the center of each transformed axis, reduced to
// log(1 + |F|). The output has the input's shape and is everywhere
// non-negative, so it plugs into the engine with roles and indices
// carried over unchanged.
//
// Duplicate axes are collapsed; the set must be non-empty and every
// axis must lie in [0, ndim).
func FFTLogMagnitude(a *array.Array, axes []int) (*array.Array, error) {
	shape := a.Shape()
	axes, err := normalizeAxes(axes, len(shape))
	if err != nil {
		return nil, err
	}
	work := make([]complex128, a.Len())
	for i, v := range a.Values() {
		work[i] = complex(v, 0)
	}
	return fftView(work, shape, axes)
}

// FFTLogMagnitudeComplex is FFTLogMagnitude for a complex source array.
func FFTLogMagnitudeComplex(c *array.Complex, axes []int) (*array.Array, error) {
	shape := c.Shape()
	axes, err := normalizeAxes(axes, len(shape))
	if err != nil {
		return nil, err
	}
	work := make([]complex128, c.Len())
	copy(work, c.Values())
	return fftView(work, shape, axes)
}

// fftView runs the transform pipeline in place on work and packages the
// log-magnitude result.
func fftView(work []complex128, shape, axes []int) (*array.Array, error) {
	for _, ax := range axes {
		fftAxis(work, shape, ax)
	}
	for _, ax := range axes {
		shiftAxis(work, shape, ax)
	}
	out := make([]float64, len(work))
	for i, z := range work {
		out[i] = math.Log1p(cmplx.Abs(z))
	}
	return array.FromValues(out, shape...)
}

// normalizeAxes validates the axis list, removes duplicates and returns
// it sorted ascending.
func normalizeAxes(axes []int, ndim int) ([]int, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: no axes given", ErrInvalidAxisSet)
	}
	seen := make(map[int]bool, len(axes))
	var out []int
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("%w: axis %d out of range [0, %d)", ErrInvalidAxisSet, ax, ndim)
		}
		if !seen[ax] {
			seen[ax] = true
			out = append(out, ax)
		}
	}
	sort.Ints(out)
	return out, nil
}

// fftAxis applies an unnormalized forward DFT along one axis of a
// row-major array, transforming every line in place. Lines along axis
// ax are addressed as [outer][n][inner] where inner is the axis stride.
func fftAxis(data []complex128, shape []int, ax int) {
	n := shape[ax]
	inner := 1
	for d := ax + 1; d < len(shape); d++ {
		inner *= shape[d]
	}
	outer := len(data) / (n * inner)

	fft := fourier.NewCmplxFFT(n)
	line := make([]complex128, n)
	freq := make([]complex128, n)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			base := o*n*inner + i
			for k := 0; k < n; k++ {
				line[k] = data[base+k*inner]
			}
			fft.Coefficients(freq, line)
			for k := 0; k < n; k++ {
				data[base+k*inner] = freq[k]
			}
		}
	}
}

// shiftAxis rolls each line along the axis by n/2 so the zero-frequency
// coefficient lands in the middle.
func shiftAxis(data []complex128, shape []int, ax int) {
	n := shape[ax]
	half := n / 2
	if half == 0 {
		return
	}
	inner := 1
	for d := ax + 1; d < len(shape); d++ {
		inner *= shape[d]
	}
	outer := len(data) / (n * inner)

	tmp := make([]complex128, n)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			base := o*n*inner + i
			for k := 0; k < n; k++ {
				tmp[(k+half)%n] = data[base+k*inner]
			}
			for k := 0; k < n; k++ {
				data[base+k*inner] = tmp[k]
			}
		}
	}
}
