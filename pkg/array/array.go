// Package array provides N-dimensional numeric arrays stored as flat
// row-major slices, in both real and complex flavors. Arrays have a fixed
// shape for their whole lifetime; the viewing layers built on top treat
// them as read-only projections.
package array

import (
	"errors"
	"fmt"
)

// Error kinds reported by the array and viewing layers. Callers are
// expected to test with errors.Is; every failure returned from this
// module wraps exactly one of these sentinels.
var (
	// ErrInvalidShape indicates a shape with a non-positive dimension
	// size, or with fewer dimensions than the operation requires.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrIndexOutOfRange indicates an axis number or an index along an
	// axis that falls outside the array bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Array is an N-dimensional real-valued array. Data is stored in a flat
// slice using row-major (C) ordering: the last axis varies fastest.
type Array struct {
	data    []float64
	shape   []int
	strides []int
}

// New creates a zero-filled array with the given shape.
// Every dimension size must be at least 1.
func New(shape ...int) (*Array, error) {
	n, strides, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	return &Array{
		data:    make([]float64, n),
		shape:   cloneInts(shape),
		strides: strides,
	}, nil
}

// FromValues creates an array that adopts the given backing slice.
// The slice length must equal the product of the shape sizes.
func FromValues(data []float64, shape ...int) (*Array, error) {
	n, strides, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: %d values for shape %v (want %d)",
			ErrInvalidShape, len(data), shape, n)
	}
	return &Array{data: data, shape: cloneInts(shape), strides: strides}, nil
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int { return len(a.shape) }

// Size returns the length of dimension d.
func (a *Array) Size(d int) int { return a.shape[d] }

// Shape returns a copy of the dimension sizes.
func (a *Array) Shape() []int { return cloneInts(a.shape) }

// Len returns the total number of elements.
func (a *Array) Len() int { return len(a.data) }

// Values returns the backing slice in row-major order.
// Mutating it mutates the array.
func (a *Array) Values() []float64 { return a.data }

// At returns the element at the given N-dimensional index.
// One index per dimension is required; panics on out-of-range access,
// matching slice semantics for engine-internal indexing.
func (a *Array) At(idx ...int) float64 {
	return a.data[a.flatIndex(idx)]
}

// Set stores v at the given N-dimensional index.
func (a *Array) Set(v float64, idx ...int) {
	a.data[a.flatIndex(idx)] = v
}

func (a *Array) flatIndex(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("array: got %d indices for %d dimensions", len(idx), len(a.shape)))
	}
	flat := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("array: index %d out of range for dimension %d (size %d)",
				i, d, a.shape[d]))
		}
		flat += i * a.strides[d]
	}
	return flat
}

// Stride returns the flat-index step between consecutive elements
// along dimension d.
func (a *Array) Stride(d int) int { return a.strides[d] }

// Complex is the complex-valued counterpart of Array, with the same
// flat row-major storage.
type Complex struct {
	data    []complex128
	shape   []int
	strides []int
}

// NewComplex creates a zero-filled complex array with the given shape.
func NewComplex(shape ...int) (*Complex, error) {
	n, strides, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	return &Complex{
		data:    make([]complex128, n),
		shape:   cloneInts(shape),
		strides: strides,
	}, nil
}

// ComplexFromValues creates a complex array adopting the given backing slice.
func ComplexFromValues(data []complex128, shape ...int) (*Complex, error) {
	n, strides, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: %d values for shape %v (want %d)",
			ErrInvalidShape, len(data), shape, n)
	}
	return &Complex{data: data, shape: cloneInts(shape), strides: strides}, nil
}

// NDim returns the number of dimensions.
func (c *Complex) NDim() int { return len(c.shape) }

// Size returns the length of dimension d.
func (c *Complex) Size(d int) int { return c.shape[d] }

// Shape returns a copy of the dimension sizes.
func (c *Complex) Shape() []int { return cloneInts(c.shape) }

// Len returns the total number of elements.
func (c *Complex) Len() int { return len(c.data) }

// Values returns the backing slice in row-major order.
func (c *Complex) Values() []complex128 { return c.data }

// checkShape validates dimension sizes and computes row-major strides
// together with the total element count.
func checkShape(shape []int) (n int, strides []int, err error) {
	if len(shape) == 0 {
		return 0, nil, fmt.Errorf("%w: empty shape", ErrInvalidShape)
	}
	n = 1
	for d, s := range shape {
		if s < 1 {
			return 0, nil, fmt.Errorf("%w: dimension %d has size %d", ErrInvalidShape, d, s)
		}
		n *= s
	}
	strides = make([]int, len(shape))
	stride := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= shape[d]
	}
	return n, strides, nil
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}
