package array

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Raw binary interchange for arrays: a flat stream of little-endian
// float64 values in row-major order, with the shape supplied out of
// band. Complex streams interleave real and imaginary parts.

// ReadRaw reads a real array of the given shape from r.
func ReadRaw(r io.Reader, shape ...int) (*Array, error) {
	n, _, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 8*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("reading raw array data: %w", err)
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	return FromValues(data, shape...)
}

// ReadRawComplex reads a complex array of the given shape from r.
// Each element is a real part followed by an imaginary part.
func ReadRawComplex(r io.Reader, shape ...int) (*Complex, error) {
	n, _, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 16*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("reading raw complex data: %w", err)
	}
	data := make([]complex128, n)
	for i := range data {
		re := math.Float64frombits(binary.LittleEndian.Uint64(buf[16*i:]))
		im := math.Float64frombits(binary.LittleEndian.Uint64(buf[16*i+8:]))
		data[i] = complex(re, im)
	}
	return ComplexFromValues(data, shape...)
}

// WriteRaw writes the array's values to w in raw interchange format.
func WriteRaw(w io.Writer, a *Array) error {
	buf := make([]byte, 8*a.Len())
	for i, v := range a.Values() {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("writing raw array data: %w", err)
	}
	return nil
}

// WriteRawComplex writes the complex array's values to w with
// interleaved real and imaginary parts.
func WriteRawComplex(w io.Writer, c *Complex) error {
	buf := make([]byte, 16*c.Len())
	for i, v := range c.Values() {
		binary.LittleEndian.PutUint64(buf[16*i:], math.Float64bits(real(v)))
		binary.LittleEndian.PutUint64(buf[16*i+8:], math.Float64bits(imag(v)))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("writing raw complex data: %w", err)
	}
	return nil
}
