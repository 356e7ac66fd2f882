package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Dataset describes an on-disk raw array: where it lives, its shape,
// and whether its elements are interleaved complex pairs.
type Dataset struct {
	// Path is the raw data file, empty for generated data
	Path string

	// Shape is the dimension sizes, outermost first
	Shape []int

	// Complex marks interleaved real/imaginary float64 pairs
	Complex bool
}

// NDim returns the number of dimensions.
func (d Dataset) NDim() int { return len(d.Shape) }

// Len returns the total element count.
func (d Dataset) Len() int {
	n := 1
	for _, s := range d.Shape {
		n *= s
	}
	return n
}

// String formats the dataset for log output, e.g. "volume.raw [64 64 16] complex".
func (d Dataset) String() string {
	path := d.Path
	if path == "" {
		path = "(generated)"
	}
	if d.Complex {
		return fmt.Sprintf("%s %v complex", path, d.Shape)
	}
	return fmt.Sprintf("%s %v", path, d.Shape)
}

// ParseShape parses a comma-separated shape string such as "64,64,16".
func ParseShape(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	shape := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		size, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", s, err)
		}
		shape = append(shape, size)
	}
	if len(shape) == 0 {
		return nil, fmt.Errorf("invalid shape %q: no dimensions", s)
	}
	return shape, nil
}

// ParseAxes parses a comma-separated axis list such as "0,1".
func ParseAxes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return ParseShape(s)
}
