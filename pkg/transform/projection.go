// Package transform provides the stateless value transforms layered on
// top of the viewer: elementwise projections of complex arrays down to
// real ones, and the centered log-magnitude Fourier view. Every
// transform preserves the input shape so the dimension-role state keeps
// applying unchanged to the transformed data.
package transform

import (
	"fmt"
	"math/cmplx"

	"ndview/pkg/array"
)

// Projection selects which real view of a complex array is active.
type Projection int

const (
	// Magnitude is |z|, the default projection.
	Magnitude Projection = iota

	// Phase is the argument of z in radians, in [-pi, pi].
	Phase

	// RealPart is the real component of z.
	RealPart

	// ImagPart is the imaginary component of z.
	ImagPart
)

// String returns the projection name used in summaries and filenames.
func (p Projection) String() string {
	switch p {
	case Magnitude:
		return "magnitude"
	case Phase:
		return "phase"
	case RealPart:
		return "real"
	case ImagPart:
		return "imag"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// ParseProjection maps a projection name (as accepted on the command
// line) to its value.
func ParseProjection(name string) (Projection, error) {
	switch name {
	case "magnitude", "mag", "abs":
		return Magnitude, nil
	case "phase", "angle":
		return Phase, nil
	case "real", "re":
		return RealPart, nil
	case "imag", "imaginary", "im":
		return ImagPart, nil
	}
	return Magnitude, fmt.Errorf("unknown projection %q", name)
}

// Project produces the selected same-shape real view of c.
func Project(c *array.Complex, p Projection) *array.Array {
	src := c.Values()
	dst := make([]float64, len(src))
	switch p {
	case Phase:
		for i, z := range src {
			dst[i] = cmplx.Phase(z)
		}
	case RealPart:
		for i, z := range src {
			dst[i] = real(z)
		}
	case ImagPart:
		for i, z := range src {
			dst[i] = imag(z)
		}
	default:
		for i, z := range src {
			dst[i] = cmplx.Abs(z)
		}
	}
	out, err := array.FromValues(dst, c.Shape()...)
	if err != nil {
		// The shape came from a valid array.
		panic(err)
	}
	return out
}
