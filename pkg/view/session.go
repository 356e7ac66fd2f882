package view

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"ndview/pkg/array"
	"ndview/pkg/transform"
)

// Mode names which data source currently feeds the engine.
type Mode int

const (
	// Plain shows the source array as-is (for complex sources, the
	// selected projection of it).
	Plain Mode = iota

	// Frequency shows the centered log-magnitude spectrum computed
	// over a chosen axis set.
	Frequency
)

// String returns the mode name used in summaries.
func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case Frequency:
		return "frequency"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Session binds one array to one engine for the life of a viewing
// session. It owns the mode switching between the raw data, complex
// projections of it, and the frequency-domain view, and guarantees the
// active array always matches the engine's shape, so roles and indices
// survive every mode change.
type Session struct {
	data  *array.Array   // real source, nil when the source is complex
	cdata *array.Complex // complex source, nil when the source is real

	engine     *Engine
	mode       Mode
	projection transform.Projection

	// projected caches the current projection of a complex source;
	// rebuilt whenever the projection selector changes.
	projected *array.Array

	// freq caches the frequency view and the axes it was computed
	// over; dropped when the frequency mode is switched off.
	freq     *array.Array
	freqAxes []int
}

// NewSession creates a session over a real-valued array.
func NewSession(a *array.Array) (*Session, error) {
	eng, err := New(a.Shape()...)
	if err != nil {
		return nil, err
	}
	return &Session{data: a, engine: eng}, nil
}

// NewComplexSession creates a session over a complex array, starting in
// the magnitude projection.
func NewComplexSession(c *array.Complex) (*Session, error) {
	eng, err := New(c.Shape()...)
	if err != nil {
		return nil, err
	}
	s := &Session{cdata: c, engine: eng, projection: transform.Magnitude}
	s.projected = transform.Project(c, s.projection)
	return s, nil
}

// Engine exposes the role engine for mutation by the UI layer.
func (s *Session) Engine() *Engine { return s.engine }

// IsComplex reports whether the underlying data is complex-valued.
func (s *Session) IsComplex() bool { return s.cdata != nil }

// Mode returns the current display mode.
func (s *Session) Mode() Mode { return s.mode }

// Projection returns the current complex projection selector. It is
// meaningful only for complex sources.
func (s *Session) Projection() transform.Projection { return s.projection }

// FrequencyAxes returns the axis set of the active frequency view, or
// nil when the frequency mode is off.
func (s *Session) FrequencyAxes() []int {
	if s.mode != Frequency {
		return nil
	}
	out := make([]int, len(s.freqAxes))
	copy(out, s.freqAxes)
	return out
}

// ActiveData returns the N-dimensional array currently feeding the
// engine. It is a derived view: the frequency cache in frequency mode,
// the selected projection for complex sources, the raw array otherwise.
func (s *Session) ActiveData() *array.Array {
	if s.mode == Frequency {
		return s.freq
	}
	if s.cdata != nil {
		return s.projected
	}
	return s.data
}

// SetProjection selects the real view of a complex source. For real
// sources there is nothing to project and the call is ignored. An
// active frequency view keeps showing the spectrum until it is toggled
// off; the projection takes effect on the plain view.
func (s *Session) SetProjection(p transform.Projection) {
	if s.cdata == nil {
		return
	}
	if p == s.projection && s.projected != nil {
		return
	}
	s.projection = p
	s.projected = transform.Project(s.cdata, p)
}

// CycleProjection advances a complex source to the next projection in
// the order magnitude, phase, real, imaginary, wrapping around.
func (s *Session) CycleProjection() {
	if s.cdata == nil {
		return
	}
	order := []transform.Projection{
		transform.Magnitude, transform.Phase, transform.RealPart, transform.ImagPart,
	}
	for i, p := range order {
		if p == s.projection {
			s.SetProjection(order[(i+1)%len(order)])
			return
		}
	}
	s.SetProjection(transform.Magnitude)
}

// EnableFrequencyView computes the centered log-magnitude spectrum over
// the given axes and makes it the active data. The transform preserves
// the shape, so roles and indices carry over unchanged. The axis set is
// validated: non-empty, each in range, duplicates removed.
func (s *Session) EnableFrequencyView(axes []int) error {
	var (
		freq *array.Array
		err  error
	)
	if s.cdata != nil {
		freq, err = transform.FFTLogMagnitudeComplex(s.cdata, axes)
	} else {
		freq, err = transform.FFTLogMagnitude(s.data, axes)
	}
	if err != nil {
		return err
	}
	if err := s.engine.checkShape(freq); err != nil {
		// Transforms are shape-preserving; a mismatch here means the
		// transform itself is broken.
		return fmt.Errorf("frequency view: %w", err)
	}
	s.freq = freq
	s.freqAxes = dedupeAxes(axes)
	s.mode = Frequency
	return nil
}

// dedupeAxes mirrors the transform-side normalization so FrequencyAxes
// reports the axis set actually transformed.
func dedupeAxes(axes []int) []int {
	seen := make(map[int]bool, len(axes))
	var out []int
	for _, ax := range axes {
		if !seen[ax] {
			seen[ax] = true
			out = append(out, ax)
		}
	}
	sort.Ints(out)
	return out
}

// DisableFrequencyView returns to the plain view and drops the cache.
func (s *Session) DisableFrequencyView() {
	s.mode = Plain
	s.freq = nil
	s.freqAxes = nil
}

// ToggleFrequencyView switches the frequency view off when it is on,
// and on over the given axes otherwise.
func (s *Session) ToggleFrequencyView(axes []int) error {
	if s.mode == Frequency {
		s.DisableFrequencyView()
		return nil
	}
	return s.EnableFrequencyView(axes)
}

// Render computes the current 2D frame from the active data.
func (s *Session) Render() (*mat.Dense, error) {
	return s.engine.Render(s.ActiveData())
}
