// Package export turns rendered 2D frames into grayscale image files.
// It stands in for the interactive display surface: everything here
// consumes the engine's output matrix and the session's scroll state,
// and nothing here feeds back into role or index state.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"ndview/internal/models"
	"ndview/pkg/view"
)

// Options controls frame normalization and file encoding.
type Options struct {
	// AutoLimits selects quantile-based color limits computed per
	// frame. When false, Min and Max are used as-is.
	AutoLimits bool

	// LowQuantile and HighQuantile bound the value window when
	// AutoLimits is set. Quantile windowing keeps a handful of hot
	// pixels from washing out the whole frame.
	LowQuantile  float64
	HighQuantile float64

	// Min and Max are the manual color limits.
	Min float64
	Max float64

	// Quality is the JPEG encoding quality (1-100).
	Quality int
}

// DefaultOptions returns the options used when none are supplied:
// automatic limits over the central 98% of values, JPEG quality 90.
func DefaultOptions() Options {
	return Options{
		AutoLimits:   true,
		LowQuantile:  0.01,
		HighQuantile: 0.99,
		Quality:      90,
	}
}

// Limits returns the color limits for a frame under these options.
func (o Options) Limits(frame *mat.Dense) (lo, hi float64) {
	if !o.AutoLimits {
		return o.Min, o.Max
	}
	return AutoLimits(frame, o.LowQuantile, o.HighQuantile)
}

// AutoLimits computes robust color limits as the loQ and hiQ quantiles
// of the frame's values.
func AutoLimits(frame *mat.Dense, loQ, hiQ float64) (lo, hi float64) {
	r, c := frame.Dims()
	vals := make([]float64, 0, r*c)
	vals = append(vals, frame.RawMatrix().Data...)
	sort.Float64s(vals)
	lo = stat.Quantile(loQ, stat.Empirical, vals, nil)
	hi = stat.Quantile(hiQ, stat.Empirical, vals, nil)
	return lo, hi
}

// FrameImage maps a frame to a 16-bit grayscale image, scaling values
// linearly from [lo, hi] to the full intensity range. Matrix rows map
// to image rows. A degenerate window (hi <= lo) produces a mid-gray
// image rather than dividing by zero.
func FrameImage(frame *mat.Dense, lo, hi float64) *image.Gray16 {
	rows, cols := frame.Dims()
	img := image.NewGray16(image.Rect(0, 0, cols, rows))
	span := hi - lo
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var norm float64
			if span > 0 {
				norm = (frame.At(r, c) - lo) / span
			} else {
				norm = 0.5
			}
			if norm < 0 {
				norm = 0
			}
			if norm > 1 {
				norm = 1
			}
			img.SetGray16(c, r, color.Gray16{Y: uint16(norm * 65535)})
		}
	}
	return img
}

// SaveFrame normalizes a frame and writes it to path. The encoder is
// picked from the extension: .png for PNG, anything else JPEG.
func SaveFrame(frame *mat.Dense, path string, opts Options) error {
	lo, hi := opts.Limits(frame)
	img := FrameImage(frame, lo, hi)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating frame file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		if err := png.Encode(file, img); err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
		return nil
	}
	quality := opts.Quality
	if quality <= 0 {
		quality = 90
	}
	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// SaveScrollSequence walks the session's scroll dimension across its
// full range and writes one numbered frame per position into outputDir.
// This is the offline equivalent of animation playback: each step is an
// AdvanceScroll tick followed by a render. The scroll index is restored
// afterwards. Sessions without a scroll dimension (2D data) get a
// single frame.
func SaveScrollSequence(s *view.Session, outputDir, format string, opts Options) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating sequence directory: %w", err)
	}
	ext := "jpg"
	if strings.EqualFold(format, "png") {
		ext = "png"
	}

	eng := s.Engine()
	scroll := eng.ScrollDimension()
	if scroll < 0 {
		frame, err := s.Render()
		if err != nil {
			return err
		}
		name := models.FrameInfoFor(s).FileName(ext)
		return SaveFrame(frame, filepath.Join(outputDir, name), opts)
	}

	saved := eng.Roles()[scroll].Index
	defer eng.SetIndex(scroll, saved)

	size := eng.Roles()[scroll].Size
	if err := eng.SetIndex(scroll, 0); err != nil {
		return err
	}
	for pos := 0; pos < size; pos++ {
		frame, err := s.Render()
		if err != nil {
			return err
		}
		name := models.FrameInfoFor(s).FileName(ext)
		if err := SaveFrame(frame, filepath.Join(outputDir, name), opts); err != nil {
			return err
		}
		if !eng.AdvanceScroll(false) {
			break
		}
	}
	return nil
}
