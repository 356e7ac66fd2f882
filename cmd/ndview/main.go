package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"ndview/internal/models"
	"ndview/pkg/array"
	"ndview/pkg/config"
	"ndview/pkg/export"
	"ndview/pkg/transform"
	"ndview/pkg/view"
)

func main() {
	// Parse command line arguments
	inputFile := flag.String("input", "", "Raw little-endian float64 data file (omit to generate a test volume)")
	shapeStr := flag.String("shape", "64,64,16", "Comma-separated dimension sizes, outermost first")
	complexData := flag.Bool("complex", false, "Treat the input as interleaved real/imaginary pairs")
	xDim := flag.Int("x", -1, "Dimension for the X view axis (default: dimension 0)")
	yDim := flag.Int("y", -1, "Dimension for the Y view axis (default: dimension 1)")
	gridDim := flag.Int("grid", -1, "Dimension to tile as a mosaic")
	scrollDim := flag.Int("scroll", -1, "Dimension to scrub along (default: dimension 2 if present)")
	projection := flag.String("projection", "", "Complex projection: magnitude, phase, real or imag")
	fftAxes := flag.String("fft", "", "Comma-separated axes for the frequency-domain view")
	outputDir := flag.String("output", "", "Output directory (default: from config)")
	sequence := flag.Bool("sequence", false, "Export one frame per scroll position instead of a single frame")
	format := flag.String("format", "", "Frame format: jpg or png (default: from config)")
	configPath := flag.String("config", "ndview.yaml", "Configuration file path")
	flag.Parse()

	// Load configuration, falling back to defaults when the file is absent
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *outputDir == "" {
		*outputDir = cfg.Export.OutputDir
	}
	if *format == "" {
		*format = cfg.Export.Format
	}

	shape, err := models.ParseShape(*shapeStr)
	if err != nil {
		log.Fatalf("Invalid -shape: %v", err)
	}
	dataset := models.Dataset{Path: *inputFile, Shape: shape, Complex: *complexData}

	fmt.Println("================================")
	fmt.Println("NDVIEW - DIMENSION-ROLE SLICE AND MOSAIC EXPORT")
	fmt.Println("================================")
	fmt.Printf("Dataset: %s\n", dataset)

	startTime := time.Now()
	session, err := buildSession(dataset)
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	// Apply the requested role changes
	eng := session.Engine()
	if err := applyRoleFlags(eng, *xDim, *yDim, *gridDim, *scrollDim); err != nil {
		log.Fatalf("Failed to apply role flags: %v", err)
	}

	// Apply the requested data mode
	projName := *projection
	if projName == "" {
		projName = cfg.Display.Projection
	}
	if session.IsComplex() {
		proj, err := transform.ParseProjection(projName)
		if err != nil {
			log.Fatalf("Invalid -projection: %v", err)
		}
		session.SetProjection(proj)
	}
	if *fftAxes != "" {
		axes, err := models.ParseAxes(*fftAxes)
		if err != nil {
			log.Fatalf("Invalid -fft: %v", err)
		}
		if err := session.EnableFrequencyView(axes); err != nil {
			log.Fatalf("Failed to enable frequency view: %v", err)
		}
		fmt.Printf("Frequency view enabled over axes %v\n", session.FrequencyAxes())
	}

	fmt.Println("\nDimension roles:")
	fmt.Print(models.FrameInfoFor(session).Summary())

	opts := export.Options{
		AutoLimits:   cfg.Display.AutoLimits,
		LowQuantile:  cfg.Display.LowQuantile,
		HighQuantile: cfg.Display.HighQuantile,
		Min:          cfg.Display.Min,
		Max:          cfg.Display.Max,
		Quality:      cfg.Export.Quality,
	}

	if *sequence {
		fmt.Printf("Exporting scroll sequence to: %s\n", *outputDir)
		if err := export.SaveScrollSequence(session, *outputDir, *format, opts); err != nil {
			log.Fatalf("Sequence export failed: %v", err)
		}
	} else {
		frame, err := session.Render()
		if err != nil {
			log.Fatalf("Render failed: %v", err)
		}
		rows, cols := frame.Dims()
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
		path := filepath.Join(*outputDir, "frame."+*format)
		if err := export.SaveFrame(frame, path, opts); err != nil {
			log.Fatalf("Frame export failed: %v", err)
		}
		fmt.Printf("Exported %dx%d frame to: %s\n", rows, cols, path)
	}

	fmt.Printf("\nCompleted in %.2f seconds\n", time.Since(startTime).Seconds())
}

// buildSession loads the dataset from disk, or synthesizes a test
// volume when no input file was given, and wraps it in a session.
func buildSession(d models.Dataset) (*view.Session, error) {
	if d.Path == "" {
		return view.NewSession(testVolume(d.Shape))
	}
	file, err := os.Open(d.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if d.Complex {
		carr, err := array.ReadRawComplex(file, d.Shape...)
		if err != nil {
			return nil, err
		}
		return view.NewComplexSession(carr)
	}
	arr, err := array.ReadRaw(file, d.Shape...)
	if err != nil {
		return nil, err
	}
	return view.NewSession(arr)
}

// testVolume generates a smooth phantom: a centered radial falloff
// modulated along every extra dimension, so slices are visibly distinct
// at each scroll position.
func testVolume(shape []int) *array.Array {
	arr, err := array.New(shape...)
	if err != nil {
		log.Fatalf("Invalid shape %v: %v", shape, err)
	}
	data := arr.Values()
	idx := make([]int, len(shape))
	for flat := range data {
		rem := flat
		for d := len(shape) - 1; d >= 0; d-- {
			idx[d] = rem % shape[d]
			rem /= shape[d]
		}
		v := 1.0
		for d, i := range idx {
			center := float64(shape[d]-1) / 2
			span := center + 0.5
			t := (float64(i) - center) / span
			if d < 2 {
				v *= math.Exp(-2 * t * t)
			} else {
				v *= 0.5 + 0.5*math.Cos(math.Pi*t)
			}
		}
		data[flat] = v
	}
	return arr
}

// applyRoleFlags translates the role flags into engine operations, with
// negative values meaning "leave as-is". The grid flag is applied before
// the scroll flag so an explicit scroll request survives the grid
// re-partition; a scroll request naming the grid dimension itself is
// ignored by the engine like any other view-role dimension.
func applyRoleFlags(eng *view.Engine, x, y, grid, scroll int) error {
	if x >= 0 || y >= 0 {
		roles := eng.Roles()
		if x < 0 {
			x = indexOfRole(roles, view.ViewX)
		}
		if y < 0 {
			y = indexOfRole(roles, view.ViewY)
		}
		if err := eng.SetViewAxes(x, y); err != nil {
			return fmt.Errorf("setting view axes: %w", err)
		}
	}
	if grid >= 0 {
		if err := eng.ToggleGrid(grid); err != nil {
			return fmt.Errorf("setting grid dimension: %w", err)
		}
	}
	if scroll >= 0 {
		if err := eng.SetScrollDimension(scroll); err != nil {
			return fmt.Errorf("setting scroll dimension: %w", err)
		}
	}
	return nil
}

func indexOfRole(roles []view.DimState, r view.Role) int {
	for i, d := range roles {
		if d.Role == r {
			return i
		}
	}
	return -1
}
