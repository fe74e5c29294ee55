// Command wavedemo renders a synthetic waveform to a grayscale PNG.
//
// It feeds a noisy sine sweep through the waveform rasterizer and writes the
// per-pixel intensity raster as an image, optionally upscaled for viewing.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"math"
	"math/rand"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/wavetrace"
	"github.com/gogpu/wavetrace/backend"
	_ "github.com/gogpu/wavetrace/backend/wgpu"
)

func main() {
	var (
		width       = flag.Int("width", 1024, "raster width in pixels")
		height      = flag.Int("height", 256, "raster height in pixels")
		count       = flag.Int("samples", 1<<16, "number of waveform samples")
		freq        = flag.Float64("freq", 40, "sine cycles across the capture")
		noise       = flag.Float64("noise", 0.08, "additive noise amplitude")
		alpha       = flag.Float64("alpha", 0.04, "intensity per segment-column overlap")
		scale       = flag.Int("scale", 1, "integer upscale factor for the output image")
		seed        = flag.Int64("seed", 1, "noise seed")
		output      = flag.String("output", "waveform.png", "output file")
		backendName = flag.String("backend", "", "rasterization backend (default: best available)")
	)
	flag.Parse()

	samples := synthesize(*count, *freq, *noise, *seed)

	eng, err := selectBackend(*backendName)
	if err != nil {
		log.Fatalf("Failed to select backend: %v", err)
	}
	defer eng.Close()
	log.Printf("Using %s backend", eng.Name())

	m := wavetrace.NewIntensityMap(*width, *height)
	p := wavetrace.Params{
		PlotRight: uint32(*width),
		Width:     uint32(*width),
		Height:    uint32(*height),
		Depth:     uint64(len(samples)),
		Alpha:     float32(*alpha),
		XScale:    float32(*width) / float32(len(samples)),
		YScale:    -float32(*height) / 2.2,
		YBase:     float32(*height) / 2,
	}

	if err := eng.Rasterize(p, samples, m.Data()); err != nil {
		log.Fatalf("Rasterize failed: %v", err)
	}

	if err := save(m, *output, *scale); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Waveform saved to %s (%dx%d, peak intensity %.2f)",
		*output, *width**scale, *height**scale, m.Max())
}

// synthesize builds a sine sweep with uniform noise, the classic dense
// waveform shape: many samples per output column.
func synthesize(n int, freq, noise float64, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	samples := make([]float32, n)
	for i := range samples {
		t := float64(i) / float64(n)
		// Sweep the frequency up over the capture.
		phase := 2 * math.Pi * freq * t * (1 + t)
		envelope := 0.4 + 0.6*math.Sin(math.Pi*t)
		v := envelope*math.Sin(phase) + noise*(2*rng.Float64()-1)
		samples[i] = float32(v)
	}
	return samples
}

func selectBackend(name string) (backend.RasterBackend, error) {
	if name == "" {
		return backend.InitDefault()
	}
	b := backend.Get(name)
	if b == nil {
		return nil, backend.ErrBackendNotAvailable
	}
	if err := b.Init(); err != nil {
		return nil, err
	}
	return b, nil
}

// save writes the intensity map as a grayscale PNG, upscaled with
// Catmull-Rom interpolation when scale > 1.
func save(m *wavetrace.IntensityMap, path string, scale int) error {
	if scale <= 1 {
		return m.SavePNG(path)
	}

	src := m.ToGray()
	dst := image.NewGray(image.Rect(0, 0, m.Width()*scale, m.Height()*scale))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	f, err := os.Create(path) //nolint:gosec // Path comes from the -output flag
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, dst)
}
