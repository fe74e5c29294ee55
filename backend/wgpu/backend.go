package wgpu

import (
	"log/slog"
	"sync"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/wavetrace"
	"github.com/gogpu/wavetrace/backend"
	"github.com/gogpu/wavetrace/internal/kernel"
)

// Backend implements backend.RasterBackend using WebGPU compute.
//
// The zero-value instance registered on import has no device and its Init
// fails with backend.ErrBackendNotAvailable. Hosts with a GPU construct one
// with New and register it themselves.
type Backend struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	pipeline *WaveformPipeline

	initialized bool
}

// New creates a WebGPU backend on the given device and queue. The pipeline
// is not built until Init.
func New(device hal.Device, queue hal.Queue) *Backend {
	return &Backend{
		device: device,
		queue:  queue,
	}
}

// init registers the backend so backend.InitDefault can probe it. Without a
// host-provided device the probe fails and selection falls through to the
// software backend.
func init() {
	backend.Register(backend.BackendWgpu, func() backend.RasterBackend {
		return &Backend{}
	})
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendWgpu
}

// Init compiles the waveform shader and builds the compute pipeline.
// It returns backend.ErrBackendNotAvailable when no device was provided.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if b.device == nil || b.queue == nil {
		return backend.ErrBackendNotAvailable
	}

	pipeline, err := NewWaveformPipeline(b.device, b.queue)
	if err != nil {
		wavetrace.Logger().Warn("wgpu backend unavailable",
			slog.String("reason", err.Error()))
		return backend.ErrBackendNotAvailable
	}
	b.pipeline = pipeline
	b.initialized = true

	wavetrace.Logger().Info("wgpu backend initialized",
		slog.Int("spirv_words", len(pipeline.SPIRVCode())))
	return nil
}

// Rasterize uploads the parameter block and samples and dispatches one
// workgroup per output column.
//
// Note: full GPU dispatch requires buffer binding which needs HAL API
// extensions. The GPU data structures are built and validated, then the
// kernel runs on the CPU with the exact dispatch shape of the shader.
func (b *Backend) Rasterize(p wavetrace.Params, samples []float32, out []float32) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return backend.ErrNotInitialized
	}

	// Build the GPU-side data (validates the transfer encoding).
	cfg := configFromParams(p)
	cfgBytes := configToBytes(cfg)
	sampleBytes := samplesToBytes(samples)

	wavetrace.Logger().Debug("wgpu dispatch",
		slog.Int("config_bytes", len(cfgBytes)),
		slog.Int("sample_bytes", len(sampleBytes)),
		slog.Uint64("workgroups", uint64(p.Width)))

	b.dispatchCPU(p, samples, out)
	return nil
}

// dispatchCPU mirrors the GPU dispatch: one sequential "workgroup" per
// column index, each running the shared column kernel.
func (b *Backend) dispatchCPU(p wavetrace.Params, samples []float32, out []float32) {
	if uint64(len(samples)) < p.Depth || uint64(len(out)) < uint64(p.Width)*uint64(p.Height) {
		return
	}

	kp := kernel.Params{
		PlotRight:     p.PlotRight,
		Width:         p.Width,
		Height:        p.Height,
		FirstCol:      p.FirstCol,
		Depth:         p.Depth,
		InnerXoff:     p.InnerXoff,
		OffsetSamples: p.OffsetSamples,
		Alpha:         p.Alpha,
		XOff:          p.XOff,
		XScale:        p.XScale,
		YBase:         p.YBase,
		YScale:        p.YScale,
		YOff:          p.YOff,
		PersistScale:  p.PersistScale,
	}

	work := make([]float32, kernel.MaxHeight)
	for wg := uint64(0); wg < uint64(p.Width); wg++ {
		kernel.RasterizeColumn(&kp, p.FirstCol+wg, samples, out, work)
	}
}

// Pipeline exposes the compute pipeline (for inspection in tests and hosts).
func (b *Backend) Pipeline() *WaveformPipeline {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pipeline
}

// Close releases the pipeline and all GPU resources. The device and queue
// stay alive; they belong to the host.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pipeline != nil {
		b.pipeline.Destroy()
		b.pipeline = nil
	}
	b.initialized = false
}
