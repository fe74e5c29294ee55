package backend

import (
	"github.com/gogpu/wavetrace"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU-based software backend.
	BackendSoftware = "software"
	// BackendWgpu is the name of the GPU compute backend (gogpu/wgpu).
	BackendWgpu = "wgpu"
)

// SoftwareBackend is the CPU rasterization backend. It wraps
// wavetrace.Renderer, so columns run on the renderer's worker pool.
type SoftwareBackend struct {
	renderer    *wavetrace.Renderer
	initialized bool
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RasterBackend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software rasterization backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	if b.renderer == nil {
		b.renderer = wavetrace.NewRenderer()
	}
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	if b.renderer != nil {
		b.renderer.Close()
		b.renderer = nil
	}
	b.initialized = false
}

// Rasterize runs the column kernel on the CPU worker pool.
func (b *SoftwareBackend) Rasterize(p wavetrace.Params, samples []float32, out []float32) error {
	if !b.initialized {
		return ErrNotInitialized
	}
	b.renderer.Rasterize(p, samples, out)
	return nil
}

// Renderer returns the underlying renderer for advanced usage.
// Returns nil before Init or after Close.
func (b *SoftwareBackend) Renderer() *wavetrace.Renderer {
	return b.renderer
}
