package backend

import (
	"errors"

	"github.com/gogpu/wavetrace"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// RasterBackend is the interface for waveform rasterization engines.
// It exposes the rasterizer's single call contract through pluggable
// implementations (CPU software path, GPU compute path).
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type RasterBackend interface {
	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// Init initializes the backend.
	// This must be called before any rasterization.
	Init() error

	// Close releases all backend resources.
	// The backend must not be used after Close is called.
	Close()

	// Rasterize populates out with the intensity raster for samples
	// under the transform in p, with the same buffer and no-op
	// contract as wavetrace.Renderer.Rasterize. Errors report engine
	// failures (uninitialized backend, lost device), never parameter
	// contract violations.
	Rasterize(p wavetrace.Params, samples []float32, out []float32) error
}
