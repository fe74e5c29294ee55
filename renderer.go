package wavetrace

import (
	"log/slog"

	"github.com/gogpu/wavetrace/internal/kernel"
	"github.com/gogpu/wavetrace/internal/parallel"
)

// Renderer rasterizes waveforms into intensity rasters on the CPU.
//
// Output columns are independent, so the renderer chunks them into ranges
// and executes the column kernel on a work-stealing worker pool. Within a
// column the kernel preserves the 64-lane group structure of its GPU
// counterpart, executed deterministically.
//
// Renderer is safe for concurrent use as long as concurrent calls write to
// distinct output buffers.
type Renderer struct {
	pool           *parallel.WorkerPool
	bufs           *parallel.BufferPool
	columnsPerTask int
}

// NewRenderer creates a renderer. With no options it uses GOMAXPROCS
// workers and the default column chunk size.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Renderer{
		pool:           parallel.NewWorkerPool(o.workers),
		bufs:           parallel.NewBufferPool(kernel.MaxHeight),
		columnsPerTask: o.columnsPerTask,
	}
}

// Rasterize populates out with the intensity raster for samples under the
// transform in p. out must hold at least Width*Height values, row-major by
// Y; samples must hold at least Depth values. Each column x receives its
// accumulated intensities at out[y*Width+x]; columns skipped by the
// kernel's structural rules are left untouched.
//
// There is no error return: invalid structural parameters are absorbed as
// no-ops by contract. Undersized buffers are rejected before dispatch (and
// logged) so worker goroutines never index out of range.
func (r *Renderer) Rasterize(p Params, samples []float32, out []float32) {
	if p.Width == 0 || p.Height == 0 {
		return
	}
	if uint64(len(samples)) < p.Depth {
		Logger().Warn("wavetrace: sample buffer shorter than depth",
			slog.Uint64("depth", p.Depth), slog.Int("len", len(samples)))
		return
	}
	if uint64(len(out)) < uint64(p.Width)*uint64(p.Height) {
		Logger().Warn("wavetrace: output buffer smaller than raster",
			slog.Uint64("need", uint64(p.Width)*uint64(p.Height)), slog.Int("len", len(out)))
		return
	}

	kp := p.kernelParams()
	ranges := parallel.SplitColumns(p.Width, r.columnsPerTask)

	work := make([]func(), len(ranges))
	for i, rg := range ranges {
		rg := rg
		work[i] = func() {
			buf := r.bufs.Get()
			defer r.bufs.Put(buf)
			for x := rg.Start; x < rg.End; x++ {
				kernel.RasterizeColumn(&kp, p.FirstCol+uint64(x), samples, out, buf)
			}
		}
	}
	r.pool.ExecuteAll(work)
}

// RasterizeMap is Rasterize writing into an IntensityMap. The map's
// dimensions override Width and Height in p.
func (r *Renderer) RasterizeMap(p Params, samples []float32, m *IntensityMap) {
	if m == nil {
		return
	}
	p.Width = uint32(m.Width())   //nolint:gosec // map dimensions are non-negative
	p.Height = uint32(m.Height()) //nolint:gosec // map dimensions are non-negative
	r.Rasterize(p, samples, m.Data())
}

// Workers returns the number of workers in the renderer's pool.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Close releases the renderer's worker pool. The renderer must not be used
// after Close.
func (r *Renderer) Close() {
	r.pool.Close()
}
