package wavetrace

import "github.com/gogpu/wavetrace/internal/kernel"

const (
	// MaxHeight is the hard ceiling on raster height, driven by the
	// per-column working buffer size. Calls with Height above it are
	// silent no-ops.
	MaxHeight = kernel.MaxHeight

	// LaneCount is the number of cooperating lanes per column group.
	LaneCount = kernel.LaneCount
)

// Params carries the coordinate transform and dispatch parameters for one
// rasterization call. The zero value is not useful: at minimum Width,
// Height, Depth, Alpha and a positive XScale must be set.
//
// Structural contract violations (Height > MaxHeight, Depth < 2, a
// non-positive XScale) are absorbed as silent no-ops rather than errors,
// matching the kernel's GPU execution model where no per-column error
// channel exists.
type Params struct {
	// PlotRight is the rightmost visible pixel column (exclusive).
	// Columns at or beyond it are cleared but never populated.
	PlotRight uint32

	// Width and Height are the output raster dimensions. The output
	// buffer must hold at least Width*Height values, row-major by Y.
	Width  uint32
	Height uint32

	// FirstCol offsets every dispatched column index. Used when a frame
	// is partitioned across several calls.
	FirstCol uint64

	// Depth is the number of valid samples; a waveform needs at least
	// two samples to contain a segment.
	Depth uint64

	// InnerXoff shifts sample indices before the X projection, for
	// rendering a sub-range of a larger capture buffer.
	InnerXoff int64

	// OffsetSamples shifts the inverse column-to-index mapping by the
	// same window offset.
	OffsetSamples int64

	// Alpha is the intensity added to a cell per segment-column overlap.
	Alpha float32

	// XOff and XScale map sample index to pixel X:
	// x = (i + InnerXoff)*XScale + XOff. XScale must be positive.
	XOff   float32
	XScale float32

	// YBase, YScale and YOff map sample value to pixel Y:
	// y = (v + YOff)*YScale + YBase.
	YBase  float32
	YScale float32
	YOff   float32

	// PersistScale is reserved for persistence-mode decay across frames.
	// It is accepted for forward compatibility but currently inert:
	// every call accumulates from a zeroed column buffer.
	PersistScale float32
}

// kernelParams converts the public parameter block to the kernel's uniform
// layout. The two structs are kept separate so the kernel package stays
// free of public API concerns.
func (p *Params) kernelParams() kernel.Params {
	return kernel.Params{
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
}
