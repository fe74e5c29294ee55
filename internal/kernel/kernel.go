// Package kernel implements the dense waveform rasterization kernel on the
// CPU, preserving the execution shape of its compute-shader counterpart
// (backend/wgpu/shaders/waveform.wgsl): one 64-lane workgroup per output
// column, batch rounds over consecutive sample indices, and barrier-ordered
// accumulation into a per-column working buffer.
//
// Lanes are executed sequentially inside a column, which makes every barrier
// point a plain ordering of loops. This keeps the kernel deterministic and
// directly testable while columns themselves run in parallel (see
// internal/parallel).
package kernel

const (
	// LaneCount is the number of cooperating lanes per column group.
	// Matches the workgroup width of the GPU shader; a batch covers
	// LaneCount consecutive sample indices.
	LaneCount = 64

	// MaxHeight is the hard ceiling on raster height, driven by the size
	// of the per-column working buffer on the GPU. Calls with a larger
	// height are structural no-ops.
	MaxHeight = 2048
)

// Params carries the transform and dispatch parameters for one rasterization
// call. It mirrors the uniform block of the GPU shader.
type Params struct {
	// PlotRight is the rightmost visible pixel column (exclusive).
	// Columns at or beyond it are cleared but never populated.
	PlotRight uint32

	// Width and Height are the output raster dimensions.
	Width  uint32
	Height uint32

	// FirstCol offsets the column index of every dispatched work item,
	// for work partitioned beyond a single dispatch's addressable range.
	FirstCol uint64

	// Depth is the number of valid samples. Fewer than 2 samples means
	// no segments, and the call is a no-op.
	Depth uint64

	// InnerXoff shifts sample indices before the X projection, used when
	// the visible window is a sub-range of a larger capture buffer.
	InnerXoff int64

	// OffsetSamples shifts the inverse column-to-index mapping.
	OffsetSamples int64

	// Alpha is the intensity added per segment-column overlap.
	Alpha float32

	// XOff and XScale form the sample-index to pixel-X affine map.
	XOff   float32
	XScale float32

	// YBase, YScale and YOff form the sample-value to pixel-Y affine map.
	YBase  float32
	YScale float32
	YOff   float32

	// PersistScale is accepted for forward compatibility but currently
	// inert: every call starts from a zeroed column buffer.
	PersistScale float32
}

// laneRecords is the group-shared, lane-indexed contribution record for one
// batch round, laid out as a structure of arrays sized to the group width.
// On the GPU these live in workgroup shared memory.
type laneRecords struct {
	ymin    [LaneCount]int32
	ymax    [LaneCount]int32
	contrib [LaneCount]bool
}

// RasterizeColumn runs the waveform kernel for the single output column x.
//
// samples must hold at least Depth values and out at least Width*Height
// values in row-major order (out[y*Width+x]). work is the per-column scratch
// buffer and must have capacity for Height values; it is zeroed on entry, so
// callers may pass recycled buffers.
//
// Structurally invalid parameters (Height > MaxHeight, Depth < 2,
// x >= Width, XScale <= 0) leave the output untouched.
func RasterizeColumn(p *Params, x uint64, samples []float32, out []float32, work []float32) {
	if p.Height > MaxHeight || p.Depth < 2 || x >= uint64(p.Width) || p.XScale <= 0 {
		return
	}
	col := uint32(x)

	// First pass: clear the working buffer. On the GPU this is a
	// group-parallel strided clear followed by a barrier.
	work = work[:p.Height]
	clear(work)

	istart, iend := p.sampleRangeForColumn(col)

	// Columns entirely left of the visible data or right of the plotted
	// region still get a cleared column written out, just never populated.
	if iend > 0 && col < p.PlotRight {
		p.rasterizeRounds(col, istart, samples, work)
	}

	// Final barrier, then each lane copies its strided subset of the
	// working buffer into the destination raster.
	writeColumn(work, out, col, p.Width)
}

// rasterizeRounds iterates over batches of LaneCount consecutive sample
// indices starting at istart, applying each round's lane contributions to
// the working buffer in lane order.
func (p *Params) rasterizeRounds(col uint32, istart int64, samples []float32, work []float32) {
	var rec laneRecords
	colRight := float32(col + 1)
	lastSegment := int64(p.Depth) - 1

	for base := istart; ; base += LaneCount {
		// The whole group stops once every remaining segment starts
		// right of this column, or no segments remain.
		if base >= lastSegment {
			return
		}
		if p.projectX(base) > colRight {
			return
		}

		for lane := 0; lane < LaneCount; lane++ {
			p.rasterizeLane(&rec, lane, base+int64(lane), col, samples)
		}

		// Barrier: every lane's record for this round is visible
		// before any of them is applied.
		accumulateRound(&rec, work, p.Alpha)
	}
}

// writeColumn copies the finished working buffer into the destination
// raster, one cell per row of column col.
func writeColumn(work []float32, out []float32, col, width uint32) {
	for y, v := range work {
		out[uint32(y)*width+col] = v
	}
}
