package kernel

import "math"

// Coordinate mapping between sample-index space and pixel space. These are
// pure functions shared by every lane.

// projectX maps a sample index to its pixel X coordinate.
func (p *Params) projectX(i int64) float32 {
	return float32(i+p.InnerXoff)*p.XScale + p.XOff
}

// projectY maps a sample value to its pixel Y coordinate.
func (p *Params) projectY(v float32) float32 {
	return (v+p.YOff)*p.YScale + p.YBase
}

// sampleRangeForColumn inverts the X projection for pixel column x, giving
// the half-open sample-index range [istart, iend) whose segments may touch
// the column. No clamping to [0, Depth) happens here; range validity is
// re-checked per sample.
func (p *Params) sampleRangeForColumn(x uint32) (istart, iend int64) {
	istart = int64(floor32(float32(x)/p.XScale)) + p.OffsetSamples
	iend = int64(floor32(float32(x+1)/p.XScale)) + p.OffsetSamples
	return istart, iend
}

// interpolateY evaluates the line through (x0, y0) with the given slope at x.
func interpolateY(x0, y0, slope, x float32) float32 {
	return y0 + (x-x0)*slope
}

func floor32(x float32) float32 { return float32(math.Floor(float64(x))) }

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
