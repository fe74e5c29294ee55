package kernel

// rasterizeLane projects, tests and clips the segment between samples i and
// i+1 against column col, recording the covered row range in the lane's slot
// of rec. Lanes whose index falls outside [0, Depth-1) or whose segment
// misses the column record no contribution for this round.
//
// Clipping is asymmetric: only the near edge is recomputed by interpolation,
// the far endpoint is kept raw. For steep segments spanning several columns
// this over-draws the vertical extent inside one column; that approximation
// is part of the kernel's contract, not a clipping bug.
func (p *Params) rasterizeLane(rec *laneRecords, lane int, i int64, col uint32, samples []float32) {
	rec.contrib[lane] = false
	if i < 0 || i >= int64(p.Depth)-1 {
		return
	}

	leftx := p.projectX(i)
	lefty := p.projectY(samples[i])
	rightx := p.projectX(i + 1)
	righty := p.projectY(samples[i+1])

	colLeft := float32(col)
	colRight := float32(col + 1)
	if rightx < colLeft || leftx > colRight {
		return
	}

	// Zero pixel width means no defined slope; such segments are skipped
	// rather than dividing by zero.
	if rightx == leftx {
		return
	}
	slope := (righty - lefty) / (rightx - leftx)

	starty := lefty
	endy := righty
	if leftx < colLeft {
		starty = interpolateY(leftx, lefty, slope, colLeft)
	} else {
		endy = interpolateY(leftx, lefty, slope, colRight)
	}

	// Clamp both endpoints so the shared working buffer is never written
	// out of range.
	maxY := float32(p.Height - 1)
	starty = clamp32(starty, 0, maxY)
	endy = clamp32(endy, 0, maxY)

	rec.ymin[lane] = int32(floor32(min32(starty, endy)))
	rec.ymax[lane] = int32(floor32(max32(starty, endy)))
	rec.contrib[lane] = true
}
