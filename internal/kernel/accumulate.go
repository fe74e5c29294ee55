package kernel

// accumulateRound serializes one round of lane contributions into the column
// working buffer.
//
// On the GPU the group walks the lane index t from 0 to LaneCount-1 with a
// full barrier between steps; while lane t's record is being applied, all
// lanes cooperatively stride across [ymin_t, ymax_t], each handling the rows
// matching its own lane id modulo LaneCount. Only one source record is live
// at a time, so no two lanes ever write the same cell between barriers, and
// every contributing segment is applied exactly once per round.
//
// Executed sequentially the same structure collapses to an ordered walk over
// the records, adding alpha once per covered row.
func accumulateRound(rec *laneRecords, work []float32, alpha float32) {
	for t := 0; t < LaneCount; t++ {
		if !rec.contrib[t] {
			continue
		}
		for y := rec.ymin[t]; y <= rec.ymax[t]; y++ {
			work[y] += alpha
		}
	}
}
