package parallel

// ColumnRange is a half-open range [Start, End) of output column indices
// handled by one work item.
type ColumnRange struct {
	Start uint32
	End   uint32
}

// Len returns the number of columns in the range.
func (r ColumnRange) Len() int {
	return int(r.End - r.Start)
}

// DefaultColumnsPerTask is the default chunk size for column work items.
// Large enough to amortize queue traffic, small enough that stealing can
// still rebalance a skewed workload.
const DefaultColumnsPerTask = 16

// SplitColumns partitions [0, width) into ranges of at most perTask columns.
// If perTask is 0 or negative, DefaultColumnsPerTask is used.
func SplitColumns(width uint32, perTask int) []ColumnRange {
	if width == 0 {
		return nil
	}
	if perTask <= 0 {
		perTask = DefaultColumnsPerTask
	}
	step := uint32(perTask)

	ranges := make([]ColumnRange, 0, (width+step-1)/step)
	for start := uint32(0); start < width; start += step {
		end := start + step
		if end > width {
			end = width
		}
		ranges = append(ranges, ColumnRange{Start: start, End: end})
	}
	return ranges
}
