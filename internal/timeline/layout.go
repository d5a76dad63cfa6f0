package timeline

import "math"

// Span maps a task onto a strip of width columns covering the axis. offset is
// the first column and length the number of columns; tasks outside the axis
// are clipped and may come back with length 0. A task inside the axis always
// gets at least one column.
func Span(t Task, width int) (offset, length int) {
	if width <= 0 {
		return 0, 0
	}
	scale := float64(width) / HourSpan
	left := (t.Start - FirstHour) * scale
	right := (t.End - FirstHour) * scale

	left = math.Max(0, math.Min(left, float64(width)))
	right = math.Max(0, math.Min(right, float64(width)))

	offset = int(math.Round(left))
	end := int(math.Round(right))
	if offset >= width {
		return width, 0
	}
	if end <= offset {
		if t.End < FirstHour {
			return offset, 0
		}
		end = offset + 1
	}
	return offset, end - offset
}

// HourColumn is the column of the i-th hour of the axis.
func HourColumn(i, width int) int {
	return i * width / HourSpan
}

// Lanes assigns each entry to the first lane in which its span does not
// overlap an earlier one. The result is parallel to entries.
func Lanes(entries []Entry, width int) (lanes []int, count int) {
	lanes = make([]int, len(entries))
	var lastEnd []int // per lane, first free column
	for i, e := range entries {
		off, n := Span(e.Task, width)
		lane := -1
		for l, end := range lastEnd {
			if off >= end {
				lane = l
				break
			}
		}
		if lane < 0 {
			lane = len(lastEnd)
			lastEnd = append(lastEnd, 0)
		}
		lastEnd[lane] = off + n
		lanes[i] = lane
	}
	return lanes, len(lastEnd)
}

// GridColumns returns how many cards fit per row at the given width in
// logical pixels.
func GridColumns(width int) int {
	switch {
	case width < 640:
		return 1
	case width < BreakpointMedium:
		return 2
	case width < BreakpointLarge:
		return 3
	case width < 1280:
		return 4
	default:
		return 6
	}
}
