package timeline

// The timeline axis runs from FirstHour to LastHour inclusive.
const (
	FirstHour = 6
	LastHour  = 22
	HourSpan  = LastHour - FirstHour + 1
)

// Width breakpoints, in logical pixels.
const (
	BreakpointSmall  = 480
	BreakpointMedium = 768
	BreakpointLarge  = 1024
)

// Hours returns the full axis, 6 through 22.
func Hours() []int {
	hours := make([]int, 0, HourSpan)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// VisibleHours returns the hours to label for a viewport of the given width
// in logical pixels.
func VisibleHours(width int) []int {
	switch {
	case width < BreakpointSmall:
		return []int{6, 12, 18}
	case width < BreakpointMedium:
		return everyNth(Hours(), 4)
	case width < BreakpointLarge:
		return everyNth(Hours(), 2)
	default:
		return Hours()
	}
}

func everyNth(hours []int, n int) []int {
	var out []int
	for i, h := range hours {
		if i%n == 0 {
			out = append(out, h)
		}
	}
	return out
}
