package timeline

import "testing"

func TestSpan(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		width      int
		off, n     int
	}{
		{"first hour", 6, 7, 170, 0, 10},
		{"mid day", 12, 14, 170, 60, 20},
		{"tiny task keeps a column", 9, 9.01, 170, 30, 1},
		{"clipped at end", 22, 24, 170, 160, 10},
		{"before axis", 4, 5, 170, 0, 0},
		{"after axis", 23, 23.5, 170, 170, 0},
		{"no width", 9, 10, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, n := Span(Task{Start: tt.start, End: tt.end}, tt.width)
			if off != tt.off || n != tt.n {
				t.Errorf("Span(%v-%v, %d) = (%d, %d), want (%d, %d)", tt.start, tt.end, tt.width, off, n, tt.off, tt.n)
			}
		})
	}
}

func TestLanes(t *testing.T) {
	entries := []Entry{
		{Task: Task{Start: 9, End: 11}},
		{Task: Task{Start: 10, End: 12}},
		{Task: Task{Start: 11, End: 12}},
		{Task: Task{Start: 9.5, End: 10}},
	}
	lanes, count := Lanes(entries, 170)

	want := []int{0, 1, 0, 2}
	for i := range want {
		if lanes[i] != want[i] {
			t.Errorf("entry %d: expected lane %d, got %d", i, want[i], lanes[i])
		}
	}
	if count != 3 {
		t.Errorf("expected 3 lanes, got %d", count)
	}
}

func TestGridColumns(t *testing.T) {
	tests := map[int]int{320: 1, 640: 2, 800: 3, 1100: 4, 1600: 6}
	for w, want := range tests {
		if got := GridColumns(w); got != want {
			t.Errorf("GridColumns(%d) = %d, want %d", w, got, want)
		}
	}
}
