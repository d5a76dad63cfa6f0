package ui

import (
	"fmt"
	"strings"

	"github.com/hy4ri/timeline-tui/internal/timeline"
	"github.com/hy4ri/timeline-tui/internal/tui/styles"
)

const (
	// stripInset is the border plus padding on each side of the strip.
	stripInset = 2
	// stripFrameRows counts the two borders and the label and tick rows.
	stripFrameRows = 4
)

// stripWidth is the number of columns between the strip's inner edges.
func (r *Renderer) stripWidth() int {
	w := r.Width - 2*stripInset
	if w < 1 {
		w = 1
	}
	return w
}

// renderTimeline renders the hour axis and the task blocks. y is the screen
// row of the strip's top border. At most maxLanes rows are used for blocks;
// when more lanes are needed the last row counts the tasks left out.
func (r *Renderer) renderTimeline(y, maxLanes int) string {
	if maxLanes < 1 {
		maxLanes = 1
	}
	width := r.stripWidth()

	lines := []string{
		styles.HourLabel.Render(r.hourLabels(width)),
		styles.HourTick.Render(r.hourTicks(width)),
	}

	entries := r.Entries()
	if len(entries) == 0 {
		msg := "No tasks scheduled"
		if r.Query() != "" {
			msg = fmt.Sprintf("No tasks match %q", r.Query())
		}
		lines = append(lines, styles.EmptyState.Render(fit(msg, width)))
	} else {
		// Pack in start order so lanes fill left to right.
		byStart := append([]timeline.Entry(nil), entries...)
		timeline.Sort(byStart, timeline.SortByStart)

		selectedID := ""
		if e, ok := r.SelectedEntry(); ok {
			selectedID = e.Task.ID
		}

		lanes, count := timeline.Lanes(byStart, width)
		// First lane row on screen: border plus the label and tick rows.
		laneY := y + 1 + len(lines)
		shown := count
		if count > maxLanes {
			shown = maxLanes - 1
		}
		for lane := 0; lane < shown; lane++ {
			var inLane []timeline.Entry
			for i, e := range byStart {
				if lanes[i] == lane {
					inLane = append(inLane, e)
				}
			}
			lines = append(lines, r.renderLane(inLane, width, laneY+lane, selectedID))
		}
		if shown < count {
			hidden := 0
			for _, lane := range lanes {
				if lane >= shown {
					hidden++
				}
			}
			lines = append(lines, styles.HourLabel.Render(fit(fmt.Sprintf("+%d more", hidden), width)))
		}
	}

	return styles.Strip.Width(width + 2).Render(strings.Join(lines, "\n"))
}

// hourLabels places "{hour}:00" at the column of each visible hour. A label
// that would run into the previous one is dropped.
func (r *Renderer) hourLabels(width int) string {
	line := []rune(strings.Repeat(" ", width))
	next := 0
	for _, h := range r.visibleHours() {
		label := fmt.Sprintf("%d:00", h)
		col := timeline.HourColumn(h-timeline.FirstHour, width)
		if col+len(label) > width {
			col = width - len(label)
		}
		if col < next {
			continue
		}
		writeAt(line, col, label)
		next = col + len(label) + 1
	}
	return string(line)
}

func (r *Renderer) hourTicks(width int) string {
	line := []rune(strings.Repeat("─", width))
	for _, h := range r.visibleHours() {
		col := timeline.HourColumn(h-timeline.FirstHour, width)
		if col < width {
			line[col] = '┴'
		}
	}
	return string(line)
}

func (r *Renderer) visibleHours() []int {
	if len(r.VisibleHours) == 0 {
		return timeline.Hours()
	}
	return r.VisibleHours
}

// renderLane renders one row of non-overlapping blocks, given in start order,
// and records a click target for each.
func (r *Renderer) renderLane(entries []timeline.Entry, width, y int, selectedID string) string {
	var b strings.Builder
	col := 0
	for _, e := range entries {
		off, n := timeline.Span(e.Task, width)
		if n == 0 || off < col {
			continue
		}
		b.WriteString(strings.Repeat(" ", off-col))

		label := fit(" "+e.Task.Name+" "+string(e.Task.Status), n)
		style := styles.Block(e.Task.Color, e.Task.IsDone())
		if e.Task.ID == selectedID {
			style = style.Underline(true)
		}
		b.WriteString(style.Render(label))

		r.addTarget(stripInset+off, stripInset+off+n, y, "edit", e.Index)
		col = off + n
	}
	if col < width {
		b.WriteString(strings.Repeat(" ", width-col))
	}
	return b.String()
}
