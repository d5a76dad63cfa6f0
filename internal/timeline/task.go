// Package timeline holds the task model behind the daily timeline: the task
// store, drafts, clock conversion, the hour selector and the filtered view.
// It has no terminal dependencies.
package timeline

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Status is the completion state of a task.
type Status string

const (
	StatusDone    Status = "Done"
	StatusNotDone Status = "Not Done"
)

// Toggle returns the other status.
func (s Status) Toggle() Status {
	if s == StatusDone {
		return StatusNotDone
	}
	return StatusDone
}

// Color is a palette tag, named after the utility class of its swatch.
type Color string

const (
	ColorBlue   Color = "bg-blue-500"
	ColorGreen  Color = "bg-green-500"
	ColorPurple Color = "bg-purple-500"
	ColorYellow Color = "bg-yellow-500"
	ColorPink   Color = "bg-pink-500"
	ColorRed    Color = "bg-red-500"
	ColorCyan   Color = "bg-cyan-500"
)

// Palette lists the selectable colors in menu order.
var Palette = []Color{
	ColorBlue,
	ColorGreen,
	ColorPurple,
	ColorYellow,
	ColorPink,
	ColorRed,
	ColorCyan,
}

var colorNames = map[Color]string{
	ColorBlue:   "Blue",
	ColorGreen:  "Green",
	ColorPurple: "Purple",
	ColorYellow: "Yellow",
	ColorPink:   "Pink",
	ColorRed:    "Red",
	ColorCyan:   "Cyan",
}

// Name returns the display name ("Blue") of the tag.
func (c Color) Name() string {
	if n, ok := colorNames[c]; ok {
		return n
	}
	return string(c)
}

// PaletteIndex returns the position of c in Palette, or -1.
func (c Color) PaletteIndex() int {
	for i, p := range Palette {
		if p == c {
			return i
		}
	}
	return -1
}

// ParseColor accepts either a tag ("bg-red-500") or a display name ("red").
func ParseColor(s string) (Color, error) {
	for _, c := range Palette {
		if string(c) == s || strings.EqualFold(c.Name(), s) {
			return c, nil
		}
	}
	return "", &ValidationError{Field: "color", Value: s, Reason: "not in palette"}
}

// Task is a block of time on the daily timeline.
// Start and End are fractional hours (9.25 is 09:15).
type Task struct {
	ID     string
	Name   string
	Start  float64
	End    float64
	Color  Color
	Status Status
}

// NewTaskID returns a fresh task identifier.
func NewTaskID() string {
	return uuid.NewString()
}

// IsDone reports whether the task is marked Done.
func (t Task) IsDone() bool {
	return t.Status == StatusDone
}

// Summary is the one-line text used for the clipboard and notifications.
func (t Task) Summary() string {
	return fmt.Sprintf("%s %s [%s]", t.Name, FormatRange(t.Start, t.End), t.Status)
}
