package timeline

import "strings"

// Draft is the editable, text-based copy of a task used by the task form.
type Draft struct {
	Name   string
	Start  string
	End    string
	Color  Color
	Status Status
}

// NewDraft returns an empty draft with the given default color.
func NewDraft(color Color) Draft {
	if color.PaletteIndex() < 0 {
		color = ColorBlue
	}
	return Draft{
		Color:  color,
		Status: StatusNotDone,
	}
}

// DraftFromTask copies t into a draft, formatting its times as "HH:MM".
func DraftFromTask(t Task) Draft {
	return Draft{
		Name:   t.Name,
		Start:  FormatClock(t.Start),
		End:    FormatClock(t.End),
		Color:  t.Color,
		Status: t.Status,
	}
}

// Build parses and validates the draft. The returned task has no ID; callers
// assign a fresh one for new tasks or keep the existing one on edit.
func (d Draft) Build() (Task, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return Task{}, &ValidationError{Field: "name", Reason: "name is required"}
	}

	start, err := ParseClock("start", d.Start)
	if err != nil {
		return Task{}, err
	}
	end, err := ParseClock("end", d.End)
	if err != nil {
		return Task{}, err
	}
	if end < start {
		return Task{}, &ValidationError{Field: "end", Value: d.End, Reason: "end is before start"}
	}

	color := d.Color
	if color.PaletteIndex() < 0 {
		return Task{}, &ValidationError{Field: "color", Value: string(d.Color), Reason: "not in palette"}
	}
	status := d.Status
	if status != StatusDone && status != StatusNotDone {
		return Task{}, &ValidationError{Field: "status", Value: string(d.Status), Reason: `must be "Done" or "Not Done"`}
	}

	return Task{
		Name:   name,
		Start:  start,
		End:    end,
		Color:  color,
		Status: status,
	}, nil
}
