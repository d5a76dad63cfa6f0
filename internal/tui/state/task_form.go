package state

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/timeline-tui/internal/timeline"
)

// FormField constants for focus management
const (
	FormFieldName = iota
	FormFieldStart
	FormFieldEnd
	FormFieldColor
	FormFieldStatus
	FormFieldSubmit
	FormFieldCancel
)

const formFieldCount = 7

// TaskForm holds the draft task shown in the add/edit modal.
type TaskForm struct {
	Name       textinput.Model
	Start      textinput.Model
	End        textinput.Model
	ColorIndex int
	Status     timeline.Status

	FocusIndex int
	Original   *timeline.Task // nil when adding
	Err        error          // last validation error
}

// NewTaskForm creates an empty form for a new task.
func NewTaskForm(color timeline.Color) *TaskForm {
	return newTaskForm(timeline.NewDraft(color))
}

// NewEditTaskForm creates a form pre-filled from t.
func NewEditTaskForm(t timeline.Task) *TaskForm {
	f := newTaskForm(timeline.DraftFromTask(t))
	f.Original = &t
	return f
}

func newTaskForm(d timeline.Draft) *TaskForm {
	name := textinput.New()
	name.Placeholder = "Task name"
	name.CharLimit = 200
	name.Width = 30
	name.SetValue(d.Name)
	name.Focus()

	start := textinput.New()
	start.Placeholder = "HH:MM"
	start.CharLimit = 5
	start.Width = 6
	start.SetValue(d.Start)

	end := textinput.New()
	end.Placeholder = "HH:MM"
	end.CharLimit = 5
	end.Width = 6
	end.SetValue(d.End)

	colorIndex := d.Color.PaletteIndex()
	if colorIndex < 0 {
		colorIndex = 0
	}

	return &TaskForm{
		Name:       name,
		Start:      start,
		End:        end,
		ColorIndex: colorIndex,
		Status:     d.Status,
	}
}

// Update updates the form models.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			f.NextField()
			return nil
		case "shift+tab", "up":
			f.PrevField()
			return nil
		}

		switch f.FocusIndex {
		case FormFieldColor:
			switch msg.String() {
			case "h", "left":
				f.ColorIndex = (f.ColorIndex - 1 + len(timeline.Palette)) % len(timeline.Palette)
			case "l", "right", " ", "space":
				f.ColorIndex = (f.ColorIndex + 1) % len(timeline.Palette)
			}
			return nil
		case FormFieldStatus:
			switch msg.String() {
			case "h", "l", "left", "right", " ", "space":
				f.Status = f.Status.Toggle()
			}
			return nil
		case FormFieldSubmit, FormFieldCancel:
			switch msg.String() {
			case "h", "left", "l", "right":
				if f.FocusIndex == FormFieldSubmit {
					f.Focus(FormFieldCancel)
				} else {
					f.Focus(FormFieldSubmit)
				}
			}
			return nil
		}
	}

	// Only update text inputs if focused
	switch f.FocusIndex {
	case FormFieldName:
		f.Name, cmd = f.Name.Update(msg)
	case FormFieldStart:
		f.Start, cmd = f.Start.Update(msg)
	case FormFieldEnd:
		f.End, cmd = f.End.Update(msg)
	}
	return cmd
}

// NextField moves focus to the next field.
func (f *TaskForm) NextField() {
	f.Focus((f.FocusIndex + 1) % formFieldCount)
}

// PrevField moves focus to the previous field.
func (f *TaskForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + formFieldCount) % formFieldCount)
}

// Focus moves focus to the field at index.
func (f *TaskForm) Focus(index int) {
	f.FocusIndex = index
	f.Name.Blur()
	f.Start.Blur()
	f.End.Blur()

	switch index {
	case FormFieldName:
		f.Name.Focus()
	case FormFieldStart:
		f.Start.Focus()
	case FormFieldEnd:
		f.End.Focus()
	}
}

// Color returns the selected palette color.
func (f *TaskForm) Color() timeline.Color {
	return timeline.Palette[f.ColorIndex]
}

// IsEdit reports whether the form edits an existing task.
func (f *TaskForm) IsEdit() bool {
	return f.Original != nil
}

// ToDraft converts the form to a draft.
func (f *TaskForm) ToDraft() timeline.Draft {
	return timeline.Draft{
		Name:   f.Name.Value(),
		Start:  f.Start.Value(),
		End:    f.End.Value(),
		Color:  f.Color(),
		Status: f.Status,
	}
}

// SetWidth sets the width of the name input.
func (f *TaskForm) SetWidth(width int) {
	w := width - 16
	if w > 40 {
		w = 40
	}
	if w < 10 {
		w = 10
	}
	f.Name.Width = w
}
