package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/timeline-tui/internal/tui/state"
	"github.com/hy4ri/timeline-tui/internal/tui/styles"
)

// renderModal renders the add/edit task dialog.
func (r *Renderer) renderModal() string {
	f := r.TaskForm
	if f == nil {
		return styles.Dialog.Render("Form not initialized")
	}

	dialogWidth := 50
	if r.Width-4 < dialogWidth {
		dialogWidth = r.Width - 4
	}
	if dialogWidth < 30 {
		dialogWidth = 30
	}

	title := "Add New Task"
	submit := "Add"
	if f.IsEdit() {
		title = "Edit Task"
		submit = "Update"
	}

	label := func(field int, text string) string {
		if f.FocusIndex == field {
			return styles.InputLabelFocused.Render(text)
		}
		return styles.InputLabel.Render(text)
	}
	selector := func(field int, text string) string {
		s := "‹ " + text + " ›"
		if f.FocusIndex == field {
			return styles.Focused.Render(s)
		}
		return s
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(title) + "\n\n")

	b.WriteString(label(state.FormFieldName, "Task Name") + "\n")
	b.WriteString(f.Name.View() + "\n\n")

	b.WriteString(label(state.FormFieldStart, "Start Time") + "   " + f.Start.View() + "\n")
	b.WriteString(label(state.FormFieldEnd, "End Time  ") + "   " + f.End.View() + "\n\n")

	color := f.Color()
	swatch := lipgloss.NewStyle().Background(styles.PaletteColor(color)).Render("  ")
	b.WriteString(label(state.FormFieldColor, "Color") + "  " + swatch + " " + selector(state.FormFieldColor, color.Name()) + "\n")
	b.WriteString(label(state.FormFieldStatus, "Status") + " " + selector(state.FormFieldStatus, string(f.Status)) + "\n\n")

	if f.Err != nil {
		b.WriteString(styles.InputError.Render(f.Err.Error()) + "\n\n")
	}

	submitBtn := styles.Submit
	cancelBtn := styles.Cancel
	switch f.FocusIndex {
	case state.FormFieldSubmit:
		submitBtn = submitBtn.Inherit(styles.Focused)
	case state.FormFieldCancel:
		cancelBtn = cancelBtn.Inherit(styles.Focused)
	}
	b.WriteString(submitBtn.Render(submit) + "  " + cancelBtn.Render("Cancel") + "\n\n")

	b.WriteString(styles.HelpDesc.Render("tab: next field • h/l: change • enter: save • esc: cancel"))

	return styles.Dialog.Width(dialogWidth).Render(b.String())
}
