package logic

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/timeline-tui/internal/timeline"
	"github.com/hy4ri/timeline-tui/internal/tui/state"
)

// openAddForm opens the modal with an empty draft.
func (h *Handler) openAddForm() {
	h.TaskForm = state.NewTaskForm(h.Config.Color())
	h.TaskForm.SetWidth(h.Width)
	h.EditIndex = nil
	h.ShowModal = true
	h.KeyState.Reset()
}

// openEditForm opens the modal pre-filled with the task at index.
func (h *Handler) openEditForm(index int) error {
	t, err := h.Store.At(index)
	if err != nil {
		return err
	}

	h.TaskForm = state.NewEditTaskForm(t)
	h.TaskForm.SetWidth(h.Width)
	idx := index
	h.EditIndex = &idx
	h.ShowModal = true
	h.KeyState.Reset()
	return nil
}

// cancelForm closes the modal without touching the store.
func (h *Handler) cancelForm() {
	h.ShowModal = false
	h.EditIndex = nil
	h.TaskForm = nil
}

// submitForm validates the draft and appends it, or replaces the task being
// edited. On a validation error the modal stays open with the error shown.
func (h *Handler) submitForm() error {
	t, err := h.TaskForm.ToDraft().Build()
	if err != nil {
		h.TaskForm.Err = err
		return err
	}

	if h.EditIndex != nil {
		index := *h.EditIndex
		prev, err := h.Store.At(index)
		if err != nil {
			h.TaskForm.Err = err
			return err
		}
		next, err := h.Store.Replace(index, t)
		if err != nil {
			h.TaskForm.Err = err
			return err
		}
		h.Store = next
		t, _ = next.At(index)

		// A moved task can remind again.
		if prev.Start != t.Start {
			delete(h.NotifiedTasks, t.ID)
		}

		h.StatusMsg = fmt.Sprintf("Updated %q", t.Name)
		h.Logger.Info("task updated", "id", t.ID, "index", index, "name", t.Name,
			"start", timeline.FormatClock(t.Start), "end", timeline.FormatClock(t.End))
	} else {
		t.ID = timeline.NewTaskID()
		h.Store = h.Store.Add(t)
		h.StatusMsg = fmt.Sprintf("Added %q", t.Name)
		h.Logger.Info("task added", "id", t.ID, "name", t.Name,
			"start", timeline.FormatClock(t.Start), "end", timeline.FormatClock(t.End))
	}

	h.Err = nil
	h.cancelForm()
	h.selectTask(t.ID)
	return nil
}

// deleteTask removes the task at index.
func (h *Handler) deleteTask(index int) error {
	t, err := h.Store.At(index)
	if err != nil {
		return err
	}
	next, err := h.Store.Delete(index)
	if err != nil {
		return err
	}
	h.Store = next
	delete(h.NotifiedTasks, t.ID)
	h.ClampCursor()

	h.StatusMsg = fmt.Sprintf("Deleted %q", t.Name)
	h.Logger.Info("task deleted", "id", t.ID, "index", index, "name", t.Name)
	return nil
}

// setTaskStatus sets the status of the task at index.
func (h *Handler) setTaskStatus(index int, status timeline.Status) error {
	next, err := h.Store.SetStatus(index, status)
	if err != nil {
		return err
	}
	h.Store = next
	t, _ := next.At(index)
	h.selectTask(t.ID)

	h.StatusMsg = fmt.Sprintf("%q marked %s", t.Name, status)
	h.Logger.Info("task status", "id", t.ID, "index", index, "status", string(status))
	return nil
}

// copyTaskCmd copies the task summary to the system clipboard.
func (h *Handler) copyTaskCmd(t timeline.Task) tea.Cmd {
	text := t.Summary()
	name := t.Name
	return func() tea.Msg {
		if err := h.writeClip(text); err != nil {
			return errMsg{fmt.Errorf("copy to clipboard: %w", err)}
		}
		return statusMsg{msg: fmt.Sprintf("Copied %q", name)}
	}
}
