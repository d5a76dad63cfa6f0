package logic

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/timeline-tui/internal/timeline"
	"github.com/hy4ri/timeline-tui/internal/tui/state"
)

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Only ctrl+c is truly global
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if h.ShowHelp {
		_, cmd := h.HelpComp.Update(msg)
		return cmd
	}

	// Route key messages to the modal and the search box before the keymap,
	// so typed text never triggers actions.
	if h.ShowModal {
		return h.handleFormKeyMsg(msg)
	}
	if h.IsSearching {
		return h.handleSearchKeyMsg(msg)
	}

	action, ok := h.KeyState.HandleKey(msg, h.Keymap)
	if !ok || action == "" {
		return nil
	}

	switch action {
	case "quit":
		return tea.Quit
	case "help":
		h.ShowHelp = true
		return nil
	case "back":
		if h.Query() != "" {
			h.SearchInput.SetValue("")
			h.ClampCursor()
		}
		h.Err = nil
		h.StatusMsg = ""
		return nil

	case "left":
		h.moveCursor(-1)
	case "right":
		h.moveCursor(1)
	case "up":
		h.moveCursor(-h.GridColumns())
	case "down":
		h.moveCursor(h.GridColumns())
	case "top":
		h.Cursor = 0
		h.ClampCursor()
	case "bottom":
		h.Cursor = len(h.Entries()) - 1
		h.ClampCursor()

	case "search":
		h.IsSearching = true
		h.SearchInput.Focus()
		return textinput.Blink
	case "sort":
		h.cycleSort()

	case "add":
		h.openAddForm()
		return textinput.Blink
	case "edit":
		if e, ok := h.SelectedEntry(); ok {
			h.reportErr(h.openEditForm(e.Index))
			return textinput.Blink
		}
	case "done":
		h.setSelectedStatus(timeline.StatusDone)
	case "not_done":
		h.setSelectedStatus(timeline.StatusNotDone)
	case "toggle":
		if e, ok := h.SelectedEntry(); ok {
			h.reportErr(h.setTaskStatus(e.Index, e.Task.Status.Toggle()))
		}
	case "delete":
		if e, ok := h.SelectedEntry(); ok {
			h.reportErr(h.deleteTask(e.Index))
		}
	case "copy":
		if e, ok := h.SelectedEntry(); ok {
			return h.copyTaskCmd(e.Task)
		}
	}

	return nil
}

// handleFormKeyMsg handles keys while the add/edit modal is open.
func (h *Handler) handleFormKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if h.TaskForm == nil {
		h.cancelForm()
		return nil
	}

	switch msg.String() {
	case "esc":
		h.cancelForm()
		return nil
	case "enter", "ctrl+s":
		if h.TaskForm.FocusIndex == state.FormFieldCancel {
			h.cancelForm()
			return nil
		}
		// The form stays open and shows the error.
		if err := h.submitForm(); err != nil {
			h.Logger.Debug("task form rejected", "err", err)
		}
		return nil
	}

	return h.TaskForm.Update(msg)
}

// handleSearchKeyMsg handles keys while the search box has focus.
func (h *Handler) handleSearchKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		h.IsSearching = false
		h.SearchInput.Blur()
		return nil
	case "esc":
		h.IsSearching = false
		h.SearchInput.SetValue("")
		h.SearchInput.Blur()
		h.ClampCursor()
		return nil
	}

	var cmd tea.Cmd
	h.SearchInput, cmd = h.SearchInput.Update(msg)
	h.Cursor = 0
	return cmd
}

// handleMouseMsg maps left clicks onto the targets recorded by the last render.
func (h *Handler) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	// Wheel scrolls the card grid
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if !h.ShowModal && !h.ShowHelp && h.ViewportReady {
			var cmd tea.Cmd
			h.CardViewport, cmd = h.CardViewport.Update(msg)
			return cmd
		}
		return nil
	}

	if msg.Button != tea.MouseButtonLeft || h.ShowModal || h.ShowHelp {
		return nil
	}

	for _, target := range h.ClickTargets {
		if !target.Contains(msg.X, msg.Y) {
			continue
		}
		return h.runClickTarget(target)
	}
	return nil
}

func (h *Handler) runClickTarget(target state.ClickTarget) tea.Cmd {
	switch target.Action {
	case "add":
		h.openAddForm()
		return textinput.Blink
	case "search":
		h.IsSearching = true
		h.SearchInput.Focus()
		return textinput.Blink
	case "sort":
		h.cycleSort()
		return nil
	}

	// Task actions also select the task they were clicked on.
	if t, err := h.Store.At(target.Index); err == nil {
		h.selectTask(t.ID)
	}

	switch target.Action {
	case "edit":
		h.reportErr(h.openEditForm(target.Index))
		return textinput.Blink
	case "done":
		h.reportErr(h.setTaskStatus(target.Index, timeline.StatusDone))
	case "not_done":
		h.reportErr(h.setTaskStatus(target.Index, timeline.StatusNotDone))
	case "delete":
		h.reportErr(h.deleteTask(target.Index))
	}
	return nil
}

func (h *Handler) setSelectedStatus(status timeline.Status) {
	if e, ok := h.SelectedEntry(); ok {
		h.reportErr(h.setTaskStatus(e.Index, status))
	}
}

// cycleSort switches to the next sort key, keeping the selected task selected.
func (h *Handler) cycleSort() {
	selected, hasSelection := h.SelectedEntry()
	h.SortKey = h.SortKey.Next()
	if hasSelection {
		h.selectTask(selected.Task.ID)
	}
	h.StatusMsg = h.SortKey.Label()
}

// reportErr surfaces err in the status bar.
func (h *Handler) reportErr(err error) {
	if err != nil {
		h.Err = err
		h.Logger.Error("action failed", "err", err)
	}
}
