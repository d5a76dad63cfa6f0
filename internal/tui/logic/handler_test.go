package logic

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/timeline-tui/internal/config"
	"github.com/hy4ri/timeline-tui/internal/logging"
	"github.com/hy4ri/timeline-tui/internal/timeline"
	"github.com/hy4ri/timeline-tui/internal/tui/state"
)

func newTestHandler(tasks ...timeline.Task) *Handler {
	s := state.New(config.DefaultConfig(), nil)
	s.Store = timeline.NewStore(tasks...)
	h := NewHandler(s)
	h.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(h *Handler, s string) {
	for _, r := range s {
		h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func mk(id, name string, start, end float64, status timeline.Status) timeline.Task {
	return timeline.Task{ID: id, Name: name, Start: start, End: end, Color: timeline.ColorBlue, Status: status}
}

func TestAddTaskThroughForm(t *testing.T) {
	h := newTestHandler()

	h.Update(key("a"))
	if !h.ShowModal || h.EditIndex != nil {
		t.Fatal("expected add modal to be open without an edit index")
	}

	typeText(h, "Standup")
	h.Update(key("tab"))
	typeText(h, "09:00")
	h.Update(key("tab"))
	typeText(h, "09:15")
	h.Update(key("enter"))

	if h.ShowModal {
		t.Fatalf("modal should close after a valid submit (form err: %v)", h.TaskForm.Err)
	}
	if h.Store.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", h.Store.Len())
	}
	got, _ := h.Store.At(0)
	if got.Name != "Standup" || got.Start != 9.0 || got.End != 9.25 {
		t.Errorf("unexpected task: %+v", got)
	}
	if got.Color != timeline.ColorBlue || got.Status != timeline.StatusNotDone {
		t.Errorf("unexpected defaults: %s/%s", got.Color, got.Status)
	}
}

func TestAddTaskRejectsBadTime(t *testing.T) {
	h := newTestHandler()

	h.Update(key("a"))
	typeText(h, "Broken")
	h.Update(key("tab"))
	typeText(h, "ab:cd")
	h.Update(key("tab"))
	typeText(h, "10:00")
	h.Update(key("enter"))

	if !h.ShowModal {
		t.Fatal("modal should stay open on a validation error")
	}
	if _, ok := timeline.IsValidationError(h.TaskForm.Err); !ok {
		t.Errorf("expected a validation error on the form, got %v", h.TaskForm.Err)
	}
	if h.Store.Len() != 0 {
		t.Error("nothing should be added")
	}

	h.Update(key("esc"))
	if h.ShowModal || h.TaskForm != nil {
		t.Error("esc should close the modal")
	}
}

func TestRejectedFormIsLogged(t *testing.T) {
	h := newTestHandler()
	var buf bytes.Buffer
	h.Logger = logging.NewWithWriter(&buf, log.DebugLevel, "")

	h.Update(key("a"))
	typeText(h, "Broken")
	h.Update(key("tab"))
	typeText(h, "25:00")
	h.Update(key("tab"))
	typeText(h, "10:00")
	h.Update(key("enter"))

	if !h.ShowModal || h.TaskForm.Err == nil {
		t.Fatal("form should stay open with its error")
	}
	if got := buf.String(); !strings.Contains(got, "task form rejected") || !strings.Contains(got, "25:00") {
		t.Errorf("expected the rejection in the log, got %q", got)
	}
}

func TestEditOpenShowsFormattedTimes(t *testing.T) {
	h := newTestHandler(mk("a", "Review", 9.25, 10, timeline.StatusNotDone))

	if err := h.openEditForm(0); err != nil {
		t.Fatalf("openEditForm: %v", err)
	}
	if !h.IsEditing() || *h.EditIndex != 0 {
		t.Fatal("expected edit modal for index 0")
	}
	if got := h.TaskForm.Start.Value(); got != "09:15" {
		t.Errorf("expected draft start 09:15, got %q", got)
	}

	if err := h.openEditForm(3); !errors.Is(err, timeline.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestEditCommitReplacesInPlace(t *testing.T) {
	h := newTestHandler(
		mk("a", "First", 9, 10, timeline.StatusNotDone),
		mk("b", "Second", 11, 12, timeline.StatusNotDone),
	)

	if err := h.openEditForm(1); err != nil {
		t.Fatal(err)
	}
	h.TaskForm.Name.SetValue("Second, renamed")
	h.TaskForm.End.SetValue("12:30")
	h.Update(key("enter"))

	if h.ShowModal || h.EditIndex != nil {
		t.Fatal("commit should close the modal and clear the edit index")
	}
	if h.Store.Len() != 2 {
		t.Fatalf("expected 2 tasks, got %d", h.Store.Len())
	}
	got, _ := h.Store.At(1)
	if got.ID != "b" || got.Name != "Second, renamed" || got.End != 12.5 {
		t.Errorf("unexpected edited task: %+v", got)
	}
}

func TestDeleteSelectedTask(t *testing.T) {
	h := newTestHandler(
		mk("a", "First", 9, 10, timeline.StatusNotDone),
		mk("b", "Second", 11, 12, timeline.StatusNotDone),
	)

	// Cursor starts on the first task in start order.
	h.Update(key("d"))
	h.Update(key("d"))

	if h.Store.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", h.Store.Len())
	}
	got, _ := h.Store.At(0)
	if got.ID != "b" {
		t.Errorf("expected the second task to remain, got %s", got.ID)
	}
}

func TestToggleStatusLeavesOthers(t *testing.T) {
	h := newTestHandler(
		mk("a", "First", 9, 10, timeline.StatusNotDone),
		mk("b", "Second", 11, 12, timeline.StatusNotDone),
		mk("c", "Third", 13, 14, timeline.StatusNotDone),
	)
	before := h.Store

	h.Update(key("l")) // select Second
	h.Update(key("x"))

	want := []timeline.Status{timeline.StatusNotDone, timeline.StatusDone, timeline.StatusNotDone}
	for i, st := range want {
		got, _ := h.Store.At(i)
		if got.Status != st {
			t.Errorf("task %d: expected %s, got %s", i, st, got.Status)
		}
	}
	if old, _ := before.At(1); old.Status != timeline.StatusNotDone {
		t.Error("status change must produce a new store")
	}

	h.Update(key("X"))
	if got, _ := h.Store.At(1); got.Status != timeline.StatusNotDone {
		t.Errorf("expected Not Done after X, got %s", got.Status)
	}
}

func TestActionsAddressStoreIndexUnderFilter(t *testing.T) {
	h := newTestHandler(
		mk("a", "Lunch", 12, 13, timeline.StatusNotDone),
		mk("b", "Standup", 9, 9.25, timeline.StatusNotDone),
	)

	h.Update(key("/"))
	typeText(h, "lunch")
	h.Update(key("enter"))

	if h.IsSearching {
		t.Fatal("enter should leave the search box")
	}
	if h.Query() != "lunch" {
		t.Fatalf("expected query to be kept, got %q", h.Query())
	}

	h.Update(key("x"))

	if got, _ := h.Store.At(0); got.Status != timeline.StatusDone {
		t.Errorf("Lunch should be Done, got %s", got.Status)
	}
	if got, _ := h.Store.At(1); got.Status != timeline.StatusNotDone {
		t.Errorf("Standup should be untouched, got %s", got.Status)
	}

	h.Update(key("esc"))
	if h.Query() != "" {
		t.Error("esc outside the search box should clear the query")
	}
}

func TestSortCycleKeepsSelection(t *testing.T) {
	h := newTestHandler(
		mk("a", "Late", 15, 16, timeline.StatusDone),
		mk("b", "Early", 8, 20, timeline.StatusNotDone),
	)

	// start order: b, a. Select a.
	h.Update(key("l"))
	if e, _ := h.SelectedEntry(); e.Task.ID != "a" {
		t.Fatalf("expected a selected, got %s", e.Task.ID)
	}

	h.Update(key("s"))
	if h.SortKey != timeline.SortByEnd {
		t.Fatalf("expected end sort, got %s", h.SortKey)
	}
	if e, _ := h.SelectedEntry(); e.Task.ID != "a" {
		t.Errorf("selection should follow the task, got %s", e.Task.ID)
	}
	if h.StatusMsg != "Sort by End Time" {
		t.Errorf("unexpected status %q", h.StatusMsg)
	}
}

func TestWindowSizeUpdatesVisibleHours(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		cols int
		want int
	}{
		{40, 3},   // 320px
		{80, 5},   // 640px
		{100, 9},  // 800px
		{140, 17}, // 1120px
	}
	for _, tt := range tests {
		h.Update(tea.WindowSizeMsg{Width: tt.cols, Height: 30})
		if len(h.VisibleHours) != tt.want {
			t.Errorf("%d cols: expected %d visible hours, got %d", tt.cols, tt.want, len(h.VisibleHours))
		}
	}
}

func TestCopyTaskUsesClipboard(t *testing.T) {
	h := newTestHandler(mk("a", "Standup", 9, 9.25, timeline.StatusNotDone))

	var copied string
	h.writeClip = func(text string) error {
		copied = text
		return nil
	}

	h.Update(key("y"))
	cmd := h.Update(key("y"))
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	h.Update(cmd())

	if copied != "Standup 09:00 - 09:15 [Not Done]" {
		t.Errorf("unexpected clipboard text %q", copied)
	}
	if h.StatusMsg != `Copied "Standup"` {
		t.Errorf("unexpected status %q", h.StatusMsg)
	}

	h.writeClip = func(string) error { return errors.New("no clipboard") }
	h.Update(key("y"))
	h.Update(h.Update(key("y"))())
	if h.Err == nil {
		t.Error("expected clipboard failure to be reported")
	}
}

func TestMouseClickOpensEdit(t *testing.T) {
	h := newTestHandler(mk("a", "First", 9, 10, timeline.StatusNotDone))
	h.ClickTargets = []state.ClickTarget{{X0: 10, X1: 20, Y: 5, Action: "edit", Index: 0}}

	h.Update(tea.MouseMsg{X: 3, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if h.ShowModal {
		t.Fatal("click outside the target should do nothing")
	}

	h.Update(tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !h.IsEditing() || *h.EditIndex != 0 {
		t.Fatal("click on the block should open the edit modal")
	}
}

func TestHelpOverlay(t *testing.T) {
	h := newTestHandler()

	h.Update(key("?"))
	if !h.ShowHelp {
		t.Fatal("? should open help")
	}
	cmd := h.Update(key("q"))
	if cmd == nil {
		t.Fatal("q in help should request close")
	}
	h.Update(cmd())
	if h.ShowHelp {
		t.Error("help should be closed")
	}
}
