package logic

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/timeline-tui/internal/timeline"
)

// reminderWindow is how late a reminder may still fire after a task starts.
const reminderWindow = 5 * time.Minute

type checkDueMsg time.Time

func checkDueCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return checkDueMsg(t)
	})
}

// hourOfDay converts t to a fractional hour on the local clock.
func hourOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}

func (h *Handler) handleCheckDue(t time.Time) tea.Cmd {
	// Always schedule the next check
	cmds := []tea.Cmd{checkDueCmd()}

	if !h.Config.UI.Notifications {
		return tea.Batch(cmds...)
	}

	now := hourOfDay(t)
	window := reminderWindow.Hours()

	for _, task := range h.Store.Tasks() {
		if h.NotifiedTasks[task.ID] || task.IsDone() {
			continue
		}
		if now < task.Start {
			continue
		}

		h.NotifiedTasks[task.ID] = true

		if now-task.Start > window {
			// Started long ago; mark it so we don't check again
			h.Logger.Debug("skipping late reminder", "id", task.ID, "name", task.Name,
				"start", timeline.FormatClock(task.Start))
			continue
		}

		h.Logger.Info("sending reminder", "id", task.ID, "name", task.Name)
		cmds = append(cmds, h.notifyCmd(task))
	}

	return tea.Batch(cmds...)
}

func (h *Handler) notifyCmd(task timeline.Task) tea.Cmd {
	title := "Task starting"
	body := task.Summary()
	return func() tea.Msg {
		if err := h.notify(title, body); err != nil {
			return errMsg{fmt.Errorf("send reminder: %w", err)}
		}
		return nil
	}
}
