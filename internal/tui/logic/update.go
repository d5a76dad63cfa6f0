package logic

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/timeline-tui/internal/timeline"
	"github.com/hy4ri/timeline-tui/internal/tui/components"
	"github.com/hy4ri/timeline-tui/internal/tui/state"
)

// Handler applies messages to the shared state.
type Handler struct {
	*state.State

	// Side-effect hooks, swapped out in tests
	notify    func(title, message string) error
	writeClip func(text string) error
}

// NewHandler creates a handler for s.
func NewHandler(s *state.State) *Handler {
	return &Handler{
		State: s,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		writeClip: clipboard.WriteAll,
	}
}

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }

// Init returns the commands to run at startup.
func (h *Handler) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if h.Config.UI.Notifications {
		cmds = append(cmds, checkDueCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles a message and returns the next command.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		return h.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case checkDueMsg:
		return h.handleCheckDue(time.Time(msg))

	case components.CloseHelpMsg:
		h.ShowHelp = false
		return nil

	case errMsg:
		h.Err = msg.err
		h.Logger.Error("command failed", "err", msg.err)
		return nil

	case statusMsg:
		h.Err = nil
		h.StatusMsg = msg.msg
		return nil
	}

	// Forward non-key messages (like blink) to active inputs
	if h.ShowModal && h.TaskForm != nil {
		return h.TaskForm.Update(msg)
	}
	if h.IsSearching {
		var cmd tea.Cmd
		h.SearchInput, cmd = h.SearchInput.Update(msg)
		return cmd
	}

	return nil
}

// handleWindowSizeMsg records the new size and recomputes the visible hours.
func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height
	h.VisibleHours = timeline.VisibleHours(h.PixelWidth())

	// The renderer shrinks the height to whatever is left below the timeline.
	vpWidth := msg.Width - 4
	if vpWidth < 20 {
		vpWidth = 20
	}
	vpHeight := msg.Height - 12
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !h.ViewportReady {
		h.CardViewport = viewport.New(vpWidth, vpHeight)
		h.CardViewport.Style = lipgloss.NewStyle()
		h.CardViewport.MouseWheelEnabled = true
		h.ViewportReady = true
	} else {
		h.CardViewport.Width = vpWidth
		h.CardViewport.Height = vpHeight
	}

	h.HelpComp.SetSize(msg.Width, msg.Height)
	if h.TaskForm != nil {
		h.TaskForm.SetWidth(msg.Width)
	}

	h.Logger.Debug("resize", "cols", msg.Width, "rows", msg.Height, "px", h.PixelWidth(), "hours", len(h.VisibleHours))
	return nil
}
