package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/timeline-tui/internal/config"
	"github.com/hy4ri/timeline-tui/internal/logging"
	"github.com/hy4ri/timeline-tui/internal/timeline"
	"github.com/hy4ri/timeline-tui/internal/tui/components"
	"github.com/hy4ri/timeline-tui/internal/tui/styles"
)

// Keymap defines keybindings.
type Keymap interface {
	HelpItems() [][]string
	ShortHelp() []key.Binding
}

// ClickTarget is a screen region recorded by the renderer that maps a mouse
// press to an action on a task.
type ClickTarget struct {
	X0, X1 int // half-open column range
	Y      int
	Action string
	Index  int // store index
}

// Contains reports whether the cell (x, y) is inside the target.
func (c ClickTarget) Contains(x, y int) bool {
	return y == c.Y && x >= c.X0 && x < c.X1
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Config *config.Config
	Logger *log.Logger

	// Data
	Store timeline.Store

	// Modal state. EditIndex is only meaningful while ShowModal is set.
	ShowModal bool
	EditIndex *int
	TaskForm  *TaskForm

	// Search and sort
	SearchInput textinput.Model
	IsSearching bool
	SortKey     timeline.SortKey

	// List state: Cursor indexes the filtered, sorted entries
	Cursor int

	// Viewport
	Width         int
	Height        int
	VisibleHours  []int
	CardViewport  viewport.Model
	ViewportReady bool

	// UI state
	ShowHelp  bool
	StatusMsg string
	Err       error

	// Components
	Keymap   Keymap
	KeyState *KeyState
	HelpComp *components.HelpModel
	KeyHints help.Model

	// Reminders already sent, by task ID
	NotifiedTasks map[string]bool

	// Written by the renderer on every frame
	ClickTargets []ClickTarget
}

// New creates the initial state from the configuration.
func New(cfg *config.Config, logger *log.Logger) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 100
	search.Width = 32

	keymap := DefaultKeymap()
	helpComp := components.NewHelp()
	helpComp.SetKeymap(keymap.HelpItems())

	hints := help.New()
	hints.ShortSeparator = " • "
	hints.Styles.ShortKey = styles.StatusBarKey
	hints.Styles.ShortDesc = styles.StatusBarText
	hints.Styles.ShortSeparator = styles.StatusBarText

	return &State{
		Config:        cfg,
		Logger:        logger,
		Store:         timeline.NewStore(),
		SearchInput:   search,
		SortKey:       cfg.SortKey(),
		VisibleHours:  timeline.Hours(),
		Keymap:        keymap,
		KeyState:      &KeyState{},
		HelpComp:      helpComp,
		KeyHints:      hints,
		NotifiedTasks: make(map[string]bool),
	}
}

// Query returns the current search text.
func (s *State) Query() string {
	return s.SearchInput.Value()
}

// Entries returns the filtered and sorted view of the store.
func (s *State) Entries() []timeline.Entry {
	return timeline.Project(s.Store, s.Query(), s.SortKey)
}

// SelectedEntry returns the entry under the cursor.
func (s *State) SelectedEntry() (timeline.Entry, bool) {
	entries := s.Entries()
	if s.Cursor < 0 || s.Cursor >= len(entries) {
		return timeline.Entry{}, false
	}
	return entries[s.Cursor], true
}

// ClampCursor keeps the cursor inside the current view.
func (s *State) ClampCursor() {
	n := len(s.Entries())
	if s.Cursor >= n {
		s.Cursor = n - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// PixelWidth converts the terminal width to logical pixels.
func (s *State) PixelWidth() int {
	cell := 8
	if s.Config != nil && s.Config.UI.CellWidthPx > 0 {
		cell = s.Config.UI.CellWidthPx
	}
	return s.Width * cell
}

// GridColumns is the number of cards per row at the current width.
func (s *State) GridColumns() int {
	return timeline.GridColumns(s.PixelWidth())
}

// IsEditing reports whether the open modal edits an existing task.
func (s *State) IsEditing() bool {
	return s.ShowModal && s.EditIndex != nil
}
