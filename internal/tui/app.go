// Package tui provides the terminal user interface for the daily task timeline.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/timeline-tui/internal/config"
	"github.com/hy4ri/timeline-tui/internal/tui/logic"
	"github.com/hy4ri/timeline-tui/internal/tui/state"
	"github.com/hy4ri/timeline-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application. The handler and the
// renderer share one State: the handler mutates it, the renderer reads it
// and records where things were drawn.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates a new App with an empty task store.
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	s := state.New(cfg, logger)
	return &App{
		state:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}

// State exposes the shared state, mainly for tests.
func (a *App) State() *state.State {
	return a.state
}
