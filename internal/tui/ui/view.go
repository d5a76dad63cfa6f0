package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/timeline-tui/internal/tui/state"
	"github.com/hy4ri/timeline-tui/internal/tui/styles"
)

// Title is the page header.
const Title = "Your Daily Task Timeline"

// Screen layout. Everything left of the strip and cards is a fixed margin so
// click targets can be computed from the rendered widths.
const (
	marginLeft  = 2
	gap         = 1
	minCardRows = 3
)

type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

// View renders the whole screen and records the click targets for the frame.
func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	r.ClickTargets = r.ClickTargets[:0]

	if r.ShowHelp {
		return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, r.HelpComp.View())
	}
	if r.ShowModal {
		return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, r.renderModal())
	}

	return r.renderMainView()
}

// renderMainView stacks header, toolbar, timeline strip, card grid and status
// bar. y tracks the screen row of the next line.
func (r *Renderer) renderMainView() string {
	var sections []string
	y := 0

	header := r.renderHeader()
	sections = append(sections, header)
	y += lipgloss.Height(header)

	toolbar := r.renderToolbar(y)
	sections = append(sections, toolbar, "")
	y += lipgloss.Height(toolbar) + 1

	statusBar := r.renderStatusBar()

	// Lanes only get the rows left once the strip frame, the blank line below
	// it, the smallest card area and the status bar are placed; the frame must
	// not outgrow the terminal or the recorded click rows drift.
	maxLanes := r.Height - y - stripFrameRows - 1 - minCardRows - lipgloss.Height(statusBar)
	strip := r.renderTimeline(y, maxLanes)
	sections = append(sections, strip, "")
	y += lipgloss.Height(strip) + 1

	cardsHeight := r.Height - y - lipgloss.Height(statusBar)
	if cardsHeight < minCardRows {
		cardsHeight = minCardRows
	}
	sections = append(sections, r.renderCards(y, cardsHeight), statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *Renderer) renderHeader() string {
	count := fmt.Sprintf("%d tasks", r.Store.Len())
	title := styles.Title.Render(Title)

	space := r.Width - marginLeft - lipgloss.Width(title) - lipgloss.Width(count) - 1
	if space < 1 {
		return strings.Repeat(" ", marginLeft) + title
	}
	return strings.Repeat(" ", marginLeft) + title + strings.Repeat(" ", space) + styles.Subtitle.Render(count)
}

// renderToolbar renders the add button and sort selector on one line and the
// search box on the next.
func (r *Renderer) renderToolbar(y int) string {
	add := styles.Button.Render("+ Add Task")
	sortLabel := styles.Select.Render(r.SortKey.Label() + " ▾")

	x := marginLeft
	r.addTarget(x, x+lipgloss.Width(add), y, "add", -1)
	x += lipgloss.Width(add) + 2
	r.addTarget(x, x+lipgloss.Width(sortLabel), y, "sort", -1)

	buttons := strings.Repeat(" ", marginLeft) + add + "  " + sortLabel

	width := r.Width - marginLeft - 12
	if width > 40 {
		width = 40
	}
	if width < 8 {
		width = 8
	}
	r.SearchInput.Width = width

	label := styles.InputLabel.Render("Search: ")
	if r.IsSearching {
		label = styles.InputLabelFocused.Render("Search: ")
	}
	search := strings.Repeat(" ", marginLeft) + label + r.SearchInput.View()
	r.addTarget(marginLeft, lipgloss.Width(search), y+1, "search", -1)

	return buttons + "\n" + search
}

// renderStatusBar renders the bottom line: the last error or message, or key hints.
func (r *Renderer) renderStatusBar() string {
	var content string
	switch {
	case r.Err != nil:
		content = styles.StatusBarError.Render("Error: " + r.Err.Error())
	case r.StatusMsg != "":
		content = styles.StatusBarSuccess.Render(r.StatusMsg)
	default:
		r.KeyHints.Width = r.Width - 2
		content = r.KeyHints.ShortHelpView(r.Keymap.ShortHelp())
	}

	return styles.StatusBar.Width(r.Width).MaxHeight(1).Render(content)
}

func (r *Renderer) addTarget(x0, x1, y int, action string, index int) {
	if x1 <= x0 {
		return
	}
	r.ClickTargets = append(r.ClickTargets, state.ClickTarget{X0: x0, X1: x1, Y: y, Action: action, Index: index})
}
