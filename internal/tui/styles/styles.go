// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/timeline-tui/internal/timeline"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#FFFFFF"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}

	// Ink is the text color drawn on top of palette backgrounds
	Ink = lipgloss.Color("#111111")
)

// Palette colors, the 500 shade of each hue.
var paletteColors = map[timeline.Color]lipgloss.Color{
	timeline.ColorBlue:   lipgloss.Color("#3B82F6"),
	timeline.ColorGreen:  lipgloss.Color("#22C55E"),
	timeline.ColorPurple: lipgloss.Color("#A855F7"),
	timeline.ColorYellow: lipgloss.Color("#EAB308"),
	timeline.ColorPink:   lipgloss.Color("#EC4899"),
	timeline.ColorRed:    lipgloss.Color("#EF4444"),
	timeline.ColorCyan:   lipgloss.Color("#06B6D4"),
}

// PaletteColor returns the terminal color for a palette tag.
func PaletteColor(c timeline.Color) lipgloss.Color {
	if col, ok := paletteColors[c]; ok {
		return col
	}
	return paletteColors[timeline.ColorBlue]
}

// Base styles
var (
	// Title is the style for the page title
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"})

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Toolbar styles
var (
	// Button is the "Add Task" call to action
	Button = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#FFFFFF"))

	// Select is for the sort selector
	Select = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#3F3F46"))
)

// Timeline strip styles
var (
	// Strip is the container around the hour axis and task blocks
	Strip = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3F3F46")).
		Padding(0, 1)

	// HourLabel is for the axis labels
	HourLabel = lipgloss.NewStyle().
			Foreground(Subtle).
			Faint(true)

	// HourTick is the faint grid line under each hour
	HourTick = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3F3F46"))
)

// Block returns the style of a task block on the strip.
func Block(c timeline.Color, done bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Background(PaletteColor(c)).
		Foreground(Ink).
		Bold(true)
	if done {
		s = s.Faint(true)
	}
	return s
}

// Card styles
// NOTE: Width is NOT set here - it's calculated from the grid column count
var (
	// CardName is the bold task name line
	CardName = lipgloss.NewStyle().
			Bold(true)

	// CardAction is for the action hints at the bottom of a card
	CardAction = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#000000"))
)

// Card returns the style of a task card.
func Card(c timeline.Color, selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Background(PaletteColor(c)).
		Foreground(Ink).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#52525B"))
	if selected {
		s = s.BorderStyle(lipgloss.ThickBorder()).BorderForeground(Highlight)
	}
	return s
}

// Action button backgrounds on cards.
var (
	ActionEdit    = CardAction.Background(lipgloss.Color("#FFFFFF"))
	ActionDone    = CardAction.Background(lipgloss.Color("#86EFAC"))
	ActionNotDone = CardAction.Background(lipgloss.Color("#FDE047"))
	ActionDelete  = CardAction.Background(lipgloss.Color("#F87171"))
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// SectionHeader is for help section titles
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Underline(true)
)

// Input styles
var (
	// InputLabel is for input labels
	InputLabel = lipgloss.NewStyle().
			Bold(true)

	// InputLabelFocused is for the label of the focused field
	InputLabelFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight)

	// InputError is for validation messages in the form
	InputError = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Background(lipgloss.Color("#27272A")).
		Padding(1, 2)

	// DialogTitle is for dialog titles
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// Submit is the confirm button
	Submit = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#22C55E"))

	// Cancel is the cancel button
	Cancel = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#EF4444"))

	// Focused marks the focused button or selector
	Focused = lipgloss.NewStyle().
		Underline(true).
		Bold(true)
)

// Empty state
var (
	EmptyState = lipgloss.NewStyle().
		Foreground(Subtle).
		Italic(true)
)
