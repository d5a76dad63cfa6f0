package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/timeline-tui/internal/tui/styles"
)

// HelpModel renders the help view with keyboard shortcuts.
type HelpModel struct {
	width, height int
	keymap        [][]string
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg {
				return CloseHelpMsg{}
			}
		}
	}
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.keymap) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	keyStyle := styles.HelpKey.Width(12).Align(lipgloss.Right).PaddingRight(2)
	for _, item := range h.keymap {
		if len(item) < 2 {
			continue
		}
		key, desc := item[0], item[1]

		// Section header
		if desc == "" && key != "" {
			b.WriteString("\n" + styles.SectionHeader.Render(key) + "\n")
			continue
		}
		if key == "" && desc == "" {
			b.WriteString("\n")
			continue
		}

		b.WriteString(keyStyle.Render(key) + styles.HelpDesc.Render(desc) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("Press ESC or ? to close"))

	dialog := styles.Dialog
	if h.width > 0 && h.height > 0 {
		dialog = dialog.MaxWidth(h.width).MaxHeight(h.height)
	}
	return dialog.Render(b.String())
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetKeymap sets custom help items.
func (h *HelpModel) SetKeymap(items [][]string) {
	h.keymap = items
}
