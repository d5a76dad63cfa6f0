package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Left   Key
	Right  Key
	Top    Key
	Bottom Key

	// Actions
	Select Key
	Back   Key
	Quit   Key
	Help   Key

	// Task actions
	AddTask     Key
	EditTask    Key
	DeleteTask  Key
	MarkDone    Key
	MarkNotDone Key
	Toggle      Key
	CopyTask    Key

	// View
	Search Key
	Sort   Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Left:   Key{Key: "h", Help: "left"},
		Right:  Key{Key: "l", Help: "right"},
		Top:    Key{Key: "g", Help: "first task (gg)"},
		Bottom: Key{Key: "G", Help: "last task"},

		Select: Key{Key: "enter", Help: "edit"},
		Back:   Key{Key: "esc", Help: "back"},
		Quit:   Key{Key: "q", Help: "quit"},
		Help:   Key{Key: "?", Help: "help"},

		AddTask:     Key{Key: "a", Help: "add task"},
		EditTask:    Key{Key: "e", Help: "edit task"},
		DeleteTask:  Key{Key: "d", Help: "delete (dd)"},
		MarkDone:    Key{Key: "x", Help: "mark done"},
		MarkNotDone: Key{Key: "X", Help: "mark not done"},
		Toggle:      Key{Key: " ", Help: "toggle status"},
		CopyTask:    Key{Key: "y", Help: "copy (yy)"},

		Search: Key{Key: "/", Help: "search"},
		Sort:   Key{Key: "s", Help: "cycle sort"},
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd' or 'yy').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, km Keymap) (string, bool) {
	keymap, ok := km.(KeymapData)
	if !ok {
		keymap = DefaultKeymap()
	}

	key := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if key == keymap.Top.Key {
			return "top", true
		}
	}

	if ks.WaitingD {
		ks.WaitingD = false
		if key == keymap.DeleteTask.Key {
			return "delete", true
		}
	}

	if ks.WaitingY {
		ks.WaitingY = false
		if key == keymap.CopyTask.Key {
			return "copy", true
		}
	}

	// Multi-key sequence starts
	switch key {
	case keymap.Top.Key:
		ks.WaitingG = true
		ks.LastKey = key
		return "", true
	case keymap.DeleteTask.Key:
		ks.WaitingD = true
		ks.LastKey = key
		return "", true
	case keymap.CopyTask.Key:
		ks.WaitingY = true
		ks.LastKey = key
		return "", true
	}

	ks.LastKey = key

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Left.Key, "left":
		return "left", true
	case keymap.Right.Key, "right":
		return "right", true
	case keymap.Bottom.Key:
		return "bottom", true
	case keymap.Select.Key, keymap.EditTask.Key:
		return "edit", true
	case keymap.Back.Key:
		return "back", true
	case keymap.Quit.Key:
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.AddTask.Key:
		return "add", true
	case keymap.MarkDone.Key:
		return "done", true
	case keymap.MarkNotDone.Key:
		return "not_done", true
	case keymap.Toggle.Key, "space":
		return "toggle", true
	case keymap.Search.Key:
		return "search", true
	case keymap.Sort.Key:
		return "sort", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Left.Key + "/" + k.Right.Key, "Previous/next task"},
		{k.Up.Key + "/" + k.Down.Key, "Row up/down in the card grid"},
		{"gg/" + k.Bottom.Key, "First/last task"},
		{"", ""},
		{"Task Actions", ""},
		{k.AddTask.Key, "Add new task"},
		{k.EditTask.Key + "/" + k.Select.Key, "Edit task"},
		{k.MarkDone.Key, "Mark done"},
		{k.MarkNotDone.Key, "Mark not done"},
		{"space", "Toggle status"},
		{"dd", "Delete task"},
		{"yy", "Copy task to clipboard"},
		{"click", "Edit task on the timeline"},
		{"", ""},
		{"View", ""},
		{k.Search.Key, "Search tasks"},
		{k.Sort.Key, "Cycle sort (start/end/status)"},
		{"", ""},
		{"General", ""},
		{k.Help.Key, "Toggle help"},
		{k.Back.Key, "Go back / Cancel"},
		{k.Quit.Key, "Quit"},
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeymapData) ShortHelp() []key.Binding {
	bind := func(keys, help, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(keys), key.WithHelp(help, desc))
	}
	return []key.Binding{
		bind(k.AddTask.Key, k.AddTask.Key, "add"),
		bind(k.EditTask.Key, k.EditTask.Key, "edit"),
		bind(k.MarkDone.Key, k.MarkDone.Key+"/"+k.MarkNotDone.Key, "done/not done"),
		bind(k.DeleteTask.Key, "dd", "delete"),
		bind(k.Search.Key, k.Search.Key, "search"),
		bind(k.Sort.Key, k.Sort.Key, "sort"),
		bind(k.Help.Key, k.Help.Key, "help"),
		bind(k.Quit.Key, k.Quit.Key, "quit"),
	}
}
