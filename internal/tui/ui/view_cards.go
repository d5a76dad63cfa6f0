package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/timeline-tui/internal/timeline"
	"github.com/hy4ri/timeline-tui/internal/tui/styles"
)

// Card geometry. Each card is a border, one column of padding, three text
// lines (name, status, time range) and the action rows.
const (
	cardTextLines = 3
	cardInset     = 2 // border plus padding
)

// cardAction is one clickable label on a card.
type cardAction struct {
	label  string
	action string
	style  lipgloss.Style
}

var cardActionPairs = [][]cardAction{
	{
		{"Edit", "edit", styles.ActionEdit},
		{"Done", "done", styles.ActionDone},
	},
	{
		{"Not Done", "not_done", styles.ActionNotDone},
		{"Delete", "delete", styles.ActionDelete},
	},
}

// actionRowWidth is the rendered width of a row of actions joined by spaces.
func actionRowWidth(row []cardAction) int {
	w := len(row) - 1
	for _, a := range row {
		w += lipgloss.Width(a.style.Render(a.label))
	}
	return w
}

// actionRows lays the actions out two to a line, or one per line when a pair
// does not fit in width.
func actionRows(width int) [][]cardAction {
	for _, row := range cardActionPairs {
		if actionRowWidth(row) > width {
			var single [][]cardAction
			for _, row := range cardActionPairs {
				for _, a := range row {
					single = append(single, []cardAction{a})
				}
			}
			return single
		}
	}
	return cardActionPairs
}

// minCardOuter fits the widest single action inside a card.
func minCardOuter() int {
	w := 0
	for _, row := range cardActionPairs {
		for _, a := range row {
			if aw := actionRowWidth([]cardAction{a}); aw > w {
				w = aw
			}
		}
	}
	return w + 2*cardInset
}

func cardHeight(rows [][]cardAction) int {
	return cardTextLines + len(rows) + 2
}

// renderCards renders the card grid into the scrolling viewport. y is the
// screen row of the viewport's first line.
func (r *Renderer) renderCards(y, height int) string {
	width := r.Width - 2*marginLeft
	if width < 20 {
		width = 20
	}
	if !r.ViewportReady {
		r.CardViewport = viewport.New(width, height)
		r.ViewportReady = true
	}
	r.CardViewport.Width = width
	r.CardViewport.Height = height

	entries := r.Entries()
	if len(entries) == 0 {
		msg := "No tasks yet. Press a to add one."
		if r.Query() != "" {
			msg = fmt.Sprintf("No tasks match %q.", r.Query())
		}
		r.CardViewport.SetContent(styles.EmptyState.Render(msg))
		r.CardViewport.GotoTop()
		return indent(r.CardViewport.View(), marginLeft)
	}

	cols := r.GridColumns()
	outer := (width - (cols-1)*gap) / cols
	if least := minCardOuter(); outer < least {
		outer = least
	}
	rowsOfActions := actionRows(outer - 2*cardInset)
	cardH := cardHeight(rowsOfActions)

	var rows []string
	for start := 0; start < len(entries); start += cols {
		end := start + cols
		if end > len(entries) {
			end = len(entries)
		}
		var cards []string
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", gap))
			}
			cards = append(cards, r.renderCard(entries[i], outer, rowsOfActions, i == r.Cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	r.CardViewport.SetContent(strings.Join(rows, "\n"))
	r.scrollToCursor(cols, cardH)

	// Only actions on rows inside the viewport can be clicked.
	for i, e := range entries {
		row, col := i/cols, i%cols
		top := y + row*cardH - r.CardViewport.YOffset
		x := marginLeft + col*(outer+gap) + cardInset
		for n, actions := range rowsOfActions {
			lineY := top + 1 + cardTextLines + n
			if lineY < y || lineY >= y+r.CardViewport.Height {
				continue
			}
			ax := x
			for _, a := range actions {
				w := lipgloss.Width(a.style.Render(a.label))
				r.addTarget(ax, ax+w, lineY, a.action, e.Index)
				ax += w + 1
			}
		}
	}

	return indent(r.CardViewport.View(), marginLeft)
}

// renderCard renders one task card of the given outer width.
func (r *Renderer) renderCard(e timeline.Entry, outer int, rows [][]cardAction, selected bool) string {
	inner := outer - 2*cardInset
	t := e.Task

	// Inner renders reset the card background, so gaps are painted with it.
	bg := lipgloss.NewStyle().Background(styles.PaletteColor(t.Color)).Foreground(styles.Ink)

	lines := []string{
		styles.CardName.Inherit(bg).Render(fit(t.Name, inner)),
		fit("Status: "+string(t.Status), inner),
		fit(timeline.FormatRange(t.Start, t.End), inner),
	}
	for _, actions := range rows {
		labels := make([]string, 0, len(actions))
		for _, a := range actions {
			labels = append(labels, a.style.Render(a.label))
		}
		row := strings.Join(labels, bg.Render(" "))
		if pad := inner - lipgloss.Width(row); pad > 0 {
			row += bg.Render(strings.Repeat(" ", pad))
		}
		lines = append(lines, row)
	}

	return styles.Card(t.Color, selected).Width(outer - 2).Render(strings.Join(lines, "\n"))
}

// scrollToCursor keeps the row of the selected card inside the viewport.
func (r *Renderer) scrollToCursor(cols, cardH int) {
	top := (r.Cursor / cols) * cardH
	bottom := top + cardH
	switch {
	case top < r.CardViewport.YOffset:
		r.CardViewport.SetYOffset(top)
	case bottom > r.CardViewport.YOffset+r.CardViewport.Height:
		r.CardViewport.SetYOffset(bottom - r.CardViewport.Height)
	}
}

func indent(s string, n int) string {
	return lipgloss.NewStyle().PaddingLeft(n).Render(s)
}
