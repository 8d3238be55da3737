package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// player's sector and cores on the left and the turn on the right.
func (m Model) renderStatusBar() string {
	p := m.engine.Player

	left := fmt.Sprintf(" Sector %s | Cores: %d", p.Location, p.EnergyCores)
	right := fmt.Sprintf("| T:%d ", p.TurnCount)
	if p.GameOver {
		right = fmt.Sprintf("%s | T:%d ", strings.ToUpper(p.Outcome.String()), p.TurnCount)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
