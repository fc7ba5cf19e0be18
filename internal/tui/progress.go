package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// deckProgress renders how far into the deck the active slide is.
type deckProgress struct {
	bar   progress.Model
	total int
}

func newDeckProgress(total, width int) deckProgress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = max(width, 1)
	return deckProgress{bar: bar, total: total}
}

// View renders the bar for a zero-based active index. Indexes outside the
// deck render an empty bar.
func (p deckProgress) View(active int) string {
	ratio := 0.0
	if p.total > 0 && active >= 0 && active < p.total {
		ratio = math.Min(1.0, float64(active+1)/float64(p.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%3.0f%%", ratio*100))
	return lipgloss.JoinHorizontal(lipgloss.Left, p.bar.ViewAs(ratio), " ", label)
}
