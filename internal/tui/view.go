package tui

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/slider/internal/slider"
	"github.com/alexisbeaulieu97/slider/internal/ui/components"
	"github.com/alexisbeaulieu97/slider/internal/view"
)

// View renders the header, the slider and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	width, height := m.s.areaSize()
	root := view.Build(m.s.ctrl, m.s.slides)
	body := m.s.painter.Paint(root, width, height, m.s.now())

	ctx := components.DefaultContext().WithTheme(m.s.theme)
	return components.VStack(
		header(m.s.title, m.s.ctrl),
		components.RenderableFunc(func() string { return body }),
		components.RenderableFunc(func() string {
			return " " + m.s.progress.View(m.s.ctrl.State().ActiveIndex)
		}),
		components.HintText(m.help.View(m.keys)),
	).ViewWithContext(ctx)
}

// RenderText paints one static frame of c: the header and the slider in its
// current state, with no help line. A fresh painter has no pose history, so
// every view is drawn at its target pose.
func RenderText(c *slider.Controller, title string, slides []view.Slide, width, height int, theme components.Theme) string {
	width = max(width, minWidth)
	height = max(height, minHeight)
	body := NewPainter(theme).Paint(view.Build(c, slides), width, height, time.Time{})

	ctx := components.DefaultContext().WithTheme(theme)
	return components.VStack(
		header(title, c),
		components.RenderableFunc(func() string { return body }),
	).ViewWithContext(ctx)
}

func header(title string, c *slider.Controller) components.Renderable {
	state := c.State()
	counter := fmt.Sprintf("%d/%d", state.ActiveIndex+1, c.ItemCount())
	if state.ActiveIndex < 0 || state.ActiveIndex >= c.ItemCount() {
		counter = fmt.Sprintf("-/%d", c.ItemCount())
	}

	var autoplay *components.Badge
	switch {
	case c.Autoplaying():
		autoplay = components.AccentBadge("▶ autoplay")
	case c.Options().Autoplay:
		autoplay = components.WarningBadge("⏸ paused")
	default:
		autoplay = components.MutedBadge("⏸ manual")
	}

	row := components.HStack().WithGap(1)
	if title != "" {
		row.Add(components.TitleText(title))
	}
	return row.Add(components.MutedBadge(counter), autoplay)
}
