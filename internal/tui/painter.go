package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slider/internal/transition"
	"github.com/alexisbeaulieu97/slider/internal/ui/components"
	"github.com/alexisbeaulieu97/slider/internal/view"
)

// Painter draws slider descriptions on a terminal grid. It remembers the pose
// of each view, and when a view's target pose changes it animates towards it
// over the duration named by the view's transition attribute.
type Painter struct {
	theme  components.Theme
	tracks map[string]*track
}

type track struct {
	from     transition.Pose
	to       transition.Pose
	start    time.Time
	duration time.Duration
}

func (t *track) at(now time.Time) transition.Pose {
	if t.duration <= 0 {
		return t.to
	}
	return t.from.Lerp(t.to, float64(now.Sub(t.start))/float64(t.duration))
}

func (t *track) done(now time.Time) bool {
	return t.duration <= 0 || now.Sub(t.start) >= t.duration
}

// NewPainter returns a painter with no pose history.
func NewPainter(theme components.Theme) *Painter {
	return &Painter{theme: theme, tracks: make(map[string]*track)}
}

var viewRefs = []string{view.RefActiveView, view.RefLastView}

// Sync records the target poses of root. A view seen for the first time
// starts at its target without animating.
func (p *Painter) Sync(root *view.Node, now time.Time) {
	for _, ref := range viewRefs {
		node := root.FindByRef(ref)
		if node == nil {
			continue
		}
		target := transition.PoseOf(node.Style)
		tr, ok := p.tracks[ref]
		if !ok {
			p.tracks[ref] = &track{from: target, to: target, start: now}
			continue
		}
		if tr.to == target {
			continue
		}
		tr.from = tr.at(now)
		tr.to = target
		tr.start = now
		tr.duration = transition.TransitionDuration(node.Style)
	}
}

// Animating reports whether any view is still moving at now.
func (p *Painter) Animating(now time.Time) bool {
	for _, tr := range p.tracks {
		if !tr.done(now) {
			return true
		}
	}
	return false
}

// Pose returns the pose of the view with ref at now.
func (p *Painter) Pose(ref string, now time.Time) transition.Pose {
	tr, ok := p.tracks[ref]
	if !ok {
		return transition.RestingPose
	}
	return tr.at(now)
}

// Paint syncs root and renders it: the framed slide area of width x height
// cells followed by the navigation row.
func (p *Painter) Paint(root *view.Node, width, height int, now time.Time) string {
	p.Sync(root, now)

	area := p.paintViews(root, width, height, now)
	children := []components.Renderable{
		components.NewFrame(components.RenderableFunc(func() string { return area }), width, height),
	}
	if nav := p.navigation(root); nav != nil {
		children = append(children, nav)
	}

	ctx := components.DefaultContext().WithTheme(p.theme).WithWidth(width + 2)
	return components.VStack(children...).ViewWithContext(ctx)
}

func (p *Painter) paintViews(root *view.Node, width, height int, now time.Time) string {
	c := newCanvas(width, height)
	// Outgoing view first so the active view paints over it.
	for _, ref := range []string{view.RefLastView, view.RefActiveView} {
		node := root.FindByRef(ref)
		if node == nil {
			continue
		}
		pose := p.Pose(ref, now)
		if !pose.Visible() {
			continue
		}
		c.layer(contentLines(node, width), pose.X, pose.Y, true)
	}

	base := lipgloss.NewStyle()
	return c.render(
		components.Typography(components.TypographyTitle)(base, p.theme),
		components.Typography(components.TypographyBody)(base, p.theme),
	)
}

// contentLines lays out the children of a view section: headings become title
// lines followed by a blank line, everything else wraps as body paragraphs.
func contentLines(node *view.Node, width int) []textLine {
	inner := width - 2
	var lines []textLine
	for i, child := range node.Children {
		if i > 0 && len(lines) > 0 {
			lines = append(lines, textLine{})
		}
		kind := bodyCell
		switch child.Tag {
		case "h1", "h2", "h3":
			kind = titleCell
		}
		lines = append(lines, wrapLines(child.TextContent(), inner, kind)...)
	}
	for i := range lines {
		if lines[i].text != "" {
			lines[i].text = " " + lines[i].text
		}
	}
	return lines
}

// navigation returns the arrow and dot row, or nil when both are disabled.
func (p *Painter) navigation(root *view.Node) components.Renderable {
	cn := root.Class
	row := components.HStack().WithGap(2).WithAlign(components.AlignCenter)

	left := root.FindByClass(cn + "__arrow--left")
	if len(left) > 0 {
		row.Add(components.AccentText(left[0].TextContent()))
	}

	if dots := root.FindByClass(cn + "__dot"); len(dots) > 0 {
		pg := paginator.New()
		pg.Type = paginator.Dots
		pg.PerPage = 1
		pg.SetTotalPages(len(dots))
		pg.Page = len(dots)
		for i, dot := range dots {
			if dot.HasClass("is-active") {
				pg.Page = i
			}
		}
		ctx := components.DefaultContext().WithTheme(p.theme)
		pg.ActiveDot = components.AccentText(dots[0].TextContent()).ViewWithContext(ctx)
		pg.InactiveDot = components.HintText(dots[0].TextContent()).ViewWithContext(ctx)
		row.Add(components.RenderableFunc(pg.View))
	}

	right := root.FindByClass(cn + "__arrow--right")
	if len(right) > 0 {
		row.Add(components.AccentText(right[0].TextContent()))
	}

	if len(row.Children()) == 0 {
		return nil
	}
	return row
}
