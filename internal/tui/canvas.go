package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

type cellKind uint8

const (
	bodyCell cellKind = iota
	titleCell
	// continuation marks the second column of a wide rune.
	continuation
)

type cell struct {
	r    rune
	kind cellKind
}

type textLine struct {
	text string
	kind cellKind
}

// canvas is a fixed grid of terminal cells views are composited on.
type canvas struct {
	width  int
	height int
	cells  [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(width, 0), height: max(height, 0)}
	c.cells = make([][]cell, c.height)
	for y := range c.cells {
		row := make([]cell, c.width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

// layer paints lines at an offset. An opaque layer blanks the whole
// width x height rectangle it covers before drawing.
func (c *canvas) layer(lines []textLine, dx, dy float64, opaque bool) {
	ox := int(math.Round(dx))
	oy := int(math.Round(dy))

	if opaque {
		for y := max(oy, 0); y < min(oy+c.height, c.height); y++ {
			for x := max(ox, 0); x < min(ox+c.width, c.width); x++ {
				c.set(x, y, cell{r: ' '})
			}
		}
	}

	for i, line := range lines {
		y := oy + i
		if y < 0 || y >= c.height {
			continue
		}
		x := ox
		for _, r := range line.text {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if x >= 0 && x+w <= c.width {
				c.set(x, y, cell{r: r, kind: line.kind})
				if w == 2 {
					c.set(x+1, y, cell{kind: continuation})
				}
			}
			x += w
			if x >= c.width {
				break
			}
		}
	}
}

// set writes one cell, blanking the other half of any wide rune it splits.
func (c *canvas) set(x, y int, next cell) {
	row := c.cells[y]
	if row[x].kind == continuation && next.kind != continuation && x > 0 {
		row[x-1] = cell{r: ' '}
	}
	if row[x].kind != continuation && x+1 < c.width && row[x+1].kind == continuation {
		row[x+1] = cell{r: ' '}
	}
	row[x] = next
}

// render styles runs of same-kind cells and joins the rows.
func (c *canvas) render(title, body lipgloss.Style) string {
	rows := make([]string, 0, c.height)
	for _, row := range c.cells {
		var b strings.Builder
		var run strings.Builder
		kind := bodyCell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if kind == titleCell {
				b.WriteString(title.Render(run.String()))
			} else {
				b.WriteString(body.Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.kind == continuation {
				continue
			}
			if cl.kind != kind {
				flush()
				kind = cl.kind
			}
			run.WriteRune(cl.r)
		}
		flush()
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

// wrapLines word-wraps text to width cells, hard-wrapping words that do not fit.
func wrapLines(text string, width int, kind cellKind) []textLine {
	if width <= 0 {
		return nil
	}
	wrapped := ansi.Wrap(text, width, "")
	var lines []textLine
	for _, line := range strings.Split(wrapped, "\n") {
		lines = append(lines, textLine{text: strings.TrimRight(line, " "), kind: kind})
	}
	return lines
}
