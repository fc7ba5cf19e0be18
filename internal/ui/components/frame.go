package components

import "github.com/charmbracelet/lipgloss"

// Frame draws a rounded border around content padded to a fixed interior size.
type Frame struct {
	BaseComponent
	content Renderable
	width   int
	height  int
	border  lipgloss.Border
}

// NewFrame creates a frame whose interior is width x height cells. A zero
// dimension sizes the frame to its content.
func NewFrame(content Renderable, width, height int) *Frame {
	f := &Frame{
		BaseComponent: NewBaseComponent(),
		content:       content,
		width:         width,
		height:        height,
		border:        lipgloss.RoundedBorder(),
	}
	f.SetAppliers(BorderColor(ColorBorder))
	return f
}

// View renders the frame.
func (f *Frame) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the frame with the given theme context.
func (f *Frame) ViewWithContext(ctx RenderContext) string {
	inner := ""
	if f.content != nil {
		inner = render(f.content, ctx.WithWidth(f.width))
	}
	style := f.ComputeStyle(ctx.Theme).Border(f.border)
	if f.width > 0 {
		style = style.Width(f.width).MaxWidth(f.width + 2)
	}
	if f.height > 0 {
		style = style.Height(f.height).MaxHeight(f.height + 2)
	}
	return style.Render(inner)
}

// WithBorder replaces the border.
func (f *Frame) WithBorder(border lipgloss.Border) *Frame {
	f.border = border
	return f
}

// InnerSize returns the interior dimensions.
func (f *Frame) InnerSize() (int, int) {
	return f.width, f.height
}
