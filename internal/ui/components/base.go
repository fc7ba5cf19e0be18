package components

import "github.com/charmbracelet/lipgloss"

// BaseComponent provides common functionality for all components.
// Embed this in component structs to get standard styling behavior.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// StyleFunc applies theme data to a lipgloss.Style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the raw style with every applier run in order.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, apply := range b.appliers {
		style = apply(style, theme)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the style appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = append([]StyleFunc(nil), appliers...)
}

// AddAppliers appends style appliers after the existing ones.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	merged := make([]StyleFunc, 0, len(b.appliers)+len(appliers))
	merged = append(merged, b.appliers...)
	b.appliers = append(merged, appliers...)
}

// RenderContext provides the theme and the available width to components
// during rendering. A Width of zero means unconstrained.
type RenderContext struct {
	Theme Theme
	Width int
}

// DefaultContext returns a render context with the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a new context limited to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// Alignment specifies how content is aligned on the cross axis of a Stack.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
