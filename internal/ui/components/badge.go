package components

import "github.com/charmbracelet/lipgloss"

// Badge is a small status indicator component.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantAccent
	BadgeVariantMuted
	BadgeVariantWarning
)

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.text)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme).Padding(0, 1)
	switch b.variant {
	case BadgeVariantAccent:
		return Foreground(ColorAccent)(style.Bold(true), theme)
	case BadgeVariantMuted:
		return Foreground(ColorMuted)(style, theme)
	case BadgeVariantWarning:
		return Foreground(ColorWarning)(style.Bold(true), theme)
	default:
		return Foreground(ColorText)(style, theme)
	}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// AccentBadge creates an accent badge.
func AccentBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantAccent)
}

// MutedBadge creates a muted badge.
func MutedBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantMuted)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}
