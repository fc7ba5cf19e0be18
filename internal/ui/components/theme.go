package components

import "github.com/charmbracelet/lipgloss"

// ColorRole names a semantic color slot of a Theme.
type ColorRole int

const (
	ColorText ColorRole = iota
	ColorMuted
	ColorAccent
	ColorBorder
	ColorWarning
)

// TypographyVariant names a text treatment of a Theme.
type TypographyVariant int

const (
	TypographyBody TypographyVariant = iota
	TypographyTitle
	TypographySubtitle
	TypographyHint
)

// Theme is an immutable set of colors used by every component.
type Theme struct {
	Name    string
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Warning lipgloss.Color
}

// DefaultTheme returns the 256-color theme the slider ships with.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("244"),
		Accent:  lipgloss.Color("205"),
		Border:  lipgloss.Color("39"),
		Warning: lipgloss.Color("214"),
	}
}

// MonochromeTheme disables colors, for output that is not a terminal.
func MonochromeTheme() Theme {
	return Theme{Name: "monochrome"}
}

// Color resolves a role to the theme color. An empty color means no color.
func (t Theme) Color(role ColorRole) lipgloss.Color {
	switch role {
	case ColorMuted:
		return t.Muted
	case ColorAccent:
		return t.Accent
	case ColorBorder:
		return t.Border
	case ColorWarning:
		return t.Warning
	default:
		return t.Text
	}
}

// Foreground colors text with a theme role.
func Foreground(role ColorRole) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		if c := t.Color(role); c != "" {
			return s.Foreground(c)
		}
		return s
	}
}

// BorderColor draws the style's border in a theme role.
func BorderColor(role ColorRole) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		if c := t.Color(role); c != "" {
			return s.BorderForeground(c)
		}
		return s
	}
}

// Bold enables bold text.
func Bold() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Bold(true)
	}
}

// Typography applies a text treatment.
func Typography(variant TypographyVariant) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		switch variant {
		case TypographyTitle:
			return Foreground(ColorAccent)(s.Bold(true), t)
		case TypographySubtitle:
			return Foreground(ColorBorder)(s.Bold(true), t)
		case TypographyHint:
			return Foreground(ColorMuted)(s.Faint(true), t)
		default:
			return Foreground(ColorText)(s, t)
		}
	}
}
