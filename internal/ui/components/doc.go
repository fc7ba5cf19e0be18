// Package components provides the theme-aware lipgloss building blocks the
// terminal slider is drawn with.
//
// # Architecture
//
// Components are layered the same way throughout:
//
//  1. Theme - immutable colors and typography passed through RenderContext
//  2. StyleFunc - transformations that apply theme data to a lipgloss.Style
//  3. Components - Text, Badge and Stack, each rendering to a string
//
// For simple cases View() renders with DefaultTheme:
//
//	out := components.TitleText("Deck").View()
//
// Pass a context to render with another theme or a width budget:
//
//	ctx := components.DefaultContext().WithTheme(theme).WithWidth(80)
//	out := components.HStack(left, dots, right).WithGap(1).ViewWithContext(ctx)
package components
