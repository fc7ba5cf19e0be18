package components

// Renderable is anything that renders itself to a terminal string.
type Renderable interface {
	View() string
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// RenderableFunc adapts a plain function to Renderable.
type RenderableFunc func() string

// View implements Renderable.
func (f RenderableFunc) View() string {
	return f()
}

func render(child Renderable, ctx RenderContext) string {
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
