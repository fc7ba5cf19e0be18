package view

import (
	"strings"

	"github.com/alexisbeaulieu97/slider/internal/slider"
)

// Refs identify the two viewport elements a measurer reads geometry from.
const (
	RefActiveView = "viewport_active"
	RefLastView   = "viewport_last"
)

// Build describes the current controller state as an element tree. slides is
// indexed by item position; an index the controller points at that has no
// slide renders an empty view.
func Build(c *slider.Controller, slides []Slide) *Node {
	opts := c.Options()
	state := c.State()
	cn := opts.ClassName

	active := Element("section", cn+"__view", slideContent(slides, state.ActiveIndex)...)
	active.Ref = RefActiveView
	active.Style = activeViewStyle().Merge(c.ActiveStyle())

	last := Element("section", cn+"__view", slideContent(slides, state.LastIndex)...)
	last.Ref = RefLastView
	last.Style = lastViewStyle().Merge(c.LastStyle())

	wrapper := Element("section", cn+"__wrapper", active, last)
	wrapper.Style = wrapperStyle()

	root := Element("div", cn, wrapper)
	root.Style = rootStyle()

	if opts.Arrows {
		root.Children = append(root.Children,
			arrow(cn, "left", opts.Arrow.Left, Action{Kind: ActionPrev}),
			arrow(cn, "right", opts.Arrow.Right, Action{Kind: ActionNext}),
		)
	}

	dots := Element("section", cn+"__dots")
	dots.Style = dotsStyle()
	if opts.Dots {
		for i := 0; i < c.ItemCount(); i++ {
			dots.Children = append(dots.Children, dot(cn, opts.Dot, i, i == state.ActiveIndex))
		}
	}
	root.Children = append(root.Children, dots)

	return root
}

func arrow(cn, side, glyph string, action Action) *Node {
	n := Element("div", cn+"__arrow "+cn+"__arrow--"+side, Element("span", "", TextNode(glyph)))
	n.Style = arrowStyle(side)
	n.Action = action
	return n
}

func dot(cn, glyph string, index int, active bool) *Node {
	class := cn + "__dot"
	if active {
		class += " is-active"
	}
	n := Element("span", class, TextNode(" "), Element("span", "", TextNode(glyph)), TextNode(" "))
	n.Style = dotStyle()
	n.Action = Action{Kind: ActionGoto, Index: index}
	return n
}

func slideContent(slides []Slide, index int) []*Node {
	if index < 0 || index >= len(slides) {
		return nil
	}
	s := slides[index]
	var nodes []*Node
	if s.Title != "" {
		nodes = append(nodes, Element("h2", "", TextNode(s.Title)))
	}
	for _, para := range Paragraphs(s.Body) {
		nodes = append(nodes, Element("p", "", TextNode(para)))
	}
	return nodes
}

// Paragraphs splits body on blank lines and trims each paragraph.
func Paragraphs(body string) []string {
	var out []string
	for _, block := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}

// Dispatch applies an element action to the controller.
func Dispatch(c *slider.Controller, action Action) {
	switch action.Kind {
	case ActionPrev:
		c.Prev()
	case ActionNext:
		c.Next()
	case ActionGoto:
		c.Goto(action.Index)
	}
}
