// Package view turns controller state into a declarative element tree and
// renders that tree. The tree carries the stylesheet contract of the slider
// (class names, inline styles) and the click actions an event dispatcher binds.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/slider/internal/transition"
)

// Slide is the content of one child view.
type Slide struct {
	Title string
	Body  string
}

// ActionKind enumerates the navigation requests an element can trigger.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPrev
	ActionNext
	ActionGoto
)

// Action is a navigation request bound to an element.
type Action struct {
	Kind  ActionKind
	Index int
}

func (a Action) String() string {
	switch a.Kind {
	case ActionPrev:
		return "prev"
	case ActionNext:
		return "next"
	case ActionGoto:
		return "goto:" + strconv.Itoa(a.Index)
	default:
		return ""
	}
}

// ParseAction is the inverse of Action.String.
func ParseAction(value string) (Action, error) {
	switch {
	case value == "prev":
		return Action{Kind: ActionPrev}, nil
	case value == "next":
		return Action{Kind: ActionNext}, nil
	case strings.HasPrefix(value, "goto:"):
		index, err := strconv.Atoi(strings.TrimPrefix(value, "goto:"))
		if err != nil {
			return Action{}, fmt.Errorf("invalid goto action %q: %w", value, err)
		}
		return Action{Kind: ActionGoto, Index: index}, nil
	default:
		return Action{}, fmt.Errorf("unknown action %q", value)
	}
}

// Node is one element of the description. A node with an empty Tag is a text node.
type Node struct {
	Tag      string
	Class    string
	Style    transition.StyleMap
	Ref      string
	Action   Action
	Text     string
	Children []*Node
}

// Element creates an element node.
func Element(tag, class string, children ...*Node) *Node {
	return &Node{Tag: tag, Class: class, Children: children}
}

// TextNode creates a text node.
func TextNode(text string) *Node {
	return &Node{Text: text}
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// HasClass reports whether class is one of the node's class tokens.
func (n *Node) HasClass(class string) bool {
	for _, token := range strings.Fields(n.Class) {
		if token == class {
			return true
		}
	}
	return false
}

// Find returns every node in the subtree, n included, that matches, in document order.
func (n *Node) Find(match func(*Node) bool) []*Node {
	var found []*Node
	var walk func(*Node)
	walk = func(node *Node) {
		if node == nil {
			return
		}
		if match(node) {
			found = append(found, node)
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(n)
	return found
}

// FindByClass returns every node carrying class.
func (n *Node) FindByClass(class string) []*Node {
	return n.Find(func(node *Node) bool { return node.HasClass(class) })
}

// FindByRef returns the first node with the given ref, or nil.
func (n *Node) FindByRef(ref string) *Node {
	found := n.Find(func(node *Node) bool { return node.Ref == ref })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// TextContent concatenates the text of the subtree.
func (n *Node) TextContent() string {
	var b strings.Builder
	for _, node := range n.Find(func(node *Node) bool { return node.IsText() }) {
		b.WriteString(node.Text)
	}
	return b.String()
}
