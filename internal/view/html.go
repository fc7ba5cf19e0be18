package view

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexisbeaulieu97/slider/internal/transition"
	slidererrors "github.com/alexisbeaulieu97/slider/pkg/errors"
)

const formatHTML = "html"

// HTMLNode converts the description into an html.Node tree. Actions become
// data-action attributes and refs become data-ref attributes.
func HTMLNode(n *Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if n.Class != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: n.Class})
	}
	if css := n.Style.CSS(); css != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "style", Val: css})
	}
	if n.Ref != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "data-ref", Val: n.Ref})
	}
	if action := n.Action.String(); action != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "data-action", Val: action})
	}
	for _, child := range n.Children {
		el.AppendChild(HTMLNode(child))
	}
	return el
}

// RenderHTML writes the description as an HTML fragment.
func RenderHTML(w io.Writer, n *Node) error {
	if err := html.Render(w, HTMLNode(n)); err != nil {
		return slidererrors.NewRenderError(formatHTML, err)
	}
	return nil
}

// RenderPage writes a standalone HTML document with the description as its body.
func RenderPage(w io.Writer, title string, n *Node) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	head := &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
	head.AppendChild(&html.Node{
		Type:     html.ElementNode,
		Data:     "meta",
		DataAtom: atom.Meta,
		Attr:     []html.Attribute{{Key: "charset", Val: "utf-8"}},
	})
	titleEl := &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
	titleEl.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(titleEl)

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	body.AppendChild(HTMLNode(n))

	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)

	if err := html.Render(w, doc); err != nil {
		return slidererrors.NewRenderError(formatHTML, fmt.Errorf("render page: %w", err))
	}
	return nil
}

// ParseHTML reads a fragment produced by RenderHTML back into a description.
// Only the attributes RenderHTML writes are recovered.
func ParseHTML(r io.Reader) (*Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, slidererrors.NewRenderError(formatHTML, fmt.Errorf("parse fragment: %w", err))
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return fromHTML(n)
		}
	}
	return nil, slidererrors.NewRenderError(formatHTML, errors.New("fragment has no element"))
}

func fromHTML(h *html.Node) (*Node, error) {
	if h.Type == html.TextNode {
		return TextNode(h.Data), nil
	}
	n := &Node{Tag: h.Data}
	for _, attr := range h.Attr {
		switch attr.Key {
		case "class":
			n.Class = attr.Val
		case "style":
			n.Style = parseCSS(attr.Val)
		case "data-ref":
			n.Ref = attr.Val
		case "data-action":
			action, err := ParseAction(attr.Val)
			if err != nil {
				return nil, slidererrors.NewRenderError(formatHTML, err)
			}
			n.Action = action
		}
	}
	for child := h.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode && child.Type != html.TextNode {
			continue
		}
		converted, err := fromHTML(child)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, converted)
	}
	return n, nil
}

func parseCSS(decl string) transition.StyleMap {
	style := transition.StyleMap{}
	for _, part := range strings.Split(decl, ";") {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		style[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return style
}
