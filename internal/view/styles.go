package view

import "github.com/alexisbeaulieu97/slider/internal/transition"

// Structural inline styles. Each call returns a fresh map so callers may merge into it.

func rootStyle() transition.StyleMap {
	return transition.StyleMap{"position": "relative", "overflow": "hidden"}
}

func wrapperStyle() transition.StyleMap {
	return transition.StyleMap{"position": "relative", "width": "100%", "height": "100%"}
}

// The active view paints above the outgoing one.
func activeViewStyle() transition.StyleMap {
	return transition.StyleMap{"position": "relative", "z-index": "1"}
}

// lastViewStyle overlays the outgoing view on the wrapper, below the active view.
func lastViewStyle() transition.StyleMap {
	return transition.StyleMap{
		"position": "absolute",
		"top":      "0",
		"left":     "0",
		"width":    "100%",
		"height":   "100%",
		"z-index":  "0",
	}
}

func arrowStyle(side string) transition.StyleMap {
	return transition.StyleMap{
		"position":  "absolute",
		"top":       "50%",
		side:        "0",
		"cursor":    "pointer",
		"transform": "translateY(-50%)",
	}
}

func dotsStyle() transition.StyleMap {
	return transition.StyleMap{"text-align": "center"}
}

func dotStyle() transition.StyleMap {
	return transition.StyleMap{"cursor": "pointer"}
}
