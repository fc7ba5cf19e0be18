// Package transition defines the pluggable transition strategies a slider uses to
// compute the poses of its incoming and outgoing views.
//
// A Strategy is a stateless value. Each method maps a travel direction and the
// viewport geometry captured at transition start to a StyleMap of CSS-compatible
// attributes:
//
//	s := transition.Slide{}
//	s.Start(transition.Forward, transition.Rect{Width: 300}) // transform: translateX(300px)
//	s.PrevEnd(transition.Forward, transition.Rect{Width: 300}) // transform: translateX(-300px)
package transition

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Direction is the sign of travel for a transition.
type Direction int

const (
	// Backward travels towards lower indexes (left / up).
	Backward Direction = -1
	// Forward travels towards higher indexes (right / down).
	Forward Direction = 1
)

// String returns the configuration spelling of the direction.
func (d Direction) String() string {
	if d == Backward {
		return "left"
	}
	return "right"
}

// ParseDirection accepts the configuration spellings "left" and "right".
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left":
		return Backward, nil
	case "right", "":
		return Forward, nil
	default:
		return Forward, fmt.Errorf("unknown direction %q", value)
	}
}

// Rect is the geometry of a viewport as reported by the renderer.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// StyleMap holds style attributes keyed by property name.
type StyleMap map[string]string

// Merge returns a new map containing s overlaid with each of others in order.
func (s StyleMap) Merge(others ...StyleMap) StyleMap {
	merged := make(StyleMap, len(s))
	for k, v := range s {
		merged[k] = v
	}
	for _, other := range others {
		for k, v := range other {
			merged[k] = v
		}
	}
	return merged
}

// CSS renders the map as an inline style declaration with keys sorted.
func (s StyleMap) CSS() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+s[k]+";")
	}
	return strings.Join(parts, " ")
}

// Strategy computes the poses of the two views in flight.
type Strategy interface {
	// Start is the pose of the incoming view before the transition begins.
	Start(dir Direction, view Rect) StyleMap
	// End is the pose of the incoming view once settled.
	End(dir Direction, view Rect) StyleMap
	// PrevStart is the resting pose of the outgoing view.
	PrevStart(dir Direction, view Rect) StyleMap
	// PrevEnd is the pose of the outgoing view once it has exited.
	PrevEnd(dir Direction, view Rect) StyleMap
	// Transition is the animation timing attribute for the given duration.
	Transition(duration time.Duration) StyleMap
}

// Base performs no transition at all.
type Base struct{}

func (Base) Start(Direction, Rect) StyleMap     { return StyleMap{} }
func (Base) End(Direction, Rect) StyleMap       { return StyleMap{} }
func (Base) PrevStart(Direction, Rect) StyleMap { return StyleMap{} }
func (Base) PrevEnd(Direction, Rect) StyleMap   { return StyleMap{} }
func (Base) Transition(time.Duration) StyleMap  { return StyleMap{} }

// Fade cross-fades the incoming view over the outgoing one.
type Fade struct{ Base }

func (Fade) Start(Direction, Rect) StyleMap { return StyleMap{"opacity": "0"} }
func (Fade) End(Direction, Rect) StyleMap   { return StyleMap{"opacity": "1"} }

func (Fade) Transition(d time.Duration) StyleMap {
	return StyleMap{"transition": "opacity " + seconds(d)}
}

// Slide moves both views along the horizontal axis.
type Slide struct{ Base }

func (Slide) Start(dir Direction, view Rect) StyleMap {
	return StyleMap{"transform": translate("X", view.Width*float64(dir))}
}

func (Slide) End(Direction, Rect) StyleMap { return StyleMap{"transform": "translateX(0)"} }

func (Slide) PrevStart(Direction, Rect) StyleMap { return StyleMap{"transform": "translateX(0)"} }

func (Slide) PrevEnd(dir Direction, view Rect) StyleMap {
	return StyleMap{"transform": translate("X", view.Width*float64(-dir))}
}

func (Slide) Transition(d time.Duration) StyleMap {
	return StyleMap{"transition": "transform " + seconds(d)}
}

// SlideDown moves both views along the vertical axis; forward travel enters from above.
type SlideDown struct{ Base }

func (SlideDown) Start(dir Direction, view Rect) StyleMap {
	return StyleMap{"transform": translate("Y", view.Height*float64(-dir))}
}

func (SlideDown) End(Direction, Rect) StyleMap { return StyleMap{"transform": "translateY(0)"} }

func (SlideDown) PrevStart(Direction, Rect) StyleMap {
	return StyleMap{"transform": "translateY(0)"}
}

func (SlideDown) PrevEnd(dir Direction, view Rect) StyleMap {
	return StyleMap{"transform": translate("Y", view.Height*float64(dir))}
}

func (SlideDown) Transition(d time.Duration) StyleMap {
	return StyleMap{"transition": "transform " + seconds(d)}
}

func translate(axis string, offset float64) string {
	return "translate" + axis + "(" + formatNumber(offset) + "px)"
}

func seconds(d time.Duration) string {
	return formatNumber(d.Seconds()) + "s"
}

func formatNumber(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var (
	_ Strategy = Base{}
	_ Strategy = Fade{}
	_ Strategy = Slide{}
	_ Strategy = SlideDown{}
)
