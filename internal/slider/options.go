package slider

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/slider/internal/transition"
)

// Default option values.
const (
	DefaultClassName      = "slider"
	DefaultDelay          = 5 * time.Second
	DefaultTransitionTime = 500 * time.Millisecond
	DefaultSettleDelay    = 30 * time.Millisecond
	DefaultDot            = "•"
	DefaultArrowLeft      = "‹"
	DefaultArrowRight     = "›"
)

// GotoPolicy decides what Goto does with an index outside [0, itemCount).
type GotoPolicy int

const (
	// GotoPassThrough stores the requested index unchanged.
	GotoPassThrough GotoPolicy = iota
	// GotoWrap wraps the index modulo the item count.
	GotoWrap
	// GotoClamp clamps the index to the first or last item.
	GotoClamp
)

// String returns the configuration spelling of the policy.
func (p GotoPolicy) String() string {
	switch p {
	case GotoWrap:
		return "wrap"
	case GotoClamp:
		return "clamp"
	default:
		return "passthrough"
	}
}

// ParseGotoPolicy accepts "passthrough", "wrap" and "clamp".
func ParseGotoPolicy(value string) (GotoPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "passthrough":
		return GotoPassThrough, nil
	case "wrap":
		return GotoWrap, nil
	case "clamp":
		return GotoClamp, nil
	default:
		return GotoPassThrough, fmt.Errorf("unknown goto policy %q", value)
	}
}

func (p GotoPolicy) apply(index, count int) int {
	switch p {
	case GotoWrap:
		index %= count
		if index < 0 {
			index += count
		}
		return index
	case GotoClamp:
		if index < 0 {
			return 0
		}
		if index > count-1 {
			return count - 1
		}
		return index
	default:
		return index
	}
}

// Arrows holds the glyphs rendered inside the navigation arrows.
type Arrows struct {
	Left  string
	Right string
}

// Options configures a Controller. Start from DefaultOptions so boolean
// features default to enabled.
type Options struct {
	Arrows         bool
	Autoplay       bool
	ClassName      string
	Delay          time.Duration
	Direction      transition.Direction
	Dots           bool
	InitialSlide   int
	Transition     transition.Strategy
	TransitionTime time.Duration
	SettleDelay    time.Duration
	GotoPolicy     GotoPolicy

	OnChange func()
	OnShow   func(index int)

	Dot   string
	Arrow Arrows
}

// DefaultOptions returns the option set used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Arrows:         true,
		Autoplay:       true,
		ClassName:      DefaultClassName,
		Delay:          DefaultDelay,
		Direction:      transition.Forward,
		Dots:           false,
		InitialSlide:   0,
		Transition:     transition.Fade{},
		TransitionTime: DefaultTransitionTime,
		SettleDelay:    DefaultSettleDelay,
		GotoPolicy:     GotoPassThrough,
		OnChange:       func() {},
		OnShow:         func(int) {},
		Dot:            DefaultDot,
		Arrow:          Arrows{Left: DefaultArrowLeft, Right: DefaultArrowRight},
	}
}

// normalize fills zero-valued fields that have no meaningful zero.
func (o Options) normalize() Options {
	if o.ClassName == "" {
		o.ClassName = DefaultClassName
	}
	if o.Direction != transition.Backward {
		o.Direction = transition.Forward
	}
	if o.OnChange == nil {
		o.OnChange = func() {}
	}
	if o.OnShow == nil {
		o.OnShow = func(int) {}
	}
	if o.Dot == "" {
		o.Dot = DefaultDot
	}
	if o.Arrow.Left == "" {
		o.Arrow.Left = DefaultArrowLeft
	}
	if o.Arrow.Right == "" {
		o.Arrow.Right = DefaultArrowRight
	}
	return o
}
