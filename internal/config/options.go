package config

import (
	"time"

	"github.com/alexisbeaulieu97/slider/internal/slider"
	"github.com/alexisbeaulieu97/slider/internal/transition"
	"github.com/alexisbeaulieu97/slider/internal/view"
	slidererrors "github.com/alexisbeaulieu97/slider/pkg/errors"
)

// Default static render size, in terminal cells.
const (
	DefaultViewportWidth  = 60
	DefaultViewportHeight = 10
)

// Options converts the settings into controller options, starting from
// slider.DefaultOptions. Callbacks are left as no-ops for the caller to set.
func (s Settings) Options() (slider.Options, error) {
	opts := slider.DefaultOptions()

	if s.Arrows != nil {
		opts.Arrows = *s.Arrows
	}
	if s.Autoplay != nil {
		opts.Autoplay = *s.Autoplay
	}
	if s.ClassName != "" {
		opts.ClassName = s.ClassName
	}
	if s.DelayMS > 0 {
		opts.Delay = time.Duration(s.DelayMS) * time.Millisecond
	}
	if s.Direction != "" {
		dir, err := transition.ParseDirection(s.Direction)
		if err != nil {
			return slider.Options{}, slidererrors.NewValidationError("slider.direction", err.Error(), err)
		}
		opts.Direction = dir
	}
	opts.Dots = s.Dots
	opts.InitialSlide = s.InitialSlide

	strategy, err := transition.Lookup(s.Transition)
	if err != nil {
		return slider.Options{}, slidererrors.NewValidationError("slider.transition", err.Error(), err)
	}
	opts.Transition = strategy

	if s.TransitionTime != nil {
		opts.TransitionTime = time.Duration(*s.TransitionTime * float64(time.Second))
	}
	if s.SettleDelayMS > 0 {
		opts.SettleDelay = time.Duration(s.SettleDelayMS) * time.Millisecond
	}

	policy, err := slider.ParseGotoPolicy(s.GotoPolicy)
	if err != nil {
		return slider.Options{}, slidererrors.NewValidationError("slider.goto_policy", err.Error(), err)
	}
	opts.GotoPolicy = policy

	if s.Dot != "" {
		opts.Dot = s.Dot
	}
	if s.Arrow.Left != "" {
		opts.Arrow.Left = s.Arrow.Left
	}
	if s.Arrow.Right != "" {
		opts.Arrow.Right = s.Arrow.Right
	}

	return opts, nil
}

// Size returns the configured viewport size with defaults applied.
func (v Viewport) Size() (width, height int) {
	width, height = v.Width, v.Height
	if width <= 0 {
		width = DefaultViewportWidth
	}
	if height <= 0 {
		height = DefaultViewportHeight
	}
	return width, height
}

// Views converts the slides into view content.
func (d *Deck) Views() []view.Slide {
	out := make([]view.Slide, 0, len(d.Slides))
	for _, s := range d.Slides {
		out = append(out, view.Slide{Title: s.Title, Body: s.Body})
	}
	return out
}
