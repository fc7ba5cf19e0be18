// Package slider implements the carousel state machine: which item is shown,
// which one is leaving, in what direction, and when the transition settles.
//
// A Controller is single-threaded. Every entry point, including the callbacks
// delivered by its Scheduler, must run on the same event loop.
package slider

import (
	"fmt"

	"github.com/alexisbeaulieu97/slider/internal/logger"
	"github.com/alexisbeaulieu97/slider/internal/transition"
	slidererrors "github.com/alexisbeaulieu97/slider/pkg/errors"
)

// State is a read-only snapshot of the controller state.
type State struct {
	ActiveIndex   int
	LastIndex     int
	Direction     transition.Direction
	Transitioning bool
	Viewport      Snapshot
}

// Deps are the collaborators a Controller calls into.
type Deps struct {
	// Scheduler is required.
	Scheduler Scheduler
	// Measurer defaults to zero geometry.
	Measurer Measurer
	// Logger may be nil.
	Logger *logger.Logger
}

// Controller owns the slide index state and orchestrates transitions.
type Controller struct {
	opts     Options
	count    int
	sched    Scheduler
	measurer Measurer
	log      *logger.Logger

	state State

	autoplay   Timer
	settle     Timer
	generation uint64
	mounted    bool
	unmounted  bool
}

// New validates the options and returns a controller in the steady state at
// opts.InitialSlide. itemCount must be at least one.
func New(itemCount int, opts Options, deps Deps) (*Controller, error) {
	if itemCount < 1 {
		return nil, slidererrors.NewValidationError("children", "at least one child view is required", nil)
	}
	opts = opts.normalize()
	if opts.InitialSlide < 0 || opts.InitialSlide >= itemCount {
		return nil, slidererrors.NewValidationError("initial_slide",
			fmt.Sprintf("initial slide %d is outside [0, %d]", opts.InitialSlide, itemCount-1), nil)
	}
	if opts.Transition == nil {
		return nil, slidererrors.NewValidationError("transition", "transition strategy is required", nil)
	}
	if opts.Delay <= 0 {
		return nil, slidererrors.NewValidationError("delay", "autoplay delay must be positive", nil)
	}
	if opts.SettleDelay < 0 {
		return nil, slidererrors.NewValidationError("settle_delay", "settle delay must not be negative", nil)
	}
	if opts.TransitionTime < 0 {
		return nil, slidererrors.NewValidationError("transition_time", "transition time must not be negative", nil)
	}
	if deps.Scheduler == nil {
		return nil, slidererrors.NewValidationError("scheduler", "a scheduler is required", nil)
	}

	measurer := deps.Measurer
	if measurer == nil {
		measurer = FixedMeasurer{}
	}

	return &Controller{
		opts:     opts,
		count:    itemCount,
		sched:    deps.Scheduler,
		measurer: measurer,
		log:      deps.Logger.With("component", "slider"),
		state: State{
			ActiveIndex: opts.InitialSlide,
			LastIndex:   opts.InitialSlide,
			Direction:   transition.Forward,
		},
	}, nil
}

// Mount announces the initial item through OnShow and starts autoplay when enabled.
// Calling it more than once has no effect.
func (c *Controller) Mount() {
	if c.mounted || c.unmounted {
		return
	}
	c.mounted = true
	c.opts.OnShow(c.state.ActiveIndex)
	if c.opts.Autoplay {
		c.StartAutoplay()
	}
}

// Unmount cancels the autoplay timer and any pending settle. The controller
// ignores every later call.
func (c *Controller) Unmount() {
	if c.unmounted {
		return
	}
	c.StopAutoplay()
	c.cancelSettle()
	c.generation++
	c.unmounted = true
	c.log.Debug("slider unmounted")
}

// Goto transitions to index. The direction is backward when index is below the
// active index and forward otherwise. Out-of-range indexes are handled by the
// configured GotoPolicy.
func (c *Controller) Goto(index int) {
	if c.unmounted {
		return
	}
	c.StopAutoplay()
	if index < c.state.ActiveIndex {
		c.state.Direction = transition.Backward
	} else {
		c.state.Direction = transition.Forward
	}
	c.startTransition(c.opts.GotoPolicy.apply(index, c.count))
	if c.opts.Autoplay {
		c.StartAutoplay()
	}
}

// Next behaves like a click on the right arrow.
func (c *Controller) Next() {
	c.arrowClick(transition.Forward)
}

// Prev behaves like a click on the left arrow.
func (c *Controller) Prev() {
	c.arrowClick(transition.Backward)
}

func (c *Controller) arrowClick(dir transition.Direction) {
	if c.unmounted {
		return
	}
	c.StopAutoplay()
	c.IncrementActiveItem(dir)
	if c.opts.Autoplay {
		c.StartAutoplay()
	}
}

// IncrementActiveItem moves one item in dir, wrapping past either end.
func (c *Controller) IncrementActiveItem(dir transition.Direction) {
	if c.unmounted {
		return
	}
	if dir != transition.Backward {
		dir = transition.Forward
	}
	c.state.Direction = dir

	next := c.state.ActiveIndex + int(dir)
	if next > c.count-1 {
		next = 0
	}
	if next < 0 {
		next = c.count - 1
	}
	c.startTransition(next)
}

func (c *Controller) startTransition(target int) {
	c.cancelSettle()
	c.generation++
	generation := c.generation

	viewport := Snapshot{
		Active: c.measurer.Measure(ActiveView),
		Last:   c.measurer.Measure(LastView),
	}

	from := c.state.ActiveIndex
	c.state.Transitioning = true
	c.state.LastIndex = from
	c.state.ActiveIndex = target
	c.state.Viewport = viewport

	if c.log.Enabled("debug") {
		c.log.WithFields(map[string]any{
			"from":      from,
			"to":        target,
			"direction": c.state.Direction.String(),
		}).Debug("transition started")
	}

	c.settle = c.sched.AfterFunc(c.opts.SettleDelay, func() {
		c.finishTransition(generation)
	})
}

func (c *Controller) finishTransition(generation uint64) {
	if c.unmounted || generation != c.generation {
		return
	}
	c.settle = nil
	c.state.Transitioning = false
	c.log.With("index", c.state.ActiveIndex).Debug("transition settled")

	c.opts.OnChange()
	c.opts.OnShow(c.state.ActiveIndex)
}

func (c *Controller) cancelSettle() {
	if c.settle != nil {
		c.settle.Stop()
		c.settle = nil
	}
}

// StartAutoplay (re)starts the autoplay timer. Any previous timer of this
// controller is cancelled first. Before Mount it does nothing; Mount starts
// the timer when autoplay is enabled.
func (c *Controller) StartAutoplay() {
	if !c.mounted || c.unmounted {
		return
	}
	c.StopAutoplay()
	c.autoplay = c.sched.Every(c.opts.Delay, func() {
		c.IncrementActiveItem(c.opts.Direction)
	})
}

// StopAutoplay cancels the autoplay timer if one is running.
func (c *Controller) StopAutoplay() {
	if c.autoplay != nil {
		c.autoplay.Stop()
		c.autoplay = nil
	}
}

// SetAutoplay changes the autoplay option and starts or stops the timer to match.
func (c *Controller) SetAutoplay(enabled bool) {
	c.opts.Autoplay = enabled
	if enabled {
		c.StartAutoplay()
		return
	}
	c.StopAutoplay()
}

// Autoplaying reports whether the autoplay timer is running.
func (c *Controller) Autoplaying() bool {
	return c.autoplay != nil
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// ItemCount returns the number of child views.
func (c *Controller) ItemCount() int {
	return c.count
}

// Options returns the normalized options the controller runs with.
func (c *Controller) Options() Options {
	return c.opts
}

// Strategy returns the transition strategy in use.
func (c *Controller) Strategy() transition.Strategy {
	return c.opts.Transition
}

// Mounted reports whether Mount has run and Unmount has not.
func (c *Controller) Mounted() bool {
	return c.mounted && !c.unmounted
}
