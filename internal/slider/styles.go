package slider

import "github.com/alexisbeaulieu97/slider/internal/transition"

// ActiveStyle is the style of the incoming view for the current phase: the
// strategy's start pose while transitioning, its end pose plus timing once settled.
func (c *Controller) ActiveStyle() transition.StyleMap {
	s := c.opts.Transition
	st := c.state
	if st.Transitioning {
		return s.Start(st.Direction, st.Viewport.Active)
	}
	return s.End(st.Direction, st.Viewport.Active).Merge(s.Transition(c.opts.TransitionTime))
}

// LastStyle is the style of the outgoing view for the current phase.
func (c *Controller) LastStyle() transition.StyleMap {
	s := c.opts.Transition
	st := c.state
	if st.Transitioning {
		return s.PrevStart(st.Direction, st.Viewport.Last)
	}
	return s.PrevEnd(st.Direction, st.Viewport.Last).Merge(s.Transition(c.opts.TransitionTime))
}
