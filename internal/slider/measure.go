package slider

import "github.com/alexisbeaulieu97/slider/internal/transition"

// ViewRole identifies one of the two viewports a slider keeps in flight.
type ViewRole int

const (
	// ActiveView hosts the incoming (current) item.
	ActiveView ViewRole = iota
	// LastView hosts the outgoing (previous) item.
	LastView
)

func (r ViewRole) String() string {
	if r == LastView {
		return "last"
	}
	return "active"
}

// Measurer reports viewport geometry from the rendering layer.
type Measurer interface {
	Measure(view ViewRole) transition.Rect
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(view ViewRole) transition.Rect

// Measure implements Measurer.
func (f MeasureFunc) Measure(view ViewRole) transition.Rect {
	return f(view)
}

// FixedMeasurer reports the same rectangle for both viewports.
type FixedMeasurer transition.Rect

// Measure implements Measurer.
func (m FixedMeasurer) Measure(ViewRole) transition.Rect {
	return transition.Rect(m)
}

// Snapshot is the geometry captured at transition start.
type Snapshot struct {
	Active transition.Rect
	Last   transition.Rect
}
