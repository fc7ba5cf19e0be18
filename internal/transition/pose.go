package transition

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var translatePattern = regexp.MustCompile(`^translate([XY])\((-?[0-9.]+)(?:px)?\)$`)

// Pose is the decoded visual state of a view: translation offsets and opacity.
// Renderers that cannot apply CSS directly paint from a Pose.
type Pose struct {
	X       float64
	Y       float64
	Opacity float64
}

// RestingPose is a fully visible view at its natural position.
var RestingPose = Pose{Opacity: 1}

// PoseOf decodes the opacity and transform attributes of a StyleMap. Missing or
// unparseable attributes keep their resting values.
func PoseOf(style StyleMap) Pose {
	pose := RestingPose
	if raw, ok := style["opacity"]; ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			pose.Opacity = v
		}
	}
	if raw, ok := style["transform"]; ok {
		if m := translatePattern.FindStringSubmatch(strings.TrimSpace(raw)); m != nil {
			if v, err := strconv.ParseFloat(m[2], 64); err == nil {
				if m[1] == "X" {
					pose.X = v
				} else {
					pose.Y = v
				}
			}
		}
	}
	return pose
}

// Lerp interpolates linearly from p towards to. Progress is clamped to [0, 1].
func (p Pose) Lerp(to Pose, progress float64) Pose {
	switch {
	case progress <= 0:
		return p
	case progress >= 1:
		return to
	}
	mix := func(a, b float64) float64 { return a + (b-a)*progress }
	return Pose{
		X:       mix(p.X, to.X),
		Y:       mix(p.Y, to.Y),
		Opacity: mix(p.Opacity, to.Opacity),
	}
}

// Visible reports whether a renderer without partial transparency should draw the view.
func (p Pose) Visible() bool {
	return p.Opacity >= 0.5
}

// TransitionDuration reads the duration of the "transition" attribute, such as
// "opacity 0.5s" or "transform 250ms". A missing or unparseable attribute
// yields zero, meaning the pose changes without animation.
func TransitionDuration(style StyleMap) time.Duration {
	fields := strings.Fields(style["transition"])
	if len(fields) < 2 {
		return 0
	}
	raw := fields[1]
	if strings.HasSuffix(raw, "ms") {
		if v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "ms"), 64); err == nil && v > 0 {
			return time.Duration(v * float64(time.Millisecond))
		}
		return 0
	}
	if v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "s"), 64); err == nil && v > 0 {
		return time.Duration(v * float64(time.Second))
	}
	return 0
}
