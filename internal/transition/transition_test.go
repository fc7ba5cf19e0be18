package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBaseReturnsEmptyStyles(t *testing.T) {
	t.Parallel()

	view := Rect{Width: 300, Height: 200}
	b := Base{}
	require.Empty(t, b.Start(Forward, view))
	require.Empty(t, b.End(Forward, view))
	require.Empty(t, b.PrevStart(Backward, view))
	require.Empty(t, b.PrevEnd(Backward, view))
	require.Empty(t, b.Transition(time.Second))
}

func TestFadePoses(t *testing.T) {
	t.Parallel()

	f := Fade{}
	require.Equal(t, StyleMap{"opacity": "0"}, f.Start(Forward, Rect{}))
	require.Equal(t, StyleMap{"opacity": "1"}, f.End(Backward, Rect{}))
	require.Empty(t, f.PrevStart(Forward, Rect{}))
	require.Empty(t, f.PrevEnd(Forward, Rect{}))
	require.Equal(t, StyleMap{"transition": "opacity 0.5s"}, f.Transition(500*time.Millisecond))
}

func TestSlideOffsetsFollowDirection(t *testing.T) {
	t.Parallel()

	view := Rect{Width: 300, Height: 120}
	s := Slide{}

	require.Equal(t, StyleMap{"transform": "translateX(300px)"}, s.Start(Forward, view))
	require.Equal(t, StyleMap{"transform": "translateX(0)"}, s.End(Forward, view))
	require.Equal(t, StyleMap{"transform": "translateX(0)"}, s.PrevStart(Forward, view))
	require.Equal(t, StyleMap{"transform": "translateX(-300px)"}, s.PrevEnd(Forward, view))

	require.Equal(t, StyleMap{"transform": "translateX(-300px)"}, s.Start(Backward, view))
	require.Equal(t, StyleMap{"transform": "translateX(300px)"}, s.PrevEnd(Backward, view))
	require.Equal(t, StyleMap{"transition": "transform 1.25s"}, s.Transition(1250*time.Millisecond))
}

func TestSlideDownOffsetsAreVertical(t *testing.T) {
	t.Parallel()

	view := Rect{Width: 300, Height: 120}
	s := SlideDown{}

	require.Equal(t, StyleMap{"transform": "translateY(-120px)"}, s.Start(Forward, view))
	require.Equal(t, StyleMap{"transform": "translateY(0)"}, s.End(Forward, view))
	require.Equal(t, StyleMap{"transform": "translateY(0)"}, s.PrevStart(Forward, view))
	require.Equal(t, StyleMap{"transform": "translateY(120px)"}, s.PrevEnd(Forward, view))
	require.Equal(t, StyleMap{"transform": "translateY(120px)"}, s.Start(Backward, view))
}

func TestZeroGeometryYieldsZeroOffset(t *testing.T) {
	t.Parallel()

	require.Equal(t, StyleMap{"transform": "translateX(0px)"}, Slide{}.Start(Backward, Rect{}))
	require.Equal(t, StyleMap{"transform": "translateY(0px)"}, SlideDown{}.PrevEnd(Forward, Rect{}))
}

func TestStyleMapMergeAndCSS(t *testing.T) {
	t.Parallel()

	base := StyleMap{"opacity": "0", "position": "absolute"}
	merged := base.Merge(StyleMap{"opacity": "1"}, StyleMap{"transition": "opacity 0.5s"})

	require.Equal(t, "0", base["opacity"], "merge must not mutate the receiver")
	require.Equal(t, "opacity: 1; position: absolute; transition: opacity 0.5s;", merged.CSS())
	require.Equal(t, "", StyleMap{}.CSS())
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{input: "left", want: Backward},
		{input: "RIGHT", want: Forward},
		{input: "", want: Forward},
		{input: "up", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseDirection(tc.input)
		if tc.wantErr {
			require.Error(t, err, tc.input)
			continue
		}
		require.NoError(t, err, tc.input)
		require.Equal(t, tc.want, got, tc.input)
	}

	require.Equal(t, "left", Backward.String())
	require.Equal(t, "right", Forward.String())
}
