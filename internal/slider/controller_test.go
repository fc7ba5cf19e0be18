package slider

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/slider/internal/logger"
	"github.com/alexisbeaulieu97/slider/internal/transition"
	slidererrors "github.com/alexisbeaulieu97/slider/pkg/errors"
)

type recorder struct {
	events []string
}

func (r *recorder) onChange()        { r.events = append(r.events, "change") }
func (r *recorder) onShow(index int) { r.events = append(r.events, fmt.Sprintf("show:%d", index)) }

func (r *recorder) reset() { r.events = nil }

func newTestController(t *testing.T, count int, mutate func(*Options)) (*Controller, *ManualScheduler, *recorder) {
	t.Helper()

	rec := &recorder{}
	opts := DefaultOptions()
	opts.Autoplay = false
	opts.OnChange = rec.onChange
	opts.OnShow = rec.onShow
	if mutate != nil {
		mutate(&opts)
	}

	sched := NewManualScheduler()
	c, err := New(count, opts, Deps{
		Scheduler: sched,
		Measurer:  FixedMeasurer{Width: 300, Height: 200},
	})
	require.NoError(t, err)
	return c, sched, rec
}

func settle(s *ManualScheduler) {
	s.Advance(DefaultSettleDelay)
}

func requireInvariants(t *testing.T, c *Controller) {
	t.Helper()

	st := c.State()
	require.GreaterOrEqual(t, st.ActiveIndex, 0)
	require.Less(t, st.ActiveIndex, c.ItemCount())
	require.GreaterOrEqual(t, st.LastIndex, 0)
	require.Less(t, st.LastIndex, c.ItemCount())
	require.Contains(t, []transition.Direction{transition.Forward, transition.Backward}, st.Direction)
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	t.Parallel()

	sched := NewManualScheduler()
	cases := []struct {
		name   string
		count  int
		mutate func(*Options)
		deps   Deps
		field  string
	}{
		{name: "no children", count: 0, deps: Deps{Scheduler: sched}, field: "children"},
		{name: "initial slide out of range", count: 2, mutate: func(o *Options) { o.InitialSlide = 2 }, deps: Deps{Scheduler: sched}, field: "initial_slide"},
		{name: "negative initial slide", count: 2, mutate: func(o *Options) { o.InitialSlide = -1 }, deps: Deps{Scheduler: sched}, field: "initial_slide"},
		{name: "nil transition", count: 2, mutate: func(o *Options) { o.Transition = nil }, deps: Deps{Scheduler: sched}, field: "transition"},
		{name: "zero delay", count: 2, mutate: func(o *Options) { o.Delay = 0 }, deps: Deps{Scheduler: sched}, field: "delay"},
		{name: "negative settle delay", count: 2, mutate: func(o *Options) { o.SettleDelay = -time.Millisecond }, deps: Deps{Scheduler: sched}, field: "settle_delay"},
		{name: "missing scheduler", count: 2, field: "scheduler"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tc.mutate != nil {
				tc.mutate(&opts)
			}
			_, err := New(tc.count, opts, tc.deps)
			var validationErr *slidererrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestNewStartsSteadyAtInitialSlide(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestController(t, 4, func(o *Options) { o.InitialSlide = 2 })
	st := c.State()
	require.Equal(t, 2, st.ActiveIndex)
	require.Equal(t, 2, st.LastIndex)
	require.False(t, st.Transitioning)
	require.Equal(t, transition.Forward, st.Direction)
}

func TestNewNormalizesOptions(t *testing.T) {
	t.Parallel()

	c, err := New(1, Options{
		Transition: transition.Slide{},
		Delay:      time.Second,
	}, Deps{Scheduler: NewManualScheduler()})
	require.NoError(t, err)

	opts := c.Options()
	require.Equal(t, DefaultClassName, opts.ClassName)
	require.Equal(t, DefaultDot, opts.Dot)
	require.Equal(t, Arrows{Left: DefaultArrowLeft, Right: DefaultArrowRight}, opts.Arrow)
	require.Equal(t, transition.Forward, opts.Direction)
	require.NotPanics(t, func() {
		c.Mount()
		c.Next()
	})
}

func TestMountFiresOnShowBeforeAnyTransition(t *testing.T) {
	t.Parallel()

	c, sched, rec := newTestController(t, 3, func(o *Options) { o.InitialSlide = 1 })
	c.Mount()
	require.Equal(t, []string{"show:1"}, rec.events)
	require.True(t, c.Mounted())

	c.Mount()
	require.Equal(t, []string{"show:1"}, rec.events, "mount is idempotent")
	require.Zero(t, sched.Pending())
}

func TestNextPrevWrapAround(t *testing.T) {
	t.Parallel()

	c, sched, rec := newTestController(t, 3, nil)
	c.Mount()
	rec.reset()

	c.Next()
	st := c.State()
	require.Equal(t, 1, st.ActiveIndex)
	require.Equal(t, 0, st.LastIndex)
	require.Equal(t, transition.Forward, st.Direction)
	require.True(t, st.Transitioning)

	settle(sched)
	require.False(t, c.State().Transitioning)
	require.Equal(t, []string{"change", "show:1"}, rec.events)

	c.Next()
	settle(sched)
	require.Equal(t, 2, c.State().ActiveIndex)

	c.Next()
	settle(sched)
	require.Equal(t, 0, c.State().ActiveIndex, "next at the last index wraps to zero")
	require.Equal(t, 2, c.State().LastIndex)

	c.Prev()
	settle(sched)
	require.Equal(t, 2, c.State().ActiveIndex, "prev at index zero wraps to the last index")
	require.Equal(t, transition.Backward, c.State().Direction)
}

func TestRandomNavigationStaysInBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for count := 1; count <= 6; count++ {
		c, sched, _ := newTestController(t, count, nil)
		c.Mount()
		for i := 0; i < 200; i++ {
			if rng.Intn(2) == 0 {
				c.Next()
			} else {
				c.Prev()
			}
			if rng.Intn(3) == 0 {
				settle(sched)
			}
			requireInvariants(t, c)
		}
	}
}

func TestGotoSetsIndexesAndDirection(t *testing.T) {
	t.Parallel()

	c, sched, rec := newTestController(t, 5, func(o *Options) { o.InitialSlide = 2 })
	c.Mount()
	rec.reset()

	c.Goto(4)
	require.Equal(t, transition.Forward, c.State().Direction)
	settle(sched)
	st := c.State()
	require.Equal(t, 4, st.ActiveIndex)
	require.Equal(t, 2, st.LastIndex)
	require.Equal(t, []string{"change", "show:4"}, rec.events)

	c.Goto(1)
	require.Equal(t, transition.Backward, c.State().Direction)
	settle(sched)

	c.Goto(1)
	require.Equal(t, transition.Forward, c.State().Direction, "equal index counts as forward")
	settle(sched)
	require.Equal(t, 1, c.State().ActiveIndex)
	require.Equal(t, 1, c.State().LastIndex)
}

func TestGotoPolicies(t *testing.T) {
	t.Parallel()

	cases := []struct {
		policy GotoPolicy
		index  int
		want   int
	}{
		{policy: GotoPassThrough, index: 7, want: 7},
		{policy: GotoPassThrough, index: -2, want: -2},
		{policy: GotoWrap, index: 7, want: 1},
		{policy: GotoWrap, index: -1, want: 2},
		{policy: GotoClamp, index: 7, want: 2},
		{policy: GotoClamp, index: -4, want: 0},
		{policy: GotoClamp, index: 1, want: 1},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%d", tc.policy, tc.index), func(t *testing.T) {
			c, sched, _ := newTestController(t, 3, func(o *Options) { o.GotoPolicy = tc.policy })
			c.Goto(tc.index)
			settle(sched)
			require.Equal(t, tc.want, c.State().ActiveIndex)
		})
	}
}

func TestPassThroughGotoRecoversOnIncrement(t *testing.T) {
	t.Parallel()

	c, sched, _ := newTestController(t, 3, nil)
	c.Goto(9)
	settle(sched)
	require.Equal(t, 9, c.State().ActiveIndex)

	c.Next()
	settle(sched)
	require.Equal(t, 0, c.State().ActiveIndex)
}

func TestNavigationBeforeSettleFiresSingleSettle(t *testing.T) {
	t.Parallel()

	c, sched, rec := newTestController(t, 3, nil)
	c.Mount()
	rec.reset()

	c.Next()
	sched.Advance(10 * time.Millisecond)
	c.Prev()

	st := c.State()
	require.True(t, st.Transitioning)
	require.Equal(t, 0, st.ActiveIndex)
	require.Equal(t, 1, st.LastIndex)
	require.Equal(t, transition.Backward, st.Direction)

	// the superseded settle would have fired at 30ms
	sched.Advance(20 * time.Millisecond)
	require.True(t, c.State().Transitioning)
	require.Empty(t, rec.events)

	sched.Advance(10 * time.Millisecond)
	require.False(t, c.State().Transitioning)
	require.Equal(t, []string{"change", "show:0"}, rec.events)

	sched.Advance(time.Second)
	require.Equal(t, []string{"change", "show:0"}, rec.events, "no second settle")
	require.Zero(t, sched.Pending())
}

func TestOnChangePrecedesOnShowOncePerSettle(t *testing.T) {
	t.Parallel()

	c, sched, rec := newTestController(t, 4, nil)
	c.Mount()
	rec.reset()

	for i := 0; i < 5; i++ {
		c.Next()
		settle(sched)
	}

	require.Len(t, rec.events, 10)
	for i := 0; i < len(rec.events); i += 2 {
		require.Equal(t, "change", rec.events[i])
		require.True(t, strings.HasPrefix(rec.events[i+1], "show:"))
	}
}

func TestTransitionCapturesViewportSnapshot(t *testing.T) {
	t.Parallel()

	calls := map[ViewRole]int{}
	opts := DefaultOptions()
	opts.Autoplay = false
	c, err := New(2, opts, Deps{
		Scheduler: NewManualScheduler(),
		Measurer: MeasureFunc(func(view ViewRole) transition.Rect {
			calls[view]++
			if view == LastView {
				return transition.Rect{Width: 80, Height: 20}
			}
			return transition.Rect{Width: 100, Height: 25}
		}),
	})
	require.NoError(t, err)

	c.Next()
	require.Equal(t, Snapshot{
		Active: transition.Rect{Width: 100, Height: 25},
		Last:   transition.Rect{Width: 80, Height: 20},
	}, c.State().Viewport)
	require.Equal(t, map[ViewRole]int{ActiveView: 1, LastView: 1}, calls)
}

func TestAutoplayFiresOncePerDelay(t *testing.T) {
	t.Parallel()

	c, sched, rec := newTestController(t, 3, func(o *Options) {
		o.Autoplay = true
		o.Delay = time.Second
	})
	c.Mount()
	require.True(t, c.Autoplaying())
	rec.reset()

	sched.Advance(999 * time.Millisecond)
	require.Equal(t, 0, c.State().ActiveIndex)

	sched.Advance(time.Millisecond)
	require.Equal(t, 1, c.State().ActiveIndex)
	require.True(t, c.State().Transitioning)

	sched.Advance(2*time.Second + DefaultSettleDelay)
	require.Equal(t, 0, c.State().ActiveIndex, "two more ticks wrap around")
	require.Equal(t, []string{"change", "show:1", "change", "show:2", "change", "show:0"}, rec.events)

	c.StopAutoplay()
	require.False(t, c.Autoplaying())
	rec.reset()
	sched.Advance(10 * time.Second)
	require.Empty(t, rec.events)
}

func TestAutoplayUsesConfiguredDirection(t *testing.T) {
	t.Parallel()

	c, sched, _ := newTestController(t, 3, func(o *Options) {
		o.Autoplay = true
		o.Delay = time.Second
		o.Direction = transition.Backward
	})
	c.Mount()
	sched.Advance(time.Second)
	require.Equal(t, 2, c.State().ActiveIndex)
	require.Equal(t, transition.Backward, c.State().Direction)
}

func TestManualNavigationRestartsAutoplay(t *testing.T) {
	t.Parallel()

	c, sched, _ := newTestController(t, 5, func(o *Options) {
		o.Autoplay = true
		o.Delay = time.Second
	})
	c.Mount()

	sched.Advance(900 * time.Millisecond)
	c.Next()
	require.Equal(t, 1, c.State().ActiveIndex)

	// the original tick at 1s was cancelled; the restarted timer fires at 1.9s
	sched.Advance(500 * time.Millisecond)
	require.Equal(t, 1, c.State().ActiveIndex)
	sched.Advance(500 * time.Millisecond)
	require.Equal(t, 2, c.State().ActiveIndex)

	// one autoplay timer and nothing else once settled
	settle(sched)
	require.Equal(t, 1, sched.Pending())
}

func TestSetAutoplayToggles(t *testing.T) {
	t.Parallel()

	c, sched, _ := newTestController(t, 3, func(o *Options) { o.Delay = time.Second })
	c.Mount()
	require.False(t, c.Autoplaying())

	c.SetAutoplay(true)
	require.True(t, c.Autoplaying())
	c.Next()
	require.True(t, c.Autoplaying(), "navigation restarts autoplay once enabled")

	c.SetAutoplay(false)
	require.False(t, c.Autoplaying())
	c.Next()
	require.False(t, c.Autoplaying())
	sched.Advance(5 * time.Second)
	require.Equal(t, 2, c.State().ActiveIndex)
}

func TestAutoplayWaitsForMount(t *testing.T) {
	t.Parallel()

	c, sched, rec := newTestController(t, 3, func(o *Options) {
		o.Autoplay = true
		o.Delay = time.Second
	})

	c.Next()
	c.Goto(2)
	c.StartAutoplay()
	c.SetAutoplay(true)
	settle(sched)
	require.False(t, c.Autoplaying())

	rec.reset()
	sched.Advance(5 * time.Second)
	require.Empty(t, rec.events)

	c.Mount()
	require.True(t, c.Autoplaying())
	sched.Advance(time.Second)
	require.Equal(t, 0, c.State().ActiveIndex)
}

func TestUnmountCancelsTimersAndCallbacks(t *testing.T) {
	t.Parallel()

	c, sched, rec := newTestController(t, 3, func(o *Options) {
		o.Autoplay = true
		o.Delay = time.Second
	})
	c.Mount()
	c.Next()
	rec.reset()

	c.Unmount()
	require.False(t, c.Mounted())
	require.Zero(t, sched.Pending())

	sched.Advance(time.Minute)
	c.Next()
	c.Goto(2)
	c.StartAutoplay()
	require.Empty(t, rec.events)
	require.Equal(t, 1, c.State().ActiveIndex)
	require.Zero(t, sched.Pending())
}

func TestControllersOwnTheirTimers(t *testing.T) {
	t.Parallel()

	sched := NewManualScheduler()
	build := func() *Controller {
		opts := DefaultOptions()
		opts.Delay = time.Second
		c, err := New(3, opts, Deps{Scheduler: sched})
		require.NoError(t, err)
		c.Mount()
		return c
	}
	first := build()
	second := build()

	sched.Advance(500 * time.Millisecond)
	second.Next()
	require.True(t, first.Autoplaying(), "restarting the second timer leaves the first running")

	sched.Advance(500 * time.Millisecond)
	require.Equal(t, 1, first.State().ActiveIndex)
	require.Equal(t, 1, second.State().ActiveIndex, "second controller's restarted timer has not fired yet")

	first.Unmount()
	sched.Advance(time.Second)
	require.Equal(t, 1, first.State().ActiveIndex)
	require.Equal(t, 2, second.State().ActiveIndex)
}

func TestScenarioThreeItems(t *testing.T) {
	t.Parallel()

	c, sched, rec := newTestController(t, 3, nil)
	c.Mount()
	require.Equal(t, []string{"show:0"}, rec.events)

	c.Next()
	st := c.State()
	require.Equal(t, 1, st.ActiveIndex)
	require.Equal(t, 0, st.LastIndex)
	require.Equal(t, transition.Forward, st.Direction)
	settle(sched)
	require.Equal(t, []string{"show:0", "change", "show:1"}, rec.events)

	c.Next()
	settle(sched)
	require.Equal(t, 2, c.State().ActiveIndex)
	c.Next()
	settle(sched)
	require.Equal(t, 0, c.State().ActiveIndex)
}

func TestControllerLogsTransitions(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Autoplay = false
	sched := NewManualScheduler()
	c, err := New(2, opts, Deps{Scheduler: sched, Logger: log})
	require.NoError(t, err)

	c.Next()
	settle(sched)

	output := buf.String()
	require.Contains(t, output, `"message":"transition started"`)
	require.Contains(t, output, `"direction":"right"`)
	require.Contains(t, output, `"message":"transition settled"`)
	require.Contains(t, output, `"component":"slider"`)
}
