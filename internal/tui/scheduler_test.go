package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/slider/internal/slider"
)

type armedTick struct {
	d   time.Duration
	msg tea.Msg
}

// fakeTicks records every armed tick instead of sleeping.
type fakeTicks struct {
	armed []armedTick
}

func (f *fakeTicks) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	msg := fn(time.Time{})
	f.armed = append(f.armed, armedTick{d: d, msg: msg})
	return func() tea.Msg { return msg }
}

func (f *fakeTicks) last() armedTick {
	return f.armed[len(f.armed)-1]
}

func TestSchedulerAfterFuncFiresOnce(t *testing.T) {
	ticks := &fakeTicks{}
	s := NewSchedulerWithTick(ticks.tick)

	calls := 0
	s.AfterFunc(30*time.Millisecond, func() { calls++ })
	require.Equal(t, 1, s.Pending())
	require.NotNil(t, s.Drain())
	require.Nil(t, s.Drain())

	require.Len(t, ticks.armed, 1)
	require.Equal(t, 30*time.Millisecond, ticks.armed[0].d)
	msg, ok := ticks.armed[0].msg.(timerMsg)
	require.True(t, ok)

	require.True(t, s.Fire(msg.id))
	require.False(t, s.Fire(msg.id))
	require.Equal(t, 1, calls)
	require.Equal(t, 0, s.Pending())
}

func TestSchedulerStopDiscardsDelivery(t *testing.T) {
	ticks := &fakeTicks{}
	s := NewSchedulerWithTick(ticks.tick)

	calls := 0
	timer := s.AfterFunc(time.Second, func() { calls++ })
	require.True(t, timer.Stop())
	require.False(t, timer.Stop())

	require.False(t, s.Fire(ticks.last().msg.(timerMsg).id))
	require.Zero(t, calls)
}

func TestSchedulerEveryRearms(t *testing.T) {
	ticks := &fakeTicks{}
	s := NewSchedulerWithTick(ticks.tick)

	var timer slider.Timer
	calls := 0
	timer = s.Every(5*time.Second, func() {
		calls++
		if calls == 2 {
			timer.Stop()
		}
	})
	id := ticks.last().msg.(timerMsg).id

	require.True(t, s.Fire(id))
	require.Len(t, ticks.armed, 2)
	require.Equal(t, 5*time.Second, ticks.last().d)

	require.True(t, s.Fire(id))
	require.Equal(t, 2, calls)
	require.Equal(t, 0, s.Pending())
	require.False(t, s.Fire(id))
}

func TestSchedulerEveryRejectsNonPositiveInterval(t *testing.T) {
	s := NewSchedulerWithTick((&fakeTicks{}).tick)
	require.Panics(t, func() { s.Every(0, func() {}) })
}

func TestSchedulerDrivesController(t *testing.T) {
	ticks := &fakeTicks{}
	s := NewSchedulerWithTick(ticks.tick)

	opts := slider.DefaultOptions()
	c, err := slider.New(3, opts, slider.Deps{Scheduler: s})
	require.NoError(t, err)
	c.Mount()

	autoplay := ticks.last()
	require.Equal(t, slider.DefaultDelay, autoplay.d)

	require.True(t, s.Fire(autoplay.msg.(timerMsg).id))
	require.Equal(t, 1, c.State().ActiveIndex)
	require.True(t, c.State().Transitioning)

	settle := ticks.last()
	require.Equal(t, slider.DefaultSettleDelay, settle.d)
	require.True(t, s.Fire(settle.msg.(timerMsg).id))
	require.False(t, c.State().Transitioning)

	c.Unmount()
	require.Equal(t, 0, s.Pending())
	require.False(t, s.Fire(autoplay.msg.(timerMsg).id))
}
