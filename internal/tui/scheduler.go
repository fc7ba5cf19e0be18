package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/slider/internal/slider"
)

// timerMsg is delivered to Update when a scheduled timer is due.
type timerMsg struct {
	id uint64
}

// TickFunc produces the command that delivers msg after d. tea.Tick is the
// production implementation.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Scheduler implements slider.Scheduler on top of the Bubble Tea event loop:
// timers become tea.Tick commands and their callbacks run inside Update, on
// the same goroutine as every other controller call.
type Scheduler struct {
	tick    TickFunc
	nextID  uint64
	timers  map[uint64]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	sched    *Scheduler
	id       uint64
	interval time.Duration
	repeat   bool
	fn       func()
}

// NewScheduler returns a scheduler backed by tea.Tick.
func NewScheduler() *Scheduler {
	return NewSchedulerWithTick(tea.Tick)
}

// NewSchedulerWithTick returns a scheduler that arms timers through tick.
func NewSchedulerWithTick(tick TickFunc) *Scheduler {
	return &Scheduler{
		tick:   tick,
		timers: make(map[uint64]*teaTimer),
	}
}

// AfterFunc implements slider.Scheduler.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) slider.Timer {
	return s.add(d, false, fn)
}

// Every implements slider.Scheduler.
func (s *Scheduler) Every(interval time.Duration, fn func()) slider.Timer {
	if interval <= 0 {
		panic("tui: Every requires a positive interval")
	}
	return s.add(interval, true, fn)
}

func (s *Scheduler) add(d time.Duration, repeat bool, fn func()) *teaTimer {
	s.nextID++
	t := &teaTimer{sched: s, id: s.nextID, interval: d, repeat: repeat, fn: fn}
	s.timers[t.id] = t
	s.arm(t)
	return t
}

func (s *Scheduler) arm(t *teaTimer) {
	id := t.id
	s.pending = append(s.pending, s.tick(t.interval, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
}

// Stop implements slider.Timer.
func (t *teaTimer) Stop() bool {
	if _, ok := t.sched.timers[t.id]; !ok {
		return false
	}
	delete(t.sched.timers, t.id)
	return true
}

// Fire runs the callback of timer id. Messages of stopped or already fired
// one-shot timers are ignored and report false.
func (s *Scheduler) Fire(id uint64) bool {
	t, ok := s.timers[id]
	if !ok {
		return false
	}
	if t.repeat {
		s.arm(t)
	} else {
		delete(s.timers, id)
	}
	t.fn()
	return true
}

// Drain returns the commands armed since the last call, batched.
func (s *Scheduler) Drain() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}
