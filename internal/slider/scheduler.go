package slider

import (
	"time"
)

// Timer is a cancelable handle returned by a Scheduler.
type Timer interface {
	// Stop prevents any further firing. It reports whether the timer was still pending.
	Stop() bool
}

// Scheduler delivers deferred callbacks on the controller's event loop.
// Implementations must never run a callback concurrently with another
// controller call; the controller holds no locks.
type Scheduler interface {
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Timer
	// Every runs fn repeatedly, once per interval, until stopped.
	Every(interval time.Duration, fn func()) Timer
}

// ManualScheduler is a Scheduler driven by virtual time. Callbacks fire on the
// goroutine calling Advance, in due order, which makes controller behaviour
// reproducible in tests and lets callers embed a controller in their own loop.
type ManualScheduler struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	owner    *ManualScheduler
	due      time.Duration
	interval time.Duration
	seq      uint64
	fn       func()
	stopped  bool
}

// NewManualScheduler returns a scheduler positioned at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	return s.add(d, 0, fn)
}

// Every implements Scheduler. It panics on a non-positive interval, like time.NewTicker.
func (s *ManualScheduler) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		panic("slider: non-positive interval for ManualScheduler.Every")
	}
	return s.add(interval, interval, fn)
}

func (s *ManualScheduler) add(d, interval time.Duration, fn func()) *manualTimer {
	s.seq++
	t := &manualTimer{owner: s, due: s.now + d, interval: interval, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves virtual time forward by d, firing every callback that falls due.
// Callbacks may schedule or stop timers; those changes apply within the same
// call. It returns the number of callbacks fired.
func (s *ManualScheduler) Advance(d time.Duration) int {
	target := s.now + d
	fired := 0
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		if next.interval > 0 {
			s.seq++
			next.due += next.interval
			next.seq = s.seq
		} else {
			next.stopped = true
			s.remove(next)
		}
		next.fn()
		fired++
	}
	s.now = target
	return fired
}

// Now returns the virtual time elapsed since construction.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers that have not fired or been stopped.
func (s *ManualScheduler) Pending() int {
	return len(s.timers)
}

func (s *ManualScheduler) nextDue(limit time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range s.timers {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *ManualScheduler) remove(target *manualTimer) {
	for i, t := range s.timers {
		if t == target {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	t.owner.remove(t)
	return true
}
