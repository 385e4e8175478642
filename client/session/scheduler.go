package session

import "time"

// Scheduler runs f after d on the session loop. Timers are never cancelled;
// callbacks re-check the state they guard when they fire.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// loopScheduler posts expired timers back onto the session loop.
type loopScheduler struct {
	post func(task func())
}

func (l *loopScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, func() {
		l.post(f)
	})
}
