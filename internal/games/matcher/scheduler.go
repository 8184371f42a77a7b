package matcher

import "time"

// Scheduler runs delayed work for the engine.
// AfterFunc returns a stop function reporting whether the call was prevented.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

type systemScheduler struct{}

// SystemScheduler returns a Scheduler backed by time.AfterFunc.
func SystemScheduler() Scheduler {
	return systemScheduler{}
}

func (systemScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// task is one scheduled callback owned by the engine.
// The engine keeps a pointer per kind of work; a callback whose pointer is no
// longer current was superseded and must do nothing.
type task struct {
	stop func() bool
}

func (t *task) cancel() {
	if t != nil && t.stop != nil {
		t.stop()
	}
}
