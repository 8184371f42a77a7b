package matcher

import "time"

const tickInterval = time.Second

// countdownActive reports whether the clock should be running.
func (e *Engine) countdownActive() bool {
	return (e.phase == PhasePlaying || e.phase == PhaseResolving) && !e.insufficient
}

// syncCountdown starts or stops the clock to match the session state.
// A session that resumes with no time left is over. Caller holds e.mu.
func (e *Engine) syncCountdown() {
	if !e.countdownActive() {
		e.stopCountdown()
		return
	}
	if e.timeLeft <= 0 {
		e.timeLeft = 0
		e.stopCountdown()
		e.setPhase(PhaseGameOver)
		return
	}
	if e.countdown == nil {
		e.countdown = e.schedule(tickInterval, e.onTick)
	}
}

// restartCountdown begins a fresh one second wait.
func (e *Engine) restartCountdown() {
	e.stopCountdown()
	e.syncCountdown()
}

func (e *Engine) stopCountdown() {
	e.countdown.cancel()
	e.countdown = nil
}

func (e *Engine) onTick(t *task) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.countdown != t {
		return
	}
	e.countdown = nil
	if !e.countdownActive() {
		return
	}

	e.timeLeft--
	if e.timeLeft <= 0 {
		e.timeLeft = 0
		e.setPhase(PhaseGameOver)
		e.logger.Info("time up", "level", e.level, "score", e.score)
	} else {
		e.countdown = e.schedule(tickInterval, e.onTick)
	}
	e.publish()
}

// beginPeek reveals every unmatched tile for d and pauses the clock.
// Any half-made selection is dropped. Caller holds e.mu.
func (e *Engine) beginPeek(d time.Duration) {
	e.stopCountdown()
	e.peek.cancel()
	e.pending = ""
	for i := range e.board.Tiles {
		if !e.board.Tiles[i].Matched {
			e.board.Tiles[i].Selected = true
		}
	}
	e.setPhase(PhasePeeking)
	e.peek = e.schedule(d, e.onPeekEnd)
}

func (e *Engine) onPeekEnd(t *task) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.peek != t {
		return
	}
	e.peek = nil

	for i := range e.board.Tiles {
		if !e.board.Tiles[i].Matched {
			e.board.Tiles[i].Selected = false
		}
	}
	e.setPhase(PhasePlaying)
	e.syncCountdown()
	e.publish()
}
