package matcher

import "time"

// UseHint spends a free hint to reveal the board briefly.
// Ignored when tiles are always visible, while peeking, outside play, or with no hints left.
func (e *Engine) UseHint() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.alwaysVisible || e.phase != PhasePlaying || e.hints <= 0 {
		return
	}
	e.hints--
	e.beginPeek(e.cfg.Timing.HintPeek())
	e.publish()
}

// GrantHint reveals the board after a rewarded ad, without spending a hint.
func (e *Engine) GrantHint() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.alwaysVisible || e.phase != PhasePlaying {
		return
	}
	e.beginPeek(e.cfg.Timing.RewardedPeek())
	e.publish()
}

// BuyHintWithCoins pays for a reveal. An unaffordable price raises the
// insufficient currency flag and pauses the clock instead.
func (e *Engine) BuyHintWithCoins() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.alwaysVisible || e.phase != PhasePlaying {
		return
	}
	if !e.purchase(e.cfg.Prices.Hint) {
		return
	}
	e.beginPeek(e.cfg.Timing.HintPeek())
	e.publish()
}

// BuyShuffleWithCoins pays for a shuffle of the unmatched tiles.
func (e *Engine) BuyShuffleWithCoins() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.canShuffle() {
		return
	}
	if !e.purchase(e.cfg.Prices.Shuffle) {
		return
	}
	shuffleUnmatched(&e.board, e.rng)
	e.publish()
}

// BuyExtraTimeWithCoins pays for extra seconds on the clock.
func (e *Engine) BuyExtraTimeWithCoins() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.canAddTime() {
		return
	}
	if !e.purchase(e.cfg.Prices.ExtraTime) {
		return
	}
	e.addTime(e.cfg.Timing.ExtraTimeSeconds)
	e.publish()
}

// ShuffleBoard permutes the unmatched tiles; matched tiles keep their cells.
func (e *Engine) ShuffleBoard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.canShuffle() {
		return
	}
	shuffleUnmatched(&e.board, e.rng)
	e.publish()
}

// AddExtraTime adds seconds to the clock, capped at the maximum.
// A session that ran out of time resumes playing.
func (e *Engine) AddExtraTime(seconds int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.canAddTime() || seconds < 0 {
		return
	}
	e.addTime(seconds)
	e.publish()
}

// DismissInsufficientCurrency clears the flag and resumes the clock.
func (e *Engine) DismissInsufficientCurrency() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.insufficient {
		return
	}
	e.insufficient = false
	e.restartCountdown()
	e.publish()
}

// GrantCurrencyFromReward credits coins earned from a rewarded ad, clears the
// insufficient currency flag and resumes the clock.
func (e *Engine) GrantCurrencyFromReward(amount int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || amount < 0 {
		return
	}
	e.credit(amount)
	if e.insufficient {
		e.insufficient = false
		e.restartCountdown()
	}
	e.publish()
}

// UnlockAdFree records the ad-free purchase.
func (e *Engine) UnlockAdFree() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.adsRemoved {
		return
	}
	if err := e.store.SaveAdsRemoved(true); err != nil {
		e.logger.Error("save ads flag", "err", err)
		return
	}
	e.adsRemoved = true
	e.interstitialDue = false
	e.publish()
}

// DailyRewardAvailable reports whether the daily reward can be claimed at now.
func (e *Engine) DailyRewardAvailable(now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dailyAvailable(now)
}

// ClaimDailyReward credits the daily coins if the cooldown has passed.
// It reports whether anything was credited.
func (e *Engine) ClaimDailyReward(now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.dailyAvailable(now) {
		return false
	}
	if err := e.store.SaveLastDailyReward(now); err != nil {
		e.logger.Error("save daily reward", "err", err)
		return false
	}
	e.credit(e.cfg.Rewards.DailyCoins)
	e.logger.Info("daily reward", "coins", e.cfg.Rewards.DailyCoins)
	e.publish()
	return true
}

func (e *Engine) dailyAvailable(now time.Time) bool {
	last, err := e.store.LoadLastDailyReward()
	if err != nil {
		e.logger.Warn("load daily reward", "err", err)
		return false
	}
	return last.IsZero() || now.Sub(last) >= e.cfg.Rewards.DailyCooldown()
}

func (e *Engine) canShuffle() bool {
	return len(e.board.Tiles) > 0 && (e.phase == PhasePlaying || e.phase == PhaseResolving)
}

func (e *Engine) canAddTime() bool {
	switch e.phase {
	case PhasePlaying, PhaseResolving, PhasePeeking, PhaseGameOver:
		return len(e.board.Tiles) > 0
	}
	return false
}

// addTime extends the clock and revives a timed-out session. Caller holds e.mu.
func (e *Engine) addTime(seconds int) {
	e.timeLeft = e.difficulty.CapTime(e.timeLeft + seconds)
	if e.phase == PhaseGameOver && e.timeLeft > 0 {
		// A mismatch still waiting to flip back keeps input blocked
		if e.resolve != nil {
			e.setPhase(PhaseResolving)
		} else {
			e.setPhase(PhasePlaying)
		}
	}
	if e.phase == PhasePlaying || e.phase == PhaseResolving {
		e.restartCountdown()
	}
}

// purchase debits price. On failure it raises the insufficient currency flag
// and pauses the clock, and reports false. Caller holds e.mu.
func (e *Engine) purchase(price int) bool {
	ok := e.debit(price)
	if !ok {
		e.insufficient = true
		e.stopCountdown()
		e.logger.Debug("insufficient currency", "price", price, "coins", e.coins)
		e.publish()
	}
	return ok
}

func (e *Engine) debit(price int) bool {
	if w, ok := e.store.(Wallet); ok {
		spent, err := w.SpendCurrency(price)
		if err != nil {
			e.logger.Error("spend currency", "err", err)
			return false
		}
		e.reloadCoins()
		return spent
	}

	e.reloadCoins()
	if e.coins < price {
		return false
	}
	if err := e.store.SaveCurrency(e.coins - price); err != nil {
		e.logger.Error("save currency", "err", err)
		return false
	}
	e.coins -= price
	return true
}

func (e *Engine) credit(amount int) {
	if amount <= 0 {
		return
	}
	if w, ok := e.store.(Wallet); ok {
		if err := w.AddCurrency(amount); err != nil {
			e.logger.Error("add currency", "err", err)
		}
		e.reloadCoins()
		return
	}

	e.reloadCoins()
	if err := e.store.SaveCurrency(e.coins + amount); err != nil {
		e.logger.Error("save currency", "err", err)
		return
	}
	e.coins += amount
}

func (e *Engine) reloadCoins() {
	coins, err := e.store.LoadCurrency()
	if err != nil {
		e.logger.Warn("load currency", "err", err)
		return
	}
	e.coins = coins
}
