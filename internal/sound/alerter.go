package sound

import (
	"github.com/verte-zerg/intervals/internal/logging"
	"github.com/verte-zerg/intervals/internal/model"
)

// Alerter beeps while a running stage is about to end.
type Alerter struct {
	Player    Player
	Threshold int

	// spawn runs fn without blocking the caller; tests replace it.
	spawn func(fn func())
}

// NewAlerter returns an alerter that beeps while fewer than threshold
// seconds remain.
func NewAlerter(player Player, threshold int) *Alerter {
	return &Alerter{
		Player:    player,
		Threshold: threshold,
		spawn:     func(fn func()) { go fn() },
	}
}

// ShouldAlert reports whether snap is inside the alert window.
func (a *Alerter) ShouldAlert(snap model.Snapshot) bool {
	if a == nil || a.Player == nil || a.Threshold <= 0 {
		return false
	}
	return snap.Running && !snap.Finished() && snap.RemainingSeconds < a.Threshold
}

// Observe fires a beep for snap if it is inside the alert window.
// Playback errors are logged and never returned.
func (a *Alerter) Observe(snap model.Snapshot) {
	if !a.ShouldAlert(snap) {
		return
	}
	player := a.Player
	a.spawn(func() {
		if err := player.Beep(); err != nil {
			logging.Logger.Debug("beep failed", "error", err)
		}
	})
}
