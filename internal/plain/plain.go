// Package plain renders the timer as one text line per change, for pipes
// and terminals without full-screen support.
package plain

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/verte-zerg/intervals/internal/engine"
	"github.com/verte-zerg/intervals/internal/model"
	"github.com/verte-zerg/intervals/internal/sound"
)

const (
	minBarWidth = 10
	maxBarWidth = 40
)

// Runner drives an engine from a tick channel and prints its progress.
type Runner struct {
	Engine  *engine.Engine
	Out     io.Writer
	Alerter *sound.Alerter
	// Width is the terminal width used to size the bar; 0 means unknown.
	Width int
}

// Run starts the engine and prints a line after each change until the
// session finishes, ctx is cancelled, or ticks is closed.
func (r *Runner) Run(ctx context.Context, ticks <-chan time.Time) error {
	var writeErr error
	r.Engine.Subscribe(func(snap model.Snapshot) {
		if writeErr != nil {
			return
		}
		_, writeErr = fmt.Fprintln(r.Out, FormatLine(snap, r.Engine.Config(), r.barWidth()))
	})
	r.Engine.Start()

	for !r.Engine.Snapshot().Finished() {
		if writeErr != nil {
			return fmt.Errorf("failed to write output: %w", writeErr)
		}
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			r.Engine.Tick()
			r.Alerter.Observe(r.Engine.Snapshot())
		}
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write output: %w", writeErr)
	}
	return nil
}

func (r *Runner) barWidth() int {
	if r.Width <= 0 {
		return minBarWidth
	}
	w := r.Width - 30
	if w > maxBarWidth {
		return maxBarWidth
	}
	if w < minBarWidth {
		return minBarWidth
	}
	return w
}

// FormatLine renders a snapshot as "Work  07:59  [#####.....]  reps 8".
func FormatLine(snap model.Snapshot, cfg model.TimerConfig, barWidth int) string {
	total := cfg.Duration(snap.Stage)
	filled := 0
	if total > 0 {
		filled = snap.RemainingSeconds * barWidth / total
	}
	bar := strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled)
	line := fmt.Sprintf("%-4s  %s  [%s]  reps %d", snap.Stage, snap.Clock(), bar, snap.RepetitionsLeft)
	if snap.Finished() {
		line += "  done"
	}
	return line
}
