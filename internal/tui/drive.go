package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is delivered once per elapsed interval by Drive.
type TickMsg time.Time

// Drive sends a TickMsg every interval until ctx is done. It is the only
// scheduler in the program; the engine is ticked unconditionally and
// ignores ticks while paused.
func Drive(ctx context.Context, interval time.Duration, send func(tea.Msg)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			send(TickMsg(t))
		}
	}
}
