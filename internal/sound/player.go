// Package sound plays short alerts near the end of a stage.
package sound

import (
	"fmt"
	"io"
	"os"
)

// Player plays a single short alert.
type Player interface {
	Beep() error
}

// System plays the platform alert sound, falling back to the terminal bell.
type System struct {
	bell io.Writer
}

// NewSystem returns a player using the platform sound tools.
func NewSystem() *System {
	return &System{bell: os.Stdout}
}

// Beep implements Player.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *System) Beep() error {
	if err := playBeep(); err == nil {
		return nil
	}
	return p.terminalBell()
}

func (p *System) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}

// Silent is a Player that does nothing.
type Silent struct{}

// Beep implements Player.
func (Silent) Beep() error { return nil }
