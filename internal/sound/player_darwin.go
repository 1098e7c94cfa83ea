//go:build darwin

package sound

import (
	"errors"
	"os/exec"
)

// playBeep plays a short system sound on macOS using afplay
func playBeep() error {
	for _, soundFile := range []string{"/System/Library/Sounds/Tink.aiff", "/System/Library/Sounds/Pop.aiff"} {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return errors.New("no sound player available")
}
