//go:build windows

package sound

import (
	"errors"
	"os/exec"
)

// playBeep beeps on Windows using PowerShell
func playBeep() error {
	for _, soundCmd := range []string{"[console]::beep(300,100)", "[System.Media.SystemSounds]::Beep.Play()"} {
		cmd := exec.Command("powershell", "-c", soundCmd)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return errors.New("no sound player available")
}
