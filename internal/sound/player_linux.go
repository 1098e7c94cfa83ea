//go:build linux

package sound

import (
	"errors"
	"os/exec"
)

// playBeep plays the bell on Linux using paplay (PulseAudio) or aplay (ALSA)
func playBeep() error {
	sounds := []struct {
		cmd  string
		args []string
	}{
		{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
		{"aplay", []string{"-q", "/usr/share/sounds/freedesktop/stereo/bell.wav"}},
	}
	for _, sound := range sounds {
		cmd := exec.Command(sound.cmd, sound.args...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return errors.New("no sound player available")
}
