//go:build !darwin && !linux && !windows

package sound

import "errors"

// playBeep falls back to the terminal bell on unsupported platforms
func playBeep() error {
	return errors.New("unsupported platform")
}
