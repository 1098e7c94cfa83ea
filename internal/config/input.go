package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/intervals/internal/model"
)

// Defaults used when neither the config file nor flags set a value.
const (
	DefaultWorkMinutes = 8
	DefaultRestMinutes = 2
	DefaultRepetitions = 8
	DefaultBeepBelow   = 5
)

// ErrInvalidInput is wrapped by every rejected timer setting.
var ErrInvalidInput = errors.New("invalid timer setting")

// FromMinutes builds a timer config from whole minutes and a repetition count.
func FromMinutes(workMinutes, restMinutes, repetitions int) (model.TimerConfig, error) {
	if err := positive("work", workMinutes); err != nil {
		return model.TimerConfig{}, err
	}
	if err := positive("rest", restMinutes); err != nil {
		return model.TimerConfig{}, err
	}
	if err := positive("repetitions", repetitions); err != nil {
		return model.TimerConfig{}, err
	}
	return model.TimerConfig{
		WorkSeconds: workMinutes * 60,
		RestSeconds: restMinutes * 60,
		Repetitions: repetitions,
	}, nil
}

// ParseInput parses raw form values into a timer config.
func ParseInput(work, rest, repetitions string) (model.TimerConfig, error) {
	w, err := parseField("work", work)
	if err != nil {
		return model.TimerConfig{}, err
	}
	r, err := parseField("rest", rest)
	if err != nil {
		return model.TimerConfig{}, err
	}
	n, err := parseField("repetitions", repetitions)
	if err != nil {
		return model.TimerConfig{}, err
	}
	return FromMinutes(w, r, n)
}

func parseField(name, raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, fmt.Errorf("%w: %s must not be empty", ErrInvalidInput, name)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %q", ErrInvalidInput, name, value)
	}
	return n, nil
}

func positive(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s must be > 0, got %d", ErrInvalidInput, name, value)
	}
	return nil
}

// DefaultTemplate returns the commented config written by `intervals config`.
func DefaultTemplate() string {
	return fmt.Sprintf(`# intervals configuration
# Uncomment a value to enable it. CLI flags override config values.

[timer]
# work = %d               # Work stage length in minutes
# rest = %d               # Rest stage length in minutes
# repetitions = %d        # Number of stage switches in a session
# beep-below = %d         # Beep while fewer than this many seconds remain
# sound = true           # Play a sound near the end of each stage
`,
		DefaultWorkMinutes,
		DefaultRestMinutes,
		DefaultRepetitions,
		DefaultBeepBelow,
	)
}
