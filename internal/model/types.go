// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

// Stage is one of the two alternating phases of a session.
type Stage int

const (
	// StageWork is the active phase. Every session starts here.
	StageWork Stage = iota
	// StageRest is the recovery phase.
	StageRest
)

// String returns the human label of the stage.
func (s Stage) String() string {
	if s == StageRest {
		return "Rest"
	}
	return "Work"
}

// Other returns the stage that follows s.
func (s Stage) Other() Stage {
	if s == StageWork {
		return StageRest
	}
	return StageWork
}

// TimerConfig defines the immutable settings of a session.
type TimerConfig struct {
	WorkSeconds int
	RestSeconds int
	Repetitions int
}

// Duration returns the configured length of a stage in seconds.
func (c TimerConfig) Duration(stage Stage) int {
	if stage == StageRest {
		return c.RestSeconds
	}
	return c.WorkSeconds
}

// Validate reports the first non-positive field.
func (c TimerConfig) Validate() error {
	if c.WorkSeconds <= 0 {
		return fmt.Errorf("work duration must be > 0")
	}
	if c.RestSeconds <= 0 {
		return fmt.Errorf("rest duration must be > 0")
	}
	if c.Repetitions <= 0 {
		return fmt.Errorf("repetitions must be > 0")
	}
	return nil
}

// Snapshot is a read-only view of the timer state.
type Snapshot struct {
	Stage            Stage
	RemainingSeconds int
	RepetitionsLeft  int
	Running          bool
}

// Clock formats the remaining time as MM:SS.
func (s Snapshot) Clock() string {
	return fmt.Sprintf("%02d:%02d", s.RemainingSeconds/60, s.RemainingSeconds%60)
}

// Finished reports whether all repetitions are used up.
func (s Snapshot) Finished() bool {
	return s.RepetitionsLeft == 0
}

// Preset is a named, saved timer configuration.
type Preset struct {
	Name      string
	Config    TimerConfig
	CreatedAt time.Time
}
