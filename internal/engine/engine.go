// Package engine implements the interval timer state machine.
//
// The engine keeps no clock of its own. A host delivers one Tick per
// elapsed second and serialises ticks with user commands, typically on a
// UI event loop. An Engine is not safe for concurrent use.
package engine

import "github.com/verte-zerg/intervals/internal/model"

// Listener receives the snapshot after every operation that changed it.
type Listener func(model.Snapshot)

// Engine counts down alternating work and rest stages.
type Engine struct {
	config    model.TimerConfig
	state     model.Snapshot
	listeners []Listener
}

// New returns an engine in the initial state for cfg. The caller is
// expected to have validated cfg at the configuration boundary.
func New(cfg model.TimerConfig) *Engine {
	e := &Engine{config: cfg}
	e.state = initialState(cfg)
	return e
}

func initialState(cfg model.TimerConfig) model.Snapshot {
	return model.Snapshot{
		Stage:            model.StageWork,
		RemainingSeconds: cfg.WorkSeconds,
		RepetitionsLeft:  cfg.Repetitions,
		Running:          false,
	}
}

// Subscribe registers fn to be called after each state change.
func (e *Engine) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	e.listeners = append(e.listeners, fn)
}

// Config returns the active configuration.
func (e *Engine) Config() model.TimerConfig {
	return e.config
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() model.Snapshot {
	return e.state
}

// Start sets the timer running. Progress is kept.
func (e *Engine) Start() {
	if e.state.Running {
		return
	}
	e.mutate(func(s *model.Snapshot) { s.Running = true })
}

// Pause toggles between running and paused.
func (e *Engine) Pause() {
	e.mutate(func(s *model.Snapshot) { s.Running = !s.Running })
}

// Stop halts the timer and rewinds to the initial state.
func (e *Engine) Stop() {
	e.mutate(func(s *model.Snapshot) { *s = initialState(e.config) })
}

// Tick advances the countdown by one second. The tick that brings the
// stage to zero also switches stage, so a stage of w seconds lasts exactly
// w ticks. Once repetitions are exhausted ticks have no effect until Stop
// or Reconfigure.
func (e *Engine) Tick() {
	if !e.active() {
		return
	}
	e.mutate(func(s *model.Snapshot) {
		if s.RemainingSeconds > 0 {
			s.RemainingSeconds--
		}
		if s.RemainingSeconds == 0 {
			e.advance(s)
		}
	})
}

// SkipForward switches to the next stage, consuming a repetition.
func (e *Engine) SkipForward() {
	if !e.active() {
		return
	}
	e.mutate(e.advance)
}

// SkipBackward returns to the previous stage, restoring a repetition.
// The stage restarts at its full duration.
func (e *Engine) SkipBackward() {
	if !e.state.Running || e.state.RepetitionsLeft >= e.config.Repetitions {
		return
	}
	e.mutate(func(s *model.Snapshot) {
		s.RepetitionsLeft++
		e.switchStage(s)
	})
}

// Reconfigure replaces the configuration and resets to a stopped initial
// state.
func (e *Engine) Reconfigure(cfg model.TimerConfig) {
	e.config = cfg
	e.mutate(func(s *model.Snapshot) { *s = initialState(cfg) })
}

func (e *Engine) active() bool {
	return e.state.Running && e.state.RepetitionsLeft > 0
}

func (e *Engine) advance(s *model.Snapshot) {
	e.switchStage(s)
	s.RepetitionsLeft--
}

func (e *Engine) switchStage(s *model.Snapshot) {
	s.Stage = s.Stage.Other()
	s.RemainingSeconds = e.config.Duration(s.Stage)
}

func (e *Engine) mutate(fn func(*model.Snapshot)) {
	before := e.state
	fn(&e.state)
	if e.state == before {
		return
	}
	for _, l := range e.listeners {
		l(e.state)
	}
}
