package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/intervals/internal/model"
)

func snap(stage model.Stage, remaining, reps int, running bool) model.Snapshot {
	return model.Snapshot{Stage: stage, RemainingSeconds: remaining, RepetitionsLeft: reps, Running: running}
}

func TestNewInitialSnapshot(t *testing.T) {
	configs := []model.TimerConfig{
		{WorkSeconds: 1, RestSeconds: 1, Repetitions: 1},
		{WorkSeconds: 480, RestSeconds: 120, Repetitions: 8},
		{WorkSeconds: 30, RestSeconds: 90, Repetitions: 3},
	}
	for _, cfg := range configs {
		e := New(cfg)
		assert.Equal(t, snap(model.StageWork, cfg.WorkSeconds, cfg.Repetitions, false), e.Snapshot())
		assert.Equal(t, cfg, e.Config())
	}
}

func TestTickWhileStoppedIsNoop(t *testing.T) {
	e := New(model.TimerConfig{WorkSeconds: 3, RestSeconds: 2, Repetitions: 2})
	before := e.Snapshot()
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	assert.Equal(t, before, e.Snapshot())

	e.Start()
	e.Tick()
	e.Pause()
	paused := e.Snapshot()
	e.Tick()
	e.Tick()
	assert.Equal(t, paused, e.Snapshot())
}

func TestWorkStageLastsExactlyWorkTicks(t *testing.T) {
	e := New(model.TimerConfig{WorkSeconds: 4, RestSeconds: 3, Repetitions: 5})
	e.Start()
	for i := 0; i < 3; i++ {
		e.Tick()
		assert.Equal(t, snap(model.StageWork, 3-i, 5, true), e.Snapshot())
	}
	e.Tick()
	assert.Equal(t, snap(model.StageRest, 3, 4, true), e.Snapshot())

	e.Tick()
	assert.Equal(t, snap(model.StageRest, 2, 4, true), e.Snapshot())
}

func TestCyclesExhaustRepetitions(t *testing.T) {
	cfg := model.TimerConfig{WorkSeconds: 3, RestSeconds: 2, Repetitions: 4}
	e := New(cfg)
	e.Start()
	for i := 0; i < cfg.Repetitions/2; i++ {
		for j := 0; j < cfg.WorkSeconds+cfg.RestSeconds; j++ {
			e.Tick()
		}
	}
	final := e.Snapshot()
	require.Equal(t, 0, final.RepetitionsLeft)
	assert.True(t, final.Finished())
	assert.True(t, final.Running)

	for i := 0; i < 20; i++ {
		e.Tick()
	}
	assert.Equal(t, final, e.Snapshot())
}

func TestSkipRoundTrip(t *testing.T) {
	e := New(model.TimerConfig{WorkSeconds: 10, RestSeconds: 5, Repetitions: 3})
	e.Start()
	e.Tick()
	e.Tick()
	before := e.Snapshot()

	e.SkipForward()
	assert.Equal(t, snap(model.StageRest, 5, 2, true), e.Snapshot())

	e.SkipBackward()
	after := e.Snapshot()
	assert.Equal(t, before.Stage, after.Stage)
	assert.Equal(t, before.RepetitionsLeft, after.RepetitionsLeft)
	assert.Equal(t, 10, after.RemainingSeconds)
	assert.NotEqual(t, before.RemainingSeconds, after.RemainingSeconds)
}

func TestSkipGuards(t *testing.T) {
	e := New(model.TimerConfig{WorkSeconds: 10, RestSeconds: 5, Repetitions: 2})

	e.SkipForward()
	assert.Equal(t, snap(model.StageWork, 10, 2, false), e.Snapshot(), "skip forward needs running")

	e.Start()
	e.SkipBackward()
	assert.Equal(t, snap(model.StageWork, 10, 2, true), e.Snapshot(), "cannot go back past the first repetition")

	e.SkipForward()
	e.SkipForward()
	assert.Equal(t, snap(model.StageWork, 10, 0, true), e.Snapshot())
	e.SkipForward()
	assert.Equal(t, 0, e.Snapshot().RepetitionsLeft, "repetitions never drop below zero")

	e.Pause()
	e.SkipBackward()
	assert.Equal(t, 0, e.Snapshot().RepetitionsLeft, "skip backward needs running")

	e.Pause()
	e.SkipBackward()
	assert.Equal(t, snap(model.StageRest, 5, 1, true), e.Snapshot())
}

func TestStopRestoresInitialSnapshot(t *testing.T) {
	cfg := model.TimerConfig{WorkSeconds: 3, RestSeconds: 2, Repetitions: 3}
	initial := New(cfg).Snapshot()

	e := New(cfg)
	e.Start()
	for i := 0; i < 7; i++ {
		e.Tick()
	}
	e.SkipForward()
	e.Stop()
	assert.Equal(t, initial, e.Snapshot())

	e.Stop()
	assert.Equal(t, initial, e.Snapshot())
}

func TestStartKeepsProgress(t *testing.T) {
	e := New(model.TimerConfig{WorkSeconds: 5, RestSeconds: 5, Repetitions: 1})
	e.Start()
	e.Tick()
	e.Start()
	assert.Equal(t, snap(model.StageWork, 4, 1, true), e.Snapshot())
}

func TestPauseTwiceRestoresRunning(t *testing.T) {
	e := New(model.TimerConfig{WorkSeconds: 5, RestSeconds: 5, Repetitions: 2})
	e.Start()
	e.Tick()
	before := e.Snapshot()

	e.Pause()
	assert.False(t, e.Snapshot().Running)
	e.Pause()
	assert.Equal(t, before, e.Snapshot())
}

func TestReconfigureResetsAndStops(t *testing.T) {
	e := New(model.TimerConfig{WorkSeconds: 5, RestSeconds: 5, Repetitions: 2})
	e.Start()
	e.Tick()

	next := model.TimerConfig{WorkSeconds: 60, RestSeconds: 30, Repetitions: 6}
	e.Reconfigure(next)
	assert.Equal(t, next, e.Config())
	assert.Equal(t, snap(model.StageWork, 60, 6, false), e.Snapshot())
}

func TestOneSecondScenario(t *testing.T) {
	e := New(model.TimerConfig{WorkSeconds: 1, RestSeconds: 1, Repetitions: 2})
	e.Start()

	e.Tick()
	assert.Equal(t, snap(model.StageRest, 1, 1, true), e.Snapshot())
	e.Tick()
	assert.Equal(t, snap(model.StageWork, 1, 0, true), e.Snapshot())
	e.Tick()
	assert.Equal(t, snap(model.StageWork, 1, 0, true), e.Snapshot())
}

func TestSubscribeNotifiesOnChangeOnly(t *testing.T) {
	e := New(model.TimerConfig{WorkSeconds: 2, RestSeconds: 2, Repetitions: 1})
	var got []model.Snapshot
	e.Subscribe(func(s model.Snapshot) { got = append(got, s) })
	e.Subscribe(nil)

	e.Tick()
	e.Stop()
	require.Empty(t, got)

	e.Start()
	e.Start()
	e.Tick()
	require.Len(t, got, 2)
	assert.Equal(t, snap(model.StageWork, 2, 1, true), got[0])
	assert.Equal(t, snap(model.StageWork, 1, 1, true), got[1])
}

func TestInvariantsHoldUnderMixedOperations(t *testing.T) {
	cfg := model.TimerConfig{WorkSeconds: 3, RestSeconds: 2, Repetitions: 3}
	e := New(cfg)
	ops := []func(){e.Start, e.Tick, e.Tick, e.SkipForward, e.Tick, e.SkipBackward, e.SkipBackward,
		e.Pause, e.Tick, e.Pause, e.SkipForward, e.SkipForward, e.SkipForward, e.SkipForward, e.Tick, e.SkipBackward}
	for i, op := range ops {
		op()
		s := e.Snapshot()
		assert.GreaterOrEqual(t, s.RemainingSeconds, 0, "op %d", i)
		assert.LessOrEqual(t, s.RemainingSeconds, cfg.Duration(s.Stage), "op %d", i)
		assert.GreaterOrEqual(t, s.RepetitionsLeft, 0, "op %d", i)
		assert.LessOrEqual(t, s.RepetitionsLeft, cfg.Repetitions, "op %d", i)
	}
}
