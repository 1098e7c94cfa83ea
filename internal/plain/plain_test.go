package plain

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/intervals/internal/engine"
	"github.com/verte-zerg/intervals/internal/model"
)

func TestFormatLine(t *testing.T) {
	cfg := model.TimerConfig{WorkSeconds: 480, RestSeconds: 120, Repetitions: 8}
	line := FormatLine(model.Snapshot{Stage: model.StageWork, RemainingSeconds: 240, RepetitionsLeft: 8, Running: true}, cfg, 10)
	assert.Equal(t, "Work  04:00  [#####.....]  reps 8", line)

	line = FormatLine(model.Snapshot{Stage: model.StageRest, RemainingSeconds: 120, RepetitionsLeft: 0, Running: true}, cfg, 4)
	assert.Equal(t, "Rest  02:00  [####]  reps 0  done", line)
}

func TestRunUntilFinished(t *testing.T) {
	eng := engine.New(model.TimerConfig{WorkSeconds: 1, RestSeconds: 1, Repetitions: 2})
	var out bytes.Buffer
	r := &Runner{Engine: eng, Out: &out}

	ticks := make(chan time.Time, 10)
	for i := 0; i < 10; i++ {
		ticks <- time.Now()
	}
	require.NoError(t, r.Run(context.Background(), ticks))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Work  00:01"))
	assert.True(t, strings.HasPrefix(lines[1], "Rest  00:01"))
	assert.True(t, strings.HasSuffix(lines[2], "reps 0  done"))
	assert.Len(t, ticks, 8, "runner stops consuming ticks once finished")
}

func TestRunStopsOnCancel(t *testing.T) {
	eng := engine.New(model.TimerConfig{WorkSeconds: 60, RestSeconds: 60, Repetitions: 2})
	var out bytes.Buffer
	r := &Runner{Engine: eng, Out: &out, Width: 200}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, r.Run(ctx, make(chan time.Time)))
	assert.True(t, eng.Snapshot().Running)
	assert.Equal(t, 60, eng.Snapshot().RemainingSeconds)
}

func TestRunStopsWhenTicksClosed(t *testing.T) {
	eng := engine.New(model.TimerConfig{WorkSeconds: 60, RestSeconds: 60, Repetitions: 2})
	ticks := make(chan time.Time)
	close(ticks)
	r := &Runner{Engine: eng, Out: &bytes.Buffer{}}
	assert.NoError(t, r.Run(context.Background(), ticks))
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, minBarWidth, (&Runner{}).barWidth())
	assert.Equal(t, minBarWidth, (&Runner{Width: 20}).barWidth())
	assert.Equal(t, 20, (&Runner{Width: 50}).barWidth())
	assert.Equal(t, maxBarWidth, (&Runner{Width: 500}).barWidth())
}
