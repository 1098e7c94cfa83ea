package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/intervals/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "intervals.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestPresetRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	err := st.SavePreset(ctx, model.Preset{
		Name:      "tabata",
		Config:    model.TimerConfig{WorkSeconds: 20, RestSeconds: 10, Repetitions: 16},
		CreatedAt: created,
	})
	require.NoError(t, err)

	p, err := st.GetPreset(ctx, "tabata")
	require.NoError(t, err)
	assert.Equal(t, "tabata", p.Name)
	assert.Equal(t, model.TimerConfig{WorkSeconds: 20, RestSeconds: 10, Repetitions: 16}, p.Config)
	assert.True(t, created.Equal(p.CreatedAt))
}

func TestSavePresetUpserts(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SavePreset(ctx, model.Preset{Name: "run", Config: model.TimerConfig{WorkSeconds: 60, RestSeconds: 60, Repetitions: 2}}))
	require.NoError(t, st.SavePreset(ctx, model.Preset{Name: "run", Config: model.TimerConfig{WorkSeconds: 120, RestSeconds: 30, Repetitions: 4}}))

	presets, err := st.ListPresets(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, 120, presets[0].Config.WorkSeconds)
}

func TestSavePresetRejectsInvalid(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	assert.Error(t, st.SavePreset(ctx, model.Preset{Name: " ", Config: model.TimerConfig{WorkSeconds: 1, RestSeconds: 1, Repetitions: 1}}))
	assert.Error(t, st.SavePreset(ctx, model.Preset{Name: "bad", Config: model.TimerConfig{WorkSeconds: 0, RestSeconds: 1, Repetitions: 1}}))
}

func TestListPresetsOrderedByName(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, st.SavePreset(ctx, model.Preset{Name: name, Config: model.TimerConfig{WorkSeconds: 1, RestSeconds: 1, Repetitions: 1}}))
	}

	presets, err := st.ListPresets(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestMissingPreset(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	_, err := st.GetPreset(ctx, "nope")
	assert.ErrorIs(t, err, ErrPresetNotFound)
	assert.ErrorIs(t, st.DeletePreset(ctx, "nope"), ErrPresetNotFound)
}

func TestDeletePreset(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.SavePreset(ctx, model.Preset{Name: "x", Config: model.TimerConfig{WorkSeconds: 1, RestSeconds: 1, Repetitions: 1}}))

	require.NoError(t, st.DeletePreset(ctx, "x"))
	presets, err := st.ListPresets(ctx)
	require.NoError(t, err)
	assert.Empty(t, presets)
}
