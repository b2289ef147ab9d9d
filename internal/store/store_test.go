package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/keyheat/internal/keystats"
	"github.com/verte-zerg/keyheat/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "keyheat.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestKeyStatsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	got, err := st.Get(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, model.KeyStats{}, got)

	require.NoError(t, st.Bump(ctx, "A", keystats.Outcome{Hit: true}))
	require.NoError(t, st.Bump(ctx, "A", keystats.Outcome{Hit: true}))
	require.NoError(t, st.Bump(ctx, "A", keystats.Outcome{Error: true}))
	require.NoError(t, st.Bump(ctx, "", keystats.Outcome{Hit: true}))
	require.NoError(t, st.Set(ctx, "Space", model.KeyStats{Hits: 4, Errors: 9}))

	all, err := st.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]model.KeyStats{
		"A":     {Hits: 2, Errors: 1},
		"Space": {Hits: 4, Errors: 9},
	}, all)

	require.NoError(t, st.Reset(ctx))
	all, err = st.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSummaryAndHistory(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	sum, err := st.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Summary{}, sum)

	start := time.Unix(0, 0)
	for i := 0; i < HistoryLimit+5; i++ {
		_, err := st.RecordAttempt(ctx, model.Attempt{
			StartedAt:  start,
			EndedAt:    start.Add(time.Minute),
			Mode:       model.ModeWords,
			WPM:        float64(i + 1),
			Correct:    10,
			DurationMs: 60000,
		})
		require.NoError(t, err)
	}

	sum, err = st.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, HistoryLimit+5, sum.Attempts)
	assert.Equal(t, float64(HistoryLimit+5), sum.BestWPM)
	assert.Equal(t, 33.0, sum.AvgWPM)

	history, err := st.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, HistoryLimit)
	assert.Equal(t, 6.0, history[0])
	assert.Equal(t, float64(HistoryLimit+5), history[len(history)-1])
}

func TestResetAllKeepsSettings(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	_, err := st.RecordAttempt(ctx, model.Attempt{WPM: 40, Mode: model.ModeSentence})
	require.NoError(t, err)
	require.NoError(t, st.Bump(ctx, "Q", keystats.Outcome{Hit: true}))
	require.NoError(t, st.SetSetting(ctx, SettingTheme, "dark"))

	require.NoError(t, st.ResetAll(ctx))

	sum, err := st.Summary(ctx)
	require.NoError(t, err)
	assert.Zero(t, sum.Attempts)
	all, err := st.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	theme, ok, err := st.Setting(ctx, SettingTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", theme)

	_, ok, err = st.Setting(ctx, SettingKeyboard)
	require.NoError(t, err)
	assert.False(t, ok)
}
