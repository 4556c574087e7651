package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/codeexplainer/internal/db"
	"github.com/ziadkadry99/codeexplainer/internal/explainer"
	"github.com/ziadkadry99/codeexplainer/internal/language"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewManager(NewStore(database))
}

func sampleResult() *explainer.Result {
	return &explainer.Result{
		Language: language.Python,
		Source:   explainer.SourceAI,
		Raw:      "## Purpose\n* prints",
		HTML:     "<h2>Purpose</h2>",
	}
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())

	_, err := ParseTheme("sepia")
	assert.True(t, errors.Is(err, ErrInvalidTheme))
	th, err := ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)
}

func TestEnsureCreatesAndReuses(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	st, err := m.Ensure(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, st.ID)
	assert.Equal(t, ThemeLight, st.Theme)

	again, err := m.Ensure(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, st.ID, again.ID)

	fresh, err := m.Ensure(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.NotEqual(t, "does-not-exist", fresh.ID)
}

func TestGetUnknown(t *testing.T) {
	m := setupManager(t)
	_, err := m.Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBeginFinishLifecycle(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()
	st, err := m.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, m.Begin(ctx, st.ID))
	require.NoError(t, m.Finish(ctx, st.ID, sampleResult()))

	// A second request clears the previous explanation while busy.
	require.NoError(t, m.Begin(ctx, st.ID))
	busy, err := m.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, busy.Busy)
	assert.Empty(t, busy.Explanation)
	assert.Empty(t, busy.HTML)

	assert.True(t, errors.Is(m.Begin(ctx, st.ID), ErrBusy))

	fb := sampleResult()
	fb.Source = explainer.SourceFallback
	fb.Notice = explainer.FallbackNotice
	require.NoError(t, m.Finish(ctx, st.ID, fb))

	done, err := m.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.False(t, done.Busy)
	assert.Equal(t, "fallback", done.Source)
	assert.Equal(t, explainer.FallbackNotice, done.Notice)
	assert.Equal(t, "python", done.Language)
	assert.Equal(t, "## Purpose\n* prints", done.Explanation)
}

func TestFinishNilOnlyClearsBusy(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()
	st, err := m.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, m.Begin(ctx, st.ID))
	require.NoError(t, m.Finish(ctx, st.ID, nil))
	assert.NoError(t, m.Begin(ctx, st.ID))
}

func TestBeginUnknownSessionReleasesFlag(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	assert.True(t, errors.Is(m.Begin(ctx, "ghost"), ErrNotFound))
	assert.True(t, errors.Is(m.Begin(ctx, "ghost"), ErrNotFound), "flag must not stick")
}

func TestCopy(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()
	st, err := m.Create(ctx)
	require.NoError(t, err)

	_, err = m.Copy(ctx, st.ID)
	assert.True(t, errors.Is(err, ErrNothingToCopy))

	require.NoError(t, m.Begin(ctx, st.ID))
	require.NoError(t, m.Finish(ctx, st.ID, sampleResult()))

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	text, err := m.Copy(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "## Purpose\n* prints", text)

	got, err := m.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, got.Copied)

	now = now.Add(CopyAckDuration)
	got, err = m.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.False(t, got.Copied)
}

func TestThemePersistence(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()
	st, err := m.Create(ctx)
	require.NoError(t, err)

	toggled, err := m.ToggleTheme(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, toggled.Theme)

	set, err := m.SetTheme(ctx, st.ID, ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, set.Theme)

	_, err = m.SetTheme(ctx, st.ID, "neon")
	assert.True(t, errors.Is(err, ErrInvalidTheme))

	_, err = m.ToggleTheme(ctx, "ghost")
	assert.True(t, errors.Is(err, ErrNotFound))
}
