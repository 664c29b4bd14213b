package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zam-dot/articleparams/internal/appearance"
	"github.com/zam-dot/articleparams/internal/apperr"
	"github.com/zam-dot/articleparams/internal/presentation"
)

// countingStore records how often Commit is called.
type countingStore struct {
	*presentation.Store
	commits int
}

func (s *countingStore) Commit(next appearance.Settings) {
	s.commits++
	s.Store.Commit(next)
}

func newCountingStore() *countingStore {
	return &countingStore{Store: presentation.NewStore()}
}

func option(t *testing.T, c appearance.Category, value string) appearance.Option {
	t.Helper()
	o, ok := c.Lookup(value)
	require.True(t, ok, "missing %s option %s", c, value)
	return o
}

func TestNewControllerStartsClosedWithCommittedDraft(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	c := NewController(store)

	assert.False(t, c.IsOpen())
	assert.Equal(t, store.Current(), c.Draft())
	assert.False(t, c.Dirty())
}

func TestSetDoesNotCommit(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	c := NewController(store)
	c.Toggle()

	require.NoError(t, c.Set(appearance.FontFamily, option(t, appearance.FontFamily, "Merriweather")))
	require.NoError(t, c.Set(appearance.FontSize, option(t, appearance.FontSize, "38px")))
	require.NoError(t, c.Set(appearance.BackgroundColor, option(t, appearance.BackgroundColor, "Dark")))
	require.NoError(t, c.Set(appearance.FontColor, option(t, appearance.FontColor, "White")))
	require.NoError(t, c.Set(appearance.ContentWidth, option(t, appearance.ContentWidth, "Narrow")))

	assert.Equal(t, appearance.Default(), store.Current())
	assert.Equal(t, 0, store.commits)
	assert.True(t, c.Dirty())
	assert.True(t, c.IsOpen())
}

func TestSetReplacesOnlyOneField(t *testing.T) {
	t.Parallel()

	c := NewController(newCountingStore())
	c.Toggle()
	before := c.Draft()

	require.NoError(t, c.Set(appearance.FontSize, option(t, appearance.FontSize, "25px")))

	after := c.Draft()
	assert.Equal(t, "25px", after.FontSize.Value)
	after.FontSize = before.FontSize
	assert.Equal(t, before, after)
}

func TestSetRejectsForeignOption(t *testing.T) {
	t.Parallel()

	c := NewController(newCountingStore())
	c.Toggle()
	before := c.Draft()

	err := c.Set(appearance.FontColor, option(t, appearance.BackgroundColor, "Beige"))
	var foreignErr *apperr.ForeignOptionError
	require.ErrorAs(t, err, &foreignErr)
	assert.Equal(t, before, c.Draft())
}

func TestToggleFromClosedCopiesCommitted(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	committed, err := appearance.Default().With(appearance.ContentWidth, option(t, appearance.ContentWidth, "Narrow"))
	require.NoError(t, err)
	store.Store.Commit(committed)

	c := NewController(store)
	c.Toggle()
	require.NoError(t, c.Set(appearance.FontSize, option(t, appearance.FontSize, "38px")))
	c.Toggle()
	assert.False(t, c.IsOpen())

	c.Toggle()
	assert.True(t, c.IsOpen())
	assert.Equal(t, committed, c.Draft())
}

func TestApplyCommitsDraftAndCloses(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	c := NewController(store)
	c.Toggle()
	require.NoError(t, c.Set(appearance.FontColor, option(t, appearance.FontColor, "Purple")))
	draft := c.Draft()

	c.Apply()

	assert.Equal(t, draft, store.Current())
	assert.False(t, c.IsOpen())
	assert.Equal(t, 1, store.commits)
	assert.False(t, c.Dirty())
}

func TestResetForcesDefaultRegardlessOfPriorState(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	c := NewController(store)

	c.Toggle()
	require.NoError(t, c.Set(appearance.FontSize, option(t, appearance.FontSize, "38px")))
	require.NoError(t, c.Set(appearance.ContentWidth, option(t, appearance.ContentWidth, "Narrow")))
	c.Apply()
	require.NotEqual(t, appearance.Default(), store.Current())

	c.Toggle()
	require.NoError(t, c.Set(appearance.FontColor, option(t, appearance.FontColor, "Green")))
	c.Reset()

	assert.Equal(t, appearance.Default(), store.Current())
	assert.Equal(t, appearance.Default(), c.Draft())
	assert.False(t, c.IsOpen())
}

func TestResetFromDefaultStillCommitsAndCloses(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	c := NewController(store)
	c.Toggle()

	c.Reset()

	assert.Equal(t, 1, store.commits)
	assert.False(t, c.IsOpen())
	assert.Equal(t, appearance.Default(), store.Current())
}

func TestResetWithDivergedDraftThenReopenShowsDefault(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	c := NewController(store)

	c.Toggle()
	require.NoError(t, c.Set(appearance.FontFamily, option(t, appearance.FontFamily, "Days One")))
	require.True(t, c.Dirty())

	c.Reset()
	require.False(t, c.IsOpen())

	c.Toggle()
	assert.True(t, c.IsOpen())
	assert.Equal(t, appearance.Default(), c.Draft())
	assert.Equal(t, appearance.Default(), store.Current())
}

func TestOutsideInteractionWhileClosedIsNoop(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	c := NewController(store)
	draft := c.Draft()

	c.OutsideInteraction()
	c.OutsideInteraction()

	assert.False(t, c.IsOpen())
	assert.Equal(t, draft, c.Draft())
	assert.Equal(t, 0, store.commits)
}

func TestOutsideInteractionDiscardsEditsOnReopen(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	c := NewController(store)

	c.Toggle()
	mono := option(t, appearance.FontFamily, "Roboto Mono")
	require.NoError(t, c.Set(appearance.FontFamily, mono))

	c.OutsideInteraction()
	assert.False(t, c.IsOpen())
	assert.Equal(t, mono, c.Draft().FontFamily, "draft is left as is until reopened")
	assert.Equal(t, 0, store.commits)

	c.Toggle()
	assert.Equal(t, store.Current().FontFamily, c.Draft().FontFamily)
	assert.NotEqual(t, mono, c.Draft().FontFamily)
}

func TestApplyThenResetScenario(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	c := NewController(store)
	require.Equal(t, "Open Sans", store.Current().FontFamily.Value)
	require.Equal(t, "White", store.Current().BackgroundColor.Label)

	c.Toggle()
	require.NoError(t, c.Set(appearance.FontFamily, option(t, appearance.FontFamily, "Roboto Mono")))
	c.Apply()

	assert.Equal(t, "Roboto Mono", store.Current().FontFamily.Value)
	assert.False(t, c.IsOpen())

	c.Toggle()
	require.NoError(t, c.Set(appearance.BackgroundColor, option(t, appearance.BackgroundColor, "Dark")))
	c.Reset()

	assert.Equal(t, appearance.Default(), store.Current())
	assert.Equal(t, "Open Sans", store.Current().FontFamily.Value)
	assert.Equal(t, "White", store.Current().BackgroundColor.Label)
}
