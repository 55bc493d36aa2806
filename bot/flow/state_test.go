package flow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_BeginReplacesActiveFlow(t *testing.T) {
	t.Parallel()

	store := NewStore()

	first := store.Begin(100, StepCreateName)
	first.BoxName = "half-typed name"

	// Starting a new flow abandons the old one and its staged values
	second := store.Begin(100, StepJoinBoxID)

	got := store.Get(100)
	require.NotNil(t, got)
	assert.Equal(t, StepJoinBoxID, got.Step)
	assert.Empty(t, got.BoxName)
	assert.Same(t, second, got)
}

func TestStore_AdvanceKeepsStagedFields(t *testing.T) {
	t.Parallel()

	store := NewStore()

	state := store.Begin(100, StepJoinBoxID)
	state.BoxID = 7
	store.Advance(state, StepJoinName)
	state.Name = "Alice"
	store.Advance(state, StepJoinAddress)

	got := store.Get(100)
	require.NotNil(t, got)
	assert.Equal(t, StepJoinAddress, got.Step)
	assert.Equal(t, int64(7), got.BoxID)
	assert.Equal(t, "Alice", got.Name)
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Begin(100, StepCreateName)

	store.Clear(100)
	assert.Nil(t, store.Get(100))

	// Clearing a user without a flow is a no-op
	store.Clear(100)
	store.Clear(999)
}

func TestStore_FlowsAreIndependentPerUser(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Begin(100, StepCreateName)
	store.Begin(200, StepJoinBoxID)

	assert.Equal(t, StepCreateName, store.Get(100).Step)
	assert.Equal(t, StepJoinBoxID, store.Get(200).Step)

	store.Clear(100)
	assert.Nil(t, store.Get(100))
	assert.NotNil(t, store.Get(200))
}

func TestStore_CleanupStale(t *testing.T) {
	t.Parallel()

	store := NewStore()
	stale := store.Begin(100, StepCreateName)
	stale.UpdatedAt = time.Now().Add(-2 * time.Hour)
	store.Begin(200, StepJoinBoxID)

	removed := store.CleanupStale(time.Hour)
	assert.Equal(t, 1, removed)
	assert.Nil(t, store.Get(100))
	assert.NotNil(t, store.Get(200))
}
