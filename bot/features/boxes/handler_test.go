package boxes

import (
	"strings"
	"testing"

	"santabox/bot/flow"
	"santabox/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeature() *Feature {
	return &Feature{flows: flow.NewStore()}
}

func TestCreationFlow_NameStep(t *testing.T) {
	t.Parallel()

	t.Run("over-length name re-prompts staging nothing", func(t *testing.T) {
		t.Parallel()

		f := newTestFeature()
		state := f.flows.Begin(1, flow.StepCreateName)

		reply, ok := f.advanceNameStep(state, strings.Repeat("x", entities.MaxBoxNameLength+1))
		assert.False(t, ok)
		assert.Contains(t, reply, "Try another one")

		// The flow stays on the name step with nothing staged
		assert.Equal(t, flow.StepCreateName, state.Step)
		assert.Empty(t, state.BoxName)
	})

	t.Run("name at the limit stages and advances", func(t *testing.T) {
		t.Parallel()

		f := newTestFeature()
		state := f.flows.Begin(1, flow.StepCreateName)

		name := strings.Repeat("x", entities.MaxBoxNameLength)
		_, ok := f.advanceNameStep(state, name)
		require.True(t, ok)

		assert.Equal(t, flow.StepCreatePhoto, state.Step)
		assert.Equal(t, name, state.BoxName)
	})
}

func TestCreationFlow_PhotoStep(t *testing.T) {
	t.Parallel()

	skips := []string{"skip", "Skip", " SKIP "}
	for _, content := range skips {
		t.Run("skips with "+content, func(t *testing.T) {
			t.Parallel()

			f := newTestFeature()
			state := f.flows.Begin(1, flow.StepCreatePhoto)

			_, ok := f.advancePhotoStep(state, content)
			require.True(t, ok)

			assert.Equal(t, flow.StepCreateDescription, state.Step)
			assert.Empty(t, state.PhotoRef)
		})
	}

	t.Run("other text re-prompts in place", func(t *testing.T) {
		t.Parallel()

		f := newTestFeature()
		state := f.flows.Begin(1, flow.StepCreatePhoto)

		reply, ok := f.advancePhotoStep(state, "here is my photo")
		assert.False(t, ok)
		assert.Contains(t, reply, "`skip`")
		assert.Equal(t, flow.StepCreatePhoto, state.Step)
	})
}

func TestStagedPhotoRef(t *testing.T) {
	t.Parallel()

	// A skipped photo step commits a box without a photo
	assert.Nil(t, stagedPhotoRef(&flow.State{}))

	state := &flow.State{PhotoRef: "abc123.png"}
	ref := stagedPhotoRef(state)
	require.NotNil(t, ref)
	assert.Equal(t, "abc123.png", *ref)
}
