package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessRunsForMaxFrames(t *testing.T) {
	b := NewHeadlessBackend(3)
	require.NoError(t, b.Init(Config{}))

	frame := make([]byte, 160*144*4)

	for i := 0; i < 2; i++ {
		events, err := b.Update(frame)
		require.NoError(t, err)
		assert.Empty(t, events)
	}

	events, err := b.Update(frame)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Quit, "quit after the final frame")

	assert.NoError(t, b.Cleanup())
}
