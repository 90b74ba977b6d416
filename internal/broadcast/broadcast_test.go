package broadcast

import (
	"testing"

	"skin-scout/internal/models"

	"github.com/stretchr/testify/require"
)

// Tests the park-and-drain cycle of PendingBuffer
func TestPendingBuffer(t *testing.T) {
	t.Parallel()

	buf := NewPendingBuffer()

	// Nothing parked yet.
	require.Nil(t, buf.TakePending())

	require.NoError(t, buf.Broadcast(models.BroadcastMessage{Action: "enableExtension"}))

	msg := buf.TakePending()
	require.NotNil(t, msg)
	require.Equal(t, "enableExtension", msg.Action)

	// Each message is observed at most once.
	require.Nil(t, buf.TakePending())
}

// A newer broadcast replaces an unclaimed older one.
func TestPendingBuffer_LatestWins(t *testing.T) {
	t.Parallel()

	buf := NewPendingBuffer()

	require.NoError(t, buf.Broadcast(models.BroadcastMessage{Action: "enableExtension"}))
	require.NoError(t, buf.Broadcast(models.BroadcastMessage{Action: "disableExtension"}))

	msg := buf.TakePending()
	require.NotNil(t, msg)
	require.Equal(t, "disableExtension", msg.Action)
	require.Nil(t, buf.TakePending())
}
