// Package broadcast delivers state-change notifications to frontends.
// Delivery is opaque to the core: the default implementation parks the
// latest message in a buffer that frontends drain with a poll request.
package broadcast

import (
	"sync"

	"skin-scout/internal/models"
	"skin-scout/utils"
)

// Broadcaster pushes a message toward all interested frontends.
type Broadcaster interface {
	Broadcast(msg models.BroadcastMessage) error
	TakePending() *models.BroadcastMessage
}

// PendingBuffer keeps the most recent broadcast until a frontend polls
// for it. A newer broadcast replaces an unclaimed older one; frontends
// that missed it resync on their next poll anyway.
type PendingBuffer struct {
	mu      sync.Mutex
	pending *models.BroadcastMessage
}

func NewPendingBuffer() *PendingBuffer {
	return &PendingBuffer{}
}

func (b *PendingBuffer) Broadcast(msg models.BroadcastMessage) error {
	b.mu.Lock()
	b.pending = &msg
	b.mu.Unlock()

	utils.Info("broadcast queued", map[string]any{"action": msg.Action})
	return nil
}

// TakePending returns the parked message and clears it, so each
// broadcast is observed at most once.
func (b *PendingBuffer) TakePending() *models.BroadcastMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	msg := b.pending
	b.pending = nil
	return msg
}
