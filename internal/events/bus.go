// Package events fans light-state snapshots out from the controller to
// streaming API clients.
package events

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lumastack/lightsd/internal/models"
)

const subBufferSize = 8

// Bus is a non-blocking publish-subscribe bus for state snapshots.
// Publishing never blocks the render path; a subscriber that falls
// behind loses snapshots instead of stalling light updates.
type Bus struct {
	mu   sync.Mutex
	subs map[string]chan models.State
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[string]chan models.State),
	}
}

// Subscribe registers a new subscriber and returns its ID together with
// the channel snapshots arrive on. Call Unsubscribe with the ID when done.
func (b *Bus) Subscribe() (string, <-chan models.State) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := uuid.NewString()
	ch := make(chan models.State, subBufferSize)
	b.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
// Unknown IDs are ignored.
func (b *Bus) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish delivers a snapshot to every subscriber whose buffer has room.
func (b *Bus) Publish(state models.State) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- state:
		default:
			// Slow subscriber, drop the snapshot.
		}
	}
}

// SubscriberCount reports how many subscribers are registered.
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
