// Package event_bus distributes world-change batches from completed
// cascades to in-process subscribers (network sessions, persistence,
// dashboards).
package event_bus

import (
	"sync"

	"github.com/jtomasevic/causalvoxel/pkg/causal_engine"
	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
)

// DefaultCapacity is the per-subscriber channel depth. 256 batches in
// flight absorbs bursty activity without blocking publishers.
const DefaultCapacity = 256

// BlockChange is one applied block write.
type BlockChange struct {
	Pos   voxel_world.BlockPos
	Block voxel_world.BlockID
}

// WorldChangeBatch is every block change from a single cascade, tagged with
// where it originated (a player id, a simulation layer name, ...).
type WorldChangeBatch struct {
	Source  string
	Changes []BlockChange
}

// CollectBlockChanges extracts all executed BlockSet events from a causal
// graph, in insertion order, as (position, new block) pairs suitable for
// broadcasting.
func CollectBlockChanges(graph *causal_engine.CausalGraph) []BlockChange {
	var changes []BlockChange
	for _, id := range graph.AllIDs() {
		node, ok := graph.Get(id)
		if !ok || !node.Executed || node.Event.Kind != causal_engine.KindBlockSet {
			continue
		}
		changes = append(changes, BlockChange{Pos: node.Event.Pos, Block: node.Event.New})
	}
	return changes
}

// Bus fans WorldChangeBatch values out to any number of subscribers.
//
// Publish never blocks: a subscriber whose channel is full misses the batch
// (it is expected to resynchronise from the world, which is the persistent
// state).
type Bus struct {
	mu       sync.RWMutex
	capacity int
	nextID   int
	subs     map[int]chan WorldChangeBatch
}

func NewBus(capacity int) *Bus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bus{
		capacity: capacity,
		subs:     make(map[int]chan WorldChangeBatch),
	}
}

// Subscribe registers a new subscriber and returns its channel plus a
// cancel function. Cancelling closes the channel.
func (b *Bus) Subscribe() (<-chan WorldChangeBatch, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan WorldChangeBatch, b.capacity)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers batch to every subscriber that has room. Returns the
// number of subscribers that received it.
func (b *Bus) Publish(batch WorldChangeBatch) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for _, ch := range b.subs {
		select {
		case ch <- batch:
			delivered++
		default:
			// Lagging subscriber: drop rather than stall the cascade path.
		}
	}
	return delivered
}

func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
