package causal_engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
)

// EventID uniquely identifies a node in the causal graph. IDs are never
// reused, so a retired handle can never alias a later node.
type EventID = uuid.UUID

// EventKind discriminates the event variants.
type EventKind uint8

const (
	// KindBlockSet is an atomic replacement of the block at a position.
	KindBlockSet EventKind = iota
	// KindBlockNotify is a no-op write carrying only the signal
	// "re-evaluate rules at this position".
	KindBlockNotify
)

// Event is a single, atomic change to the world -- the fundamental unit of
// causality. Once inserted into a graph, an Event MUST NOT be modified.
type Event struct {
	Kind EventKind
	Pos  voxel_world.BlockPos
	// Old records the expected prior block at graph-construction time.
	// It is informational: the applier does not verify it. BlockSet only.
	Old voxel_world.BlockID
	// New is the block written when the event executes. BlockSet only.
	New voxel_world.BlockID
}

// BlockSet builds a block-replacement event.
func BlockSet(pos voxel_world.BlockPos, old, new voxel_world.BlockID) Event {
	return Event{Kind: KindBlockSet, Pos: pos, Old: old, New: new}
}

// BlockNotify builds a re-evaluation signal for pos.
func BlockNotify(pos voxel_world.BlockPos) Event {
	return Event{Kind: KindBlockNotify, Pos: pos}
}

// Chunk is the chunk this event primarily affects, used for parallel
// grouping.
func (e Event) Chunk() voxel_world.ChunkPos {
	return e.Pos.Chunk()
}

func (e Event) String() string {
	switch e.Kind {
	case KindBlockSet:
		return fmt.Sprintf("Set (%d,%d,%d) %d->%d", e.Pos.X, e.Pos.Y, e.Pos.Z, e.Old, e.New)
	default:
		return fmt.Sprintf("Notify (%d,%d,%d)", e.Pos.X, e.Pos.Y, e.Pos.Z)
	}
}
