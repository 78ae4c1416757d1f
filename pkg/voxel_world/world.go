package voxel_world

import "github.com/puzpuzpuz/xsync/v3"

// World is the entire block world: a concurrent map from chunk position to
// chunk. Thread safety is sharded at chunk granularity -- the chunk map is
// lock-free to read, and each chunk serialises its own writers -- so writes
// to disjoint chunks proceed in parallel.
//
// This is the spatial substrate, the fixed 3D lattice. Time and causality
// live in the causal graph, not here.
type World struct {
	chunks *xsync.MapOf[ChunkPos, *Chunk]
	// Chunks modified through SetBlock since the last TakeDirtyChunks,
	// consumed by persistence collaborators.
	dirty *xsync.MapOf[ChunkPos, struct{}]
}

func NewWorld() *World {
	return &World{
		chunks: xsync.NewMapOf[ChunkPos, *Chunk](),
		dirty:  xsync.NewMapOf[ChunkPos, struct{}](),
	}
}

// GetBlock reads a block at an absolute position. Returns Air for unloaded
// chunks.
func (w *World) GetBlock(pos BlockPos) BlockID {
	chunk, ok := w.chunks.Load(pos.Chunk())
	if !ok {
		return Air
	}
	return chunk.GetBlock(pos.Local())
}

// SetBlock writes a block at an absolute position, creating the chunk if
// needed, and marks the containing chunk dirty.
func (w *World) SetBlock(pos BlockPos, block BlockID) {
	chunkPos := pos.Chunk()
	chunk, _ := w.chunks.LoadOrCompute(chunkPos, NewChunk)
	chunk.SetBlock(pos.Local(), block)
	w.dirty.Store(chunkPos, struct{}{})
}

// InsertChunk inserts a whole chunk without marking it dirty. Used by world
// generation and loading.
func (w *World) InsertChunk(pos ChunkPos, chunk *Chunk) {
	w.chunks.Store(pos, chunk)
}

func (w *World) HasChunk(pos ChunkPos) bool {
	_, ok := w.chunks.Load(pos)
	return ok
}

// GetChunk returns the chunk at pos, if present.
func (w *World) GetChunk(pos ChunkPos) (*Chunk, bool) {
	return w.chunks.Load(pos)
}

func (w *World) ChunkCount() int {
	return w.chunks.Size()
}

// RangeChunks iterates over all (position, chunk) pairs until f returns
// false.
func (w *World) RangeChunks(f func(pos ChunkPos, chunk *Chunk) bool) {
	w.chunks.Range(f)
}

// TakeDirtyChunks drains and returns the positions of all chunks modified
// since the last call.
//
// Collect then remove: a chunk dirtied between the two phases may be
// re-reported next call, which costs a redundant save and never loses data.
func (w *World) TakeDirtyChunks() []ChunkPos {
	var dirty []ChunkPos
	w.dirty.Range(func(pos ChunkPos, _ struct{}) bool {
		dirty = append(dirty, pos)
		return true
	})
	for _, pos := range dirty {
		w.dirty.Delete(pos)
	}
	return dirty
}

// DirtyCount is the number of chunks currently marked dirty.
func (w *World) DirtyCount() int {
	return w.dirty.Size()
}
