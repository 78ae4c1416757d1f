package voxel_world

import "sync"

// Chunk is a 16x16 column of blocks, sparse in the vertical axis: sections
// are keyed by section index (y >> 4) and a section that is entirely Air is
// never present in the map.
//
// A Chunk guards its sections with its own lock, so a shared *Chunk handle
// supports concurrent readers and serialised writers. Writes to different
// chunks never contend.
type Chunk struct {
	mu       sync.RWMutex
	sections map[int32]*Section
}

func NewChunk() *Chunk {
	return &Chunk{sections: make(map[int32]*Section)}
}

// GetBlock reads a block at a chunk-local position. Absent sections read
// as Air.
func (c *Chunk) GetBlock(pos LocalBlockPos) BlockID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	section, ok := c.sections[pos.SectionIndex()]
	if !ok {
		return Air
	}
	return section.At(pos.X, pos.SectionLocalY(), pos.Z)
}

// SetBlock writes a block at a chunk-local position. Writing Air into a
// section that becomes fully empty removes the section; writing Air where
// no section exists is a no-op.
func (c *Chunk) SetBlock(pos LocalBlockPos, block BlockID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := pos.SectionIndex()
	if block == Air {
		section, ok := c.sections[idx]
		if !ok {
			return
		}
		section.Set(pos.X, pos.SectionLocalY(), pos.Z, block)
		if section.Empty() {
			delete(c.sections, idx)
		}
		return
	}

	section, ok := c.sections[idx]
	if !ok {
		section = NewSection()
		c.sections[idx] = section
	}
	section.Set(pos.X, pos.SectionLocalY(), pos.Z, block)
}

// SectionCount is the number of materialised (non-empty) sections.
func (c *Chunk) SectionCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sections)
}

// SectionIndices returns the indices of materialised sections, in no
// particular order.
func (c *Chunk) SectionIndices() []int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]int32, 0, len(c.sections))
	for idx := range c.sections {
		out = append(out, idx)
	}
	return out
}
