// Package world_gen pre-populates worlds through InsertChunk; generated
// chunks are not marked dirty, so generation never queues save work.
package world_gen

import "github.com/jtomasevic/causalvoxel/pkg/voxel_world"

// Generator produces the chunk for a position. Implementations must be
// deterministic per position so regeneration is reproducible.
type Generator interface {
	Generate(pos voxel_world.ChunkPos) *voxel_world.Chunk
}

// Populate generates and inserts every chunk in the square
// [-radius, radius) on both axes.
func Populate(world *voxel_world.World, gen Generator, radius int32) {
	for cx := -radius; cx < radius; cx++ {
		for cz := -radius; cz < radius; cz++ {
			pos := voxel_world.NewChunkPos(cx, cz)
			world.InsertChunk(pos, gen.Generate(pos))
		}
	}
}
