package world_gen

import (
	"github.com/jtomasevic/causalvoxel/pkg/block_rules"
	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
)

// Flat generates the classic test profile: bedrock at y=0, stone y=1..3,
// dirt at y=4, air above.
type Flat struct{}

func (Flat) Generate(_ voxel_world.ChunkPos) *voxel_world.Chunk {
	chunk := voxel_world.NewChunk()
	for x := uint8(0); x < voxel_world.SectionSize; x++ {
		for z := uint8(0); z < voxel_world.SectionSize; z++ {
			chunk.SetBlock(voxel_world.LocalBlockPos{X: x, Y: 0, Z: z}, block_rules.Bedrock)
			for y := int64(1); y <= 3; y++ {
				chunk.SetBlock(voxel_world.LocalBlockPos{X: x, Y: y, Z: z}, block_rules.Stone)
			}
			chunk.SetBlock(voxel_world.LocalBlockPos{X: x, Y: 4, Z: z}, block_rules.Dirt)
		}
	}
	return chunk
}

// FlatWorld builds a flat world of 2*radius x 2*radius chunks around the
// origin. Shared by tests, the demo and the benchmark.
func FlatWorld(radius int32) *voxel_world.World {
	world := voxel_world.NewWorld()
	Populate(world, Flat{}, radius)
	return world
}
