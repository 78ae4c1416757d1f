package world_gen

import (
	"github.com/aquilax/go-perlin"

	"github.com/jtomasevic/causalvoxel/pkg/block_rules"
	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
)

// Perlin terrain parameters. Heights stay well inside a handful of
// sections so cascades triggered near the surface remain cheap.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinDepth = 3
	noiseScale  = 0.02
	baseHeight  = 12
	heightSwing = 8
	seaLevel    = 10
	dirtDepth   = 3
)

// PerlinTerrain generates rolling terrain from 2D Perlin noise: bedrock
// floor, stone body, a dirt cap under grass, and water sources filling
// basins up to sea level.
type PerlinTerrain struct {
	noise *perlin.Perlin
}

func NewPerlinTerrain(seed int64) *PerlinTerrain {
	return &PerlinTerrain{
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinDepth, seed),
	}
}

func (g *PerlinTerrain) heightAt(x, z int64) int64 {
	n := g.noise.Noise2D(float64(x)*noiseScale, float64(z)*noiseScale)
	return baseHeight + int64(n*heightSwing)
}

func (g *PerlinTerrain) Generate(pos voxel_world.ChunkPos) *voxel_world.Chunk {
	chunk := voxel_world.NewChunk()
	origin := pos.BlockOrigin(0)

	for x := uint8(0); x < voxel_world.SectionSize; x++ {
		for z := uint8(0); z < voxel_world.SectionSize; z++ {
			height := g.heightAt(origin.X+int64(x), origin.Z+int64(z))

			chunk.SetBlock(voxel_world.LocalBlockPos{X: x, Y: 0, Z: z}, block_rules.Bedrock)
			for y := int64(1); y <= height; y++ {
				var block voxel_world.BlockID
				switch {
				case y == height:
					block = block_rules.Grass
				case y >= height-dirtDepth:
					block = block_rules.Dirt
				default:
					block = block_rules.Stone
				}
				chunk.SetBlock(voxel_world.LocalBlockPos{X: x, Y: y, Z: z}, block)
			}

			// Basins below sea level fill with water sources.
			for y := height + 1; y <= seaLevel; y++ {
				chunk.SetBlock(voxel_world.LocalBlockPos{X: x, Y: y, Z: z}, block_rules.Water)
			}
		}
	}
	return chunk
}
