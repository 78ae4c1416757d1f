package block_rules_test

import (
	"github.com/jtomasevic/causalvoxel/pkg/block_rules"
	"github.com/jtomasevic/causalvoxel/pkg/causal_engine"
	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
	"github.com/jtomasevic/causalvoxel/pkg/world_gen"
)

// flatWorld builds the standard test profile: bedrock y=0, stone y=1..3,
// dirt y=4.
func flatWorld(chunkRadius int32) *voxel_world.World {
	return world_gen.FlatWorld(chunkRadius)
}

// bedrockOnlyWorld builds one chunk with just a bedrock floor.
func bedrockOnlyWorld() *voxel_world.World {
	world := voxel_world.NewWorld()
	chunk := voxel_world.NewChunk()
	for x := uint8(0); x < voxel_world.SectionSize; x++ {
		for z := uint8(0); z < voxel_world.SectionSize; z++ {
			chunk.SetBlock(voxel_world.LocalBlockPos{X: x, Y: 0, Z: z}, block_rules.Bedrock)
		}
	}
	world.InsertChunk(voxel_world.NewChunkPos(0, 0), chunk)
	return world
}

// stoneFloorWorld builds one chunk with just a stone floor at y=0.
func stoneFloorWorld() *voxel_world.World {
	world := voxel_world.NewWorld()
	chunk := voxel_world.NewChunk()
	for x := uint8(0); x < voxel_world.SectionSize; x++ {
		for z := uint8(0); z < voxel_world.SectionSize; z++ {
			chunk.SetBlock(voxel_world.LocalBlockPos{X: x, Y: 0, Z: z}, block_rules.Stone)
		}
	}
	world.InsertChunk(voxel_world.NewChunkPos(0, 0), chunk)
	return world
}

// column reads the vertical run of blocks at (x, z) for y in [yMin, yMax].
func column(world *voxel_world.World, x, z, yMin, yMax int64) []voxel_world.BlockID {
	out := make([]voxel_world.BlockID, 0, yMax-yMin+1)
	for y := yMin; y <= yMax; y++ {
		out = append(out, world.GetBlock(voxel_world.NewBlockPos(x, y, z)))
	}
	return out
}

// runWithOrder drains the graph to quiescence, reordering every frontier
// through orderFn before executing it. Used to prove order invariance.
func runWithOrder(
	world *voxel_world.World,
	graph *causal_engine.CausalGraph,
	rules *causal_engine.RuleSet,
	orderFn func([]causal_engine.EventID) []causal_engine.EventID,
	maxSteps int,
) int {
	total := 0
	for step := 0; step < maxSteps; step++ {
		frontier := orderFn(graph.Frontier())
		if len(frontier) == 0 {
			break
		}
		for _, id := range frontier {
			event, ok := graph.Event(id)
			if !ok {
				continue
			}
			if event.Kind == causal_engine.KindBlockSet {
				world.SetBlock(event.Pos, event.New)
			}
			graph.MarkExecuted(id)
			total++

			for _, consequent := range rules.Evaluate(world, event) {
				graph.Insert(consequent, []causal_engine.EventID{id})
			}
		}
	}
	return total
}

func reversed(frontier []causal_engine.EventID) []causal_engine.EventID {
	out := make([]causal_engine.EventID, 0, len(frontier))
	for i := len(frontier) - 1; i >= 0; i-- {
		out = append(out, frontier[i])
	}
	return out
}

func interleaved(frontier []causal_engine.EventID) []causal_engine.EventID {
	out := make([]causal_engine.EventID, 0, len(frontier))
	for i, id := range frontier {
		if i%2 == 0 {
			out = append(out, id)
		}
	}
	for i, id := range frontier {
		if i%2 == 1 {
			out = append(out, id)
		}
	}
	return out
}

// breakBlock builds the graph a host uses when a block is removed: the
// replacement as root plus a notify child for each face neighbour.
func breakBlock(graph *causal_engine.CausalGraph, pos voxel_world.BlockPos, old, new voxel_world.BlockID) {
	root := graph.InsertRoot(causal_engine.BlockSet(pos, old, new))
	for _, neighbor := range pos.Neighbors() {
		graph.Insert(causal_engine.BlockNotify(neighbor), []causal_engine.EventID{root})
	}
}
