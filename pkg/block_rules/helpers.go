package block_rules

import (
	"github.com/jtomasevic/causalvoxel/pkg/causal_engine"
	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
)

// horizontalNeighbors is the four horizontal neighbour positions (±X, ±Z).
func horizontalNeighbors(pos voxel_world.BlockPos) [4]voxel_world.BlockPos {
	return [4]voxel_world.BlockPos{
		{X: pos.X + 1, Y: pos.Y, Z: pos.Z},
		{X: pos.X - 1, Y: pos.Y, Z: pos.Z},
		{X: pos.X, Y: pos.Y, Z: pos.Z + 1},
		{X: pos.X, Y: pos.Y, Z: pos.Z - 1},
	}
}

// notifyNeighbors builds notifies for all six cardinal neighbours.
func notifyNeighbors(pos voxel_world.BlockPos) []causal_engine.Event {
	neighbors := pos.Neighbors()
	out := make([]causal_engine.Event, 0, len(neighbors))
	for _, n := range neighbors {
		out = append(out, causal_engine.BlockNotify(n))
	}
	return out
}

// notifyHorizontal builds notifies for the four horizontal neighbours.
func notifyHorizontal(pos voxel_world.BlockPos) []causal_engine.Event {
	neighbors := horizontalNeighbors(pos)
	out := make([]causal_engine.Event, 0, len(neighbors))
	for _, n := range neighbors {
		out = append(out, causal_engine.BlockNotify(n))
	}
	return out
}
