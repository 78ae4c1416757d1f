package block_rules

import (
	"github.com/jtomasevic/causalvoxel/pkg/causal_engine"
	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
)

// FluidFlow builds the flow rule for one fluid kind.
//
// On a BlockSet the rule handles placement and removal:
//   - if the set removed this fluid (old is a level, new is not), all six
//     face neighbours are notified so the drainage cascade can start;
//   - if the cell now holds this fluid and the cell below is air, the fluid
//     falls: a single level-1 placement below, no horizontal spread in the
//     same event;
//   - otherwise, while the level is below the kind's maximum spread, each
//     air cell among the four horizontal neighbours receives the fluid one
//     level higher.
//
// On a BlockNotify the rule handles drainage: a flowing cell (level >= 1)
// with no support -- no same-kind fluid directly above and no horizontal
// same-kind neighbour at a strictly lower level -- is replaced by air, and
// the four horizontal neighbours are notified. Sources never drain.
//
// Because spread assigns level = distance to the nearest source, the fluid
// network is a support relation: removing a source propagates a wavefront
// of drain-notifies outward in O(network size) events.
func FluidFlow(kind FluidKind) causal_engine.Rule {
	return func(world causal_engine.WorldReader, event causal_engine.Event) []causal_engine.Event {
		switch event.Kind {
		case causal_engine.KindBlockSet:
			return fluidPlace(kind, world, event)
		case causal_engine.KindBlockNotify:
			return fluidDrain(kind, world, event.Pos)
		}
		return nil
	}
}

func fluidPlace(kind FluidKind, world causal_engine.WorldReader, event causal_engine.Event) []causal_engine.Event {
	var out []causal_engine.Event

	_, wasFluid := kind.Level(event.Old)
	if _, isFluid := kind.Level(event.New); wasFluid && !isFluid {
		out = append(out, notifyNeighbors(event.Pos)...)
	}

	level, ok := kind.Level(world.GetBlock(event.Pos))
	if !ok {
		return out
	}

	// Fall first: never spread sideways while there is air underneath.
	below := event.Pos.Down()
	if world.GetBlock(below) == voxel_world.Air {
		return append(out, causal_engine.BlockSet(below, voxel_world.Air, kind.BlockForLevel(1)))
	}

	if level < kind.MaxSpread {
		for _, neighbor := range horizontalNeighbors(event.Pos) {
			if world.GetBlock(neighbor) == voxel_world.Air {
				out = append(out, causal_engine.BlockSet(neighbor, voxel_world.Air, kind.BlockForLevel(level+1)))
			}
		}
	}
	return out
}

func fluidDrain(kind FluidKind, world causal_engine.WorldReader, pos voxel_world.BlockPos) []causal_engine.Event {
	current := world.GetBlock(pos)
	level, ok := kind.Level(current)
	if !ok || level == 0 {
		return nil
	}
	if hasSupport(kind, world, pos, level) {
		return nil
	}

	out := []causal_engine.Event{causal_engine.BlockSet(pos, current, voxel_world.Air)}
	return append(out, notifyHorizontal(pos)...)
}

// hasSupport reports whether a flowing cell is still connected toward a
// source: same-kind fluid directly above, or a horizontal same-kind
// neighbour strictly closer to a source (lower level).
func hasSupport(kind FluidKind, world causal_engine.WorldReader, pos voxel_world.BlockPos, level int) bool {
	if _, ok := kind.Level(world.GetBlock(pos.Up())); ok {
		return true
	}
	for _, neighbor := range horizontalNeighbors(pos) {
		if neighborLevel, ok := kind.Level(world.GetBlock(neighbor)); ok && neighborLevel < level {
			return true
		}
	}
	return false
}
