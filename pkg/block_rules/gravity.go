package block_rules

import (
	"github.com/jtomasevic/causalvoxel/pkg/causal_engine"
)

// Gravity makes gravity-affected blocks fall one cell when the cell below
// is replaceable (air or fluid), by swapping the two cells.
//
// Two notifies accompany the swap: one above the vacated cell so a pillar
// cascades, one below the landing cell so continued falling triggers.
func Gravity(world causal_engine.WorldReader, event causal_engine.Event) []causal_engine.Event {
	pos := event.Pos

	block := world.GetBlock(pos)
	if !HasGravity(block) {
		return nil
	}

	below := pos.Down()
	belowBlock := world.GetBlock(below)
	if !IsReplaceable(belowBlock) {
		return nil
	}

	return []causal_engine.Event{
		causal_engine.BlockSet(pos, block, belowBlock),
		causal_engine.BlockSet(below, belowBlock, block),
		causal_engine.BlockNotify(pos.Up()),
		causal_engine.BlockNotify(below.Down()),
	}
}
