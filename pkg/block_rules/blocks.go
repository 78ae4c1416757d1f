// Package block_rules assigns game meaning to the engine's opaque block ids
// and implements the standard local rules: gravity and the two fluids.
//
// The engine stores BlockID values without interpreting them (beyond Air).
// Everything here -- which blocks fall, which flow, how far -- is injected
// into the scheduler as rules.
package block_rules

import "github.com/jtomasevic/causalvoxel/pkg/voxel_world"

// Named constants for the block types we support so far. The ids are
// arbitrary within this module; mapping to any protocol's state ids is a
// collaborator concern and happens elsewhere.
const (
	Air     = voxel_world.Air
	Stone   = voxel_world.BlockID(1)
	Dirt    = voxel_world.BlockID(2)
	Grass   = voxel_world.BlockID(3)
	Sand    = voxel_world.BlockID(4)
	Bedrock = voxel_world.BlockID(6)
	Log     = voxel_world.BlockID(7)
	Leaves  = voxel_world.BlockID(8)
	Gravel  = voxel_world.BlockID(9)

	// Water occupies 32..47: the source at 32, flowing levels 1..15 after it.
	Water = voxel_world.BlockID(32)
	// Lava occupies 64..79, same layout.
	Lava = voxel_world.BlockID(64)
)

// fluidLevels is the number of ids a fluid kind occupies: the source
// (level 0) plus 15 flowing levels.
const fluidLevels = 16

// FluidKind describes one spreading fluid: its source block id (level 0),
// the 15 sequential flowing ids after it, and how far it spreads.
type FluidKind struct {
	Name   string
	Source voxel_world.BlockID
	// MaxSpread is the highest level horizontal spread may produce. Level
	// doubles as Manhattan distance to the nearest source.
	MaxSpread int
}

// WaterKind spreads up to 7 blocks from a source.
var WaterKind = FluidKind{Name: "water", Source: Water, MaxSpread: 7}

// LavaKind is slower-moving in spirit: it stops 3 blocks out.
var LavaKind = FluidKind{Name: "lava", Source: Lava, MaxSpread: 3}

// Level returns the fluid level of id within this kind (0 = source,
// 1..15 = flowing), or false if id is not this fluid.
func (k FluidKind) Level(id voxel_world.BlockID) (int, bool) {
	if id < k.Source || id >= k.Source+fluidLevels {
		return 0, false
	}
	return int(id - k.Source), true
}

// BlockForLevel returns the block id for the given level of this fluid.
func (k FluidKind) BlockForLevel(level int) voxel_world.BlockID {
	return k.Source + voxel_world.BlockID(level)
}

// HasGravity reports whether the block falls (like sand or gravel).
func HasGravity(id voxel_world.BlockID) bool {
	return id == Sand || id == Gravel
}

// IsFluid reports whether id is any level of any fluid kind.
func IsFluid(id voxel_world.BlockID) bool {
	if _, ok := WaterKind.Level(id); ok {
		return true
	}
	_, ok := LavaKind.Level(id)
	return ok
}

// IsReplaceable reports whether another block may displace this one: air
// and fluids yield, everything else is solid.
func IsReplaceable(id voxel_world.BlockID) bool {
	return id == Air || IsFluid(id)
}

// IsSolid is the complement of IsReplaceable.
func IsSolid(id voxel_world.BlockID) bool {
	return !IsReplaceable(id)
}
