package block_rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
)

func TestFluidKind_Level(t *testing.T) {
	level, ok := WaterKind.Level(Water)
	require.True(t, ok)
	require.Equal(t, 0, level)

	level, ok = WaterKind.Level(Water + 7)
	require.True(t, ok)
	require.Equal(t, 7, level)

	level, ok = WaterKind.Level(Water + 15)
	require.True(t, ok)
	require.Equal(t, 15, level)

	_, ok = WaterKind.Level(Water + 16)
	require.False(t, ok)
	_, ok = WaterKind.Level(Lava)
	require.False(t, ok)
	_, ok = WaterKind.Level(Air)
	require.False(t, ok)

	_, ok = LavaKind.Level(Lava + 3)
	require.True(t, ok)
	_, ok = LavaKind.Level(Water + 3)
	require.False(t, ok)
}

func TestFluidKind_BlockForLevel(t *testing.T) {
	require.Equal(t, Water, WaterKind.BlockForLevel(0))
	require.Equal(t, voxel_world.BlockID(33), WaterKind.BlockForLevel(1))
	require.Equal(t, voxel_world.BlockID(67), LavaKind.BlockForLevel(3))
}

func TestFluidKind_SpreadBounds(t *testing.T) {
	require.Equal(t, 7, WaterKind.MaxSpread)
	require.Equal(t, 3, LavaKind.MaxSpread)
}

func TestBlockPredicates(t *testing.T) {
	require.True(t, HasGravity(Sand))
	require.True(t, HasGravity(Gravel))
	require.False(t, HasGravity(Stone))
	require.False(t, HasGravity(Water))

	require.True(t, IsFluid(Water))
	require.True(t, IsFluid(Water+5))
	require.True(t, IsFluid(Lava+1))
	require.False(t, IsFluid(Air))
	require.False(t, IsFluid(Sand))

	require.True(t, IsReplaceable(Air))
	require.True(t, IsReplaceable(Water+2))
	require.False(t, IsReplaceable(Bedrock))
	require.True(t, IsSolid(Stone))
	require.False(t, IsSolid(Lava))
}
