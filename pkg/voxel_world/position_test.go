package voxel_world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockPos_Chunk(t *testing.T) {
	require.Equal(t, NewChunkPos(0, 0), NewBlockPos(0, 5, 0).Chunk())
	require.Equal(t, NewChunkPos(0, 0), NewBlockPos(15, 5, 15).Chunk())
	require.Equal(t, NewChunkPos(1, 2), NewBlockPos(16, 5, 40).Chunk())

	// Arithmetic shift: negative coordinates land in negative chunks.
	require.Equal(t, NewChunkPos(-1, -1), NewBlockPos(-1, 5, -16).Chunk())
	require.Equal(t, NewChunkPos(-2, -1), NewBlockPos(-17, 5, -3).Chunk())
}

func TestBlockPos_Local(t *testing.T) {
	local := NewBlockPos(18, 70, -3).Local()
	require.Equal(t, uint8(2), local.X)
	require.Equal(t, int64(70), local.Y)
	require.Equal(t, uint8(13), local.Z)
}

func TestLocalBlockPos_SectionDerivation(t *testing.T) {
	l := LocalBlockPos{X: 0, Y: 37, Z: 0}
	require.Equal(t, int32(2), l.SectionIndex())
	require.Equal(t, uint8(5), l.SectionLocalY())

	// Below zero: section index floors, local y stays in [0,16).
	l = LocalBlockPos{X: 0, Y: -1, Z: 0}
	require.Equal(t, int32(-1), l.SectionIndex())
	require.Equal(t, uint8(15), l.SectionLocalY())

	l = LocalBlockPos{X: 0, Y: -16, Z: 0}
	require.Equal(t, int32(-1), l.SectionIndex())
	require.Equal(t, uint8(0), l.SectionLocalY())
}

func TestChunkPos_BlockOrigin(t *testing.T) {
	origin := NewChunkPos(2, -1).BlockOrigin(7)
	require.Equal(t, NewBlockPos(32, 7, -16), origin)
	require.Equal(t, NewChunkPos(2, -1), origin.Chunk())
}

func TestBlockPos_Neighbors(t *testing.T) {
	pos := NewBlockPos(1, 2, 3)
	neighbors := pos.Neighbors()
	require.Len(t, neighbors, 6)
	for _, n := range neighbors {
		dist := abs(n.X-pos.X) + abs(n.Y-pos.Y) + abs(n.Z-pos.Z)
		require.Equal(t, int64(1), dist)
	}
	require.Equal(t, pos.Up(), NewBlockPos(1, 3, 3))
	require.Equal(t, pos.Down(), NewBlockPos(1, 1, 3))
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
