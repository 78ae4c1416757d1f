package main

import (
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/jtomasevic/causalvoxel/pkg/block_rules"
	"github.com/jtomasevic/causalvoxel/pkg/causal_engine"
	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
	"github.com/jtomasevic/causalvoxel/pkg/world_gen"
)

// bench drops a grid of sand columns across many chunks and compares
// sequential and parallel time to quiescence, then verifies the two final
// worlds block-by-block.
func newBenchCmd(verbose *bool) *cobra.Command {
	var (
		chunks       int
		sandPerChunk int
		dropHeight   int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the sequential vs parallel scheduler",
		RunE: func(_ *cobra.Command, _ []string) error {
			log := newLogger(*verbose)

			side := int32(math.Ceil(math.Sqrt(float64(chunks))))
			rules := block_rules.Standard()
			scheduler := causal_engine.NewScheduler()

			log.Info().
				Int("chunks", chunks).
				Int("sand_per_chunk", sandPerChunk).
				Int64("drop_height", dropHeight).
				Msg("benchmark setup")

			buildWorld := func() *voxel_world.World {
				world := voxel_world.NewWorld()
				for cx := int32(0); cx < side; cx++ {
					for cz := int32(0); cz < side; cz++ {
						pos := voxel_world.NewChunkPos(cx, cz)
						world.InsertChunk(pos, world_gen.Flat{}.Generate(pos))
					}
				}
				return world
			}

			worldSeq := buildWorld()
			graphSeq := buildBenchGraph(chunks, side, sandPerChunk, dropHeight)
			t0 := time.Now()
			nSeq := scheduler.RunUntilQuiet(worldSeq, graphSeq, rules, 10_000)
			dtSeq := time.Since(t0)
			log.Info().Int("events", nSeq).Dur("elapsed", dtSeq).Msg("sequential")

			worldPar := buildWorld()
			graphPar := buildBenchGraph(chunks, side, sandPerChunk, dropHeight)
			t0 = time.Now()
			nPar := scheduler.RunUntilQuietParallel(worldPar, graphPar, rules, 10_000)
			dtPar := time.Since(t0)
			log.Info().Int("events", nPar).Dur("elapsed", dtPar).Msg("parallel")

			log.Info().Float64("speedup", dtSeq.Seconds()/dtPar.Seconds()).Msg("result")

			mismatches := 0
			forEachBenchColumn(chunks, side, sandPerChunk, func(x, z int64) {
				for y := int64(0); y <= dropHeight; y++ {
					pos := voxel_world.NewBlockPos(x, y, z)
					if worldSeq.GetBlock(pos) != worldPar.GetBlock(pos) {
						mismatches++
					}
				}
			})
			if mismatches == 0 {
				log.Info().Msg("verification: worlds identical")
			} else {
				log.Error().Int("mismatches", mismatches).Msg("verification FAILED")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&chunks, "chunks", 256, "number of chunks")
	cmd.Flags().IntVar(&sandPerChunk, "sand-per-chunk", 16, "sand columns per chunk")
	cmd.Flags().Int64Var(&dropHeight, "drop-height", 10, "y to drop sand from")
	return cmd
}

func forEachBenchColumn(chunks int, side int32, sandPerChunk int, f func(x, z int64)) {
	gridSide := int64(math.Ceil(math.Sqrt(float64(sandPerChunk))))
	chunkIdx := 0
	for cx := int32(0); cx < side; cx++ {
		for cz := int32(0); cz < side; cz++ {
			if chunkIdx >= chunks {
				return
			}
			for sx := int64(0); sx < gridSide; sx++ {
				for sz := int64(0); sz < gridSide; sz++ {
					f(int64(cx)*16+sx*4+2, int64(cz)*16+sz*4+2)
				}
			}
			chunkIdx++
		}
	}
}

func buildBenchGraph(chunks int, side int32, sandPerChunk int, dropHeight int64) *causal_engine.CausalGraph {
	graph := causal_engine.NewCausalGraph()
	forEachBenchColumn(chunks, side, sandPerChunk, func(x, z int64) {
		graph.InsertRoot(causal_engine.BlockSet(
			voxel_world.NewBlockPos(x, dropHeight, z), block_rules.Air, block_rules.Sand))
	})
	return graph
}
