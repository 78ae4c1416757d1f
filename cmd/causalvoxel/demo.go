package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jtomasevic/causalvoxel/pkg/block_rules"
	"github.com/jtomasevic/causalvoxel/pkg/causal_engine"
	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
	"github.com/jtomasevic/causalvoxel/pkg/world_gen"
)

func newDemoCmd(verbose *bool) *cobra.Command {
	var (
		parallel bool
		dumpDot  bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Drop a sand block into a flat world and run the cascade",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(*verbose)

			world := world_gen.FlatWorld(4)
			log.Info().Int("chunks", world.ChunkCount()).Msg("flat world generated")

			graph := causal_engine.NewCausalGraph()
			graph.InsertRoot(causal_engine.BlockSet(
				voxel_world.NewBlockPos(8, 10, 8), block_rules.Air, block_rules.Sand))

			rules := block_rules.Standard()
			scheduler := causal_engine.NewScheduler()

			var executed int
			if parallel {
				executed = scheduler.RunUntilQuietParallel(world, graph, rules, 100)
			} else {
				executed = scheduler.RunUntilQuiet(world, graph, rules, 100)
			}
			log.Info().
				Int("executed", executed).
				Int("graph", graph.Len()).
				Bool("parallel", parallel).
				Msg("cascade quiescent")

			for y := int64(0); y <= 10; y++ {
				pos := voxel_world.NewBlockPos(8, y, 8)
				log.Info().Int64("y", y).Uint16("block", uint16(world.GetBlock(pos))).Msg("column")
			}

			if dumpDot {
				fmt.Fprint(cmd.OutOrStdout(), graph.ToDOT())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&parallel, "parallel", false, "use the parallel scheduler")
	cmd.Flags().BoolVar(&dumpDot, "dot", false, "print the causal graph in DOT format")
	return cmd
}
