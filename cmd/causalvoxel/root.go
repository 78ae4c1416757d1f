package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "causalvoxel",
		Short:         "Causal voxel engine: a block world driven by an event DAG",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newDemoCmd(&verbose),
		newBenchCmd(&verbose),
		newServeCmd(&verbose),
	)
	return cmd
}
