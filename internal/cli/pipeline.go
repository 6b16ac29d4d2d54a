package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/dealboard/internal/ports/primary"
	"github.com/example/dealboard/internal/wire"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Manage pipelines",
	Long:  "Inspect the pipelines deals move through",
}

var pipelineShowCmd = &cobra.Command{
	Use:   "show [pipeline-id]",
	Short: "Show a pipeline and its stages",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var pipeline *primary.Pipeline
		var err error
		if len(args) > 0 {
			pipeline, err = wire.PipelineService().GetPipeline(ctx, args[0])
		} else {
			pipeline, err = wire.PipelineService().GetDefaultPipeline(ctx)
		}
		if err != nil {
			return err
		}
		if pipeline == nil {
			fmt.Println("No default pipeline exists yet. Run 'dealboard init'.")
			return nil
		}

		fmt.Printf("Pipeline %s: %s", pipeline.ID, pipeline.Name)
		if pipeline.IsDefault {
			fmt.Print("  (default)")
		}
		fmt.Println()
		if pipeline.Description != "" {
			fmt.Printf("  %s\n", pipeline.Description)
		}
		fmt.Println()
		for i, stage := range pipeline.Stages {
			fmt.Printf("  %d. %-14s %3d%%  %s\n", i+1, stage.Name, stage.Probability, stage.ID)
		}
		return nil
	},
}

func init() {
	pipelineCmd.AddCommand(pipelineShowCmd)
}

// PipelineCmd returns the pipeline command
func PipelineCmd() *cobra.Command {
	return pipelineCmd
}
