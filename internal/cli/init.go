package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/dealboard/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the dealboard database and default pipeline",
		Long:  `Initialize the dealboard database at the configured path and bootstrap the default sales pipeline with its six stages.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			fmt.Printf("Initializing dealboard database at %s\n", cfg.DBPath)

			pipeline, err := wire.PipelineService().EnsureDefaultPipeline(context.Background())
			if err != nil {
				return fmt.Errorf("failed to initialize pipeline: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")
			fmt.Printf("✓ Default pipeline %s ready with %d stages\n", pipeline.ID, len(pipeline.Stages))
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  dealboard deal add \"My first deal\" --value 5000")
			fmt.Println("  dealboard board")

			return nil
		},
	}
}
