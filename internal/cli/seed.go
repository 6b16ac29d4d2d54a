package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/dealboard/internal/db"
	"github.com/example/dealboard/internal/wire"
)

// SeedCmd returns the seed command for development fixtures
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load development fixtures",
		Long:  "Populate the database with sample companies, contacts, and deals. Requires an initialized default pipeline.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := wire.PipelineService().EnsureDefaultPipeline(context.Background()); err != nil {
				return fmt.Errorf("failed to ensure default pipeline: %w", err)
			}

			database, err := db.GetDB(wire.Config().DBPath)
			if err != nil {
				return err
			}

			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}

			fmt.Println("✓ Fixtures loaded")
			fmt.Println()
			fmt.Println("Try:")
			fmt.Println("  dealboard board")
			fmt.Println("  dealboard score --verbose")
			return nil
		},
	}
}
