package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dealboard/internal/config"
	"github.com/example/dealboard/internal/version"
	"github.com/example/dealboard/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the dealboard environment",
		Long: `Environment health check for dealboard.

Validates:
- Config directory and config.yaml
- Database file and schema
- Default pipeline presence

Examples:
  dealboard doctor          # Run full health check
  dealboard doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkConfigDir(),
				checkDatabase(),
				checkDefaultPipeline(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Printf("dealboard doctor (%s)\n\n", version.String())
				for _, r := range results {
					fmt.Printf("  %s %s\n", r.Status, r.Name)
					if r.Status != "✓" && r.Details != "" {
						fmt.Printf("      %s\n", r.Details)
					}
				}
				fmt.Println()
				if hasErrors {
					fmt.Println("Issues found. Run 'dealboard init' to set up.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Exit code only, no output")
	return cmd
}

func checkConfigDir() CheckResult {
	dir, err := config.Dir()
	if err != nil {
		return CheckResult{Name: "Config directory", Status: "✗", Details: err.Error()}
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return CheckResult{Name: "Config directory", Status: "⚠", Details: dir + " does not exist yet"}
	}
	return CheckResult{Name: "Config directory", Status: "✓"}
}

func checkDatabase() CheckResult {
	cfg := wire.Config()
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		return CheckResult{Name: "Database", Status: "⚠", Details: cfg.DBPath + " does not exist yet"}
	}
	return CheckResult{Name: "Database", Status: "✓"}
}

func checkDefaultPipeline() CheckResult {
	pipeline, err := wire.PipelineService().GetDefaultPipeline(context.Background())
	if err != nil {
		return CheckResult{Name: "Default pipeline", Status: "✗", Details: err.Error()}
	}
	if pipeline == nil {
		return CheckResult{Name: "Default pipeline", Status: "⚠", Details: "no default pipeline, run 'dealboard init'"}
	}
	return CheckResult{Name: "Default pipeline", Status: "✓"}
}
