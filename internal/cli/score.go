package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/dealboard/internal/core/scoring"
	"github.com/example/dealboard/internal/wire"
)

// ScoreCmd returns the score command
func ScoreCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score contacts as leads",
		Long:  "Score every contact on demographic, behavioral, engagement, and company factors, highest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := wire.ScoringService().ScoreContacts(context.Background())
			if err != nil {
				return fmt.Errorf("failed to score contacts: %w", err)
			}

			if len(scores) == 0 {
				fmt.Println("No contacts to score.")
				return nil
			}

			color.NoColor = !wire.Config().Color

			for _, s := range scores {
				name := s.Contact.FirstName
				if s.Contact.LastName != "" {
					name += " " + s.Contact.LastName
				}
				fmt.Printf("%3d  %s  %-25s  (confidence %.0f%%)\n",
					s.Result.Score, labelString(s.Label), truncate(name, 25), s.Result.Confidence*100)

				if verbose {
					f := s.Result.Factors
					fmt.Printf("       factors: demographic %d, behavioral %d, engagement %d, company %d\n",
						f.Demographic, f.Behavioral, f.Engagement, f.Company)
					for _, rec := range s.Result.Recommendations {
						fmt.Printf("       → %s\n", rec)
					}
					for _, risk := range s.Result.RiskFactors {
						fmt.Printf("       ! %s\n", color.RedString(risk))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show factors, recommendations, and risks")
	return cmd
}

func labelString(label string) string {
	switch label {
	case scoring.LabelHot:
		return color.RedString("%-4s", label)
	case scoring.LabelWarm:
		return color.YellowString("%-4s", label)
	default:
		return color.CyanString("%-4s", label)
	}
}
