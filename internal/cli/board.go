package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/dealboard/internal/ports/primary"
	"github.com/example/dealboard/internal/wire"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	var pipelineID string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the pipeline board",
		Long:  "Render the pipeline board: one column per stage with deals and per-stage statistics, plus pipeline totals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := wire.BoardService().GetBoard(context.Background(), pipelineID)
			if err != nil {
				return err
			}

			color.NoColor = !wire.Config().Color

			bold := color.New(color.Bold)
			bold.Printf("%s", board.Pipeline.Name)
			fmt.Printf("  (%s)\n\n", board.Pipeline.ID)

			for _, column := range board.Columns {
				printColumn(column)
			}
			if board.Unassigned != nil {
				printColumn(*board.Unassigned)
			}

			stats := board.Stats
			bold.Println("Totals")
			fmt.Printf("  Deals: %d   Value: %.2f   Won: %d   Lost: %d\n",
				stats.TotalDeals, stats.TotalValue, stats.WonDeals, stats.LostDeals)
			fmt.Printf("  Avg deal size: %.2f   Win rate: %.1f%%   Forecast: %.2f\n",
				stats.AverageDealSize, stats.WinRate, stats.ForecastValue)

			return nil
		},
	}

	cmd.Flags().StringVarP(&pipelineID, "pipeline", "P", "", "Pipeline ID (defaults to the default pipeline)")
	return cmd
}

func printColumn(column primary.BoardColumn) {
	header := color.New(color.Bold)
	if c, ok := stageColors[column.Stage.ID]; ok {
		header = header.Add(c)
	}

	header.Printf("%s", column.Stage.Name)
	fmt.Printf("  [%d deals, %.2f total, %.0f%% avg probability]\n",
		column.Stats.Count, column.Stats.TotalValue, column.Stats.AverageProbability)

	if len(column.Deals) == 0 {
		fmt.Println("  (empty)")
	}
	for _, deal := range column.Deals {
		marker := " "
		switch deal.Status {
		case "won":
			marker = color.GreenString("✓")
		case "lost":
			marker = color.RedString("✗")
		case "on-hold":
			marker = color.YellowString("⏸")
		}
		fmt.Printf("  %s %-30s %10.2f %s\n", marker, truncate(deal.Title, 30), deal.Value, deal.Currency)
	}
	fmt.Println()
}

// stageColors maps the template stages to terminal colors approximating
// their board hues.
var stageColors = map[string]color.Attribute{
	"lead":        color.FgWhite,
	"qualified":   color.FgBlue,
	"proposal":    color.FgYellow,
	"negotiation": color.FgMagenta,
	"closed-won":  color.FgGreen,
	"closed-lost": color.FgRed,
}
