package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/dealboard/internal/ports/primary"
	"github.com/example/dealboard/internal/wire"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Manage deals",
	Long:  "Create, list, move, update, and delete deals on the pipeline board",
}

var dealAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create a new deal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		title := strings.Join(args, " ")
		pipelineID, _ := cmd.Flags().GetString("pipeline")
		stage, _ := cmd.Flags().GetString("stage")
		description, _ := cmd.Flags().GetString("description")
		currency, _ := cmd.Flags().GetString("currency")
		contactID, _ := cmd.Flags().GetString("contact")
		companyID, _ := cmd.Flags().GetString("company")
		closeDate, _ := cmd.Flags().GetString("close-date")
		tags, _ := cmd.Flags().GetStringSlice("tag")
		value, _ := cmd.Flags().GetFloat64("value")

		deal, err := wire.DealService().CreateDeal(ctx, primary.CreateDealRequest{
			PipelineID:  pipelineID,
			Title:       title,
			Description: description,
			Value:       value,
			HasValue:    cmd.Flags().Changed("value"),
			Currency:    currency,
			Stage:       stage,
			CloseDate:   closeDate,
			ContactID:   contactID,
			CompanyID:   companyID,
			Tags:        tags,
		})
		if err != nil {
			return fmt.Errorf("failed to create deal: %w", err)
		}

		fmt.Printf("✓ Created deal %s: %s\n", deal.ID, deal.Title)
		fmt.Printf("  Stage: %s\n", deal.Stage)
		if deal.Value > 0 {
			fmt.Printf("  Value: %.2f %s\n", deal.Value, deal.Currency)
		}
		return nil
	},
}

var dealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deals",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		pipelineID, _ := cmd.Flags().GetString("pipeline")

		deals, err := wire.DealService().FetchDeals(ctx, pipelineID)
		if err != nil {
			return fmt.Errorf("failed to list deals: %w", err)
		}

		if len(deals) == 0 {
			fmt.Println("No deals found.")
			return nil
		}

		fmt.Printf("Found %d deal(s):\n\n", len(deals))
		for _, deal := range deals {
			fmt.Printf("%s  %-30s  %-12s  %-8s  %10.2f %s\n",
				deal.ID, truncate(deal.Title, 30), deal.Stage, deal.Status, deal.Value, deal.Currency)
		}
		return nil
	},
}

var dealShowCmd = &cobra.Command{
	Use:   "show [deal-id]",
	Short: "Show deal details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deal, err := wire.DealService().GetDeal(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Deal %s\n", deal.ID)
		fmt.Printf("  Title:       %s\n", deal.Title)
		if deal.Description != "" {
			fmt.Printf("  Description: %s\n", deal.Description)
		}
		fmt.Printf("  Pipeline:    %s\n", deal.PipelineID)
		fmt.Printf("  Stage:       %s\n", deal.Stage)
		fmt.Printf("  Status:      %s\n", deal.Status)
		fmt.Printf("  Value:       %.2f %s\n", deal.Value, deal.Currency)
		fmt.Printf("  Probability: %d%%\n", deal.Probability)
		if deal.CloseDate != "" {
			fmt.Printf("  Close date:  %s\n", deal.CloseDate)
		}
		if deal.Contact != nil {
			fmt.Printf("  Contact:     %s %s\n", deal.Contact.FirstName, deal.Contact.LastName)
		}
		if deal.Company != nil {
			fmt.Printf("  Company:     %s\n", deal.Company.Name)
		}
		if len(deal.Tags) > 0 {
			fmt.Printf("  Tags:        %s\n", strings.Join(deal.Tags, ", "))
		}
		return nil
	},
}

var dealMoveCmd = &cobra.Command{
	Use:   "move [deal-id] [stage-id]",
	Short: "Move a deal to another stage",
	Long:  "Move a deal to the target stage. Moving a deal onto its current stage is a no-op.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deal, err := wire.DealService().MoveDeal(context.Background(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to move deal: %w", err)
		}

		fmt.Printf("✓ Deal %s is now in stage %s (probability %d%%)\n", deal.ID, deal.Stage, deal.Probability)
		return nil
	},
}

var dealUpdateCmd = &cobra.Command{
	Use:   "update [deal-id]",
	Short: "Update deal fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		status, _ := cmd.Flags().GetString("status")
		closeDate, _ := cmd.Flags().GetString("close-date")
		value, _ := cmd.Flags().GetFloat64("value")
		probability, _ := cmd.Flags().GetInt("probability")
		tags, _ := cmd.Flags().GetStringSlice("tag")

		deal, err := wire.DealService().UpdateDeal(context.Background(), primary.UpdateDealRequest{
			DealID:      args[0],
			Title:       title,
			Description: description,
			Value:       value,
			HasValue:    cmd.Flags().Changed("value"),
			Status:      status,
			Probability: probability,
			HasProb:     cmd.Flags().Changed("probability"),
			CloseDate:   closeDate,
			Tags:        tags,
			HasTags:     cmd.Flags().Changed("tag"),
		})
		if err != nil {
			return fmt.Errorf("failed to update deal: %w", err)
		}

		fmt.Printf("✓ Updated deal %s: %s\n", deal.ID, deal.Title)
		return nil
	},
}

var dealDeleteCmd = &cobra.Command{
	Use:   "delete [deal-id]",
	Short: "Delete a deal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.DealService().DeleteDeal(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to delete deal: %w", err)
		}
		fmt.Printf("✓ Deleted deal %s\n", args[0])
		return nil
	},
}

func init() {
	// deal add flags
	dealAddCmd.Flags().String("pipeline", "", "Pipeline ID (defaults to the default pipeline)")
	dealAddCmd.Flags().StringP("stage", "s", "", "Stage ID (defaults to the first stage)")
	dealAddCmd.Flags().StringP("description", "d", "", "Deal description")
	dealAddCmd.Flags().Float64P("value", "v", 0, "Deal value")
	dealAddCmd.Flags().String("currency", "", "Currency (defaults to the configured one)")
	dealAddCmd.Flags().String("contact", "", "Contact ID")
	dealAddCmd.Flags().String("company", "", "Company ID")
	dealAddCmd.Flags().String("close-date", "", "Expected close date (YYYY-MM-DD)")
	dealAddCmd.Flags().StringSlice("tag", nil, "Tag (repeatable)")

	// deal list flags
	dealListCmd.Flags().String("pipeline", "", "Pipeline ID (defaults to the default pipeline)")

	// deal update flags
	dealUpdateCmd.Flags().String("title", "", "New title")
	dealUpdateCmd.Flags().StringP("description", "d", "", "New description")
	dealUpdateCmd.Flags().Float64P("value", "v", 0, "New value")
	dealUpdateCmd.Flags().String("status", "", "New status (active, won, lost, on-hold)")
	dealUpdateCmd.Flags().IntP("probability", "p", 0, "New probability (0-100)")
	dealUpdateCmd.Flags().String("close-date", "", "New close date (YYYY-MM-DD)")
	dealUpdateCmd.Flags().StringSlice("tag", nil, "Replace tags (repeatable)")

	// Register subcommands
	dealCmd.AddCommand(dealAddCmd)
	dealCmd.AddCommand(dealListCmd)
	dealCmd.AddCommand(dealShowCmd)
	dealCmd.AddCommand(dealMoveCmd)
	dealCmd.AddCommand(dealUpdateCmd)
	dealCmd.AddCommand(dealDeleteCmd)
}

// DealCmd returns the deal command
func DealCmd() *cobra.Command {
	return dealCmd
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
