package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/dealboard/internal/ports/primary"
	"github.com/example/dealboard/internal/wire"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage companies",
}

var companyAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a new company",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		industry, _ := cmd.Flags().GetString("industry")
		size, _ := cmd.Flags().GetInt("size")
		revenue, _ := cmd.Flags().GetFloat64("revenue")
		growth, _ := cmd.Flags().GetFloat64("growth")

		company, err := wire.CompanyService().CreateCompany(context.Background(), primary.CreateCompanyRequest{
			Name:     args[0],
			Industry: industry,
			Size:     size,
			Revenue:  revenue,
			Growth:   growth,
		})
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		fmt.Printf("✓ Created company %s: %s\n", company.ID, company.Name)
		return nil
	},
}

var companyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List companies",
	RunE: func(cmd *cobra.Command, args []string) error {
		companies, err := wire.CompanyService().ListCompanies(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list companies: %w", err)
		}

		if len(companies) == 0 {
			fmt.Println("No companies found.")
			return nil
		}

		fmt.Printf("Found %d company(ies):\n\n", len(companies))
		for _, c := range companies {
			fmt.Printf("%s  %-30s  %-15s  %5d employees\n", c.ID, truncate(c.Name, 30), c.Industry, c.Size)
		}
		return nil
	},
}

func init() {
	companyAddCmd.Flags().String("industry", "", "Industry")
	companyAddCmd.Flags().Int("size", 0, "Employee count")
	companyAddCmd.Flags().Float64("revenue", 0, "Annual revenue")
	companyAddCmd.Flags().Float64("growth", 0, "Growth rate (0.2 = 20%)")

	companyCmd.AddCommand(companyAddCmd)
	companyCmd.AddCommand(companyListCmd)
}

// CompanyCmd returns the company command
func CompanyCmd() *cobra.Command {
	return companyCmd
}
