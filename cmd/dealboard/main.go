package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dealboard/internal/cli"
	"github.com/example/dealboard/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "dealboard",
		Short:   "dealboard - sales pipeline board in the terminal",
		Version: version.String(),
		Long: `dealboard is a CLI for managing a sales pipeline: deals move through
ordered stages on a board, contacts and companies hang off deals, and a
lead scorer ranks who to call next.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.BoardCmd())
	rootCmd.AddCommand(cli.DealCmd())
	rootCmd.AddCommand(cli.PipelineCmd())
	rootCmd.AddCommand(cli.ContactCmd())
	rootCmd.AddCommand(cli.CompanyCmd())
	rootCmd.AddCommand(cli.ScoreCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
