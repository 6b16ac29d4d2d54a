package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/dealboard/internal/ports/primary"
	"github.com/example/dealboard/internal/wire"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts",
}

var contactAddCmd = &cobra.Command{
	Use:   "add [first-name]",
	Short: "Create a new contact",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lastName, _ := cmd.Flags().GetString("last-name")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		title, _ := cmd.Flags().GetString("title")
		industry, _ := cmd.Flags().GetString("industry")
		location, _ := cmd.Flags().GetString("location")
		companyID, _ := cmd.Flags().GetString("company")

		contact, err := wire.ContactService().CreateContact(context.Background(), primary.CreateContactRequest{
			FirstName: args[0],
			LastName:  lastName,
			Email:     email,
			Phone:     phone,
			Title:     title,
			Industry:  industry,
			Location:  location,
			CompanyID: companyID,
		})
		if err != nil {
			return fmt.Errorf("failed to create contact: %w", err)
		}

		fmt.Printf("✓ Created contact %s: %s %s\n", contact.ID, contact.FirstName, contact.LastName)
		return nil
	},
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		contacts, err := wire.ContactService().ListContacts(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list contacts: %w", err)
		}

		if len(contacts) == 0 {
			fmt.Println("No contacts found.")
			return nil
		}

		fmt.Printf("Found %d contact(s):\n\n", len(contacts))
		for _, c := range contacts {
			name := c.FirstName
			if c.LastName != "" {
				name += " " + c.LastName
			}
			fmt.Printf("%s  %-25s  %-25s  %s\n", c.ID, truncate(name, 25), truncate(c.Title, 25), c.Email)
		}
		return nil
	},
}

func init() {
	contactAddCmd.Flags().String("last-name", "", "Last name")
	contactAddCmd.Flags().String("email", "", "Email address")
	contactAddCmd.Flags().String("phone", "", "Phone number")
	contactAddCmd.Flags().String("title", "", "Job title")
	contactAddCmd.Flags().String("industry", "", "Industry")
	contactAddCmd.Flags().String("location", "", "Location")
	contactAddCmd.Flags().String("company", "", "Company ID")

	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactListCmd)
}

// ContactCmd returns the contact command
func ContactCmd() *cobra.Command {
	return contactCmd
}
