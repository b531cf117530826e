package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfolio/folio/pkg/portfolio"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage the site's contact details",
}

var contactShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the contact details",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Contact.Refresh(a.context()); err != nil {
			return err
		}
		snap := a.set.Contact.Store().Snapshot()
		return printResult(snap.Item, func() {
			c := snap.Item
			if c == nil {
				fmt.Println("No contact details set")
				return
			}
			w := table()
			fmt.Fprintf(w, "Email\t%s\n", c.Email)
			fmt.Fprintf(w, "Phone\t%s\n", c.Phone)
			fmt.Fprintf(w, "Address\t%s\n", c.Address)
			fmt.Fprintf(w, "GitHub\t%s\n", c.GitHub)
			fmt.Fprintf(w, "LinkedIn\t%s\n", c.LinkedIn)
			_ = w.Flush()
		})
	},
}

var (
	contactEmail    string
	contactPhone    string
	contactAddress  string
	contactGitHub   string
	contactLinkedIn string
)

var contactSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the contact details",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		draft := portfolio.ContactDraft{
			Email:    contactEmail,
			Phone:    contactPhone,
			Address:  contactAddress,
			GitHub:   contactGitHub,
			LinkedIn: contactLinkedIn,
		}
		if err := a.set.Contact.Save(a.context(), draft); err != nil {
			return err
		}
		snap := a.set.Contact.Store().Snapshot()
		return printResult(snap.Item, func() {
			fmt.Println(orDefault(snap.Message, "Contact details saved"))
		})
	},
}

func init() {
	contactSetCmd.Flags().StringVar(&contactEmail, "email", "", "Public email")
	contactSetCmd.Flags().StringVar(&contactPhone, "phone", "", "Phone number")
	contactSetCmd.Flags().StringVar(&contactAddress, "address", "", "Location")
	contactSetCmd.Flags().StringVar(&contactGitHub, "github", "", "GitHub profile URL")
	contactSetCmd.Flags().StringVar(&contactLinkedIn, "linkedin", "", "LinkedIn profile URL")

	contactCmd.AddCommand(contactShowCmd, contactSetCmd)
	rootCmd.AddCommand(contactCmd)
}
