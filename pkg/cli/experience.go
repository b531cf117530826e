package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfolio/folio/pkg/portfolio"
)

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Manage work-history entries",
}

var experienceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work-history entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Experience.Refresh(a.context()); err != nil {
			return err
		}
		snap := a.set.Experience.Store().Snapshot()
		return printResult(snap.Items, func() {
			if len(snap.Items) == 0 {
				fmt.Println("No experience entries")
				return
			}
			w := table()
			fmt.Fprintln(w, "ID\tROLE\tCOMPANY\tDURATION")
			for _, e := range snap.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Role, e.Company, e.Duration)
			}
			_ = w.Flush()
		})
	},
}

var (
	expRole        string
	expCompany     string
	expDuration    string
	expDescription string
)

func experienceDraftFromFlags() portfolio.ExperienceDraft {
	return portfolio.ExperienceDraft{
		Role:        expRole,
		Company:     expCompany,
		Duration:    expDuration,
		Description: expDescription,
	}
}

var experienceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a work-history entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Experience.Create(a.context(), experienceDraftFromFlags()); err != nil {
			return err
		}
		snap := a.set.Experience.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Experience created"))
		})
	},
}

var experienceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a work-history entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Experience.Update(a.context(), args[0], experienceDraftFromFlags()); err != nil {
			return err
		}
		snap := a.set.Experience.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Experience updated"))
		})
	},
}

var experienceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a work-history entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Experience.Delete(a.context(), args[0]); err != nil {
			return err
		}
		snap := a.set.Experience.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Experience deleted"))
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{experienceAddCmd, experienceUpdateCmd} {
		cmd.Flags().StringVar(&expRole, "role", "", "Job title")
		cmd.Flags().StringVar(&expCompany, "company", "", "Company name")
		cmd.Flags().StringVar(&expDuration, "duration", "", "Duration (e.g. 2022 - 2024)")
		cmd.Flags().StringVar(&expDescription, "description", "", "Description")
	}
	_ = experienceAddCmd.MarkFlagRequired("role")

	experienceCmd.AddCommand(experienceListCmd, experienceAddCmd, experienceUpdateCmd, experienceDeleteCmd)
	rootCmd.AddCommand(experienceCmd)
}
