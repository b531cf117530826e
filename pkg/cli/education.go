package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfolio/folio/pkg/portfolio"
)

var educationCmd = &cobra.Command{
	Use:   "education",
	Short: "Manage education timeline entries",
}

var educationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List education entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Education.Refresh(a.context()); err != nil {
			return err
		}
		snap := a.set.Education.Store().Snapshot()
		return printResult(snap.Items, func() {
			if len(snap.Items) == 0 {
				fmt.Println("No education entries")
				return
			}
			w := table()
			fmt.Fprintln(w, "ID\tQUALIFICATION\tINSTITUTION\tYEAR")
			for _, e := range snap.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Qualification, e.Name, e.YearOfCompletion)
			}
			_ = w.Flush()
		})
	},
}

var (
	eduQualification string
	eduName          string
	eduAddress       string
	eduGrade         string
	eduYear          string
	eduDescription   string
)

func educationDraftFromFlags() portfolio.EducationDraft {
	return portfolio.EducationDraft{
		Qualification:    eduQualification,
		Name:             eduName,
		Address:          eduAddress,
		GradeOrPercent:   eduGrade,
		YearOfCompletion: eduYear,
		Description:      eduDescription,
	}
}

var educationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an education entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Education.Create(a.context(), educationDraftFromFlags()); err != nil {
			return err
		}
		snap := a.set.Education.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Education entry created"))
		})
	},
}

var educationUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an education entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Education.Update(a.context(), args[0], educationDraftFromFlags()); err != nil {
			return err
		}
		snap := a.set.Education.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Education entry updated"))
		})
	},
}

var educationDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an education entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Education.Delete(a.context(), args[0]); err != nil {
			return err
		}
		snap := a.set.Education.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Education entry deleted"))
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{educationAddCmd, educationUpdateCmd} {
		cmd.Flags().StringVar(&eduQualification, "qualification", "", "Degree or qualification")
		cmd.Flags().StringVar(&eduName, "institution", "", "Institution name")
		cmd.Flags().StringVar(&eduAddress, "address", "", "Institution address")
		cmd.Flags().StringVar(&eduGrade, "grade", "", "Grade or percentage")
		cmd.Flags().StringVar(&eduYear, "year", "", "Year of completion")
		cmd.Flags().StringVar(&eduDescription, "description", "", "Description")
	}
	_ = educationAddCmd.MarkFlagRequired("qualification")

	educationCmd.AddCommand(educationListCmd, educationAddCmd, educationUpdateCmd, educationDeleteCmd)
	rootCmd.AddCommand(educationCmd)
}
