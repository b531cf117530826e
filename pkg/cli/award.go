package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfolio/folio/pkg/portfolio"
)

var awardCmd = &cobra.Command{
	Use:   "award",
	Short: "Manage awards and achievements",
}

var awardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List awards",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Awards.Refresh(a.context()); err != nil {
			return err
		}
		snap := a.set.Awards.Store().Snapshot()
		return printResult(snap.Items, func() {
			if len(snap.Items) == 0 {
				fmt.Println("No awards")
				return
			}
			w := table()
			fmt.Fprintln(w, "ID\tTITLE\tDATE")
			for _, award := range snap.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\n", award.ID, award.Title, award.Date)
			}
			_ = w.Flush()
		})
	},
}

var (
	awardTitle       string
	awardDescription string
	awardDate        string
	awardImagePath   string
)

func awardDraftFromFlags() (portfolio.AwardDraft, error) {
	draft := portfolio.AwardDraft{
		Title:       awardTitle,
		Description: awardDescription,
		Date:        awardDate,
	}
	if awardImagePath != "" {
		img, err := readImage(awardImagePath)
		if err != nil {
			return draft, err
		}
		draft.Image = img
	}
	return draft, nil
}

var awardAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an award",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		draft, err := awardDraftFromFlags()
		if err != nil {
			return err
		}
		if err := a.set.Awards.Create(a.context(), draft); err != nil {
			return err
		}
		snap := a.set.Awards.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Award created"))
		})
	},
}

var awardUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an award",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		draft, err := awardDraftFromFlags()
		if err != nil {
			return err
		}
		if err := a.set.Awards.Update(a.context(), args[0], draft); err != nil {
			return err
		}
		snap := a.set.Awards.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Award updated"))
		})
	},
}

var awardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an award",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Awards.Delete(a.context(), args[0]); err != nil {
			return err
		}
		snap := a.set.Awards.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Award deleted"))
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{awardAddCmd, awardUpdateCmd} {
		cmd.Flags().StringVar(&awardTitle, "title", "", "Award title")
		cmd.Flags().StringVar(&awardDescription, "description", "", "Award description")
		cmd.Flags().StringVar(&awardDate, "date", "", "Award date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&awardImagePath, "image", "", "Path to an image")
	}
	_ = awardAddCmd.MarkFlagRequired("title")

	awardCmd.AddCommand(awardListCmd, awardAddCmd, awardUpdateCmd, awardDeleteCmd)
	rootCmd.AddCommand(awardCmd)
}
